package repository

import (
	"context"
	"errors"

	"github.com/RafaelReds/EcoMarket/internal/domain/model"
)

// email一意制約違反を統一
var ErrEmailTaken = errors.New("email already taken")

// 保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成。email重複はErrEmailTaken。
	Create(ctx context.Context, user *model.User) error
	//メールからユーザーを1件取得する。見つからなければ (nil, nil)。
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	//登録済みemailかどうか（詳細は返さない）
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

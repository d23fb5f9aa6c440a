package usecase

import (
	"context"
	"errors"
	"net/http"

	"github.com/RafaelReds/EcoMarket/internal/domain/model"
	repo "github.com/RafaelReds/EcoMarket/internal/repository"
	"github.com/RafaelReds/EcoMarket/internal/session"

	"golang.org/x/crypto/bcrypt"
)

// ユーザー列挙を防ぐため、ユーザー無し／パスワード違いで同じ文言を返す
const msgCredencialesInvalidas = "Usuario o contraseña incorrectos"

type AuthUsecase struct {
	users      repo.UserRepository
	bcryptCost int
}

// DI
func NewAuthUsecase(users repo.UserRepository, bcryptCost int) *AuthUsecase {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthUsecase{users: users, bcryptCost: bcryptCost}
}

type RegisterInput struct {
	Nombre   string
	Email    string
	Password string
	Rol      model.Role
}

// Register は会員登録。emailは完全一致で重複チェック。
func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) error {
	if in.Nombre == "" || in.Email == "" || in.Password == "" || in.Rol == "" {
		return NewHTTPError(http.StatusBadRequest, "Completa todos los campos")
	}
	if in.Rol != model.RoleCliente && in.Rol != model.RoleProductor {
		return NewHTTPError(http.StatusBadRequest, "Rol inválido")
	}

	// email重複チェック
	exists, err := u.users.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "Error interno")
	}
	if exists {
		return NewHTTPError(http.StatusConflict, "Este correo ya está registrado")
	}

	// パスワードをハッシュ化（平文は保存しない）
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), u.bcryptCost)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "Error interno")
	}

	user := &model.User{
		Nombre:       in.Nombre,
		Email:        in.Email,
		PasswordHash: string(hashed),
		Rol:          in.Rol,
	}

	if err := u.users.Create(ctx, user); err != nil {
		// 同時登録でユニーク制約に当たった場合も同じ文言
		if errors.Is(err, repo.ErrEmailTaken) {
			return NewHTTPError(http.StatusConflict, "Este correo ya está registrado")
		}
		return NewHTTPError(http.StatusInternalServerError, "Error interno")
	}
	return nil
}

// Login は認証してセッションに載せるIdentityを返す。
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (session.Identity, error) {
	if email == "" || password == "" {
		return session.Identity{}, NewHTTPError(http.StatusBadRequest, "Ingresa email y contraseña")
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return session.Identity{}, NewHTTPError(http.StatusInternalServerError, "Error interno")
	}
	if user == nil {
		return session.Identity{}, NewHTTPError(http.StatusUnauthorized, msgCredencialesInvalidas)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return session.Identity{}, NewHTTPError(http.StatusUnauthorized, msgCredencialesInvalidas)
	}

	return session.Identity{
		ID:     user.ID,
		Nombre: user.Nombre,
		Rol:    user.Rol,
	}, nil
}

// EmailAvailable は登録可否だけを返す。エラー時はfalse（旧実装踏襲）。
func (u *AuthUsecase) EmailAvailable(ctx context.Context, email string) bool {
	if email == "" {
		return false
	}

	exists, err := u.users.ExistsByEmail(ctx, email)
	if err != nil {
		return false
	}
	return !exists
}

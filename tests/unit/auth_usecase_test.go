package unit

import (
	"context"
	"testing"

	"github.com/RafaelReds/EcoMarket/internal/domain/model"
	repo "github.com/RafaelReds/EcoMarket/internal/repository"
	"github.com/RafaelReds/EcoMarket/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// =====================
// Register
// =====================

func TestAuthUsecase_Register_EmptyFields(t *testing.T) {
	users := new(MockUserRepository)
	uc := usecase.NewAuthUsecase(users, bcrypt.MinCost)

	err := uc.Register(context.Background(), usecase.RegisterInput{
		Nombre: "", Email: "a@b.com", Password: "secreta", Rol: model.RoleCliente,
	})
	assertErrContains(t, err, "Completa todos los campos")

	// DBには触らない
	users.AssertNotCalled(t, "ExistsByEmail", mock.Anything, mock.Anything)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthUsecase_Register_InvalidRole(t *testing.T) {
	users := new(MockUserRepository)
	uc := usecase.NewAuthUsecase(users, bcrypt.MinCost)

	err := uc.Register(context.Background(), usecase.RegisterInput{
		Nombre: "Ana", Email: "a@b.com", Password: "secreta", Rol: model.Role("admin"),
	})
	assertErrContains(t, err, "Rol inválido")
}

func TestAuthUsecase_Register_DuplicateEmail(t *testing.T) {
	ctx := context.Background()

	users := new(MockUserRepository)
	uc := usecase.NewAuthUsecase(users, bcrypt.MinCost)

	users.On("ExistsByEmail", mock.Anything, "ana@eco.com").Return(true, nil)

	err := uc.Register(ctx, usecase.RegisterInput{
		Nombre: "Ana", Email: "ana@eco.com", Password: "secreta", Rol: model.RoleCliente,
	})
	assertErrContains(t, err, "Este correo ya está registrado")

	// 2人目のUser行は作られない
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	users.AssertExpectations(t)
}

func TestAuthUsecase_Register_UniqueViolationOnInsert(t *testing.T) {
	ctx := context.Background()

	users := new(MockUserRepository)
	uc := usecase.NewAuthUsecase(users, bcrypt.MinCost)

	// 事前チェックはすり抜けたが、INSERTで一意制約に当たるケース
	users.On("ExistsByEmail", mock.Anything, "ana@eco.com").Return(false, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(repo.ErrEmailTaken)

	err := uc.Register(ctx, usecase.RegisterInput{
		Nombre: "Ana", Email: "ana@eco.com", Password: "secreta", Rol: model.RoleCliente,
	})
	assertErrContains(t, err, "Este correo ya está registrado")
	users.AssertExpectations(t)
}

func TestAuthUsecase_Register_Success_StoresHash(t *testing.T) {
	ctx := context.Background()

	users := new(MockUserRepository)
	uc := usecase.NewAuthUsecase(users, bcrypt.MinCost)

	users.On("ExistsByEmail", mock.Anything, "ana@eco.com").Return(false, nil)

	var saved *model.User
	users.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		saved, _ = args.Get(1).(*model.User)
	}).Return(nil)

	err := uc.Register(ctx, usecase.RegisterInput{
		Nombre: "Ana", Email: "ana@eco.com", Password: "secreta", Rol: model.RoleProductor,
	})
	assert.NoError(t, err)

	// 平文は保存しない
	assert.NotNil(t, saved)
	assert.NotEqual(t, "secreta", saved.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("secreta")))
	assert.Equal(t, model.RoleProductor, saved.Rol)

	users.AssertExpectations(t)
}

// =====================
// Login
// =====================

// ユーザー無しとパスワード違いで同じ文言（列挙防止）
func TestAuthUsecase_Login_SameMessageForUnknownAndWrongPassword(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("correcta"), bcrypt.MinCost)
	assert.NoError(t, err)

	users := new(MockUserRepository)
	uc := usecase.NewAuthUsecase(users, bcrypt.MinCost)

	users.On("FindByEmail", mock.Anything, "nadie@eco.com").Return(nil, nil)
	users.On("FindByEmail", mock.Anything, "ana@eco.com").Return(&model.User{
		ID: 1, Nombre: "Ana", Email: "ana@eco.com", PasswordHash: string(hash), Rol: model.RoleCliente,
	}, nil)

	_, errUnknown := uc.Login(ctx, "nadie@eco.com", "loquesea")
	_, errWrongPass := uc.Login(ctx, "ana@eco.com", "incorrecta")

	assert.Error(t, errUnknown)
	assert.Error(t, errWrongPass)
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())

	users.AssertExpectations(t)
}

func TestAuthUsecase_Login_Success(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("correcta"), bcrypt.MinCost)
	assert.NoError(t, err)

	users := new(MockUserRepository)
	uc := usecase.NewAuthUsecase(users, bcrypt.MinCost)

	users.On("FindByEmail", mock.Anything, "ana@eco.com").Return(&model.User{
		ID: 7, Nombre: "Ana", Email: "ana@eco.com", PasswordHash: string(hash), Rol: model.RoleProductor,
	}, nil)

	identity, err := uc.Login(ctx, "ana@eco.com", "correcta")
	assert.NoError(t, err)
	assert.Equal(t, int64(7), identity.ID)
	assert.Equal(t, "Ana", identity.Nombre)
	assert.Equal(t, model.RoleProductor, identity.Rol)

	users.AssertExpectations(t)
}

func TestAuthUsecase_Login_EmptyInput(t *testing.T) {
	users := new(MockUserRepository)
	uc := usecase.NewAuthUsecase(users, bcrypt.MinCost)

	_, err := uc.Login(context.Background(), "", "x")
	assertErrContains(t, err, "Ingresa email y contraseña")
}

// =====================
// EmailAvailable
// =====================

func TestAuthUsecase_EmailAvailable(t *testing.T) {
	ctx := context.Background()

	users := new(MockUserRepository)
	uc := usecase.NewAuthUsecase(users, bcrypt.MinCost)

	users.On("ExistsByEmail", mock.Anything, "libre@eco.com").Return(false, nil)
	users.On("ExistsByEmail", mock.Anything, "tomado@eco.com").Return(true, nil)
	users.On("ExistsByEmail", mock.Anything, "falla@eco.com").Return(false, assert.AnError)

	assert.True(t, uc.EmailAvailable(ctx, "libre@eco.com"))
	assert.False(t, uc.EmailAvailable(ctx, "tomado@eco.com"))
	// エラー時もfalse（詳細は漏らさない）
	assert.False(t, uc.EmailAvailable(ctx, "falla@eco.com"))
	assert.False(t, uc.EmailAvailable(ctx, ""))
}

package usecase

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"room-rental-app/config/common"
	"room-rental-app/dto/req"
	"room-rental-app/entity"
	"room-rental-app/enum"
	"room-rental-app/repository"
	"room-rental-app/security"
)

func (env *testEnv) authUsecase() AuthUsecase {
	v := viper.New()
	v.Set("JWT_SECRET", "test-secret")
	jwt := security.NewJWT(&common.Config{Viper: v})
	return NewAuthUsecase(repository.NewAccountRepository(), repository.NewRoleRepository(), validator.New(), env.db, env.log, jwt, env.feed)
}

func TestRegisterWithRole(t *testing.T) {
	env := newTestEnv(t)
	uc := env.authUsecase()

	registered, err := uc.RegisterUser(testCtx(), &req.RegisterRequest{
		Email:    "manager@example.com",
		Password: "hunter22",
		FullName: "Manager Person",
		Role:     "manager",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.ID)
	assert.Equal(t, "manager", registered.Role)

	role, err := env.profileUsecase().ResolveRole(testCtx(), registered.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.RoleManager, role)

	// password is stored hashed
	var account entity.Account
	require.NoError(t, env.db.First(&account, "id = ?", registered.ID).Error)
	assert.NotEqual(t, "hunter22", account.Password)
}

func TestRegisterWithoutRole(t *testing.T) {
	env := newTestEnv(t)

	registered, err := env.authUsecase().RegisterUser(testCtx(), &req.RegisterRequest{
		Email:    "undecided@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, "unknown", registered.Role)

	role, err := env.profileUsecase().ResolveRole(testCtx(), registered.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.RoleUnknown, role)
}

func TestRegisterDuplicateEmailRollsBack(t *testing.T) {
	env := newTestEnv(t)
	uc := env.authUsecase()

	request := &req.RegisterRequest{
		Email:    "dup@example.com",
		Password: "hunter22",
		Role:     "customer",
	}
	_, err := uc.RegisterUser(testCtx(), request)
	require.NoError(t, err)

	_, err = uc.RegisterUser(testCtx(), request)
	require.Error(t, err)

	var count int64
	require.NoError(t, env.db.Model(&entity.Account{}).Where("email = ?", "dup@example.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)
	require.NoError(t, env.db.Model(&entity.UserRole{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	uc := env.authUsecase()

	_, err := uc.RegisterUser(testCtx(), &req.RegisterRequest{
		Email:    "login@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	login, err := uc.LoginUser(testCtx(), &req.LoginRequest{
		Email:    "login@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)

	_, err = uc.LoginUser(testCtx(), &req.LoginRequest{
		Email:    "login@example.com",
		Password: "wrongpass",
	})
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = uc.LoginUser(testCtx(), &req.LoginRequest{
		Email:    "nobody@example.com",
		Password: "hunter22",
	})
	assert.Error(t, err)
}

package security

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"room-rental-app/config/common"
	"room-rental-app/entity"
)

func newTestJWT(secret string) *JWT {
	v := viper.New()
	v.Set("JWT_SECRET", secret)
	return NewJWT(&common.Config{Viper: v})
}

func TestGenerateAndVerifyToken(t *testing.T) {
	j := newTestJWT("test-secret")
	account := &entity.Account{
		BaseEntity: entity.BaseEntity{ID: "user-42"},
		Email:      "user@example.com",
	}

	token, err := j.GenerateToken(account)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := j.VerifyJwtToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims["user_id"])
	assert.Equal(t, "room-rental-app", claims["iss"])

	userID, err := j.GetUserIdFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)

	email, err := j.GetEmailFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", email)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	account := &entity.Account{
		BaseEntity: entity.BaseEntity{ID: "user-42"},
		Email:      "user@example.com",
	}

	token, err := newTestJWT("secret-one").GenerateToken(account)
	require.NoError(t, err)

	_, err = newTestJWT("secret-two").VerifyJwtToken(token)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := newTestJWT("test-secret").VerifyJwtToken("not.a.token")
	assert.Error(t, err)
}

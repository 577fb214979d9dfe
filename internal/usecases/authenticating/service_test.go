package authenticating

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/empresas-dashboard/internal/config"
	"github.com/vfg2006/empresas-dashboard/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T, password string) *Service {
	t.Helper()

	cfg := &config.Config{SecretKey: "segredo-de-teste"}
	cfg.Operator.User = "admin"
	cfg.Operator.TokenTTL = time.Hour

	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		require.NoError(t, err)
		cfg.Operator.PasswordHash = string(hash)
	}

	return NewService(cfg).(*Service)
}

func TestService_LoginOperator(t *testing.T) {
	service := newTestService(t, "s3nha-forte")

	tests := []struct {
		name     string
		username string
		password string
		err      error
		code     string
	}{
		{"Credenciais corretas", "admin", "s3nha-forte", nil, ""},
		{"Usuário com espaços", " admin ", "s3nha-forte", nil, ""},
		{"Senha incorreta", "admin", "errada", ErrInvalidCredentials, apiErrors.ErrInvalidCredentials},
		{"Usuário desconhecido", "outro", "s3nha-forte", ErrInvalidCredentials, apiErrors.ErrInvalidCredentials},
		{"Campos vazios", "", "", ErrMissingRequiredData, apiErrors.ErrMissingRequiredData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := service.LoginOperator(tt.username, tt.password)

			if tt.err == nil {
				require.NoError(t, err)
				claims, err := service.ValidateToken(token)
				require.NoError(t, err)
				assert.Equal(t, "admin", claims.Username)
				return
			}

			assert.Empty(t, token)
			assert.True(t, errors.Is(err, tt.err))
			var authErr *AuthError
			require.True(t, errors.As(err, &authErr))
			assert.Equal(t, tt.code, authErr.Code)
		})
	}
}

func TestService_LoginDisabled(t *testing.T) {
	service := newTestService(t, "")

	_, err := service.LoginOperator("admin", "qualquer")
	assert.True(t, errors.Is(err, ErrLoginDisabled))
}

func TestService_ValidateToken(t *testing.T) {
	service := newTestService(t, "s3nha-forte")
	issuedAt := time.Date(2024, 1, 16, 10, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return issuedAt }

	token, err := service.LoginOperator("admin", "s3nha-forte")
	require.NoError(t, err)

	t.Run("token válido dentro do prazo", func(t *testing.T) {
		service.now = func() time.Time { return issuedAt.Add(30 * time.Minute) }
		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Subject)
	})

	t.Run("token expirado", func(t *testing.T) {
		service.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
		_, err := service.ValidateToken(token)
		assert.True(t, errors.Is(err, ErrExpiredToken))
		assert.True(t, IsAuthorizationError(err))
	})

	t.Run("assinatura com outra chave", func(t *testing.T) {
		service.now = func() time.Time { return issuedAt }
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"username": "admin"}).
			SignedString([]byte("outra-chave"))
		require.NoError(t, err)

		_, err = service.ValidateToken(forged)
		assert.True(t, errors.Is(err, ErrInvalidToken))
	})

	t.Run("token malformado", func(t *testing.T) {
		_, err := service.ValidateToken("nao-e-um-jwt")
		assert.True(t, errors.Is(err, ErrInvalidToken))
	})
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/empresas-dashboard/internal/config"
	"github.com/vfg2006/empresas-dashboard/internal/usecases/authenticating"
	"github.com/vfg2006/empresas-dashboard/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestCors(t *testing.T) {
	tests := []struct {
		name          string
		allowed       []string
		origin        string
		method        string
		expectedCode  int
		expectedAllow string
	}{
		{"Origem liberada", []string{"http://localhost:8050"}, "http://localhost:8050", http.MethodGet, http.StatusNoContent, "http://localhost:8050"},
		{"Origem não liberada", []string{"http://localhost:8050"}, "http://evil.co", http.MethodGet, http.StatusNoContent, ""},
		{"Curinga", []string{"*"}, "http://qualquer.co", http.MethodGet, http.StatusNoContent, "http://qualquer.co"},
		{"Preflight responde sem chamar o handler", []string{"*"}, "http://qualquer.co", http.MethodOptions, http.StatusOK, "http://qualquer.co"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/v1/dashboard", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			Cors(tt.allowed)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, tt.expectedAllow, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestRequireOperator(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3nha"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{SecretKey: "segredo"}
	cfg.Operator.User = "admin"
	cfg.Operator.PasswordHash = string(hash)
	authService := authenticating.NewService(cfg)

	token, err := authService.LoginOperator("admin", "s3nha")
	require.NoError(t, err)

	var operator string
	handler := RequireOperator(authService)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := OperatorFromContext(r.Context())
		if ok {
			operator = claims.Username
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name         string
		header       string
		expectedCode int
	}{
		{"Sem cabeçalho", "", http.StatusUnauthorized},
		{"Sem prefixo Bearer", token, http.StatusUnauthorized},
		{"Token inválido", "Bearer abc", http.StatusUnauthorized},
		{"Token válido", "Bearer " + token, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/exports/run", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}

	assert.Equal(t, "admin", operator)
}

func TestLoggingAndPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	var correlationID string
	handler := LoggingMiddleware()(LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID = log.GetCorrelationID(r.Context())
		panic("falha inesperada")
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, correlationID)
}

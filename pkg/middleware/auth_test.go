package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"film-catalog/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRevocations struct {
	revoked map[string]bool
	err     error
}

func (f *fakeRevocations) IsRevoked(_ context.Context, jti string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.revoked[jti], nil
}

func testJWTConfig() utils.JWTConfig {
	return utils.JWTConfig{
		Secret:                "test-secret",
		Issuer:                "film-catalog",
		Audience:              "film-catalog-clients",
		AccessLifetimeMinutes: 5,
	}
}

func okHandler(t *testing.T, wantRole string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := utils.GetUserIDFromContext(r.Context())
		assert.True(t, ok)
		role, _ := utils.GetRoleFromContext(r.Context())
		assert.Equal(t, wantRole, role)
		jti, _, ok := utils.GetTokenFromContext(r.Context())
		assert.True(t, ok)
		assert.NotEmpty(t, jti)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthJWT(t *testing.T) {
	cfg := testJWTConfig()
	token, claims, err := utils.GenerateAccessToken(cfg, uuid.New(), "alice", "user")
	require.NoError(t, err)

	otherCfg := cfg
	otherCfg.Secret = "other-secret"
	forged, _, err := utils.GenerateAccessToken(otherCfg, uuid.New(), "mallory", "admin")
	require.NoError(t, err)

	tests := []struct {
		name     string
		header   string
		checker  RevocationChecker
		wantCode int
	}{
		{name: "missing header", header: "", wantCode: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + token, wantCode: http.StatusUnauthorized},
		{name: "forged signature", header: "Bearer " + forged, wantCode: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not-a-jwt", wantCode: http.StatusUnauthorized},
		{name: "valid", header: "Bearer " + token, wantCode: http.StatusOK},
		{name: "valid lowercase scheme", header: "bearer " + token, wantCode: http.StatusOK},
		{
			name:     "revoked",
			header:   "Bearer " + token,
			checker:  &fakeRevocations{revoked: map[string]bool{claims.ID: true}},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "revocation store down",
			header:   "Bearer " + token,
			checker:  &fakeRevocations{err: errors.New("redis down")},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := AuthJWT(cfg, tt.checker, zap.NewNop())(okHandler(t, "user"))

			req := httptest.NewRequest(http.MethodGet, "/api/authorized/user", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestAuthJWT_ExpiredToken(t *testing.T) {
	cfg := testJWTConfig()
	cfg.AccessLifetimeMinutes = -1
	token, _, err := utils.GenerateAccessToken(cfg, uuid.New(), "alice", "user")
	require.NoError(t, err)

	h := AuthJWT(cfg, nil, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for an expired token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	h := Admin(zap.NewNop())(next)

	t.Run("no user in context", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non admin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(utils.SetUserContext(req.Context(), uuid.New(), "user"))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(utils.SetUserContext(req.Context(), uuid.New(), "admin"))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestSetTokenContext_RoundTrip(t *testing.T) {
	exp := time.Now().Add(time.Minute).Truncate(time.Second)
	ctx := utils.SetTokenContext(context.Background(), "abc", exp)

	jti, gotExp, ok := utils.GetTokenFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "abc", jti)
	assert.True(t, exp.Equal(gotExp))
}

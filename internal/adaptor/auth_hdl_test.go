package adaptor

import (
	"context"
	"net/http"
	"testing"
	"time"

	"film-catalog/internal/dto/request"
	"film-catalog/internal/dto/response"
	"film-catalog/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.UserResponse), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req *request.LoginRequest, client usecase.ClientInfo) (*response.TokenResponse, error) {
	args := m.Called(ctx, req, client)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.TokenResponse), args.Error(1)
}

func (m *MockAuthService) Refresh(ctx context.Context, req *request.RefreshRequest) (*response.TokenResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.TokenResponse), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, req *request.LogoutRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockAuthService) CleanExpiredSessions(ctx context.Context, retention time.Duration) (int64, error) {
	args := m.Called(ctx, retention)
	return args.Get(0).(int64), args.Error(1)
}

func newAuthRouter(svc usecase.AuthService) chi.Router {
	h := NewAuthHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Post("/api/registration", h.Register)
	r.Post("/api/authentication/jwt", h.Login)
	r.Post("/api/authentication/logout", h.Logout)
	return r
}

func TestAuthHandler_RegisterStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"created", nil, http.StatusCreated},
		{"email taken", usecase.ErrEmailTaken, http.StatusConflict},
		{"username taken", usecase.ErrUsernameTaken, http.StatusConflict},
		{"validation", &usecase.ValidationError{Fields: map[string]string{"Password": "weak"}}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockAuthService)
			if tt.err == nil {
				svc.On("Register", mock.Anything, mock.Anything).Return(&response.UserResponse{Username: "alice"}, nil)
			} else {
				svc.On("Register", mock.Anything, mock.Anything).Return(nil, tt.err)
			}

			rec, _ := serve(t, newAuthRouter(svc), http.MethodPost, "/api/registration",
				`{"username":"alice","email":"a@example.com","password":"Str0ng!pass"}`)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestAuthHandler_LoginStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"bad credentials", usecase.ErrInvalidCredentials, http.StatusUnauthorized},
		{"inactive", usecase.ErrAccountInactive, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockAuthService)
			svc.On("Login", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			rec, _ := serve(t, newAuthRouter(svc), http.MethodPost, "/api/authentication/jwt",
				`{"login":"alice","password":"x"}`)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestAuthHandler_LoginPassesClientInfo(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Login", mock.Anything, mock.Anything, usecase.ClientInfo{IPAddress: "192.0.2.1"}).
		Return(&response.TokenResponse{AccessToken: "tok", TokenType: "Bearer"}, nil)

	rec, _ := serve(t, newAuthRouter(svc), http.MethodPost, "/api/authentication/jwt",
		`{"login":"alice","password":"x"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestAuthHandler_LogoutAcceptsEmptyBody(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Logout", mock.Anything, &request.LogoutRequest{}).Return(nil)

	rec, env := serve(t, newAuthRouter(svc), http.MethodPost, "/api/authentication/logout", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Status)
}

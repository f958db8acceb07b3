package utils

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	RoleKey     contextKey = "role"
	TokenIDKey  contextKey = "token_id"
	TokenExpKey contextKey = "token_exp"
)

func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}

func GetRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(RoleKey).(string)
	return role, ok
}

func SetUserContext(ctx context.Context, userID uuid.UUID, role string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID)
	ctx = context.WithValue(ctx, RoleKey, role)
	return ctx
}

// SetTokenContext stores the access token jti and expiry for logout.
func SetTokenContext(ctx context.Context, jti string, expiresAt time.Time) context.Context {
	ctx = context.WithValue(ctx, TokenIDKey, jti)
	ctx = context.WithValue(ctx, TokenExpKey, expiresAt)
	return ctx
}

// GetTokenFromContext returns the access token jti and expiry.
func GetTokenFromContext(ctx context.Context) (string, time.Time, bool) {
	jti, ok := ctx.Value(TokenIDKey).(string)
	if !ok || jti == "" {
		return "", time.Time{}, false
	}
	exp, _ := ctx.Value(TokenExpKey).(time.Time)
	return jti, exp, true
}

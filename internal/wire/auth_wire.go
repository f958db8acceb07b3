package wire

import (
	"net/http"

	"film-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	auth func(http.Handler) http.Handler,
) {
	r.Post("/api/registration", authHandler.Register)
	r.Post("/api/authentication/jwt", authHandler.Login)
	r.Post("/api/authentication/jwt/refresh", authHandler.Refresh)

	r.With(auth).Post("/api/authentication/logout", authHandler.Logout)
}

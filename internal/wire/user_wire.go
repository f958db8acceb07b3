package wire

import (
	"net/http"

	"film-catalog/internal/adaptor"
	"film-catalog/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	auth func(http.Handler) http.Handler,
	log *zap.Logger,
) {
	r.With(auth).Route("/api/authorized/user", func(r chi.Router) {
		r.Get("/", userHandler.GetProfile)
		r.Put("/", userHandler.UpdateProfile)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth)
		r.Use(middleware.Admin(log))

		r.Get("/api/roles", userHandler.ListRoles)
		r.Route("/api/users", func(r chi.Router) {
			r.Get("/", userHandler.ListUsers)
			r.Get("/{id}", userHandler.GetUser)
			r.Put("/{id}/role", userHandler.ChangeRole)
			r.Delete("/{id}", userHandler.DeleteUser)
		})
	})
}

package wire

import (
	"net/http"

	"film-catalog/internal/adaptor"
	"film-catalog/internal/data/repository"
	"film-catalog/internal/usecase"
	"film-catalog/pkg/cache"
	"film-catalog/pkg/middleware"
	"film-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the wired router plus the pieces the server loop drives.
type App struct {
	Router      *chi.Mux
	Service     *usecase.Service
	RateLimiter *middleware.RateLimiter
}

// Wiring builds services, handlers and routes on top of repo.
func Wiring(repo *repository.Repository, config *utils.Config, blacklist *cache.TokenBlacklist, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, blacklist, logger)
	handler := adaptor.NewHandler(service, logger)

	var limiter *middleware.RateLimiter
	if config.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(config.RateLimit.RPS, config.RateLimit.Burst)
	}

	return &App{
		Router:      setupRouter(handler, repo, config, blacklist, limiter, logger),
		Service:     service,
		RateLimiter: limiter,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	blacklist *cache.TokenBlacklist,
	limiter *middleware.RateLimiter,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.CORSOrigins))
	if limiter != nil {
		r.Use(limiter.Middleware)
	}

	auth := middleware.AuthJWT(config.JWT, blacklist, logger)

	wireFilm(r, handler.Film, handler.Genre, auth, config, logger)
	wireAuth(r, handler.Auth, auth)
	wireUser(r, handler.User, auth, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		if err := repo.Ping(r.Context()); err != nil {
			logger.Warn("Readiness check failed", zap.Error(err))
			utils.ResponseServiceUnavailable(w, "Database unavailable")
			return
		}
		utils.ResponseSuccess(w, "Ready", nil)
	})

	return r
}

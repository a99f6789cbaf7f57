//POST /user/login              # Login (public)
//POST /user/logout             # Close the session (auth)
//GET  /user/me                 # Current user (auth)
//PUT  /user/password           # Change own password (auth)
//GET  /users                   # List accounts (admin)
//POST /users                   # Create an account (admin)
//PUT  /users/{username}/role   # Change a role (admin)
//PUT  /users/{username}/password # Reset a password (admin)
//DELETE /users/{username}      # Delete an account (admin)
//GET  /api/fichas              # List fichas (auth)
//POST /api/fichas              # Create a ficha (auth)
//GET  /api/fichas/search       # Search fichas by name (auth)
//PUT  /api/fichas/{id}         # Update a ficha (auth)
//DELETE /api/fichas/{id}       # Delete a ficha (auth)

package api

import (
	fichaAPI "gestorfichas/internal/app/server/api/http/ficha"
	healthAPI "gestorfichas/internal/app/server/api/http/health"
	"gestorfichas/internal/app/server/api/http/middleware"
	"gestorfichas/internal/app/server/api/http/middleware/auth"
	"gestorfichas/internal/app/server/api/http/middleware/logger"
	userAPI "gestorfichas/internal/app/server/api/http/user"
	"gestorfichas/internal/config"
	"gestorfichas/internal/domain/ficha"
	"gestorfichas/internal/domain/session"
	"gestorfichas/internal/domain/user"
	"gestorfichas/internal/storage/jsonfile"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health *healthAPI.Handler
	User   *userAPI.Handler
	Ficha  *fichaAPI.Handler
}

// New builds a *chi.Mux with every operation registered through huma.
func New(storage *jsonfile.Storage, cfg *config.Config, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	humaConfig := huma.DefaultConfig("Gestor de Fichas API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, humaConfig)

	h := handlers(storage, cfg, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Ficha.SetupRoutes(API)

	return mux
}

func handlers(storage *jsonfile.Storage, cfg *config.Config, log *slog.Logger) *Handlers {
	sessions := session.NewTable(cfg.Session.TTL, log)

	userRepo := jsonfile.NewUserRepository(storage, log)
	userService := user.NewService(userRepo, sessions, log)

	fichaRepo := jsonfile.NewFichaRepository(storage, log)
	fichaService := ficha.NewService(fichaRepo, log)

	authMW := auth.New(userService, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	publicChain := middlewares.GetAllAndClear()

	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(authMW.Middleware())
	authChain := middlewares.GetAllAndClear()

	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(authMW.Middleware())
	middlewares.Add(authMW.RequireAdmin())
	adminChain := middlewares.GetAllAndClear()

	userHandler := userAPI.NewHandler(userService, log, publicChain, authChain, adminChain)
	fichaHandler := fichaAPI.NewHandler(fichaService, log, authChain)

	return &Handlers{
		Health: healthHandler,
		User:   userHandler,
		Ficha:  fichaHandler,
	}
}

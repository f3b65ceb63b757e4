package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/njaumatilda/PRODIGY-BD-03/internal/api/http/handler"
	"github.com/njaumatilda/PRODIGY-BD-03/internal/api/http/middleware"
	"github.com/njaumatilda/PRODIGY-BD-03/internal/logger"
)

// Router wires user routes and middleware onto a chi mux.
type Router struct {
	userService UserService
	store       handler.Pinger
	logger      *logger.Logger
}

// UserService is the service contract consumed by the user handler.
type UserService = handler.UserService

// New creates a new Router instance.
func New(userService UserService, store handler.Pinger, logger *logger.Logger) *Router {
	return &Router{
		userService: userService,
		store:       store,
		logger:      logger,
	}
}

// Register builds the HTTP handler with all routes and middleware.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	userHandler := handler.NewUser(r.userService, r.logger)
	healthHandler := handler.NewHealth(r.store, r.logger)

	mux := chi.NewRouter()

	mux.Use(chimiddleware.RequestID)
	mux.Use(chimiddleware.Recoverer)
	mux.Use(logging.Handle)

	mux.Get("/health", healthHandler.Check)

	mux.Route("/users", func(mux chi.Router) {
		mux.Get("/", userHandler.ListUsers)
		mux.Post("/", userHandler.CreateUser)
		mux.Delete("/", userHandler.DeleteAllUsers)

		mux.Get("/{id}", userHandler.GetUser)
		mux.Patch("/{id}", userHandler.UpdateUser)
		mux.Delete("/{id}", userHandler.DeleteUser)
	})

	return mux
}

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/isdelr/tasks-api-be/internal/api/handlers"
	"github.com/isdelr/tasks-api-be/internal/auth"
	"github.com/isdelr/tasks-api-be/internal/services"
	"github.com/isdelr/tasks-api-be/internal/store"
	"github.com/isdelr/tasks-api-be/internal/websocket"
)

// NotFoundMessage is the plain-text body for unmatched routes.
const NotFoundMessage = "Sorry cant find that!"

// Options controls router behaviour that comes from configuration.
type Options struct {
	CORSOrigins  []string
	AuthRequired bool
}

// NewRouter creates and configures a new Chi router.
func NewRouter(
	opts Options,
	hub *websocket.Hub,
	tokens *auth.Manager,
	pinger store.Pinger,
	taskService services.TaskServiceProvider,
	userService services.UserServiceProvider,
	eventService services.EventServiceProvider,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// Set before any Route call so sub-routers inherit them.
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	// Initialize handlers
	taskHandler := handlers.NewTaskHandler(taskService)
	userHandler := handlers.NewUserHandler(userService, tokens)
	eventHandler := handlers.NewEventHandler(eventService)
	wsHandler := handlers.NewWebSocketHandler(hub)
	healthHandler := handlers.NewHealthHandler(pinger)

	r.Get("/healthz", healthHandler.Check)

	// API versioning
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/api-doc", handlers.APIDoc)
		r.Post("/register", userHandler.Register)
		r.Post("/login", userHandler.Login)

		r.Group(func(r chi.Router) {
			if opts.AuthRequired {
				r.Use(auth.JWTMiddleware(tokens))
			}

			r.Get("/ws", wsHandler.Serve)
			r.Get("/events", eventHandler.GetRecent)

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", taskHandler.GetAll)
				r.Post("/", taskHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", taskHandler.Get)
					r.Put("/", taskHandler.Update)
					r.Delete("/", taskHandler.Delete)
				})
			})
		})
	})

	return r
}

func notFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(NotFoundMessage))
}

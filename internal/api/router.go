package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/api/handlers"
	apimw "github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/api/middleware"
	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/auth"
	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/metrics"
	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/services"
)

// Options holds the collaborators of the router.
type Options struct {
	AuthService   services.AuthServiceProvider
	PlayerService services.PlayerServiceProvider
	ImageHandler  *handlers.ImageHandler
	Metrics       *metrics.Metrics // optional
	CORSOrigins   []string
}

// NewRouter creates and configures a new Chi router.
func NewRouter(opts Options) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apimw.Logger)
	r.Use(apimw.Recoverer(func(w http.ResponseWriter) {
		handlers.WriteError(w, http.StatusInternalServerError, handlers.MsgServerError)
	}))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Instrument)
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, http.StatusNotFound, handlers.MsgRouteNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, http.StatusMethodNotAllowed, handlers.MsgMethodNotAllowed)
	})

	// Initialize handlers
	var observer handlers.LoginObserver
	if opts.Metrics != nil {
		observer = opts.Metrics
	}
	userHandler := handlers.NewUserHandler(opts.AuthService, observer)
	playerHandler := handlers.NewPlayerHandler(opts.PlayerService)
	requireToken := auth.Middleware(opts.AuthService, handlers.RespondError)

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", userHandler.Login)
		r.Post("/register", userHandler.Register)
		if opts.ImageHandler != nil {
			r.Get("/proxy-image", opts.ImageHandler.Proxy)
		}

		r.Group(func(r chi.Router) {
			r.Use(requireToken)
			r.Get("/obtener-jugadores", playerHandler.List)
			r.Get("/obtener-jugador/{id}", playerHandler.Get)
			r.Post("/crear-jugador", playerHandler.Create)
			r.Put("/modificar-jugador/{id}", playerHandler.Update)
		})
	})

	return r
}

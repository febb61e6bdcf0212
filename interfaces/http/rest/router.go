package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"ecovista-backend/application/ports"
	"ecovista-backend/infrastructure/config"
	"ecovista-backend/interfaces/http/rest/handlers"
	"ecovista-backend/interfaces/http/rest/middleware"
	"ecovista-backend/pkg/auth"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg       *config.Config
	articles  ports.ArticleRepository
	actors    ports.ActorRepository
	tags      ports.TagRepository
	locations ports.LocationRepository
	issuer    *auth.JWTIssuer
	validator *auth.JWTValidator
	logger    *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	articles ports.ArticleRepository,
	actors ports.ActorRepository,
	tags ports.TagRepository,
	locations ports.LocationRepository,
	issuer *auth.JWTIssuer,
	validator *auth.JWTValidator,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:       cfg,
		articles:  articles,
		actors:    actors,
		tags:      tags,
		locations: locations,
		issuer:    issuer,
		validator: validator,
		logger:    logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	// CORS configuration
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{rt.cfg.FrontendOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	// Session routes (development only; 404 in production)
	authHandler := handlers.NewAuthHandler(rt.issuer, rt.cfg.IsProduction(), rt.logger)
	router.Route("/auth", func(r chi.Router) {
		r.Post("/dev-login", authHandler.DevLogin)
		r.Post("/dev-logout", authHandler.DevLogout)
	})

	// Entity routes
	router.Group(func(r chi.Router) {
		if rt.cfg.AuthEnabled {
			r.Use(middleware.Authenticate(rt.validator))
			r.Use(middleware.AdminAllowlist(rt.cfg.AdminEmails))
		}

		r.Route("/articles", func(r chi.Router) {
			articleHandler := handlers.NewArticleHandler(rt.articles, rt.logger)
			r.Get("/", articleHandler.List)
			r.Post("/", articleHandler.Create)
			r.Get("/{articleID}/{publicationDate}", articleHandler.Get)
			r.Put("/{articleID}/{publicationDate}", articleHandler.Update)
			r.Delete("/{articleID}/{publicationDate}", articleHandler.Delete)
		})

		r.Route("/actors", func(r chi.Router) {
			actorHandler := handlers.NewActorHandler(rt.actors, rt.logger)
			r.Get("/", actorHandler.List)
			r.Post("/", actorHandler.Create)
			r.Get("/{actorID}", actorHandler.Get)
			r.Put("/{actorID}", actorHandler.Update)
			r.Delete("/{actorID}", actorHandler.Delete)
		})

		r.Route("/tags", func(r chi.Router) {
			tagHandler := handlers.NewTagHandler(rt.tags, rt.logger)
			r.Get("/", tagHandler.List)
			r.Post("/", tagHandler.Create)
			r.Get("/{tagID}", tagHandler.Get)
			r.Put("/{tagID}", tagHandler.Update)
			r.Delete("/{tagID}", tagHandler.Delete)
		})

		r.Route("/locations", func(r chi.Router) {
			locationHandler := handlers.NewLocationHandler(rt.locations, rt.logger)
			r.Get("/", locationHandler.List)
			r.Post("/", locationHandler.Create)
			r.Get("/{locationID}", locationHandler.Get)
			r.Put("/{locationID}", locationHandler.Update)
			r.Delete("/{locationID}", locationHandler.Delete)
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}

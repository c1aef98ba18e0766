package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/mobilipiu/catalog-api/internal/config"
	"github.com/mobilipiu/catalog-api/internal/delivery/http/handler"
	"github.com/mobilipiu/catalog-api/internal/delivery/http/middleware"
	"github.com/mobilipiu/catalog-api/internal/delivery/http/response"
	"github.com/mobilipiu/catalog-api/internal/pkg/logger"
)

// Router holds HTTP handlers and router configuration
type Router struct {
	productHandler *handler.ProductHandler
	catalogHandler *handler.CatalogHandler
	contactHandler *handler.ContactHandler
	logger         *logger.Logger
	cfg            *config.Config
}

// NewRouter creates a new HTTP router
func NewRouter(
	productHandler *handler.ProductHandler,
	catalogHandler *handler.CatalogHandler,
	contactHandler *handler.ContactHandler,
	cfg *config.Config,
	log *logger.Logger,
) *Router {
	return &Router{
		productHandler: productHandler,
		catalogHandler: catalogHandler,
		contactHandler: contactHandler,
		logger:         log,
		cfg:            cfg,
	}
}

// Setup configures and returns the HTTP router
func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logger(rt.logger))
	r.Use(middleware.Timeout(rt.cfg.Server.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   rt.cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", rt.healthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", rt.productHandler.List)
			r.Post("/", rt.productHandler.Create)
			r.Get("/stats/views", rt.productHandler.ViewStats)
			r.Get("/{id}", rt.productHandler.GetByID)
			r.Put("/{id}", rt.productHandler.Update)
			r.Delete("/{id}", rt.productHandler.Delete)
			r.Post("/{id}/view", rt.productHandler.TrackView)
		})

		r.Get("/admin/products", rt.productHandler.AdminList)

		r.Get("/brands", rt.catalogHandler.Brands)
		r.Get("/brands/{name}", rt.catalogHandler.BrandByName)
		r.Get("/categories", rt.catalogHandler.Categories)
		r.Get("/categories/{category}", rt.catalogHandler.CategoryByName)
		r.Get("/subcategories", rt.catalogHandler.Subcategories)
		r.Get("/filter-options", rt.catalogHandler.FilterOptions)

		r.Route("/contact", func(r chi.Router) {
			r.Get("/", rt.contactHandler.Info)
			r.Post("/", rt.contactHandler.Submit)
			r.Get("/messages", rt.contactHandler.Messages)
		})
	})

	return r
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

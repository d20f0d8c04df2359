package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/roselab/warehouse/docs"
	"github.com/roselab/warehouse/internal/api"
	m "github.com/roselab/warehouse/internal/api/middleware"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
)

func SetupRouter(server *api.Server, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(chimiddleware.RealIP)
	r.Use(m.LoggerMiddleware(logger))
	r.Use(m.RecoverMiddleware)

	// Swagger 文檔
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})
	r.Get("/swagger/*", httpSwagger.Handler())

	// API 路由
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Post("/", server.ProductHandler.CreateProduct)
			r.Get("/", server.ProductHandler.GetProducts)
			r.Get("/{id}", server.ProductHandler.GetProduct)
			r.Put("/{id}", server.ProductHandler.UpdateProduct)
			r.Delete("/{id}", server.ProductHandler.DeleteProduct)
		})
		r.Route("/orders", func(r chi.Router) {
			r.Post("/", server.OrderHandler.CreateOrder)
			r.Get("/", server.OrderHandler.GetOrders)
			r.Get("/{id}", server.OrderHandler.GetOrder)
			r.Patch("/{id}/status", server.OrderHandler.UpdateOrderStatus)
		})
	})

	return r
}

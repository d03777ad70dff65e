package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-productos-api/internal/application/auth"
	"github.com/jhoicas/gestion-productos-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ProductoUC *usecase.ProductoUseCase
	ReporteUC  *usecase.ReporteUseCase
	JWTSecret  string
	JWTIssuer  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Productos (protegido, incluido el reporte PDF)
	productos := api.Group("/productos", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))
	productoHandler := NewProductoHandler(deps.ProductoUC, deps.ReporteUC)
	productos.Get("/", productoHandler.List)
	// Las rutas literales van antes que /:id para que Fiber no las capture como id.
	productos.Get("/filter", productoHandler.Filter)
	productos.Get("/reporte-pdf", productoHandler.ReportePDF)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Post("/", productoHandler.Create)
	productos.Put("/:id", productoHandler.Update)
	productos.Delete("/:id", productoHandler.Delete)
}

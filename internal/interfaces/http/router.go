package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/Inventario-dashboard/internal/application/analytics"
	"github.com/jhoicas/Inventario-dashboard/internal/application/auth"
	"github.com/jhoicas/Inventario-dashboard/internal/application/inventory"
	"github.com/jhoicas/Inventario-dashboard/internal/application/usecase"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

// HealthCheck comprueba la conexión con el almacén (ej. pgxpool.Pool.Ping).
type HealthCheck func(ctx context.Context) error

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC      *usecase.ProductUseCase
	CategoryUC     *usecase.CategoryUseCase
	AdjustQuantity *inventory.AdjustQuantityUseCase
	DashboardUC    *appanalytics.DashboardUseCase
	AuthUC         *auth.AuthUseCase // nil o sin operadores: no se registra /api/auth/login
	Health         HealthCheck
	ServiceName    string
	JWTSecret      string // vacío: escrituras sin protección
	StoreTimeout   time.Duration
	Logger         *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		if deps.Health != nil {
			if err := deps.Health(c.UserContext()); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
					"status": "unavailable", "service": deps.ServiceName,
				})
			}
		}
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})

	api := app.Group("/api")
	if deps.StoreTimeout > 0 {
		api.Use(StoreTimeout(deps.StoreTimeout))
	}

	// Auth (público)
	if deps.AuthUC != nil && deps.AuthUC.Enabled() {
		authHandler := NewAuthHandler(deps.AuthUC)
		api.Post("/auth/login", authHandler.Login)
	}

	// Lectura (público)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	api.Get("/categories", categoryHandler.List)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC, log)
	api.Get("/dashboard", dashboardHandler.Get)
	api.Get("/dashboard/report.pdf", dashboardHandler.Report)

	productHandler := NewProductHandler(deps.ProductUC, deps.AdjustQuantity, log)
	api.Get("/products/:id", productHandler.GetByID)

	// Escritura (requiere Bearer Token si hay secret)
	write := func(c *fiber.Ctx) error { return c.Next() }
	if deps.JWTSecret != "" {
		write = AuthMiddleware(deps.JWTSecret)
	}
	api.Post("/products", write, productHandler.Create)
	api.Put("/products/:id", write, productHandler.Update)
	api.Post("/products/:id/increment", write, productHandler.Increment)
	api.Post("/products/:id/decrement", write, productHandler.Decrement)
	api.Patch("/products/:id/quantity", write, productHandler.AdjustQuantity)
	api.Delete("/products/:id", write, productHandler.Delete)
}

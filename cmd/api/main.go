package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appanalytics "github.com/jhoicas/Inventario-dashboard/internal/application/analytics"
	"github.com/jhoicas/Inventario-dashboard/internal/application/auth"
	"github.com/jhoicas/Inventario-dashboard/internal/application/inventory"
	"github.com/jhoicas/Inventario-dashboard/internal/application/usecase"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/repository"
	infracache "github.com/jhoicas/Inventario-dashboard/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/Inventario-dashboard/internal/infrastructure/pdf"
	"github.com/jhoicas/Inventario-dashboard/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Inventario-dashboard/internal/interfaces/http"
	"github.com/jhoicas/Inventario-dashboard/pkg/config"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Bool("auth", cfg.JWT.Enabled()).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Caché opcional del catálogo crudo: sin REDIS_URL, o si Redis no responde, se lee siempre del almacén.
	var catalogCache repository.CatalogCache = infracache.Nop{}
	if cfg.Redis.URL != "" {
		redisClient, err := infracache.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("Redis no disponible, caché desactivada")
		} else {
			defer redisClient.Close()
			catalogCache = infracache.NewRedisCatalogCache(redisClient, infracache.DefaultKey, cfg.Redis.TTL())
			log.Info().Dur("ttl", cfg.Redis.TTL()).Msg("caché del catálogo activa")
		}
	}

	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, catalogCache, log)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	adjustUC := inventory.NewAdjustQuantityUseCase(txRunner, catalogCache, log)

	// PDF: reporte del tablero
	reportGenerator := infrapdf.NewMarotoReportGenerator(cfg.App.Name)
	dashboardUC := appanalytics.NewDashboardUseCase(categoryRepo, productRepo, catalogCache, reportGenerator, log)

	authUC := auth.NewAuthUseCase(cfg.JWT.Operators, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario Dashboard API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:      productUC,
		CategoryUC:     categoryUC,
		AdjustQuantity: adjustUC,
		DashboardUC:    dashboardUC,
		AuthUC:         authUC,
		Health:         pool.Ping,
		ServiceName:    cfg.App.Name,
		JWTSecret:      cfg.JWT.Secret,
		StoreTimeout:   cfg.Store.Timeout(),
		Logger:         log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

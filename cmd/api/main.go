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

	"github.com/jhoicas/nuvemshop-descriptions/internal/application/catalog"
	"github.com/jhoicas/nuvemshop-descriptions/internal/application/installation"
	"github.com/jhoicas/nuvemshop-descriptions/internal/application/stores"
	"github.com/jhoicas/nuvemshop-descriptions/internal/application/usecase"
	"github.com/jhoicas/nuvemshop-descriptions/internal/infrastructure/nuvemshop"
	"github.com/jhoicas/nuvemshop-descriptions/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/nuvemshop-descriptions/internal/interfaces/http"
	"github.com/jhoicas/nuvemshop-descriptions/pkg/config"
	"github.com/jhoicas/nuvemshop-descriptions/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Bool("single_tenant", cfg.Nuvemshop.SingleTenant).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("esquema de base de datos")
	}

	storeRepo := postgres.NewStoreRepository(pool)
	descriptionRepo := postgres.NewDescriptionRepository(pool)

	nsClient := nuvemshop.NewClient(cfg.Nuvemshop, log)
	resolver := stores.NewResolver(storeRepo, cfg.Nuvemshop.SingleTenant)

	installUC := installation.NewInstallUseCase(nsClient, storeRepo, cfg.JWT, log)
	syncUC := catalog.NewSyncUseCase(nsClient, resolver, log)
	descriptionUC := usecase.NewDescriptionUseCase(descriptionRepo, storeRepo, nsClient, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Nuvemshop Descriptions API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InstallUC:     installUC,
		DescriptionUC: descriptionUC,
		SyncUC:        syncUC,
		JWTSecret:     cfg.JWT.Secret,
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

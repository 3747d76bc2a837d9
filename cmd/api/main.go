package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/quimlab/insumos-api/internal/application/auth"
	"github.com/quimlab/insumos-api/internal/application/insumos"
	"github.com/quimlab/insumos-api/internal/application/movimientos"
	"github.com/quimlab/insumos-api/internal/application/proveedores"
	"github.com/quimlab/insumos-api/internal/application/reportes"
	"github.com/quimlab/insumos-api/internal/application/usuarios"
	"github.com/quimlab/insumos-api/internal/infrastructure/excel"
	infrapdf "github.com/quimlab/insumos-api/internal/infrastructure/pdf"
	"github.com/quimlab/insumos-api/internal/infrastructure/postgres"
	httpRouter "github.com/quimlab/insumos-api/internal/interfaces/http"
	"github.com/quimlab/insumos-api/pkg/config"
	"github.com/quimlab/insumos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	insumoRepo := postgres.NewInsumoRepository(pool)
	movimientoRepo := postgres.NewMovimientoRepository(pool)
	proveedorRepo := postgres.NewProveedorRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	insumoUC := insumos.NewUseCase(insumoRepo, txRunner)
	movimientoUC := movimientos.NewUseCase(txRunner, movimientoRepo)
	proveedorUC := proveedores.NewUseCase(proveedorRepo)
	usuarioUC := usuarios.NewUseCase(usuarioRepo)
	authUC := auth.NewUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	workbookGen := excel.NewInsumosWorkbookGenerator()
	pdfGen := infrapdf.NewStockCriticoPDFGenerator()
	reporteUC := reportes.NewUseCase(insumoRepo, movimientoRepo, workbookGen, pdfGen)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))
	app.Use(httpRouter.RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InsumoUC:     insumoUC,
		ProveedorUC:  proveedorUC,
		MovimientoUC: movimientoUC,
		UsuarioUC:    usuarioUC,
		ReporteUC:    reporteUC,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
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

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

	"github.com/tu-usuario/resto-dash/internal/application/auth"
	"github.com/tu-usuario/resto-dash/internal/application/dispatch"
	"github.com/tu-usuario/resto-dash/internal/application/ingest"
	"github.com/tu-usuario/resto-dash/internal/application/usecase"
	infrapdf "github.com/tu-usuario/resto-dash/internal/infrastructure/pdf"
	"github.com/tu-usuario/resto-dash/internal/infrastructure/postgres"
	infrasmtp "github.com/tu-usuario/resto-dash/internal/infrastructure/smtp"
	httpRouter "github.com/tu-usuario/resto-dash/internal/interfaces/http"
	"github.com/tu-usuario/resto-dash/pkg/config"
	"github.com/tu-usuario/resto-dash/pkg/logger"
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

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migración del schema")
	}

	companyRepo := postgres.NewCompanyRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	userLocRepo := postgres.NewUserLocationRepository(pool)
	permissionRepo := postgres.NewPermissionRepository(pool)
	mailRepo := postgres.NewMailRepository(pool)
	uploadedRepo := postgres.NewUploadedFileRepository(pool)
	finRepo := postgres.NewFinancialRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret: cfg.JWT.Secret,
		Issuer: cfg.JWT.Issuer,
	})
	companyUC := usecase.NewCompanyUseCase(companyRepo, locationRepo)
	locationUC := usecase.NewLocationUseCase(locationRepo, companyRepo, txRunner)
	userUC := usecase.NewUserUseCase(userRepo, userLocRepo, permissionRepo)
	mailUC := usecase.NewMailUseCase(mailRepo)
	permissionUC := usecase.NewPermissionUseCase(permissionRepo, userRepo)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	dashboardUC := usecase.NewDashboardUseCase(finRepo, companyRepo, uploadedRepo, pdfGenerator)

	ingestSvc := ingest.NewService(txRunner, cfg.Upload.Dir, log, nil)

	// Dispatcher de correos programados: un tick por minuto
	mailer := infrasmtp.New(cfg.SMTP)
	dispatcher := dispatch.New(mailRepo, mailer, nil, log)
	dispatcher.Start()
	defer dispatcher.Stop()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs. El middleware lee el
	// archivo al construirse y entra en pánico si no existe, así que solo se
	// registra cuando el spec está en disco.
	const swaggerFile = "./docs/swagger.json"
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Resto-Dash API",
		}))
	} else {
		log.Warn().Str("archivo", swaggerFile).Msg("swagger.json no encontrado, se omite la UI de docs")
	}

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		CompanyUC:    companyUC,
		LocationUC:   locationUC,
		UserUC:       userUC,
		MailUC:       mailUC,
		PermissionUC: permissionUC,
		DashboardUC:  dashboardUC,
		IngestSvc:    ingestSvc,
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

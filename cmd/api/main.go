package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	_ "github.com/jhoicas/pos-crm-api/docs"
	"github.com/jhoicas/pos-crm-api/internal/application/auth"
	"github.com/jhoicas/pos-crm-api/internal/application/usecase"
	"github.com/jhoicas/pos-crm-api/internal/domain/repository"
	infraacquirer "github.com/jhoicas/pos-crm-api/internal/infrastructure/acquirer"
	infraarchive "github.com/jhoicas/pos-crm-api/internal/infrastructure/archive"
	infracache "github.com/jhoicas/pos-crm-api/internal/infrastructure/cache"
	"github.com/jhoicas/pos-crm-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/pos-crm-api/internal/infrastructure/pdf"
	"github.com/jhoicas/pos-crm-api/internal/infrastructure/postgres"
	infrastorage "github.com/jhoicas/pos-crm-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/pos-crm-api/internal/interfaces/http"
	"github.com/jhoicas/pos-crm-api/pkg/config"
	"github.com/jhoicas/pos-crm-api/pkg/logger"
	"github.com/jhoicas/pos-crm-api/pkg/metrics"
)

// @title                       POS CRM API
// @version                     1.0
// @description                 Back-office de distribución de terminales POS: catálogo, comercios y contratos.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
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
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}

	ctx := context.Background()
	m := metrics.New(cfg.Metrics.Prefix)

	// Persistencia: PostgreSQL (con migraciones) o memoria para desarrollo.
	var (
		repos repository.Repositories
		tx    usecase.TxRunner
	)
	switch cfg.Storage.Driver {
	case "memory":
		store := memory.NewStore()
		repos, tx = store.Repositories(), store
		log.Warn().Msg("usando almacenamiento en memoria: los datos se pierden al reiniciar")
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB, log)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		applied, err := postgres.Migrate(ctx, pool, log)
		if err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Int("applied", applied).Msg("migraciones al día")
		repos, tx = postgres.NewRepositories(pool), postgres.NewTxRunner(pool)
	}

	// Caché de listados de referencia.
	var refCache usecase.ReferenceCache = infracache.Noop{}
	if cfg.Redis.Enabled() {
		rc := infracache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL)
		if err := rc.Ping(ctx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis no disponible, caché deshabilitada")
		} else {
			defer rc.Close()
			refCache = rc
		}
	}

	files, err := infrastorage.NewLocal(cfg.Storage.UploadDir, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento de archivos")
	}

	status := usecase.NewPOSStatusService(log, m)
	authUC := auth.NewAuthUseCase(repos.Principals, files, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)
	exportUC := usecase.NewExportUseCase(
		repos, files,
		infrapdf.NewMarotoPDFGenerator(cfg.App.Name),
		infraacquirer.NewExporter(),
		infraarchive.NewZip(),
		log,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    20 * 1024 * 1024,
		// Los ids de la ruta se guardan en repositorios; sin copiarlos,
		// fasthttp reutiliza su buffer en la siguiente petición.
		Immutable: true,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))
	if cfg.Metrics.Enabled {
		app.Use(httpRouter.Metrics(m))
		app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))
	}

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "POS CRM API",
	}))

	app.Static(cfg.Storage.BaseURL, cfg.Storage.UploadDir)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		PrincipalUC: usecase.NewPrincipalUseCase(repos.Principals, files, log, m),
		Catalog: httpRouter.CatalogUseCases{
			Countries: usecase.NewCountryUseCase(repos.Countries, refCache, log, m),
			Companies: usecase.NewPOSCompanyUseCase(repos.Companies, repos.Models, refCache, log, m),
			Models:    usecase.NewPosModelUseCase(repos.Models, repos.Companies, refCache, log),
			POS:       usecase.NewPOSUseCase(repos.POS, repos.Models, repos.Companies, status, log, m),
			Services:  usecase.NewVirtualServiceUseCase(repos.Services, log, m),
		},
		CRM: httpRouter.CRMUseCases{
			Goals:     usecase.NewGoalUseCase(repos.Goals, log),
			Costumers: usecase.NewCostumerUseCase(repos, tx, files, log, m),
			Contracts: usecase.NewContractUseCase(repos, tx, status, files, log, m),
			Ledger:    usecase.NewLedgerUseCase(repos, log),
		},
		ExportUC:  exportUC,
		JWTSecret: cfg.JWT.Secret,
		Log:       log,
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

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/itsm-backoffice/internal/api/http"
	"github.com/spec-kit/itsm-backoffice/internal/api/http/handlers"
	"github.com/spec-kit/itsm-backoffice/internal/auth"
	"github.com/spec-kit/itsm-backoffice/internal/config"
	"github.com/spec-kit/itsm-backoffice/internal/events"
	"github.com/spec-kit/itsm-backoffice/internal/observability"
	"github.com/spec-kit/itsm-backoffice/internal/persistence"
	"github.com/spec-kit/itsm-backoffice/internal/repository"
	"github.com/spec-kit/itsm-backoffice/internal/service"
	"github.com/spec-kit/itsm-backoffice/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mongo, err := persistence.NewMongo(ctx, cfg.Mongo, logger)
	if err != nil {
		logger.Fatal("failed to connect mongo", zap.Error(err))
	}
	defer mongo.Close(context.Background())

	if cfg.Mongo.EnsureIndexes {
		if err := mongo.EnsureIndexes(ctx, logger); err != nil {
			logger.Fatal("failed to ensure indexes", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	db := mongo.Database
	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	serviceRepo := repository.NewManagedServiceRepository(db)
	contractRepo := repository.NewContractRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	noteRepo := repository.NewTicketNoteRepository(db)
	systemRepo := repository.NewSystemConfigRepository(db)

	dispatcher := events.NewInMemoryDispatcher()
	worker.RegisterBreachLogger(dispatcher, logger)

	authService := service.NewAuthService(cfg.Auth, userRepo)
	companyService := service.NewCompanyService(companyRepo)
	assetService := service.NewAssetService(assetRepo)
	catalogService := service.NewCatalogService(serviceRepo)
	contractService := service.NewContractService(contractRepo)
	ticketService := service.NewTicketService(cfg.Ticket, service.TicketDependencies{
		TicketRepo: ticketRepo,
		NoteRepo:   noteRepo,
		Dispatcher: dispatcher,
	})
	slaService := service.NewSLAService(ticketRepo, contractRepo, logger)
	dashboardService := service.NewDashboardService(ticketRepo, assetRepo, companyRepo, redis, cfg.Redis.DashboardTTL(), logger)
	reportService := service.NewReportService(ticketRepo, assetRepo, companyRepo, systemRepo)
	systemService := service.NewSystemService(systemRepo)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: cfg.App.Env == "production",
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, mongo, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Companies:      handlers.NewCompaniesHandler(companyService),
		Assets:         handlers.NewAssetsHandler(assetService),
		Services:       handlers.NewServicesHandler(catalogService),
		Contracts:      handlers.NewContractsHandler(contractService),
		Tickets:        handlers.NewTicketsHandler(ticketService),
		Alerts:         handlers.NewAlertsHandler(slaService),
		Dashboard:      handlers.NewDashboardHandler(dashboardService),
		Reports:        handlers.NewReportsHandler(reportService),
		System:         handlers.NewSystemHandler(systemService),
		AuthMiddleware: authMiddleware,
	})

	var monitor *worker.SLAMonitor
	if cfg.SLA.MonitorEnabled {
		monitor = worker.NewSLAMonitor(slaService, dispatcher, logger, cfg.SLA.MonitorSchedule)
		if err := monitor.Start(); err != nil {
			logger.Fatal("failed to start sla monitor", zap.Error(err))
		}
	}

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if monitor != nil {
		monitor.Stop()
	}
	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}

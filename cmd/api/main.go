package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"clientportal/docs"
	"clientportal/internal/adapter/http/handlers"
	"clientportal/internal/adapter/http/middleware"
	"clientportal/internal/adapter/http/routes"
	"clientportal/internal/adapter/http/validation"
	"clientportal/internal/adapter/persistence/repository"
	"clientportal/internal/config"
	"clientportal/internal/infrastructure/auth"
	"clientportal/internal/infrastructure/crm"
	"clientportal/internal/infrastructure/database"
	"clientportal/internal/infrastructure/kvstore"
	"clientportal/internal/infrastructure/metrics"
	"clientportal/internal/infrastructure/payments"
	"clientportal/internal/infrastructure/storage"
	"clientportal/internal/logger"
	"clientportal/internal/usecase"
	"clientportal/internal/usecase/interfaces"
)

// @title           Client Portal API
// @version         1.0
// @description     Proposals, questionnaires, client portals and engagement tracking for the agency back-office.

// @contact.name   API Support

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name admin-auth
// @description Signed session issued by POST /api/admin/login.

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Logging settings come from the plain config; secrets are resolved after
	// the logger exists.
	baseCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log, err := logger.NewLogger(&baseCfg.Logging, &baseCfg.App)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("name", baseCfg.App.Name),
		zap.String("environment", baseCfg.App.Environment),
	)

	cfg, err := config.LoadWithSecrets(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if host := swaggerHost(cfg.App.BaseURL); host != "" {
		docs.SwaggerInfo.Host = host
	}
	if err := validation.Register(); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	store, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}

	proposalRepo := repository.NewProposalKVRepository(store)
	questionnaireRepo := repository.NewQuestionnaireKVRepository(store)
	templateRepo := repository.NewTemplateKVRepository(store)
	portalRepo := repository.NewPortalKVRepository(store)
	manualRepo := repository.NewManualClientKVRepository(store)
	contentRepo := repository.NewContentKVRepository(store)
	trackingRepo := repository.NewTrackingKVRepository(store)

	fileStorage, err := storage.NewStorage(&cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	log.Info("Storage initialized", zap.String("mode", cfg.Storage.Mode))

	appMetrics := metrics.New(prometheus.DefaultRegisterer)

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments, log)
	if err != nil {
		log.Warn("Mercado Pago gateway not configured, proposals get fallback links", zap.Error(err))
	} else {
		gateway = mpGateway
	}

	var crmClient interfaces.ICRMClient
	if cfg.CRM.BaseURL != "" && cfg.CRM.APIKey != "" {
		crmClient = crm.NewClient(cfg.CRM, log)
	} else {
		log.Warn("CRM not configured, leads are only stored locally")
	}

	signer, err := auth.NewCookieSigner(cfg.Auth.CookieSecret, cfg.Auth.CookieTTL())
	if err != nil {
		return fmt.Errorf("failed to initialize session signer: %w", err)
	}

	proposalUC := usecase.NewProposalUseCase(proposalRepo, gateway, appMetrics, usecase.ProposalSettings{
		BaseURL:  cfg.App.BaseURL,
		Currency: cfg.Payments.Currency,
	}, log)
	questionnaireUC := usecase.NewQuestionnaireUseCase(questionnaireRepo, templateRepo, nil, log)
	clientUC := usecase.NewClientUseCase(portalRepo, manualRepo, proposalRepo, questionnaireRepo, contentRepo, log)
	contentUC := usecase.NewContentUseCase(contentRepo, fileStorage, log)
	trackingUC := usecase.NewTrackingUseCase(trackingRepo, proposalRepo, questionnaireRepo, appMetrics, log)
	webhookUC := usecase.NewPaymentWebhookUseCase(gateway, proposalUC, cfg.Payments.WebhookSecret, log)
	leadUC := usecase.NewLeadUseCase(crmClient, manualRepo, portalRepo, log)
	authUC := usecase.NewAuthUseCase(signer, usecase.AuthSettings{
		AdminPassword: cfg.Auth.AdminPassword,
		TeamPassword:  cfg.Auth.TeamPassword,
		TTL:           cfg.Auth.CookieTTL(),
	}, log)

	authMiddleware := middleware.NewAuth(authUC)
	isStaff := func(c *gin.Context) bool {
		_, ok := authMiddleware.Session(c)
		return ok
	}

	router := routes.NewRouter(routes.Handlers{
		Proposal:      handlers.NewProposalHandler(proposalUC),
		Questionnaire: handlers.NewQuestionnaireHandler(questionnaireUC),
		Client:        handlers.NewClientHandler(clientUC, cfg.App.BaseURL),
		Content:       handlers.NewContentHandler(contentUC, cfg.Storage.MaxUploadSizeMB),
		Tracking:      handlers.NewTrackingHandler(trackingUC, isStaff),
		Webhook:       handlers.NewWebhookHandler(webhookUC),
		Lead:          handlers.NewLeadHandler(leadUC),
		Auth:          handlers.NewAuthHandler(authUC, cfg.Auth.SecureCookies),
	}, authMiddleware, routes.Options{
		Logger:        log,
		Metrics:       appMetrics,
		Gatherer:      prometheus.DefaultGatherer,
		EnableSwagger: cfg.Server.EnableSwagger,
	})

	var handler http.Handler = router
	handler = middleware.RateLimit(&cfg.RateLimit, log)(handler)
	handler = middleware.CORS(&cfg.CORS, cfg.App.Environment, log)(handler)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}
		log.Info("Server stopped gracefully")
	}
	return nil
}

func openStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (kvstore.Store, error) {
	if cfg.Store.Backend == "memory" {
		log.Warn("Using in-memory store, data is lost on restart")
		return kvstore.NewMemoryStore(), nil
	}
	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to dynamodb: %w", err)
	}
	log.Info("DynamoDB store ready",
		zap.String("table", cfg.DynamoDB.Table),
		zap.String("region", cfg.DynamoDB.Region),
	)
	return kvstore.NewDynamoStore(ddb, cfg.DynamoDB.Table), nil
}

// swaggerHost strips the scheme from the public base URL.
func swaggerHost(baseURL string) string {
	host := strings.TrimPrefix(strings.TrimPrefix(baseURL, "https://"), "http://")
	return strings.TrimRight(host, "/")
}

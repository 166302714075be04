package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "clientportal/docs"
	"clientportal/internal/adapter/http/handlers"
	"clientportal/internal/adapter/http/middleware"
	"clientportal/internal/infrastructure/metrics"
	"clientportal/internal/logger"
)

const PathAPI = "/api"

// Handlers groups every HTTP handler mounted by NewRouter.
type Handlers struct {
	Proposal      *handlers.ProposalHandler
	Questionnaire *handlers.QuestionnaireHandler
	Client        *handlers.ClientHandler
	Content       *handlers.ContentHandler
	Tracking      *handlers.TrackingHandler
	Webhook       *handlers.WebhookHandler
	Lead          *handlers.LeadHandler
	Auth          *handlers.AuthHandler
}

type Options struct {
	Logger        *zap.Logger
	Metrics       *metrics.Metrics
	Gatherer      prometheus.Gatherer
	EnableSwagger bool
}

// NewRouter builds the gin engine with the ambient middleware and every route.
func NewRouter(h Handlers, auth *middleware.Auth, opts Options) *gin.Engine {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	router := gin.New()
	router.MaxMultipartMemory = handlers.DefaultMaxUploadSize
	setMiddlewares(router, opts)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	if opts.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}
	if opts.EnableSwagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := router.Group(PathAPI)
	addPublicRoutes(api, h)

	staff := api.Group("", auth.RequireStaff())
	addStaffRoutes(staff, h)

	admin := api.Group("", auth.RequireAdmin())
	addAdminRoutes(admin, h)

	return router
}

func setMiddlewares(router *gin.Engine, opts Options) {
	router.Use(logger.RequestLogger(opts.Logger))
	if opts.Metrics != nil {
		router.Use(opts.Metrics.Middleware())
	}
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.FromContext(c).Error("[http][router] recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "message": "An internal error occurred"})
	}))
}

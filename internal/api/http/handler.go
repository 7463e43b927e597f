package apiHttp

import (
	"time"

	ginzap "github.com/gin-contrib/zap"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/teacher-reviews/backend/docs"
	"github.com/teacher-reviews/backend/pkg/limiter"
	"github.com/teacher-reviews/backend/pkg/logger"
	"github.com/teacher-reviews/backend/pkg/validator"

	internalV1 "github.com/teacher-reviews/backend/internal/api/http/internal/v1"
	"github.com/teacher-reviews/backend/internal/config"
	"github.com/teacher-reviews/backend/internal/repository"
	"github.com/teacher-reviews/backend/internal/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	services  *service.Services
	txManager repository.Transactor
	config    *config.Config
}

func NewHandlers(
	services *service.Services,
	txManager repository.Transactor,
	cfg *config.Config,
) *Handler {
	return &Handler{
		services:  services,
		txManager: txManager,
		config:    cfg,
	}
}

func (h *Handler) Init(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	validator.RegisterGinValidator()

	router.Use(
		ginzap.Ginzap(logger.Logger(), time.RFC3339, true),
		limiter.Limit(cfg.Limiter.RPS, cfg.Limiter.Burst, cfg.Limiter.TTL),
		corsMiddleware,
	)
	router.Use(ginzap.RecoveryWithZap(logger.Logger(), true))

	if cfg.HttpServer.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.NewHandler()))
	}

	h.initAPI(router)

	return router
}

func (h *Handler) initAPI(router *gin.Engine) {
	internalHandlers := internalV1.NewHandler(h.services, h.txManager, h.config)
	api := router.Group("/api")
	internalHandlers.Init(api)
}

package v1

import (
	"log/slog"
	"net/http"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	JobUC       domain.JobUsecase
	MessageUC   domain.MessageUsecase
	CatalogUC   domain.CatalogUsecase
	BootstrapUC domain.BootstrapUsecase
	HealthUC    usecase.HealthUsecase
	// PostLimiter guards the write routes; nil disables rate limiting.
	PostLimiter gin.HandlerFunc
	Config      *config.Config
	Logger      *slog.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.RedirectTrailingSlash = true

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.CacheControl(middleware.ListPolicy(listMaxAge(deps.Config), defaultMaxAge(deps.Config))))
	r.Use(middleware.ErrorHandler(deps.Logger))

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Not Found")
	})
	r.NoMethod(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Not Found")
	})
	r.HandleMethodNotAllowed = true

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("")
	if deps.BootstrapUC != nil {
		api.Use(middleware.Bootstrap(deps.BootstrapUC))
	}

	write := deps.PostLimiter
	if write == nil {
		write = func(c *gin.Context) { c.Next() }
	}

	NewJobHandler(api, write, deps.JobUC)
	NewMessageHandler(api, write, deps.MessageUC)
	NewCatalogHandler(api, deps.CatalogUC, deps.HealthUC)

	return r
}

func listMaxAge(cfg *config.Config) int {
	if cfg == nil {
		return 60
	}
	return cfg.ListCacheMaxAgeSeconds
}

func defaultMaxAge(cfg *config.Config) int {
	if cfg == nil {
		return response.DefaultMaxAge
	}
	return cfg.CacheMaxAgeSeconds
}

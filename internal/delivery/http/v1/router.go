package v1

import (
	"circles-of-care-site/config"
	"circles-of-care-site/internal/delivery/http/middleware"
	"circles-of-care-site/internal/delivery/http/web"
	"circles-of-care-site/internal/domain"
	"circles-of-care-site/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	SiteUC    domain.SiteUsecase
	ContactUC domain.ContactUsecase
	HealthUC  usecase.HealthUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) (*gin.Engine, error) {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.AllowedOrigins, deps.Config.ReleaseMode)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware(deps.Config.ReleaseMode))
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(deps.Config)))
	r.Use(middleware.CSRFMiddleware(deps.Config.ReleaseMode))
	r.Use(middleware.ErrorHandler())

	// One limiter shared by the JSON endpoint and the HTML form
	contactLimit := middleware.RateLimitMiddleware(middleware.ContactRateLimitConfig(deps.Config))

	v1 := r.Group("/v1")

	NewHealthHandler(v1, deps.HealthUC)
	NewContactHandler(v1, deps.ContactUC, contactLimit)
	NewServiceHandler(v1, deps.SiteUC)
	NewSchemaHandler(v1, deps.SiteUC)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := web.Register(r, deps.SiteUC, deps.ContactUC, contactLimit); err != nil {
		return nil, err
	}

	return r, nil
}

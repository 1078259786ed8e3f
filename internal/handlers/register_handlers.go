package handlers

import (
	"github.com/craftkart/currency-engine/cmd/docs"
	portssvc "github.com/craftkart/currency-engine/internal/core/ports/services"
	"github.com/craftkart/currency-engine/internal/middleware"
	"github.com/craftkart/currency-engine/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", getHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public storefront routes and JWT-protected admin routes
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	// Public catalog routes
	registerCurrencyRoutes(v1, services.Currency)

	// Public conversion surface under /currency
	currency := v1.Group("/currency")
	registerRateRoutes(currency, services.Rates)
	registerMultiplierRoutes(currency, services.Multipliers)
	registerConversionRoutes(currency, services.Converter, services.Preference, services.Rates, services.Multipliers)
	registerPreferenceRoutes(currency, services.Preference)

	// Admin routes require a valid JWT
	admin := v1.Group("/admin", middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))
	registerCurrencyAdminRoutes(admin, services.Currency)
	registerMultiplierAdminRoutes(admin, services.Multiplier)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

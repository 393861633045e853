package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"carebridge/handlers"
	"carebridge/middleware"
)

// RegisterPricingRoutes registers quoting and overtime endpoints.
func RegisterPricingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/pricing")
	{
		api.POST("/quote", hb.Pricing.QuoteRate)
		api.POST("/overtime/preview", hb.Pricing.PreviewOvertime)
	}

	billing := r.Group("/api/billing")
	{
		billing.POST("/overtime/settle", hb.Billing.SettleOvertime)
	}
}

// RegisterCoverageRoutes registers the service-area check.
func RegisterCoverageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/coverage")
	{
		api.GET("/check", hb.Coverage.CheckCoverage)
	}
}

// RegisterAdminRoutes registers the back-office surface. All endpoints
// require the admin token.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	api.Use(middleware.AdminAuthMiddleware())
	{
		api.GET("/surge-rules", hb.Rules.ListRules)
		api.POST("/surge-rules", hb.Rules.CreateRule)
		api.GET("/surge-rules/:id", hb.Rules.GetRule)
		api.PUT("/surge-rules/:id", hb.Rules.UpdateRule)
		api.DELETE("/surge-rules/:id", hb.Rules.DeleteRule)

		api.GET("/settings/service-radius", hb.Settings.GetServiceRadius)
		api.PUT("/settings/service-radius", hb.Settings.SetServiceRadius)
		api.GET("/settings/asap", hb.Settings.GetRushPolicy)
		api.PUT("/settings/asap", hb.Settings.SetRushPolicy)

		api.POST("/geocode/run", hb.Geocode.RunGeocodeMissing)
	}
}

// RegisterHealthRoute registers the liveness endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes wires CORS and every route group onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterPricingRoutes(r, hb)
	RegisterCoverageRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}

package routes

import (
	"github.com/Eyner-schoonewolff/checkout-api/config"
	"github.com/Eyner-schoonewolff/checkout-api/controllers"
	"github.com/Eyner-schoonewolff/checkout-api/middleware"
	"github.com/Eyner-schoonewolff/checkout-api/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	// Checkout state lives in the session cookie; the card entry in it is
	// transient and cleared once a terminal status page is reached.
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		MaxAge:   60 * 60, // checkout sessions are short-lived
		Path:     "/",
		Secure:   cfg.Env == "production",
		HttpOnly: true,
	})
	router.Use(sessions.Sessions("checkout", store))

	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())
	router.Use(middleware.MetricsMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/v1")
	{
		api.GET("/products", controllers.ListProducts)

		checkout := api.Group("/checkout")
		{
			checkout.POST("", controllers.StartCheckout)
			checkout.GET("/summary", controllers.GetCheckoutSummary)
			checkout.POST("/card", controllers.SubmitCard)
			checkout.POST("/confirm", controllers.ConfirmPayment)
			checkout.GET("/status", controllers.GetCheckoutStatus)
		}

		api.GET("/transactions", controllers.ListTransactions)
		api.GET("/deliveries/:id", controllers.GetDelivery)
		api.POST("/customers", controllers.CreateCustomer)
	}

	return router
}

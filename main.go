package main

import (
	"encoding/gob"
	"log"

	"github.com/Eyner-schoonewolff/checkout-api/backend"
	"github.com/Eyner-schoonewolff/checkout-api/config"
	"github.com/Eyner-schoonewolff/checkout-api/controllers"
	"github.com/Eyner-schoonewolff/checkout-api/gateway"
	"github.com/Eyner-schoonewolff/checkout-api/models"
	"github.com/Eyner-schoonewolff/checkout-api/payment"
	"github.com/Eyner-schoonewolff/checkout-api/routes"
	"github.com/Eyner-schoonewolff/checkout-api/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Register types for session serialization
	gob.Register(models.Transaction{})
	gob.Register(models.CardData{})

	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Wire external clients and the confirmation orchestrator
	backendClient := backend.NewClient(cfg.BackendBaseURL, cfg.BackendAPIKey)
	gatewayClient := gateway.NewClient(cfg.GatewayBaseURL, cfg.GatewayPublicKey, cfg.GatewayPrivateKey, cfg.GatewayIntegritySecret)
	orchestrator := payment.NewOrchestrator(backendClient, gatewayClient, payment.Customer{
		Email: cfg.DemoCustomerEmail,
		Name:  cfg.DemoCustomerName,
		Phone: cfg.DemoCustomerPhone,
	})
	controllers.Init(cfg, backendClient, orchestrator)

	// Set up router
	router := routes.SetupRouter(cfg)

	utils.LogInfo("Server starting on port %s", cfg.Port)
	// Start server
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}

package controllers

import (
	"github.com/Eyner-schoonewolff/checkout-api/backend"
	"github.com/Eyner-schoonewolff/checkout-api/config"
	"github.com/Eyner-schoonewolff/checkout-api/payment"
)

var (
	cfg           *config.Config
	backendClient *backend.Client
	orchestrator  *payment.Orchestrator
)

// Init wires the controllers to their collaborators
func Init(c *config.Config, b *backend.Client, o *payment.Orchestrator) {
	cfg = c
	backendClient = b
	orchestrator = o
}

package controllers

import (
	"errors"

	"github.com/Eyner-schoonewolff/checkout-api/backend"
	"github.com/Eyner-schoonewolff/checkout-api/middleware"
	"github.com/Eyner-schoonewolff/checkout-api/models"
	"github.com/Eyner-schoonewolff/checkout-api/payment"
	"github.com/Eyner-schoonewolff/checkout-api/utils"
	"github.com/gin-gonic/gin"
)

// StartCheckout creates a pending transaction for a product and stores its
// snapshot in the checkout session
func StartCheckout(c *gin.Context) {
	utils.LogInfo("StartCheckout called")

	var req struct {
		ProductID string `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request. product_id is required", err.Error())
		return
	}

	tx, err := backendClient.CreateTransaction(c.Request.Context(), backend.CreateTransactionInput{
		ProductID:     req.ProductID,
		CustomerID:    cfg.DemoCustomerID,
		CustomerName:  cfg.DemoCustomerName,
		CustomerEmail: cfg.DemoCustomerEmail,
	})
	if err != nil {
		utils.LogError("Failed to create transaction for product %s: %v", req.ProductID, err)
		utils.BadGateway(c, "Could not start checkout, please try again", err.Error())
		return
	}
	utils.LogInfo("Transaction %s created for product %s, amount %d", tx.ID, tx.ProductID, tx.Amount)

	if err := utils.SetCheckoutTransaction(c, tx); err != nil {
		utils.LogError("Failed to store transaction %s in session: %v", tx.ID, err)
		utils.InternalServerError(c, "Failed to store checkout session", nil)
		return
	}

	utils.Created(c, "Checkout started", gin.H{
		"transaction": tx,
		"summary":     models.NewPaymentSummary(tx.Amount),
	})
}

// GetCheckoutSummary returns the session transaction with its fee breakdown
func GetCheckoutSummary(c *gin.Context) {
	tx, ok := utils.GetCheckoutTransaction(c)
	if !ok {
		utils.NotFound(c, "No active transaction")
		return
	}

	summary := models.NewPaymentSummary(tx.Amount)
	utils.Success(c, "Checkout summary", gin.H{
		"transaction": tx,
		"card_last4":  utils.GetCheckoutLastFour(c),
		"summary": gin.H{
			"base_amount":        summary.BaseAmount,
			"shipping":           summary.Shipping,
			"fee":                summary.Fee,
			"total":              summary.Total,
			"formatted_base":     models.FormatAmount(summary.BaseAmount),
			"formatted_shipping": models.FormatAmount(summary.Shipping),
			"formatted_fee":      models.FormatAmount(summary.Fee),
			"formatted_total":    models.FormatAmount(summary.Total),
		},
	})
}

// SubmitCard validates the card form and stashes the normalized instrument in
// the session until the confirmation step
func SubmitCard(c *gin.Context) {
	utils.LogInfo("SubmitCard called")

	if _, ok := utils.GetCheckoutTransaction(c); !ok {
		utils.NotFound(c, "No active transaction")
		return
	}

	var req struct {
		Number string `json:"number"`
		CVC    string `json:"cvc"`
		Exp    string `json:"exp"` // MM/YY
		Name   string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body", err.Error())
		return
	}

	var fieldErrors utils.FieldValidationErrors
	if !utils.ValidateCardNumber(req.Number) {
		fieldErrors = append(fieldErrors, utils.FieldValidationError{Field: "number", Message: "must be 16 digits"})
	}
	if !utils.ValidateCVC(req.CVC) {
		fieldErrors = append(fieldErrors, utils.FieldValidationError{Field: "cvc", Message: "must be 3 digits"})
	}
	if !utils.ValidateExpiry(req.Exp) {
		fieldErrors = append(fieldErrors, utils.FieldValidationError{Field: "exp", Message: "must be MM/YY"})
	}
	if req.Name == "" {
		fieldErrors = append(fieldErrors, utils.FieldValidationError{Field: "name", Message: "is required"})
	}
	if len(fieldErrors) > 0 {
		utils.ValidationError(c, "Invalid card data", fieldErrors)
		return
	}

	month, year := utils.SplitExpiry(req.Exp)
	card := models.CardData{
		Number:   req.Number,
		CVC:      req.CVC,
		ExpMonth: month,
		ExpYear:  year,
		Holder:   req.Name,
	}.Normalized()

	if err := utils.SetCheckoutCard(c, card); err != nil {
		utils.LogError("Failed to store card in session: %v", err)
		utils.InternalServerError(c, "Failed to store checkout session", nil)
		return
	}
	utils.LogInfo("Card captured, last4 %s", card.LastFour())

	utils.Success(c, "Card accepted", gin.H{
		"card_last4": card.LastFour(),
	})
}

// ConfirmPayment runs the confirmation flow against the gateway and backend,
// then triggers fulfillment when the payment completed
func ConfirmPayment(c *gin.Context) {
	utils.LogInfo("ConfirmPayment called")

	tx, ok := utils.GetCheckoutTransaction(c)
	if !ok {
		utils.NotFound(c, "No active transaction")
		return
	}

	// Zero card is fine here: the orchestrator rejects it before any
	// gateway call and the user gets the inline validation message.
	card, _ := utils.GetCheckoutCard(c)

	updated, err := orchestrator.Confirm(c.Request.Context(), tx.ID, card)
	if err != nil {
		var validationErr *payment.ValidationError
		var gatewayErr *payment.GatewayError
		var upstreamErr *payment.UpstreamError
		switch {
		case errors.As(err, &validationErr):
			utils.BadRequest(c, validationErr.Message, nil)
		case errors.As(err, &gatewayErr):
			utils.LogError("Payment rejected for transaction %s: %s", tx.ID, gatewayErr.Reason)
			utils.BadRequest(c, "Payment was rejected", gatewayErr.Reason)
		case errors.As(err, &upstreamErr):
			utils.LogError("Backend failure confirming transaction %s: %v", tx.ID, err)
			utils.BadGateway(c, "Could not confirm the payment, please try again", nil)
		default:
			utils.LogError("Unexpected failure confirming transaction %s: %v", tx.ID, err)
			utils.InternalServerError(c, "Could not confirm the payment", nil)
		}
		return
	}

	middleware.CountPaymentOutcome(string(updated.Status))

	// The card is single-use; drop it as soon as the flow finished
	if err := utils.SetCheckoutTransaction(c, updated); err != nil {
		utils.LogError("Failed to update session for transaction %s: %v", updated.ID, err)
	}
	if err := utils.ClearCheckoutCard(c); err != nil {
		utils.LogError("Failed to clear card from session: %v", err)
	}

	if updated.Status == models.TransactionCompleted {
		orchestrator.TriggerFulfillment(updated.ProductID, cfg.DemoCustomerID)
	}

	utils.Success(c, "Payment processed", gin.H{
		"transaction": updated,
	})
}

// GetCheckoutStatus returns the status page data: the session transaction
// plus the product's live stock. Once a terminal status is shown, all
// checkout state is dropped from the session.
func GetCheckoutStatus(c *gin.Context) {
	tx, ok := utils.GetCheckoutTransaction(c)
	if !ok {
		utils.NotFound(c, "No active transaction")
		return
	}

	// Live stock lookup; a failure here only hides the stock badge
	var stock *int
	displayAmount := tx.Amount
	if products, err := backendClient.GetProducts(c.Request.Context()); err == nil {
		// A product missing from the catalog sold out and is no longer listed
		soldOut := 0
		stock = &soldOut
		for _, p := range products {
			if p.ID == tx.ProductID {
				s := p.Stock
				stock = &s
				if displayAmount == 0 {
					displayAmount = p.Price
				}
				break
			}
		}
	} else {
		utils.LogError("Failed to fetch products for status of transaction %s: %v", tx.ID, err)
	}

	if tx.Status.IsTerminal() {
		if err := utils.ClearCheckoutSession(c); err != nil {
			utils.LogError("Failed to clear checkout session: %v", err)
		}
	}

	utils.Success(c, "Checkout status", gin.H{
		"transaction":      tx,
		"display_amount":   models.FormatAmount(displayAmount),
		"stock":            stock,
		"is_terminal":      tx.Status.IsTerminal(),
		"polling_finished": tx.Status != models.TransactionPending,
	})
}

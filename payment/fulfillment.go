package payment

import (
	"context"
	"time"

	"github.com/Eyner-schoonewolff/checkout-api/utils"
)

// TriggerFulfillment requests a delivery record for a completed purchase.
// The call is fire-and-forget: a failure is logged and never surfaced, and
// it never rolls back the payment.
func (o *Orchestrator) TriggerFulfillment(productID, customerID string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		delivery, err := o.backend.CreateDelivery(ctx, productID, customerID)
		if err != nil {
			utils.LogError("Failed to create delivery for product %s, customer %s: %v", productID, customerID, err)
			return
		}
		utils.LogInfo("Delivery %s created for product %s, customer %s", delivery.ID, productID, customerID)
	}()
}

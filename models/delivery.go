package models

// DeliveryStatus is the fulfillment status vocabulary owned by the backend
type DeliveryStatus string

const (
	DeliveryCreated    DeliveryStatus = "CREATED"
	DeliveryInProgress DeliveryStatus = "IN_PROGRESS"
	DeliveryDelivered  DeliveryStatus = "DELIVERED"
)

// Delivery is a fulfillment record created after a completed payment.
// This service only requests its creation; the backend owns its lifecycle.
type Delivery struct {
	ID         string         `json:"id"`
	ProductID  string         `json:"product_id"`
	CustomerID string         `json:"customer_id"`
	Status     DeliveryStatus `json:"status"`
	CreatedAt  string         `json:"created_at,omitempty"`
}

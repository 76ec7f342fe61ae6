package models

// GatewayStatus is the status vocabulary owned by the payment gateway
type GatewayStatus string

const (
	GatewayPending  GatewayStatus = "PENDING"
	GatewayApproved GatewayStatus = "APPROVED"
	GatewayDeclined GatewayStatus = "DECLINED"
	GatewayVoided   GatewayStatus = "VOIDED"
)

// IsTerminal reports whether the gateway will not change this status again
func (s GatewayStatus) IsTerminal() bool {
	return s == GatewayApproved || s == GatewayDeclined || s == GatewayVoided
}

// ToTransactionStatus maps a gateway status onto the backend vocabulary.
// The mapping is fixed: APPROVED is the only success outcome.
func (s GatewayStatus) ToTransactionStatus() TransactionStatus {
	switch s {
	case GatewayApproved:
		return TransactionCompleted
	case GatewayPending:
		return TransactionPending
	default:
		return TransactionFailed
	}
}

// GatewayTransaction is a charge owned by the payment gateway.
// This service creates and reads it, never mutates it.
type GatewayTransaction struct {
	ID                string        `json:"id"`
	AmountInCents     int64         `json:"amount_in_cents"`
	Currency          string        `json:"currency"`
	Reference         string        `json:"reference"`
	PaymentMethodType string        `json:"payment_method_type"`
	Status            GatewayStatus `json:"status"`
	StatusMessage     string        `json:"status_message,omitempty"`
	CreatedAt         string        `json:"created_at,omitempty"`
}

// CardToken is the result of tokenizing a card at the gateway
type CardToken struct {
	ID       string `json:"id"`
	Brand    string `json:"brand"`
	LastFour string `json:"last_four"`
	ExpMonth string `json:"exp_month"`
	ExpYear  string `json:"exp_year"`
	Holder   string `json:"card_holder"`
}

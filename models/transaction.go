package models

// TransactionStatus is the status vocabulary owned by the commerce backend
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "PENDING"
	TransactionCompleted TransactionStatus = "COMPLETED"
	TransactionFailed    TransactionStatus = "FAILED"
)

// IsTerminal reports whether no further automatic transition occurs
func (s TransactionStatus) IsTerminal() bool {
	return s == TransactionCompleted || s == TransactionFailed
}

// Transaction is a checkout transaction as exposed to the UI.
// The backend owns the record; this service only reads it and patches status.
type Transaction struct {
	ID        string            `json:"id"`
	ProductID string            `json:"product_id"`
	Amount    int64             `json:"amount"` // minor units (COP cents)
	Status    TransactionStatus `json:"status"`
	CreatedAt string            `json:"created_at"`
}

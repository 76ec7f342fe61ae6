package models

import (
	"fmt"
	"math"
)

// Fee rates applied on top of the product amount at checkout
const (
	shippingRate   = 0.005
	serviceFeeRate = 0.02
)

// PaymentSummary is the fee breakdown shown before confirming a payment
type PaymentSummary struct {
	BaseAmount int64 `json:"base_amount"`
	Shipping   int64 `json:"shipping"`
	Fee        int64 `json:"fee"`
	Total      int64 `json:"total"`
}

// NewPaymentSummary builds the breakdown for an amount in minor units
func NewPaymentSummary(baseAmount int64) PaymentSummary {
	shipping := int64(math.Round(float64(baseAmount) * shippingRate))
	fee := int64(math.Round(float64(baseAmount) * serviceFeeRate))
	return PaymentSummary{
		BaseAmount: baseAmount,
		Shipping:   shipping,
		Fee:        fee,
		Total:      baseAmount + shipping + fee,
	}
}

// FormatAmount renders minor units as a display string, e.g. 10000 -> "$100.00"
func FormatAmount(minorUnits int64) string {
	return fmt.Sprintf("$%.2f", float64(minorUnits)/100)
}

package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// FieldValidationError represents a validation error for a specific field
type FieldValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldValidationErrors represents multiple field validation errors
type FieldValidationErrors []FieldValidationError

// Error implements the error interface
func (e FieldValidationErrors) Error() string {
	var messages []string
	for _, err := range e {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

var (
	cardNumberRegex = regexp.MustCompile(`^\d{16}$`)
	cvcRegex        = regexp.MustCompile(`^\d{3}$`)
	expiryRegex     = regexp.MustCompile(`^(0[1-9]|1[0-2])/(\d{2})$`)
	emailRegex      = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// ValidateCardNumber checks for a 16-digit card number, spaces allowed
func ValidateCardNumber(number string) bool {
	return cardNumberRegex.MatchString(strings.ReplaceAll(number, " ", ""))
}

// ValidateCVC checks for a 3-digit security code
func ValidateCVC(cvc string) bool {
	return cvcRegex.MatchString(cvc)
}

// ValidateExpiry checks an MM/YY expiry string
func ValidateExpiry(expiry string) bool {
	return expiryRegex.MatchString(expiry)
}

// SplitExpiry returns the month and two-digit year of a valid MM/YY string
func SplitExpiry(expiry string) (month, year string) {
	parts := expiryRegex.FindStringSubmatch(expiry)
	if len(parts) != 3 {
		return "", ""
	}
	return parts[1], parts[2]
}

// ValidateEmail checks an email address
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

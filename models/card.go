package models

import "strings"

// CardData is the card instrument collected during checkout.
// It only ever lives in the session cookie between the card form and the
// confirmation step, and is cleared once a terminal status is reached.
type CardData struct {
	Number   string `json:"number"`
	CVC      string `json:"cvc"`
	ExpMonth string `json:"exp_month"`
	ExpYear  string `json:"exp_year"` // two-digit year, gateway format
	Holder   string `json:"card_holder"`
}

// IsEmpty reports whether no card has been captured yet
func (c CardData) IsEmpty() bool {
	return c.Number == "" && c.CVC == "" && c.Holder == ""
}

// LastFour returns the trailing digits used for display
func (c CardData) LastFour() string {
	n := strings.ReplaceAll(c.Number, " ", "")
	if len(n) < 4 {
		return n
	}
	return n[len(n)-4:]
}

// Normalized returns a copy in the exact shape the gateway expects:
// no spaces in the number, zero-padded month, two-digit year, trimmed holder.
func (c CardData) Normalized() CardData {
	month := c.ExpMonth
	if len(month) == 1 {
		month = "0" + month
	}
	year := c.ExpYear
	if len(year) == 4 {
		year = year[2:]
	}
	return CardData{
		Number:   strings.ReplaceAll(c.Number, " ", ""),
		CVC:      c.CVC,
		ExpMonth: month,
		ExpYear:  year,
		Holder:   strings.TrimSpace(c.Holder),
	}
}

package utils

import (
	"github.com/Eyner-schoonewolff/checkout-api/models"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Session keys for checkout state. The card entry is transient: it only
// bridges the card form and the confirmation step, and is cleared together
// with everything else once a terminal status is reached.
const (
	sessionKeyTransaction = "tx"
	sessionKeyCard        = "card"
	sessionKeyLastFour    = "card_last4"
)

// SetCheckoutTransaction stores the current transaction snapshot in the session
func SetCheckoutTransaction(c *gin.Context, tx models.Transaction) error {
	session := sessions.Default(c)
	session.Set(sessionKeyTransaction, tx)
	return session.Save()
}

// GetCheckoutTransaction returns the session's transaction snapshot, if any
func GetCheckoutTransaction(c *gin.Context) (models.Transaction, bool) {
	session := sessions.Default(c)
	v := session.Get(sessionKeyTransaction)
	tx, ok := v.(models.Transaction)
	return tx, ok
}

// SetCheckoutCard stashes the card instrument for the confirmation step
func SetCheckoutCard(c *gin.Context, card models.CardData) error {
	session := sessions.Default(c)
	session.Set(sessionKeyCard, card)
	session.Set(sessionKeyLastFour, card.LastFour())
	return session.Save()
}

// GetCheckoutCard returns the stashed card instrument, if any
func GetCheckoutCard(c *gin.Context) (models.CardData, bool) {
	session := sessions.Default(c)
	v := session.Get(sessionKeyCard)
	card, ok := v.(models.CardData)
	return card, ok
}

// GetCheckoutLastFour returns the display digits of the stashed card
func GetCheckoutLastFour(c *gin.Context) string {
	session := sessions.Default(c)
	if v, ok := session.Get(sessionKeyLastFour).(string); ok {
		return v
	}
	return ""
}

// ClearCheckoutCard removes the card instrument but keeps the transaction
func ClearCheckoutCard(c *gin.Context) error {
	session := sessions.Default(c)
	session.Delete(sessionKeyCard)
	return session.Save()
}

// ClearCheckoutSession removes all checkout state
func ClearCheckoutSession(c *gin.Context) error {
	session := sessions.Default(c)
	session.Delete(sessionKeyTransaction)
	session.Delete(sessionKeyCard)
	session.Delete(sessionKeyLastFour)
	return session.Save()
}

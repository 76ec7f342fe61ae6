// Package payment sequences the steps that move a pending transaction to a
// final state, coordinating the commerce backend and the payment gateway.
package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/Eyner-schoonewolff/checkout-api/gateway"
	"github.com/Eyner-schoonewolff/checkout-api/models"
	"github.com/Eyner-schoonewolff/checkout-api/utils"
)

// BackendAPI is the slice of the commerce backend the orchestrator needs
type BackendAPI interface {
	GetTransaction(ctx context.Context, id string) (models.Transaction, error)
	UpdateTransactionStatus(ctx context.Context, id string, status models.TransactionStatus, gatewayTxID string) (models.Transaction, error)
	CreateDelivery(ctx context.Context, productID, customerID string) (models.Delivery, error)
}

// GatewayAPI is the slice of the payment gateway the orchestrator needs
type GatewayAPI interface {
	AcceptanceToken(ctx context.Context) (string, error)
	TokenizeCard(ctx context.Context, card models.CardData) (models.CardToken, error)
	CreateTransaction(ctx context.Context, in gateway.CreateTransactionInput) (models.GatewayTransaction, error)
	GetTransaction(ctx context.Context, id string) (models.GatewayTransaction, error)
}

// Customer identifies the buyer on gateway charges
type Customer struct {
	Email string
	Name  string
	Phone string
}

const (
	defaultCurrency     = "COP"
	defaultInstallments = 1
	maxPollAttempts     = 3
)

// Orchestrator runs the transaction confirmation flow
type Orchestrator struct {
	backend  BackendAPI
	gateway  GatewayAPI
	customer Customer

	// sleep and now are injectable for tests; they default to the clock
	sleep func(time.Duration)
	now   func() time.Time
}

// NewOrchestrator wires the confirmation flow against both collaborators
func NewOrchestrator(backendAPI BackendAPI, gatewayAPI GatewayAPI, customer Customer) *Orchestrator {
	return &Orchestrator{
		backend:  backendAPI,
		gateway:  gatewayAPI,
		customer: customer,
		sleep:    time.Sleep,
		now:      time.Now,
	}
}

// Confirm moves the transaction identified by txID to a status reflecting the
// payment outcome observed from the gateway within a bounded time budget.
//
// The backend is patched once with the gateway's immediate status and again
// only if polling observes a different one, so the backend always holds the
// latest known outcome even if polling is interrupted.
func (o *Orchestrator) Confirm(ctx context.Context, txID string, card models.CardData) (models.Transaction, error) {
	utils.LogInfo("Confirming transaction %s", txID)

	backendTx, err := o.backend.GetTransaction(ctx, txID)
	if err != nil {
		utils.LogError("Failed to fetch transaction %s: %v", txID, err)
		return models.Transaction{}, &UpstreamError{Op: "transaction fetch", Err: err}
	}
	utils.LogInfo("Transaction %s: amount=%d status=%s", txID, backendTx.Amount, backendTx.Status)

	if card.IsEmpty() {
		return models.Transaction{}, &ValidationError{Message: "card data required"}
	}

	// Tokenization and acceptance-token fetch have no ordering dependency;
	// run both and join before creating the charge.
	token, acceptance, err := o.prepareGateway(ctx, card)
	if err != nil {
		utils.LogError("Gateway preparation failed for transaction %s: %v", txID, err)
		return models.Transaction{}, err
	}
	utils.LogInfo("Card tokenized for transaction %s: brand=%s last4=%s", txID, token.Brand, token.LastFour)

	// The charge always uses the backend's amount, never a client-supplied
	// one. The reference embeds the current time so a retried confirmation
	// never collides with an earlier gateway reference.
	reference := fmt.Sprintf("TX_%s_%d", txID, o.now().UnixMilli())
	gatewayTx, err := o.gateway.CreateTransaction(ctx, gateway.CreateTransactionInput{
		AmountInCents:   backendTx.Amount,
		Currency:        defaultCurrency,
		Reference:       reference,
		CardTokenID:     token.ID,
		Installments:    defaultInstallments,
		AcceptanceToken: acceptance,
		CustomerEmail:   o.customer.Email,
		CustomerName:    o.customer.Name,
		CustomerPhone:   o.customer.Phone,
	})
	if err != nil {
		utils.LogError("Gateway transaction creation failed for %s: %v", txID, err)
		// A charge attempt was made; mark the transaction FAILED so the
		// backend never shows a stale PENDING for a dead attempt. The patch
		// is best effort.
		if _, patchErr := o.backend.UpdateTransactionStatus(ctx, txID, models.TransactionFailed, ""); patchErr != nil {
			utils.LogError("Failed to mark transaction %s as FAILED: %v", txID, patchErr)
		}
		return models.Transaction{}, &GatewayError{Reason: err.Error(), Err: err}
	}
	utils.LogInfo("Gateway transaction %s created for %s: status=%s reference=%s",
		gatewayTx.ID, txID, gatewayTx.Status, gatewayTx.Reference)

	// First write: the gateway's immediate status, before any polling
	status := gatewayTx.Status.ToTransactionStatus()
	firstPatch, err := o.backend.UpdateTransactionStatus(ctx, txID, status, gatewayTx.ID)
	if err != nil {
		utils.LogError("Failed to write initial status %s for transaction %s: %v", status, txID, err)
		return models.Transaction{}, &UpstreamError{Op: "status update", Err: err}
	}
	utils.LogInfo("Backend status for %s set to %s", txID, firstPatch.Status)

	latest := o.pollGatewayStatus(ctx, gatewayTx)

	// Second write only when polling observed a different outcome
	finalStatus := latest.ToTransactionStatus()
	if finalStatus != status {
		utils.LogInfo("Final status for %s changed %s -> %s, updating backend", txID, status, finalStatus)
		finalPatch, err := o.backend.UpdateTransactionStatus(ctx, txID, finalStatus, gatewayTx.ID)
		if err != nil {
			utils.LogError("Failed to write final status %s for transaction %s: %v", finalStatus, txID, err)
			return models.Transaction{}, &UpstreamError{Op: "status update", Err: err}
		}
		status = finalPatch.Status
	}

	return models.Transaction{
		ID:        txID,
		ProductID: backendTx.ProductID,
		Amount:    backendTx.Amount,
		Status:    status,
		CreatedAt: backendTx.CreatedAt,
	}, nil
}

// prepareGateway tokenizes the card and fetches the acceptance token
// concurrently. Both must succeed; either failure aborts with GatewayError.
func (o *Orchestrator) prepareGateway(ctx context.Context, card models.CardData) (models.CardToken, string, error) {
	type tokenResult struct {
		token models.CardToken
		err   error
	}
	type acceptanceResult struct {
		token string
		err   error
	}

	tokenCh := make(chan tokenResult, 1)
	acceptanceCh := make(chan acceptanceResult, 1)

	go func() {
		token, err := o.gateway.TokenizeCard(ctx, card)
		tokenCh <- tokenResult{token: token, err: err}
	}()
	go func() {
		token, err := o.gateway.AcceptanceToken(ctx)
		acceptanceCh <- acceptanceResult{token: token, err: err}
	}()

	tokenRes := <-tokenCh
	acceptanceRes := <-acceptanceCh

	if tokenRes.err != nil {
		return models.CardToken{}, "", &GatewayError{Reason: tokenRes.err.Error(), Err: tokenRes.err}
	}
	if acceptanceRes.err != nil {
		return models.CardToken{}, "", &GatewayError{Reason: acceptanceRes.err.Error(), Err: acceptanceRes.err}
	}
	return tokenRes.token, acceptanceRes.token, nil
}

// pollGatewayStatus re-reads the gateway transaction until a terminal status
// is observed or attempts run out. Lookup failures are logged and treated as
// no new information; the previous observation stands.
func (o *Orchestrator) pollGatewayStatus(ctx context.Context, gatewayTx models.GatewayTransaction) models.GatewayStatus {
	latest := gatewayTx.Status
	for attempt := 1; attempt <= maxPollAttempts && !latest.IsTerminal(); attempt++ {
		o.sleep(pollDelay(attempt))
		check, err := o.gateway.GetTransaction(ctx, gatewayTx.ID)
		if err != nil {
			utils.LogError("Poll attempt %d/%d for gateway transaction %s failed: %v",
				attempt, maxPollAttempts, gatewayTx.ID, err)
			continue
		}
		latest = check.Status
		utils.LogInfo("Poll attempt %d/%d for gateway transaction %s: status=%s",
			attempt, maxPollAttempts, gatewayTx.ID, latest)
	}
	return latest
}

// pollDelay is 500ms before the first retry, 1000ms before subsequent ones
func pollDelay(attempt int) time.Duration {
	if attempt == 1 {
		return 500 * time.Millisecond
	}
	return time.Second
}

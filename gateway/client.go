// Package gateway is the REST client for the external payment gateway.
// Tokenization uses the merchant's public key, transaction operations the
// private key; transaction creation carries an integrity signature binding
// reference, amount and currency.
package gateway

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/Eyner-schoonewolff/checkout-api/models"
)

// Client talks to the payment gateway
type Client struct {
	baseURL         string
	publicKey       string
	privateKey      string
	integritySecret string
	httpClient      *http.Client
}

// NewClient creates a gateway client
func NewClient(baseURL, publicKey, privateKey, integritySecret string) *Client {
	return &Client{
		baseURL:         baseURL,
		publicKey:       publicKey,
		privateKey:      privateKey,
		integritySecret: integritySecret,
		httpClient:      &http.Client{Timeout: 10 * time.Second},
	}
}

// wireGatewayTransaction mirrors the gateway's transaction payload
type wireGatewayTransaction struct {
	ID                string  `json:"id"`
	CreatedAt         string  `json:"created_at"`
	AmountInCents     int64   `json:"amount_in_cents"`
	Reference         string  `json:"reference"`
	Currency          string  `json:"currency"`
	PaymentMethodType string  `json:"payment_method_type"`
	Status            string  `json:"status"`
	StatusMessage     *string `json:"status_message"`
}

func (w wireGatewayTransaction) toModel() models.GatewayTransaction {
	tx := models.GatewayTransaction{
		ID:                w.ID,
		AmountInCents:     w.AmountInCents,
		Currency:          w.Currency,
		Reference:         w.Reference,
		PaymentMethodType: w.PaymentMethodType,
		Status:            models.GatewayStatus(w.Status),
		CreatedAt:         w.CreatedAt,
	}
	if w.StatusMessage != nil {
		tx.StatusMessage = *w.StatusMessage
	}
	return tx
}

// gatewayEnvelope is the {"data": ...} wrapper the gateway puts around payloads
type gatewayEnvelope struct {
	Data json.RawMessage `json:"data"`
}

// AcceptanceToken fetches the presigned terms-acceptance token for the merchant
func (c *Client) AcceptanceToken(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/merchants/"+url.PathEscape(c.publicKey), nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gateway merchant lookup: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", fmt.Errorf("could not obtain acceptance token: %s", readErrorReason(res))
	}

	var body struct {
		Data struct {
			PresignedAcceptance struct {
				AcceptanceToken string `json:"acceptance_token"`
			} `json:"presigned_acceptance"`
		} `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode merchant response: %w", err)
	}
	return body.Data.PresignedAcceptance.AcceptanceToken, nil
}

// TokenizeCard exchanges raw card data for a one-time card token.
// The card is normalized to the gateway's expected shape before sending.
func (c *Client) TokenizeCard(ctx context.Context, card models.CardData) (models.CardToken, error) {
	clean := card.Normalized()
	payload := map[string]string{
		"number":      clean.Number,
		"cvc":         clean.CVC,
		"exp_month":   clean.ExpMonth,
		"exp_year":    clean.ExpYear,
		"card_holder": clean.Holder,
	}

	res, err := c.post(ctx, "/tokens/cards", c.publicKey, payload)
	if err != nil {
		return models.CardToken{}, err
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return models.CardToken{}, fmt.Errorf("%s", readErrorReason(res))
	}

	var body struct {
		Status string           `json:"status"`
		Data   models.CardToken `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return models.CardToken{}, fmt.Errorf("decode token response: %w", err)
	}
	return body.Data, nil
}

// CreateTransactionInput carries everything needed to create a charge
type CreateTransactionInput struct {
	AmountInCents   int64
	Currency        string
	Reference       string
	CardTokenID     string
	Installments    int
	AcceptanceToken string
	CustomerEmail   string
	CustomerName    string
	CustomerPhone   string
}

// CreateTransaction creates a charge at the gateway. The integrity signature
// is computed here so callers never handle the shared secret.
func (c *Client) CreateTransaction(ctx context.Context, in CreateTransactionInput) (models.GatewayTransaction, error) {
	payload := map[string]interface{}{
		"amount_in_cents": in.AmountInCents,
		"currency":        in.Currency,
		"customer_email":  in.CustomerEmail,
		"reference":       in.Reference,
		"payment_method": map[string]interface{}{
			"type":         "CARD",
			"token":        in.CardTokenID,
			"installments": in.Installments,
		},
		"acceptance_token": in.AcceptanceToken,
		"customer_data": map[string]string{
			"phone_number": in.CustomerPhone,
			"full_name":    in.CustomerName,
		},
		"signature": c.IntegritySignature(in.Reference, in.AmountInCents, in.Currency),
	}

	res, err := c.post(ctx, "/transactions", c.privateKey, payload)
	if err != nil {
		return models.GatewayTransaction{}, err
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return models.GatewayTransaction{}, fmt.Errorf("could not create gateway transaction: %s", readErrorReason(res))
	}

	var envelope gatewayEnvelope
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return models.GatewayTransaction{}, fmt.Errorf("decode transaction response: %w", err)
	}
	var wire wireGatewayTransaction
	if err := json.Unmarshal(envelope.Data, &wire); err != nil {
		return models.GatewayTransaction{}, fmt.Errorf("decode transaction payload: %w", err)
	}
	if wire.ID == "" || wire.Reference == "" {
		return models.GatewayTransaction{}, fmt.Errorf("gateway response has no transaction id/reference")
	}
	return wire.toModel(), nil
}

// GetTransaction polls the current status of a gateway transaction
func (c *Client) GetTransaction(ctx context.Context, id string) (models.GatewayTransaction, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/transactions/"+url.PathEscape(id), nil)
	if err != nil {
		return models.GatewayTransaction{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.privateKey)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return models.GatewayTransaction{}, fmt.Errorf("gateway transaction lookup: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return models.GatewayTransaction{}, fmt.Errorf("could not fetch gateway transaction: %s", readErrorReason(res))
	}

	var envelope gatewayEnvelope
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return models.GatewayTransaction{}, fmt.Errorf("decode transaction response: %w", err)
	}
	var wire wireGatewayTransaction
	if err := json.Unmarshal(envelope.Data, &wire); err != nil {
		return models.GatewayTransaction{}, fmt.Errorf("decode transaction payload: %w", err)
	}
	return wire.toModel(), nil
}

// IntegritySignature is the hex SHA-256 digest over reference, amount,
// currency and the shared secret, in that exact concatenation order.
func (c *Client) IntegritySignature(reference string, amountInCents int64, currency string) string {
	payload := fmt.Sprintf("%s%d%s%s", reference, amountInCents, currency, c.integritySecret)
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}

func (c *Client) post(ctx context.Context, path, bearer string, payload interface{}) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway %s: %w", path, err)
	}
	return res, nil
}

// readErrorReason extracts the gateway's reported reason from an error
// response: error.reason when present, else the flattened field messages,
// else a generic message. The body may legitimately be unparseable.
func readErrorReason(res *http.Response) string {
	var body struct {
		Error struct {
			Reason   string              `json:"reason"`
			Messages map[string][]string `json:"messages"`
		} `json:"error"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err == nil {
		if body.Error.Reason != "" {
			return body.Error.Reason
		}
		if len(body.Error.Messages) > 0 {
			fields := make([]string, 0, len(body.Error.Messages))
			for field := range body.Error.Messages {
				fields = append(fields, field)
			}
			sort.Strings(fields)
			var parts []string
			for _, field := range fields {
				parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(body.Error.Messages[field], ", ")))
			}
			return strings.Join(parts, "; ")
		}
	}
	return fmt.Sprintf("unknown gateway error (status %d)", res.StatusCode)
}

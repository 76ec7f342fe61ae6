// Package backend is the REST client for the commerce backend, the source
// of truth for products, transactions, customers and deliveries.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Eyner-schoonewolff/checkout-api/models"
)

const apiKeyHeader = "x-api-key"

// Client talks to the commerce backend with static API-key auth
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a backend client for the given base URL
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// wireTransaction mirrors the backend's snake_case transaction payload
type wireTransaction struct {
	ID         string `json:"id"`
	ProductID  string `json:"product_id"`
	CustomerID string `json:"customer_id"`
	Amount     int64  `json:"amount"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
}

func (w wireTransaction) toModel() models.Transaction {
	return models.Transaction{
		ID:        w.ID,
		ProductID: w.ProductID,
		Amount:    w.Amount,
		Status:    models.TransactionStatus(w.Status),
		CreatedAt: w.CreatedAt,
	}
}

type wireDelivery struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	ProductID  string `json:"product_id"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at,omitempty"`
}

func (w wireDelivery) toModel() models.Delivery {
	return models.Delivery{
		ID:         w.ID,
		CustomerID: w.CustomerID,
		ProductID:  w.ProductID,
		Status:     models.DeliveryStatus(w.Status),
		CreatedAt:  w.CreatedAt,
	}
}

// GetProducts lists the catalog
func (c *Client) GetProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// CreateTransactionInput is the checkout-start request
type CreateTransactionInput struct {
	ProductID     string `json:"productId"`
	CustomerID    string `json:"customerId"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
}

// CreateTransaction starts a checkout for a product
func (c *Client) CreateTransaction(ctx context.Context, in CreateTransactionInput) (models.Transaction, error) {
	var wire wireTransaction
	if err := c.do(ctx, http.MethodPost, "/transactions", in, &wire); err != nil {
		return models.Transaction{}, err
	}
	return wire.toModel(), nil
}

// GetTransaction fetches a transaction by id
func (c *Client) GetTransaction(ctx context.Context, id string) (models.Transaction, error) {
	var wire wireTransaction
	if err := c.do(ctx, http.MethodGet, "/transactions/"+url.PathEscape(id), nil, &wire); err != nil {
		return models.Transaction{}, err
	}
	return wire.toModel(), nil
}

// UpdateTransactionStatus patches the transaction's status and records the
// gateway transaction id alongside it. The backend treats the patch as an
// idempotent status upsert keyed by transaction id.
func (c *Client) UpdateTransactionStatus(ctx context.Context, id string, status models.TransactionStatus, gatewayTxID string) (models.Transaction, error) {
	body := map[string]string{
		"status":               string(status),
		"gatewayTransactionId": gatewayTxID,
	}
	var wire wireTransaction
	if err := c.do(ctx, http.MethodPatch, "/transactions/"+url.PathEscape(id), body, &wire); err != nil {
		return models.Transaction{}, err
	}
	return wire.toModel(), nil
}

// GetTransactionsByCustomer lists a customer's transaction history
func (c *Client) GetTransactionsByCustomer(ctx context.Context, customerID string) ([]models.Transaction, error) {
	var wires []wireTransaction
	path := "/transactions?customerId=" + url.QueryEscape(customerID)
	if err := c.do(ctx, http.MethodGet, path, nil, &wires); err != nil {
		return nil, err
	}
	txs := make([]models.Transaction, 0, len(wires))
	for _, w := range wires {
		txs = append(txs, w.toModel())
	}
	return txs, nil
}

// CreateDelivery requests a fulfillment record for a purchased product
func (c *Client) CreateDelivery(ctx context.Context, productID, customerID string) (models.Delivery, error) {
	body := map[string]string{
		"productId":  productID,
		"customerId": customerID,
	}
	var wire wireDelivery
	if err := c.do(ctx, http.MethodPost, "/deliveries", body, &wire); err != nil {
		return models.Delivery{}, err
	}
	return wire.toModel(), nil
}

// GetDelivery fetches a delivery by id
func (c *Client) GetDelivery(ctx context.Context, id string) (models.Delivery, error) {
	var wire wireDelivery
	if err := c.do(ctx, http.MethodGet, "/deliveries/"+url.PathEscape(id), nil, &wire); err != nil {
		return models.Delivery{}, err
	}
	return wire.toModel(), nil
}

// CreateCustomer registers a customer on the backend
func (c *Client) CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error) {
	body := map[string]string{
		"name":    customer.Name,
		"email":   customer.Email,
		"phone":   customer.Phone,
		"address": customer.Address,
	}
	var created models.Customer
	if err := c.do(ctx, http.MethodPost, "/customers", body, &created); err != nil {
		return models.Customer{}, err
	}
	return created, nil
}

// do performs a request and decodes the JSON response into out (if non-nil)
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend %s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("backend %s %s: status %d %s", method, path, res.StatusCode, http.StatusText(res.StatusCode))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

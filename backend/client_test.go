package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Eyner-schoonewolff/checkout-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient(server.URL, "secret-api-key")
	return client, server
}

func TestGetTransactionMapsWireFormat(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transactions/tx_1", r.URL.Path)
		assert.Equal(t, "secret-api-key", r.Header.Get("x-api-key"))
		fmt.Fprint(w, `{"id":"tx_1","product_id":"prod_1","customer_id":"cust_1","amount":10000,"status":"PENDING","created_at":"2024-01-01T00:00:00Z"}`)
	}))
	defer server.Close()

	tx, err := client.GetTransaction(context.Background(), "tx_1")
	require.NoError(t, err)
	assert.Equal(t, "tx_1", tx.ID)
	assert.Equal(t, "prod_1", tx.ProductID)
	assert.Equal(t, int64(10000), tx.Amount)
	assert.Equal(t, models.TransactionPending, tx.Status)
	assert.Equal(t, "2024-01-01T00:00:00Z", tx.CreatedAt)
}

func TestCreateTransaction(t *testing.T) {
	var received map[string]string
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transactions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id":"tx_1","product_id":"prod_1","amount":10000,"status":"PENDING","created_at":"2024-01-01T00:00:00Z"}`)
	}))
	defer server.Close()

	tx, err := client.CreateTransaction(context.Background(), CreateTransactionInput{
		ProductID:     "prod_1",
		CustomerID:    "cust_1",
		CustomerName:  "Cliente DEMO",
		CustomerEmail: "demo@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "tx_1", tx.ID)
	assert.Equal(t, "prod_1", received["productId"])
	assert.Equal(t, "cust_1", received["customerId"])
}

func TestUpdateTransactionStatus(t *testing.T) {
	var received map[string]string
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/transactions/tx_1", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		fmt.Fprint(w, `{"id":"tx_1","product_id":"prod_1","amount":10000,"status":"COMPLETED","created_at":"2024-01-01T00:00:00Z"}`)
	}))
	defer server.Close()

	tx, err := client.UpdateTransactionStatus(context.Background(), "tx_1", models.TransactionCompleted, "gwtx_1")
	require.NoError(t, err)
	assert.Equal(t, models.TransactionCompleted, tx.Status)
	assert.Equal(t, "COMPLETED", received["status"])
	assert.Equal(t, "gwtx_1", received["gatewayTransactionId"])
}

func TestGetTransactionsByCustomer(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transactions", r.URL.Path)
		assert.Equal(t, "cust_1", r.URL.Query().Get("customerId"))
		fmt.Fprint(w, `[{"id":"tx_1","status":"COMPLETED"},{"id":"tx_2","status":"FAILED"}]`)
	}))
	defer server.Close()

	txs, err := client.GetTransactionsByCustomer(context.Background(), "cust_1")
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, models.TransactionCompleted, txs[0].Status)
	assert.Equal(t, models.TransactionFailed, txs[1].Status)
}

func TestCreateDelivery(t *testing.T) {
	var received map[string]string
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/deliveries", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id":"dl_1","customer_id":"cust_1","product_id":"prod_1","status":"CREATED"}`)
	}))
	defer server.Close()

	delivery, err := client.CreateDelivery(context.Background(), "prod_1", "cust_1")
	require.NoError(t, err)
	assert.Equal(t, "dl_1", delivery.ID)
	assert.Equal(t, models.DeliveryCreated, delivery.Status)
	assert.Equal(t, "prod_1", received["productId"])
	assert.Equal(t, "cust_1", received["customerId"])
}

func TestNon2xxIsAnError(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := client.GetTransaction(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestGetProducts(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		fmt.Fprint(w, `[{"id":"prod_1","name":"Laptop","price":250000,"stock":5}]`)
	}))
	defer server.Close()

	products, err := client.GetProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Laptop", products[0].Name)
	assert.Equal(t, 5, products[0].Stock)
}

package gateway

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
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
	client := NewClient(server.URL, "pub_key", "priv_key", "integrity_secret")
	return client, server
}

func TestAcceptanceToken(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/merchants/pub_key", r.URL.Path)
		fmt.Fprint(w, `{"data":{"presigned_acceptance":{"acceptance_token":"eyJhbGciOiJIUzI1NiJ9"}}}`)
	}))
	defer server.Close()

	token, err := client.AcceptanceToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "eyJhbGciOiJIUzI1NiJ9", token)
}

func TestTokenizeCardSendsNormalizedPayload(t *testing.T) {
	var received map[string]string
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tokens/cards", r.URL.Path)
		assert.Equal(t, "Bearer pub_key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		fmt.Fprint(w, `{"status":"CREATED","data":{"id":"tok_abc","brand":"VISA","last_four":"4242"}}`)
	}))
	defer server.Close()

	token, err := client.TokenizeCard(context.Background(), models.CardData{
		Number:   "4242 4242 4242 4242",
		CVC:      "123",
		ExpMonth: "8",
		ExpYear:  "2028",
		Holder:   " Jane Doe ",
	})
	require.NoError(t, err)

	assert.Equal(t, "tok_abc", token.ID)
	assert.Equal(t, "4242424242424242", received["number"])
	assert.Equal(t, "08", received["exp_month"])
	assert.Equal(t, "28", received["exp_year"])
	assert.Equal(t, "Jane Doe", received["card_holder"])
}

func TestTokenizeCardErrorReason(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		fmt.Fprint(w, `{"error":{"type":"INPUT_VALIDATION_ERROR","reason":"card number is invalid"}}`)
	}))
	defer server.Close()

	_, err := client.TokenizeCard(context.Background(), models.CardData{Number: "1234"})
	require.Error(t, err)
	assert.Equal(t, "card number is invalid", err.Error())
}

func TestTokenizeCardErrorFieldMessages(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		fmt.Fprint(w, `{"error":{"messages":{"cvc":["must be 3 digits"],"number":["is required","must be numeric"]}}}`)
	}))
	defer server.Close()

	_, err := client.TokenizeCard(context.Background(), models.CardData{})
	require.Error(t, err)
	assert.Equal(t, "cvc: must be 3 digits; number: is required, must be numeric", err.Error())
}

func TestTokenizeCardUnparseableError(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, `<html>upstream down</html>`)
	}))
	defer server.Close()

	_, err := client.TokenizeCard(context.Background(), models.CardData{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown gateway error")
	assert.Contains(t, err.Error(), "502")
}

func TestCreateTransactionSignsAndUnwraps(t *testing.T) {
	var received map[string]interface{}
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transactions", r.URL.Path)
		assert.Equal(t, "Bearer priv_key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"data":{"id":"gwtx_1","amount_in_cents":10000,"currency":"COP","reference":"TX_tx_1_1700000000000","status":"PENDING","status_message":null}}`)
	}))
	defer server.Close()

	tx, err := client.CreateTransaction(context.Background(), CreateTransactionInput{
		AmountInCents:   10000,
		Currency:        "COP",
		Reference:       "TX_tx_1_1700000000000",
		CardTokenID:     "tok_abc",
		Installments:    1,
		AcceptanceToken: "acceptance",
		CustomerEmail:   "demo@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "gwtx_1", tx.ID)
	assert.Equal(t, models.GatewayPending, tx.Status)
	assert.Equal(t, "TX_tx_1_1700000000000", tx.Reference)

	// Signature binds reference+amount+currency+secret, hex SHA-256
	sum := sha256.Sum256([]byte("TX_tx_1_1700000000000" + "10000" + "COP" + "integrity_secret"))
	assert.Equal(t, hex.EncodeToString(sum[:]), received["signature"])

	method := received["payment_method"].(map[string]interface{})
	assert.Equal(t, "CARD", method["type"])
	assert.Equal(t, "tok_abc", method["token"])
}

func TestCreateTransactionRejectsPayloadWithoutID(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":{"status":"PENDING"}}`)
	}))
	defer server.Close()

	_, err := client.CreateTransaction(context.Background(), CreateTransactionInput{Reference: "TX_1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no transaction id/reference")
}

func TestGetTransaction(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transactions/gwtx_1", r.URL.Path)
		assert.Equal(t, "Bearer priv_key", r.Header.Get("Authorization"))
		fmt.Fprint(w, `{"data":{"id":"gwtx_1","status":"APPROVED","status_message":"Aprobada","reference":"TX_1"}}`)
	}))
	defer server.Close()

	tx, err := client.GetTransaction(context.Background(), "gwtx_1")
	require.NoError(t, err)
	assert.Equal(t, models.GatewayApproved, tx.Status)
	assert.Equal(t, "Aprobada", tx.StatusMessage)
}

func TestIntegritySignature(t *testing.T) {
	client := NewClient("", "pub", "priv", "secret")
	sum := sha256.Sum256([]byte("ref100COPsecret"))
	assert.Equal(t, hex.EncodeToString(sum[:]), client.IntegritySignature("ref", 100, "COP"))
}

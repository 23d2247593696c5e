package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTenderCreateSerializesOneDeposit checks that supplying only the
// first security deposit serializes its three keys and leaves every
// second-deposit key off the wire.
func TestTenderCreateSerializesOneDeposit(t *testing.T) {
	var body map[string]json.RawMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			http.SetCookie(w, &http.Cookie{Name: CSRFCookieName, Value: "tok"})
			w.Write([]byte(`{}`))
			return
		}
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &body))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 12, "tender_no": "T-2024-007", "name": "Substation AMC", "emd_amount": "25000.00", "security_deposit_1": "50000.00", "security_deposit_1_dd_date": "2024-03-01", "security_deposit_1_dd_number": "778899"}`))
	}))
	defer server.Close()

	payload := TenderPayload{
		TenderNo:  "T-2024-007",
		Name:      "Substation AMC",
		EMDAmount: decimal.NewFromInt(25000),
	}
	payload.SetDeposit1(SecurityDeposit{
		Amount:   decimal.NewFromInt(50000),
		DDDate:   "2024-03-01",
		DDNumber: "778899",
	})

	c := newTestClient(t, server.URL)
	tender, err := c.Tenders.Create(context.Background(), payload)
	require.NoError(t, err)

	assert.Contains(t, body, "security_deposit_1")
	assert.Contains(t, body, "security_deposit_1_dd_date")
	assert.Contains(t, body, "security_deposit_1_dd_number")
	assert.NotContains(t, body, "security_deposit_2")
	assert.NotContains(t, body, "security_deposit_2_dd_date")
	assert.NotContains(t, body, "security_deposit_2_dd_number")

	require.NotNil(t, tender.SecurityDeposit1)
	assert.True(t, tender.SecurityDeposit1.Equal(decimal.NewFromInt(50000)))
	assert.Nil(t, tender.SecurityDeposit2)
}

// TestTenderDecodesQuotedDecimals checks that string-encoded amounts in
// backend responses decode into decimals.
func TestTenderDecodesQuotedDecimals(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 4, "tender_no": "T-2024-002", "name": "Panel supply", "emd_amount": "12500.50"}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	tender, err := c.Tenders.Get(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "12500.50", tender.EMDAmount.StringFixed(2))
}

// TestTenderCreateRequiresTenderNo checks local validation short-circuits
// before any request is made.
func TestTenderCreateRequiresTenderNo(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	_, err := c.Tenders.Create(context.Background(), TenderPayload{Name: "Panel supply"})
	assert.Error(t, err)
	assert.Zero(t, calls)
}

package checkout

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateSession_SendsFormEncodedRequest(t *testing.T) {
	var captured *http.Request
	var form map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		require.NoError(t, r.ParseForm())
		form = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"cs_123","url":"https://pay.test/cs_123","payment_status":"unpaid"}`))
	}))
	defer server.Close()

	client, err := New(server.URL, "sk_test_abc", nil)
	require.NoError(t, err)

	session, err := client.CreateSession(context.Background(), SessionParams{
		Currency:       "SEK",
		UnitAmount:     15000,
		Quantity:       2,
		ProductName:    "UniKontroll",
		CustomerEmail:  "a@x.se",
		SuccessURL:     "https://shop.test/success.html?orderId=ord-1&session_id={CHECKOUT_SESSION_ID}",
		CancelURL:      "https://shop.test/cancel.html?orderId=ord-1",
		OrderReference: "ord-1",
	})
	require.NoError(t, err)
	require.Equal(t, "cs_123", session.ID)
	require.Equal(t, "https://pay.test/cs_123", session.URL)
	require.False(t, session.Paid())

	require.Equal(t, http.MethodPost, captured.Method)
	require.Equal(t, "/v1/checkout/sessions", captured.URL.Path)
	require.Equal(t, "Bearer sk_test_abc", captured.Header.Get("Authorization"))
	require.Equal(t, "application/x-www-form-urlencoded", captured.Header.Get("Content-Type"))
	require.Equal(t, []string{"payment"}, form["mode"])
	require.Equal(t, []string{"sek"}, form["line_items[0][price_data][currency]"])
	require.Equal(t, []string{"15000"}, form["line_items[0][price_data][unit_amount]"])
	require.Equal(t, []string{"UniKontroll"}, form["line_items[0][price_data][product_data][name]"])
	require.Equal(t, []string{"2"}, form["line_items[0][quantity]"])
	require.Equal(t, []string{"a@x.se"}, form["customer_email"])
	require.Equal(t, []string{"ord-1"}, form["metadata[order_id]"])
}

func TestGetSession_ReportsPaidStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/v1/checkout/sessions/cs_123", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"cs_123","payment_status":"paid"}`))
	}))
	defer server.Close()

	client, err := New(server.URL, "sk_test_abc", nil)
	require.NoError(t, err)

	session, err := client.GetSession(context.Background(), "cs_123")
	require.NoError(t, err)
	require.True(t, session.Paid())
	require.Equal(t, PaymentStatusPaid, session.PaymentStatus)
}

func TestGetSession_ProviderErrorSurfacesMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"message":"No such checkout session"}}`))
	}))
	defer server.Close()

	client, err := New(server.URL, "sk_test_abc", nil)
	require.NoError(t, err)

	_, err = client.GetSession(context.Background(), "cs_missing")
	require.ErrorContains(t, err, "No such checkout session")
}

func TestNew_RequiresConfiguration(t *testing.T) {
	_, err := New("", "sk_test_abc", nil)
	require.Error(t, err)

	_, err = New("https://api.test", "  ", nil)
	require.Error(t, err)
}

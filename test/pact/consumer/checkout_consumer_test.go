//go:build pact
// +build pact

package consumer_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	pactconsumer "github.com/pact-foundation/pact-go/v2/consumer"
	pactlog "github.com/pact-foundation/pact-go/v2/log"
	"github.com/pact-foundation/pact-go/v2/matchers"
	"github.com/stretchr/testify/require"

	"github.com/unikontroll/storefront-api/internal/clients/http/checkout"
	pacttest "github.com/unikontroll/storefront-api/test/pact"
)

func TestCheckoutProviderContract(t *testing.T) {
	pactlog.SetLogLevel("INFO")

	pact, err := pactconsumer.NewV2Pact(pactconsumer.MockHTTPProviderConfig{
		Consumer: pacttest.ConsumerName,
		Provider: pacttest.ProviderName,
		PactDir:  pacttest.PactDir(t),
		LogDir:   pacttest.LogDir(t),
	})
	require.NoError(t, err)

	jsonContentType := matchers.Regex("application/json; charset=utf-8", "application\\/json(?:;\\s?charset=utf-8)?")
	bearerAuth := matchers.Regex("Bearer "+pacttest.SecretKey, "Bearer .+")

	sessionBody := matchers.Map{
		"id":             matchers.Regex(pacttest.UnpaidSessionID, "cs_[A-Za-z0-9_]+"),
		"url":            matchers.Like("https://checkout.example.com/pay/" + pacttest.UnpaidSessionID),
		"payment_status": matchers.Term("unpaid", "paid|unpaid|no_payment_required"),
	}

	pact.AddInteraction().
		Given(pacttest.StateSessionCreatable).
		UponReceiving("a request to open a checkout session").
		WithRequest("POST", "/v1/checkout/sessions", func(b *pactconsumer.V2RequestBuilder) {
			b.Header("Authorization", bearerAuth)
			b.Header("Content-Type", matchers.S("application/x-www-form-urlencoded"))
		}).
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(sessionBody)
		})

	pact.AddInteraction().
		Given(pacttest.StateSessionPaid).
		UponReceiving("a status request for a settled session").
		WithRequest("GET", "/v1/checkout/sessions/"+pacttest.PaidSessionID, func(b *pactconsumer.V2RequestBuilder) {
			b.Header("Authorization", bearerAuth)
		}).
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.Map{
				"id":             matchers.S(pacttest.PaidSessionID),
				"payment_status": matchers.S("paid"),
			})
		})

	pact.AddInteraction().
		Given(pacttest.StateSessionMissing).
		UponReceiving("a status request for an unknown session").
		WithRequest("GET", "/v1/checkout/sessions/"+pacttest.MissingSessionID, func(b *pactconsumer.V2RequestBuilder) {
			b.Header("Authorization", bearerAuth)
		}).
		WillRespondWith(http.StatusNotFound, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.Map{
				"error": matchers.StructMatcher{
					"message": matchers.Like("No such checkout session"),
				},
			})
		})

	err = pact.ExecuteTest(t, func(config pactconsumer.MockServerConfig) error {
		host := config.Host
		if host == "" {
			host = "localhost"
		}
		baseURL := fmt.Sprintf("http://%s:%d", host, config.Port)
		client, err := checkout.New(baseURL, pacttest.SecretKey, &http.Client{Timeout: 10 * time.Second})
		if err != nil {
			return fmt.Errorf("build checkout client: %w", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		created, err := client.CreateSession(ctx, checkout.SessionParams{
			Currency:       "SEK",
			UnitAmount:     15000,
			Quantity:       1,
			ProductName:    "UniKontroll",
			CustomerEmail:  "pact@example.com",
			SuccessURL:     "https://shop.example.com/success.html?orderId=ord-pact&session_id={CHECKOUT_SESSION_ID}",
			CancelURL:      "https://shop.example.com/cancel.html?orderId=ord-pact",
			OrderReference: "ord-pact",
		})
		if err != nil {
			return fmt.Errorf("create session: %w", err)
		}
		if created.ID == "" || created.URL == "" {
			return fmt.Errorf("expected session id and redirect URL, got %+v", created)
		}
		if created.Paid() {
			return fmt.Errorf("freshly created session must not be paid")
		}

		settled, err := client.GetSession(ctx, pacttest.PaidSessionID)
		if err != nil {
			return fmt.Errorf("get paid session: %w", err)
		}
		if !settled.Paid() {
			return fmt.Errorf("expected session %s to be paid, got %q", pacttest.PaidSessionID, settled.PaymentStatus)
		}

		if _, err := client.GetSession(ctx, pacttest.MissingSessionID); err == nil {
			return fmt.Errorf("expected error for session %s", pacttest.MissingSessionID)
		}

		return nil
	})
	require.NoError(t, err)
}

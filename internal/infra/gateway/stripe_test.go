//go:build unit

package gateway_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"checkout-orchestrator/internal/domain/checkout"
	"checkout-orchestrator/internal/infra"
	"checkout-orchestrator/internal/infra/gateway"
	"checkout-orchestrator/internal/pkg/config"
	"checkout-orchestrator/tests/common/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc) *gateway.StripeGateway {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.NewTestConfig().Stripe
	cfg.APIURL = srv.URL
	cfg.Timeout = 500 * time.Millisecond
	return gateway.NewStripeGateway(cfg, testutil.DiscardLogger())
}

func widgetDraft() checkout.SessionDraft {
	return checkout.SessionDraft{
		LineItems: []checkout.LineItem{{
			Name:       "Widget",
			Currency:   "usd",
			UnitAmount: 9999,
			Quantity:   1,
		}},
		CustomerEmail: "john@example.com",
		Mode:          checkout.ModePayment,
		SuccessURL:    "http://localhost:5173/success?session_id={CHECKOUT_SESSION_ID}",
	}
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestStripeGateway_CreateSession(t *testing.T) {
	ctx := context.Background()

	t.Run("sends the line item as form fields and returns the url", func(t *testing.T) {
		gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
			assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
			assert.NoError(t, r.ParseForm())

			assert.Equal(t, "payment", r.PostForm.Get("mode"))
			assert.Equal(t, "john@example.com", r.PostForm.Get("customer_email"))
			assert.Equal(t, "http://localhost:5173/success?session_id={CHECKOUT_SESSION_ID}", r.PostForm.Get("success_url"))
			assert.Equal(t, "Widget", r.PostForm.Get("line_items[0][price_data][product_data][name]"))
			assert.Equal(t, "usd", r.PostForm.Get("line_items[0][price_data][currency]"))
			assert.Equal(t, "9999", r.PostForm.Get("line_items[0][price_data][unit_amount]"))
			assert.Equal(t, "1", r.PostForm.Get("line_items[0][quantity]"))
			for key := range r.PostForm {
				assert.NotContains(t, key, "images")
			}

			writeJSON(w, http.StatusOK, `{"id":"cs_test_1","object":"checkout.session","url":"https://checkout.stripe.com/c/pay/cs_test_1"}`)
		})

		created, err := gw.CreateSession(ctx, widgetDraft(), "")

		require.NoError(t, err)
		assert.Equal(t, "cs_test_1", created.ID)
		assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_1", created.URL)
	})

	t.Run("forwards image and idempotency key", func(t *testing.T) {
		gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			assert.NoError(t, r.ParseForm())
			assert.Equal(t, "https://cdn.example/w.png", r.PostForm.Get("line_items[0][price_data][product_data][images][0]"))
			assert.Equal(t, "key-123", r.Header.Get("Idempotency-Key"))

			writeJSON(w, http.StatusOK, `{"id":"cs_test_2","object":"checkout.session","url":"https://checkout.stripe.com/c/pay/cs_test_2"}`)
		})

		draft := widgetDraft()
		draft.LineItems[0].Images = []string{"https://cdn.example/w.png"}

		_, err := gw.CreateSession(ctx, draft, "key-123")
		require.NoError(t, err)
	})

	t.Run("zero timeout leaves the call unbounded", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, `{"id":"cs_test_3","object":"checkout.session","url":"https://checkout.stripe.com/c/pay/cs_test_3"}`)
		}))
		t.Cleanup(srv.Close)

		cfg := config.NewTestConfig().Stripe
		cfg.APIURL = srv.URL
		cfg.Timeout = 0
		gw := gateway.NewStripeGateway(cfg, testutil.DiscardLogger())

		created, err := gw.CreateSession(ctx, widgetDraft(), "")
		require.NoError(t, err)
		assert.Equal(t, "cs_test_3", created.ID)

		_, err = gw.RetrieveSession(ctx, "cs_test_3")
		require.NoError(t, err)
	})

	t.Run("error kinds", func(t *testing.T) {
		cases := []struct {
			name   string
			status int
			body   string
			kind   infra.ErrorKind
		}{
			{
				name:   "missing url is a contract violation",
				status: http.StatusOK,
				body:   `{"id":"cs_test_3","object":"checkout.session","url":null}`,
				kind:   infra.KindContract,
			},
			{
				name:   "invalid request is rejected",
				status: http.StatusBadRequest,
				body:   `{"error":{"type":"invalid_request_error","code":"parameter_invalid_integer","message":"Invalid integer"}}`,
				kind:   infra.KindRejected,
			},
			{
				name:   "authentication failure is rejected",
				status: http.StatusUnauthorized,
				body:   `{"error":{"type":"invalid_request_error","message":"Invalid API Key provided"}}`,
				kind:   infra.KindRejected,
			},
			{
				name:   "server error is unavailable",
				status: http.StatusInternalServerError,
				body:   `{"error":{"type":"api_error","message":"Something went wrong"}}`,
				kind:   infra.KindUnavailable,
			},
			{
				name:   "rate limit is unavailable",
				status: http.StatusTooManyRequests,
				body:   `{"error":{"type":"invalid_request_error","code":"rate_limit","message":"Too many requests"}}`,
				kind:   infra.KindUnavailable,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				gw := newTestGateway(t, func(w http.ResponseWriter, _ *http.Request) {
					writeJSON(w, tc.status, tc.body)
				})

				created, err := gw.CreateSession(ctx, widgetDraft(), "")

				assert.Nil(t, created)
				assert.True(t, infra.IsKind(err, tc.kind), "got %v", err)
			})
		}
	})

	t.Run("slow gateway times out as unavailable", func(t *testing.T) {
		gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		})

		_, err := gw.CreateSession(ctx, widgetDraft(), "")

		assert.True(t, infra.IsKind(err, infra.KindUnavailable), "got %v", err)
	})

	t.Run("caller cancellation is unavailable", func(t *testing.T) {
		gw := newTestGateway(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, `{"id":"cs_test_4","url":"https://checkout.stripe.com/c/pay/cs_test_4"}`)
		})
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := gw.CreateSession(cancelled, widgetDraft(), "")

		assert.True(t, infra.IsKind(err, infra.KindUnavailable), "got %v", err)
	})
}

func TestStripeGateway_RetrieveSession(t *testing.T) {
	ctx := context.Background()

	t.Run("maps a complete session", func(t *testing.T) {
		gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/v1/checkout/sessions/cs_test_1", r.URL.Path)

			writeJSON(w, http.StatusOK, `{
				"id":"cs_test_1","object":"checkout.session","payment_status":"paid","amount_total":9999,
				"customer_details":{"name":"John Doe","email":"john@example.com"}
			}`)
		})

		s, err := gw.RetrieveSession(ctx, "cs_test_1")

		require.NoError(t, err)
		assert.Equal(t, checkout.PaymentStatusPaid, s.PaymentStatus)
		assert.Equal(t, int64(9999), *s.AmountTotal)
		require.NotNil(t, s.CustomerDetails)
		assert.Equal(t, "John Doe", *s.CustomerDetails.Name)
		assert.Equal(t, "john@example.com", *s.CustomerDetails.Email)
	})

	t.Run("null fields stay absent", func(t *testing.T) {
		gw := newTestGateway(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, `{"id":"cs_test_2","object":"checkout.session","payment_status":"unpaid","amount_total":null,"customer_details":null}`)
		})

		s, err := gw.RetrieveSession(ctx, "cs_test_2")

		require.NoError(t, err)
		assert.Equal(t, checkout.PaymentStatusUnpaid, s.PaymentStatus)
		assert.Nil(t, s.CustomerDetails)
	})

	t.Run("unknown session is not found", func(t *testing.T) {
		gw := newTestGateway(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusNotFound, `{"error":{"type":"invalid_request_error","code":"resource_missing","message":"No such checkout.session: 'cs_nope'"}}`)
		})

		_, err := gw.RetrieveSession(ctx, "cs_nope")

		assert.True(t, infra.IsKind(err, infra.KindNotFound), "got %v", err)
	})
}

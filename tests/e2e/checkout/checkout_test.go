//go:build e2e

package checkout_test

import (
	"net/http"
	"strings"
	"testing"

	"checkout-orchestrator/internal/domain/checkout"
	"checkout-orchestrator/internal/handler/api"
	resdto "checkout-orchestrator/internal/handler/dto/response"
	"checkout-orchestrator/tests/common/builder"
	"checkout-orchestrator/tests/common/httptest"
	"checkout-orchestrator/tests/common/testutil"
	"checkout-orchestrator/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	createURL  = "/create-checkout-session"
	successURL = "/success"
	orderURL   = "/order"
)

type CheckoutSuite struct {
	e2e.SharedSuite
}

func TestCheckoutSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CheckoutSuite))
}

// =============================================================================
// TestCreateCheckoutSession - session creation against stripe-mock
// =============================================================================

func (s *CheckoutSuite) TestCreateCheckoutSession() {
	s.Run("Normal case: valid order returns a redirect url", func() {
		t := s.T()
		reqBody := builder.NewCheckoutBuilder().BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, createURL, reqBody, nil)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.True(t, strings.HasPrefix(w.Body.String(), "https://"), "redirect url: %s", w.Body.String())
	})

	s.Run("Normal case: image url is accepted", func() {
		t := s.T()
		reqBody := builder.NewCheckoutBuilder().WithImageURL("https://cdn.example.com/widget.png").BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, createURL, reqBody, nil)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("Error case: every invalid field is reported in order", func() {
		t := s.T()
		reqBody := testutil.DtoMap(t, builder.NewCheckoutBuilder().BuildRequestDTO(),
			testutil.Field("productName", "A"),
			testutil.Field("productPrice", 0),
			testutil.Field("customerEmail", "not-an-email"),
			testutil.Field("imageUrl", strings.Repeat("a", 2049)),
		)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, createURL, reqBody, nil)
		body := httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")

		type violation struct{ Path, Message string }
		got := make([]violation, len(body.Detail))
		for i, d := range body.Detail {
			got[i] = violation{d.Path, d.Message}
		}
		want := []violation{
			{checkout.PathProductName, checkout.MsgProductNameTooShort},
			{checkout.PathProductPrice, checkout.MsgProductPriceNotPositive},
			{checkout.PathCustomerEmail, checkout.MsgInvalidEmail},
			{checkout.PathImageURL, checkout.MsgImageURLTooLong},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("violations mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: a retried key replays the first url", func() {
		t := s.T()
		key := uuid.NewString()
		headers := map[string]string{api.IdempotencyKeyHeader: key}
		reqBody := builder.NewCheckoutBuilder().BuildRequestDTO()

		first := httptest.PerformRequest(t, s.Router, http.MethodPost, createURL, reqBody, headers)
		require.Equal(t, http.StatusOK, first.Code, first.Body.String())
		httptest.AssertReplayed(t, first, false)

		second := httptest.PerformRequest(t, s.Router, http.MethodPost, createURL, reqBody, headers)
		require.Equal(t, http.StatusOK, second.Code, second.Body.String())
		require.Equal(t, first.Body.String(), second.Body.String())
		httptest.AssertReplayed(t, second, true)
	})

	s.Run("Error case: a key reused for another order conflicts", func() {
		t := s.T()
		key := uuid.NewString()
		headers := map[string]string{api.IdempotencyKeyHeader: key}

		first := httptest.PerformRequest(t, s.Router, http.MethodPost, createURL,
			builder.NewCheckoutBuilder().BuildRequestDTO(), headers)
		require.Equal(t, http.StatusOK, first.Code, first.Body.String())

		second := httptest.PerformRequest(t, s.Router, http.MethodPost, createURL,
			builder.NewCheckoutBuilder().WithProductPrice(100).BuildRequestDTO(), headers)
		httptest.AssertErrorResponse(t, second, http.StatusConflict, "Idempotency-Key")
	})
}

// =============================================================================
// TestSessionStatus - status lookup against stripe-mock
// =============================================================================

func (s *CheckoutSuite) TestSessionStatus() {
	s.Run("Normal case: session status has the stable shape", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, successURL+"?session_id=cs_test_e2e", nil, nil)

		var body resdto.CheckoutSessionStatusResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.NotEmpty(t, body.PaymentStatus)
		require.GreaterOrEqual(t, body.Amount, int64(0))
	})

	s.Run("Error case: missing session_id", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, successURL, nil, nil)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "session_id")
	})
}

// =============================================================================
// TestOrderAndHealth - local endpoints
// =============================================================================

func (s *CheckoutSuite) TestOrderAndHealth() {
	s.Run("Normal case: order is echoed with an id", func() {
		t := s.T()
		reqBody := builder.NewOrderBuilder().BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, orderURL, reqBody, nil)

		var body resdto.OrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		_, err := uuid.Parse(body.OrderID)
		require.NoError(t, err)

		want := resdto.OrderResponse{
			OrderID:            body.OrderID,
			CustomerName:       reqBody.CustomerName,
			CustomerEmail:      reqBody.CustomerEmail,
			ProductName:        reqBody.ProductName,
			ProductPrice:       reqBody.ProductPrice,
			ProductDescription: reqBody.ProductDescription,
		}
		if diff := cmp.Diff(want, body); diff != "" {
			t.Errorf("order echo mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: health", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/health", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
	})
}

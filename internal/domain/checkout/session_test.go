//go:build unit

package checkout_test

import (
	"testing"

	"checkout-orchestrator/internal/domain/checkout"
	"checkout-orchestrator/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const successURL = "http://localhost:5173/success?session_id={CHECKOUT_SESSION_ID}"

func TestSessionFactory(t *testing.T) {
	t.Run("success url without placeholder is rejected", func(t *testing.T) {
		_, err := checkout.NewSessionFactory("http://localhost:5173/success", "usd")
		assert.ErrorIs(t, err, checkout.ErrSuccessURLMissingPlaceholder)
	})

	t.Run("single line item without image", func(t *testing.T) {
		f, err := checkout.NewSessionFactory(successURL, "USD")
		require.NoError(t, err)

		draft := f.Draft(builder.NewCheckoutBuilder().MustBuildDomain())

		assert.Equal(t, checkout.SessionDraft{
			LineItems: []checkout.LineItem{{
				Name:       "Widget",
				Currency:   "usd",
				UnitAmount: 9999,
				Quantity:   1,
			}},
			CustomerEmail: "john@example.com",
			Mode:          checkout.ModePayment,
			SuccessURL:    successURL,
		}, draft)
		assert.Nil(t, draft.LineItems[0].Images)
	})

	t.Run("image is wrapped in a single element list", func(t *testing.T) {
		f, err := checkout.NewSessionFactory(successURL, "usd")
		require.NoError(t, err)

		draft := f.Draft(builder.NewCheckoutBuilder().WithImageURL("https://example.com/w.png").MustBuildDomain())

		require.Len(t, draft.LineItems, 1)
		assert.Equal(t, []string{"https://example.com/w.png"}, draft.LineItems[0].Images)
	})
}

func TestPaymentStatus(t *testing.T) {
	assert.True(t, checkout.PaymentStatusPaid.IsSettled())
	assert.True(t, checkout.PaymentStatusNoPaymentRequired.IsSettled())
	assert.False(t, checkout.PaymentStatusUnpaid.IsSettled())
	assert.False(t, checkout.PaymentStatus("processing").IsSettled())
}

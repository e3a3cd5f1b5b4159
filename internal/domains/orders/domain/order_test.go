package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewOrder_ComputesTotalAndStartsPending(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	order, err := NewOrder("ord-1", createdAt, "Anna", "a@x.se", "Gatan 1", 2, 150, "SEK")
	require.NoError(t, err)
	require.Equal(t, "ord-1", order.ID)
	require.Equal(t, createdAt, order.CreatedAt)
	require.Equal(t, 2, order.Qty)
	require.Equal(t, int64(300), order.Total)
	require.Equal(t, StatusPending, order.Status)
	require.Equal(t, PaymentMethodCheckout, order.Payment.Method)
	require.Nil(t, order.Payment.PaidAt)
	require.Nil(t, order.Payment.Last4)
}

func TestNewOrder_RequiredFields(t *testing.T) {
	now := time.Now()

	_, err := NewOrder("ord-1", now, "", "a@x.se", "Gatan 1", 1, 150, "SEK")
	require.ErrorIs(t, err, ErrEmptyName)

	_, err = NewOrder("ord-1", now, "Anna", "   ", "Gatan 1", 1, 150, "SEK")
	require.ErrorIs(t, err, ErrEmptyEmail)

	_, err = NewOrder("ord-1", now, "Anna", "a@x.se", "", 1, 150, "SEK")
	require.ErrorIs(t, err, ErrEmptyAddress)

	_, err = NewOrder("", now, "Anna", "a@x.se", "Gatan 1", 1, 150, "SEK")
	require.ErrorIs(t, err, ErrEmptyID)
}

func TestNewOrder_CoercesQuantityToOne(t *testing.T) {
	order, err := NewOrder("ord-1", time.Now(), "Anna", "a@x.se", "Gatan 1", 0, 150, "SEK")
	require.NoError(t, err)
	require.Equal(t, 1, order.Qty)
	require.Equal(t, int64(150), order.Total)

	order, err = NewOrder("ord-2", time.Now(), "Anna", "a@x.se", "Gatan 1", -3, 150, "SEK")
	require.NoError(t, err)
	require.Equal(t, 1, order.Qty)
}

func TestMarkPaid_SetsTimestampOnce(t *testing.T) {
	order, err := NewOrder("ord-1", time.Now(), "Anna", "a@x.se", "Gatan 1", 1, 150, "SEK")
	require.NoError(t, err)

	first := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	order.MarkPaid(first)
	require.True(t, order.Paid())
	require.NotNil(t, order.Payment.PaidAt)
	require.Equal(t, first, *order.Payment.PaidAt)

	// A second transition attempt must not move the state or timestamp.
	order.MarkPaid(first.Add(time.Hour))
	require.True(t, order.Paid())
	require.Equal(t, first, *order.Payment.PaidAt)
}

func TestValidate_PaidRequiresTimestamp(t *testing.T) {
	order, err := NewOrder("ord-1", time.Now(), "Anna", "a@x.se", "Gatan 1", 1, 150, "SEK")
	require.NoError(t, err)
	require.NoError(t, order.Validate())

	order.Status = StatusPaid
	require.ErrorIs(t, order.Validate(), ErrMissingPaidAt)

	paidAt := time.Now()
	order.Payment.PaidAt = &paidAt
	require.NoError(t, order.Validate())

	order.Status = Status("refunded")
	require.ErrorIs(t, order.Validate(), ErrInvalidStatus)
}

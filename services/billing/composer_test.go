package billing

import (
	"testing"
	"time"

	"rentwise/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose_MoveIn(t *testing.T) {
	c, err := NewComposer(true).Compose(EventMoveIn, peso(20000))
	require.NoError(t, err)

	assert.True(t, c.Rent.Equal(peso(20000)))
	assert.True(t, c.Advance.Equal(peso(20000)))
	assert.True(t, c.SecurityDeposit.Equal(peso(20000)))
	assert.True(t, c.Total().Equal(peso(60000)))
}

func TestCompose_MoveInWithoutAdvance(t *testing.T) {
	c, err := NewComposer(false).Compose(EventMoveIn, peso(20000))
	require.NoError(t, err)

	assert.True(t, c.Advance.IsZero())
	assert.True(t, c.Total().Equal(peso(40000)))
}

func TestCompose_Renewal(t *testing.T) {
	c, err := NewComposer(true).Compose(EventRenewal, decimal.RequireFromString("15500.50"))
	require.NoError(t, err)

	assert.True(t, c.SecurityDeposit.IsZero())
	assert.True(t, c.Total().Equal(decimal.RequireFromString("31001.00")))
}

func TestCompose_RejectsNonPositiveRent(t *testing.T) {
	for _, rent := range []decimal.Decimal{decimal.Zero, peso(-1), {}} {
		_, err := NewComposer(true).Compose(EventMoveIn, rent)
		assert.ErrorIs(t, err, ErrNonPositiveRent)
	}
}

func TestCompose_UnknownEvent(t *testing.T) {
	_, err := NewComposer(true).Compose(Event("deposit_refund"), peso(20000))
	assert.ErrorIs(t, err, ErrUnknownEvent)
}

func TestComposition_NewBill(t *testing.T) {
	now := time.Date(2024, 12, 20, 8, 30, 0, 0, time.UTC)
	c, err := NewComposer(true).Compose(EventMoveIn, peso(20000))
	require.NoError(t, err)

	b := c.NewBill(testLease(), date(2025, 1, 2), now)

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, "lease-1", b.LeaseID)
	assert.Equal(t, "landlord-1", b.LandlordID)
	assert.Equal(t, models.BillPending, b.Status)
	assert.Equal(t, date(2025, 1, 2), b.DueDate)
	assert.True(t, b.IsMoveInPayment)
	assert.False(t, b.IsRenewalPayment)
	assert.True(t, b.Utilities.Total().IsZero())
	assert.True(t, b.Total().Equal(peso(60000)))
	assert.Equal(t, 2, MonthsCovered(b))

	renewal, err := NewComposer(true).Compose(EventRenewal, peso(20000))
	require.NoError(t, err)
	rb := renewal.NewBill(testLease(), date(2025, 7, 2), now)
	assert.True(t, rb.IsRenewalPayment)
	assert.NotEqual(t, b.ID, rb.ID)
}

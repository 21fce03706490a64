package billing

import (
	"time"

	"rentwise/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Event is a lifecycle event that produces a bill.
type Event string

const (
	EventMoveIn  Event = "move_in"
	EventRenewal Event = "renewal"
)

// Composition is the set of monetary line items for a lifecycle bill.
type Composition struct {
	Event           Event
	Rent            decimal.Decimal
	Advance         decimal.Decimal
	SecurityDeposit decimal.Decimal
}

func (c Composition) Total() decimal.Decimal {
	return c.Rent.Add(c.Advance).Add(c.SecurityDeposit)
}

// Composer prices move-in and renewal bills from the property's monthly rent.
type Composer struct {
	// IncludeAdvanceOnAssign charges one month of advance on move-in.
	IncludeAdvanceOnAssign bool
}

func NewComposer(includeAdvanceOnAssign bool) Composer {
	return Composer{IncludeAdvanceOnAssign: includeAdvanceOnAssign}
}

// Compose returns the line items for event. It never returns a zero bill:
// a non-positive rent is ErrNonPositiveRent.
func (c Composer) Compose(event Event, monthlyRent decimal.Decimal) (Composition, error) {
	if !monthlyRent.IsPositive() {
		return Composition{}, ErrNonPositiveRent
	}

	switch event {
	case EventMoveIn:
		advance := decimal.Zero
		if c.IncludeAdvanceOnAssign {
			advance = monthlyRent
		}
		return Composition{
			Event:           EventMoveIn,
			Rent:            monthlyRent,
			Advance:         advance,
			SecurityDeposit: monthlyRent,
		}, nil
	case EventRenewal:
		// The deposit carries over from the original lease.
		return Composition{
			Event:           EventRenewal,
			Rent:            monthlyRent,
			Advance:         monthlyRent,
			SecurityDeposit: decimal.Zero,
		}, nil
	default:
		return Composition{}, ErrUnknownEvent
	}
}

// NewBill materializes a composition as a pending bill of lease due on due.
func (c Composition) NewBill(lease models.Lease, due, now time.Time) models.Bill {
	b := models.Bill{
		ID:                    uuid.New().String(),
		LeaseID:               lease.ID,
		LandlordID:            lease.LandlordID,
		TenantID:              lease.TenantID,
		PropertyID:            lease.PropertyID,
		DueDate:               due,
		Status:                models.BillPending,
		RentAmount:            c.Rent,
		AdvanceAmount:         c.Advance,
		SecurityDepositAmount: c.SecurityDeposit,
		Utilities: models.UtilityCharges{
			Water:      decimal.Zero,
			Electrical: decimal.Zero,
			Wifi:       decimal.Zero,
			Other:      decimal.Zero,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	switch c.Event {
	case EventMoveIn:
		b.IsMoveInPayment = true
		b.Description = "Move-in payment"
	case EventRenewal:
		b.IsRenewalPayment = true
		b.Description = "Renewal payment"
	}
	return b
}

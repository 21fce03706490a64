package billing

import (
	"sort"
	"time"

	"rentwise/models"
)

// Basis tells where a projected due date came from.
type Basis string

const (
	// BasisOutstanding: the earliest pending or pending-confirmation bill.
	BasisOutstanding Basis = "outstanding"
	// BasisLastPaid: projected forward from the latest paid rent bill.
	BasisLastPaid Basis = "last_paid"
	// BasisStartDate: the lease has no usable history yet.
	BasisStartDate Basis = "start_date"
)

// Projection is the next expected billing cycle of a lease.
type Projection struct {
	NextDueDate time.Time
	SourceBill  *models.Bill
	Basis       Basis
	// Overdue is only meaningful for BasisOutstanding.
	Overdue bool
}

// MonthsCovered returns how many calendar months a bill discharges:
// one for the rent, plus whole months prepaid by the advance at the same rate.
func MonthsCovered(b models.Bill) int {
	if !b.RentAmount.IsPositive() || !b.AdvanceAmount.IsPositive() {
		return 1
	}
	q, _ := b.AdvanceAmount.QuoRem(b.RentAmount, 0)
	return 1 + int(q.IntPart())
}

// NextCycle computes the next due date of a lease from its bill history.
// today must be a date produced by DateOnly; a bill due today is not overdue.
func NextCycle(lease models.Lease, bills []models.Bill, today time.Time) Projection {
	ordered := sortByDueDate(bills)

	for i := range ordered {
		if ordered[i].IsOutstanding() {
			b := ordered[i]
			return Projection{
				NextDueDate: b.DueDate,
				SourceBill:  &b,
				Basis:       BasisOutstanding,
				Overdue:     b.DueDate.Before(today),
			}
		}
	}

	for i := len(ordered) - 1; i >= 0; i-- {
		b := ordered[i]
		if b.Status == models.BillPaid && b.RentAmount.IsPositive() {
			return Projection{
				NextDueDate: AddMonths(b.DueDate, MonthsCovered(b)),
				SourceBill:  &b,
				Basis:       BasisLastPaid,
			}
		}
	}

	return Projection{NextDueDate: lease.StartDate, Basis: BasisStartDate}
}

// RenewalDueDate is the due date of the first bill of an extended term. It
// projects from the latest paid or pending-confirmation rent bill so that a gap
// between the last payment and the contract boundary is neither skipped nor
// billed twice; with no such bill it falls back to the current contract end.
func RenewalDueDate(lease models.Lease, bills []models.Bill) time.Time {
	ordered := sortByDueDate(bills)
	for i := len(ordered) - 1; i >= 0; i-- {
		b := ordered[i]
		if (b.Status == models.BillPaid || b.Status == models.BillPendingConfirmation) && b.RentAmount.IsPositive() {
			return AddMonths(b.DueDate, MonthsCovered(b))
		}
	}
	if lease.ContractEndDate != nil {
		return *lease.ContractEndDate
	}
	return lease.StartDate
}

// sortByDueDate returns a due-date-ascending copy. The sort is stable so
// equal due dates keep their stored order.
func sortByDueDate(bills []models.Bill) []models.Bill {
	out := make([]models.Bill, len(bills))
	copy(out, bills)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.Before(out[j].DueDate)
	})
	return out
}

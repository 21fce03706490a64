package billing

import (
	"time"

	"rentwise/models"
)

type Status string

const (
	StatusScheduled      Status = "Scheduled"
	StatusPending        Status = "Pending"
	StatusConfirming     Status = "Confirming"
	StatusOverdue        Status = "Overdue"
	StatusContractEnding Status = "Contract Ending"
)

const (
	NoteUnpaidBills    = "Tenant has unpaid bills"
	NoteContractEnding = "Contract ends before next expected cycle"
)

// Classification is the billing status of a lease plus an optional advisory note.
type Classification struct {
	Status Status
	Note   string
}

// Classify derives the billing status of a lease from its projection.
//
// An outstanding bill awaiting confirmation is Confirming and an overdue one is
// Overdue, whatever the contract end. Contract Ending only replaces Pending and
// Scheduled, and only when the cycle after the current one starts strictly
// after contractEnd.
func Classify(p Projection, contractEnd *time.Time) Classification {
	if p.Basis == BasisOutstanding && p.SourceBill != nil {
		switch {
		case p.SourceBill.Status == models.BillPendingConfirmation:
			return Classification{Status: StatusConfirming}
		case p.Overdue:
			return Classification{Status: StatusOverdue, Note: NoteUnpaidBills}
		}
		if exceeds(followingCycle(*p.SourceBill), contractEnd) {
			return Classification{Status: StatusContractEnding, Note: NoteContractEnding}
		}
		return Classification{Status: StatusPending}
	}

	if exceeds(p.NextDueDate, contractEnd) {
		return Classification{Status: StatusContractEnding, Note: NoteContractEnding}
	}
	return Classification{Status: StatusScheduled}
}

// followingCycle is the due date after an outstanding bill once it is settled.
func followingCycle(b models.Bill) time.Time {
	if !b.RentAmount.IsPositive() {
		return b.DueDate
	}
	return AddMonths(b.DueDate, MonthsCovered(b))
}

func exceeds(due time.Time, contractEnd *time.Time) bool {
	return contractEnd != nil && due.After(*contractEnd)
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type BillStatus string

const (
	BillPending             BillStatus = "pending"
	BillPendingConfirmation BillStatus = "pending_confirmation"
	BillPaid                BillStatus = "paid"
)

// UtilityCharges are the non-rent line items of a bill.
type UtilityCharges struct {
	Water      decimal.Decimal `bson:"water" json:"water"`
	Electrical decimal.Decimal `bson:"electrical" json:"electrical"`
	Wifi       decimal.Decimal `bson:"wifi" json:"wifi"`
	Other      decimal.Decimal `bson:"other" json:"other"`
}

func (u UtilityCharges) Total() decimal.Decimal {
	return u.Water.Add(u.Electrical).Add(u.Wifi).Add(u.Other)
}

// Bill is one invoiced billing cycle of a lease.
type Bill struct {
	ID         string `bson:"id" json:"id"`
	LeaseID    string `bson:"leaseId" json:"leaseId"`
	LandlordID string `bson:"landlordId" json:"landlordId"`
	TenantID   string `bson:"tenantId" json:"tenantId"`
	PropertyID string `bson:"propertyId" json:"propertyId"`

	DueDate time.Time  `bson:"dueDate" json:"dueDate"`
	Status  BillStatus `bson:"status" json:"status"`

	RentAmount            decimal.Decimal `bson:"rentAmount" json:"rentAmount"`
	AdvanceAmount         decimal.Decimal `bson:"advanceAmount" json:"advanceAmount"`
	SecurityDepositAmount decimal.Decimal `bson:"securityDepositAmount" json:"securityDepositAmount"`
	Utilities             UtilityCharges  `bson:"utilities" json:"utilities"`

	PaidAt     *time.Time       `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
	AmountPaid *decimal.Decimal `bson:"amountPaid,omitempty" json:"amountPaid,omitempty"`

	Description      string `bson:"description" json:"description"`
	IsMoveInPayment  bool   `bson:"isMoveInPayment" json:"isMoveInPayment"`
	IsRenewalPayment bool   `bson:"isRenewalPayment" json:"isRenewalPayment"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Total is the sum of all line items.
func (b Bill) Total() decimal.Decimal {
	return b.RentAmount.Add(b.AdvanceAmount).Add(b.SecurityDepositAmount).Add(b.Utilities.Total())
}

// IsOutstanding reports whether the bill still awaits payment or confirmation.
func (b Bill) IsOutstanding() bool {
	return b.Status == BillPending || b.Status == BillPendingConfirmation
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillRef points at the most recent bill of a lease.
type BillRef struct {
	ID      string     `json:"id"`
	DueDate time.Time  `json:"dueDate"`
	Status  BillStatus `json:"status"`
}

// ScheduleEntry is one row of a landlord's billing schedule. It is derived, never stored.
type ScheduleEntry struct {
	LeaseID       string          `json:"leaseId"`
	TenantID      string          `json:"tenantId"`
	TenantName    string          `json:"tenantName"`
	PropertyID    string          `json:"propertyId"`
	PropertyTitle string          `json:"propertyTitle"`
	NextDueDate   time.Time       `json:"nextDueDate"`
	SendDate      time.Time       `json:"sendDate"`
	Status        string          `json:"status"`
	Note          string          `json:"note,omitempty"`
	AmountDue     decimal.Decimal `json:"amountDue"`
	LateFee       decimal.Decimal `json:"lateFee"`
	LatestBill    *BillRef        `json:"latestBill,omitempty"`
}

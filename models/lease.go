package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type LeaseStatus string

const (
	LeaseActive     LeaseStatus = "active"
	LeasePendingEnd LeaseStatus = "pending_end"
	LeaseEnded      LeaseStatus = "ended"
)

type RenewalStatus string

const (
	RenewalNone     RenewalStatus = "none"
	RenewalPending  RenewalStatus = "pending"
	RenewalApproved RenewalStatus = "approved"
	RenewalRejected RenewalStatus = "rejected"
)

// Lease is a tenant's occupancy of a property under one landlord.
type Lease struct {
	ID         string `bson:"id" json:"id"`
	TenantID   string `bson:"tenantId" json:"tenantId"`
	LandlordID string `bson:"landlordId" json:"landlordId"`
	PropertyID string `bson:"propertyId" json:"propertyId"`

	// Denormalized for schedule rendering.
	TenantName    string `bson:"tenantName" json:"tenantName"`
	PropertyTitle string `bson:"propertyTitle" json:"propertyTitle"`

	StartDate       time.Time   `bson:"startDate" json:"startDate"`
	ContractEndDate *time.Time  `bson:"contractEndDate,omitempty" json:"contractEndDate,omitempty"`
	EndDate         *time.Time  `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Status          LeaseStatus `bson:"status" json:"status"`

	SecurityDeposit     decimal.Decimal `bson:"securityDeposit" json:"securityDeposit"`
	SecurityDepositUsed decimal.Decimal `bson:"securityDepositUsed" json:"securityDepositUsed"`
	LatePaymentFee      decimal.Decimal `bson:"latePaymentFee" json:"latePaymentFee"`
	WifiDueDay          int             `bson:"wifiDueDay" json:"wifiDueDay"`
	ContractURL         string          `bson:"contractUrl" json:"contractUrl"`

	RenewalRequested   bool          `bson:"renewalRequested" json:"renewalRequested"`
	RenewalStatus      RenewalStatus `bson:"renewalStatus" json:"renewalStatus"`
	RenewalRequestedAt *time.Time    `bson:"renewalRequestedAt,omitempty" json:"renewalRequestedAt,omitempty"`
	RenewalSignedAt    *time.Time    `bson:"renewalSignedAt,omitempty" json:"renewalSignedAt,omitempty"`

	// Set while an end request is outstanding.
	EndRequestedAt   *time.Time `bson:"endRequestedAt,omitempty" json:"endRequestedAt,omitempty"`
	EndRequestedDate *time.Time `bson:"endRequestedDate,omitempty" json:"endRequestedDate,omitempty"`
	EndReason        string     `bson:"endReason,omitempty" json:"endReason,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// IsOpen reports whether the lease still holds its property.
func (l Lease) IsOpen() bool {
	return l.Status == LeaseActive || l.Status == LeasePendingEnd
}

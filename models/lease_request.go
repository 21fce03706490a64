package models

import "github.com/shopspring/decimal"

// Dates in requests are calendar dates formatted as 2006-01-02.

type AssignLeaseRequest struct {
	TenantID        string          `json:"tenantId"`
	PropertyID      string          `json:"propertyId"`
	StartDate       string          `json:"startDate"`
	ContractEndDate string          `json:"contractEndDate"`
	WifiDueDay      int             `json:"wifiDueDay"`
	LatePaymentFee  decimal.Decimal `json:"latePaymentFee"`
	ContractURL     string          `json:"contractUrl"`
}

type ApproveRenewalRequest struct {
	SigningDate string `json:"signingDate"`
	NewEndDate  string `json:"newEndDate"`
}

// EndLeaseRequest is used both by a tenant asking to leave and by a landlord terminating.
type EndLeaseRequest struct {
	EndDate string `json:"endDate"`
	Reason  string `json:"reason"`
}

type DecisionRequest struct {
	Reason string `json:"reason"`
}

type PaymentRequest struct {
	AmountPaid *decimal.Decimal `json:"amountPaid,omitempty"`
}

package models

import "time"

// Notification types emitted by the lease lifecycle.
const (
	NotifyLeaseAssigned    = "lease_assigned"
	NotifyRenewalRequested = "renewal_requested"
	NotifyRenewalApproved  = "renewal_approved"
	NotifyRenewalRejected  = "renewal_rejected"
	NotifyEndRequested     = "end_requested"
	NotifyEndApproved      = "end_approved"
	NotifyEndRejected      = "end_rejected"
	NotifyLeaseTerminated  = "lease_terminated"
	NotifyPaymentSubmitted = "payment_submitted"
	NotifyPaymentConfirmed = "payment_confirmed"
	NotifyBillingReminder  = "billing_reminder"
	NotifyBillIssued       = "bill_issued"
)

// Notification is the content of one message to a user. Channels decide transport.
type Notification struct {
	ID        string    `bson:"id" json:"id"`
	Recipient string    `bson:"recipient" json:"recipient"`
	Actor     string    `bson:"actor" json:"actor"`
	Type      string    `bson:"type" json:"type"`
	Title     string    `bson:"title" json:"title"`
	Message   string    `bson:"message" json:"message"`
	Link      string    `bson:"link" json:"link"`
	Read      bool      `bson:"read" json:"read"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

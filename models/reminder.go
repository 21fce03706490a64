package models

import "time"

// ReminderRequest asks for an advance billing reminder on SendDate.
type ReminderRequest struct {
	LeaseID  string    `json:"leaseId"`
	BillID   string    `json:"billId,omitempty"`
	SendDate time.Time `json:"sendDate"`
}

// ReminderPayload is the task body stored in the reminder queue.
type ReminderPayload struct {
	LeaseID  string `json:"leaseId"`
	BillID   string `json:"billId,omitempty"`
	SendDate string `json:"sendDate"`
}

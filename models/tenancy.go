package models

// TenancyRecordStatus is the status of a booking or application tied to a lease.
type TenancyRecordStatus string

// Statuses touched when a lease ends. Records already in a terminal status are
// left as they are.
const (
	TenancyRecordCompleted TenancyRecordStatus = "completed"
	TenancyRecordCancelled TenancyRecordStatus = "cancelled"
	TenancyRecordRejected  TenancyRecordStatus = "rejected"
)

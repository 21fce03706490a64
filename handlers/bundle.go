package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Lease lifecycle endpoints
	AssignLeaseHandler    gin.HandlerFunc
	GetLeaseHandler       gin.HandlerFunc
	RequestRenewalHandler gin.HandlerFunc
	ApproveRenewalHandler gin.HandlerFunc
	RejectRenewalHandler  gin.HandlerFunc
	RequestEndHandler     gin.HandlerFunc
	ApproveEndHandler     gin.HandlerFunc
	RejectEndHandler      gin.HandlerFunc
	TerminateLeaseHandler gin.HandlerFunc

	// Bill endpoints
	SubmitPaymentHandler  gin.HandlerFunc
	ConfirmPaymentHandler gin.HandlerFunc

	// Schedule endpoints
	GetScheduleHandler    gin.HandlerFunc
	ExportScheduleHandler gin.HandlerFunc

	// Storage endpoints
	UploadContractHandler gin.HandlerFunc

	HealthHandler gin.HandlerFunc
}

// NewHandlerBundle wires the handler structs into a bundle.
func NewHandlerBundle(leases *LeaseHandler, schedules *ScheduleHandler, contracts *ContractHandler, health gin.HandlerFunc) *HandlerBundle {
	return &HandlerBundle{
		AssignLeaseHandler:    leases.AssignLeaseHandler,
		GetLeaseHandler:       leases.GetLeaseHandler,
		RequestRenewalHandler: leases.RequestRenewalHandler,
		ApproveRenewalHandler: leases.ApproveRenewalHandler,
		RejectRenewalHandler:  leases.RejectRenewalHandler,
		RequestEndHandler:     leases.RequestEndHandler,
		ApproveEndHandler:     leases.ApproveEndHandler,
		RejectEndHandler:      leases.RejectEndHandler,
		TerminateLeaseHandler: leases.TerminateLeaseHandler,

		SubmitPaymentHandler:  leases.SubmitPaymentHandler,
		ConfirmPaymentHandler: leases.ConfirmPaymentHandler,

		GetScheduleHandler:    schedules.GetScheduleHandler,
		ExportScheduleHandler: schedules.ExportScheduleHandler,

		UploadContractHandler: contracts.UploadContractHandler,

		HealthHandler: health,
	}
}

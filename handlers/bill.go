package handlers

import (
	"net/http"

	"rentwise/models"

	"github.com/gin-gonic/gin"
)

// SubmitPaymentHandler lets a tenant report a payment for a bill.
func (h *LeaseHandler) SubmitPaymentHandler(c *gin.Context) {
	var req models.PaymentRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	b, err := h.Svc.SubmitPayment(c.Request.Context(), actorID(c), c.Param("id"), req.AmountPaid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ConfirmPaymentHandler lets a landlord mark a bill as paid.
func (h *LeaseHandler) ConfirmPaymentHandler(c *gin.Context) {
	var req models.PaymentRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	b, err := h.Svc.ConfirmPayment(c.Request.Context(), actorID(c), c.Param("id"), req.AmountPaid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

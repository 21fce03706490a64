package handlers

import (
	"net/http"

	"rentwise/models"
	"rentwise/services/lease"

	"github.com/gin-gonic/gin"
)

// LeaseHandler exposes the lease lifecycle.
type LeaseHandler struct {
	Svc lease.LeaseService
}

func NewLeaseHandler(svc lease.LeaseService) *LeaseHandler {
	return &LeaseHandler{Svc: svc}
}

// AssignLeaseHandler places a tenant in one of the landlord's properties.
func (h *LeaseHandler) AssignLeaseHandler(c *gin.Context) {
	var req models.AssignLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	start, err := parseDate("startDate", req.StartDate)
	if err != nil {
		respondError(c, err)
		return
	}
	end, err := parseDate("contractEndDate", req.ContractEndDate)
	if err != nil {
		respondError(c, err)
		return
	}

	res, err := h.Svc.Assign(c.Request.Context(), actorID(c), lease.AssignInput{
		TenantID:        req.TenantID,
		PropertyID:      req.PropertyID,
		StartDate:       start,
		ContractEndDate: end,
		WifiDueDay:      req.WifiDueDay,
		LatePaymentFee:  req.LatePaymentFee,
		ContractURL:     req.ContractURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *LeaseHandler) GetLeaseHandler(c *gin.Context) {
	details, err := h.Svc.GetLease(c.Request.Context(), actorID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *LeaseHandler) RequestRenewalHandler(c *gin.Context) {
	l, err := h.Svc.RequestRenewal(c.Request.Context(), actorID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *LeaseHandler) ApproveRenewalHandler(c *gin.Context) {
	var req models.ApproveRenewalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	signed, err := parseDate("signingDate", req.SigningDate)
	if err != nil {
		respondError(c, err)
		return
	}
	newEnd, err := parseDate("newEndDate", req.NewEndDate)
	if err != nil {
		respondError(c, err)
		return
	}

	res, err := h.Svc.ApproveRenewal(c.Request.Context(), actorID(c), c.Param("id"), lease.ApproveRenewalInput{
		SigningDate: signed,
		NewEndDate:  newEnd,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *LeaseHandler) RejectRenewalHandler(c *gin.Context) {
	var req models.DecisionRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	l, err := h.Svc.RejectRenewal(c.Request.Context(), actorID(c), c.Param("id"), req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *LeaseHandler) RequestEndHandler(c *gin.Context) {
	in, ok := bindEndRequest(c)
	if !ok {
		return
	}
	l, err := h.Svc.RequestEnd(c.Request.Context(), actorID(c), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *LeaseHandler) ApproveEndHandler(c *gin.Context) {
	l, err := h.Svc.ApproveEnd(c.Request.Context(), actorID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *LeaseHandler) RejectEndHandler(c *gin.Context) {
	var req models.DecisionRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	l, err := h.Svc.RejectEnd(c.Request.Context(), actorID(c), c.Param("id"), req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

// TerminateLeaseHandler ends a lease without a tenant request.
func (h *LeaseHandler) TerminateLeaseHandler(c *gin.Context) {
	in, ok := bindEndRequest(c)
	if !ok {
		return
	}
	l, err := h.Svc.Terminate(c.Request.Context(), actorID(c), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func bindEndRequest(c *gin.Context) (lease.EndInput, bool) {
	var req models.EndLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return lease.EndInput{}, false
	}
	endDate, err := parseDate("endDate", req.EndDate)
	if err != nil {
		respondError(c, err)
		return lease.EndInput{}, false
	}
	return lease.EndInput{EndDate: endDate, Reason: req.Reason}, true
}

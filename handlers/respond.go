package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"rentwise/services/billing"
	"rentwise/services/lease"
	"rentwise/services/storage"
	"rentwise/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// parseDate reads an optional calendar date; an empty value is the zero time.
func parseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, &lease.ValidationError{Field: field, Reason: "must be a date formatted as YYYY-MM-DD"}
	}
	return t, nil
}

// bindOptionalJSON binds a request body whose fields are all optional. An empty
// body is accepted; a malformed one is answered with 400 and false.
func bindOptionalJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return false
	}
	return true
}

// respondError maps lifecycle errors to HTTP responses.
func respondError(c *gin.Context, err error) {
	var verr *lease.ValidationError
	var terr *lease.TransitionError

	switch {
	case errors.As(err, &verr):
		utils.JSONFieldError(c, verr.Field, verr.Reason)
	case errors.Is(err, billing.ErrNonPositiveRent):
		utils.JSONError(c, http.StatusUnprocessableEntity, "Property has no valid monthly rent", err.Error())
	case errors.Is(err, storage.ErrUnsupportedDocument):
		utils.JSONError(c, http.StatusBadRequest, "Unsupported contract document", err.Error())
	case errors.Is(err, lease.ErrLeaseNotFound), errors.Is(err, lease.ErrBillNotFound), errors.Is(err, lease.ErrPropertyNotFound):
		utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
	case errors.Is(err, lease.ErrForbidden):
		utils.JSONError(c, http.StatusForbidden, "Forbidden", err.Error())
	case errors.Is(err, lease.ErrPropertyOccupied):
		utils.JSONError(c, http.StatusConflict, "Property is occupied", err.Error())
	case errors.As(err, &terr):
		utils.JSONError(c, http.StatusConflict, "Invalid lease transition", terr.Error())
	default:
		getLogger(c).Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse{
			Message: "Could not save changes",
			Details: "Nothing was changed. Please try again.",
		})
	}
}

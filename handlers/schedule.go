package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"rentwise/models"
	"rentwise/services/billing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ScheduleBuilder produces a landlord's billing schedule.
type ScheduleBuilder interface {
	Build(ctx context.Context, landlordID string) ([]models.ScheduleEntry, error)
}

type ScheduleHandler struct {
	Schedules ScheduleBuilder
}

func NewScheduleHandler(schedules ScheduleBuilder) *ScheduleHandler {
	return &ScheduleHandler{Schedules: schedules}
}

// GetScheduleHandler returns the landlord's upcoming billing cycles.
func (h *ScheduleHandler) GetScheduleHandler(c *gin.Context) {
	entries, err := h.Schedules.Build(c.Request.Context(), actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries, "count": len(entries)})
}

// ExportScheduleHandler streams the schedule as an Excel workbook.
func (h *ScheduleHandler) ExportScheduleHandler(c *gin.Context) {
	entries, err := h.Schedules.Build(c.Request.Context(), actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("billing-schedule-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)

	if err := billing.WriteScheduleXLSX(c.Writer, entries); err != nil {
		getLogger(c).Error("Failed to write schedule workbook", zap.Error(err))
	}
}

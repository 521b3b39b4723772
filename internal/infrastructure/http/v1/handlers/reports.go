package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"bizreport/internal/core/id"
	"bizreport/internal/domain/reports"
	"bizreport/internal/infrastructure/http/v1/dto"
)

// ReportBuilder builds the overview report for an owner.
type ReportBuilder interface {
	Build(ctx context.Context, ownerID id.ID) (*reports.Report, error)
}

// ReportsHandler handles HTTP requests for reports.
type ReportsHandler struct {
	*BaseHandler
	builder ReportBuilder
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(base *BaseHandler, builder ReportBuilder) *ReportsHandler {
	return &ReportsHandler{
		BaseHandler: base,
		builder:     builder,
	}
}

// RegisterRoutes registers report routes.
func (h *ReportsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/overview", h.Overview)
}

// Overview handles GET /reports/overview for the authenticated owner.
func (h *ReportsHandler) Overview(c *gin.Context) {
	ownerID, err := h.OwnerID(c)
	if err != nil {
		h.Error(c, err)
		return
	}

	report, err := h.builder.Build(c.Request.Context(), ownerID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromReport(report))
}

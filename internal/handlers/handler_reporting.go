package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/citruspartners/citrus_ledger_app/internal/core/ports/services"
	"github.com/citruspartners/citrus_ledger_app/internal/dto"
	"github.com/citruspartners/citrus_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for the derived financial views.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(reportingService portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: reportingService,
	}
}

// getDashboard godoc
// @Summary Get the dashboard report
// @Description Computes the aggregate financial snapshot and per-partner payouts from current data
// @Tags reports
// @Produce json
// @Success 200 {object} dto.DashboardReportResponse
// @Failure 500 {object} map[string]string "Failed to compute dashboard"
// @Security BearerAuth
// @Router /reports/dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reportingService.GetDashboardStats(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute dashboard report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardReportResponse(report))
}

// getPartnerLedger godoc
// @Summary Get the partner ledger view
// @Description Computes per-partner contribution and expense totals with pool percentages
// @Tags reports
// @Produce json
// @Success 200 {object} dto.PartnerLedgerListResponse
// @Failure 500 {object} map[string]string "Failed to compute partner ledger"
// @Security BearerAuth
// @Router /reports/partner-ledger [get]
func (h *reportingHandler) getPartnerLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entries, err := h.reportingService.GetPartnerLedger(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute partner ledger", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute partner ledger"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPartnerLedgerListResponse(entries))
}

// registerReportingRoutes registers the derived report routes
func registerReportingRoutes(group *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := group.Group("/reports")
	{
		reports.GET("/dashboard", h.getDashboard)
		reports.GET("/partner-ledger", h.getPartnerLedger)
	}
}

package handlers

import (
	"net/http"

	"impactohub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ReportHandler handles HTTP requests for report operations
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// CreateReport handles POST /reports
// @Summary Create a report draft
// @Tags reports
// @Accept json
// @Produce json
// @Param report body service.CreateReportRequest true "Report data"
// @Success 201 {object} models.Report "Created draft"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Referenced project not found"
// @Security CookieAuth
// @Router /reports [post]
func (h *ReportHandler) CreateReport(c *gin.Context) {
	var req service.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.reportService.Create(caller(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, report)
}

// ListReports handles GET /reports
// @Summary List reports
// @Tags reports
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} service.ReportListResponse "Paginated reports"
// @Security CookieAuth
// @Router /reports [get]
func (h *ReportHandler) ListReports(c *gin.Context) {
	page, pageSize := pagination(c)

	resp, err := h.reportService.List(caller(c), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SubmitReport handles POST /reports/:id/submit
// @Summary Submit a report
// @Description Move a draft report to submitted; notifies the tenant owner
// @Tags reports
// @Produce json
// @Param id path string true "Report ID (UUID)"
// @Success 200 {object} models.Report "Submitted report"
// @Failure 400 {object} ErrorResponse "Report is not a draft"
// @Failure 404 {object} ErrorResponse "Report not found"
// @Security CookieAuth
// @Router /reports/{id}/submit [post]
func (h *ReportHandler) SubmitReport(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	report, err := h.reportService.Submit(caller(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

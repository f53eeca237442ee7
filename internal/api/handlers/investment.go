package handlers

import (
	"net/http"

	"impactohub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// InvestmentHandler handles HTTP requests for investment operations
type InvestmentHandler struct {
	investmentService *service.InvestmentService
}

// NewInvestmentHandler creates a new investment handler
func NewInvestmentHandler(investmentService *service.InvestmentService) *InvestmentHandler {
	return &InvestmentHandler{investmentService: investmentService}
}

// CreateInvestment handles POST /investments
// @Summary Invest in a project
// @Description Record a pending investment from the caller's tenant into a project
// @Tags investments
// @Accept json
// @Produce json
// @Param investment body service.CreateInvestmentRequest true "Investment data"
// @Success 201 {object} models.Investment "Pending investment"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Caller's tenant is not an investor"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security CookieAuth
// @Router /investments [post]
func (h *InvestmentHandler) CreateInvestment(c *gin.Context) {
	var req service.CreateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	investment, err := h.investmentService.Create(caller(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, investment)
}

// ListMyInvestments handles GET /investments
// @Summary List the caller tenant's investments
// @Tags investments
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} service.InvestmentListResponse "Paginated investments"
// @Security CookieAuth
// @Router /investments [get]
func (h *InvestmentHandler) ListMyInvestments(c *gin.Context) {
	page, pageSize := pagination(c)

	resp, err := h.investmentService.ListMine(caller(c), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ApproveInvestment handles POST /investments/:id/approve
// @Summary Approve an investment
// @Description Approve a pending investment into one of the caller tenant's projects
// @Tags investments
// @Produce json
// @Param id path string true "Investment ID (UUID)"
// @Success 200 {object} models.Investment "Approved investment"
// @Failure 400 {object} ErrorResponse "Investment is not pending"
// @Failure 404 {object} ErrorResponse "Investment not found"
// @Security CookieAuth
// @Router /investments/{id}/approve [post]
func (h *InvestmentHandler) ApproveInvestment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	investment, err := h.investmentService.Approve(caller(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, investment)
}

// RejectInvestment handles POST /investments/:id/reject
// @Summary Reject an investment
// @Tags investments
// @Produce json
// @Param id path string true "Investment ID (UUID)"
// @Success 200 {object} models.Investment "Rejected investment"
// @Failure 400 {object} ErrorResponse "Investment is not pending"
// @Failure 404 {object} ErrorResponse "Investment not found"
// @Security CookieAuth
// @Router /investments/{id}/reject [post]
func (h *InvestmentHandler) RejectInvestment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	investment, err := h.investmentService.Reject(caller(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, investment)
}

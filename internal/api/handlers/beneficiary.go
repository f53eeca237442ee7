package handlers

import (
	"net/http"

	"impactohub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BeneficiaryHandler handles HTTP requests for beneficiary operations
type BeneficiaryHandler struct {
	beneficiaryService *service.BeneficiaryService
	attendanceService  *service.AttendanceService
}

// NewBeneficiaryHandler creates a new beneficiary handler
func NewBeneficiaryHandler(beneficiaryService *service.BeneficiaryService, attendanceService *service.AttendanceService) *BeneficiaryHandler {
	return &BeneficiaryHandler{
		beneficiaryService: beneficiaryService,
		attendanceService:  attendanceService,
	}
}

// CreateBeneficiary handles POST /beneficiaries
// @Summary Register a beneficiary
// @Tags beneficiaries
// @Accept json
// @Produce json
// @Param beneficiary body service.CreateBeneficiaryRequest true "Beneficiary data"
// @Success 201 {object} models.Beneficiary "Registered beneficiary"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security CookieAuth
// @Router /beneficiaries [post]
func (h *BeneficiaryHandler) CreateBeneficiary(c *gin.Context) {
	var req service.CreateBeneficiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	beneficiary, err := h.beneficiaryService.Create(caller(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, beneficiary)
}

// GetBeneficiary handles GET /beneficiaries/:id
// @Summary Get beneficiary by ID
// @Tags beneficiaries
// @Produce json
// @Param id path string true "Beneficiary ID (UUID)"
// @Success 200 {object} models.Beneficiary "Beneficiary"
// @Failure 404 {object} ErrorResponse "Beneficiary not found"
// @Security CookieAuth
// @Router /beneficiaries/{id} [get]
func (h *BeneficiaryHandler) GetBeneficiary(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	beneficiary, err := h.beneficiaryService.GetByID(caller(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, beneficiary)
}

// ListBeneficiaries handles GET /beneficiaries
// @Summary List beneficiaries
// @Tags beneficiaries
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} service.BeneficiaryListResponse "Paginated beneficiaries"
// @Security CookieAuth
// @Router /beneficiaries [get]
func (h *BeneficiaryHandler) ListBeneficiaries(c *gin.Context) {
	page, pageSize := pagination(c)

	resp, err := h.beneficiaryService.List(caller(c), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateBeneficiary handles PUT /beneficiaries/:id
// @Summary Update beneficiary
// @Tags beneficiaries
// @Accept json
// @Produce json
// @Param id path string true "Beneficiary ID (UUID)"
// @Param beneficiary body service.UpdateBeneficiaryRequest true "Updated data"
// @Success 200 {object} models.Beneficiary "Updated beneficiary"
// @Failure 404 {object} ErrorResponse "Beneficiary not found"
// @Security CookieAuth
// @Router /beneficiaries/{id} [put]
func (h *BeneficiaryHandler) UpdateBeneficiary(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateBeneficiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	beneficiary, err := h.beneficiaryService.Update(caller(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, beneficiary)
}

// ListBeneficiaryAttendances handles GET /beneficiaries/:id/attendances
// @Summary List one beneficiary's attendances
// @Tags beneficiaries
// @Produce json
// @Param id path string true "Beneficiary ID (UUID)"
// @Success 200 {object} service.AttendanceListResponse "Paginated attendances"
// @Security CookieAuth
// @Router /beneficiaries/{id}/attendances [get]
func (h *BeneficiaryHandler) ListBeneficiaryAttendances(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	resp, err := h.attendanceService.ListByBeneficiary(caller(c), id, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

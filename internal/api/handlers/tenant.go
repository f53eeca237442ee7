package handlers

import (
	"net/http"

	"impactohub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TenantHandler handles HTTP requests for the back-office tenant lifecycle
type TenantHandler struct {
	tenantService *service.TenantService
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(tenantService *service.TenantService) *TenantHandler {
	return &TenantHandler{tenantService: tenantService}
}

// CreateTenant handles POST /admin/tenants
// @Summary Register a tenant
// @Description Register a new tenant account in pending status
// @Tags admin-tenants
// @Accept json
// @Produce json
// @Param tenant body service.CreateTenantRequest true "Tenant data"
// @Success 201 {object} models.Tenant "Successfully created tenant"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Tenant already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security CookieAuth
// @Router /admin/tenants [post]
func (h *TenantHandler) CreateTenant(c *gin.Context) {
	var req service.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tenant, err := h.tenantService.Create(caller(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tenant)
}

// GetTenant handles GET /admin/tenants/:id
// @Summary Get tenant by ID
// @Tags admin-tenants
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Success 200 {object} models.Tenant "Successfully retrieved tenant"
// @Failure 404 {object} ErrorResponse "Tenant not found"
// @Security CookieAuth
// @Router /admin/tenants/{id} [get]
func (h *TenantHandler) GetTenant(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	tenant, err := h.tenantService.GetByID(caller(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tenant)
}

// ListTenants handles GET /admin/tenants
// @Summary List tenants
// @Tags admin-tenants
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} service.TenantListResponse "Paginated tenants"
// @Security CookieAuth
// @Router /admin/tenants [get]
func (h *TenantHandler) ListTenants(c *gin.Context) {
	page, pageSize := pagination(c)

	resp, err := h.tenantService.GetAll(caller(c), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateTenant handles PUT /admin/tenants/:id
// @Summary Update tenant
// @Tags admin-tenants
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Param tenant body service.UpdateTenantRequest true "Updated tenant data"
// @Success 200 {object} models.Tenant "Successfully updated tenant"
// @Failure 404 {object} ErrorResponse "Tenant not found"
// @Security CookieAuth
// @Router /admin/tenants/{id} [put]
func (h *TenantHandler) UpdateTenant(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tenant, err := h.tenantService.Update(caller(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tenant)
}

// ApproveTenant handles POST /admin/tenants/:id/approve
// @Summary Approve a tenant
// @Description Move a tenant to active status, optionally attaching a plan and license window. Re-approval re-applies plan and license.
// @Tags admin-tenants
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Param approval body service.ApproveTenantRequest false "Plan and license"
// @Success 200 {object} models.Tenant "Approved tenant"
// @Failure 404 {object} ErrorResponse "Tenant or plan not found"
// @Security CookieAuth
// @Router /admin/tenants/{id}/approve [post]
func (h *TenantHandler) ApproveTenant(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	req := service.ApproveTenantRequest{}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	tenant, err := h.tenantService.Approve(caller(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tenant)
}

// RejectTenant handles POST /admin/tenants/:id/reject
// @Summary Reject a pending tenant
// @Tags admin-tenants
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Success 200 {object} models.Tenant "Rejected tenant"
// @Failure 400 {object} ErrorResponse "Tenant is not pending"
// @Failure 404 {object} ErrorResponse "Tenant not found"
// @Security CookieAuth
// @Router /admin/tenants/{id}/reject [post]
func (h *TenantHandler) RejectTenant(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	tenant, err := h.tenantService.Reject(caller(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tenant)
}

// DeleteTenant handles DELETE /admin/tenants/:id
// @Summary Delete tenant
// @Description Delete a tenant and everything scoped to it
// @Tags admin-tenants
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Success 204 "Tenant deleted"
// @Failure 404 {object} ErrorResponse "Tenant not found"
// @Security CookieAuth
// @Router /admin/tenants/{id} [delete]
func (h *TenantHandler) DeleteTenant(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.tenantService.Delete(caller(c), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

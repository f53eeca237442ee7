package handlers

import (
	"net/http"

	"impactohub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CustomizationHandler handles HTTP requests for tenant branding
type CustomizationHandler struct {
	customizationService *service.CustomizationService
}

// NewCustomizationHandler creates a new customization handler
func NewCustomizationHandler(customizationService *service.CustomizationService) *CustomizationHandler {
	return &CustomizationHandler{customizationService: customizationService}
}

// GetTenantTheme handles GET /admin/tenants/:id/theme
// @Summary Get a tenant's theme
// @Tags admin-branding
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Success 200 {object} models.ThemeCustomization "Theme, defaults when unset"
// @Security CookieAuth
// @Router /admin/tenants/{id}/theme [get]
func (h *CustomizationHandler) GetTenantTheme(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	theme, err := h.customizationService.GetTheme(caller(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, theme)
}

// UpdateTenantTheme handles PUT /admin/tenants/:id/theme
// @Summary Update a tenant's theme
// @Tags admin-branding
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Param theme body service.UpdateThemeRequest true "Theme fields"
// @Success 200 {object} models.ThemeCustomization "Updated theme"
// @Failure 404 {object} ErrorResponse "Tenant not found"
// @Security CookieAuth
// @Router /admin/tenants/{id}/theme [put]
func (h *CustomizationHandler) UpdateTenantTheme(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	theme, err := h.customizationService.UpdateTheme(caller(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, theme)
}

// GetTenantPage handles GET /admin/tenants/:id/page
// @Summary Get a tenant's landing page
// @Tags admin-branding
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Success 200 {object} models.PageCustomization "Landing page, empty when unset"
// @Security CookieAuth
// @Router /admin/tenants/{id}/page [get]
func (h *CustomizationHandler) GetTenantPage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	page, err := h.customizationService.GetPage(caller(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// UpdateTenantPage handles PUT /admin/tenants/:id/page
// @Summary Update a tenant's landing page
// @Tags admin-branding
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Param page body service.UpdatePageRequest true "Page fields"
// @Success 200 {object} models.PageCustomization "Updated landing page"
// @Failure 404 {object} ErrorResponse "Tenant not found"
// @Security CookieAuth
// @Router /admin/tenants/{id}/page [put]
func (h *CustomizationHandler) UpdateTenantPage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := h.customizationService.UpdatePage(caller(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetOwnTheme handles GET /theme
// @Summary Get the caller tenant's theme
// @Tags branding
// @Produce json
// @Success 200 {object} models.ThemeCustomization "Theme, defaults when unset"
// @Security CookieAuth
// @Router /theme [get]
func (h *CustomizationHandler) GetOwnTheme(c *gin.Context) {
	theme, err := h.customizationService.GetOwnTheme(caller(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, theme)
}

// GetOwnPage handles GET /page
// @Summary Get the caller tenant's landing page
// @Tags branding
// @Produce json
// @Success 200 {object} models.PageCustomization "Landing page, empty when unset"
// @Security CookieAuth
// @Router /page [get]
func (h *CustomizationHandler) GetOwnPage(c *gin.Context) {
	page, err := h.customizationService.GetOwnPage(caller(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

package handlers

import (
	"net/http"

	"impactohub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProjectHandler handles HTTP requests for project operations
type ProjectHandler struct {
	projectService *service.ProjectService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// CreateProject handles POST /projects
// @Summary Create a new project
// @Description Create a new project in the caller's tenant
// @Tags projects
// @Accept json
// @Produce json
// @Param project body service.CreateProjectRequest true "Project data"
// @Success 201 {object} models.Project "Successfully created project"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Caller has no tenant scope"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security CookieAuth
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req service.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectService.Create(caller(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// GetProject handles GET /projects/:id
// @Summary Get project by ID
// @Description Get a project by its UUID; ids outside the caller's tenant answer not-found
// @Tags projects
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} models.Project "Successfully retrieved project"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security CookieAuth
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	project, err := h.projectService.GetByID(caller(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// ListProjects handles GET /projects
// @Summary List projects
// @Tags projects
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} service.ProjectListResponse "Paginated projects"
// @Security CookieAuth
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	page, pageSize := pagination(c)

	resp, err := h.projectService.List(caller(c), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateProject handles PUT /projects/:id
// @Summary Update project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param project body service.UpdateProjectRequest true "Updated project data"
// @Success 200 {object} models.Project "Successfully updated project"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security CookieAuth
// @Router /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectService.Update(caller(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject handles DELETE /projects/:id
// @Summary Delete project
// @Tags projects
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 204 "Project deleted"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security CookieAuth
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.projectService.Delete(caller(c), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

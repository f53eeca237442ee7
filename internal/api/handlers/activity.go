package handlers

import (
	"net/http"

	"impactohub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ActivityHandler handles HTTP requests for attendances and classes
type ActivityHandler struct {
	attendanceService *service.AttendanceService
	classService      *service.ClassService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(attendanceService *service.AttendanceService, classService *service.ClassService) *ActivityHandler {
	return &ActivityHandler{
		attendanceService: attendanceService,
		classService:      classService,
	}
}

// CreateAttendance handles POST /attendances
// @Summary Record an attendance
// @Tags attendances
// @Accept json
// @Produce json
// @Param attendance body service.CreateAttendanceRequest true "Attendance data"
// @Success 201 {object} models.Attendance "Recorded attendance"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Referenced beneficiary or project not found"
// @Security CookieAuth
// @Router /attendances [post]
func (h *ActivityHandler) CreateAttendance(c *gin.Context) {
	var req service.CreateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	attendance, err := h.attendanceService.Create(caller(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, attendance)
}

// ListAttendances handles GET /attendances
// @Summary List attendances
// @Tags attendances
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} service.AttendanceListResponse "Paginated attendances"
// @Security CookieAuth
// @Router /attendances [get]
func (h *ActivityHandler) ListAttendances(c *gin.Context) {
	page, pageSize := pagination(c)

	resp, err := h.attendanceService.List(caller(c), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateClass handles POST /classes
// @Summary Create a class
// @Tags classes
// @Accept json
// @Produce json
// @Param class body service.CreateClassRequest true "Class data"
// @Success 201 {object} models.Class "Created class"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Referenced project not found"
// @Security CookieAuth
// @Router /classes [post]
func (h *ActivityHandler) CreateClass(c *gin.Context) {
	var req service.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	class, err := h.classService.Create(caller(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, class)
}

// ListClasses handles GET /classes
// @Summary List classes
// @Tags classes
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} service.ClassListResponse "Paginated classes"
// @Security CookieAuth
// @Router /classes [get]
func (h *ActivityHandler) ListClasses(c *gin.Context) {
	page, pageSize := pagination(c)

	resp, err := h.classService.List(caller(c), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

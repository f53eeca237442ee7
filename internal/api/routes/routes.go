package routes

import (
	"log"
	"time"

	"impactohub-backend/internal/api/handlers"
	"impactohub-backend/internal/api/middleware"
	"impactohub-backend/internal/auth"
	"impactohub-backend/internal/config"
	"impactohub-backend/internal/notify"
	"impactohub-backend/internal/repository"
	"impactohub-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics())

	validate := validator.New()

	// Repositories
	tenantRepo := repository.NewTenantRepository(db)
	userRepo := repository.NewUserRepository(db)
	planRepo := repository.NewSubscriptionPlanRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	proposalRepo := repository.NewProposalRepository(db)
	customizationRepo := repository.NewCustomizationRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	beneficiaryRepo := repository.NewBeneficiaryRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	classRepo := repository.NewClassRepository(db)
	reportRepo := repository.NewReportRepository(db)
	investmentRepo := repository.NewInvestmentRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Notification delivery
	var sender notify.Sender = notify.NoopSender{}
	if cfg.DeliveryWebhookURL != "" {
		sender = notify.NewWebhookSender(cfg.DeliveryWebhookURL, cfg.DeliveryToken, time.Duration(cfg.DeliveryTimeoutSec)*time.Second)
	}
	dispatcher := notify.NewDispatcher(notificationRepo, userRepo, tenantRepo, projectRepo, investmentRepo, sender)

	// Services
	tenantService := service.NewTenantService(tenantRepo, planRepo, dispatcher, validate)
	planService := service.NewSubscriptionPlanService(planRepo, validate)
	invoiceService := service.NewInvoiceService(invoiceRepo, tenantRepo, validate)
	proposalService := service.NewProposalService(proposalRepo, tenantRepo, planRepo, validate)
	customizationService := service.NewCustomizationService(customizationRepo, tenantRepo, validate)
	projectService := service.NewProjectService(projectRepo, dispatcher, validate)
	beneficiaryService := service.NewBeneficiaryService(beneficiaryRepo, validate)
	attendanceService := service.NewAttendanceService(attendanceRepo, beneficiaryRepo, projectRepo, validate)
	classService := service.NewClassService(classRepo, projectRepo, validate)
	reportService := service.NewReportService(reportRepo, projectRepo, dispatcher, validate)
	investmentService := service.NewInvestmentService(investmentRepo, projectRepo, tenantRepo, dispatcher, validate)
	notificationService := service.NewNotificationService(notificationRepo)

	// Session layer
	authService, err := auth.NewService(cfg.JWTSecret, cfg.SessionCookie, userRepo)
	if err != nil {
		log.Fatalf("failed to initialize session service: %v", err)
	}
	authMiddleware := auth.NewMiddleware(authService)
	authHandler := auth.NewHandler(authService)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	tenantHandler := handlers.NewTenantHandler(tenantService)
	billingHandler := handlers.NewBillingHandler(invoiceService, proposalService, planService)
	customizationHandler := handlers.NewCustomizationHandler(customizationService)
	projectHandler := handlers.NewProjectHandler(projectService)
	beneficiaryHandler := handlers.NewBeneficiaryHandler(beneficiaryService, attendanceService)
	activityHandler := handlers.NewActivityHandler(attendanceService, classService)
	reportHandler := handlers.NewReportHandler(reportService)
	investmentHandler := handlers.NewInvestmentHandler(investmentService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// Public surface
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Liveness)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authGroup := router.Group("/api/auth")
	{
		authGroup.GET("/me", authHandler.Me)
		authGroup.POST("/logout", authHandler.Logout)
	}

	// Back-office surface: both gates run before any handler.
	admin := router.Group("/api/v1/admin")
	admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
	{
		admin.POST("/tenants", tenantHandler.CreateTenant)
		admin.GET("/tenants", tenantHandler.ListTenants)
		admin.GET("/tenants/:id", tenantHandler.GetTenant)
		admin.PUT("/tenants/:id", tenantHandler.UpdateTenant)
		admin.DELETE("/tenants/:id", tenantHandler.DeleteTenant)
		admin.POST("/tenants/:id/approve", tenantHandler.ApproveTenant)
		admin.POST("/tenants/:id/reject", tenantHandler.RejectTenant)

		admin.GET("/tenants/:id/invoices", billingHandler.ListTenantInvoices)
		admin.POST("/invoices", billingHandler.CreateInvoice)
		admin.POST("/invoices/:id/paid", billingHandler.MarkInvoicePaid)
		admin.GET("/tenants/:id/proposals", billingHandler.ListTenantProposals)
		admin.POST("/proposals", billingHandler.CreateProposal)
		admin.GET("/plans", billingHandler.ListPlans)
		admin.POST("/plans", billingHandler.CreatePlan)

		admin.GET("/tenants/:id/theme", customizationHandler.GetTenantTheme)
		admin.PUT("/tenants/:id/theme", customizationHandler.UpdateTenantTheme)
		admin.GET("/tenants/:id/page", customizationHandler.GetTenantPage)
		admin.PUT("/tenants/:id/page", customizationHandler.UpdateTenantPage)
	}

	// Tenant-scoped surface: authentication here, tenant scoping in the
	// services via the resolved identity.
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		v1.POST("/projects", projectHandler.CreateProject)
		v1.GET("/projects", projectHandler.ListProjects)
		v1.GET("/projects/:id", projectHandler.GetProject)
		v1.PUT("/projects/:id", projectHandler.UpdateProject)
		v1.DELETE("/projects/:id", projectHandler.DeleteProject)

		v1.POST("/beneficiaries", beneficiaryHandler.CreateBeneficiary)
		v1.GET("/beneficiaries", beneficiaryHandler.ListBeneficiaries)
		v1.GET("/beneficiaries/:id", beneficiaryHandler.GetBeneficiary)
		v1.PUT("/beneficiaries/:id", beneficiaryHandler.UpdateBeneficiary)
		v1.GET("/beneficiaries/:id/attendances", beneficiaryHandler.ListBeneficiaryAttendances)

		v1.POST("/attendances", activityHandler.CreateAttendance)
		v1.GET("/attendances", activityHandler.ListAttendances)
		v1.POST("/classes", activityHandler.CreateClass)
		v1.GET("/classes", activityHandler.ListClasses)

		v1.POST("/reports", reportHandler.CreateReport)
		v1.GET("/reports", reportHandler.ListReports)
		v1.POST("/reports/:id/submit", reportHandler.SubmitReport)

		v1.POST("/investments", investmentHandler.CreateInvestment)
		v1.GET("/investments", investmentHandler.ListMyInvestments)
		v1.POST("/investments/:id/approve", investmentHandler.ApproveInvestment)
		v1.POST("/investments/:id/reject", investmentHandler.RejectInvestment)

		v1.GET("/notifications", notificationHandler.ListNotifications)
		v1.POST("/notifications/:id/read", notificationHandler.MarkNotificationRead)
		v1.POST("/notifications/read-all", notificationHandler.MarkAllNotificationsRead)

		v1.GET("/invoices", billingHandler.ListOwnInvoices)
		v1.GET("/proposals", billingHandler.ListOwnProposals)
		v1.GET("/theme", customizationHandler.GetOwnTheme)
		v1.GET("/page", customizationHandler.GetOwnPage)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": "route not found"})
	})

	return router
}

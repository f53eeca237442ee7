package handlers

import (
	"net/http"

	"impactohub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BillingHandler handles HTTP requests for invoices, proposals and plans
type BillingHandler struct {
	invoiceService  *service.InvoiceService
	proposalService *service.ProposalService
	planService     *service.SubscriptionPlanService
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(
	invoiceService *service.InvoiceService,
	proposalService *service.ProposalService,
	planService *service.SubscriptionPlanService,
) *BillingHandler {
	return &BillingHandler{
		invoiceService:  invoiceService,
		proposalService: proposalService,
		planService:     planService,
	}
}

// CreateInvoice handles POST /admin/invoices
// @Summary Issue an invoice
// @Tags admin-billing
// @Accept json
// @Produce json
// @Param invoice body service.CreateInvoiceRequest true "Invoice data"
// @Success 201 {object} models.Invoice "Issued invoice"
// @Failure 404 {object} ErrorResponse "Tenant not found"
// @Failure 409 {object} ErrorResponse "Invoice number already exists"
// @Security CookieAuth
// @Router /admin/invoices [post]
func (h *BillingHandler) CreateInvoice(c *gin.Context) {
	var req service.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	invoice, err := h.invoiceService.Create(caller(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, invoice)
}

// ListTenantInvoices handles GET /admin/tenants/:id/invoices
// @Summary List a tenant's invoices
// @Tags admin-billing
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Success 200 {object} service.InvoiceListResponse "Paginated invoices"
// @Security CookieAuth
// @Router /admin/tenants/{id}/invoices [get]
func (h *BillingHandler) ListTenantInvoices(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	resp, err := h.invoiceService.GetByTenant(caller(c), id, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// MarkInvoicePaid handles POST /admin/invoices/:id/paid
// @Summary Mark an invoice paid
// @Tags admin-billing
// @Produce json
// @Param id path string true "Invoice ID (UUID)"
// @Success 200 {object} models.Invoice "Paid invoice"
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Security CookieAuth
// @Router /admin/invoices/{id}/paid [post]
func (h *BillingHandler) MarkInvoicePaid(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	invoice, err := h.invoiceService.MarkPaid(caller(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// ListOwnInvoices handles GET /invoices
// @Summary List the caller tenant's invoices
// @Tags billing
// @Produce json
// @Success 200 {object} service.InvoiceListResponse "Paginated invoices"
// @Security CookieAuth
// @Router /invoices [get]
func (h *BillingHandler) ListOwnInvoices(c *gin.Context) {
	page, pageSize := pagination(c)

	resp, err := h.invoiceService.ListOwn(caller(c), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateProposal handles POST /admin/proposals
// @Summary Send a proposal
// @Tags admin-billing
// @Accept json
// @Produce json
// @Param proposal body service.CreateProposalRequest true "Proposal data"
// @Success 201 {object} models.Proposal "Sent proposal"
// @Failure 404 {object} ErrorResponse "Tenant or plan not found"
// @Failure 409 {object} ErrorResponse "Proposal number already exists"
// @Security CookieAuth
// @Router /admin/proposals [post]
func (h *BillingHandler) CreateProposal(c *gin.Context) {
	var req service.CreateProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	proposal, err := h.proposalService.Create(caller(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, proposal)
}

// ListTenantProposals handles GET /admin/tenants/:id/proposals
// @Summary List a tenant's proposals
// @Tags admin-billing
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Success 200 {object} service.ProposalListResponse "Paginated proposals"
// @Security CookieAuth
// @Router /admin/tenants/{id}/proposals [get]
func (h *BillingHandler) ListTenantProposals(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	resp, err := h.proposalService.GetByTenant(caller(c), id, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListOwnProposals handles GET /proposals
// @Summary List the caller tenant's proposals
// @Tags billing
// @Produce json
// @Success 200 {object} service.ProposalListResponse "Paginated proposals"
// @Security CookieAuth
// @Router /proposals [get]
func (h *BillingHandler) ListOwnProposals(c *gin.Context) {
	page, pageSize := pagination(c)

	resp, err := h.proposalService.ListOwn(caller(c), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreatePlan handles POST /admin/plans
// @Summary Create a subscription plan
// @Tags admin-billing
// @Accept json
// @Produce json
// @Param plan body service.CreateSubscriptionPlanRequest true "Plan data"
// @Success 201 {object} models.SubscriptionPlan "Created plan"
// @Failure 409 {object} ErrorResponse "Plan name already exists"
// @Security CookieAuth
// @Router /admin/plans [post]
func (h *BillingHandler) CreatePlan(c *gin.Context) {
	var req service.CreateSubscriptionPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.planService.Create(caller(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// ListPlans handles GET /admin/plans
// @Summary List subscription plans
// @Tags admin-billing
// @Produce json
// @Success 200 {object} service.SubscriptionPlanListResponse "Paginated plans"
// @Security CookieAuth
// @Router /admin/plans [get]
func (h *BillingHandler) ListPlans(c *gin.Context) {
	page, pageSize := pagination(c)

	resp, err := h.planService.GetAll(caller(c), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

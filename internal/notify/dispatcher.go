package notify

import (
	"fmt"

	"impactohub-backend/internal/database/models"
	"impactohub-backend/internal/logger"
	"impactohub-backend/internal/repository"

	"github.com/google/uuid"
)

// Dispatcher resolves the recipients of domain events and fans notifications
// out to them. Every failure inside the dispatcher is logged and swallowed:
// notification trouble must never fail the mutation that triggered it.
type Dispatcher struct {
	notificationRepo repository.NotificationRepositoryInterface
	userRepo         repository.UserRepositoryInterface
	tenantRepo       repository.TenantRepositoryInterface
	projectRepo      repository.ProjectRepositoryInterface
	investmentRepo   repository.InvestmentRepositoryInterface
	sender           Sender
	logger           *logger.Logger
}

// NewDispatcher creates a new notification dispatcher
func NewDispatcher(
	notificationRepo repository.NotificationRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	tenantRepo repository.TenantRepositoryInterface,
	projectRepo repository.ProjectRepositoryInterface,
	investmentRepo repository.InvestmentRepositoryInterface,
	sender Sender,
) *Dispatcher {
	if sender == nil {
		sender = NoopSender{}
	}
	return &Dispatcher{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		tenantRepo:       tenantRepo,
		projectRepo:      projectRepo,
		investmentRepo:   investmentRepo,
		sender:           sender,
		logger:           logger.New().WithField("component", "notify"),
	}
}

// recipient is one resolved delivery target
type recipient struct {
	tenantID uuid.UUID
	userID   uuid.UUID
}

// TenantApproved notifies the tenant's owner that the account went active
func (d *Dispatcher) TenantApproved(tenant *models.Tenant) {
	r, ok := d.resolveOwner(tenant.ID)
	if !ok {
		return
	}
	d.deliver([]recipient{r}, &models.Notification{
		Title:   "Account approved",
		Message: fmt.Sprintf("Your account %q has been approved and is now active.", tenant.Name),
		Type:    models.NotificationTypeSuccess,
		Link:    "/dashboard",
	})
}

// InvestmentCreated notifies the owner of the project's tenant that a new
// investment is waiting for a decision
func (d *Dispatcher) InvestmentCreated(investment *models.Investment) {
	project, err := d.projectRepo.GetByID(investment.ProjectID)
	if err != nil {
		d.logger.WithField("project_id", investment.ProjectID).
			Warnf("skipping recipient, project lookup failed: %v", err)
		return
	}

	r, ok := d.resolveOwner(project.TenantID)
	if !ok {
		return
	}
	d.deliver([]recipient{r}, &models.Notification{
		Title:   "New investment received",
		Message: fmt.Sprintf("Project %q received a new investment of %.2f pending review.", project.Name, investment.Amount),
		Type:    models.NotificationTypeInfo,
		Link:    fmt.Sprintf("/projects/%s/investments", project.ID),
	})
}

// InvestmentDecided notifies both sides of an investment decision: the
// investor tenant's owner and the project-owning tenant's owner
func (d *Dispatcher) InvestmentDecided(investment *models.Investment, approved bool) {
	var recipients []recipient

	if r, ok := d.resolveOwner(investment.InvestorTenantID); ok {
		recipients = append(recipients, r)
	}

	projectName := "the project"
	if project, err := d.projectRepo.GetByID(investment.ProjectID); err != nil {
		d.logger.WithField("project_id", investment.ProjectID).
			Warnf("skipping recipient, project lookup failed: %v", err)
	} else {
		projectName = fmt.Sprintf("%q", project.Name)
		if r, ok := d.resolveOwner(project.TenantID); ok {
			recipients = append(recipients, r)
		}
	}

	title := "Investment approved"
	kind := models.NotificationTypeSuccess
	verb := "approved"
	if !approved {
		title = "Investment rejected"
		kind = models.NotificationTypeWarning
		verb = "rejected"
	}

	d.deliver(recipients, &models.Notification{
		Title:   title,
		Message: fmt.Sprintf("The investment of %.2f in %s was %s.", investment.Amount, projectName, verb),
		Type:    kind,
		Link:    fmt.Sprintf("/investments/%s", investment.ID),
	})
}

// ReportSubmitted announces a submitted report to the owners of every
// investor tenant holding an approved investment in the report's project.
// Reports not tied to a project have no audience.
func (d *Dispatcher) ReportSubmitted(report *models.Report) {
	if report.ProjectID == nil {
		return
	}

	project, err := d.projectRepo.GetByID(*report.ProjectID)
	if err != nil {
		d.logger.WithField("project_id", *report.ProjectID).
			Warnf("skipping fan-out, project lookup failed: %v", err)
		return
	}

	d.fanOutToInvestors(project, &models.Notification{
		Title:   "New report available",
		Message: fmt.Sprintf("Project %q submitted a new %s report.", project.Name, report.Type),
		Type:    models.NotificationTypeInfo,
		Link:    fmt.Sprintf("/reports/%s", report.ID),
	})
}

// ProjectUpdated fans a project change out to the owners of every investor
// tenant holding an approved investment in the project
func (d *Dispatcher) ProjectUpdated(project *models.Project) {
	d.fanOutToInvestors(project, &models.Notification{
		Title:   "Project update",
		Message: fmt.Sprintf("Project %q you invested in was updated.", project.Name),
		Type:    models.NotificationTypeInfo,
		Link:    fmt.Sprintf("/projects/%s", project.ID),
	})
}

// fanOutPageSize bounds one page of the investment walk below
const fanOutPageSize = 200

// fanOutToInvestors resolves the owners of every investor tenant holding an
// approved investment in the project, walking all pages, and delivers the
// template to each. A lookup failure mid-walk drops the whole fan-out.
func (d *Dispatcher) fanOutToInvestors(project *models.Project, template *models.Notification) {
	var recipients []recipient

	for offset := 0; ; offset += fanOutPageSize {
		investments, total, err := d.investmentRepo.GetByProjectID(project.ID, fanOutPageSize, offset)
		if err != nil {
			d.logger.WithField("project_id", project.ID).
				Warnf("skipping fan-out, investment lookup failed: %v", err)
			return
		}

		for _, inv := range investments {
			if inv.Status != models.InvestmentStatusApproved {
				continue
			}
			if r, ok := d.resolveOwner(inv.InvestorTenantID); ok {
				recipients = append(recipients, r)
			}
		}

		if len(investments) == 0 || int64(offset+len(investments)) >= total {
			break
		}
	}

	d.deliver(recipients, template)
}

// resolveOwner walks tenant id -> owner user. A missing link is logged and
// the recipient is skipped.
func (d *Dispatcher) resolveOwner(tenantID uuid.UUID) (recipient, bool) {
	if _, err := d.tenantRepo.GetByID(tenantID); err != nil {
		d.logger.WithField("tenant_id", tenantID).
			Warnf("skipping recipient, tenant lookup failed: %v", err)
		return recipient{}, false
	}

	owner, err := d.userRepo.GetOwnerByTenantID(tenantID)
	if err != nil {
		d.logger.WithField("tenant_id", tenantID).
			Warnf("skipping recipient, tenant has no owner: %v", err)
		return recipient{}, false
	}

	return recipient{tenantID: tenantID, userID: owner.ID}, true
}

// deliver persists and sends one notification per recipient, deduplicating
// recipients by user id. Failures are isolated per recipient.
func (d *Dispatcher) deliver(recipients []recipient, template *models.Notification) {
	seen := make(map[uuid.UUID]bool, len(recipients))

	for _, r := range recipients {
		if seen[r.userID] {
			continue
		}
		seen[r.userID] = true

		userID := r.userID
		notification := &models.Notification{
			TenantID: r.tenantID,
			UserID:   &userID,
			Title:    template.Title,
			Message:  template.Message,
			Type:     template.Type,
			Link:     template.Link,
		}

		if err := d.notificationRepo.Create(notification); err != nil {
			d.logger.WithField("user_id", r.userID).
				Errorf("failed to persist notification: %v", err)
			continue
		}

		if err := d.sender.Send(notification); err != nil {
			d.logger.WithField("user_id", r.userID).
				Warnf("failed to deliver notification: %v", err)
		}
	}
}

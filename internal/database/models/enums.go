package models

// UserRole defines the permission class of a user
type UserRole string

const (
	RoleAdmin       UserRole = "admin"
	RoleClientAdmin UserRole = "client_admin"
	RoleClientUser  UserRole = "client_user"
	RoleInvestor    UserRole = "investor"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleClientAdmin, RoleClientUser, RoleInvestor:
		return true
	}
	return false
}

// TenantKind defines the kind of account a tenant represents
type TenantKind string

const (
	TenantKindOSC      TenantKind = "osc"
	TenantKindInvestor TenantKind = "investor"
	TenantKindBoth     TenantKind = "both"
)

// IsValid checks if the TenantKind is valid
func (k TenantKind) IsValid() bool {
	switch k {
	case TenantKindOSC, TenantKindInvestor, TenantKindBoth:
		return true
	}
	return false
}

// TenantStatus defines the lifecycle state of a tenant
type TenantStatus string

const (
	TenantStatusPending   TenantStatus = "pending"
	TenantStatusActive    TenantStatus = "active"
	TenantStatusSuspended TenantStatus = "suspended"
	TenantStatusInactive  TenantStatus = "inactive"
)

// IsValid checks if the TenantStatus is valid
func (s TenantStatus) IsValid() bool {
	switch s {
	case TenantStatusPending, TenantStatusActive, TenantStatusSuspended, TenantStatusInactive:
		return true
	}
	return false
}

// ProjectStatus defines the lifecycle state of a project
type ProjectStatus string

const (
	ProjectStatusPlanning  ProjectStatus = "planning"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusSuspended ProjectStatus = "suspended"
)

// IsValid checks if the ProjectStatus is valid
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusPlanning, ProjectStatusActive, ProjectStatusCompleted, ProjectStatusSuspended:
		return true
	}
	return false
}

// BeneficiaryStatus defines the lifecycle state of a beneficiary
type BeneficiaryStatus string

const (
	BeneficiaryStatusActive    BeneficiaryStatus = "active"
	BeneficiaryStatusInactive  BeneficiaryStatus = "inactive"
	BeneficiaryStatusGraduated BeneficiaryStatus = "graduated"
)

// IsValid checks if the BeneficiaryStatus is valid
func (s BeneficiaryStatus) IsValid() bool {
	switch s {
	case BeneficiaryStatusActive, BeneficiaryStatusInactive, BeneficiaryStatusGraduated:
		return true
	}
	return false
}

// AttendanceType defines the modality of an attendance
type AttendanceType string

const (
	AttendanceTypeIndividual AttendanceType = "individual"
	AttendanceTypeGroup      AttendanceType = "group"
	AttendanceTypeFamily     AttendanceType = "family"
)

// IsValid checks if the AttendanceType is valid
func (t AttendanceType) IsValid() bool {
	switch t {
	case AttendanceTypeIndividual, AttendanceTypeGroup, AttendanceTypeFamily:
		return true
	}
	return false
}

// AttendanceStatus defines the state of an attendance record
type AttendanceStatus string

const (
	AttendanceStatusCompleted AttendanceStatus = "completed"
	AttendanceStatusPending   AttendanceStatus = "pending"
	AttendanceStatusCanceled  AttendanceStatus = "canceled"
)

// IsValid checks if the AttendanceStatus is valid
func (s AttendanceStatus) IsValid() bool {
	switch s {
	case AttendanceStatusCompleted, AttendanceStatusPending, AttendanceStatusCanceled:
		return true
	}
	return false
}

// ClassStatus defines the lifecycle state of a class
type ClassStatus string

const (
	ClassStatusPlanning  ClassStatus = "planning"
	ClassStatusActive    ClassStatus = "active"
	ClassStatusCompleted ClassStatus = "completed"
)

// IsValid checks if the ClassStatus is valid
func (s ClassStatus) IsValid() bool {
	switch s {
	case ClassStatusPlanning, ClassStatusActive, ClassStatusCompleted:
		return true
	}
	return false
}

// ReportType defines the kind of report a tenant submits
type ReportType string

const (
	ReportTypeFinancial  ReportType = "financial"
	ReportTypeImpact     ReportType = "impact"
	ReportTypeActivities ReportType = "activities"
	ReportTypeGeneral    ReportType = "general"
)

// IsValid checks if the ReportType is valid
func (t ReportType) IsValid() bool {
	switch t {
	case ReportTypeFinancial, ReportTypeImpact, ReportTypeActivities, ReportTypeGeneral:
		return true
	}
	return false
}

// ReportStatus defines the lifecycle state of a report
type ReportStatus string

const (
	ReportStatusDraft     ReportStatus = "draft"
	ReportStatusSubmitted ReportStatus = "submitted"
	ReportStatusApproved  ReportStatus = "approved"
	ReportStatusRejected  ReportStatus = "rejected"
)

// IsValid checks if the ReportStatus is valid
func (s ReportStatus) IsValid() bool {
	switch s {
	case ReportStatusDraft, ReportStatusSubmitted, ReportStatusApproved, ReportStatusRejected:
		return true
	}
	return false
}

// InvoiceStatus defines the payment state of an invoice
type InvoiceStatus string

const (
	InvoiceStatusPending  InvoiceStatus = "pending"
	InvoiceStatusPaid     InvoiceStatus = "paid"
	InvoiceStatusOverdue  InvoiceStatus = "overdue"
	InvoiceStatusCanceled InvoiceStatus = "canceled"
)

// IsValid checks if the InvoiceStatus is valid
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusCanceled:
		return true
	}
	return false
}

// ProposalStatus defines the lifecycle state of a commercial proposal
type ProposalStatus string

const (
	ProposalStatusDraft    ProposalStatus = "draft"
	ProposalStatusSent     ProposalStatus = "sent"
	ProposalStatusAccepted ProposalStatus = "accepted"
	ProposalStatusRejected ProposalStatus = "rejected"
	ProposalStatusExpired  ProposalStatus = "expired"
)

// IsValid checks if the ProposalStatus is valid
func (s ProposalStatus) IsValid() bool {
	switch s {
	case ProposalStatusDraft, ProposalStatusSent, ProposalStatusAccepted, ProposalStatusRejected, ProposalStatusExpired:
		return true
	}
	return false
}

// InvestmentStatus defines the approval state of an investment
type InvestmentStatus string

const (
	InvestmentStatusPending  InvestmentStatus = "pending"
	InvestmentStatusApproved InvestmentStatus = "approved"
	InvestmentStatusRejected InvestmentStatus = "rejected"
)

// IsValid checks if the InvestmentStatus is valid
func (s InvestmentStatus) IsValid() bool {
	switch s {
	case InvestmentStatusPending, InvestmentStatusApproved, InvestmentStatusRejected:
		return true
	}
	return false
}

// NotificationType classifies in-app notifications
type NotificationType string

const (
	NotificationTypeInfo    NotificationType = "info"
	NotificationTypeWarning NotificationType = "warning"
	NotificationTypeSuccess NotificationType = "success"
	NotificationTypeError   NotificationType = "error"
)

// IsValid checks if the NotificationType is valid
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeInfo, NotificationTypeWarning, NotificationTypeSuccess, NotificationTypeError:
		return true
	}
	return false
}

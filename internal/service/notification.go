package service

import (
	"errors"
	"fmt"

	"impactohub-backend/internal/auth"
	"impactohub-backend/internal/database/models"
	apperrors "impactohub-backend/internal/errors"
	"impactohub-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationService handles the in-app notification feed
type NotificationService struct {
	repo repository.NotificationRepositoryInterface
}

// NewNotificationService creates a new notification service
func NewNotificationService(repo repository.NotificationRepositoryInterface) *NotificationService {
	return &NotificationService{repo: repo}
}

// NotificationListResponse represents a paginated list of notifications
type NotificationListResponse struct {
	Notifications []models.Notification `json:"notifications"`
	Unread        int64                 `json:"unread"`
	Total         int64                 `json:"total"`
	Page          int                   `json:"page"`
	PageSize      int                   `json:"page_size"`
}

// List retrieves the caller's notifications, newest first
func (s *NotificationService) List(caller *auth.Identity, page, pageSize int) (*NotificationListResponse, error) {
	tenantID, err := auth.Authorize(caller, auth.CategoryTenantRead, nil)
	if err != nil {
		return nil, err
	}

	limit, offset, err := normalizePagination(page, pageSize)
	if err != nil {
		return nil, err
	}

	notifications, total, err := s.repo.GetByRecipient(tenantID, caller.UserID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	unread, err := s.repo.CountUnread(tenantID, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return &NotificationListResponse{
		Notifications: notifications,
		Unread:        unread,
		Total:         total,
		Page:          pageOf(offset, limit),
		PageSize:      limit,
	}, nil
}

// MarkRead marks one of the caller's notifications as read
func (s *NotificationService) MarkRead(caller *auth.Identity, id uuid.UUID) error {
	tenantID, err := auth.Authorize(caller, auth.CategoryTenantWrite, nil)
	if err != nil {
		return err
	}

	notification, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotificationNotFound
		}
		return fmt.Errorf("failed to get notification: %w", err)
	}

	if notification.TenantID != tenantID {
		return apperrors.ErrNotificationNotFound
	}
	if notification.UserID != nil && *notification.UserID != caller.UserID {
		return apperrors.ErrNotificationNotFound
	}

	if err := s.repo.MarkRead(id); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	return nil
}

// MarkAllRead marks every notification addressed to the caller as read
func (s *NotificationService) MarkAllRead(caller *auth.Identity) error {
	tenantID, err := auth.Authorize(caller, auth.CategoryTenantWrite, nil)
	if err != nil {
		return err
	}

	if err := s.repo.MarkAllRead(tenantID, caller.UserID); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}

	return nil
}

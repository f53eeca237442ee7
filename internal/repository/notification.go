package repository

import (
	"impactohub-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationRepository handles database operations for notifications
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create creates a new notification
func (r *NotificationRepository) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

// GetByID retrieves a notification by ID
func (r *NotificationRepository) GetByID(id uuid.UUID) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.First(&notification, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

// GetByRecipient retrieves notifications addressed to a user of a tenant,
// including tenant-wide rows with no user set, newest first
func (r *NotificationRepository) GetByRecipient(tenantID, userID uuid.UUID, limit, offset int) ([]models.Notification, int64, error) {
	var notifications []models.Notification
	var total int64

	query := r.db.Model(&models.Notification{}).
		Where("tenant_id = ? AND (user_id IS NULL OR user_id = ?)", tenantID, userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&notifications).Error
	if err != nil {
		return nil, 0, err
	}

	return notifications, total, nil
}

// CountUnread counts unread notifications addressed to a user of a tenant
func (r *NotificationRepository) CountUnread(tenantID, userID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.Model(&models.Notification{}).
		Where("tenant_id = ? AND (user_id IS NULL OR user_id = ?) AND is_read = false", tenantID, userID).
		Count(&total).Error
	return total, err
}

// MarkRead marks a single notification as read
func (r *NotificationRepository) MarkRead(id uuid.UUID) error {
	return r.db.Model(&models.Notification{}).Where("id = ?", id).Update("is_read", true).Error
}

// MarkAllRead marks every notification addressed to a user of a tenant as read
func (r *NotificationRepository) MarkAllRead(tenantID, userID uuid.UUID) error {
	return r.db.Model(&models.Notification{}).
		Where("tenant_id = ? AND (user_id IS NULL OR user_id = ?)", tenantID, userID).
		Update("is_read", true).Error
}

// Delete deletes a notification by ID
func (r *NotificationRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Notification{}, "id = ?", id).Error
}

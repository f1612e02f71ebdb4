package repositories

import (
	"context"
	"time"

	"github.com/anonto42/localflow/internal/models"
	"gorm.io/gorm"
)

// NotificationRepository defines the interface for notification operations
type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification *models.Notification) error
	GetByTargetID(ctx context.Context, targetID string, page, limit int) ([]models.Notification, int64, error)
	GetUnreadCount(ctx context.Context, targetID string) (int64, error)
	MarkAsRead(ctx context.Context, targetID string, notificationID int64) error
	MarkAllAsRead(ctx context.Context, targetID string) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type postgresNotificationRepository struct {
	db *gorm.DB
}

func NewPostgresNotificationRepository(db *gorm.DB) NotificationRepository {
	return &postgresNotificationRepository{db: db}
}

func (r *postgresNotificationRepository) CreateNotification(ctx context.Context, notification *models.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *postgresNotificationRepository) GetByTargetID(ctx context.Context, targetID string, page, limit int) ([]models.Notification, int64, error) {
	var notifications []models.Notification
	var total int64

	db := r.db.WithContext(ctx)
	if err := db.Model(&models.Notification{}).Where("target_profile_id = ?", targetID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := db.Where("target_profile_id = ?", targetID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&notifications).Error

	return notifications, total, err
}

func (r *postgresNotificationRepository) GetUnreadCount(ctx context.Context, targetID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("target_profile_id = ? AND is_read = ?", targetID, false).
		Count(&count).Error
	return count, err
}

// MarkAsRead is scoped to the target so one profile cannot touch another's notifications.
func (r *postgresNotificationRepository) MarkAsRead(ctx context.Context, targetID string, notificationID int64) error {
	res := r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("notification_id = ? AND target_profile_id = ?", notificationID, targetID).
		Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *postgresNotificationRepository) MarkAllAsRead(ctx context.Context, targetID string) error {
	return r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("target_profile_id = ? AND is_read = ?", targetID, false).
		Update("is_read", true).Error
}

// DeleteOlderThan removes every notification created strictly before cutoff
// and reports how many rows went.
func (r *postgresNotificationRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&models.Notification{})
	return res.RowsAffected, res.Error
}

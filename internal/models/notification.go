package models

import "time"

type NotificationType string

const (
	NotificationFollow  NotificationType = "follow"
	NotificationReview  NotificationType = "review"
	NotificationReply   NotificationType = "reply"
	NotificationMention NotificationType = "mention"
	NotificationTag     NotificationType = "tag"
	NotificationSystem  NotificationType = "system"
	NotificationOther   NotificationType = "other"
)

// Notification is addressed from a source profile to a target profile,
// optionally about a board.
type Notification struct {
	ID               int64            `json:"notification_id" gorm:"column:notification_id;primaryKey;autoIncrement"`
	SourceProfileID  string           `json:"source_profile_id" gorm:"not null;index"`
	TargetProfileID  string           `json:"target_profile_id" gorm:"not null;index"`
	NotificationType NotificationType `json:"notification_type" gorm:"not null"`
	BoardID          *int64           `json:"board_id"`
	IsRead           bool             `json:"is_read" gorm:"not null;default:false;index"`
	CreatedAt        time.Time        `json:"created_at" gorm:"index"`
}

func (Notification) TableName() string {
	return "notifications"
}

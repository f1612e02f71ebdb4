// Package maintenance holds housekeeping operations triggered from outside,
// such as by a scheduled caller hitting the purge endpoint.
package maintenance

import (
	"context"
	"time"

	"github.com/anonto42/localflow/pkg/metrics"
	"github.com/sirupsen/logrus"
)

// NotificationRetention is how long a notification is kept.
const NotificationRetention = 7 * 24 * time.Hour

type NotificationDeleter interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type Purger struct {
	notifications NotificationDeleter
	metrics       metrics.Recorder
	log           *logrus.Logger
	now           func() time.Time
}

func NewPurger(n NotificationDeleter, rec metrics.Recorder, log *logrus.Logger) *Purger {
	return &Purger{notifications: n, metrics: rec, log: log, now: time.Now}
}

// PurgeNotifications deletes notifications created before now minus the
// retention window and returns how many were removed.
func (p *Purger) PurgeNotifications(ctx context.Context) (int64, error) {
	cutoff := p.now().UTC().Add(-NotificationRetention)
	deleted, err := p.notifications.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		p.log.WithError(err).WithField("cutoff", cutoff).Error("notification purge failed")
		return 0, err
	}
	p.metrics.RecordNotificationsPurged(deleted)
	p.log.WithFields(logrus.Fields{"cutoff": cutoff, "deleted": deleted}).Info("old notifications purged")
	return deleted, nil
}

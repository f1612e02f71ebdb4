package profile

import (
	"context"
	"strings"

	"github.com/anonto42/localflow/internal/catalog"
	"github.com/anonto42/localflow/internal/models"
	"github.com/anonto42/localflow/pkg/metrics"
	"github.com/sirupsen/logrus"
)

type Store interface {
	GetFullProfile(ctx context.Context, id string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, id string, columns map[string]interface{}) (*models.Profile, error)
}

type Service struct {
	store   Store
	metrics metrics.Recorder
	log     *logrus.Logger
}

func NewService(store Store, rec metrics.Recorder, log *logrus.Logger) *Service {
	return &Service{store: store, metrics: rec, log: log}
}

func (s *Service) Get(ctx context.Context, id string) (*models.Profile, error) {
	return s.store.GetFullProfile(ctx, id)
}

// Apply writes u's columns for profile id and returns the stored profile.
func (s *Service) Apply(ctx context.Context, id string, u Update) (*models.Profile, error) {
	updated, err := s.store.UpdateProfile(ctx, id, u.Columns())
	if err != nil {
		return nil, err
	}
	s.metrics.RecordProfileUpdate(u.Field())
	s.log.WithFields(logrus.Fields{"profile_id": id, "field": u.Field()}).Info("profile updated")
	return updated, nil
}

// Display holds the strings the profile page shows for each row.
type Display struct {
	Phone     string
	Interests string
	Currency  string
	Settings  string
}

func NewDisplay(p *models.Profile) Display {
	d := Display{
		Phone:     FormatPhone(p.Phone),
		Interests: strings.Join(p.Interests, ", "),
		Currency:  p.PreferredCurrency,
	}
	if d.Currency == "" {
		d.Currency = catalog.DefaultCurrency
	}

	var parts []string
	n := p.NotificationSettings.Data()
	for _, on := range []struct {
		enabled bool
		label   string
	}{{n.Email, "email"}, {n.Push, "push"}, {n.Marketing, "marketing"}} {
		if on.enabled {
			parts = append(parts, on.label)
		}
	}
	notifications := "notifications off"
	if len(parts) > 0 {
		notifications = "notifications: " + strings.Join(parts, ", ")
	}
	visibility := p.PrivacySettings.Data().ProfileVisibility
	if visibility == "" {
		visibility = models.VisibilityPublic
	}
	d.Settings = notifications + " · " + string(visibility) + " profile"
	return d
}

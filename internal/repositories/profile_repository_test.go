package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/anonto42/localflow/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func TestProfileRepository_GetProfileByIDIsMinimal(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresProfileRepository(db)
	seedProfile(t, db, "p1")

	summary, err := repo.GetProfileByID(context.Background(), "p1")
	if err != nil {
		t.Fatalf("GetProfileByID: %v", err)
	}
	if summary.ID != "p1" || summary.Username != "user-p1" {
		t.Errorf("unexpected summary %+v", summary)
	}

	_, err = repo.GetProfileByID(context.Background(), "missing")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("missing profile err = %v, want ErrRecordNotFound", err)
	}
}

func TestProfileRepository_CreateKeepsDefaults(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresProfileRepository(db)
	seedProfile(t, db, "p1")

	p, err := repo.GetFullProfile(context.Background(), "p1")
	if err != nil {
		t.Fatalf("GetFullProfile: %v", err)
	}
	if p.PreferredCurrency != "KRW" || p.Timezone != "UTC" || p.Role != models.RoleTraveler || p.JoinPath != models.JoinPathEmail {
		t.Errorf("defaults not kept: %+v", p)
	}
	if !p.IsActive {
		t.Error("new profile should be active")
	}
	if got := p.PrivacySettings.Data().ProfileVisibility; got != models.VisibilityPublic {
		t.Errorf("visibility = %q, want public", got)
	}
}

func TestProfileRepository_UpdateProfileIsPartial(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresProfileRepository(db)
	seedProfile(t, db, "p1")
	ctx := context.Background()

	updated, err := repo.UpdateProfile(ctx, "p1", map[string]interface{}{
		"phone":     "01012345678",
		"interests": models.TextArray{"hiking", "food"},
		"notification_settings": datatypes.NewJSONType(models.NotificationSettings{
			Email: true,
		}),
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.Phone != "01012345678" {
		t.Errorf("phone = %q", updated.Phone)
	}
	if len(updated.Interests) != 2 || updated.Interests[1] != "food" {
		t.Errorf("interests = %v", updated.Interests)
	}
	if !updated.NotificationSettings.Data().Email {
		t.Error("notification email setting not stored")
	}
	if updated.Username != "user-p1" || updated.Email != "p1@example.com" {
		t.Errorf("untouched columns changed: %+v", updated)
	}
}

func TestProfileRepository_UpdateUnknownProfile(t *testing.T) {
	repo := NewPostgresProfileRepository(newTestDB(t))
	_, err := repo.UpdateProfile(context.Background(), "ghost", map[string]interface{}{"bio": "x"})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("err = %v, want ErrRecordNotFound", err)
	}
}

func TestProfileRepository_TouchLastLogin(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresProfileRepository(db)
	seedProfile(t, db, "p1")
	at := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

	if err := repo.TouchLastLogin(context.Background(), "p1", at); err != nil {
		t.Fatalf("TouchLastLogin: %v", err)
	}
	p, err := repo.GetFullProfile(context.Background(), "p1")
	if err != nil {
		t.Fatal(err)
	}
	if p.LastLoginAt == nil || !p.LastLoginAt.Equal(at) {
		t.Errorf("last_login_at = %v, want %v", p.LastLoginAt, at)
	}
}

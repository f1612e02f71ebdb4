package repositories

import (
	"context"
	"time"

	"github.com/anonto42/localflow/internal/models"
	"gorm.io/gorm"
)

// ProfileRepository defines the data operations on profiles
type ProfileRepository interface {
	CreateProfile(ctx context.Context, profile *models.Profile) error
	GetProfileByID(ctx context.Context, id string) (*models.ProfileSummary, error)
	GetFullProfile(ctx context.Context, id string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, id string, columns map[string]interface{}) (*models.Profile, error)
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
}

// PostgresProfileRepository implements ProfileRepository with GORM
type PostgresProfileRepository struct {
	db *gorm.DB
}

func NewPostgresProfileRepository(db *gorm.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) CreateProfile(ctx context.Context, profile *models.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

// GetProfileByID fetches only what the navigation shell needs.
func (r *PostgresProfileRepository) GetProfileByID(ctx context.Context, id string) (*models.ProfileSummary, error) {
	var summary models.ProfileSummary
	err := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Select("profile_id", "username", "avatar").
		Where("profile_id = ?", id).
		Take(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (r *PostgresProfileRepository) GetFullProfile(ctx context.Context, id string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).Where("profile_id = ?", id).Take(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile writes only the given columns and returns the stored row.
func (r *PostgresProfileRepository) UpdateProfile(ctx context.Context, id string, columns map[string]interface{}) (*models.Profile, error) {
	res := r.db.WithContext(ctx).Model(&models.Profile{}).Where("profile_id = ?", id).Updates(columns)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetFullProfile(ctx, id)
}

func (r *PostgresProfileRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	return r.db.WithContext(ctx).Model(&models.Profile{}).
		Where("profile_id = ?", id).
		UpdateColumn("last_login_at", at).Error
}

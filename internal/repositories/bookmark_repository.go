package repositories

import (
	"context"

	"github.com/anonto42/localflow/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookmarkRepository defines the interface for saved board operations
type BookmarkRepository interface {
	Bookmark(ctx context.Context, boardID int64, profileID string) error
	Unbookmark(ctx context.Context, boardID int64, profileID string) error
	IsBookmarked(ctx context.Context, boardID int64, profileID string) (bool, error)
	GetBookmarksByProfile(ctx context.Context, profileID string) ([]models.BoardBookmark, error)
	BookmarkedBoardIDs(ctx context.Context, profileID string, boardIDs []int64) (map[int64]bool, error)
}

type PostgresBookmarkRepository struct {
	db *gorm.DB
}

func NewPostgresBookmarkRepository(db *gorm.DB) *PostgresBookmarkRepository {
	return &PostgresBookmarkRepository{db: db}
}

func (r *PostgresBookmarkRepository) Bookmark(ctx context.Context, boardID int64, profileID string) error {
	bookmark := models.BoardBookmark{BoardID: boardID, ProfileID: profileID}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&bookmark).Error
}

func (r *PostgresBookmarkRepository) Unbookmark(ctx context.Context, boardID int64, profileID string) error {
	return r.db.WithContext(ctx).
		Where("board_id = ? AND profile_id = ?", boardID, profileID).
		Delete(&models.BoardBookmark{}).Error
}

func (r *PostgresBookmarkRepository) IsBookmarked(ctx context.Context, boardID int64, profileID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.BoardBookmark{}).
		Where("board_id = ? AND profile_id = ?", boardID, profileID).
		Count(&count).Error
	return count > 0, err
}

func (r *PostgresBookmarkRepository) GetBookmarksByProfile(ctx context.Context, profileID string) ([]models.BoardBookmark, error) {
	var saved []models.BoardBookmark
	err := r.db.WithContext(ctx).Where("profile_id = ?", profileID).Order("created_at DESC").Find(&saved).Error
	return saved, err
}

func (r *PostgresBookmarkRepository) BookmarkedBoardIDs(ctx context.Context, profileID string, boardIDs []int64) (map[int64]bool, error) {
	result := make(map[int64]bool)
	if len(boardIDs) == 0 || profileID == "" {
		return result, nil
	}
	var saved []models.BoardBookmark
	err := r.db.WithContext(ctx).Where("profile_id = ? AND board_id IN ?", profileID, boardIDs).Find(&saved).Error
	if err != nil {
		return nil, err
	}
	for _, s := range saved {
		result[s.BoardID] = true
	}
	return result, nil
}

package repositories

import (
	"context"

	"github.com/anonto42/localflow/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeRepository defines the interface for board like operations
type LikeRepository interface {
	Like(ctx context.Context, boardID int64, profileID string) error
	Unlike(ctx context.Context, boardID int64, profileID string) error
	HasLiked(ctx context.Context, boardID int64, profileID string) (bool, error)
	CountLikes(ctx context.Context, boardID int64) (int64, error)
	CountLikesFor(ctx context.Context, boardIDs []int64) (map[int64]int64, error)
	LikedBoardIDs(ctx context.Context, profileID string, boardIDs []int64) (map[int64]bool, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// Like is idempotent: liking an already liked board is not an error.
func (r *PostgresLikeRepository) Like(ctx context.Context, boardID int64, profileID string) error {
	like := models.BoardLike{BoardID: boardID, ProfileID: profileID}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error
}

func (r *PostgresLikeRepository) Unlike(ctx context.Context, boardID int64, profileID string) error {
	return r.db.WithContext(ctx).
		Where("board_id = ? AND profile_id = ?", boardID, profileID).
		Delete(&models.BoardLike{}).Error
}

func (r *PostgresLikeRepository) HasLiked(ctx context.Context, boardID int64, profileID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.BoardLike{}).
		Where("board_id = ? AND profile_id = ?", boardID, profileID).
		Count(&count).Error
	return count > 0, err
}

func (r *PostgresLikeRepository) CountLikes(ctx context.Context, boardID int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.BoardLike{}).Where("board_id = ?", boardID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountLikesFor returns the like count of each board; boards without likes are absent.
func (r *PostgresLikeRepository) CountLikesFor(ctx context.Context, boardIDs []int64) (map[int64]int64, error) {
	result := make(map[int64]int64)
	if len(boardIDs) == 0 {
		return result, nil
	}
	var rows []struct {
		BoardID int64
		Total   int64
	}
	err := r.db.WithContext(ctx).Model(&models.BoardLike{}).
		Select("board_id, COUNT(*) AS total").
		Where("board_id IN ?", boardIDs).
		Group("board_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.BoardID] = row.Total
	}
	return result, nil
}

func (r *PostgresLikeRepository) LikedBoardIDs(ctx context.Context, profileID string, boardIDs []int64) (map[int64]bool, error) {
	result := make(map[int64]bool)
	if len(boardIDs) == 0 || profileID == "" {
		return result, nil
	}
	var likes []models.BoardLike
	err := r.db.WithContext(ctx).Where("profile_id = ? AND board_id IN ?", profileID, boardIDs).Find(&likes).Error
	if err != nil {
		return nil, err
	}
	for _, l := range likes {
		result[l.BoardID] = true
	}
	return result, nil
}

package repositories

import (
	"context"

	"github.com/anonto42/localflow/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BoardQuery narrows a board search. Region and City are always applied;
// blank optional fields are ignored.
type BoardQuery struct {
	Region   string
	City     string
	Theme    string
	SubTheme string
	Season   string
}

// BoardRepository defines the board read operations
type BoardRepository interface {
	CreateBoard(ctx context.Context, board *models.Board) error
	GetBoardByID(ctx context.Context, id int64) (*models.Board, error)
	GetImages(ctx context.Context, boardID int64) ([]models.BoardImage, error)
	AddImage(ctx context.Context, image *models.BoardImage) error
	Search(ctx context.Context, q BoardQuery, page, limit int) ([]models.Board, int64, error)
}

// PostgresBoardRepository implements BoardRepository
type PostgresBoardRepository struct {
	db *gorm.DB
}

func NewPostgresBoardRepository(db *gorm.DB) *PostgresBoardRepository {
	return &PostgresBoardRepository{db: db}
}

// CreateBoard inserts board. A board without a slug gets a random one.
func (r *PostgresBoardRepository) CreateBoard(ctx context.Context, board *models.Board) error {
	if board.Slug == "" {
		board.Slug = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(board).Error
}

func (r *PostgresBoardRepository) GetBoardByID(ctx context.Context, id int64) (*models.Board, error) {
	var board models.Board
	if err := r.db.WithContext(ctx).Where("board_id = ?", id).Take(&board).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

// GetImages returns a board's images in display order.
func (r *PostgresBoardRepository) GetImages(ctx context.Context, boardID int64) ([]models.BoardImage, error) {
	var images []models.BoardImage
	err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("image_order ASC, image_id ASC").
		Find(&images).Error
	return images, err
}

func (r *PostgresBoardRepository) AddImage(ctx context.Context, image *models.BoardImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

// Search pages through published boards matching q, newest first.
func (r *PostgresBoardRepository) Search(ctx context.Context, q BoardQuery, page, limit int) ([]models.Board, int64, error) {
	if page < 1 {
		page = 1
	}

	scope := func(db *gorm.DB) *gorm.DB {
		db = db.Where("status = ? AND region = ? AND city = ?", models.StatusPublished, q.Region, q.City)
		if q.Theme != "" {
			db = db.Where("theme = ?", q.Theme)
		}
		if q.SubTheme != "" {
			db = arrayContains(db, "sub_themes", q.SubTheme)
		}
		if q.Season != "" {
			db = arrayContains(db, "seasons", q.Season)
		}
		return db
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Board{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var boards []models.Board
	err := r.db.WithContext(ctx).Scopes(scope).
		Order("published_at DESC, board_id DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&boards).Error
	if err != nil {
		return nil, 0, err
	}
	return boards, total, nil
}

// arrayContains matches rows whose text[] column holds value. Dialects
// without arrays store the quoted array literal, so a LIKE on the quoted
// element does the same job.
func arrayContains(db *gorm.DB, column, value string) *gorm.DB {
	if db.Dialector.Name() == "postgres" {
		return db.Where("? = ANY("+column+")", value)
	}
	return db.Where(column+" LIKE ?", `%"`+value+`"%`)
}

package repositories

import (
	"context"

	"github.com/anonto42/localflow/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ItineraryRepository interface {
	CreateItinerary(ctx context.Context, itinerary *models.Itinerary) error
	GetItineraryByID(ctx context.Context, id int64) (*models.Itinerary, error)
	AttachBoard(ctx context.Context, itineraryID, boardID int64) error
	GetBoards(ctx context.Context, itineraryID int64) ([]models.Board, error)
}

type PostgresItineraryRepository struct {
	db *gorm.DB
}

func NewPostgresItineraryRepository(db *gorm.DB) *PostgresItineraryRepository {
	return &PostgresItineraryRepository{db: db}
}

func (r *PostgresItineraryRepository) CreateItinerary(ctx context.Context, itinerary *models.Itinerary) error {
	return r.db.WithContext(ctx).Create(itinerary).Error
}

func (r *PostgresItineraryRepository) GetItineraryByID(ctx context.Context, id int64) (*models.Itinerary, error) {
	var itinerary models.Itinerary
	if err := r.db.WithContext(ctx).Where("itinerary_id = ?", id).Take(&itinerary).Error; err != nil {
		return nil, err
	}
	return &itinerary, nil
}

func (r *PostgresItineraryRepository) AttachBoard(ctx context.Context, itineraryID, boardID int64) error {
	link := models.BoardItinerary{BoardID: boardID, ItineraryID: itineraryID}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error
}

// GetBoards lists the itinerary's boards in the order they were attached.
func (r *PostgresItineraryRepository) GetBoards(ctx context.Context, itineraryID int64) ([]models.Board, error) {
	var boards []models.Board
	err := r.db.WithContext(ctx).
		Joins("JOIN board_itineraries bi ON bi.board_id = boards.board_id").
		Where("bi.itinerary_id = ?", itineraryID).
		Order("bi.created_at ASC, boards.board_id ASC").
		Find(&boards).Error
	return boards, err
}

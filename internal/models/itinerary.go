package models

import (
	"time"

	"gorm.io/datatypes"
)

type ItineraryStats struct {
	Views  int `json:"views"`
	Likes  int `json:"likes"`
	Shares int `json:"shares"`
	Saves  int `json:"saves"`
}

// Itinerary groups boards into a dated trip plan. StartDate is expected to
// precede EndDate but the schema does not enforce it.
type Itinerary struct {
	ID          int64                              `json:"itinerary_id" gorm:"column:itinerary_id;primaryKey;autoIncrement"`
	Title       string                             `json:"title" gorm:"not null"`
	Description string                             `json:"description"`
	Slug        string                             `json:"slug" gorm:"uniqueIndex"`
	StartDate   time.Time                          `json:"start_date" gorm:"not null"`
	EndDate     time.Time                          `json:"end_date" gorm:"not null"`
	Region      string                             `json:"region" gorm:"not null"`
	City        string                             `json:"city" gorm:"not null"`
	Status      Status                             `json:"status" gorm:"not null;default:draft"`
	IsFeatured  bool                               `json:"is_featured"`
	Stats       datatypes.JSONType[ItineraryStats] `json:"stats"`
	ProfileID   string                             `json:"profile_id" gorm:"not null;index"`
	CreatedAt   time.Time                          `json:"created_at"`
	UpdatedAt   time.Time                          `json:"updated_at"`
}

func (Itinerary) TableName() string {
	return "itineraries"
}

type BoardItinerary struct {
	BoardID     int64     `json:"board_id" gorm:"primaryKey;autoIncrement:false"`
	ItineraryID int64     `json:"itinerary_id" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt   time.Time `json:"created_at"`
}

func (BoardItinerary) TableName() string {
	return "board_itineraries"
}

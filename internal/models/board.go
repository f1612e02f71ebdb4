package models

import (
	"time"

	"gorm.io/datatypes"
)

type BusinessCategory string

const (
	CategoryRestaurant    BusinessCategory = "restaurant"
	CategoryCafe          BusinessCategory = "cafe"
	CategoryPerformance   BusinessCategory = "performance"
	CategoryExhibition    BusinessCategory = "exhibition"
	CategoryShopping      BusinessCategory = "shopping"
	CategoryAccommodation BusinessCategory = "accommodation"
	CategoryAttraction    BusinessCategory = "attraction"
	CategoryEntertainment BusinessCategory = "entertainment"
	CategorySports        BusinessCategory = "sports"
	CategorySpa           BusinessCategory = "spa"
	CategoryOther         BusinessCategory = "other"
)

// Status is shared by boards and itineraries.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
	StatusHidden    Status = "hidden"
)

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type OpeningHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed,omitempty"`
}

type BusinessInfo struct {
	Hours          map[string]OpeningHours `json:"hours,omitempty"`
	Holidays       []string                `json:"holidays,omitempty"`
	RegularHoliday string                  `json:"regularHoliday,omitempty"`
	Note           string                  `json:"note,omitempty"`
}

type BoardStats struct {
	Views int `json:"views"`
	Saves int `json:"saves"`
	Likes int `json:"likes"`
}

// Board is a travel post authored by a profile.
type Board struct {
	ID                 int64                             `json:"board_id" gorm:"column:board_id;primaryKey;autoIncrement"`
	Title              string                            `json:"title" gorm:"not null"`
	Slug               string                            `json:"slug" gorm:"uniqueIndex"`
	Region             string                            `json:"region" gorm:"not null;index:idx_boards_region_city"`
	City               string                            `json:"city" gorm:"not null;index:idx_boards_region_city"`
	Location           string                            `json:"location" gorm:"not null"`
	Coordinates        *datatypes.JSONType[Coordinates]  `json:"coordinates,omitempty"`
	BCategory          BusinessCategory                  `json:"bcategory" gorm:"column:bcategory;not null"`
	Theme              string                            `json:"theme"`
	SubThemes          TextArray                         `json:"sub_themes"`
	Seasons            TextArray                         `json:"seasons"`
	Description        string                            `json:"description" gorm:"not null"`
	ThumbnailImage     string                            `json:"thumbnail_image" gorm:"not null"`
	Tags               TextArray                         `json:"tags"`
	BusinessInfo       *datatypes.JSONType[BusinessInfo] `json:"business_info,omitempty"`
	RecommendedSeasons TextArray                         `json:"recommended_seasons"`
	Stats              datatypes.JSONType[BoardStats]    `json:"stats"`
	Status             Status                            `json:"status" gorm:"not null;default:draft"`
	IsFeatured         bool                              `json:"is_featured"`
	IsVerified         bool                              `json:"is_verified"`
	PublishedAt        *time.Time                        `json:"published_at"`
	RelatedBoardIDs    TextArray                         `json:"related_board_ids" gorm:"column:related_board_ids"`
	ProfileID          string                            `json:"profile_id" gorm:"not null;index"`
	CreatedAt          time.Time                         `json:"created_at"`
	UpdatedAt          time.Time                         `json:"updated_at"`
}

func (Board) TableName() string {
	return "boards"
}

// BoardImage is one entry of a board's ordered image list.
type BoardImage struct {
	ID         int64     `json:"image_id" gorm:"column:image_id;primaryKey;autoIncrement"`
	BoardID    int64     `json:"board_id" gorm:"not null;index"`
	ImageURL   string    `json:"image_url" gorm:"not null"`
	ImageOrder int       `json:"image_order" gorm:"not null;default:0"`
	CreatedAt  time.Time `json:"created_at"`
}

func (BoardImage) TableName() string {
	return "board_images"
}

package models

import "time"

// BoardBookmark is a board saved by a profile
type BoardBookmark struct {
	BoardID   int64     `json:"board_id" gorm:"primaryKey;autoIncrement:false"`
	ProfileID string    `json:"profile_id" gorm:"primaryKey;index"`
	CreatedAt time.Time `json:"created_at"`
}

func (BoardBookmark) TableName() string {
	return "board_bookmarks"
}

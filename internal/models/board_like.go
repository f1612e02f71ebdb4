package models

import "time"

// BoardLike marks a board as liked by a profile. Presence of the row is the like.
type BoardLike struct {
	BoardID   int64     `json:"board_id" gorm:"primaryKey;autoIncrement:false"`
	ProfileID string    `json:"profile_id" gorm:"primaryKey;index"`
	CreatedAt time.Time `json:"created_at"`
}

func (BoardLike) TableName() string {
	return "board_likes"
}

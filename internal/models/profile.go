package models

import (
	"time"

	"gorm.io/datatypes"
)

type Role string

const (
	RoleTraveler Role = "traveler"
	RoleCreator  Role = "creator"
)

// JoinPath is the channel through which a profile was created.
type JoinPath string

const (
	JoinPathEmail  JoinPath = "email"
	JoinPathGoogle JoinPath = "google"
	JoinPathKakao  JoinPath = "kakao"
	JoinPathNaver  JoinPath = "naver"
)

type ProfileVisibility string

const (
	VisibilityPublic  ProfileVisibility = "public"
	VisibilityPrivate ProfileVisibility = "private"
	VisibilityFriends ProfileVisibility = "friends"
)

type NotificationSettings struct {
	Email     bool `json:"email"`
	Push      bool `json:"push"`
	Marketing bool `json:"marketing"`
}

type PrivacySettings struct {
	ProfileVisibility ProfileVisibility `json:"profile_visibility"`
	ShowEmail         bool              `json:"show_email"`
	ShowPhone         bool              `json:"show_phone"`
}

type ProfileStats struct {
	BoardsCount    int `json:"boards_count"`
	FollowersCount int `json:"followers_count"`
	FollowingCount int `json:"following_count"`
}

// Profile is the application-level user record. Its id is the external identity's id.
type Profile struct {
	ID                   string                                   `json:"profile_id" gorm:"column:profile_id;primaryKey"`
	Email                string                                   `json:"email"`
	Phone                string                                   `json:"phone"`
	Avatar               string                                   `json:"avatar"`
	Username             string                                   `json:"username"`
	Bio                  string                                   `json:"bio"`
	Country              string                                   `json:"country"`
	Language             string                                   `json:"language"`
	Timezone             string                                   `json:"timezone" gorm:"default:UTC"`
	Interests            TextArray                                `json:"interests"`
	PreferredCurrency    string                                   `json:"preferred_currency" gorm:"default:KRW"`
	Role                 Role                                     `json:"role" gorm:"not null;default:traveler"`
	JoinPath             JoinPath                                 `json:"join_path" gorm:"not null;default:email"`
	EmailVerified        bool                                     `json:"email_verified"`
	PhoneVerified        bool                                     `json:"phone_verified"`
	NotificationSettings datatypes.JSONType[NotificationSettings] `json:"notification_settings"`
	PrivacySettings      datatypes.JSONType[PrivacySettings]      `json:"privacy_settings"`
	Stats                datatypes.JSONType[ProfileStats]         `json:"stats"`
	IsActive             bool                                     `json:"is_active"`
	IsVerified           bool                                     `json:"is_verified"`
	LastLoginAt          *time.Time                               `json:"last_login_at"`
	CreatedAt            time.Time                                `json:"created_at"`
	UpdatedAt            time.Time                                `json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

// ProfileSummary is the minimal projection used by the navigation shell.
type ProfileSummary struct {
	ID       string `json:"profile_id" gorm:"column:profile_id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// NewProfile returns a profile carrying the column defaults of the profiles table.
func NewProfile(id, email string) *Profile {
	privacy := PrivacySettings{ProfileVisibility: VisibilityPublic}
	return &Profile{
		ID:                   id,
		Email:                email,
		Timezone:             "UTC",
		Interests:            TextArray{},
		PreferredCurrency:    "KRW",
		Role:                 RoleTraveler,
		JoinPath:             JoinPathEmail,
		NotificationSettings: datatypes.NewJSONType(NotificationSettings{}),
		PrivacySettings:      datatypes.NewJSONType(privacy),
		Stats:                datatypes.NewJSONType(ProfileStats{}),
		IsActive:             true,
	}
}

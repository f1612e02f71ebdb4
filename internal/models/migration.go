package models

import "gorm.io/gorm"

// AutoMigrate creates every table from the model definitions. Production
// schemas come from the SQL migrations; this is used against SQLite.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Profile{},
		&Board{},
		&BoardImage{},
		&BoardLike{},
		&BoardBookmark{},
		&Itinerary{},
		&BoardItinerary{},
		&Notification{},
	)
}

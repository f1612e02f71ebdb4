package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/anonto42/localflow/internal/models"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedProfile(t *testing.T, db *gorm.DB, id string) *models.Profile {
	t.Helper()
	p := models.NewProfile(id, id+"@example.com")
	p.Username = "user-" + id
	if err := NewPostgresProfileRepository(db).CreateProfile(context.Background(), p); err != nil {
		t.Fatalf("seed profile %s: %v", id, err)
	}
	return p
}

func seedBoard(t *testing.T, db *gorm.DB, owner, slug, region, city string, mutate func(*models.Board)) *models.Board {
	t.Helper()
	published := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	b := &models.Board{
		Title:          "Board " + slug,
		Slug:           slug,
		Region:         region,
		City:           city,
		Location:       "Somewhere in " + city,
		BCategory:      models.CategoryCafe,
		Description:    "A place worth a visit",
		ThumbnailImage: "https://img.example.com/" + slug + ".jpg",
		Stats:          datatypes.NewJSONType(models.BoardStats{}),
		Status:         models.StatusPublished,
		PublishedAt:    &published,
		ProfileID:      owner,
	}
	if mutate != nil {
		mutate(b)
	}
	if err := NewPostgresBoardRepository(db).CreateBoard(context.Background(), b); err != nil {
		t.Fatalf("seed board %s: %v", slug, err)
	}
	return b
}

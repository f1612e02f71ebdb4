package models

import (
	"database/sql/driver"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// TextArray is a text[] column on PostgreSQL. Other dialects store the
// array literal as plain text, which keeps SQLite-backed tests working.
type TextArray []string

func (a TextArray) Value() (driver.Value, error) {
	return pq.StringArray(a).Value()
}

func (a *TextArray) Scan(src interface{}) error {
	return (*pq.StringArray)(a).Scan(src)
}

func (TextArray) GormDataType() string {
	return "text[]"
}

func (TextArray) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}

// Contains reports whether v is one of the array's elements.
func (a TextArray) Contains(v string) bool {
	for _, s := range a {
		if s == v {
			return true
		}
	}
	return false
}

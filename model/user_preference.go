package model

import (
	"time"

	"gorm.io/gorm"
)

/*

UserPreference is a "many-to-many" relation of user's interest in a category

UserID: user id
CategoryID: category id
CreatedAt: time when relation is created

The composite primary key guarantees at most one row per (user, category)
pair. Rows are hard-deleted: the replace operation drops the full set and
re-inserts, so a soft-delete column would collide with the re-insert.

*/
type UserPreference struct {
	UserID     string `gorm:"primaryKey;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CategoryID int32  `gorm:"primaryKey;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt  time.Time
}

func (UserPreference) BeforeCreate(db *gorm.DB) error {
	return nil
}

package repository

import (
	"github.com/newshubio/newshub/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultCategoryLimit = 100

// ListCategories returns at most limit categories ordered by id.
func ListCategories(db *gorm.DB, limit int) ([]*model.Category, error) {
	if limit <= 0 {
		limit = defaultCategoryLimit
	}
	var categories []*model.Category
	if err := db.Order("id").Limit(limit).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// UpsertCategories inserts reference categories, leaving already seeded rows
// untouched on conflict. Names are normalized before insert. Used by the
// seed binary.
func UpsertCategories(db *gorm.DB, categories []model.Category) error {
	if len(categories) == 0 {
		return nil
	}
	for i := range categories {
		categories[i].Name = NormalizeCategoryName(categories[i].Name)
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&categories).Error
}

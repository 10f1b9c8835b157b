package repository

import (
	"strconv"
	"time"

	"github.com/newshubio/newshub/model"
	. "github.com/newshubio/newshub/utils/log"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const defaultPreferenceLimit = 100

// PreferenceFilter narrows the consolidated preference listing.
type PreferenceFilter struct {
	Limit        int
	NameContains string
}

// ListPreferences returns, for every matching user that holds at least one
// preference, the user plus its (category id, category name) pairs in
// insertion order. Users without preferences are omitted. Zero matches is an
// empty slice, not an error.
func ListPreferences(db *gorm.DB, filter PreferenceFilter) ([]*model.UserPreferencesView, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultPreferenceLimit
	}

	query := db.Model(&model.User{}).Order("id").Limit(limit)
	if filter.NameContains != "" {
		query = query.Where("name ILIKE ?", "%"+filter.NameContains+"%")
	}
	var users []*model.User
	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}

	views := []*model.UserPreferencesView{}
	for _, user := range users {
		pairs, err := preferencesForUser(db, user.Id)
		if err != nil {
			return nil, err
		}
		if len(pairs) == 0 {
			continue
		}
		views = append(views, &model.UserPreferencesView{
			UserID:      user.Id,
			Name:        user.Name,
			Preferences: pairs,
		})
	}
	return views, nil
}

// ReplacePreferences swaps a user's whole preference set for the resolved
// categoryNames. The delete and the inserts run in one transaction: if
// anything fails mid-way the prior set survives untouched. Any name that
// resolves to no category rejects the whole batch, enumerating every
// unmatched name.
func ReplacePreferences(db *gorm.DB, userId string, categoryNames []string) ([]model.PreferenceView, error) {
	if !IsValidUserId(userId) {
		return nil, NewInvalidArgument("malformed user id", userId)
	}

	var user model.User
	result := db.First(&user, "id = ?", userId)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, errors.Wrapf(ErrNotFound, "user %s", userId)
	}
	if result.Error != nil {
		return nil, result.Error
	}

	names := normalizeNames(categoryNames)
	categories, unmatched, err := resolveCategories(db, names)
	if err != nil {
		return nil, err
	}
	if len(unmatched) > 0 {
		return nil, NewInvalidArgument("unknown categories", unmatched...)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userId).
			Delete(&model.UserPreference{}).Error; err != nil {
			return err
		}
		if len(categories) == 0 {
			return nil
		}
		now := time.Now()
		rows := make([]model.UserPreference, 0, len(categories))
		for _, category := range categories {
			rows = append(rows, model.UserPreference{
				UserID:     userId,
				CategoryID: category.Id,
				CreatedAt:  now,
			})
		}
		if err := tx.Create(&rows).Error; err != nil {
			// A concurrent replace for the same user can race us into the
			// composite key. Last writer wins; surface the loser as a
			// conflict instead of a raw store error.
			if isUniqueViolation(err) {
				return errors.Wrapf(ErrConflict, "preferences for user %s", userId)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	Log.Info("replaced preferences for user ", userId, ", now holding ", len(categories), " categories")
	return preferencesForUser(db, userId)
}

// DeletePreference removes exactly one (user, category) association. The
// category selector may be a numeric category id or a category name. A
// missing association is a negative result, not an error.
func DeletePreference(db *gorm.DB, userId string, categorySelector string) (bool, error) {
	if !IsValidUserId(userId) {
		return false, NewInvalidArgument("malformed user id", userId)
	}
	category, err := findCategoryBySelector(db, categorySelector)
	if err != nil {
		return false, err
	}
	if category == nil {
		return false, nil
	}
	result := db.Where("user_id = ? AND category_id = ?", userId, category.Id).
		Delete(&model.UserPreference{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// PreferenceStats counts distinct preferring users per category. Categories
// nobody prefers are absent from the result (inner join).
func PreferenceStats(db *gorm.DB) ([]model.CategoryStatsView, error) {
	stats := []model.CategoryStatsView{}
	err := db.Model(&model.UserPreference{}).
		Select("categories.id AS category_id, categories.name AS category, COUNT(DISTINCT user_preferences.user_id) AS user_count").
		Joins("JOIN categories ON categories.id = user_preferences.category_id").
		Group("categories.id, categories.name").
		Scan(&stats).Error
	return stats, err
}

// preferencesForUser reads the user's (category id, name) pairs ordered by
// the time each preference row was inserted.
func preferencesForUser(db *gorm.DB, userId string) ([]model.PreferenceView, error) {
	pairs := []model.PreferenceView{}
	err := db.Model(&model.UserPreference{}).
		Select("user_preferences.category_id, categories.name AS category").
		Joins("JOIN categories ON categories.id = user_preferences.category_id").
		Where("user_preferences.user_id = ?", userId).
		Order("user_preferences.created_at, user_preferences.category_id").
		Scan(&pairs).Error
	return pairs, err
}

// normalizeNames folds every supplied name to canonical form and drops
// blanks and duplicates, preserving first-seen order.
func normalizeNames(raw []string) []string {
	seen := map[string]bool{}
	names := []string{}
	for _, name := range raw {
		normalized := NormalizeCategoryName(name)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		names = append(names, normalized)
	}
	return names
}

// resolveCategories resolves normalized names against the store in one
// batch. Names without a matching category come back in unmatched so the
// caller can reject the request wholesale.
func resolveCategories(db *gorm.DB, names []string) ([]model.Category, []string, error) {
	if len(names) == 0 {
		return nil, nil, nil
	}
	var categories []model.Category
	if err := db.Where("name IN ?", names).Find(&categories).Error; err != nil {
		return nil, nil, err
	}
	found := map[string]bool{}
	for _, category := range categories {
		found[category.Name] = true
	}
	var unmatched []string
	for _, name := range names {
		if !found[name] {
			unmatched = append(unmatched, name)
		}
	}
	return categories, unmatched, nil
}

// findCategoryBySelector looks a category up by numeric id when the selector
// parses as an integer, otherwise by normalized name. A missing category is
// (nil, nil).
func findCategoryBySelector(db *gorm.DB, selector string) (*model.Category, error) {
	var category model.Category
	var result *gorm.DB
	if id, err := strconv.Atoi(selector); err == nil {
		result = db.First(&category, "id = ?", id)
	} else {
		result = db.First(&category, "name = ?", NormalizeCategoryName(selector))
	}
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &category, nil
}

package utils

import (
	"testing"

	"github.com/newshubio/newshub/model"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Canonical reference categories used across tests. Mirrors the seed
// dataset.
var TestCategories = []model.Category{
	{Name: "RELIGION", Description: "Faith and religion"},
	{Name: "SPORTS", Description: "Sports coverage"},
	{Name: "TECH", Description: "Technology news"},
	{Name: "TRAVEL", Description: "Travel and tourism"},
}

// TestSeedCategories inserts the canonical categories into db, does sanity
// checks and returns them keyed by name.
func TestSeedCategories(t *testing.T, db *gorm.DB) map[string]model.Category {
	t.Helper()
	categories := make([]model.Category, len(TestCategories))
	copy(categories, TestCategories)
	require.NoError(t, db.Create(&categories).Error)

	byName := map[string]model.Category{}
	for _, category := range categories {
		require.NotZero(t, category.Id)
		byName[category.Name] = category
	}
	return byName
}

// TestCreateUser inserts a user with a fixed id directly into db, does
// sanity checks and returns it.
func TestCreateUser(t *testing.T, db *gorm.DB, id string, name string, email string) *model.User {
	t.Helper()
	user := model.User{Id: id, Name: name, Email: email}
	require.NoError(t, db.Create(&user).Error)
	require.NotEmpty(t, user.CreatedAt)
	return &user
}

// TestCreateArticle inserts an article under the given category directly
// into db and returns it.
func TestCreateArticle(t *testing.T, db *gorm.DB, title string, category model.Category) *model.Article {
	t.Helper()
	article := model.Article{
		Title:      title,
		Content:    "content of " + title,
		CategoryID: category.Id,
	}
	require.NoError(t, db.Create(&article).Error)
	require.NotZero(t, article.Id)
	return &article
}

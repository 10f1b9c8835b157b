package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestNewUserViewHidesPasswordHash(t *testing.T) {
	user := &User{
		Id:           "42-0000001",
		Name:         "alice",
		Email:        "alice@example.com",
		PasswordHash: "secret",
	}
	raw, err := json.Marshal(NewUserView(user))
	assert.NoError(t, err)
	assert.Contains(t, string(raw), `"user_id":"42-0000001"`)
	assert.NotContains(t, string(raw), "secret")
}

func TestNewArticleView(t *testing.T) {
	article := &Article{
		Id:          7,
		Title:       "chip launch",
		Authors:     datatypes.JSON(`["Priya Nair"]`),
		PublishedAt: time.Date(2023, 10, 5, 12, 0, 0, 0, time.UTC),
		CategoryID:  3,
		Category:    Category{Id: 3, Name: "TECH"},
	}
	view := NewArticleView(article)
	assert.Equal(t, int64(7), view.Id)
	assert.Equal(t, "TECH", view.Category)
	assert.Equal(t, "2023-10-05", view.Date)
	assert.JSONEq(t, `["Priya Nair"]`, string(view.Authors))

	// Articles without a published date serialize an empty date instead of
	// the zero time.
	view = NewArticleView(&Article{Title: "undated"})
	assert.Empty(t, view.Date)
}

func TestNewCategoryView(t *testing.T) {
	view := NewCategoryView(&Category{Id: 2, Name: "SPORTS", Description: "Sports coverage"})
	raw, err := json.Marshal(view)
	assert.NoError(t, err)
	assert.Contains(t, string(raw), `"category_id":2`)
	assert.Contains(t, string(raw), `"category":"SPORTS"`)
}

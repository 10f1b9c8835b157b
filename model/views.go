package model

import (
	"encoding/json"

	"github.com/jinzhu/copier"
)

// Views are the explicit wire representations of each entity. Handlers only
// ever serialize views, never the GORM entities themselves, so the response
// field set stays stable even when the schema gains columns.

type UserView struct {
	Id    string `json:"user_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func NewUserView(u *User) *UserView {
	v := &UserView{}
	copier.Copy(v, u)
	return v
}

type CategoryView struct {
	Id          int32  `json:"category_id"`
	Name        string `json:"category"`
	Description string `json:"description"`
}

func NewCategoryView(c *Category) *CategoryView {
	v := &CategoryView{}
	copier.Copy(v, c)
	return v
}

type ArticleView struct {
	Id         int64           `json:"article_id"`
	Title      string          `json:"title"`
	Content    string          `json:"content"`
	Url        string          `json:"url"`
	Source     string          `json:"source"`
	Authors    json.RawMessage `json:"authors"`
	Date       string          `json:"date"`
	CategoryID int32           `json:"category_id"`
	Category   string          `json:"category"`
}

func NewArticleView(a *Article) *ArticleView {
	v := &ArticleView{}
	copier.Copy(v, a)
	v.Authors = json.RawMessage(a.Authors)
	v.Category = a.Category.Name
	if !a.PublishedAt.IsZero() {
		v.Date = a.PublishedAt.Format("2006-01-02")
	}
	return v
}

// PreferenceView is one (category id, category name) pair held by a user.
type PreferenceView struct {
	CategoryID int32  `json:"category_id"`
	Category   string `json:"category"`
}

// UserPreferencesView is the per-user grouping returned by the consolidated
// preference listing: the user plus the insertion-ordered categories it holds.
type UserPreferencesView struct {
	UserID      string           `json:"user_id"`
	Name        string           `json:"name"`
	Preferences []PreferenceView `json:"preferences"`
}

// CategoryStatsView is one row of the preference aggregate: a category and
// the number of distinct users preferring it.
type CategoryStatsView struct {
	CategoryID int32  `json:"category_id"`
	Category   string `json:"category"`
	UserCount  int64  `json:"user_count"`
}

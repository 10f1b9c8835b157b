package repository

import (
	"testing"

	"github.com/newshubio/newshub/model"
	"github.com/newshubio/newshub/utils"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestListArticles(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	byName := utils.TestSeedCategories(t, db)
	utils.TestCreateArticle(t, db, "chip launch", byName["TECH"])
	utils.TestCreateArticle(t, db, "cup final", byName["SPORTS"])
	utils.TestCreateArticle(t, db, "island ferries", byName["TRAVEL"])

	articles, err := ListArticles(db, ArticleFilter{})
	require.NoError(t, err)
	require.Len(t, articles, 3)
	// Category comes preloaded for serialization.
	require.NotEmpty(t, articles[0].Category.Name)

	// Case-insensitive substring match on the category name.
	articles, err = ListArticles(db, ArticleFilter{CategoryName: "tech"})
	require.NoError(t, err)
	require.Len(t, articles, 1)
	require.Equal(t, "chip launch", articles[0].Title)

	articles, err = ListArticles(db, ArticleFilter{CategoryName: "e"})
	require.NoError(t, err)
	require.Len(t, articles, 2)

	articles, err = ListArticles(db, ArticleFilter{Limit: 1})
	require.NoError(t, err)
	require.Len(t, articles, 1)

	articles, err = ListArticles(db, ArticleFilter{CategoryName: "nope"})
	require.NoError(t, err)
	require.Empty(t, articles)
}

func TestGetArticle(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	byName := utils.TestSeedCategories(t, db)
	created := utils.TestCreateArticle(t, db, "chip launch", byName["TECH"])

	article, err := GetArticle(db, created.Id)
	require.NoError(t, err)
	require.Equal(t, "chip launch", article.Title)
	require.Equal(t, "TECH", article.Category.Name)

	_, err = GetArticle(db, created.Id+1000)
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestCreateArticleResolvesCategory(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	utils.TestSeedCategories(t, db)

	article := model.Article{Title: "pilgrimage season opens", Content: "..."}
	require.NoError(t, CreateArticle(db, &article, "religion"))
	require.NotZero(t, article.Id)
	require.Equal(t, "RELIGION", article.Category.Name)

	err := CreateArticle(db, &model.Article{Title: "x"}, "NOPE")
	require.True(t, IsInvalidArgument(err))
}

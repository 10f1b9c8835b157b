package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/newshubio/newshub/model"
	"github.com/newshubio/newshub/repository"
)

// ListArticles serves GET /articles?limit.
func (s *ApiServer) ListArticles(c *gin.Context) {
	limit, err := s.parseLimit(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	articles, err := repository.ListArticles(s.DB, repository.ArticleFilter{Limit: limit})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, articleViews(articles))
}

// ListArticlesByCategoryName serves GET /articles/by-category-name?category&limit.
func (s *ApiServer) ListArticlesByCategoryName(c *gin.Context) {
	limit, err := s.parseLimit(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	articles, err := repository.ListArticles(s.DB, repository.ArticleFilter{
		Limit:        limit,
		CategoryName: c.Query("category"),
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, articleViews(articles))
}

// GetArticle serves GET /articles/by-id/:id.
func (s *ApiServer) GetArticle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed article id"})
		return
	}
	article, err := repository.GetArticle(s.DB, id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewArticleView(article))
}

func articleViews(articles []*model.Article) []*model.ArticleView {
	views := make([]*model.ArticleView, 0, len(articles))
	for _, article := range articles {
		views = append(views, model.NewArticleView(article))
	}
	return views
}

package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/newshubio/newshub/repository"
	"github.com/newshubio/newshub/utils"
	. "github.com/newshubio/newshub/utils/log"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ApiServer binds the HTTP surface to repository operations. Handlers share
// one *gorm.DB handle; every mutating operation opens its own transaction
// inside the repository, so there is no cross-request state here.
type ApiServer struct {
	DB *gorm.DB
	// MaxListLimit caps the limit any list endpoint will honor. Zero means
	// no cap.
	MaxListLimit int
}

func NewApiServer(db *gorm.DB) *ApiServer {
	return &ApiServer{DB: db}
}

// RegisterRoutes attaches every API route to router. Middlewares are the
// caller's concern so tests can register against a bare engine.
func (s *ApiServer) RegisterRoutes(router *gin.Engine) {
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	router.GET("/users", s.ListUsers)
	router.POST("/users", s.CreateUser)
	router.PUT("/users/:id", s.UpdateUser)
	router.DELETE("/users/:id", s.DeleteUser)

	router.GET("/categories", s.ListCategories)

	router.GET("/articles", s.ListArticles)
	router.GET("/articles/by-category-name", s.ListArticlesByCategoryName)
	router.GET("/articles/by-id/:id", s.GetArticle)

	router.GET("/user_preferences", s.ListPreferences)
	router.GET("/user_preferences/stats", s.PreferenceStats)
	router.PUT("/user_preferences/:id", s.ReplacePreferences)
	router.DELETE("/user_preferences/:id/:category", s.DeletePreference)
}

// abortWithError maps a repository failure to its HTTP status. Anything
// outside the typed taxonomy is an internal error: logged in full, returned
// as a generic message so raw store errors never reach the caller.
func abortWithError(c *gin.Context, err error) {
	var invalid *repository.InvalidArgumentError
	switch {
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Error()})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, repository.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "conflict"})
	default:
		Log.Error("internal error: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// parseLimit reads the optional limit query param. Absent means 0, which
// lets the repository apply its own default. Values above MaxListLimit are
// clamped, not rejected.
func (s *ApiServer) parseLimit(c *gin.Context) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, repository.NewInvalidArgument("malformed limit", raw)
	}
	if s.MaxListLimit > 0 {
		limit = utils.Min(limit, s.MaxListLimit)
	}
	return limit, nil
}

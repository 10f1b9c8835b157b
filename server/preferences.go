package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/newshubio/newshub/repository"
)

type replacePreferencesRequest struct {
	Categories []string `json:"categories"`
}

// ListPreferences serves GET /user_preferences?limit&name: the consolidated
// per-user view of held preferences. Users without preferences are omitted.
func (s *ApiServer) ListPreferences(c *gin.Context) {
	limit, err := s.parseLimit(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	views, err := repository.ListPreferences(s.DB, repository.PreferenceFilter{
		Limit:        limit,
		NameContains: c.Query("name"),
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total_users": len(views),
		"users":       views,
	})
}

// ReplacePreferences serves PUT /user_preferences/:id, overwriting the
// user's whole preference set with the supplied category names.
func (s *ApiServer) ReplacePreferences(c *gin.Context) {
	var req replacePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return
	}
	pairs, err := repository.ReplacePreferences(s.DB, c.Param("id"), req.Categories)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user_id":     c.Param("id"),
		"preferences": pairs,
	})
}

// DeletePreference serves DELETE /user_preferences/:id/:category. The
// category segment may be a numeric id or a name.
func (s *ApiServer) DeletePreference(c *gin.Context) {
	found, err := repository.DeletePreference(s.DB, c.Param("id"), c.Param("category"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user_id":  c.Param("id"),
		"category": c.Param("category"),
	})
}

// PreferenceStats serves GET /user_preferences/stats: per-category distinct
// user counts, categories without preferring users omitted.
func (s *ApiServer) PreferenceStats(c *gin.Context) {
	stats, err := repository.PreferenceStats(s.DB)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

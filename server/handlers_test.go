package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"regexp"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/newshubio/newshub/utils"
	"github.com/newshubio/newshub/utils/dotenv"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	dotenv.LoadDotEnvsInTests()
	os.Exit(m.Run())
}

func prepareTestServer(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	db, _ := utils.CreateTempDB(t)
	router := gin.New()
	NewApiServer(db).RegisterRoutes(router)
	return db, router
}

func doRequest(router *gin.Engine, method string, path string, body interface{}) *httptest.ResponseRecorder {
	raw := []byte{}
	if body != nil {
		raw, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPing(t *testing.T) {
	_, router := prepareTestServer(t)
	w := doRequest(router, http.MethodGet, "/ping", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestUserEndpoints(t *testing.T) {
	_, router := prepareTestServer(t)

	// Missing fields are rejected before touching the store.
	w := doRequest(router, http.MethodPost, "/users", gin.H{"name": "alice"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodPost, "/users", gin.H{"name": "alice", "email": "alice@example.com"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		UserID string `json:"user_id"`
		Name   string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Regexp(t, regexp.MustCompile(`^\d{2}-\d{7}$`), created.UserID)
	require.Equal(t, "alice", created.Name)

	// Duplicate email is a conflict.
	w = doRequest(router, http.MethodPost, "/users", gin.H{"name": "alice2", "email": "alice@example.com"})
	require.Equal(t, http.StatusConflict, w.Code)

	// Rename round trip.
	w = doRequest(router, http.MethodPut, "/users/"+created.UserID, gin.H{"name": "alicia"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodPut, "/users/"+created.UserID, gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodPut, "/users/bogus", gin.H{"name": "x"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodPut, "/users/99-9999999", gin.H{"name": "x"})
	require.Equal(t, http.StatusNotFound, w.Code)

	// Listing with a prefix filter.
	w = doRequest(router, http.MethodGet, "/users?name=ali&starts_with=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []struct {
		UserID string `json:"user_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)

	w = doRequest(router, http.MethodGet, "/users?limit=abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Delete, then the user is gone.
	w = doRequest(router, http.MethodDelete, "/users/"+created.UserID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doRequest(router, http.MethodDelete, "/users/"+created.UserID, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	w = doRequest(router, http.MethodDelete, "/users/bogus", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPreferenceEndpoints(t *testing.T) {
	db, router := prepareTestServer(t)
	utils.TestSeedCategories(t, db)
	utils.TestCreateUser(t, db, "42-0000001", "alice", "alice@example.com")

	w := doRequest(router, http.MethodPut, "/user_preferences/42-0000001",
		gin.H{"categories": []string{"SPORTS", "tech"}})
	require.Equal(t, http.StatusOK, w.Code)
	var replaced struct {
		UserID      string `json:"user_id"`
		Preferences []struct {
			Category string `json:"category"`
		} `json:"preferences"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &replaced))
	require.Len(t, replaced.Preferences, 2)

	// Malformed id and unknown categories map to 400; the error body names
	// every unmatched category.
	w = doRequest(router, http.MethodPut, "/user_preferences/bogus",
		gin.H{"categories": []string{"SPORTS"}})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodPut, "/user_preferences/42-0000001",
		gin.H{"categories": []string{"NOPE", "ALSO_NOPE"}})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "NOPE")
	require.Contains(t, w.Body.String(), "ALSO_NOPE")

	// Unknown user is 404.
	w = doRequest(router, http.MethodPut, "/user_preferences/99-9999999",
		gin.H{"categories": []string{"SPORTS"}})
	require.Equal(t, http.StatusNotFound, w.Code)

	// Consolidated listing.
	w = doRequest(router, http.MethodGet, "/user_preferences", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var consolidated struct {
		TotalUsers int `json:"total_users"`
		Users      []struct {
			UserID string `json:"user_id"`
		} `json:"users"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &consolidated))
	require.Equal(t, 1, consolidated.TotalUsers)
	require.Equal(t, "42-0000001", consolidated.Users[0].UserID)

	// Single deletion: 200, then 404, 400 on malformed id.
	w = doRequest(router, http.MethodDelete, "/user_preferences/42-0000001/SPORTS", nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doRequest(router, http.MethodDelete, "/user_preferences/42-0000001/SPORTS", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	w = doRequest(router, http.MethodDelete, "/user_preferences/bogus/SPORTS", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Stats reflect the remaining TECH preference only.
	w = doRequest(router, http.MethodGet, "/user_preferences/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats []struct {
		Category  string `json:"category"`
		UserCount int64  `json:"user_count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	require.Len(t, stats, 1)
	require.Equal(t, "TECH", stats[0].Category)
	require.Equal(t, int64(1), stats[0].UserCount)
}

func TestArticleEndpoints(t *testing.T) {
	db, router := prepareTestServer(t)
	byName := utils.TestSeedCategories(t, db)
	article := utils.TestCreateArticle(t, db, "chip launch", byName["TECH"])
	utils.TestCreateArticle(t, db, "cup final", byName["SPORTS"])

	w := doRequest(router, http.MethodGet, "/articles", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []struct {
		Title    string `json:"title"`
		Category string `json:"category"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 2)
	require.NotEmpty(t, listed[0].Category)

	w = doRequest(router, http.MethodGet, "/articles/by-category-name?category=tech", nil)
	require.Equal(t, http.StatusOK, w.Code)
	listed = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	require.Equal(t, "chip launch", listed[0].Title)

	w = doRequest(router, http.MethodGet, fmt.Sprintf("/articles/by-id/%d", article.Id), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/articles/by-id/999999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, http.MethodGet, "/articles/by-id/abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCategoriesEndpoint(t *testing.T) {
	db, router := prepareTestServer(t)
	utils.TestSeedCategories(t, db)

	w := doRequest(router, http.MethodGet, "/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []struct {
		Category string `json:"category"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 4)
}

func TestMaxListLimitClamp(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	utils.TestCreateUser(t, db, "10-0000001", "a", "a@example.com")
	utils.TestCreateUser(t, db, "10-0000002", "b", "b@example.com")
	utils.TestCreateUser(t, db, "10-0000003", "c", "c@example.com")

	router := gin.New()
	apiServer := NewApiServer(db)
	apiServer.MaxListLimit = 2
	apiServer.RegisterRoutes(router)

	w := doRequest(router, http.MethodGet, "/users?limit=100", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []struct {
		UserID string `json:"user_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 2)
}

package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/newshubio/newshub/model"
	"github.com/newshubio/newshub/repository"
)

type createUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type renameUserRequest struct {
	Name string `json:"name"`
}

// ListUsers serves GET /users?limit&name&starts_with. starts_with selects
// prefix match; an absent or unparsable value falls back to the default
// substring match.
func (s *ApiServer) ListUsers(c *gin.Context) {
	limit, err := s.parseLimit(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	startsWith, _ := strconv.ParseBool(c.Query("starts_with"))
	users, err := repository.ListUsers(s.DB, repository.UserFilter{
		Limit:      limit,
		Name:       c.Query("name"),
		StartsWith: startsWith,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	views := make([]*model.UserView, 0, len(users))
	for _, user := range users {
		views = append(views, model.NewUserView(user))
	}
	c.JSON(http.StatusOK, views)
}

// CreateUser serves POST /users.
func (s *ApiServer) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return
	}
	if req.Name == "" || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and email are required"})
		return
	}
	user, err := repository.CreateUser(s.DB, req.Name, req.Email)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.NewUserView(user))
}

// UpdateUser serves PUT /users/:id, renaming the user.
func (s *ApiServer) UpdateUser(c *gin.Context) {
	var req renameUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	user, err := repository.UpdateUserName(s.DB, c.Param("id"), req.Name)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewUserView(user))
}

// DeleteUser serves DELETE /users/:id. Deleting a user also removes all of
// its preference rows.
func (s *ApiServer) DeleteUser(c *gin.Context) {
	found, err := repository.DeleteUser(s.DB, c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

// ListCategories serves GET /categories?limit.
func (s *ApiServer) ListCategories(c *gin.Context) {
	limit, err := s.parseLimit(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	categories, err := repository.ListCategories(s.DB, limit)
	if err != nil {
		abortWithError(c, err)
		return
	}
	views := make([]*model.CategoryView, 0, len(categories))
	for _, category := range categories {
		views = append(views, model.NewCategoryView(category))
	}
	c.JSON(http.StatusOK, views)
}

package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tuanngo/portfolio-api/internal/models"
)

// ListProjects returns projects, newest first. Filterable by owner
// (e.g. /api/projects?userId=...).
func (h *Handler) ListProjects(c *gin.Context) {
	filter := bson.M{}
	if userIDStr := c.Query("userId"); userIDStr != "" {
		userID, err := primitive.ObjectIDFromHex(userIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid userId format"})
			return
		}
		filter["userId"] = userID
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := h.DB.Collection("projects").Find(c.Request.Context(), filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}
	defer cursor.Close(c.Request.Context())

	var projects []models.Project
	if err := cursor.All(c.Request.Context(), &projects); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode projects"})
		return
	}
	if projects == nil {
		projects = make([]models.Project, 0)
	}
	c.JSON(http.StatusOK, projects)
}

// GetProject returns one project with its owner populated for display.
func (h *Handler) GetProject(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	var project models.Project
	err = h.DB.Collection("projects").FindOne(c.Request.Context(), bson.M{"_id": id}).Decode(&project)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	result := models.ProjectWithOwner{Project: project}

	// Populate the owner reference; a missing owner is not an error,
	// the project is still displayable.
	ownerOpts := options.FindOne().SetProjection(bson.M{"password": 0})
	var owner models.PublicUser
	if err := h.DB.Collection("users").FindOne(c.Request.Context(), bson.M{"_id": project.UserID}, ownerOpts).Decode(&owner); err == nil {
		result.Owner = &owner
	}

	c.JSON(http.StatusOK, result)
}

type ProjectRequest struct {
	UserID       string   `json:"userId" binding:"required"`
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	RepoURL      string   `json:"repoUrl"`
	DemoURL      string   `json:"demoUrl"`
	Image        string   `json:"image"`
}

// CreateProject adds a project. Admin only.
func (h *Handler) CreateProject(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid userId format"})
		return
	}

	now := time.Now()
	project := models.Project{
		ID:           primitive.NewObjectID(),
		UserID:       userID,
		Name:         req.Name,
		Description:  req.Description,
		Technologies: req.Technologies,
		RepoURL:      req.RepoURL,
		DemoURL:      req.DemoURL,
		Image:        req.Image,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := h.DB.Collection("projects").InsertOne(c.Request.Context(), project); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}
	c.JSON(http.StatusCreated, project)
}

// UpdateProject replaces the provided fields. Admin only. No optimistic
// concurrency check; last write wins.
func (h *Handler) UpdateProject(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	var req struct {
		Name         string   `json:"name"`
		Description  string   `json:"description"`
		Technologies []string `json:"technologies"`
		RepoURL      string   `json:"repoUrl"`
		DemoURL      string   `json:"demoUrl"`
		Image        string   `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	set := bson.M{}
	if req.Name != "" {
		set["name"] = req.Name
	}
	if req.Description != "" {
		set["description"] = req.Description
	}
	if req.Technologies != nil {
		set["technologies"] = req.Technologies
	}
	if req.RepoURL != "" {
		set["repoUrl"] = req.RepoURL
	}
	if req.DemoURL != "" {
		set["demoUrl"] = req.DemoURL
	}
	if req.Image != "" {
		set["image"] = req.Image
	}
	if len(set) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No update fields provided"})
		return
	}
	set["updatedAt"] = time.Now()

	result, err := h.DB.Collection("projects").UpdateOne(c.Request.Context(), bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cập nhật thành công"})
}

// DeleteProject removes a project. Admin only.
func (h *Handler) DeleteProject(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	result, err := h.DB.Collection("projects").DeleteOne(c.Request.Context(), bson.M{"_id": id})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Xóa thành công"})
}

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

// ListEducation returns education entries, most recent first, filterable
// by owner.
func (h *Handler) ListEducation(c *gin.Context) {
	filter := bson.M{}
	if userIDStr := c.Query("userId"); userIDStr != "" {
		userID, err := primitive.ObjectIDFromHex(userIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid userId format"})
			return
		}
		filter["userId"] = userID
	}

	opts := options.Find().SetSort(bson.D{{Key: "startYear", Value: -1}})
	cursor, err := h.DB.Collection("education").Find(c.Request.Context(), filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve education entries"})
		return
	}
	defer cursor.Close(c.Request.Context())

	var entries []models.Education
	if err := cursor.All(c.Request.Context(), &entries); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode education entries"})
		return
	}
	if entries == nil {
		entries = make([]models.Education, 0)
	}
	c.JSON(http.StatusOK, entries)
}

type EducationRequest struct {
	UserID      string `json:"userId" binding:"required"`
	School      string `json:"school" binding:"required"`
	Degree      string `json:"degree"`
	Major       string `json:"major"`
	StartYear   int    `json:"startYear"`
	EndYear     int    `json:"endYear"`
	Description string `json:"description"`
}

// CreateEducation adds an education entry. Admin only.
func (h *Handler) CreateEducation(c *gin.Context) {
	var req EducationRequest
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
	entry := models.Education{
		ID:          primitive.NewObjectID(),
		UserID:      userID,
		School:      req.School,
		Degree:      req.Degree,
		Major:       req.Major,
		StartYear:   req.StartYear,
		EndYear:     req.EndYear,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := h.DB.Collection("education").InsertOne(c.Request.Context(), entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create education entry"})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// UpdateEducation replaces the provided fields. Admin only.
func (h *Handler) UpdateEducation(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid education ID format"})
		return
	}

	var req struct {
		School      string `json:"school"`
		Degree      string `json:"degree"`
		Major       string `json:"major"`
		StartYear   int    `json:"startYear"`
		EndYear     int    `json:"endYear"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	set := bson.M{}
	if req.School != "" {
		set["school"] = req.School
	}
	if req.Degree != "" {
		set["degree"] = req.Degree
	}
	if req.Major != "" {
		set["major"] = req.Major
	}
	if req.StartYear != 0 {
		set["startYear"] = req.StartYear
	}
	if req.EndYear != 0 {
		set["endYear"] = req.EndYear
	}
	if req.Description != "" {
		set["description"] = req.Description
	}
	if len(set) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No update fields provided"})
		return
	}
	set["updatedAt"] = time.Now()

	result, err := h.DB.Collection("education").UpdateOne(c.Request.Context(), bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update education entry"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Education entry not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cập nhật thành công"})
}

// DeleteEducation removes an education entry. Admin only.
func (h *Handler) DeleteEducation(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid education ID format"})
		return
	}

	result, err := h.DB.Collection("education").DeleteOne(c.Request.Context(), bson.M{"_id": id})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete education entry"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Education entry not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Xóa thành công"})
}

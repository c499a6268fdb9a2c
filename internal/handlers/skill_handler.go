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

// ListSkills returns skills grouped by category order, filterable by owner.
func (h *Handler) ListSkills(c *gin.Context) {
	filter := bson.M{}
	if userIDStr := c.Query("userId"); userIDStr != "" {
		userID, err := primitive.ObjectIDFromHex(userIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid userId format"})
			return
		}
		filter["userId"] = userID
	}
	if category := c.Query("category"); category != "" {
		filter["category"] = category
	}

	opts := options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}})
	cursor, err := h.DB.Collection("skills").Find(c.Request.Context(), filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve skills"})
		return
	}
	defer cursor.Close(c.Request.Context())

	var skills []models.Skill
	if err := cursor.All(c.Request.Context(), &skills); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode skills"})
		return
	}
	if skills == nil {
		skills = make([]models.Skill, 0)
	}
	c.JSON(http.StatusOK, skills)
}

type SkillRequest struct {
	UserID   string `json:"userId" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Level    string `json:"level"`
	Category string `json:"category"`
}

// CreateSkill adds a skill. Admin only.
func (h *Handler) CreateSkill(c *gin.Context) {
	var req SkillRequest
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
	skill := models.Skill{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Name:      req.Name,
		Level:     req.Level,
		Category:  req.Category,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := h.DB.Collection("skills").InsertOne(c.Request.Context(), skill); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create skill"})
		return
	}
	c.JSON(http.StatusCreated, skill)
}

// UpdateSkill replaces the provided fields. Admin only.
func (h *Handler) UpdateSkill(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid skill ID format"})
		return
	}

	var req struct {
		Name     string `json:"name"`
		Level    string `json:"level"`
		Category string `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	set := bson.M{}
	if req.Name != "" {
		set["name"] = req.Name
	}
	if req.Level != "" {
		set["level"] = req.Level
	}
	if req.Category != "" {
		set["category"] = req.Category
	}
	if len(set) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No update fields provided"})
		return
	}
	set["updatedAt"] = time.Now()

	result, err := h.DB.Collection("skills").UpdateOne(c.Request.Context(), bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update skill"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Skill not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cập nhật thành công"})
}

// DeleteSkill removes a skill. Admin only.
func (h *Handler) DeleteSkill(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid skill ID format"})
		return
	}

	result, err := h.DB.Collection("skills").DeleteOne(c.Request.Context(), bson.M{"_id": id})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete skill"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Skill not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Xóa thành công"})
}

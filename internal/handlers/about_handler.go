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

// GetAbout returns the about section for one user.
func (h *Handler) GetAbout(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid userId format"})
		return
	}

	var about models.About
	err = h.DB.Collection("about").FindOne(c.Request.Context(), bson.M{"userId": userID}).Decode(&about)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "About section not found"})
		return
	}
	c.JSON(http.StatusOK, about)
}

type AboutRequest struct {
	UserID    string   `json:"userId" binding:"required"`
	Headline  string   `json:"headline"`
	Bio       string   `json:"bio" binding:"required"`
	Interests []string `json:"interests"`
}

// UpsertAbout creates or replaces a user's about section. Admin only.
// One about document per user, keyed by the owner reference.
func (h *Handler) UpsertAbout(c *gin.Context) {
	var req AboutRequest
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
	update := bson.M{
		"$set": bson.M{
			"headline":  req.Headline,
			"bio":       req.Bio,
			"interests": req.Interests,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{
			"userId":    userID,
			"createdAt": now,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := h.DB.Collection("about").UpdateOne(c.Request.Context(), bson.M{"userId": userID}, update, opts); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save about section"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cập nhật thành công"})
}

// DeleteAbout removes a user's about section. Admin only.
func (h *Handler) DeleteAbout(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid userId format"})
		return
	}

	result, err := h.DB.Collection("about").DeleteOne(c.Request.Context(), bson.M{"userId": userID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete about section"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "About section not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Xóa thành công"})
}

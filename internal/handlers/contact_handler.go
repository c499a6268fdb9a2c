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

type ContactRequest struct {
	UserID      string `json:"userId" binding:"required"`
	SenderName  string `json:"senderName" binding:"required"`
	SenderEmail string `json:"senderEmail" binding:"required,email"`
	Subject     string `json:"subject"`
	Message     string `json:"message" binding:"required"`
}

// CreateContact stores a message from the public contact form. Open to
// anyone; messages are read through the admin routes.
func (h *Handler) CreateContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid userId format"})
		return
	}

	contact := models.Contact{
		ID:          primitive.NewObjectID(),
		UserID:      userID,
		SenderName:  req.SenderName,
		SenderEmail: req.SenderEmail,
		Subject:     req.Subject,
		Message:     req.Message,
		Read:        false,
		CreatedAt:   time.Now(),
	}

	if _, err := h.DB.Collection("contacts").InsertOne(c.Request.Context(), contact); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Gửi liên hệ thành công"})
}

// ListContacts returns received messages, newest first. Admin only.
// Supports ?unread=true to show only unread messages.
func (h *Handler) ListContacts(c *gin.Context) {
	filter := bson.M{}
	if c.Query("unread") == "true" {
		filter["read"] = false
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := h.DB.Collection("contacts").Find(c.Request.Context(), filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve messages"})
		return
	}
	defer cursor.Close(c.Request.Context())

	var contacts []models.Contact
	if err := cursor.All(c.Request.Context(), &contacts); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode messages"})
		return
	}
	if contacts == nil {
		contacts = make([]models.Contact, 0)
	}
	c.JSON(http.StatusOK, contacts)
}

// MarkContactRead flags a message as read. Admin only.
func (h *Handler) MarkContactRead(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact ID format"})
		return
	}

	result, err := h.DB.Collection("contacts").UpdateOne(c.Request.Context(),
		bson.M{"_id": id}, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update message"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Đã đánh dấu đã đọc"})
}

// DeleteContact removes a message. Admin only.
func (h *Handler) DeleteContact(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact ID format"})
		return
	}

	result, err := h.DB.Collection("contacts").DeleteOne(c.Request.Context(), bson.M{"_id": id})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete message"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Xóa thành công"})
}

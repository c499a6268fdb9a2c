package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact is a message sent through the public contact form,
// addressed to the portfolio owner.
type Contact struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"` // recipient
	SenderName  string             `bson:"senderName" json:"senderName"`
	SenderEmail string             `bson:"senderEmail" json:"senderEmail"`
	Subject     string             `bson:"subject,omitempty" json:"subject,omitempty"`
	Message     string             `bson:"message" json:"message"`
	Read        bool               `bson:"read" json:"read"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

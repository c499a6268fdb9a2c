package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName       string             `bson:"fullName" json:"fullName"`
	Birthday       string             `bson:"birthday,omitempty" json:"birthday,omitempty"`
	Email          string             `bson:"email" json:"email"`
	Phone          string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Password       string             `bson:"password" json:"-"` // Hide from JSON responses
	Address        string             `bson:"address,omitempty" json:"address,omitempty"`
	Specialization string             `bson:"specialization,omitempty" json:"specialization,omitempty"`
	Avatar         string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Role           string             `bson:"role" json:"role"` // "admin" or "user"
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PublicUser is the password-free projection embedded in other responses.
type PublicUser struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName       string             `bson:"fullName" json:"fullName"`
	Email          string             `bson:"email" json:"email"`
	Specialization string             `bson:"specialization,omitempty" json:"specialization,omitempty"`
	Avatar         string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Role           string             `bson:"role" json:"role"`
}

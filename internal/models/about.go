package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type About struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Headline  string             `bson:"headline,omitempty" json:"headline,omitempty"`
	Bio       string             `bson:"bio" json:"bio"`
	Interests []string           `bson:"interests,omitempty" json:"interests,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Education struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	School      string             `bson:"school" json:"school"`
	Degree      string             `bson:"degree,omitempty" json:"degree,omitempty"`
	Major       string             `bson:"major,omitempty" json:"major,omitempty"`
	StartYear   int                `bson:"startYear,omitempty" json:"startYear,omitempty"`
	EndYear     int                `bson:"endYear,omitempty" json:"endYear,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

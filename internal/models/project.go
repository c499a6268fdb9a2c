package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Project struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID `bson:"userId" json:"userId"`
	Name         string             `bson:"name" json:"name"`
	Description  string             `bson:"description" json:"description"`
	Technologies []string           `bson:"technologies" json:"technologies"`
	RepoURL      string             `bson:"repoUrl,omitempty" json:"repoUrl,omitempty"`
	DemoURL      string             `bson:"demoUrl,omitempty" json:"demoUrl,omitempty"`
	Image        string             `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ProjectWithOwner is a project joined with its owner for display.
type ProjectWithOwner struct {
	Project `bson:",inline"`
	Owner   *PublicUser `bson:"owner,omitempty" json:"owner,omitempty"`
}

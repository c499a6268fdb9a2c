package handlers

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tuanngo/portfolio-api/internal/auth"
	"github.com/tuanngo/portfolio-api/internal/models"
)

// UserStore is the slice of the user collection the auth handlers need.
// The mongo-backed implementation lives in internal/store.
type UserStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) error
}

// Handler carries the shared dependencies for all routes: the database
// handle, the user store, and the token codec. Built once in main.
type Handler struct {
	DB       *mongo.Database
	Users    UserStore
	Codec    *auth.TokenCodec
	TokenTTL time.Duration
}

func NewHandler(db *mongo.Database, users UserStore, codec *auth.TokenCodec, tokenTTL time.Duration) *Handler {
	return &Handler{
		DB:       db,
		Users:    users,
		Codec:    codec,
		TokenTTL: tokenTTL,
	}
}

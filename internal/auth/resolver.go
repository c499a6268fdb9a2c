package auth

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tuanngo/portfolio-api/internal/models"
	"github.com/tuanngo/portfolio-api/internal/store"
)

// ErrSubjectNotFound means the token verified but its subject no longer
// exists; a deleted account with a still-valid token is unauthenticated.
var ErrSubjectNotFound = errors.New("auth: token subject not found")

// Identity is who a request acts as, taken from the live user record at
// resolution time. The role here is fresh even when the token claim is stale.
type Identity struct {
	ID             primitive.ObjectID `json:"id"`
	FullName       string             `json:"fullName"`
	Email          string             `json:"email"`
	Role           string             `json:"role"`
	Avatar         string             `json:"avatar,omitempty"`
	Specialization string             `json:"specialization,omitempty"`
}

func (i *Identity) IsAdmin() bool { return i.Role == "admin" }

// UserFinder is the store lookup the resolver needs. The returned record
// must not carry the password field.
type UserFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// Resolver turns a raw token string into a full identity, confirming the
// subject still exists. One store round-trip per authenticated request.
type Resolver struct {
	codec *TokenCodec
	users UserFinder
}

func NewResolver(codec *TokenCodec, users UserFinder) *Resolver {
	return &Resolver{codec: codec, users: users}
}

// Resolve verifies the token and re-reads the subject. Token failures come
// back as ErrTokenExpired/ErrTokenInvalid, a missing subject as
// ErrSubjectNotFound; store errors propagate untouched.
func (r *Resolver) Resolve(ctx context.Context, tokenStr string) (*Identity, error) {
	claims, err := r.codec.Verify(tokenStr)
	if err != nil {
		return nil, err
	}
	id, err := primitive.ObjectIDFromHex(claims.Subject)
	if err != nil {
		return nil, ErrTokenInvalid
	}
	user, err := r.users.FindByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrSubjectNotFound
	}
	if err != nil {
		return nil, err
	}
	return &Identity{
		ID:             user.ID,
		FullName:       user.FullName,
		Email:          user.Email,
		Role:           user.Role,
		Avatar:         user.Avatar,
		Specialization: user.Specialization,
	}, nil
}

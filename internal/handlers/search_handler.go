package handlers

import (
	"context"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"

	"github.com/tuanngo/portfolio-api/internal/models"
)

// SearchResult aggregates matches across all searchable collections.
// Slices are always present, never null.
type SearchResult struct {
	Projects  []models.Project    `json:"projects"`
	Skills    []models.Skill      `json:"skills"`
	Education []models.Education  `json:"education"`
	Users     []models.PublicUser `json:"users"`
}

// Search runs a case-insensitive substring match over projects, skills,
// education and users concurrently. The first store error fails the whole
// request.
func (h *Handler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'q' is required"})
		return
	}

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	result := SearchResult{
		Projects:  make([]models.Project, 0),
		Skills:    make([]models.Skill, 0),
		Education: make([]models.Education, 0),
		Users:     make([]models.PublicUser, 0),
	}

	g, ctx := errgroup.WithContext(c.Request.Context())

	g.Go(func() error {
		filter := bson.M{"$or": []bson.M{
			{"name": pattern},
			{"description": pattern},
		}}
		return h.findAll(ctx, "projects", filter, nil, &result.Projects)
	})
	g.Go(func() error {
		return h.findAll(ctx, "skills", bson.M{"name": pattern}, nil, &result.Skills)
	})
	g.Go(func() error {
		filter := bson.M{"$or": []bson.M{
			{"school": pattern},
			{"major": pattern},
		}}
		return h.findAll(ctx, "education", filter, nil, &result.Education)
	})
	g.Go(func() error {
		filter := bson.M{"$or": []bson.M{
			{"fullName": pattern},
			{"specialization": pattern},
		}}
		opts := options.Find().SetProjection(bson.M{"password": 0})
		return h.findAll(ctx, "users", filter, opts, &result.Users)
	})

	if err := g.Wait(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// findAll decodes every match into out, which must be a pointer to a slice.
func (h *Handler) findAll(ctx context.Context, collection string, filter bson.M, opts *options.FindOptions, out interface{}) error {
	cursor, err := h.DB.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, out)
}

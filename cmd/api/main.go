package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/tuanngo/portfolio-api/internal/auth"
	"github.com/tuanngo/portfolio-api/internal/config"
	"github.com/tuanngo/portfolio-api/internal/handlers"
	"github.com/tuanngo/portfolio-api/internal/middleware"
	"github.com/tuanngo/portfolio-api/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// --- Database Connection ---
	ctx := context.Background()
	client, err := store.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)
	db := client.Database(cfg.MongoDatabase)
	if err := store.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}
	log.Println("Successfully connected to MongoDB!")

	// --- Auth core ---
	users := store.NewUserStore(db)
	codec := auth.NewTokenCodec([]byte(cfg.JWTSecret), cfg.TokenTTL)
	resolver := auth.NewResolver(codec, users)

	h := handlers.NewHandler(db, users, codec, cfg.TokenTTL)

	// --- Gin Router ---
	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	// --- Routes ---
	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register", h.Register)
		authRoutes.POST("/login", h.Login)
		authRoutes.POST("/logout", h.Logout)
		authRoutes.GET("/me", middleware.RequireAuth(resolver), h.Me)
	}

	api := r.Group("/api")

	// Public reads, cacheable.
	public := api.Group("")
	public.Use(middleware.CacheControl(60))
	{
		public.GET("/users/:id", h.GetUser)
		public.GET("/projects", h.ListProjects)
		public.GET("/projects/:id", h.GetProject)
		public.GET("/skills", h.ListSkills)
		public.GET("/education", h.ListEducation)
		public.GET("/about/:userId", h.GetAbout)
		public.GET("/search", h.Search)
	}
	api.POST("/contact", h.CreateContact)

	// The profile owner may edit their own record; everything else
	// that mutates content is admin-gated.
	api.PUT("/users/:id", middleware.RequireOwnerOrAdmin(resolver, "id"), h.UpdateUser)

	admin := api.Group("")
	admin.Use(middleware.RequireAdmin(resolver))
	{
		admin.GET("/users", h.ListUsers)
		admin.POST("/users", h.CreateUser)
		admin.DELETE("/users/:id", h.DeleteUser)

		admin.POST("/projects", h.CreateProject)
		admin.PUT("/projects/:id", h.UpdateProject)
		admin.DELETE("/projects/:id", h.DeleteProject)

		admin.POST("/skills", h.CreateSkill)
		admin.PUT("/skills/:id", h.UpdateSkill)
		admin.DELETE("/skills/:id", h.DeleteSkill)

		admin.POST("/education", h.CreateEducation)
		admin.PUT("/education/:id", h.UpdateEducation)
		admin.DELETE("/education/:id", h.DeleteEducation)

		admin.PUT("/about", h.UpsertAbout)
		admin.DELETE("/about/:userId", h.DeleteAbout)

		admin.GET("/contact", h.ListContacts)
		admin.PATCH("/contact/:id/read", h.MarkContactRead)
		admin.DELETE("/contact/:id", h.DeleteContact)
	}

	log.Printf("Starting server on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

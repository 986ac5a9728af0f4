package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/blogvault/internal/models"
	"github.com/blogvault/internal/service"
)

// PostHandler handles post lifecycle endpoints
type PostHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(services *service.Services, log zerolog.Logger) *PostHandler {
	return &PostHandler{
		services: services,
		log:      log.With().Str("handler", "post").Logger(),
	}
}

// Create handles POST /v1/posts
func (h *PostHandler) Create(c *gin.Context) {
	var req struct {
		Title   string `json:"title"`
		Excerpt string `json:"excerpt"`
		Content string `json:"content"`
		Status  string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Status == "" {
		req.Status = models.StatusPublished
	}

	input := &models.PostInput{Title: req.Title, Excerpt: req.Excerpt, Content: req.Content}
	post, err := h.services.Post.Create(c.Request.Context(), input, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// List handles GET /v1/posts
func (h *PostHandler) List(c *gin.Context) {
	query := c.Query("q")
	status := c.Query("status")

	posts, err := h.services.Post.List(c.Request.Context(), query, status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts": posts,
		"count": len(posts),
	})
}

// Get handles GET /v1/posts/:id
func (h *PostHandler) Get(c *gin.Context) {
	post, err := h.services.Post.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// Update handles PUT /v1/posts/:id
func (h *PostHandler) Update(c *gin.Context) {
	var req models.PostInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	id := c.Param("id")
	if err := h.services.Post.Update(c.Request.Context(), id, &req); err != nil {
		respondError(c, err)
		return
	}

	post, err := h.services.Post.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// Archive handles POST /v1/posts/:id/archive
func (h *PostHandler) Archive(c *gin.Context) {
	if err := h.services.Post.Archive(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post archived"})
}

// ListArchived handles GET /v1/archived
func (h *PostHandler) ListArchived(c *gin.Context) {
	posts, err := h.services.Post.ListArchived(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"posts": posts,
		"count": len(posts),
	})
}

// Unarchive handles POST /v1/archived/:id/restore
func (h *PostHandler) Unarchive(c *gin.Context) {
	if err := h.services.Post.Unarchive(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post restored"})
}

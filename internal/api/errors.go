package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blogvault/internal/repository"
	"github.com/blogvault/internal/service"
	"github.com/blogvault/internal/validation"
)

// respondError maps service errors onto HTTP responses. Validation failures
// carry the per-field detail; everything else gets a flat message.
func respondError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "validation failed",
			"errors": verrs,
		})
		return
	}

	switch {
	case errors.Is(err, repository.ErrPostNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
	case errors.Is(err, service.ErrCommentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
	case errors.Is(err, service.ErrNoAccount),
		errors.Is(err, service.ErrEmailMismatch),
		errors.Is(err, service.ErrPasswordMismatch):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrAlreadyLiked):
		c.JSON(http.StatusConflict, gin.H{"error": "already liked"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

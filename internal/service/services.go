package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/blogvault/internal/config"
	"github.com/blogvault/internal/models"
	"github.com/blogvault/internal/repository"
)

// AuthService defines the interface for account and session operations
type AuthService interface {
	Register(ctx context.Context, username, email, password, confirmPassword string) error
	Login(ctx context.Context, email, password string) (*models.Session, string, error)
	CurrentSession(ctx context.Context) (*models.Session, error)
	Logout(ctx context.Context) error
	VerifyToken(token string) (string, error)
}

// PostService defines the interface for post lifecycle operations
type PostService interface {
	Create(ctx context.Context, input *models.PostInput, status string) (*models.Post, error)
	List(ctx context.Context, query, status string) ([]models.Post, error)
	Get(ctx context.Context, id string) (*models.Post, error)
	Update(ctx context.Context, id string, input *models.PostInput) error
	Archive(ctx context.Context, id string) error
	Unarchive(ctx context.Context, id string) error
	ListArchived(ctx context.Context) ([]models.Post, error)
	Stats(ctx context.Context) (*models.Stats, error)
}

// EngagementService defines the interface for like/comment/reply mutators
type EngagementService interface {
	LikePost(ctx context.Context, id string) (*models.Post, error)
	AddComment(ctx context.Context, id, text string) (*models.Post, error)
	LikeComment(ctx context.Context, id string, commentIndex int) (*models.Post, error)
	AddReply(ctx context.Context, id string, commentIndex int, text string) (*models.Post, error)
}

// Services holds all service interfaces
type Services struct {
	Auth       AuthService
	Post       PostService
	Engagement EngagementService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Auth:       newAuthService(repos.Account, &cfg.Auth, log),
		Post:       newPostService(repos, log),
		Engagement: newEngagementService(repos.Post, repos.Account, &cfg.Engagement, log),
	}
}

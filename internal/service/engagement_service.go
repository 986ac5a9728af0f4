package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/blogvault/internal/config"
	"github.com/blogvault/internal/models"
	"github.com/blogvault/internal/repository"
	"github.com/blogvault/internal/validation"
)

// ErrCommentNotFound is returned when a comment index falls outside the
// post's comment list.
var ErrCommentNotFound = errors.New("comment not found")

// ErrAlreadyLiked is returned under the "once" like policy when the current
// viewer has liked the target before.
var ErrAlreadyLiked = errors.New("already liked")

// engagementService is the concrete implementation of EngagementService
type engagementService struct {
	posts    repository.PostRepository
	accounts repository.AccountRepository
	cfg      *config.EngagementConfig
	log      zerolog.Logger
}

func newEngagementService(posts repository.PostRepository, accounts repository.AccountRepository, cfg *config.EngagementConfig, log zerolog.Logger) EngagementService {
	return &engagementService{
		posts:    posts,
		accounts: accounts,
		cfg:      cfg,
		log:      log.With().Str("service", "engagement").Logger(),
	}
}

// mutate loads the live collection, applies fn to the post carrying id, and
// writes the whole collection back. It returns the mutated post.
func (s *engagementService) mutate(ctx context.Context, id string, fn func(*models.Post) error) (*models.Post, error) {
	posts, err := s.posts.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].ID != id {
			continue
		}
		if err := fn(&posts[i]); err != nil {
			return nil, err
		}
		if err := s.posts.Replace(ctx, posts); err != nil {
			return nil, err
		}
		mutated := posts[i]
		return &mutated, nil
	}
	return nil, repository.ErrPostNotFound
}

// viewer identifies the current session for the "once" like policy. An empty
// string means no session; anonymous likes are always allowed.
func (s *engagementService) viewer(ctx context.Context) string {
	session, err := s.accounts.Session(ctx)
	if err != nil || session == nil {
		return ""
	}
	return session.Email
}

// LikePost increments the post's like counter. Under the default unlimited
// policy repeated likes keep counting; under "once" a signed-in viewer can
// like each post a single time.
func (s *engagementService) LikePost(ctx context.Context, id string) (*models.Post, error) {
	viewer := s.viewer(ctx)
	return s.mutate(ctx, id, func(p *models.Post) error {
		if s.cfg.LikePolicy == config.LikePolicyOnce && viewer != "" {
			for _, email := range p.LikedBy {
				if email == viewer {
					return ErrAlreadyLiked
				}
			}
			p.LikedBy = append(p.LikedBy, viewer)
		}
		p.Likes++
		return nil
	})
}

// AddComment appends a comment with a fresh timestamp and zeroed engagement.
func (s *engagementService) AddComment(ctx context.Context, id, text string) (*models.Post, error) {
	if errs := validation.ValidateText("comment", text); errs != nil {
		return nil, errs
	}
	return s.mutate(ctx, id, func(p *models.Post) error {
		p.Comments = append(p.Comments, models.Comment{
			Text:    text,
			Date:    time.Now().Format("1/2/2006, 3:04:05 PM"),
			Likes:   0,
			Replies: []string{},
		})
		return nil
	})
}

// LikeComment increments the like counter of the comment at commentIndex.
func (s *engagementService) LikeComment(ctx context.Context, id string, commentIndex int) (*models.Post, error) {
	viewer := s.viewer(ctx)
	return s.mutate(ctx, id, func(p *models.Post) error {
		if commentIndex < 0 || commentIndex >= len(p.Comments) {
			return ErrCommentNotFound
		}
		c := &p.Comments[commentIndex]
		if s.cfg.LikePolicy == config.LikePolicyOnce && viewer != "" {
			for _, email := range c.LikedBy {
				if email == viewer {
					return ErrAlreadyLiked
				}
			}
			c.LikedBy = append(c.LikedBy, viewer)
		}
		c.Likes++
		return nil
	})
}

// AddReply appends a reply to the comment at commentIndex.
func (s *engagementService) AddReply(ctx context.Context, id string, commentIndex int, text string) (*models.Post, error) {
	if errs := validation.ValidateText("reply", text); errs != nil {
		return nil, errs
	}
	return s.mutate(ctx, id, func(p *models.Post) error {
		if commentIndex < 0 || commentIndex >= len(p.Comments) {
			return ErrCommentNotFound
		}
		p.Comments[commentIndex].Replies = append(p.Comments[commentIndex].Replies, text)
		return nil
	})
}

package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/blogvault/internal/models"
	"github.com/blogvault/internal/repository"
	"github.com/blogvault/internal/validation"
)

// postService is the concrete implementation of PostService
type postService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newPostService(repos *repository.Repositories, log zerolog.Logger) PostService {
	return &postService{
		repos: repos,
		log:   log.With().Str("service", "post").Logger(),
	}
}

// Create validates the input, stamps id, author, and timestamps, and inserts
// the post at the front of the live collection.
func (s *postService) Create(ctx context.Context, input *models.PostInput, status string) (*models.Post, error) {
	if errs := validation.ValidatePost(input, status); errs != nil {
		return nil, errs
	}

	now := time.Now()
	post := &models.Post{
		ID:       uuid.NewString(),
		Title:    input.Title,
		Excerpt:  input.Excerpt,
		Content:  input.Content,
		Likes:    0,
		Comments: []models.Comment{},
		Status:   status,
		Date:     now.Format("1/2/2006"),
		Time:     now.Format("3:04 PM"),
		Author:   s.resolveAuthor(ctx),
	}

	if err := s.repos.Post.Insert(ctx, post); err != nil {
		return nil, err
	}

	s.log.Info().Str("post_id", post.ID).Str("status", status).Msg("Post created")
	return post, nil
}

// resolveAuthor stamps the display name of whoever is logged in. Without a
// session the post is attributed to "Unknown User".
func (s *postService) resolveAuthor(ctx context.Context) string {
	session, err := s.repos.Account.Session(ctx)
	if err != nil || session == nil {
		return "Unknown User"
	}
	account, err := s.repos.Account.Get(ctx)
	if err == nil && account != nil && account.Email == session.Email {
		return account.Username
	}
	return session.Email
}

// List returns live posts filtered by a case-insensitive substring query over
// title and excerpt, and by status. An empty or "All" status matches every
// post.
func (s *postService) List(ctx context.Context, query, status string) ([]models.Post, error) {
	posts, err := s.repos.Post.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if query == "" && (status == "" || status == "All") {
		return posts, nil
	}

	needle := strings.ToLower(query)
	filtered := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Title), needle) &&
			!strings.Contains(strings.ToLower(p.Excerpt), needle) {
			continue
		}
		if status != "" && status != "All" && p.Status != status {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered, nil
}

func (s *postService) Get(ctx context.Context, id string) (*models.Post, error) {
	return s.repos.Post.Get(ctx, id)
}

// Update edits title, excerpt, and content in place. Status is not editable
// here; the original editor had no publish toggle.
func (s *postService) Update(ctx context.Context, id string, input *models.PostInput) error {
	post, err := s.repos.Post.Get(ctx, id)
	if err != nil {
		return err
	}
	if errs := validation.ValidatePost(input, post.Status); errs != nil {
		return errs
	}
	if err := s.repos.Post.Update(ctx, id, input); err != nil {
		return err
	}
	s.log.Info().Str("post_id", id).Msg("Post updated")
	return nil
}

func (s *postService) Archive(ctx context.Context, id string) error {
	if _, err := s.repos.Archive.Archive(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("post_id", id).Msg("Post archived")
	return nil
}

func (s *postService) Unarchive(ctx context.Context, id string) error {
	if _, err := s.repos.Archive.Unarchive(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("post_id", id).Msg("Post restored")
	return nil
}

func (s *postService) ListArchived(ctx context.Context) ([]models.Post, error) {
	return s.repos.Archive.ListAll(ctx)
}

// Stats aggregates counters over both collections for the dashboard header.
func (s *postService) Stats(ctx context.Context) (*models.Stats, error) {
	posts, err := s.repos.Post.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	archived, err := s.repos.Archive.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &models.Stats{
		TotalPosts: len(posts),
		Archived:   len(archived),
	}
	for _, p := range posts {
		switch p.Status {
		case models.StatusPublished:
			stats.Published++
		case models.StatusDraft:
			stats.Drafts++
		}
		stats.TotalLikes += p.Likes
		stats.TotalComments += len(p.Comments)
	}
	return stats, nil
}

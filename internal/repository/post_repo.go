package repository

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/blogvault/internal/ledger"
	"github.com/blogvault/internal/models"
)

// postRepo is the concrete implementation of PostRepository
type postRepo struct {
	led ledger.Ledger
	log zerolog.Logger
}

// NewPostRepo creates a new post repository
func NewPostRepo(led ledger.Ledger, log zerolog.Logger) PostRepository {
	return &postRepo{
		led: led,
		log: log.With().Str("component", "post_repo").Logger(),
	}
}

// ListAll returns the live collection in stored order, newest first.
func (r *postRepo) ListAll(ctx context.Context) ([]models.Post, error) {
	return readPosts(ctx, r.led, ledger.KeyPosts, r.log)
}

// Get retrieves a post by id
func (r *postRepo) Get(ctx context.Context, id string) (*models.Post, error) {
	posts, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].ID == id {
			post := posts[i]
			return &post, nil
		}
	}
	return nil, ErrPostNotFound
}

// Insert prepends a post to the collection, so newly published posts come
// first in ListAll.
func (r *postRepo) Insert(ctx context.Context, post *models.Post) error {
	posts, err := r.ListAll(ctx)
	if err != nil {
		return err
	}
	posts = append([]models.Post{*post}, posts...)
	return r.Replace(ctx, posts)
}

// Update replaces the editable fields of the post with the given id.
func (r *postRepo) Update(ctx context.Context, id string, input *models.PostInput) error {
	posts, err := r.ListAll(ctx)
	if err != nil {
		return err
	}
	for i := range posts {
		if posts[i].ID == id {
			posts[i].Title = input.Title
			posts[i].Excerpt = input.Excerpt
			posts[i].Content = input.Content
			return r.Replace(ctx, posts)
		}
	}
	return ErrPostNotFound
}

// Replace persists the full collection
func (r *postRepo) Replace(ctx context.Context, posts []models.Post) error {
	raw, err := encodePosts(ledger.KeyPosts, posts)
	if err != nil {
		return err
	}
	return r.led.Write(ctx, ledger.KeyPosts, raw)
}

// Remove deletes the post with the given id and returns it.
func (r *postRepo) Remove(ctx context.Context, id string) (*models.Post, error) {
	posts, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].ID == id {
			removed := posts[i]
			posts = append(posts[:i], posts[i+1:]...)
			if err := r.Replace(ctx, posts); err != nil {
				return nil, err
			}
			return &removed, nil
		}
	}
	return nil, ErrPostNotFound
}

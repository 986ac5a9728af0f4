package repository

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/blogvault/internal/ledger"
	"github.com/blogvault/internal/models"
)

// archiveRepo is the concrete implementation of ArchiveRepository. It reads
// both post collections itself so the cross-collection move can be committed
// as a single ledger transaction.
type archiveRepo struct {
	led ledger.Ledger
	log zerolog.Logger
}

// NewArchiveRepo creates a new archive repository
func NewArchiveRepo(led ledger.Ledger, log zerolog.Logger) ArchiveRepository {
	return &archiveRepo{
		led: led,
		log: log.With().Str("component", "archive_repo").Logger(),
	}
}

// ListAll returns the archived collection, most recently archived first.
func (r *archiveRepo) ListAll(ctx context.Context) ([]models.Post, error) {
	return readPosts(ctx, r.led, ledger.KeyArchived, r.log)
}

// Archive moves the post with the given id from the live collection to the
// front of the archive. Both collections are committed atomically.
func (r *archiveRepo) Archive(ctx context.Context, id string) (*models.Post, error) {
	posts, err := readPosts(ctx, r.led, ledger.KeyPosts, r.log)
	if err != nil {
		return nil, err
	}
	archived, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range posts {
		if posts[i].ID == id {
			moved := posts[i]
			posts = append(posts[:i], posts[i+1:]...)
			archived = append([]models.Post{moved}, archived...)
			if err := r.commit(ctx, posts, archived); err != nil {
				return nil, err
			}
			return &moved, nil
		}
	}
	return nil, ErrPostNotFound
}

// Unarchive moves the post with the given id back to the live collection.
// The post is appended, not prepended, so it lands at the end rather than
// its original position.
func (r *archiveRepo) Unarchive(ctx context.Context, id string) (*models.Post, error) {
	posts, err := readPosts(ctx, r.led, ledger.KeyPosts, r.log)
	if err != nil {
		return nil, err
	}
	archived, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range archived {
		if archived[i].ID == id {
			moved := archived[i]
			archived = append(archived[:i], archived[i+1:]...)
			posts = append(posts, moved)
			if err := r.commit(ctx, posts, archived); err != nil {
				return nil, err
			}
			return &moved, nil
		}
	}
	return nil, ErrPostNotFound
}

// commit writes both collections in one atomic ledger transaction.
func (r *archiveRepo) commit(ctx context.Context, posts, archived []models.Post) error {
	rawPosts, err := encodePosts(ledger.KeyPosts, posts)
	if err != nil {
		return err
	}
	rawArchived, err := encodePosts(ledger.KeyArchived, archived)
	if err != nil {
		return err
	}
	return r.led.WriteAll(ctx, map[string][]byte{
		ledger.KeyPosts:    rawPosts,
		ledger.KeyArchived: rawArchived,
	})
}

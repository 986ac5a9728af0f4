package repository

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/blogvault/internal/ledger"
	"github.com/blogvault/internal/models"
)

// ErrPostNotFound is returned when no post carries the requested id. It
// signals state desync (a stale id captured before a structural change)
// rather than a user mistake.
var ErrPostNotFound = errors.New("post not found")

// AccountRepository defines the single-record account collection and the
// session pointer beside it.
type AccountRepository interface {
	Save(ctx context.Context, account *models.Account) error
	Get(ctx context.Context) (*models.Account, error)
	SaveSession(ctx context.Context, session *models.Session) error
	Session(ctx context.Context) (*models.Session, error)
	ClearSession(ctx context.Context) error
}

// PostRepository defines operations on the live post collection. Every
// mutation reads the whole collection, mutates a copy, and writes the whole
// collection back; there is no partial update protocol.
type PostRepository interface {
	ListAll(ctx context.Context) ([]models.Post, error)
	Get(ctx context.Context, id string) (*models.Post, error)
	Insert(ctx context.Context, post *models.Post) error
	Update(ctx context.Context, id string, input *models.PostInput) error
	Replace(ctx context.Context, posts []models.Post) error
	Remove(ctx context.Context, id string) (*models.Post, error)
}

// ArchiveRepository defines the archived post collection and the
// cross-collection move. Archive and Unarchive commit both collections in
// one atomic ledger write, so a post is never lost or duplicated mid-move.
type ArchiveRepository interface {
	ListAll(ctx context.Context) ([]models.Post, error)
	Archive(ctx context.Context, id string) (*models.Post, error)
	Unarchive(ctx context.Context, id string) (*models.Post, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Account AccountRepository
	Post    PostRepository
	Archive ArchiveRepository
}

// New creates all repositories over the given ledger
func New(led ledger.Ledger, log zerolog.Logger) *Repositories {
	return &Repositories{
		Account: NewAccountRepo(led, log),
		Post:    NewPostRepo(led, log),
		Archive: NewArchiveRepo(led, log),
	}
}

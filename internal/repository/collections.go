package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/blogvault/internal/ledger"
	"github.com/blogvault/internal/models"
)

// readPosts loads a post collection from the ledger. An absent key yields an
// empty collection. A blob that fails to decode is reported and also treated
// as empty: with no server to re-sync from, resetting the collection is the
// only recovery, and the next write replaces the corrupted value.
func readPosts(ctx context.Context, led ledger.Ledger, key string, log zerolog.Logger) ([]models.Post, error) {
	raw, err := led.Read(ctx, key)
	if errors.Is(err, ledger.ErrKeyNotFound) {
		return []models.Post{}, nil
	}
	if err != nil {
		return nil, err
	}

	var posts []models.Post
	if err := json.Unmarshal(raw, &posts); err != nil {
		log.Error().Err(err).Str("key", key).Msg("Stored collection is corrupted, treating as empty")
		return []models.Post{}, nil
	}
	return posts, nil
}

// encodePosts serializes a post collection for storage. nil normalizes to an
// empty array so the stored blob never decodes to null.
func encodePosts(key string, posts []models.Post) ([]byte, error) {
	if posts == nil {
		posts = []models.Post{}
	}
	raw, err := json.Marshal(posts)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", key, err)
	}
	return raw, nil
}

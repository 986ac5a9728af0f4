package benchmark

import (
	"context"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/blogvault/internal/ledger"
	"github.com/blogvault/internal/models"
	"github.com/blogvault/internal/repository"
)

func seedPosts(b *testing.B, repos *repository.Repositories, n int) {
	b.Helper()
	ctx := context.Background()
	for i := 0; i < n; i++ {
		err := repos.Post.Insert(ctx, &models.Post{
			ID:       strconv.Itoa(i),
			Title:    "Post " + strconv.Itoa(i),
			Content:  "content",
			Status:   models.StatusPublished,
			Comments: []models.Comment{},
		})
		if err != nil {
			b.Fatalf("seed: %v", err)
		}
	}
}

// BenchmarkInsert measures the whole-collection rewrite cost as the live
// collection grows.
func BenchmarkInsert(b *testing.B) {
	repos := repository.New(ledger.NewMemory(), zerolog.Nop())
	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		repos.Post.Insert(ctx, &models.Post{
			ID:       strconv.Itoa(i),
			Title:    "Post " + strconv.Itoa(i),
			Content:  "content",
			Status:   models.StatusPublished,
			Comments: []models.Comment{},
		})
	}
}

// BenchmarkListAll measures decode cost over a 1000-post collection.
func BenchmarkListAll(b *testing.B) {
	repos := repository.New(ledger.NewMemory(), zerolog.Nop())
	seedPosts(b, repos, 1000)
	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		posts, err := repos.Post.ListAll(ctx)
		if err != nil {
			b.Fatalf("list: %v", err)
		}
		if len(posts) != 1000 {
			b.Fatalf("expected 1000 posts, got %d", len(posts))
		}
	}

	b.ReportMetric(float64(1000*b.N)/b.Elapsed().Seconds(), "posts/sec")
}

// BenchmarkArchiveMove measures the atomic two-collection commit.
func BenchmarkArchiveMove(b *testing.B) {
	repos := repository.New(ledger.NewMemory(), zerolog.Nop())
	seedPosts(b, repos, 100)
	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		id := strconv.Itoa(i % 100)
		if _, err := repos.Archive.Archive(ctx, id); err != nil {
			b.Fatalf("archive: %v", err)
		}
		if _, err := repos.Archive.Unarchive(ctx, id); err != nil {
			b.Fatalf("unarchive: %v", err)
		}
	}
}

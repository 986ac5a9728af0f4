package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/blogvault/internal/config"
	"github.com/blogvault/internal/ledger"
	"github.com/blogvault/internal/models"
	"github.com/blogvault/internal/repository"
	"github.com/blogvault/internal/service"
	"github.com/blogvault/internal/validation"
)

func newServices(t *testing.T, mutate func(*config.Config)) *service.Services {
	t.Helper()
	cfg := &config.Config{
		Auth: config.AuthConfig{
			TokenSecret: "test-secret",
			TokenTTL:    time.Hour,
		},
		Engagement: config.EngagementConfig{
			LikePolicy: config.LikePolicyUnlimited,
		},
	}
	if mutate != nil {
		mutate(cfg)
	}
	repos := repository.New(ledger.NewMemory(), zerolog.Nop())
	return service.NewServices(repos, cfg, zerolog.Nop())
}

func register(t *testing.T, svcs *service.Services, email string) {
	t.Helper()
	if err := svcs.Auth.Register(context.Background(), "alice", email, "secret", "secret"); err != nil {
		t.Fatalf("register: %v", err)
	}
}

func TestRegisterDoesNotLogIn(t *testing.T) {
	ctx := context.Background()
	svcs := newServices(t, nil)

	register(t, svcs, "a@x.com")

	session, err := svcs.Auth.CurrentSession(ctx)
	if err != nil {
		t.Fatalf("current session: %v", err)
	}
	if session != nil {
		t.Errorf("expected no session after registration, got %+v", session)
	}
}

func TestLoginErrorCauses(t *testing.T) {
	ctx := context.Background()
	svcs := newServices(t, nil)

	if _, _, err := svcs.Auth.Login(ctx, "a@x.com", "secret"); !errors.Is(err, service.ErrNoAccount) {
		t.Errorf("expected ErrNoAccount, got %v", err)
	}

	register(t, svcs, "a@x.com")

	if _, _, err := svcs.Auth.Login(ctx, "wrong@x.com", "secret"); !errors.Is(err, service.ErrEmailMismatch) {
		t.Errorf("expected ErrEmailMismatch, got %v", err)
	}
	if _, _, err := svcs.Auth.Login(ctx, "a@x.com", "wrong"); !errors.Is(err, service.ErrPasswordMismatch) {
		t.Errorf("expected ErrPasswordMismatch, got %v", err)
	}

	session, token, err := svcs.Auth.Login(ctx, "a@x.com", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if session.Email != "a@x.com" || token == "" {
		t.Errorf("expected session and token, got %+v / %q", session, token)
	}

	// Session persists until logout
	session, _ = svcs.Auth.CurrentSession(ctx)
	if session == nil || session.Email != "a@x.com" {
		t.Fatalf("expected persisted session, got %+v", session)
	}
	if err := svcs.Auth.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	session, _ = svcs.Auth.CurrentSession(ctx)
	if session != nil {
		t.Errorf("expected no session after logout, got %+v", session)
	}
}

func TestPlaintextMode(t *testing.T) {
	ctx := context.Background()
	svcs := newServices(t, func(cfg *config.Config) {
		cfg.Auth.InsecurePlaintext = true
	})

	register(t, svcs, "a@x.com")
	if _, _, err := svcs.Auth.Login(ctx, "a@x.com", "secret"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, _, err := svcs.Auth.Login(ctx, "a@x.com", "wrong"); !errors.Is(err, service.ErrPasswordMismatch) {
		t.Errorf("expected ErrPasswordMismatch, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	svcs := newServices(t, nil)

	err := svcs.Auth.Register(ctx, "alice", "a@x.com", "secret", "other")
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation errors, got %v", err)
	}
	if len(verrs) != 1 || verrs[0].Field != "confirm_password" {
		t.Errorf("expected confirm_password error, got %v", verrs)
	}
}

func TestVerifyToken(t *testing.T) {
	ctx := context.Background()
	svcs := newServices(t, nil)
	register(t, svcs, "a@x.com")

	_, token, err := svcs.Auth.Login(ctx, "a@x.com", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	email, err := svcs.Auth.VerifyToken(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if email != "a@x.com" {
		t.Errorf("expected email claim a@x.com, got %q", email)
	}

	if _, err := svcs.Auth.VerifyToken("not.a.token"); !errors.Is(err, service.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestCreateStampsFields(t *testing.T) {
	ctx := context.Background()
	svcs := newServices(t, nil)

	post, err := svcs.Post.Create(ctx, &models.PostInput{Title: "Hello", Excerpt: "e", Content: "c"}, models.StatusPublished)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if post.ID == "" {
		t.Error("expected generated id")
	}
	if post.Author != "Unknown User" {
		t.Errorf("expected anonymous author, got %q", post.Author)
	}
	if post.Likes != 0 || len(post.Comments) != 0 || post.Comments == nil {
		t.Errorf("expected zeroed engagement, got %+v", post)
	}
	if post.Date == "" || post.Time == "" {
		t.Errorf("expected date and time stamps, got %q / %q", post.Date, post.Time)
	}
}

func TestCreateAttributesLoggedInAuthor(t *testing.T) {
	ctx := context.Background()
	svcs := newServices(t, nil)
	register(t, svcs, "a@x.com")
	if _, _, err := svcs.Auth.Login(ctx, "a@x.com", "secret"); err != nil {
		t.Fatalf("login: %v", err)
	}

	post, err := svcs.Post.Create(ctx, &models.PostInput{Title: "Mine", Content: "c"}, models.StatusPublished)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if post.Author != "alice" {
		t.Errorf("expected author alice, got %q", post.Author)
	}
}

func TestCreateDraftNeedsOnlyTitle(t *testing.T) {
	ctx := context.Background()
	svcs := newServices(t, nil)

	if _, err := svcs.Post.Create(ctx, &models.PostInput{Title: "Draft idea"}, models.StatusDraft); err != nil {
		t.Fatalf("draft create: %v", err)
	}
	if _, err := svcs.Post.Create(ctx, &models.PostInput{Title: "No body"}, models.StatusPublished); err == nil {
		t.Error("expected validation error publishing without content")
	}
}

func TestListFilters(t *testing.T) {
	ctx := context.Background()
	svcs := newServices(t, nil)

	seed := []struct {
		title  string
		status string
	}{
		{"Go concurrency patterns", models.StatusPublished},
		{"Gardening notes", models.StatusDraft},
		{"More Go tricks", models.StatusPublished},
	}
	for _, s := range seed {
		input := &models.PostInput{Title: s.title, Content: "body"}
		if _, err := svcs.Post.Create(ctx, input, s.status); err != nil {
			t.Fatalf("create %q: %v", s.title, err)
		}
	}

	all, err := svcs.Post.List(ctx, "", "All")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(all))
	}

	drafts, _ := svcs.Post.List(ctx, "", models.StatusDraft)
	if len(drafts) != 1 || drafts[0].Title != "Gardening notes" {
		t.Errorf("expected the single draft, got %+v", drafts)
	}

	// Case-insensitive substring over title
	goPosts, _ := svcs.Post.List(ctx, "go", "")
	if len(goPosts) != 2 {
		t.Errorf("expected 2 matches for 'go', got %d", len(goPosts))
	}

	both, _ := svcs.Post.List(ctx, "go", models.StatusDraft)
	if len(both) != 0 {
		t.Errorf("expected no draft matching 'go', got %d", len(both))
	}
}

func TestLikePostUnlimited(t *testing.T) {
	ctx := context.Background()
	svcs := newServices(t, nil)

	post, err := svcs.Post.Create(ctx, &models.PostInput{Title: "Likeable", Content: "c"}, models.StatusPublished)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// N likes increment by exactly N
	for i := 0; i < 5; i++ {
		if _, err := svcs.Engagement.LikePost(ctx, post.ID); err != nil {
			t.Fatalf("like %d: %v", i, err)
		}
	}
	got, _ := svcs.Post.Get(ctx, post.ID)
	if got.Likes != 5 {
		t.Errorf("expected 5 likes, got %d", got.Likes)
	}
}

func TestLikePolicyOnce(t *testing.T) {
	ctx := context.Background()
	svcs := newServices(t, func(cfg *config.Config) {
		cfg.Engagement.LikePolicy = config.LikePolicyOnce
	})
	register(t, svcs, "a@x.com")
	if _, _, err := svcs.Auth.Login(ctx, "a@x.com", "secret"); err != nil {
		t.Fatalf("login: %v", err)
	}

	post, err := svcs.Post.Create(ctx, &models.PostInput{Title: "Once", Content: "c"}, models.StatusPublished)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svcs.Engagement.LikePost(ctx, post.ID); err != nil {
		t.Fatalf("first like: %v", err)
	}
	if _, err := svcs.Engagement.LikePost(ctx, post.ID); !errors.Is(err, service.ErrAlreadyLiked) {
		t.Errorf("expected ErrAlreadyLiked, got %v", err)
	}
	got, _ := svcs.Post.Get(ctx, post.ID)
	if got.Likes != 1 {
		t.Errorf("expected 1 like, got %d", got.Likes)
	}
}

func TestCommentLifecycle(t *testing.T) {
	ctx := context.Background()
	svcs := newServices(t, nil)

	post, err := svcs.Post.Create(ctx, &models.PostInput{Title: "Discuss", Content: "c"}, models.StatusPublished)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svcs.Engagement.AddComment(ctx, post.ID, "   "); err == nil {
		t.Error("expected whitespace-only comment to be rejected")
	}

	updated, err := svcs.Engagement.AddComment(ctx, post.ID, "nice post")
	if err != nil {
		t.Fatalf("add comment: %v", err)
	}
	if len(updated.Comments) != 1 || updated.Comments[0].Text != "nice post" {
		t.Fatalf("expected one comment, got %+v", updated.Comments)
	}
	if updated.Comments[0].Date == "" || updated.Comments[0].Replies == nil {
		t.Errorf("expected stamped comment with empty replies, got %+v", updated.Comments[0])
	}

	updated, err = svcs.Engagement.LikeComment(ctx, post.ID, 0)
	if err != nil {
		t.Fatalf("like comment: %v", err)
	}
	if updated.Comments[0].Likes != 1 {
		t.Errorf("expected 1 comment like, got %d", updated.Comments[0].Likes)
	}

	updated, err = svcs.Engagement.AddReply(ctx, post.ID, 0, "agreed")
	if err != nil {
		t.Fatalf("add reply: %v", err)
	}
	if len(updated.Comments[0].Replies) != 1 || updated.Comments[0].Replies[0] != "agreed" {
		t.Errorf("expected one reply, got %+v", updated.Comments[0].Replies)
	}

	if _, err := svcs.Engagement.LikeComment(ctx, post.ID, 7); !errors.Is(err, service.ErrCommentNotFound) {
		t.Errorf("expected ErrCommentNotFound, got %v", err)
	}
	if _, err := svcs.Engagement.AddReply(ctx, post.ID, -1, "x"); !errors.Is(err, service.ErrCommentNotFound) {
		t.Errorf("expected ErrCommentNotFound, got %v", err)
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	svcs := newServices(t, nil)

	published, _ := svcs.Post.Create(ctx, &models.PostInput{Title: "P1", Content: "c"}, models.StatusPublished)
	svcs.Post.Create(ctx, &models.PostInput{Title: "P2", Content: "c"}, models.StatusPublished)
	svcs.Post.Create(ctx, &models.PostInput{Title: "D1"}, models.StatusDraft)

	svcs.Engagement.LikePost(ctx, published.ID)
	svcs.Engagement.LikePost(ctx, published.ID)
	svcs.Engagement.AddComment(ctx, published.ID, "hello")

	if err := svcs.Post.Archive(ctx, published.ID); err != nil {
		t.Fatalf("archive: %v", err)
	}

	stats, err := svcs.Post.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalPosts != 2 || stats.Published != 1 || stats.Drafts != 1 || stats.Archived != 1 {
		t.Errorf("unexpected counts: %+v", stats)
	}
	// Archived posts drop out of the live aggregates
	if stats.TotalLikes != 0 || stats.TotalComments != 0 {
		t.Errorf("expected live-only engagement totals, got %+v", stats)
	}

	if err := svcs.Post.Unarchive(ctx, published.ID); err != nil {
		t.Fatalf("unarchive: %v", err)
	}
	stats, _ = svcs.Post.Stats(ctx)
	if stats.TotalLikes != 2 || stats.TotalComments != 1 || stats.Archived != 0 {
		t.Errorf("unexpected totals after restore: %+v", stats)
	}
}

func TestUpdateValidatesAgainstStatus(t *testing.T) {
	ctx := context.Background()
	svcs := newServices(t, nil)

	post, err := svcs.Post.Create(ctx, &models.PostInput{Title: "Original", Content: "c"}, models.StatusPublished)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svcs.Post.Update(ctx, post.ID, &models.PostInput{Title: "Edited", Content: ""}); err == nil {
		t.Error("expected validation error stripping content from a published post")
	}
	if err := svcs.Post.Update(ctx, post.ID, &models.PostInput{Title: "Edited", Content: "c2"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ := svcs.Post.Get(ctx, post.ID)
	if got.Title != "Edited" || got.Content != "c2" {
		t.Errorf("update did not apply: %+v", got)
	}
	if err := svcs.Post.Update(ctx, "missing", &models.PostInput{Title: "X", Content: "c"}); !errors.Is(err, repository.ErrPostNotFound) {
		t.Errorf("expected ErrPostNotFound, got %v", err)
	}
}

package mocks

import (
	"context"

	"github.com/blogvault/internal/models"
	"github.com/blogvault/internal/repository"
	"github.com/blogvault/internal/service"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	RegisterFunc    func(ctx context.Context, username, email, password, confirmPassword string) error
	LoginFunc       func(ctx context.Context, email, password string) (*models.Session, string, error)
	VerifyTokenFunc func(token string) (string, error)
	Session         *models.Session
	Registered      []models.Account
	LoggedOut       bool
}

// Verify interface compliance
var _ service.AuthService = (*MockAuthService)(nil)

func NewMockAuthService() *MockAuthService {
	return &MockAuthService{
		Registered: make([]models.Account, 0),
	}
}

func (m *MockAuthService) Register(ctx context.Context, username, email, password, confirmPassword string) error {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, username, email, password, confirmPassword)
	}
	m.Registered = append(m.Registered, models.Account{Username: username, Email: email, Password: password})
	return nil
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.Session, string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	m.Session = &models.Session{Email: email}
	return m.Session, "mock-token", nil
}

func (m *MockAuthService) CurrentSession(ctx context.Context) (*models.Session, error) {
	return m.Session, nil
}

func (m *MockAuthService) Logout(ctx context.Context) error {
	m.Session = nil
	m.LoggedOut = true
	return nil
}

func (m *MockAuthService) VerifyToken(token string) (string, error) {
	if m.VerifyTokenFunc != nil {
		return m.VerifyTokenFunc(token)
	}
	if token == "mock-token" {
		return "mock@example.com", nil
	}
	return "", service.ErrInvalidToken
}

// MockPostService is a mock implementation of PostService
type MockPostService struct {
	CreateFunc func(ctx context.Context, input *models.PostInput, status string) (*models.Post, error)
	Posts      map[string]*models.Post
	ArchivedMu map[string]*models.Post
	StatsValue *models.Stats
}

// Verify interface compliance
var _ service.PostService = (*MockPostService)(nil)

func NewMockPostService() *MockPostService {
	return &MockPostService{
		Posts:      make(map[string]*models.Post),
		ArchivedMu: make(map[string]*models.Post),
		StatsValue: &models.Stats{},
	}
}

func (m *MockPostService) Create(ctx context.Context, input *models.PostInput, status string) (*models.Post, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, input, status)
	}
	post := &models.Post{
		ID:       "mock-post-id",
		Title:    input.Title,
		Excerpt:  input.Excerpt,
		Content:  input.Content,
		Status:   status,
		Comments: []models.Comment{},
	}
	m.Posts[post.ID] = post
	return post, nil
}

func (m *MockPostService) List(ctx context.Context, query, status string) ([]models.Post, error) {
	posts := make([]models.Post, 0, len(m.Posts))
	for _, p := range m.Posts {
		posts = append(posts, *p)
	}
	return posts, nil
}

func (m *MockPostService) Get(ctx context.Context, id string) (*models.Post, error) {
	if post, ok := m.Posts[id]; ok {
		return post, nil
	}
	return nil, repository.ErrPostNotFound
}

func (m *MockPostService) Update(ctx context.Context, id string, input *models.PostInput) error {
	post, ok := m.Posts[id]
	if !ok {
		return repository.ErrPostNotFound
	}
	post.Title = input.Title
	post.Excerpt = input.Excerpt
	post.Content = input.Content
	return nil
}

func (m *MockPostService) Archive(ctx context.Context, id string) error {
	post, ok := m.Posts[id]
	if !ok {
		return repository.ErrPostNotFound
	}
	delete(m.Posts, id)
	m.ArchivedMu[id] = post
	return nil
}

func (m *MockPostService) Unarchive(ctx context.Context, id string) error {
	post, ok := m.ArchivedMu[id]
	if !ok {
		return repository.ErrPostNotFound
	}
	delete(m.ArchivedMu, id)
	m.Posts[id] = post
	return nil
}

func (m *MockPostService) ListArchived(ctx context.Context) ([]models.Post, error) {
	posts := make([]models.Post, 0, len(m.ArchivedMu))
	for _, p := range m.ArchivedMu {
		posts = append(posts, *p)
	}
	return posts, nil
}

func (m *MockPostService) Stats(ctx context.Context) (*models.Stats, error) {
	return m.StatsValue, nil
}

// MockEngagementService is a mock implementation of EngagementService
type MockEngagementService struct {
	LikePostFunc func(ctx context.Context, id string) (*models.Post, error)
	Posts        map[string]*models.Post
}

// Verify interface compliance
var _ service.EngagementService = (*MockEngagementService)(nil)

func NewMockEngagementService() *MockEngagementService {
	return &MockEngagementService{
		Posts: make(map[string]*models.Post),
	}
}

func (m *MockEngagementService) LikePost(ctx context.Context, id string) (*models.Post, error) {
	if m.LikePostFunc != nil {
		return m.LikePostFunc(ctx, id)
	}
	post, ok := m.Posts[id]
	if !ok {
		return nil, repository.ErrPostNotFound
	}
	post.Likes++
	return post, nil
}

func (m *MockEngagementService) AddComment(ctx context.Context, id, text string) (*models.Post, error) {
	post, ok := m.Posts[id]
	if !ok {
		return nil, repository.ErrPostNotFound
	}
	post.Comments = append(post.Comments, models.Comment{Text: text, Replies: []string{}})
	return post, nil
}

func (m *MockEngagementService) LikeComment(ctx context.Context, id string, commentIndex int) (*models.Post, error) {
	post, ok := m.Posts[id]
	if !ok {
		return nil, repository.ErrPostNotFound
	}
	if commentIndex < 0 || commentIndex >= len(post.Comments) {
		return nil, service.ErrCommentNotFound
	}
	post.Comments[commentIndex].Likes++
	return post, nil
}

func (m *MockEngagementService) AddReply(ctx context.Context, id string, commentIndex int, text string) (*models.Post, error) {
	post, ok := m.Posts[id]
	if !ok {
		return nil, repository.ErrPostNotFound
	}
	if commentIndex < 0 || commentIndex >= len(post.Comments) {
		return nil, service.ErrCommentNotFound
	}
	post.Comments[commentIndex].Replies = append(post.Comments[commentIndex].Replies, text)
	return post, nil
}

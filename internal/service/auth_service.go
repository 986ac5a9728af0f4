package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/blogvault/internal/config"
	"github.com/blogvault/internal/models"
	"github.com/blogvault/internal/repository"
	"github.com/blogvault/internal/validation"
)

// Authentication failures, surfaced to the UI as inline messages. The
// messages mirror the original login page.
var (
	ErrNoAccount        = errors.New("no registered account found")
	ErrEmailMismatch    = errors.New("email not found")
	ErrPasswordMismatch = errors.New("password doesn't match")
)

// ErrInvalidToken is returned by VerifyToken for expired, malformed, or
// mis-signed tokens.
var ErrInvalidToken = errors.New("invalid token")

// authService is the concrete implementation of AuthService
type authService struct {
	accounts repository.AccountRepository
	cfg      *config.AuthConfig
	log      zerolog.Logger
}

func newAuthService(accounts repository.AccountRepository, cfg *config.AuthConfig, log zerolog.Logger) AuthService {
	svc := &authService{
		accounts: accounts,
		cfg:      cfg,
		log:      log.With().Str("service", "auth").Logger(),
	}
	if cfg.InsecurePlaintext {
		svc.log.Warn().Msg("AUTH_INSECURE_PLAINTEXT enabled, passwords are stored verbatim")
	}
	return svc
}

// Register overwrites the single account record. The latest registration
// wins; there is no uniqueness check and the caller is not logged in.
func (s *authService) Register(ctx context.Context, username, email, password, confirmPassword string) error {
	if errs := validation.ValidateRegistration(username, email, password, confirmPassword); errs != nil {
		return errs
	}

	stored := password
	if !s.cfg.InsecurePlaintext {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		stored = string(hash)
	}

	account := &models.Account{Username: username, Email: email, Password: stored}
	if err := s.accounts.Save(ctx, account); err != nil {
		return err
	}

	s.log.Info().Str("email", email).Msg("Account registered")
	return nil
}

// Login checks the stored credentials, persists the session on success, and
// returns it along with a signed token for the HTTP surface.
func (s *authService) Login(ctx context.Context, email, password string) (*models.Session, string, error) {
	account, err := s.accounts.Get(ctx)
	if err != nil {
		return nil, "", err
	}
	if account == nil {
		return nil, "", ErrNoAccount
	}
	if account.Email != email {
		return nil, "", ErrEmailMismatch
	}

	if s.cfg.InsecurePlaintext {
		if account.Password != password {
			return nil, "", ErrPasswordMismatch
		}
	} else {
		if bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)) != nil {
			return nil, "", ErrPasswordMismatch
		}
	}

	session := &models.Session{Email: email}
	if err := s.accounts.SaveSession(ctx, session); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(email)
	if err != nil {
		return nil, "", err
	}

	s.log.Info().Str("email", email).Msg("Login succeeded")
	return session, token, nil
}

// CurrentSession returns the persisted session, restoring identity across
// restarts, or nil when logged out.
func (s *authService) CurrentSession(ctx context.Context) (*models.Session, error) {
	return s.accounts.Session(ctx)
}

// Logout clears the persisted session.
func (s *authService) Logout(ctx context.Context) error {
	return s.accounts.ClearSession(ctx)
}

func (s *authService) issueToken(email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.cfg.TokenTTL).Unix(),
	})

	signed, err := token.SignedString([]byte(s.cfg.TokenSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken validates a bearer token and returns the email claim.
func (s *authService) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.TokenSecret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", ErrInvalidToken
	}
	return email, nil
}

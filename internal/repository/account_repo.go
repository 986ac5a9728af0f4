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

// accountRepo is the concrete implementation of AccountRepository
type accountRepo struct {
	led ledger.Ledger
	log zerolog.Logger
}

// NewAccountRepo creates a new account repository
func NewAccountRepo(led ledger.Ledger, log zerolog.Logger) AccountRepository {
	return &accountRepo{
		led: led,
		log: log.With().Str("component", "account_repo").Logger(),
	}
}

// Save overwrites the single account record. There is no uniqueness check;
// the latest registration wins.
func (r *accountRepo) Save(ctx context.Context, account *models.Account) error {
	raw, err := json.Marshal(account)
	if err != nil {
		return fmt.Errorf("encode account: %w", err)
	}
	return r.led.Write(ctx, ledger.KeyAccount, raw)
}

// Get retrieves the account record, or nil when nobody has registered.
func (r *accountRepo) Get(ctx context.Context) (*models.Account, error) {
	raw, err := r.led.Read(ctx, ledger.KeyAccount)
	if errors.Is(err, ledger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var account models.Account
	if err := json.Unmarshal(raw, &account); err != nil {
		r.log.Error().Err(err).Msg("Stored account is corrupted, treating as unregistered")
		return nil, nil
	}
	return &account, nil
}

// SaveSession persists the active session.
func (r *accountRepo) SaveSession(ctx context.Context, session *models.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return r.led.Write(ctx, ledger.KeySession, raw)
}

// Session retrieves the persisted session, or nil when logged out. Identity
// survives restarts because the session lives in the ledger.
func (r *accountRepo) Session(ctx context.Context) (*models.Session, error) {
	raw, err := r.led.Read(ctx, ledger.KeySession)
	if errors.Is(err, ledger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session models.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		r.log.Error().Err(err).Msg("Stored session is corrupted, treating as logged out")
		return nil, nil
	}
	return &session, nil
}

// ClearSession removes the persisted session.
func (r *accountRepo) ClearSession(ctx context.Context) error {
	return r.led.Remove(ctx, ledger.KeySession)
}

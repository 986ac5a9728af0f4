package ledger

import (
	"context"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"

	"github.com/blogvault/internal/config"
)

// badgerLedger is the durable Ledger implementation backed by BadgerDB.
type badgerLedger struct {
	db  *badger.DB
	log zerolog.Logger
}

// badgerLogger adapts zerolog to BadgerDB's Logger interface.
type badgerLogger struct {
	log zerolog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.log.Error().Msg(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.log.Warn().Msg(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.log.Debug().Msg(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.log.Debug().Msg(fmt.Sprintf(format, args...))
}

// Open creates a Ledger from the given configuration. In-memory mode returns
// the map-backed ledger used in tests; otherwise a BadgerDB instance is
// opened at the configured path, creating the directory if needed.
func Open(cfg *config.LedgerConfig, log zerolog.Logger) (Ledger, error) {
	if cfg.InMemory {
		return NewMemory(), nil
	}

	if err := os.MkdirAll(cfg.Path, 0750); err != nil {
		return nil, fmt.Errorf("create ledger directory %s: %w", cfg.Path, err)
	}

	ledgerLog := log.With().Str("component", "ledger").Logger()

	opts := badger.DefaultOptions(cfg.Path).
		WithSyncWrites(cfg.SyncWrites).
		WithNumVersionsToKeep(1).
		WithLogger(&badgerLogger{log: ledgerLog})

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open ledger at %s: %w", cfg.Path, err)
	}

	ledgerLog.Info().
		Str("path", cfg.Path).
		Bool("sync_writes", cfg.SyncWrites).
		Msg("Ledger opened")

	return &badgerLedger{db: db, log: ledgerLog}, nil
}

// Read returns the value stored under key, or ErrKeyNotFound.
func (l *badgerLedger) Read(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var value []byte
	err := l.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return value, nil
}

// Write replaces the value stored under key.
func (l *badgerLedger) Write(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := l.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// WriteAll commits every entry in one transaction.
func (l *badgerLedger) WriteAll(ctx context.Context, entries map[string][]byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := l.db.Update(func(txn *badger.Txn) error {
		for key, value := range entries {
			if err := txn.Set([]byte(key), value); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("write batch: %w", err)
	}
	return nil
}

// Remove deletes the value stored under key. Removing an absent key is not
// an error.
func (l *badgerLedger) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := l.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

// Close flushes and closes the underlying database.
func (l *badgerLedger) Close() error {
	return l.db.Close()
}

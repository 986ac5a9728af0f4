package ledger

import (
	"context"
	"sync"
)

// memoryLedger is a map-backed Ledger for tests and LEDGER_IN_MEMORY mode.
type memoryLedger struct {
	data map[string][]byte
	mu   sync.RWMutex
}

// NewMemory creates an empty in-memory ledger. Data is lost on Close.
func NewMemory() Ledger {
	return &memoryLedger{data: make(map[string][]byte)}
}

func (l *memoryLedger) Read(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	value, ok := l.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	return cp, nil
}

func (l *memoryLedger) Write(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cp := make([]byte, len(value))
	copy(cp, value)

	l.mu.Lock()
	l.data[key] = cp
	l.mu.Unlock()
	return nil
}

func (l *memoryLedger) WriteAll(ctx context.Context, entries map[string][]byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, value := range entries {
		cp := make([]byte, len(value))
		copy(cp, value)
		l.data[key] = cp
	}
	return nil
}

func (l *memoryLedger) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.mu.Lock()
	delete(l.data, key)
	l.mu.Unlock()
	return nil
}

func (l *memoryLedger) Close() error {
	return nil
}

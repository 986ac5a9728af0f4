package ledger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/blogvault/internal/config"
	"github.com/blogvault/internal/ledger"
)

func openLedgers(t *testing.T) map[string]ledger.Ledger {
	t.Helper()

	durable, err := ledger.Open(&config.LedgerConfig{
		Path:       t.TempDir(),
		SyncWrites: false,
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("open badger ledger: %v", err)
	}
	t.Cleanup(func() { durable.Close() })

	return map[string]ledger.Ledger{
		"badger": durable,
		"memory": ledger.NewMemory(),
	}
}

func TestReadWriteRemove(t *testing.T) {
	ctx := context.Background()

	for name, led := range openLedgers(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := led.Read(ctx, "posts"); !errors.Is(err, ledger.ErrKeyNotFound) {
				t.Fatalf("expected ErrKeyNotFound for absent key, got %v", err)
			}

			if err := led.Write(ctx, "posts", []byte(`[]`)); err != nil {
				t.Fatalf("write: %v", err)
			}

			value, err := led.Read(ctx, "posts")
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			if string(value) != `[]` {
				t.Errorf("expected [], got %s", value)
			}

			// Write replaces the previous value
			if err := led.Write(ctx, "posts", []byte(`[{"title":"t"}]`)); err != nil {
				t.Fatalf("overwrite: %v", err)
			}
			value, _ = led.Read(ctx, "posts")
			if string(value) != `[{"title":"t"}]` {
				t.Errorf("expected overwritten value, got %s", value)
			}

			if err := led.Remove(ctx, "posts"); err != nil {
				t.Fatalf("remove: %v", err)
			}
			if _, err := led.Read(ctx, "posts"); !errors.Is(err, ledger.ErrKeyNotFound) {
				t.Fatalf("expected ErrKeyNotFound after remove, got %v", err)
			}

			// Removing an absent key is not an error
			if err := led.Remove(ctx, "posts"); err != nil {
				t.Errorf("remove absent key: %v", err)
			}
		})
	}
}

func TestWriteAll(t *testing.T) {
	ctx := context.Background()

	for name, led := range openLedgers(t) {
		t.Run(name, func(t *testing.T) {
			entries := map[string][]byte{
				"posts":         []byte(`[{"title":"a"}]`),
				"archivedPosts": []byte(`[]`),
			}
			if err := led.WriteAll(ctx, entries); err != nil {
				t.Fatalf("write all: %v", err)
			}

			for key, want := range entries {
				got, err := led.Read(ctx, key)
				if err != nil {
					t.Fatalf("read %s: %v", key, err)
				}
				if string(got) != string(want) {
					t.Errorf("key %s: expected %s, got %s", key, want, got)
				}
			}
		})
	}
}

func TestBadgerPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	cfg := &config.LedgerConfig{Path: dir, SyncWrites: true}

	led, err := ledger.Open(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := led.Write(ctx, "user", []byte(`{"email":"a@x.com"}`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := led.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := ledger.Open(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	value, err := reopened.Read(ctx, "user")
	if err != nil {
		t.Fatalf("read after reopen: %v", err)
	}
	if string(value) != `{"email":"a@x.com"}` {
		t.Errorf("expected persisted value, got %s", value)
	}
}

func TestContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	led := ledger.NewMemory()
	if err := led.Write(ctx, "posts", []byte(`[]`)); err == nil {
		t.Error("expected error from cancelled context")
	}
	if _, err := led.Read(ctx, "posts"); err == nil {
		t.Error("expected error from cancelled context")
	}
}

// Package history implements the per-user login history ledger: an
// append-only sequence of human-readable timestamps, capped at the most
// recent entries, persisted per username in the key-value store.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/webstash/internal/common"
	"github.com/dmitrijs2005/webstash/internal/dbx"
	"github.com/dmitrijs2005/webstash/internal/storage"
)

// maxEntries is the retention cap; the oldest entry is evicted on overflow.
const maxEntries = 5

const keyPrefix = "ws_login_history_"

type Ledger struct {
	db *sql.DB
}

func NewLedger(db *sql.DB) *Ledger {
	return &Ledger{db: db}
}

func key(username string) string {
	return keyPrefix + username
}

func load(ctx context.Context, st storage.Store, username string) ([]string, error) {
	raw, err := st.Get(ctx, key(username))
	if errors.Is(err, common.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []string
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("failed to decode login history: %w", err)
	}
	return entries, nil
}

// Record appends timestamp to the user's history, evicts the oldest entries
// beyond the cap, persists the result and returns it in chronological order.
func (l *Ledger) Record(ctx context.Context, username, timestamp string) ([]string, error) {
	var result []string

	err := dbx.WithTx(ctx, l.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		st := storage.NewSQLiteStore(tx)

		entries, err := load(ctx, st, username)
		if err != nil {
			return err
		}

		entries = append(entries, timestamp)
		if len(entries) > maxEntries {
			entries = entries[len(entries)-maxEntries:]
		}

		raw, err := json.Marshal(entries)
		if err != nil {
			return fmt.Errorf("failed to encode login history: %w", err)
		}
		if err := st.Set(ctx, key(username), string(raw)); err != nil {
			return err
		}

		result = entries
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Load returns the stored history for username in chronological order, or
// an empty sequence when the user has never logged in.
func (l *Ledger) Load(ctx context.Context, username string) ([]string, error) {
	return load(ctx, storage.NewSQLiteStore(l.db), username)
}

// Package notes implements the per-user notes store: an ordered sequence of
// short text entries persisted as one JSON blob per username. Notes are
// created and deleted (by position), never edited.
package notes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/webstash/internal/common"
	"github.com/dmitrijs2005/webstash/internal/dbx"
	"github.com/dmitrijs2005/webstash/internal/models"
	"github.com/dmitrijs2005/webstash/internal/storage"
)

// maxTextLen is the note length cap in characters, counted after trimming.
const maxTextLen = 200

const keyPrefix = "ws_notes_"

type Service struct {
	db *sql.DB

	// now is a test seam for note timestamps.
	now func() time.Time
}

func NewService(db *sql.DB) *Service {
	return &Service{db: db, now: time.Now}
}

func key(username string) string {
	return keyPrefix + username
}

func load(ctx context.Context, st storage.Store, username string) ([]models.Note, error) {
	raw, err := st.Get(ctx, key(username))
	if errors.Is(err, common.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []models.Note
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("failed to decode notes: %w", err)
	}
	return entries, nil
}

func save(ctx context.Context, st storage.Store, username string, entries []models.Note) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode notes: %w", err)
	}
	return st.Set(ctx, key(username), string(raw))
}

// Add validates text and appends a new note to the user's sequence.
// The text is trimmed first; an empty result yields common.ErrEmptyNote and
// anything longer than the cap yields common.ErrNoteTooLong. On success the
// stored note (with its creation timestamp) is returned.
func (s *Service) Add(ctx context.Context, username, text string) (*models.Note, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, common.ErrEmptyNote
	}
	if utf8.RuneCountInString(text) > maxTextLen {
		return nil, common.ErrNoteTooLong
	}

	note := models.Note{
		Text:      text,
		CreatedAt: s.now().Format(time.DateTime),
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		st := storage.NewSQLiteStore(tx)

		entries, err := load(ctx, st, username)
		if err != nil {
			return err
		}
		return save(ctx, st, username, append(entries, note))
	})
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// Remove deletes the note at the given zero-based position, shifting
// subsequent notes down. A stale or invalid position yields
// common.ErrIndexOutOfRange.
func (s *Service) Remove(ctx context.Context, username string, index int) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		st := storage.NewSQLiteStore(tx)

		entries, err := load(ctx, st, username)
		if err != nil {
			return err
		}

		if index < 0 || index >= len(entries) {
			return common.ErrIndexOutOfRange
		}

		entries = append(entries[:index], entries[index+1:]...)
		return save(ctx, st, username, entries)
	})
}

// List returns the user's notes in creation order, or an empty sequence.
func (s *Service) List(ctx context.Context, username string) ([]models.Note, error) {
	return load(ctx, storage.NewSQLiteStore(s.db), username)
}

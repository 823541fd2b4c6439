// Package users implements the user directory: an ordered sequence of
// credential records persisted as one JSON blob in the key-value store.
// Usernames are unique (case-sensitive exact match); records are never
// mutated or deleted after registration.
package users

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/webstash/internal/common"
	"github.com/dmitrijs2005/webstash/internal/dbx"
	"github.com/dmitrijs2005/webstash/internal/models"
	"github.com/dmitrijs2005/webstash/internal/passx"
	"github.com/dmitrijs2005/webstash/internal/storage"
)

const usersKey = "ws_users"

// Service owns the directory of credential records. Every operation is a
// full read-modify-write of the stored sequence; the store remains the
// single source of truth between calls.
type Service struct {
	db *sql.DB
}

func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

func load(ctx context.Context, st storage.Store) ([]models.User, error) {
	raw, err := st.Get(ctx, usersKey)
	if errors.Is(err, common.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var directory []models.User
	if err := json.Unmarshal([]byte(raw), &directory); err != nil {
		return nil, fmt.Errorf("failed to decode user directory: %w", err)
	}
	return directory, nil
}

func save(ctx context.Context, st storage.Store, directory []models.User) error {
	raw, err := json.Marshal(directory)
	if err != nil {
		return fmt.Errorf("failed to encode user directory: %w", err)
	}
	return st.Set(ctx, usersKey, string(raw))
}

// Register creates a new credential record.
//
// The username is trimmed before all checks. Failures:
//   - common.ErrEmptyInput when username or password is blank after trimming;
//   - *common.WeakPasswordError carrying the failed rules;
//   - common.ErrDuplicateUsername when the name is already taken.
func (s *Service) Register(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return common.ErrEmptyInput
	}

	if r := passx.Validate(password); !r.Valid {
		return &common.WeakPasswordError{Problems: r.Errors}
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		st := storage.NewSQLiteStore(tx)

		directory, err := load(ctx, st)
		if err != nil {
			return err
		}

		for _, u := range directory {
			if u.Username == username {
				return common.ErrDuplicateUsername
			}
		}

		directory = append(directory, models.User{Username: username, Password: password})
		return save(ctx, st, directory)
	})
}

// Authenticate looks up a record matching both username (trimmed, exact
// case) and password. A miss returns common.ErrInvalidCredentials without
// revealing whether the username exists.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)

	directory, err := load(ctx, storage.NewSQLiteStore(s.db))
	if err != nil {
		return nil, err
	}

	for _, u := range directory {
		if u.Username == username && u.Password == password {
			return &u, nil
		}
	}
	return nil, common.ErrInvalidCredentials
}

// Package session tracks the process-wide mutable state of the app: which
// user is currently logged in and the persisted theme preference. Both live
// in the key-value store so a restart restores them.
package session

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/webstash/internal/common"
	"github.com/dmitrijs2005/webstash/internal/storage"
)

const (
	currentUserKey = "ws_current_user"
	themeKey       = "ws_theme"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Manager owns the session marker and the theme preference.
//
// The stored username is not re-validated against the user directory: an
// orphaned marker is possible and callers should treat a lookup miss as
// logged-out.
type Manager struct {
	db *sql.DB
}

func NewManager(db *sql.DB) *Manager {
	return &Manager{db: db}
}

func (m *Manager) store() storage.Store {
	return storage.NewSQLiteStore(m.db)
}

// SetCurrent marks username as the logged-in user, overwriting any prior value.
func (m *Manager) SetCurrent(ctx context.Context, username string) error {
	return m.store().Set(ctx, currentUserKey, username)
}

// Current returns the logged-in username, or common.ErrNotFound when no
// session is set.
func (m *Manager) Current(ctx context.Context) (string, error) {
	return m.store().Get(ctx, currentUserKey)
}

// Clear removes the session marker. Clearing an absent session is a no-op.
func (m *Manager) Clear(ctx context.Context) error {
	return m.store().Remove(ctx, currentUserKey)
}

// Theme returns the persisted theme preference, defaulting to light when
// none was ever saved.
func (m *Manager) Theme(ctx context.Context) (string, error) {
	theme, err := m.store().Get(ctx, themeKey)
	if errors.Is(err, common.ErrNotFound) {
		return ThemeLight, nil
	}
	if err != nil {
		return "", err
	}
	return theme, nil
}

// SetTheme persists the theme preference. Only "light" and "dark" are accepted.
func (m *Manager) SetTheme(ctx context.Context, theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return common.ErrInvalidTheme
	}
	return m.store().Set(ctx, themeKey, theme)
}

// ToggleTheme flips the persisted theme and returns the new value.
func (m *Manager) ToggleTheme(ctx context.Context) (string, error) {
	theme, err := m.Theme(ctx)
	if err != nil {
		return "", err
	}

	next := ThemeDark
	if theme == ThemeDark {
		next = ThemeLight
	}

	if err := m.SetTheme(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}

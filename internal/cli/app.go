// Package cli implements the interactive WebStash shell: a small REPL over
// the core repositories. All user-facing presentation lives here; the core
// packages only return data and errors.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/webstash/internal/common"
	"github.com/dmitrijs2005/webstash/internal/config"
	"github.com/dmitrijs2005/webstash/internal/history"
	"github.com/dmitrijs2005/webstash/internal/logging"
	"github.com/dmitrijs2005/webstash/internal/notes"
	"github.com/dmitrijs2005/webstash/internal/session"
	"github.com/dmitrijs2005/webstash/internal/storage"
	"github.com/dmitrijs2005/webstash/internal/tips"
	"github.com/dmitrijs2005/webstash/internal/users"

	_ "modernc.org/sqlite"
)

const installIDKey = "ws_install_id"

// App wires the repositories to the REPL. currentUser mirrors the persisted
// session marker for the lifetime of the process.
type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	users   *users.Service
	session *session.Manager
	history *history.Ledger
	notes   *notes.Service
	tips    *tips.Rotator

	reader *bufio.Reader
	out    io.Writer

	// now is a test seam for login timestamps.
	now func() time.Time

	currentUser string
}

// NewApp opens the local store, applies migrations, and wires the services.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	installID, err := ensureInstallID(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	log.Info(ctx, "store ready", "dsn", c.DatabaseDSN, "install_id", installID)

	return &App{
		config:  c,
		log:     log,
		db:      db,
		users:   users.NewService(db),
		session: session.NewManager(db),
		history: history.NewLedger(db),
		notes:   notes.NewService(db),
		tips:    tips.NewRotator(),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		now:     time.Now,
	}, nil
}

// ensureInstallID returns the stable identity of this local store, minting
// one on first run.
func ensureInstallID(ctx context.Context, db *sql.DB) (string, error) {
	st := storage.NewSQLiteStore(db)

	id, err := st.Get(ctx, installIDKey)
	if errors.Is(err, common.ErrNotFound) {
		id = uuid.NewString()
		if err := st.Set(ctx, installIDKey, id); err != nil {
			return "", err
		}
		return id, nil
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

// Run restores persisted state, starts the tip rotator, and enters the REPL.
// It returns when the user exits or input reaches EOF.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	theme, err := a.session.Theme(ctx)
	if err != nil {
		a.log.Warn(ctx, "failed to load theme", "error", err)
		theme = session.ThemeLight
	}
	fmt.Fprintf(a.out, "WebStash (theme: %s), type 'help' for commands\n", theme)

	go a.tips.Start(ctx, a.config.TipRotationInterval)
	fmt.Fprintln(a.out, "Tip:", a.tips.Current())

	// restore the previous session, if any
	if username, err := a.session.Current(ctx); err == nil {
		a.currentUser = username
		_ = a.Dashboard(ctx)
	} else if !errors.Is(err, common.ErrNotFound) {
		a.log.Warn(ctx, "failed to restore session", "error", err)
	}

	runREPL(ctx, a, a.status, a.reader)
}

// Close releases the database handle.
func (a *App) Close() {
	if err := a.db.Close(); err != nil {
		a.log.Error(context.Background(), "failed to close database", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.currentUser != ""
}

func (a *App) status() string {
	if a.currentUser == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.currentUser)
}

package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/webstash/internal/common"
)

// Login prompts for credentials, authenticates, records the login in the
// history ledger, and shows the dashboard.
func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		a.log.Error(ctx, "failed to read username", "error", err)
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		a.log.Error(ctx, "failed to read password", "error", err)
		return err
	}
	defer common.WipeByteArray(password)

	if username == "" || len(password) == 0 {
		fmt.Fprintln(a.out, "Please enter username and password.")
		return common.ErrEmptyInput
	}

	user, err := a.users.Authenticate(ctx, username, string(password))
	if err != nil {
		fmt.Fprintln(a.out, errorMessage(err))
		if !isUserError(err) {
			a.log.Error(ctx, "login failed", "error", err)
		}
		return err
	}

	if err := a.session.SetCurrent(ctx, user.Username); err != nil {
		a.log.Error(ctx, "failed to persist session", "error", err)
		return err
	}
	a.currentUser = user.Username

	timestamp := a.now().Format(time.DateTime)
	if _, err := a.history.Record(ctx, user.Username, timestamp); err != nil {
		a.log.Error(ctx, "failed to record login", "error", err)
	}

	return a.Dashboard(ctx)
}

// Logout clears the session marker; stored user data stays untouched.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Clear(ctx); err != nil {
		a.log.Error(ctx, "failed to clear session", "error", err)
		return err
	}
	a.currentUser = ""
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Dashboard renders the logged-in view: greeting, last-login summary, the
// login history and the notes list.
func (a *App) Dashboard(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please login first.")
		return common.ErrInvalidCredentials
	}

	fmt.Fprintln(a.out, "Welcome,", a.currentUser)

	entries, err := a.history.Load(ctx, a.currentUser)
	if err != nil {
		a.log.Error(ctx, "failed to load login history", "error", err)
		return err
	}
	fmt.Fprintln(a.out, lastLoginLine(entries))
	if len(entries) > 0 {
		fmt.Fprintln(a.out, "Login history:")
		renderHistory(a.out, entries)
	}

	list, err := a.notes.List(ctx, a.currentUser)
	if err != nil {
		a.log.Error(ctx, "failed to load notes", "error", err)
		return err
	}
	fmt.Fprintln(a.out, "Notes:")
	renderNotes(a.out, list)

	return nil
}

// History re-renders just the login history for the current user.
func (a *App) History(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please login first.")
		return common.ErrInvalidCredentials
	}

	entries, err := a.history.Load(ctx, a.currentUser)
	if err != nil {
		a.log.Error(ctx, "failed to load login history", "error", err)
		return err
	}

	fmt.Fprintln(a.out, lastLoginLine(entries))
	if len(entries) > 0 {
		fmt.Fprintln(a.out, "Login history:")
		renderHistory(a.out, entries)
	}
	return nil
}

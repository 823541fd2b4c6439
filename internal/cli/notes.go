package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/webstash/internal/common"
)

// AddNote prompts for note text and appends it to the current user's notes.
func (a *App) AddNote(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please login first.")
		return common.ErrInvalidCredentials
	}

	text, err := GetSimpleText(a.reader, "Note text", a.out)
	if err != nil {
		a.log.Error(ctx, "failed to read note text", "error", err)
		return err
	}

	note, err := a.notes.Add(ctx, a.currentUser, text)
	if err != nil {
		fmt.Fprintln(a.out, errorMessage(err))
		if !isUserError(err) {
			a.log.Error(ctx, "failed to add note", "error", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Note added (%s).\n", note.CreatedAt)
	return nil
}

// DeleteNote removes the note with the given display number (1-based, as
// printed by ListNotes).
func (a *App) DeleteNote(ctx context.Context, arg string) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please login first.")
		return common.ErrInvalidCredentials
	}

	n, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: delnote <n>")
		return common.ErrIndexOutOfRange
	}

	if err := a.notes.Remove(ctx, a.currentUser, n-1); err != nil {
		fmt.Fprintln(a.out, errorMessage(err))
		if !isUserError(err) {
			a.log.Error(ctx, "failed to delete note", "error", err)
		}
		return err
	}

	fmt.Fprintln(a.out, "Note deleted.")
	return nil
}

// ListNotes prints the current user's notes in creation order.
func (a *App) ListNotes(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please login first.")
		return common.ErrInvalidCredentials
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

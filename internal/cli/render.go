package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/webstash/internal/common"
	"github.com/dmitrijs2005/webstash/internal/models"
)

// sanitizeText renders user-authored text as literal text: control
// characters (including escape sequences) are stripped so a note cannot
// inject terminal control codes when displayed.
func sanitizeText(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// errorMessage converts a core error into the user-facing message shown by
// the CLI. Unrecognized errors get a generic message; the caller is
// expected to log the details.
func errorMessage(err error) string {
	var wpe *common.WeakPasswordError
	switch {
	case errors.As(err, &wpe):
		return "Weak password: " + strings.Join(wpe.Problems, ", ")
	case errors.Is(err, common.ErrEmptyInput):
		return "Username and password are required."
	case errors.Is(err, common.ErrDuplicateUsername):
		return "Username already exists."
	case errors.Is(err, common.ErrInvalidCredentials):
		return "Invalid username or password."
	case errors.Is(err, common.ErrEmptyNote):
		return "Note cannot be empty."
	case errors.Is(err, common.ErrNoteTooLong):
		return "Note is too long (max 200 characters)."
	case errors.Is(err, common.ErrIndexOutOfRange):
		return "No such note."
	default:
		return "Something went wrong, please try again."
	}
}

// lastLoginLine summarizes the previous login: the second-most-recent entry
// when at least two exist, otherwise a first-login notice.
func lastLoginLine(entries []string) string {
	if len(entries) >= 2 {
		return "Last login: " + entries[len(entries)-2]
	}
	return "This is your first login."
}

// renderHistory prints the login history newest-first. The most recent
// entry belongs to the session being shown.
func renderHistory(w io.Writer, entries []string) {
	for i := len(entries) - 1; i >= 0; i-- {
		if i == len(entries)-1 {
			fmt.Fprintln(w, "  Current session:", entries[i])
		} else {
			fmt.Fprintln(w, "  Previous:", entries[i])
		}
	}
}

// renderNotes prints the notes list in creation order, numbered from 1 the
// way delnote expects them.
func renderNotes(w io.Writer, list []models.Note) {
	if len(list) == 0 {
		fmt.Fprintln(w, "  (no notes yet)")
		return
	}
	for i, n := range list {
		fmt.Fprintf(w, "  %d. %s (%s)\n", i+1, sanitizeText(n.Text), n.CreatedAt)
	}
}

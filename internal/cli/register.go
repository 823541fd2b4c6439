package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/webstash/internal/common"
	"github.com/dmitrijs2005/webstash/internal/passx"
)

// Register prompts for credentials and creates an account. The strength
// indicator is shown right after the password is entered, before any
// registration attempt.
func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Choose a username", a.out)
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

	if strength := passx.Strength(string(password)); strength != "" {
		fmt.Fprintln(a.out, "Password strength:", strength)
	}

	if err := a.users.Register(ctx, username, string(password)); err != nil {
		fmt.Fprintln(a.out, errorMessage(err))
		if !isUserError(err) {
			a.log.Error(ctx, "registration failed", "error", err)
		}
		return err
	}

	fmt.Fprintln(a.out, "Account created successfully. You can now login.")
	return nil
}

// isUserError reports whether err is an expected validation outcome rather
// than an infrastructure failure worth logging.
func isUserError(err error) bool {
	return errors.Is(err, common.ErrEmptyInput) ||
		errors.Is(err, common.ErrWeakPassword) ||
		errors.Is(err, common.ErrDuplicateUsername) ||
		errors.Is(err, common.ErrInvalidCredentials) ||
		errors.Is(err, common.ErrEmptyNote) ||
		errors.Is(err, common.ErrNoteTooLong) ||
		errors.Is(err, common.ErrIndexOutOfRange)
}

package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/webstash/internal/passx"
	"github.com/dmitrijs2005/webstash/internal/storage"
)

// generatedPasswordLength matches the length suggested on registration.
const generatedPasswordLength = 12

// GenPass prints a freshly generated password suggestion.
func (a *App) GenPass(ctx context.Context) error {
	fmt.Fprintln(a.out, "Generated password:", passx.Generate(generatedPasswordLength))
	return nil
}

// ToggleTheme flips the persisted theme preference.
func (a *App) ToggleTheme(ctx context.Context) error {
	theme, err := a.session.ToggleTheme(ctx)
	if err != nil {
		a.log.Error(ctx, "failed to toggle theme", "error", err)
		return err
	}
	fmt.Fprintln(a.out, "Theme:", theme)
	return nil
}

// ShowTip prints the security tip currently on rotation.
func (a *App) ShowTip(ctx context.Context) error {
	fmt.Fprintln(a.out, "Tip:", a.tips.Current())
	return nil
}

// Reset wipes the whole local store: accounts, histories, notes, theme and
// session. The install ID is minted anew on the next start.
func (a *App) Reset(ctx context.Context) error {
	if err := storage.NewSQLiteStore(a.db).Clear(ctx); err != nil {
		a.log.Error(ctx, "failed to wipe store", "error", err)
		return err
	}
	a.currentUser = ""
	fmt.Fprintln(a.out, "Local data wiped.")
	return nil
}

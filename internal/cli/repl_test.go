package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	arg   string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Dashboard(ctx context.Context) error {
	f.calls = append(f.calls, "dashboard")
	return nil
}
func (f *fakeExec) AddNote(ctx context.Context) error {
	f.calls = append(f.calls, "addnote")
	return nil
}
func (f *fakeExec) DeleteNote(ctx context.Context, arg string) error {
	f.calls = append(f.calls, "delnote")
	f.arg = arg
	return nil
}
func (f *fakeExec) ListNotes(ctx context.Context) error {
	f.calls = append(f.calls, "notes")
	return nil
}
func (f *fakeExec) History(ctx context.Context) error {
	f.calls = append(f.calls, "history")
	return nil
}
func (f *fakeExec) GenPass(ctx context.Context) error {
	f.calls = append(f.calls, "genpass")
	return nil
}
func (f *fakeExec) ToggleTheme(ctx context.Context) error {
	f.calls = append(f.calls, "theme")
	return nil
}
func (f *fakeExec) ShowTip(ctx context.Context) error {
	f.calls = append(f.calls, "tip")
	return nil
}
func (f *fakeExec) Reset(ctx context.Context) error {
	f.calls = append(f.calls, "reset")
	return nil
}

func runScript(t *testing.T, exec *fakeExec, lines ...string) {
	t.Helper()

	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	reader := bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
	runREPL(context.Background(), exec, func() string { return "" }, reader)
}

func TestRunREPL_DispatchesCommandsInOrder(t *testing.T) {
	exec := &fakeExec{}

	runScript(t, exec,
		"help",
		"login",
		"addnote",
		"notes",
		"delnote 2",
		"history",
		"theme",
		"tip",
		"genpass",
		"logout",
		"exit",
	)

	assert.Equal(t, []string{"login", "addnote", "notes", "delnote", "history", "theme", "tip", "genpass", "logout"}, exec.calls)
	assert.Equal(t, "2", exec.arg)
}

func TestRunREPL_DelnoteWithoutArgumentIsNotDispatched(t *testing.T) {
	exec := &fakeExec{loggedIn: true}

	runScript(t, exec, "delnote", "exit")

	assert.Empty(t, exec.calls)
}

func TestRunREPL_UnknownAndBlankLinesAreIgnored(t *testing.T) {
	exec := &fakeExec{}

	runScript(t, exec, "", "   ", "frobnicate", "register", "quit")

	assert.Equal(t, []string{"register"}, exec.calls)
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	exec := &fakeExec{}

	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	reader := bufio.NewReader(strings.NewReader("register\n"))
	runREPL(context.Background(), exec, func() string { return "" }, reader)

	assert.Equal(t, []string{"register"}, exec.calls)
}

func TestRunREPL_ListAliasesNotes(t *testing.T) {
	exec := &fakeExec{loggedIn: true}

	runScript(t, exec, "list", "exit")

	assert.Equal(t, []string{"notes"}, exec.calls)
}

package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for prompt output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Dashboard(ctx context.Context) error
	AddNote(ctx context.Context) error
	DeleteNote(ctx context.Context, arg string) error
	ListNotes(ctx context.Context) error
	History(ctx context.Context) error
	GenPass(ctx context.Context) error
	ToggleTheme(ctx context.Context) error
	ShowTip(ctx context.Context) error
	Reset(ctx context.Context) error
}

// runREPL reads a line from reader, parses the first token as the command,
// and dispatches to methods on 'a'. Unknown commands are reported back to
// the user. The loop exits on EOF or when the user types "exit" or "quit".
//
// Command handlers print their own messages; errors returned by them are
// ignored here to keep the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("ws %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: dashboard, notes, addnote, delnote <n>, history, genpass, theme, tip, logout, reset, exit")
			} else {
				printlnFn("Available commands: register, login, genpass, theme, tip, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "addnote":
			_ = a.AddNote(ctx)

		case "delnote":
			if len(args) == 0 {
				printlnFn("Usage: delnote <n>")
				continue
			}
			_ = a.DeleteNote(ctx, args[0])

		case "notes", "list":
			_ = a.ListNotes(ctx)

		case "history":
			_ = a.History(ctx)

		case "genpass":
			_ = a.GenPass(ctx)

		case "theme":
			_ = a.ToggleTheme(ctx)

		case "tip":
			_ = a.ShowTip(ctx)

		case "reset":
			_ = a.Reset(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

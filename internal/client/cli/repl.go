package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Go(ctx context.Context, path string) error
	Dashboard(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context, text string) error
	Role(ctx context.Context, role string) error
	Sort(ctx context.Context, field string) error
	Page(ctx context.Context, n string) error
	PageSize(ctx context.Context, n string) error
	Rate(ctx context.Context, row string) error
	Stars(ctx context.Context, n string) error
	Submit(ctx context.Context) error
	Cancel(ctx context.Context) error
	AddUser(ctx context.Context) error
	Passwd(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: login, register, go <path>, exit"
	helpLoggedIn  = "Available commands: whoami, dashboard, go <path>, (l)ist, search [text], role [role], " +
		"sort <field>, page <n>, pagesize <n>, rate <row>, stars <n>, submit, cancel, adduser, passwd, logout, exit"
)

// runREPL starts a simple read–eval–print loop for the console.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands that take an argument print their usage when it is missing;
// search and role without an argument clear the filter. Errors returned by
// the handlers are printed through describeError and never end the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("sr %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), cmd))

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register":
			err = a.Register(ctx)

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "whoami":
			err = a.Whoami(ctx)

		case "go":
			if rest == "" {
				printlnFn("Usage: go <path>")
				continue
			}
			err = a.Go(ctx, rest)

		case "dashboard":
			err = a.Dashboard(ctx)

		case "l", "list":
			err = a.List(ctx)

		case "search":
			err = a.Search(ctx, rest)

		case "role":
			err = a.Role(ctx, rest)

		case "sort", "page", "pagesize", "rate", "stars":
			if rest == "" {
				printlnFn(fmt.Sprintf("Usage: %s <%s>", cmd, argName(cmd)))
				continue
			}
			switch cmd {
			case "sort":
				err = a.Sort(ctx, rest)
			case "page":
				err = a.Page(ctx, rest)
			case "pagesize":
				err = a.PageSize(ctx, rest)
			case "rate":
				err = a.Rate(ctx, rest)
			case "stars":
				err = a.Stars(ctx, rest)
			}

		case "submit":
			err = a.Submit(ctx)

		case "cancel":
			err = a.Cancel(ctx)

		case "adduser":
			err = a.AddUser(ctx)

		case "passwd":
			err = a.Passwd(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if msg := describeError(err); msg != "" {
			printlnFn(msg)
		}
	}
}

func argName(cmd string) string {
	switch cmd {
	case "sort":
		return "field"
	case "rate":
		return "row"
	default:
		return "n"
	}
}

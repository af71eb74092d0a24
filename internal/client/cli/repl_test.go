package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  []string
	err   error
}

func (f *fakeExec) record(name, arg string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, arg)
	return f.err
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error { return f.record("register", "") }
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login", "")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout", "")
}
func (f *fakeExec) Whoami(ctx context.Context) error { return f.record("whoami", "") }
func (f *fakeExec) Go(ctx context.Context, path string) error { return f.record("go", path) }
func (f *fakeExec) Dashboard(ctx context.Context) error { return f.record("dashboard", "") }
func (f *fakeExec) List(ctx context.Context) error { return f.record("list", "") }
func (f *fakeExec) Search(ctx context.Context, text string) error { return f.record("search", text) }
func (f *fakeExec) Role(ctx context.Context, role string) error { return f.record("role", role) }
func (f *fakeExec) Sort(ctx context.Context, field string) error { return f.record("sort", field) }
func (f *fakeExec) Page(ctx context.Context, n string) error { return f.record("page", n) }
func (f *fakeExec) PageSize(ctx context.Context, n string) error { return f.record("pagesize", n) }
func (f *fakeExec) Rate(ctx context.Context, row string) error { return f.record("rate", row) }
func (f *fakeExec) Stars(ctx context.Context, n string) error { return f.record("stars", n) }
func (f *fakeExec) Submit(ctx context.Context) error { return f.record("submit", "") }
func (f *fakeExec) Cancel(ctx context.Context) error { return f.record("cancel", "") }
func (f *fakeExec) AddUser(ctx context.Context) error { return f.record("adduser", "") }
func (f *fakeExec) Passwd(ctx context.Context) error { return f.record("passwd", "") }

func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	capturePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"go /admin/stores",
		"search corner mart",
		"sort name",
		"page 2",
		"pagesize 10",
		"role store_owner",
		"rate 3",
		"stars 4",
		"submit",
		"cancel",
		"l",
		"dashboard",
		"whoami",
		"adduser",
		"passwd",
		"logout",
		"exit",
		"list",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewScanner(input))

	assert.Equal(t, []string{
		"login", "go", "search", "sort", "page", "pagesize", "role", "rate", "stars",
		"submit", "cancel", "list", "dashboard", "whoami", "adduser", "passwd", "logout",
	}, exec.calls)
	assert.Equal(t, "/admin/stores", exec.args[1])
	assert.Equal(t, "corner mart", exec.args[2])
	assert.Equal(t, "3", exec.args[7])
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	lines := capturePrintln(t)

	input := strings.NewReader("go\nrate\npage\nsearch\nfoobar\nquit\n")
	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(input))

	assert.Equal(t, []string{"search"}, exec.calls)
	assert.Equal(t, "", exec.args[0])
	assert.Contains(t, *lines, "Usage: go <path>")
	assert.Contains(t, *lines, "Usage: rate <row>")
	assert.Contains(t, *lines, "Usage: page <n>")
	assert.Contains(t, *lines, "Unknown command: foobar")
	assert.Contains(t, *lines, "Bye!")
}

func TestRunREPL_HelpDependsOnSession(t *testing.T) {
	lines := capturePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("help\n")))
	assert.Contains(t, *lines, helpLoggedOut)

	exec.loggedIn = true
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("help\n")))
	assert.Contains(t, *lines, helpLoggedIn)
}

func TestRunREPL_PrintsHandlerErrorsAndContinues(t *testing.T) {
	lines := capturePrintln(t)

	exec := &fakeExec{err: errors.New("boom")}
	input := strings.NewReader("list\nwhoami\n")
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	assert.Equal(t, []string{"list", "whoami"}, exec.calls)
	n := 0
	for _, l := range *lines {
		if l == "Error: boom" {
			n++
		}
	}
	assert.Equal(t, 2, n)
}

package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	calls []string
	args  []string
}

func (f *fakeExec) record(name, arg string) {
	f.calls = append(f.calls, name)
	f.args = append(f.args, arg)
}

func (f *fakeExec) List(ctx context.Context, tab string) error      { f.record("list", tab); return nil }
func (f *fakeExec) Search(ctx context.Context, query string) error  { f.record("search", query); return nil }
func (f *fakeExec) Show(ctx context.Context, id string) error       { f.record("show", id); return nil }
func (f *fakeExec) Add(ctx context.Context) error                   { f.record("add", ""); return nil }
func (f *fakeExec) Edit(ctx context.Context, id string) error       { f.record("edit", id); return nil }
func (f *fakeExec) Use(ctx context.Context, id string) error        { f.record("use", id); return nil }
func (f *fakeExec) Favorite(ctx context.Context, id string) error   { f.record("fav", id); return nil }
func (f *fakeExec) Delete(ctx context.Context, id string) error     { f.record("del", id); return nil }
func (f *fakeExec) Folders(ctx context.Context) error               { f.record("folders", ""); return nil }
func (f *fakeExec) Folder(ctx context.Context, id string) error     { f.record("folder", id); return nil }
func (f *fakeExec) AddFolder(ctx context.Context) error             { f.record("addfolder", ""); return nil }
func (f *fakeExec) DeleteFolder(ctx context.Context, id string) error {
	f.record("delfolder", id)
	return nil
}
func (f *fakeExec) History(ctx context.Context, limit string) error { f.record("history", limit); return nil }
func (f *fakeExec) Settings(ctx context.Context) error              { f.record("settings", ""); return nil }
func (f *fakeExec) Export(ctx context.Context, path string) error   { f.record("export", path); return nil }
func (f *fakeExec) Import(ctx context.Context, path string) error   { f.record("import", path); return nil }
func (f *fakeExec) Reset(ctx context.Context) error                 { f.record("reset", ""); return nil }
func (f *fakeExec) Login(ctx context.Context) error                 { f.record("login", ""); return nil }
func (f *fakeExec) Logout(ctx context.Context) error                { f.record("logout", ""); return nil }

func TestRunREPL_DispatchesCommandsInOrder(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"list fav",
		"search code review",
		"show p1",
		"use p1",
		"fav p1",
		"history 5",
		"folders",
		"folder f1",
		"export out.json",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	want := []string{"list", "search", "show", "use", "fav", "history", "folders", "folder", "export"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, want)
	}
	for i, c := range want {
		if exec.calls[i] != c {
			t.Fatalf("call %d: got %q, want %q (all: %v)", i, exec.calls[i], c, exec.calls)
		}
	}

	if exec.args[0] != "fav" {
		t.Fatalf("list tab: got %q", exec.args[0])
	}
	if exec.args[1] != "code review" {
		t.Fatalf("search query: got %q", exec.args[1])
	}
	if exec.args[2] != "p1" {
		t.Fatalf("show id: got %q", exec.args[2])
	}
}

func TestRunREPL_MissingArgumentPrintsUsage(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"show",
		"use",
		"del",
		"search",
		"export",
		"quit",
	}, "\n"))

	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_EOFStopsLoop(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("list\n")
	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 1 {
		t.Fatalf("expected a single call before EOF, got %v", exec.calls)
	}
}

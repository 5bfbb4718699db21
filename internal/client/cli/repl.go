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
	List(ctx context.Context, tab string) error
	Search(ctx context.Context, query string) error
	Show(ctx context.Context, id string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Use(ctx context.Context, id string) error
	Favorite(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Folders(ctx context.Context) error
	Folder(ctx context.Context, id string) error
	AddFolder(ctx context.Context) error
	DeleteFolder(ctx context.Context, id string) error
	History(ctx context.Context, limit string) error
	Settings(ctx context.Context) error
	Export(ctx context.Context, path string) error
	Import(ctx context.Context, path string) error
	Reset(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
}

const helpText = `Available commands:
  list [recent|popular|top|fav]   list prompts for a tab
  search <query>                  find prompts by text or tag
  show <id>                       print one prompt
  add                             create a prompt
  edit <id>                       edit a prompt
  use <id>                        print content and record a use
  fav <id>                        toggle favorite
  del <id>                        delete a prompt
  folders                         list folders
  folder <id>                     list prompts in a folder
  addfolder                       create a folder
  delfolder <id>                  delete a folder
  history [n]                     recent activity
  settings                        show settings
  export <file> / import <file>   backup and restore
  reset                           discard everything
  login / logout                  attach or detach an account
  exit                            leave the program`

// runREPL starts a simple read–eval–print loop for the prompt library CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("prompts %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		arg := ""
		if len(args) > 0 {
			arg = args[0]
		}

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "l", "list":
			_ = a.List(ctx, arg)

		case "search":
			if len(args) == 0 {
				printlnFn("Usage: search <query>")
				continue
			}
			_ = a.Search(ctx, strings.Join(args, " "))

		case "show":
			if arg == "" {
				printlnFn("Usage: show <id>")
				continue
			}
			_ = a.Show(ctx, arg)

		case "add":
			_ = a.Add(ctx)

		case "edit":
			if arg == "" {
				printlnFn("Usage: edit <id>")
				continue
			}
			_ = a.Edit(ctx, arg)

		case "use":
			if arg == "" {
				printlnFn("Usage: use <id>")
				continue
			}
			_ = a.Use(ctx, arg)

		case "fav":
			if arg == "" {
				printlnFn("Usage: fav <id>")
				continue
			}
			_ = a.Favorite(ctx, arg)

		case "del":
			if arg == "" {
				printlnFn("Usage: del <id>")
				continue
			}
			_ = a.Delete(ctx, arg)

		case "folders":
			_ = a.Folders(ctx)

		case "folder":
			if arg == "" {
				printlnFn("Usage: folder <id>")
				continue
			}
			_ = a.Folder(ctx, arg)

		case "addfolder":
			_ = a.AddFolder(ctx)

		case "delfolder":
			if arg == "" {
				printlnFn("Usage: delfolder <id>")
				continue
			}
			_ = a.DeleteFolder(ctx, arg)

		case "history":
			_ = a.History(ctx, arg)

		case "settings":
			_ = a.Settings(ctx)

		case "export":
			if arg == "" {
				printlnFn("Usage: export <file>")
				continue
			}
			_ = a.Export(ctx, arg)

		case "import":
			if arg == "" {
				printlnFn("Usage: import <file>")
				continue
			}
			_ = a.Import(ctx, arg)

		case "reset":
			_ = a.Reset(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

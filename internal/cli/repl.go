package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. Tests replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to. The real App
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	Upload(ctx context.Context) error
	List(ctx context.Context) error
	Shared(ctx context.Context) error
	Show(ctx context.Context) error
	Download(ctx context.Context) error
	Delete(ctx context.Context) error
	Share(ctx context.Context) error
	Revoke(ctx context.Context) error
	Logs(ctx context.Context) error
	Users(ctx context.Context) error
	AddUser(ctx context.Context) error
	Switch(ctx context.Context) error
	GenKey(ctx context.Context) error
	Reset(ctx context.Context) error
}

const helpText = `Available commands:
  upload            encrypt a local file and store it
  (l)ist            list files you own
  shared            list files shared with you
  show              show one file's details
  download          decrypt a file into ./downloads
  delete            delete a file you own
  share             grant another identity access
  revoke            withdraw a grant
  logs              show a file's access history (owner only)
  users             list identities
  adduser           register a new identity
  switch            act as another identity
  genkey            print a fresh random encryption key
  reset             wipe the vault
  exit | quit       leave`

// runREPL reads lines from the scanner, parses the first token as the
// command, and dispatches to a. Unknown commands are reported back. The loop
// exits on scanner EOF or when the user types "exit" or "quit".
//
// Errors returned by handlers are ignored here; handlers print their own
// messages. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("fv [%s] > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "help":
			printlnFn(helpText)
		case "upload":
			_ = a.Upload(ctx)
		case "l", "list":
			_ = a.List(ctx)
		case "shared":
			_ = a.Shared(ctx)
		case "show":
			_ = a.Show(ctx)
		case "download":
			_ = a.Download(ctx)
		case "delete":
			_ = a.Delete(ctx)
		case "share":
			_ = a.Share(ctx)
		case "revoke":
			_ = a.Revoke(ctx)
		case "logs":
			_ = a.Logs(ctx)
		case "users":
			_ = a.Users(ctx)
		case "adduser":
			_ = a.AddUser(ctx)
		case "switch":
			_ = a.Switch(ctx)
		case "genkey":
			_ = a.GenKey(ctx)
		case "reset":
			_ = a.Reset(ctx)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", parts[0])
		}
	}
}

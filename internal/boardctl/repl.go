package boardctl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	status() string
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context) error
	Ask(ctx context.Context) error
	Answer(ctx context.Context) error
}

const helpText = `Commands:
  help      show this text
  register  create an account
  login     authenticate
  list      list recent questions
  show      show a question with its answers
  ask       post a new question (requires login)
  answer    answer a question (requires login)
  logout    forget the session token
  exit      leave the program`

// RunREPL reads commands line by line and dispatches them to 'a'.
// Unknown commands are reported back to the user. The loop exits on
// scanner EOF or when the user types "exit" or "quit".
func RunREPL(ctx context.Context, a execIface, scanner *bufio.Scanner, out io.Writer) {

	for {
		fmt.Fprintf(out, "[%s] > ", a.status())
		if !scanner.Scan() {
			return
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		var err error
		switch cmd := strings.ToLower(fields[0]); cmd {
		case "help":
			fmt.Fprintln(out, helpText)
		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "list":
			err = a.List(ctx)
		case "show":
			err = a.Show(ctx)
		case "ask", "answer":
			if !a.isLoggedIn() {
				fmt.Fprintln(out, "Please log in first")
				continue
			}
			if cmd == "ask" {
				err = a.Ask(ctx)
			} else {
				err = a.Answer(ctx)
			}
		case "exit", "quit":
			return
		default:
			fmt.Fprintf(out, "Unknown command: %s\n", cmd)
		}

		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
}

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL dispatches to.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	Categories(ctx context.Context) error
	Skills(ctx context.Context) error
	AddSkill(ctx context.Context) error
	Log(ctx context.Context, args []string) error
	Logs(ctx context.Context, args []string) error
	Leaderboard(ctx context.Context, args []string) error
	Export(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: register, login, exit"
	helpLoggedIn  = "Available commands: profile, categories, skills, addskill, log <skill-id> <minutes> [note], " +
		"logs [skill-id], leaderboard [limit], export, logout, exit"
)

// runREPL reads commands from reader until EOF or "exit"/"quit" and
// dispatches them to a. Handler errors are printed and the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "gq%s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, helpLoggedIn)
			} else {
				fmt.Fprintln(w, helpLoggedOut)
			}

		case "register":
			cmdErr = a.Register(ctx)

		case "login":
			cmdErr = a.Login(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			if !a.isLoggedIn() {
				fmt.Fprintln(w, "Please login or register first")
				continue
			}
			switch cmd {
			case "profile", "me":
				cmdErr = a.Profile(ctx)
			case "categories":
				cmdErr = a.Categories(ctx)
			case "skills":
				cmdErr = a.Skills(ctx)
			case "addskill":
				cmdErr = a.AddSkill(ctx)
			case "log":
				cmdErr = a.Log(ctx, args)
			case "logs":
				cmdErr = a.Logs(ctx, args)
			case "leaderboard", "top":
				cmdErr = a.Leaderboard(ctx, args)
			case "export":
				cmdErr = a.Export(ctx)
			case "logout":
				cmdErr = a.Logout(ctx)
			default:
				fmt.Fprintln(w, "Unknown command:", cmd)
			}
		}

		if cmdErr != nil {
			fmt.Fprintln(w, "Error:", cmdErr)
		}
	}
}

package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/Mag-Tataho/heAIthy/internal/client"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	view() client.View
	signup(ctx context.Context) error
	login(ctx context.Context) error
	logout() error
	onboard(ctx context.Context) error
	profile() error
	diet(ctx context.Context) error
	bmi() error
	plan() error
	generate(ctx context.Context) error
	chat(ctx context.Context, text string) error
	water() error
	darkmode() error
	upgrade(ctx context.Context) error
	redeem(ctx context.Context, code string) error
	users(ctx context.Context) error
	reviews(ctx context.Context) error
	approve(ctx context.Context, email string) error
}

// runREPL reads a line from the scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Which commands apply depends on where the session is:
//
//	Signed out:
//	  - signup | login | help | exit
//	Onboarding:
//	  - onboard | logout | help | exit
//	In the app:
//	  - profile, edit, diet, plan, generate, chat <msg>, water, bmi,
//	    upgrade, redeem <code>, darkmode, logout, help, exit
//	Admin dashboard:
//	  - users, reviews, approve <email>, logout, help, exit
//
// Errors returned by command handlers are ignored here; handlers print their
// own messages. This keeps the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("healthy %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		rest := strings.TrimSpace(strings.TrimPrefix(line, cmd))

		switch cmd {
		case "help":
			printHelp(a.view())

		case "signup":
			_ = a.signup(ctx)

		case "login":
			_ = a.login(ctx)

		case "logout":
			_ = a.logout()

		case "onboard", "edit":
			_ = a.onboard(ctx)

		case "profile":
			_ = a.profile()

		case "diet":
			_ = a.diet(ctx)

		case "bmi":
			_ = a.bmi()

		case "plan":
			_ = a.plan()

		case "generate":
			_ = a.generate(ctx)

		case "chat":
			_ = a.chat(ctx, rest)

		case "water":
			_ = a.water()

		case "darkmode":
			_ = a.darkmode()

		case "upgrade":
			_ = a.upgrade(ctx)

		case "redeem":
			_ = a.redeem(ctx, rest)

		case "users":
			_ = a.users(ctx)

		case "reviews":
			_ = a.reviews(ctx)

		case "approve":
			_ = a.approve(ctx, rest)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func printHelp(view client.View) {
	switch view {
	case client.ViewAuth:
		printlnFn("Available commands: signup, login, exit")
	case client.ViewOnboarding:
		printlnFn("Available commands: onboard, logout, exit")
	case client.ViewAdmin:
		printlnFn("Available commands: users, reviews, approve <email>, logout, exit")
	default:
		printlnFn("Available commands: profile, edit, diet, plan, generate, chat <message>, water, bmi, upgrade, redeem <code>, darkmode, logout, exit")
	}
}

package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if a.userEmail != "" {
		return fmt.Sprintf("(%s) ", a.userEmail)
	}
	return ""
}

// Root runs the command loop until EOF or an explicit exit.
func (a *App) Root(ctx context.Context) {

	fmt.Println("Welcome to TaskKeeper CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("tk %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: list [status], add, start <id>, complete <id>, delete <id>, attach <id> <file>, attachments <id>, logout, exit")
			} else {
				fmt.Println("Available commands: register, login, exit")
			}

		case "register":
			a.register(ctx)
		case "login":
			a.login(ctx)
		case "logout":
			a.logout()

		case "l", "list":
			a.list(ctx, args)
		case "add":
			a.add(ctx)
		case "start":
			if len(args) == 0 {
				fmt.Println("Usage: start <id>")
				continue
			}
			a.setStatus(ctx, args[0], "IN_PROGRESS")
		case "complete":
			if len(args) == 0 {
				fmt.Println("Usage: complete <id>")
				continue
			}
			a.setStatus(ctx, args[0], "COMPLETED")
		case "delete":
			if len(args) == 0 {
				fmt.Println("Usage: delete <id>")
				continue
			}
			a.delete(ctx, args[0])

		case "attach":
			if len(args) < 2 {
				fmt.Println("Usage: attach <id> <file>")
				continue
			}
			a.attach(ctx, args[0], args[1])
		case "attachments":
			if len(args) == 0 {
				fmt.Println("Usage: attachments <id>")
				continue
			}
			a.attachments(ctx, args[0])

		case "exit", "quit":
			fmt.Println("Bye!")
			return

		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}

package cli

import (
	"bufio"
	"context"
	"log"
	"os"
)

// getStatus renders the short prompt suffix: the display name when a
// marketplace account is attached, nothing otherwise.
func (a *App) getStatus() string {
	if a.userName != "" {
		return "(" + a.userName + ")"
	}
	return ""
}

// Root greets the user, primes the cached display name from the stored
// profile and runs the command loop until EOF or exit.
func (a *App) Root(ctx context.Context) {
	log.Println("Welcome to the prompt library CLI (type 'help' for commands)")

	if u, err := a.profile.User(ctx); err == nil && u.IsLoggedIn {
		a.userName = u.Name
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

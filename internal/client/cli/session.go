package cli

import (
	"context"
	"log"
	"os"

	"github.com/codamon/immersive-prompt/internal/common"
)

// getSimpleText and getToken are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getToken = GetToken

// Login prompts for a display name, an optional email and an access token,
// then attaches the marketplace account to the stored profile. The token
// byte slice is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter display name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email (optional)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	token, err := getToken(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	defer common.WipeByteArray(token)

	u, err := a.session.Login(ctx, name, email, token)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	a.userName = u.Name
	printlnFn("Logged in as:", u.Name)
	return nil
}

// Logout detaches the account and returns the profile to the anonymous role.
func (a *App) Logout(ctx context.Context) error {
	if _, err := a.session.Logout(ctx); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	a.userName = ""
	printlnFn("Logged out.")
	return nil
}

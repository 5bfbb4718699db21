package cli

import (
	"fmt"
	"strings"

	"github.com/codamon/immersive-prompt/internal/client/models"
)

// formatPromptLine renders the one-line listing form of a prompt.
func formatPromptLine(p models.Prompt) string {
	fav := " "
	if p.IsFavorite {
		fav = "*"
	}
	return fmt.Sprintf("%s %-36s  %-30s  uses:%-4d  v%d", fav, p.ID, p.Title, p.Downloads, p.Version)
}

// printPrompt renders the full detail view of a prompt.
func printPrompt(p *models.Prompt) {
	printlnFn("Title:      ", p.Title)
	printlnFn("ID:         ", p.ID)
	if p.Description != "" {
		printlnFn("Description:", p.Description)
	}
	if len(p.Tags) > 0 {
		printlnFn("Tags:       ", strings.Join(p.Tags, ", "))
	}
	if p.Category != "" {
		printlnFn("Category:   ", p.Category)
	}
	printlnFn("Favorite:   ", p.IsFavorite)
	printlnFn("Uses:       ", p.Downloads)
	printlnFn("Version:    ", p.Version)
	printlnFn("")
	printlnFn(p.Content)
}

package cli

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
)

// History prints the most recent activity, newest first. The optional
// argument overrides the configured entry count.
func (a *App) History(ctx context.Context, limit string) error {
	n := a.config.HistoryLimit
	if limit != "" {
		parsed, err := strconv.Atoi(limit)
		if err != nil || parsed <= 0 {
			printlnFn("Usage: history [n]")
			return nil
		}
		n = parsed
	}

	items, err := a.history.List(ctx, n)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if len(items) == 0 {
		printlnFn("No activity yet.")
		return nil
	}

	for _, it := range items {
		printlnFn(fmt.Sprintf("%s  %-7s  %s", it.Timestamp.Format("2006-01-02 15:04"), it.Action, it.Title))
	}
	return nil
}

// Settings prints the current preferences record.
func (a *App) Settings(ctx context.Context) error {
	s, err := a.profile.Settings(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	printlnFn("Theme:           ", string(s.Theme))
	printlnFn("Language:        ", s.Language)
	if s.DefaultPromptLanguage != "" {
		printlnFn("Prompt language: ", s.DefaultPromptLanguage)
	}
	printlnFn("Categories:      ", strings.Join(s.Categories, ", "))
	printlnFn("Sync enabled:    ", s.SyncEnabled)
	printlnFn("Sync interval:   ", s.SyncInterval, "min")
	return nil
}

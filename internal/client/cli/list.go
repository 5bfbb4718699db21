package cli

import (
	"context"
	"errors"
	"log"

	"github.com/codamon/immersive-prompt/internal/client/models"
	"github.com/codamon/immersive-prompt/internal/client/services"
	"github.com/codamon/immersive-prompt/internal/common"
)

// List prints the prompts of a tab: recent (default), popular, top or fav.
func (a *App) List(ctx context.Context, tab string) error {
	var (
		items []models.Prompt
		err   error
	)

	switch tab {
	case "fav":
		items, err = a.view.Favorites(ctx)
	case "", "recent", "popular", "top":
		items, err = a.view.List(ctx, services.SortOrder(tab))
	default:
		printlnFn("Unknown tab:", tab, "(expected recent, popular, top or fav)")
		return nil
	}
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	for _, p := range items {
		printlnFn(formatPromptLine(p))
	}
	return nil
}

// Search prints the prompts matching a free-text query.
func (a *App) Search(ctx context.Context, query string) error {
	items, err := a.view.Search(ctx, query)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if len(items) == 0 {
		printlnFn("Nothing found.")
		return nil
	}
	for _, p := range items {
		printlnFn(formatPromptLine(p))
	}
	return nil
}

// Show prints a single prompt in full.
func (a *App) Show(ctx context.Context, id string) error {
	p, err := a.prompts.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("No such prompt:", id)
			return nil
		}
		log.Printf("error: %v", err)
		return err
	}
	printPrompt(p)
	return nil
}

// Use prints a prompt's content and records the usage.
func (a *App) Use(ctx context.Context, id string) error {
	p, err := a.prompts.Use(ctx, id)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if p == nil {
		printlnFn("No such prompt:", id)
		return nil
	}
	printlnFn(p.Content)
	return nil
}

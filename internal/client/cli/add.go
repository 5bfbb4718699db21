package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/codamon/immersive-prompt/internal/client/models"
	"github.com/codamon/immersive-prompt/internal/common"
)

// Add collects the fields of a new prompt interactively and persists it.
// Title and content are required; everything else may be left empty.
func (a *App) Add(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if title == "" {
		err := fmt.Errorf("title is required")
		log.Printf("error: %v", err)
		return err
	}

	content, err := GetMultiline(a.reader, "Enter prompt text:", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if content == "" {
		err := fmt.Errorf("prompt text is required")
		log.Printf("error: %v", err)
		return err
	}

	description, err := GetSimpleText(a.reader, "Enter description (optional)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	category, err := GetSimpleText(a.reader, "Enter category (optional)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	tags, err := GetTags(a.reader, os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	u, err := a.profile.User(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	settings, err := a.profile.Settings(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	draft := models.PromptDraft{
		Title:       title,
		Content:     content,
		Description: description,
		Category:    category,
		Tags:        tags,
		Language:    settings.DefaultPromptLanguage,
		AuthorID:    u.ID,
		AuthorName:  u.Name,
		Source:      models.SourceLocal,
		Status:      models.StatusDraft,
	}

	p, err := a.prompts.Add(ctx, draft)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	printlnFn("Created:", p.ID)
	return nil
}

// Edit re-prompts for title and text of an existing prompt. Empty answers
// keep the stored value.
func (a *App) Edit(ctx context.Context, id string) error {
	p, err := a.prompts.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("No such prompt:", id)
			return nil
		}
		log.Printf("error: %v", err)
		return err
	}

	title, err := GetSimpleText(a.reader, fmt.Sprintf("Enter title [%s] (empty keeps current)", p.Title), os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	content, err := GetMultiline(a.reader, "Enter prompt text (empty keeps current):", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	var patch models.PromptPatch
	if title != "" {
		patch.Title = &title
	}
	if content != "" {
		patch.Content = &content
	}
	if patch.Title == nil && patch.Content == nil {
		printlnFn("Nothing to change.")
		return nil
	}

	updated, err := a.prompts.Update(ctx, id, patch)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	printlnFn("Updated:", updated.ID, "v", updated.Version)
	return nil
}

// Favorite toggles the favorite flag of a prompt.
func (a *App) Favorite(ctx context.Context, id string) error {
	p, err := a.prompts.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("No such prompt:", id)
			return nil
		}
		log.Printf("error: %v", err)
		return err
	}

	fav := !p.IsFavorite
	if _, err := a.prompts.Update(ctx, id, models.PromptPatch{IsFavorite: &fav}); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if fav {
		printlnFn("Added to favorites:", p.Title)
	} else {
		printlnFn("Removed from favorites:", p.Title)
	}
	return nil
}

// Delete removes a prompt. A missing id is reported, not treated as an error.
func (a *App) Delete(ctx context.Context, id string) error {
	ok, err := a.prompts.Delete(ctx, id)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if !ok {
		printlnFn("No such prompt:", id)
		return nil
	}
	printlnFn("Deleted:", id)
	return nil
}

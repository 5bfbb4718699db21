package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"slices"

	"github.com/codamon/immersive-prompt/internal/client/models"
	"github.com/codamon/immersive-prompt/internal/common"
)

// Folders lists every folder in display order.
func (a *App) Folders(ctx context.Context) error {
	items, err := a.folders.List(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	slices.SortFunc(items, func(x, y models.Folder) int {
		return x.Position - y.Position
	})

	for _, f := range items {
		marker := " "
		if f.IsSystem() {
			marker = "#"
		}
		printlnFn(fmt.Sprintf("%s %-12s  %-20s  %d prompts", marker, f.ID, f.Name, len(f.PromptIDs)))
	}
	return nil
}

// Folder lists the live prompts of one folder.
func (a *App) Folder(ctx context.Context, id string) error {
	items, err := a.folders.Contents(ctx, id)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if len(items) == 0 {
		printlnFn("Folder is empty or unknown:", id)
		return nil
	}
	for _, p := range items {
		printlnFn(formatPromptLine(p))
	}
	return nil
}

// AddFolder collects a folder name and creates a user folder.
func (a *App) AddFolder(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter folder name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if name == "" {
		err := fmt.Errorf("folder name is required")
		log.Printf("error: %v", err)
		return err
	}

	description, err := GetSimpleText(a.reader, "Enter description (optional)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	f, err := a.folders.Add(ctx, models.FolderDraft{Name: name, Description: description})
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	printlnFn("Created folder:", f.ID)
	return nil
}

// DeleteFolder removes a user folder; its prompts move to the root folder.
// System folders are refused.
func (a *App) DeleteFolder(ctx context.Context, id string) error {
	ok, err := a.folders.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrProtectedFolder) {
			printlnFn("Folder is protected and cannot be deleted:", id)
			return nil
		}
		log.Printf("error: %v", err)
		return err
	}
	if !ok {
		printlnFn("No such folder:", id)
		return nil
	}
	printlnFn("Deleted folder:", id)
	return nil
}

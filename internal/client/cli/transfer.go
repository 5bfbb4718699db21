package cli

import (
	"context"
	"log"
	"os"
)

// Export writes the whole document to a JSON backup file.
func (a *App) Export(ctx context.Context, path string) error {
	data, err := a.transfer.Export(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	printlnFn("Exported to:", path)
	return nil
}

// Import replaces the stored document from a backup file. A malformed file
// is reported without touching the stored data.
func (a *App) Import(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if !a.transfer.Import(ctx, string(data)) {
		printlnFn("Import failed: the file is not a valid backup.")
		return nil
	}

	printlnFn("Imported from:", path)
	return nil
}

// Reset discards everything after an explicit confirmation and restores the
// first-run document.
func (a *App) Reset(ctx context.Context) error {
	answer, err := GetSimpleText(a.reader, "This discards all local data. Type 'yes' to continue", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if answer != "yes" {
		printlnFn("Aborted.")
		return nil
	}

	if err := a.transfer.Reset(ctx); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	a.userName = ""
	printlnFn("All data has been reset.")
	return nil
}

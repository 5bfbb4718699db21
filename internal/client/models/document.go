package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SchemaVersion is the current layout version of the stored document.
const SchemaVersion = 1

// Top-level document keys. Each is persisted independently and defaulted
// independently when absent, so documents written by older layouts keep
// decoding.
const (
	KeyPrompts  = "prompts"
	KeyFolders  = "folders"
	KeySettings = "settings"
	KeyUser     = "user"
	KeyHistory  = "history"
	KeySync     = "sync"
	KeyVersion  = "version"
)

// DocumentKeys lists every top-level key in storage order.
var DocumentKeys = []string{
	KeyPrompts, KeyFolders, KeySettings, KeyUser, KeyHistory, KeySync, KeyVersion,
}

// Document is the root aggregate: the single unit of atomic read/write.
// Prompts, folders and history entries have no identity outside of it.
type Document struct {
	Prompts  map[string]Prompt `json:"prompts"`
	Folders  map[string]Folder `json:"folders"`
	Settings Settings          `json:"settings"`
	User     User              `json:"user"`
	History  []HistoryItem     `json:"history"`
	Sync     SyncState         `json:"sync"`
	Version  int               `json:"version"`
}

// NewDocument builds the initial document for a first run: the two system
// folders, default settings, a fresh anonymous user and empty collections.
func NewDocument() *Document {
	now := time.Now().UTC()
	return &Document{
		Prompts:  map[string]Prompt{},
		Folders:  DefaultFolders(now),
		Settings: DefaultSettings(),
		User:     NewAnonymousUser(now),
		History:  []HistoryItem{},
		Sync:     SyncState{Version: SchemaVersion},
		Version:  SchemaVersion,
	}
}

// DefaultFolders returns the two system folders every document must contain.
func DefaultFolders(now time.Time) map[string]Folder {
	heart := "heart"
	red := "#ff4757"
	return map[string]Folder{
		FolderIDRoot: {
			ID:          FolderIDRoot,
			Name:        "All prompts",
			Description: "Every prompt in the library",
			Kind:        FolderKindSystem,
			PromptIDs:   []string{},
			CreatedAt:   now,
			UpdatedAt:   now,
			IsExpanded:  true,
			Position:    0,
		},
		FolderIDFavorites: {
			ID:          FolderIDFavorites,
			Name:        "Favorites",
			Description: "Prompts marked as favorite",
			Kind:        FolderKindSystem,
			PromptIDs:   []string{},
			Icon:        &heart,
			Color:       &red,
			CreatedAt:   now,
			UpdatedAt:   now,
			IsExpanded:  true,
			Position:    1,
		},
	}
}

// DefaultSettings returns the out-of-the-box preferences.
func DefaultSettings() Settings {
	return Settings{
		Theme:                 ThemeSystem,
		Language:              "en",
		DefaultPromptLanguage: "en",
		Categories:            []string{"writing", "development", "productivity", "education", "business", "creative"},
		SyncEnabled:           false,
		SyncInterval:          60,
	}
}

// NewAnonymousUser returns a fresh local-only user profile.
func NewAnonymousUser(now time.Time) User {
	return User{
		ID:        uuid.NewString(),
		Name:      "Local user",
		Role:      RoleAnonymous,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// DecodeDocument assembles a document from raw per-key JSON. Keys absent
// from fields keep their first-run defaults; present keys replace them
// entirely. This is the single decode-with-defaults step at the storage
// boundary, shared by the store and the importer.
func DecodeDocument(fields map[string]json.RawMessage) (*Document, error) {
	doc := NewDocument()

	targets := map[string]any{
		KeyPrompts:  &doc.Prompts,
		KeyFolders:  &doc.Folders,
		KeySettings: &doc.Settings,
		KeyUser:     &doc.User,
		KeyHistory:  &doc.History,
		KeySync:     &doc.Sync,
		KeyVersion:  &doc.Version,
	}

	for key, target := range targets {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, target); err != nil {
			return nil, fmt.Errorf("decoding document field %q: %w", key, err)
		}
	}

	doc.normalizeFolderKinds()
	return doc, nil
}

// EncodeDocument splits the document back into per-key JSON.
func EncodeDocument(doc *Document) (map[string]json.RawMessage, error) {
	sources := map[string]any{
		KeyPrompts:  doc.Prompts,
		KeyFolders:  doc.Folders,
		KeySettings: doc.Settings,
		KeyUser:     doc.User,
		KeyHistory:  doc.History,
		KeySync:     doc.Sync,
		KeyVersion:  doc.Version,
	}

	fields := make(map[string]json.RawMessage, len(sources))
	for key, source := range sources {
		raw, err := json.Marshal(source)
		if err != nil {
			return nil, fmt.Errorf("encoding document field %q: %w", key, err)
		}
		fields[key] = raw
	}
	return fields, nil
}

// normalizeFolderKinds stamps the kind discriminant onto folders written
// before it existed: the reserved ids become system, everything else user.
func (d *Document) normalizeFolderKinds() {
	for id, f := range d.Folders {
		switch {
		case id == FolderIDRoot || id == FolderIDFavorites:
			f.Kind = FolderKindSystem
		case f.Kind == "":
			f.Kind = FolderKindUser
		}
		d.Folders[id] = f
	}
}

// PushHistory prepends the entry (newest first) and trims the log to
// HistoryCap records.
func (d *Document) PushHistory(item HistoryItem) {
	d.History = append([]HistoryItem{item}, d.History...)
	if len(d.History) > HistoryCap {
		d.History = d.History[:HistoryCap]
	}
}

package models

import "time"

// Theme selects the UI color scheme.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// Settings is the single user-preferences record. It has no relational
// invariants; partial updates merge over existing fields.
type Settings struct {
	Theme                 Theme      `json:"theme"`
	Language              string     `json:"language"`
	DefaultPromptLanguage string     `json:"defaultPromptLanguage"`
	Categories            []string   `json:"categories"`
	SyncEnabled           bool       `json:"syncEnabled"`
	SyncInterval          int        `json:"syncInterval"` // minutes
	LastSyncAt            *time.Time `json:"lastSyncAt"`
}

// SettingsPatch is a partial update. Nil fields are left untouched; a nil
// Categories slice means "unchanged".
type SettingsPatch struct {
	Theme                 *Theme
	Language              *string
	DefaultPromptLanguage *string
	Categories            []string
	SyncEnabled           *bool
	SyncInterval          *int
	LastSyncAt            *time.Time
}

// Apply merges the patch into s.
func (s *Settings) Apply(patch SettingsPatch) {
	if patch.Theme != nil {
		s.Theme = *patch.Theme
	}
	if patch.Language != nil {
		s.Language = *patch.Language
	}
	if patch.DefaultPromptLanguage != nil {
		s.DefaultPromptLanguage = *patch.DefaultPromptLanguage
	}
	if patch.Categories != nil {
		s.Categories = patch.Categories
	}
	if patch.SyncEnabled != nil {
		s.SyncEnabled = *patch.SyncEnabled
	}
	if patch.SyncInterval != nil {
		s.SyncInterval = *patch.SyncInterval
	}
	if patch.LastSyncAt != nil {
		s.LastSyncAt = patch.LastSyncAt
	}
}

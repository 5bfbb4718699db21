package models

import (
	"strings"
	"time"
)

// Source tells whether a prompt was created locally or pulled from a remote
// marketplace account.
type Source string

const (
	SourceLocal  Source = "local"
	SourceRemote Source = "remote"
)

// Status is the publication state of a prompt.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// Prompt is a reusable text template. Content may embed {{placeholder}}
// markers; the store treats them as opaque text.
type Prompt struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Description string `json:"description"`
	Tags        []string `json:"tags"`
	Language    string   `json:"language"`
	Category    string   `json:"category"`

	AuthorID   string `json:"authorId"`
	AuthorName string `json:"authorName"`
	Source     Source `json:"source"`
	Status     Status `json:"status"`

	Rating     float64    `json:"rating"`
	Downloads  int        `json:"downloads"`
	IsFavorite bool       `json:"isFavorite"`
	LastUsedAt *time.Time `json:"lastUsedAt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Version starts at 1 and is incremented on every content edit.
	// Recording a use is not an edit and leaves it unchanged.
	Version   int  `json:"version"`
	IsDeleted bool `json:"isDeleted"`

	// Reserved for a future sync implementation.
	RemoteID *string    `json:"remoteId"`
	SyncedAt *time.Time `json:"syncedAt"`
}

// PromptDraft is the caller-supplied part of a new prompt: everything except
// the fields the store assigns on creation (id, timestamps, version, the
// soft-delete flag).
type PromptDraft struct {
	Title       string
	Content     string
	Description string
	Tags        []string
	Language    string
	Category    string
	AuthorID    string
	AuthorName  string
	Source      Source
	Status      Status
	Rating      float64
	Downloads   int
	IsFavorite  bool
	LastUsedAt  *time.Time
	RemoteID    *string
	SyncedAt    *time.Time
}

// NewPrompt materializes the draft into a freshly created prompt.
func (d PromptDraft) NewPrompt(id string, now time.Time) Prompt {
	return Prompt{
		ID:          id,
		Title:       d.Title,
		Content:     d.Content,
		Description: d.Description,
		Tags:        d.Tags,
		Language:    d.Language,
		Category:    d.Category,
		AuthorID:    d.AuthorID,
		AuthorName:  d.AuthorName,
		Source:      d.Source,
		Status:      d.Status,
		Rating:      d.Rating,
		Downloads:   d.Downloads,
		IsFavorite:  d.IsFavorite,
		LastUsedAt:  d.LastUsedAt,
		CreatedAt:   now,
		UpdatedAt:   now,
		Version:     1,
		IsDeleted:   false,
		RemoteID:    d.RemoteID,
		SyncedAt:    d.SyncedAt,
	}
}

// PromptPatch is a partial update. Nil fields are left untouched; a nil Tags
// slice means "unchanged" (an empty non-nil slice clears the tags).
type PromptPatch struct {
	Title       *string
	Content     *string
	Description *string
	Tags        []string
	Language    *string
	Category    *string
	AuthorID    *string
	AuthorName  *string
	Rating      *float64
	IsFavorite  *bool
	Source      *Source
	Status      *Status
	RemoteID    *string
	SyncedAt    *time.Time
}

// Apply merges the patch into p. Bookkeeping fields (UpdatedAt, Version) are
// the caller's responsibility.
func (p *Prompt) Apply(patch PromptPatch) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Tags != nil {
		p.Tags = patch.Tags
	}
	if patch.Language != nil {
		p.Language = *patch.Language
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.AuthorID != nil {
		p.AuthorID = *patch.AuthorID
	}
	if patch.AuthorName != nil {
		p.AuthorName = *patch.AuthorName
	}
	if patch.Rating != nil {
		p.Rating = *patch.Rating
	}
	if patch.IsFavorite != nil {
		p.IsFavorite = *patch.IsFavorite
	}
	if patch.Source != nil {
		p.Source = *patch.Source
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.RemoteID != nil {
		p.RemoteID = patch.RemoteID
	}
	if patch.SyncedAt != nil {
		p.SyncedAt = patch.SyncedAt
	}
}

// MatchesQuery reports whether the prompt matches a case-insensitive
// substring search over title, content, description and tags.
func (p *Prompt) MatchesQuery(query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Content), q) ||
		strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

package models

import (
	"slices"
	"time"
)

// FolderKind discriminates folders the store guarantees (system) from
// folders the user created. Mutation guards branch on the kind, not on
// well-known id strings.
type FolderKind string

const (
	FolderKindSystem FolderKind = "system"
	FolderKindUser   FolderKind = "user"
)

// Well-known ids of the two system folders. They are part of the on-storage
// contract and referenced by export files, so they stay stable.
const (
	FolderIDRoot      = "root"
	FolderIDFavorites = "favorites"
)

// Folder is a named collection referencing prompts by id. Folders never own
// prompt lifecycle: deleting a folder keeps its prompts, while deleting a
// prompt removes its id from every folder.
type Folder struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Kind        FolderKind `json:"kind"`
	PromptIDs   []string   `json:"promptIds"`
	ParentID    *string    `json:"parentId"`
	Icon        *string    `json:"icon"`
	Color       *string    `json:"color"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	IsExpanded  bool       `json:"isExpanded"`
	Position    int        `json:"position"`
}

// IsSystem reports whether the folder is store-guaranteed: it can never be
// deleted and its name and parent can never change.
func (f Folder) IsSystem() bool {
	return f.Kind == FolderKindSystem
}

// HasPrompt reports whether the folder references the given prompt id.
func (f Folder) HasPrompt(id string) bool {
	return slices.Contains(f.PromptIDs, id)
}

// AttachPrompt appends the prompt id unless it is already present.
// It reports whether the membership list changed.
func (f *Folder) AttachPrompt(id string) bool {
	if f.HasPrompt(id) {
		return false
	}
	f.PromptIDs = append(f.PromptIDs, id)
	return true
}

// DetachPrompt removes every occurrence of the prompt id.
// It reports whether the membership list changed.
func (f *Folder) DetachPrompt(id string) bool {
	before := len(f.PromptIDs)
	f.PromptIDs = slices.DeleteFunc(f.PromptIDs, func(pid string) bool {
		return pid == id
	})
	return len(f.PromptIDs) != before
}

// FolderDraft is the caller-supplied part of a new folder. The store assigns
// id and timestamps and always creates user-kind folders.
type FolderDraft struct {
	Name        string
	Description string
	PromptIDs   []string
	ParentID    *string
	Icon        *string
	Color       *string
	IsExpanded  bool
	Position    int
}

// NewFolder materializes the draft into a freshly created user folder.
func (d FolderDraft) NewFolder(id string, now time.Time) Folder {
	return Folder{
		ID:          id,
		Name:        d.Name,
		Description: d.Description,
		Kind:        FolderKindUser,
		PromptIDs:   d.PromptIDs,
		ParentID:    d.ParentID,
		Icon:        d.Icon,
		Color:       d.Color,
		CreatedAt:   now,
		UpdatedAt:   now,
		IsExpanded:  d.IsExpanded,
		Position:    d.Position,
	}
}

// FolderPatch is a partial update. Nil fields are left untouched; a nil
// PromptIDs slice means "unchanged".
type FolderPatch struct {
	Name        *string
	Description *string
	PromptIDs   []string
	ParentID    *string
	Icon        *string
	Color       *string
	IsExpanded  *bool
	Position    *int
}

// TouchesIdentity reports whether the patch changes fields that are frozen
// on system folders (name and parent).
func (p FolderPatch) TouchesIdentity() bool {
	return p.Name != nil || p.ParentID != nil
}

// Apply merges the patch into f. UpdatedAt is the caller's responsibility.
func (f *Folder) Apply(patch FolderPatch) {
	if patch.Name != nil {
		f.Name = *patch.Name
	}
	if patch.Description != nil {
		f.Description = *patch.Description
	}
	if patch.PromptIDs != nil {
		f.PromptIDs = patch.PromptIDs
	}
	if patch.ParentID != nil {
		f.ParentID = patch.ParentID
	}
	if patch.Icon != nil {
		f.Icon = patch.Icon
	}
	if patch.Color != nil {
		f.Color = patch.Color
	}
	if patch.IsExpanded != nil {
		f.IsExpanded = *patch.IsExpanded
	}
	if patch.Position != nil {
		f.Position = *patch.Position
	}
}

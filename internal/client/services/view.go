// Package services contains application services for the prompt library
// client: read-side views over the repositories, data transfer
// (export/import) and local session management.
package services

import (
	"context"
	"fmt"

	"slices"

	"github.com/codamon/immersive-prompt/internal/client/models"
	"github.com/codamon/immersive-prompt/internal/client/repositories/prompts"
)

// SortOrder selects how a prompt listing is ordered for display.
type SortOrder string

const (
	// SortRecent orders by creation time, newest first.
	SortRecent SortOrder = "recent"
	// SortPopular orders by use count, most used first.
	SortPopular SortOrder = "popular"
	// SortTopRated orders by rating, highest first.
	SortTopRated SortOrder = "top"
)

// ViewService produces display-ready prompt listings. The repository
// guarantees no order, so every tab sorts explicitly.
type ViewService struct {
	prompts prompts.Repository
}

// NewViewService returns a view service over the given repository.
func NewViewService(repo prompts.Repository) *ViewService {
	return &ViewService{prompts: repo}
}

// List returns all live prompts sorted for the requested tab.
func (s *ViewService) List(ctx context.Context, order SortOrder) ([]models.Prompt, error) {
	items, err := s.prompts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing prompts for view: %w", err)
	}

	switch order {
	case SortPopular:
		slices.SortFunc(items, func(a, b models.Prompt) int {
			return b.Downloads - a.Downloads
		})
	case SortTopRated:
		slices.SortFunc(items, func(a, b models.Prompt) int {
			switch {
			case b.Rating > a.Rating:
				return 1
			case b.Rating < a.Rating:
				return -1
			default:
				return 0
			}
		})
	default: // SortRecent
		slices.SortFunc(items, func(a, b models.Prompt) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	}
	return items, nil
}

// Favorites returns the live prompts marked as favorite, newest first.
func (s *ViewService) Favorites(ctx context.Context) ([]models.Prompt, error) {
	items, err := s.prompts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing favorites: %w", err)
	}

	favs := make([]models.Prompt, 0)
	for _, p := range items {
		if p.IsFavorite {
			favs = append(favs, p)
		}
	}
	slices.SortFunc(favs, func(a, b models.Prompt) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return favs, nil
}

// Search returns the live prompts matching the query, newest first.
func (s *ViewService) Search(ctx context.Context, query string) ([]models.Prompt, error) {
	items, err := s.prompts.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("searching prompts for view: %w", err)
	}
	slices.SortFunc(items, func(a, b models.Prompt) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return items, nil
}

package models

import "time"

// HistoryAction classifies a recorded mutation.
type HistoryAction string

const (
	ActionUsed    HistoryAction = "used"
	ActionCreated HistoryAction = "created"
	ActionEdited  HistoryAction = "edited"
	ActionDeleted HistoryAction = "deleted"
)

// HistoryCap is the maximum number of retained history entries. The log is
// trimmed to this size on every append, oldest entries evicted first.
const HistoryCap = 100

// HistoryItem is an append-only audit record of a prompt mutation. Title and
// Content snapshot the prompt at the time of the action, so the record stays
// meaningful after later edits or deletion.
type HistoryItem struct {
	ID        string         `json:"id"`
	PromptID  string         `json:"promptId"`
	Title     string         `json:"title"`
	Content   string         `json:"content"`
	Action    HistoryAction  `json:"action"`
	Timestamp time.Time      `json:"timestamp"`
	Metadata  map[string]any `json:"metadata"`
}

// NewHistoryItem snapshots the prompt into a history record.
func NewHistoryItem(id string, p *Prompt, action HistoryAction, at time.Time) HistoryItem {
	return HistoryItem{
		ID:        id,
		PromptID:  p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Action:    action,
		Timestamp: at,
		Metadata:  map[string]any{},
	}
}

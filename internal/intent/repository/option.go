package repository

import (
	"time"

	"eindr-intent-engine/internal/model"
)

// CreateReminderOptions carries the fields for a new reminder record.
type CreateReminderOptions struct {
	UserID      string
	Title       string
	Description string
	Time        time.Time
}

// CreateNoteOptions carries the fields for a new note record.
type CreateNoteOptions struct {
	UserID  string
	Content string
	Source  string
}

// CreateLedgerEntryOptions carries the fields for a new ledger entry.
type CreateLedgerEntryOptions struct {
	UserID      string
	ContactName string
	Amount      float64
	Direction   model.LedgerDirection
}

// CreateChatLogOptions carries the fields for a new interaction log entry.
type CreateChatLogOptions struct {
	UserID          string
	Content         string
	InteractionType string
}

package model

import "time"

// Reminder is a persisted reminder record.
type Reminder struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Time        time.Time
	CreatedAt   time.Time
}

// Note is a persisted free-text note.
type Note struct {
	ID        string
	UserID    string
	Content   string
	Source    string // e.g. "voice_input"
	CreatedAt time.Time
}

// LedgerDirection encodes who owes whom, from the caller's point of view.
type LedgerDirection string

const (
	// DirectionOwe means the caller owes the contact.
	DirectionOwe LedgerDirection = "owe"
	// DirectionOwed means the contact owes the caller.
	DirectionOwed LedgerDirection = "owed"
)

// LedgerEntry is a persisted debt record between the caller and a contact.
type LedgerEntry struct {
	ID          string
	UserID      string
	ContactName string
	Amount      float64
	Direction   LedgerDirection
	CreatedAt   time.Time
}

// HistoryLog is a persisted conversational interaction.
type HistoryLog struct {
	ID              string
	UserID          string
	Content         string
	InteractionType string // e.g. "chit_chat"
	CreatedAt       time.Time
}

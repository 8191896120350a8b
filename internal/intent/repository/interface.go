package repository

import (
	"context"

	"eindr-intent-engine/internal/model"
)

// Store is the persistence collaborator consumed by the intent processors.
// Every Create call is independently transactional: it commits or rolls back
// on its own, so a failure while persisting one segment never touches the
// records of the segments before it.
type Store interface {
	CreateReminder(ctx context.Context, opt CreateReminderOptions) (model.Reminder, error)
	CreateNote(ctx context.Context, opt CreateNoteOptions) (model.Note, error)
	CreateLedgerEntry(ctx context.Context, opt CreateLedgerEntryOptions) (model.LedgerEntry, error)
	CreateChatLog(ctx context.Context, opt CreateChatLogOptions) (model.HistoryLog, error)
	UserExists(ctx context.Context, userID string) (bool, error)
}

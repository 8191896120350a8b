package postgre

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"eindr-intent-engine/internal/intent/repository"
	"eindr-intent-engine/internal/model"
)

// Each Create method runs inside its own transaction, acquired and released
// before the caller moves on to the next segment. A rollback here must never
// disturb rows committed for earlier segments.

// CreateReminder inserts a reminder row in its own transaction.
func (r *implStore) CreateReminder(ctx context.Context, opt repository.CreateReminderOptions) (model.Reminder, error) {
	const query = `
		INSERT INTO reminders (id, user_id, title, description, time, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $2, NOW())
		RETURNING id, user_id, title, description, time, created_at`

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("CreateReminder"), err)
		return model.Reminder{}, repository.ErrFailedToInsert
	}

	var rem model.Reminder
	err = tx.QueryRowContext(ctx, query, uuid.NewString(), opt.UserID, opt.Title, opt.Description, opt.Time).Scan(
		&rem.ID, &rem.UserID, &rem.Title, &rem.Description, &rem.Time, &rem.CreatedAt,
	)
	if err != nil {
		_ = tx.Rollback()
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateReminder"), err)
		return model.Reminder{}, repository.ErrFailedToInsert
	}
	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("CreateReminder"), err)
		return model.Reminder{}, repository.ErrFailedToInsert
	}
	return rem, nil
}

// CreateNote inserts a note row in its own transaction.
func (r *implStore) CreateNote(ctx context.Context, opt repository.CreateNoteOptions) (model.Note, error) {
	const query = `
		INSERT INTO notes (id, user_id, content, source, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, user_id, content, source, created_at`

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("CreateNote"), err)
		return model.Note{}, repository.ErrFailedToInsert
	}

	var note model.Note
	err = tx.QueryRowContext(ctx, query, uuid.NewString(), opt.UserID, opt.Content, opt.Source).Scan(
		&note.ID, &note.UserID, &note.Content, &note.Source, &note.CreatedAt,
	)
	if err != nil {
		_ = tx.Rollback()
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateNote"), err)
		return model.Note{}, repository.ErrFailedToInsert
	}
	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("CreateNote"), err)
		return model.Note{}, repository.ErrFailedToInsert
	}
	return note, nil
}

// CreateLedgerEntry inserts a ledger row in its own transaction.
func (r *implStore) CreateLedgerEntry(ctx context.Context, opt repository.CreateLedgerEntryOptions) (model.LedgerEntry, error) {
	const query = `
		INSERT INTO ledger_entries (id, user_id, contact_name, amount, direction, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, user_id, contact_name, amount, direction, created_at`

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("CreateLedgerEntry"), err)
		return model.LedgerEntry{}, repository.ErrFailedToInsert
	}

	var entry model.LedgerEntry
	err = tx.QueryRowContext(ctx, query, uuid.NewString(), opt.UserID, opt.ContactName, opt.Amount, opt.Direction).Scan(
		&entry.ID, &entry.UserID, &entry.ContactName, &entry.Amount, &entry.Direction, &entry.CreatedAt,
	)
	if err != nil {
		_ = tx.Rollback()
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateLedgerEntry"), err)
		return model.LedgerEntry{}, repository.ErrFailedToInsert
	}
	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("CreateLedgerEntry"), err)
		return model.LedgerEntry{}, repository.ErrFailedToInsert
	}
	return entry, nil
}

// CreateChatLog inserts an interaction log row in its own transaction.
func (r *implStore) CreateChatLog(ctx context.Context, opt repository.CreateChatLogOptions) (model.HistoryLog, error) {
	const query = `
		INSERT INTO history_logs (id, user_id, content, interaction_type, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, user_id, content, interaction_type, created_at`

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("CreateChatLog"), err)
		return model.HistoryLog{}, repository.ErrFailedToInsert
	}

	var hl model.HistoryLog
	err = tx.QueryRowContext(ctx, query, uuid.NewString(), opt.UserID, opt.Content, opt.InteractionType).Scan(
		&hl.ID, &hl.UserID, &hl.Content, &hl.InteractionType, &hl.CreatedAt,
	)
	if err != nil {
		_ = tx.Rollback()
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateChatLog"), err)
		return model.HistoryLog{}, repository.ErrFailedToInsert
	}
	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("CreateChatLog"), err)
		return model.HistoryLog{}, repository.ErrFailedToInsert
	}
	return hl, nil
}

// UserExists reports whether the user row exists. Plain read, no transaction.
func (r *implStore) UserExists(ctx context.Context, userID string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&exists); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("UserExists"), err)
		return false, repository.ErrFailedToQuery
	}
	return exists, nil
}

package postgre

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eindr-intent-engine/internal/intent/repository"
	"eindr-intent-engine/internal/model"
	"eindr-intent-engine/pkg/log"
)

func newMockStore(t *testing.T) (repository.Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db, log.NewNop()), mock
}

func TestCreateReminder(t *testing.T) {
	store, mock := newMockStore(t)
	due := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO reminders`).
		WithArgs(sqlmock.AnyArg(), "user-1", "Call John", "call John tomorrow", due).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "description", "time", "created_at"}).
			AddRow("rem-1", "user-1", "Call John", "call John tomorrow", due, time.Now()))
	mock.ExpectCommit()

	rem, err := store.CreateReminder(context.Background(), repository.CreateReminderOptions{
		UserID:      "user-1",
		Title:       "Call John",
		Description: "call John tomorrow",
		Time:        due,
	})
	require.NoError(t, err)
	assert.Equal(t, "rem-1", rem.ID)
	assert.Equal(t, "Call John", rem.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReminder_InsertFailureRollsBack(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO reminders`).
		WillReturnError(errors.New("pq: null value in column"))
	mock.ExpectRollback()

	_, err := store.CreateReminder(context.Background(), repository.CreateReminderOptions{
		UserID: "user-1",
		Title:  "Call John",
		Time:   time.Now(),
	})
	assert.ErrorIs(t, err, repository.ErrFailedToInsert)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateNote(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO notes`).
		WithArgs(sqlmock.AnyArg(), "user-1", "buy milk", "voice_input").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "content", "source", "created_at"}).
			AddRow("note-1", "user-1", "buy milk", "voice_input", time.Now()))
	mock.ExpectCommit()

	note, err := store.CreateNote(context.Background(), repository.CreateNoteOptions{
		UserID:  "user-1",
		Content: "buy milk",
		Source:  "voice_input",
	})
	require.NoError(t, err)
	assert.Equal(t, "note-1", note.ID)
	assert.Equal(t, "voice_input", note.Source)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateLedgerEntry(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO ledger_entries`).
		WithArgs(sqlmock.AnyArg(), "user-1", "John", 50.0, model.DirectionOwed).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "contact_name", "amount", "direction", "created_at"}).
			AddRow("led-1", "user-1", "John", 50.0, "owed", time.Now()))
	mock.ExpectCommit()

	entry, err := store.CreateLedgerEntry(context.Background(), repository.CreateLedgerEntryOptions{
		UserID:      "user-1",
		ContactName: "John",
		Amount:      50,
		Direction:   model.DirectionOwed,
	})
	require.NoError(t, err)
	assert.Equal(t, "led-1", entry.ID)
	assert.Equal(t, model.LedgerDirection("owed"), entry.Direction)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateLedgerEntry_FailureDoesNotCommit(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO ledger_entries`).
		WillReturnError(errors.New("pq: connection reset"))
	mock.ExpectRollback()

	_, err := store.CreateLedgerEntry(context.Background(), repository.CreateLedgerEntryOptions{
		UserID:      "user-1",
		ContactName: "John",
		Amount:      50,
		Direction:   model.DirectionOwe,
	})
	assert.ErrorIs(t, err, repository.ErrFailedToInsert)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateChatLog(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO history_logs`).
		WithArgs(sqlmock.AnyArg(), "user-1", "how are you", "chit_chat").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "content", "interaction_type", "created_at"}).
			AddRow("log-1", "user-1", "how are you", "chit_chat", time.Now()))
	mock.ExpectCommit()

	hl, err := store.CreateChatLog(context.Background(), repository.CreateChatLogOptions{
		UserID:          "user-1",
		Content:         "how are you",
		InteractionType: "chit_chat",
	})
	require.NoError(t, err)
	assert.Equal(t, "log-1", hl.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserExists(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := store.UserExists(context.Background(), "user-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserExists_QueryError(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("user-1").
		WillReturnError(errors.New("pq: relation does not exist"))

	_, err := store.UserExists(context.Background(), "user-1")
	assert.ErrorIs(t, err, repository.ErrFailedToQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

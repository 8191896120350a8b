package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eindr-intent-engine/internal/intent"
	"eindr-intent-engine/internal/intent/repository"
	"eindr-intent-engine/internal/model"
)

// errAmountNotFound is a per-segment failure, surfaced in the Outcome.
var errAmountNotFound = errors.New("could not extract amount from the text")

// dispatch routes one segment to its domain handler. Intents without a
// dedicated handler are logged as chat interactions so no utterance is
// silently dropped.
func (uc *implUseCase) dispatch(ctx context.Context, sc model.Scope, label intent.Label, text string, entities map[string]any) (map[string]any, error) {
	switch label {
	case intent.LabelCreateReminder:
		return uc.handleReminder(ctx, sc, text, entities)
	case intent.LabelCreateNote:
		return uc.handleNote(ctx, sc, text)
	case intent.LabelCreateLedger, intent.LabelAddExpense:
		return uc.handleLedger(ctx, sc, text, entities)
	case intent.LabelChitChat, intent.LabelGeneralQuery:
		return uc.handleChat(ctx, sc, text)
	default:
		uc.l.Warnf(ctx, "dispatch: no handler for intent %q, logging as chat", label)
		return uc.handleChat(ctx, sc, text)
	}
}

func (uc *implUseCase) handleReminder(ctx context.Context, sc model.Scope, text string, entities map[string]any) (map[string]any, error) {
	base := uc.now()
	due := uc.reminderTime(text, entities, base)
	person := extractPerson(entities, text)
	title := reminderTitle(text, person)
	description := strings.Trim(text, `"`)

	rem, err := uc.store.CreateReminder(ctx, repository.CreateReminderOptions{
		UserID:      sc.UserID,
		Title:       title,
		Description: description,
		Time:        due,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create reminder: %w", err)
	}

	uc.l.Infof(ctx, "handleReminder: created reminder %s for user %s", rem.ID, sc.UserID)

	return map[string]any{
		"reminder_id": rem.ID,
		"title":       title,
		"description": description,
		"time":        due.Format(time.RFC3339),
		"person":      person,
	}, nil
}

func (uc *implUseCase) handleNote(ctx context.Context, sc model.Scope, text string) (map[string]any, error) {
	content := strings.Trim(text, `"`)

	note, err := uc.store.CreateNote(ctx, repository.CreateNoteOptions{
		UserID:  sc.UserID,
		Content: content,
		Source:  "voice_input",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	uc.l.Infof(ctx, "handleNote: created note %s for user %s", note.ID, sc.UserID)

	return map[string]any{
		"note_id": note.ID,
		"content": content,
	}, nil
}

func (uc *implUseCase) handleLedger(ctx context.Context, sc model.Scope, text string, entities map[string]any) (map[string]any, error) {
	amount, ok := extractAmount(text, entities)
	if !ok {
		return nil, errAmountNotFound
	}

	person := extractPerson(entities, text)
	if person == "" {
		// A missing contact is not a failure. Standalone amounts like "$50"
		// still record against a placeholder.
		person = "Unknown Contact"
		uc.l.Infof(ctx, "handleLedger: no person found in %q, using placeholder", text)
	}

	direction := extractDirection(text)

	entry, err := uc.store.CreateLedgerEntry(ctx, repository.CreateLedgerEntryOptions{
		UserID:      sc.UserID,
		ContactName: person,
		Amount:      amount,
		Direction:   direction,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ledger entry: %w", err)
	}

	uc.l.Infof(ctx, "handleLedger: created ledger entry %s for user %s", entry.ID, sc.UserID)

	return map[string]any{
		"ledger_id":    entry.ID,
		"contact_name": person,
		"amount":       amount,
		"direction":    string(direction),
		"description":  ledgerDescription(person, amount, direction),
	}, nil
}

func (uc *implUseCase) handleChat(ctx context.Context, sc model.Scope, text string) (map[string]any, error) {
	content := strings.Trim(text, `"`)

	hl, err := uc.store.CreateChatLog(ctx, repository.CreateChatLogOptions{
		UserID:          sc.UserID,
		Content:         content,
		InteractionType: "chit_chat",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to log chat interaction: %w", err)
	}

	uc.l.Infof(ctx, "handleChat: created chat log %s for user %s", hl.ID, sc.UserID)

	return map[string]any{
		"log_id":           hl.ID,
		"content":          content,
		"interaction_type": "chit_chat",
	}, nil
}

func ledgerDescription(person string, amount float64, direction model.LedgerDirection) string {
	amt := formatAmount(amount)
	if person == "Unknown Contact" {
		return fmt.Sprintf("Amount: $%s (direction: %s)", amt, direction)
	}
	verb := "owed"
	if direction == model.DirectionOwe {
		verb = "owes"
	}
	return fmt.Sprintf("%s %s $%s", person, verb, amt)
}

package usecase

import (
	"context"
	"fmt"

	"eindr-intent-engine/internal/intent"
	"eindr-intent-engine/internal/model"
)

// Process routes already-classified intent data through the per-segment
// handlers. Both request shapes converge on processSegments.
func (uc *implUseCase) Process(ctx context.Context, sc model.Scope, input intent.ProcessInput) (intent.AggregateResult, error) {
	intents := input.Intents
	originalText := input.OriginalText

	if input.Single != nil {
		c := *input.Single
		if originalText == "" {
			originalText = c.OriginalText
		}
		intents = []intent.Segment{{
			TextSegment: c.OriginalText,
			Type:        c.Intent,
			Confidence:  c.Confidence,
			Entities:    c.Entities,
		}}
	}

	return uc.processSegments(ctx, sc, intents, originalText)
}

// processSegments validates the user once, then processes every segment in
// order with its own isolated persistence transaction. A segment failure is
// recorded in its Outcome and never stops the loop or disturbs the segments
// already committed.
func (uc *implUseCase) processSegments(ctx context.Context, sc model.Scope, intents []intent.Segment, originalText string) (intent.AggregateResult, error) {
	if len(intents) == 0 {
		return intent.AggregateResult{}, intent.ErrNoIntents
	}

	exists, err := uc.store.UserExists(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "processSegments: user lookup failed for %s: %v", sc.UserID, err)
		return intent.AggregateResult{}, err
	}
	if !exists {
		return intent.AggregateResult{}, intent.ErrUserNotFound
	}

	results := make([]intent.Outcome, 0, len(intents))
	successful := 0

	for i, seg := range intents {
		textSegment := seg.TextSegment
		if textSegment == "" {
			textSegment = originalText
		}

		uc.l.Infof(ctx, "processSegments: intent %d/%d %s (confidence %.2f)", i+1, len(intents), seg.Type, seg.Confidence)

		outcome := intent.Outcome{
			Intent:      seg.Type,
			TextSegment: textSegment,
			Position:    i + 1,
		}

		data, handleErr := uc.dispatch(ctx, sc, seg.Type, textSegment, seg.Entities)
		if handleErr != nil {
			outcome.Error = handleErr.Error()
			uc.l.Warnf(ctx, "processSegments: intent %d failed: %v", i+1, handleErr)
		} else {
			outcome.Success = true
			outcome.Data = data
			successful++
		}

		results = append(results, outcome)
	}

	overall := successful == len(results)
	message := fmt.Sprintf("Processed %d intents successfully", len(results))
	if !overall {
		message = fmt.Sprintf("Processed %d intents (with some failures)", len(results))
	}

	uc.l.Infof(ctx, "processSegments: completed %d intents, overall_success=%t", len(results), overall)

	return intent.AggregateResult{
		Success:           overall,
		Message:           message,
		Results:           results,
		TotalIntents:      len(intents),
		SuccessfulIntents: successful,
		OriginalText:      originalText,
	}, nil
}

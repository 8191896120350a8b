package usecase

import (
	"context"

	"eindr-intent-engine/internal/intent"
	"eindr-intent-engine/internal/model"
)

// Interpret runs the full pipeline: segment the text, classify every segment,
// route each to its handler, and aggregate the outcomes.
func (uc *implUseCase) Interpret(ctx context.Context, sc model.Scope, input intent.InterpretInput) (intent.AggregateResult, error) {
	mc, err := uc.Classify(ctx, input.Text, input.MultiIntent)
	if err != nil {
		return intent.AggregateResult{}, err
	}

	uc.l.Infof(ctx, "Interpret: user=%s intents=%d", sc.UserID, len(mc.Intents))

	return uc.processSegments(ctx, sc, mc.Intents, mc.OriginalText)
}

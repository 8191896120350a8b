package intent

import (
	"context"

	"eindr-intent-engine/internal/model"
)

// UseCase defines the business logic interface for the intent domain.
type UseCase interface {
	// Interpret runs the full pipeline on raw text: segment, classify each
	// segment, route each to its domain handler, and aggregate the outcomes.
	Interpret(ctx context.Context, sc model.Scope, input InterpretInput) (AggregateResult, error)

	// Classify segments and classifies text without persisting anything.
	// With multiIntent false the whole text is treated as one segment.
	Classify(ctx context.Context, text string, multiIntent bool) (MultiClassification, error)

	// Process routes already-classified intent data (either request shape)
	// through the per-segment handlers and aggregates the outcomes.
	Process(ctx context.Context, sc model.Scope, input ProcessInput) (AggregateResult, error)
}

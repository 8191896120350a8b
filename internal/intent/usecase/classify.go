package usecase

import (
	"context"
	"strings"

	"eindr-intent-engine/internal/intent"
)

// Classify segments and classifies text without touching persistence. With
// multiIntent false the whole text becomes a single segment.
func (uc *implUseCase) Classify(ctx context.Context, text string, multiIntent bool) (intent.MultiClassification, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return intent.MultiClassification{}, intent.ErrEmptyInput
	}

	segments := []string{trimmed}
	if multiIntent {
		segments = uc.seg.Split(trimmed)
	}

	uc.l.Infof(ctx, "Classify: %d segment(s) from input_length=%d", len(segments), len(trimmed))

	intents := make([]intent.Segment, 0, len(segments))
	for _, seg := range segments {
		c := uc.cls.Classify(seg)
		intents = append(intents, intent.Segment{
			TextSegment: seg,
			Type:        c.Intent,
			Confidence:  c.Confidence,
			Entities:    c.Entities,
		})
	}

	return intent.MultiClassification{
		Intents:      intents,
		OriginalText: trimmed,
	}, nil
}

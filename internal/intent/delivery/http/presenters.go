package http

import (
	"errors"
	"strings"

	"eindr-intent-engine/internal/intent"
)

// --- Request DTOs ---

type interpretReq struct {
	Text        string `json:"text" binding:"required"`
	MultiIntent *bool  `json:"multi_intent"`
}

func (r interpretReq) validate() error { return nil }

func (r interpretReq) toInput() intent.InterpretInput {
	multi := true
	if r.MultiIntent != nil {
		multi = *r.MultiIntent
	}
	return intent.InterpretInput{
		Text:        r.Text,
		MultiIntent: multi,
	}
}

// ---

type classifyReq struct {
	Text        string `json:"text" binding:"required"`
	MultiIntent *bool  `json:"multi_intent"`
}

func (r classifyReq) validate() error { return nil }

func (r classifyReq) multi() bool {
	if r.MultiIntent != nil {
		return *r.MultiIntent
	}
	return true
}

// ---

// processReq accepts both classification shapes. A non-nil intents array
// selects the multi-intent form, even when empty; otherwise the top-level
// fields are read as a single classification.
type processReq struct {
	Intent       string           `json:"intent"`
	Confidence   float64          `json:"confidence"`
	Entities     map[string]any   `json:"entities"`
	Intents      []processSegment `json:"intents"`
	OriginalText string           `json:"original_text"`
}

type processSegment struct {
	TextSegment string         `json:"text_segment"`
	Type        string         `json:"type"`
	Confidence  float64        `json:"confidence"`
	Entities    map[string]any `json:"entities"`
}

func (r processReq) validate() error {
	if r.Intents == nil && strings.TrimSpace(r.Intent) == "" {
		return errors.New("either intent or intents is required")
	}
	return nil
}

func (r processReq) toInput() intent.ProcessInput {
	if r.Intents != nil {
		segments := make([]intent.Segment, len(r.Intents))
		for i, s := range r.Intents {
			segments[i] = intent.Segment{
				TextSegment: s.TextSegment,
				Type:        intent.Label(strings.ToLower(s.Type)),
				Confidence:  s.Confidence,
				Entities:    s.Entities,
			}
		}
		return intent.ProcessInput{
			Intents:      segments,
			OriginalText: r.OriginalText,
		}
	}

	return intent.ProcessInput{
		Single: &intent.Classification{
			Intent:       intent.Label(strings.ToLower(r.Intent)),
			Confidence:   r.Confidence,
			Entities:     r.Entities,
			OriginalText: r.OriginalText,
		},
		OriginalText: r.OriginalText,
	}
}

// --- Response DTOs ---

type outcomeResp struct {
	Success     bool           `json:"success"`
	Intent      string         `json:"intent"`
	TextSegment string         `json:"text_segment"`
	Position    int            `json:"position"`
	Data        map[string]any `json:"data,omitempty"`
	Error       string         `json:"error,omitempty"`
}

type aggregateResp struct {
	Success           bool          `json:"success"`
	Message           string        `json:"message"`
	Results           []outcomeResp `json:"results"`
	TotalIntents      int           `json:"total_intents"`
	SuccessfulIntents int           `json:"successful_intents"`
	OriginalText      string        `json:"original_text"`
}

func (h *handler) newAggregateResp(out intent.AggregateResult) aggregateResp {
	results := make([]outcomeResp, len(out.Results))
	for i, r := range out.Results {
		results[i] = outcomeResp{
			Success:     r.Success,
			Intent:      string(r.Intent),
			TextSegment: r.TextSegment,
			Position:    r.Position,
			Data:        r.Data,
			Error:       r.Error,
		}
	}
	return aggregateResp{
		Success:           out.Success,
		Message:           out.Message,
		Results:           results,
		TotalIntents:      out.TotalIntents,
		SuccessfulIntents: out.SuccessfulIntents,
		OriginalText:      out.OriginalText,
	}
}

type segmentResp struct {
	TextSegment string         `json:"text_segment"`
	Type        string         `json:"type"`
	Confidence  float64        `json:"confidence"`
	Entities    map[string]any `json:"entities"`
}

type classifyResp struct {
	Intents      []segmentResp `json:"intents"`
	OriginalText string        `json:"original_text"`
}

func (h *handler) newClassifyResp(out intent.MultiClassification) classifyResp {
	intents := make([]segmentResp, len(out.Intents))
	for i, s := range out.Intents {
		intents[i] = segmentResp{
			TextSegment: s.TextSegment,
			Type:        string(s.Type),
			Confidence:  s.Confidence,
			Entities:    s.Entities,
		}
	}
	return classifyResp{
		Intents:      intents,
		OriginalText: out.OriginalText,
	}
}

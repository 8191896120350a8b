// Package segmenter splits one utterance into an ordered list of text
// segments, each assumed to carry exactly one intent. Splitting is
// best-effort and never fails: ambiguity resolves toward fewer, longer
// segments, since a merged segment still classifies (with noisy entities)
// while a wrong split silently drops content.
package segmenter

import (
	"regexp"
	"sort"
	"strings"
)

const (
	// lookaheadWindow is how far past a standalone "and " the fallback
	// heuristic scans for cues of a new intent.
	lookaheadWindow = 50

	// minSegmentLen drops connective-only artifacts after cleaning.
	minSegmentLen = 3
)

// separatorPatterns are conjunction markers that start a new intent.
// Keyword markers are case-insensitive; name-based markers require a
// capitalized proper noun.
var separatorPatterns = []*regexp.Regexp{
	// Primary action-based separators: "and set", "and also create", "also remind", ...
	regexp.MustCompile(`(?i)\band\s+(?:also\s+)?(?:set|create|add|make|remind)`),
	regexp.MustCompile(`(?i)\balso\s+(?:set|create|add|make|remind)`),
	regexp.MustCompile(`(?i)\bthen\s+(?:set|create|add|make|remind)`),
	regexp.MustCompile(`(?i)\bplus\s+(?:set|create|add|make|remind)`),

	// Name-based separators for ledger entries: "and John owes", "and Sarah lent"
	regexp.MustCompile(`\band\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?\s+(?:owes?|owed?|borrowed?|lent)`),
	regexp.MustCompile(`\band\s+[Ii]\s+(?:owe|borrowed|lent)`),
	regexp.MustCompile(`\band\s+[A-Z][a-z]+\s+(?:will\s+)?(?:give|pay)`),

	// General "and" separators for a change of intent: "and I want", "and note"
	regexp.MustCompile(`\band\s+[Ii]\s+(?:want|need|have to|should)`),
	regexp.MustCompile(`(?i)\band\s+(?:remind|note|track|record)`),

	// Monetary separators: "and $50", "and 50 dollars"
	regexp.MustCompile(`(?i)\band\s+(?:\$\d+|\d+\s*dollars?)`),
}

// fallbackAnd finds standalone "and " occurrences for the fallback heuristic.
var fallbackAnd = regexp.MustCompile(`(?i)\band\s+`)

// fallbackCues are lexical hints that the text after an "and" starts a new,
// distinct intent.
var fallbackCues = []string{
	"remind", "note", "owe", "want", "need", "have to", "should",
	"i ", "john", "sarah", "mike", "$", "dollar", "track", "record",
}

// leadingConnective strips a connective left attached to a segment's start.
var leadingConnective = regexp.MustCompile(`(?i)^\s*(?:and|also|then|plus)\s+`)

var aggressiveAnd = regexp.MustCompile(`(?i)\s+and\s+`)

// Segmenter cuts utterances into per-intent slices.
type Segmenter struct{}

// New creates a Segmenter.
func New() *Segmenter {
	return &Segmenter{}
}

// Split returns the ordered, cleaned segments of text. The result always has
// at least one element: the trimmed input if nothing else worked.
func (s *Segmenter) Split(text string) []string {
	cuts := findSeparatorOffsets(text)
	if len(cuts) == 0 {
		cuts = findFallbackOffsets(text)
	}
	if len(cuts) == 0 {
		return []string{strings.TrimSpace(text)}
	}

	segments := cutAt(text, cuts)
	cleaned := cleanSegments(segments)

	// Everything collapsed even though separators existed: fall back to a
	// literal split on every " and ".
	if len(cleaned) <= 1 {
		if pieces := aggressiveSplit(text); len(pieces) > 1 {
			cleaned = pieces
		}
	}

	if len(cleaned) == 0 {
		return []string{strings.TrimSpace(text)}
	}
	return cleaned
}

// findSeparatorOffsets returns the sorted, deduplicated start offsets of every
// separator pattern match.
func findSeparatorOffsets(text string) []int {
	seen := map[int]bool{}
	var offsets []int
	for _, re := range separatorPatterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			if !seen[loc[0]] {
				seen[loc[0]] = true
				offsets = append(offsets, loc[0])
			}
		}
	}
	sort.Ints(offsets)
	return offsets
}

// findFallbackOffsets scans for standalone "and " followed within the
// lookahead window by a cue indicating a new intent.
func findFallbackOffsets(text string) []int {
	var offsets []int
	for _, loc := range fallbackAnd.FindAllStringIndex(text, -1) {
		end := loc[1] + lookaheadWindow
		if end > len(text) {
			end = len(text)
		}
		following := strings.ToLower(text[loc[1]:end])
		for _, cue := range fallbackCues {
			if strings.Contains(following, cue) {
				offsets = append(offsets, loc[0])
				break
			}
		}
	}
	return offsets
}

// cutAt slices text at each offset; the separator text stays attached to the
// start of the segment that follows it.
func cutAt(text string, offsets []int) []string {
	var segments []string
	last := 0
	for _, off := range offsets {
		if off > last {
			if seg := strings.TrimSpace(text[last:off]); seg != "" {
				segments = append(segments, seg)
			}
		}
		last = off
	}
	if last < len(text) {
		if seg := strings.TrimSpace(text[last:]); seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}

// cleanSegments strips leading connectives and drops connective-only
// artifacts.
func cleanSegments(segments []string) []string {
	var cleaned []string
	for _, seg := range segments {
		c := strings.TrimSpace(leadingConnective.ReplaceAllString(seg, ""))
		if len(c) > minSegmentLen {
			cleaned = append(cleaned, c)
		}
	}
	return cleaned
}

func aggressiveSplit(text string) []string {
	var pieces []string
	for _, p := range aggressiveAnd.Split(text, -1) {
		if p = strings.TrimSpace(p); p != "" {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

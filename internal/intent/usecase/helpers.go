package usecase

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"eindr-intent-engine/internal/intent"
	"eindr-intent-engine/internal/model"
)

// contactPatterns find a contact name (one or two capitalized words) in a
// segment. Broader than the classifier's single-word cues: these resolve the
// name persisted against ledger and reminder records.
var contactPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:call|contact|meet|see|tell|remind)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\b`),
	regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\s+(?:owes?|owed?)\b`),
	regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\s+(?:will\s+)?(?:give|pay)\b`),
	regexp.MustCompile(`\b(?:to|about|with)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\b`),
	regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\s+borrowed\b`),
	regexp.MustCompile(`\bborrowed\s+from\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\b`),
	regexp.MustCompile(`\blent\s+to\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\b`),
	regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\s+lent\b`),
	regexp.MustCompile(`\b(?:record|note)\s+that\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\b`),
}

var (
	dollarAmountPattern  = regexp.MustCompile(`\$(\d+(?:\.\d{2})?)`)
	numberAmountPattern  = regexp.MustCompile(`(?i)(\d+(?:\.\d{2})?)\s*(?:dollars?|bucks?)`)
	writtenAmountPattern = regexp.MustCompile(`(?i)(one|two|three|four|five|six|seven|eight|nine|ten)\s*(?:dollars?|bucks?)`)
)

var writtenNumbers = map[string]float64{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

// actionWords drive reminder title generation, checked in order.
var actionWords = []string{"call", "meet", "contact", "email", "text", "visit", "pick up", "buy", "do"}

// reminderTime resolves a due instant, preferring already-extracted clock
// groups over a fresh scan of the text. Group parse failures fall back to the
// text scan; the scan itself never fails (it defaults to base plus one hour).
func (uc *implUseCase) reminderTime(text string, entities map[string]any, base time.Time) time.Time {
	if groups := stringGroups(entities[intent.EntityTime]); len(groups) >= 2 {
		ampm := ""
		if len(groups) > 2 {
			ampm = groups[2]
		}
		if t, ok := uc.resolver.FromClock(groups[0], groups[1], ampm, base); ok {
			return t
		}
	}
	return uc.resolver.ResolveDue(text, base)
}

// stringGroups normalizes an entity value to its captured groups. Values
// arrive as []string from in-process classification and as []any after a JSON
// round trip.
func stringGroups(v any) []string {
	switch g := v.(type) {
	case []string:
		return g
	case []any:
		out := make([]string, 0, len(g))
		for _, e := range g {
			s, _ := e.(string)
			out = append(out, s)
		}
		return out
	}
	return nil
}

// extractPerson prefers the entity value, then falls back to scanning the
// segment. An empty result means no contact was detected.
func extractPerson(entities map[string]any, text string) string {
	if v, ok := entities[intent.EntityPerson]; ok {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	for _, re := range contactPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// extractAmount prefers the entity value, then scans the segment for dollar,
// numeric, and written amounts.
func extractAmount(text string, entities map[string]any) (float64, bool) {
	switch v := entities[intent.EntityAmount].(type) {
	case string:
		if f, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", ""), 64); err == nil {
			return f, true
		}
	case float64:
		return v, true
	case int:
		return float64(v), true
	}

	if m := dollarAmountPattern.FindStringSubmatch(text); m != nil {
		if f, err := strconv.ParseFloat(m[1], 64); err == nil {
			return f, true
		}
	}
	if m := numberAmountPattern.FindStringSubmatch(text); m != nil {
		if f, err := strconv.ParseFloat(m[1], 64); err == nil {
			return f, true
		}
	}
	if m := writtenAmountPattern.FindStringSubmatch(text); m != nil {
		if f, ok := writtenNumbers[strings.ToLower(m[1])]; ok {
			return f, true
		}
	}
	return 0, false
}

// extractDirection decides who owes whom. "owed" means the contact owes the
// user; "owe" means the user owes the contact.
func extractDirection(text string) model.LedgerDirection {
	lower := strings.ToLower(text)

	for _, phrase := range []string{"owes me", "borrowed from me", "lent to"} {
		if strings.Contains(lower, phrase) {
			return model.DirectionOwed
		}
	}
	for _, phrase := range []string{"i owe", "borrowed from", "lent me"} {
		if strings.Contains(lower, phrase) {
			return model.DirectionOwe
		}
	}
	// Bare "owe" most commonly reads as "John owes me $50".
	if strings.Contains(lower, "owe") {
		return model.DirectionOwed
	}
	return model.DirectionOwe
}

// reminderTitle builds a concise title from the segment's first action word
// and contact, falling back to the first few words.
func reminderTitle(text, person string) string {
	clean := strings.ToLower(strings.Trim(text, `"`))

	for _, action := range actionWords {
		if !strings.Contains(clean, action) {
			continue
		}
		if person != "" {
			return capitalize(action) + " " + person
		}
		_, rest, _ := strings.Cut(clean, action)
		if fields := strings.Fields(rest); len(fields) > 0 {
			return strings.TrimSpace(capitalize(action) + " " + fields[0])
		}
		return capitalize(action)
	}

	if person != "" {
		return "Reminder about " + person
	}

	words := strings.Fields(clean)
	if len(words) > 4 {
		words = words[:4]
	}
	return capitalize(strings.Join(words, " "))
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

package classifier

import (
	"regexp"
	"strings"

	"eindr-intent-engine/internal/intent"
)

// Entity extraction is independent of the matched intent label; every
// extractor runs on every segment and the first matching pattern of each
// family wins. Values stay raw (captured groups / strings) — resolving them
// to concrete instants or numbers is a handler concern.

var timePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(\d{1,2}):(\d{2})\s*(am|pm)?\b`),
	regexp.MustCompile(`\b(\d{1,2})\s*(am|pm)\b`),
	regexp.MustCompile(`\bat\s+(\d{1,2}):?(\d{2})?\s*(am|pm)?\b`),
}

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(today|tomorrow|yesterday)\b`),
	regexp.MustCompile(`\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`),
	regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`),
}

// personPatterns run against the original text: capitalization is the signal.
var personPatterns = []*regexp.Regexp{
	// General conversation: "call John", "meet Sarah", "with Mike"
	regexp.MustCompile(`\bcall\s+([A-Z][a-z]+)\b`),
	regexp.MustCompile(`\bmeet\s+([A-Z][a-z]+)\b`),
	regexp.MustCompile(`\bwith\s+([A-Z][a-z]+)\b`),

	// Ledger/financial: "John owes", "owes John", "John will pay", "pay John"
	regexp.MustCompile(`\b([A-Z][a-z]+)\s+(?:owes?|owed?|borrowed?|lent)`),
	regexp.MustCompile(`(?:owes?|owed?|borrowed?|lent)\s+([A-Z][a-z]+)`),
	regexp.MustCompile(`\b([A-Z][a-z]+)\s+(?:will\s+)?(?:give|pay)`),
	regexp.MustCompile(`(?:give|pay)\s+([A-Z][a-z]+)`),
	regexp.MustCompile(`\b([A-Z][a-z]+)\s+.*?\$\d+`),
	regexp.MustCompile(`\$\d+.*?\b([A-Z][a-z]+)`),

	// Additional: "John and", "from John", "to John"
	regexp.MustCompile(`\b([A-Z][a-z]+)\s+(?:and|&)`),
	regexp.MustCompile(`(?:from|to)\s+([A-Z][a-z]+)`),
}

var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$(\d+(?:,\d{3})*(?:\.\d{2})?)`),
	regexp.MustCompile(`(\d+(?:,\d{3})*(?:\.\d{2})?)\s*dollars?`),
	regexp.MustCompile(`(\d+(?:,\d{3})*(?:\.\d{2})?)\s*bucks?`),
}

// ExtractEntities pulls time, date, person, and amount values out of text.
// A missing key means "not detected" — never an error.
func ExtractEntities(text string) map[string]any {
	entities := map[string]any{}
	lower := strings.ToLower(text)

	for _, re := range timePatterns {
		if m := re.FindStringSubmatch(lower); m != nil {
			entities[intent.EntityTime] = m[1:]
			break
		}
	}

	for _, re := range datePatterns {
		if m := re.FindStringSubmatch(lower); m != nil {
			if len(m) == 2 {
				entities[intent.EntityDate] = m[1]
			} else {
				entities[intent.EntityDate] = m[1:]
			}
			break
		}
	}

	for _, re := range personPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			entities[intent.EntityPerson] = m[1]
			break
		}
	}

	for _, re := range amountPatterns {
		if m := re.FindStringSubmatch(lower); m != nil {
			entities[intent.EntityAmount] = m[1]
			break
		}
	}

	return entities
}

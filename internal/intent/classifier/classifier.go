// Package classifier maps one text segment to an intent label with a fixed
// confidence and a bag of extracted entities. It is a deterministic,
// rule-ordered stand-in for a trainable model: an ordered cascade of
// (predicate, label, confidence) rules evaluated top to bottom, first match
// wins.
package classifier

import (
	"regexp"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"eindr-intent-engine/internal/intent"
)

// cacheSize bounds the classification result cache. Classification is pure,
// so repeated segments (common with voice input retries) hit the cache.
const cacheSize = 512

// rule is one entry of the classification cascade. The predicate receives
// both the original text (capitalization matters for name detection) and its
// lowercased form.
type rule struct {
	match      func(text, lower string) bool
	label      intent.Label
	confidence float64
}

func keywords(words ...string) func(text, lower string) bool {
	return func(_, lower string) bool {
		return containsAny(lower, words)
	}
}

// rules is the ordered cascade. Confidences are rule constants, not derived.
var rules = []rule{
	{keywords("remind", "reminder", "alert", "book a ticket", "book ticket"), intent.LabelCreateReminder, 0.95},
	{keywords("note", "write", "jot"), intent.LabelCreateNote, 0.90},
	{isLedger, intent.LabelCreateLedger, 0.92},
	{keywords("schedule", "appointment", "meeting"), intent.LabelScheduleEvent, 0.88},
	{keywords("expense", "cost", "spend", "money"), intent.LabelAddExpense, 0.85},
	{keywords("friend", "contact", "person"), intent.LabelAddFriend, 0.80},
	{keywords("cancel", "delete", "remove"), intent.LabelCancelReminder, 0.87},
	{keywords("list", "show", "display"), intent.LabelListReminders, 0.82},
	{keywords("i want to go", "want to go", "going to", "travel to", "visit"), intent.LabelGeneralQuery, 0.75},
}

// defaultConfidence applies when no rule matches.
const defaultConfidence = 0.60

// isLedger matches explicit debt language, a name co-occurring with money, or
// a segment that is nothing but a monetary amount.
func isLedger(text, lower string) bool {
	debtWords := []string{
		"owe", "owes", "owed", "debt", "ledger", "borrowed", "lent", "payback",
		"will give", "will pay", "giving", "paying", "pay me", "give me",
	}
	return containsAny(lower, debtWords) || hasNameAndMoney(text) || isBareMonetaryAmount(text)
}

// Classifier classifies single-intent text segments.
type Classifier struct {
	cache *lru.Cache[string, intent.Classification]
}

// New creates a Classifier with an LRU result cache.
func New() *Classifier {
	cache, _ := lru.New[string, intent.Classification](cacheSize)
	return &Classifier{cache: cache}
}

// Classify returns the intent label, its fixed rule confidence, and the
// entities extracted from text. Entity extraction runs for every segment
// regardless of the matched label.
func (c *Classifier) Classify(text string) intent.Classification {
	if cached, ok := c.cache.Get(text); ok {
		return cached
	}

	lower := strings.ToLower(text)

	label := intent.LabelGeneralQuery
	confidence := defaultConfidence
	for _, r := range rules {
		if r.match(text, lower) {
			label = r.label
			confidence = r.confidence
			break
		}
	}

	result := intent.Classification{
		Intent:       label,
		Confidence:   confidence,
		Entities:     ExtractEntities(text),
		OriginalText: text,
	}
	c.cache.Add(text, result)
	return result
}

func containsAny(lower string, words []string) bool {
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// Name-and-money co-occurrence: a capitalized word adjacent to a debt verb or
// a currency token, in either order.
var nameCuePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b[A-Z][a-z]+\s+(?:owes?|owed?|borrowed?|lent)`),
	regexp.MustCompile(`(?:owes?|owed?|borrowed?|lent)\s+[A-Z][a-z]+`),
	regexp.MustCompile(`\b[A-Z][a-z]+\s+(?:\$|\d+)`),
	regexp.MustCompile(`(?:\$|\d+).*?[A-Z][a-z]+`),
	regexp.MustCompile(`\b[A-Z][a-z]+\s+(?:will\s+)?(?:give|pay|owes?|owed?)`),
	regexp.MustCompile(`\b[A-Z][a-z]+.*?(?:\$|\d+)`),
	regexp.MustCompile(`(?:\$|\d+).*?\b[A-Z][a-z]+`),
}

var moneyCuePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\d+`),
	regexp.MustCompile(`(?i)\d+\s*dollars?`),
	regexp.MustCompile(`(?i)\d+\s*bucks?`),
}

func hasNameAndMoney(text string) bool {
	hasName := false
	for _, re := range nameCuePatterns {
		if re.MatchString(text) {
			hasName = true
			break
		}
	}
	if !hasName {
		return false
	}
	for _, re := range moneyCuePatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// Bare monetary amount: the entire trimmed segment is a currency-amount
// expression, or at most three tokens all of which are numeric/currency.
var bareAmountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\$\d+(?:,\d{3})*(?:\.\d{2})?$`),
	regexp.MustCompile(`^\d+(?:,\d{3})*(?:\.\d{2})?\s*(?:dollars?|bucks?|usd)$`),
	regexp.MustCompile(`^€\d+(?:,\d{3})*(?:\.\d{2})?$`),
	regexp.MustCompile(`^£\d+(?:,\d{3})*(?:\.\d{2})?$`),
	regexp.MustCompile(`^¥\d+(?:,\d{3})*(?:\.\d{2})?$`),
}

var amountWords = map[string]bool{
	"dollars": true, "dollar": true, "bucks": true, "buck": true, "usd": true, "$": true,
}

func isBareMonetaryAmount(text string) bool {
	clean := strings.TrimSpace(text)
	lower := strings.ToLower(clean)

	for _, re := range bareAmountPatterns {
		if re.MatchString(lower) {
			return true
		}
	}

	tokens := strings.Fields(lower)
	if len(tokens) == 0 || len(tokens) > 3 {
		return false
	}
	for _, tok := range tokens {
		if amountWords[tok] || strings.HasPrefix(tok, "$") {
			continue
		}
		digits := strings.NewReplacer("$", "", ",", "", ".", "").Replace(tok)
		if digits == "" || strings.Trim(digits, "0123456789") != "" {
			return false
		}
	}
	return true
}

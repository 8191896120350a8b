package classifier

import (
	"testing"

	"eindr-intent-engine/internal/intent"
)

func TestClassify(t *testing.T) {
	c := New()

	tests := []struct {
		text       string
		label      intent.Label
		confidence float64
	}{
		{"remind me to call John at 5pm", intent.LabelCreateReminder, 0.95},
		{"set an alert for my medication", intent.LabelCreateReminder, 0.95},
		{"book a ticket to Mumbai", intent.LabelCreateReminder, 0.95},
		{"note that the meeting moved", intent.LabelCreateNote, 0.90},
		{"jot this down", intent.LabelCreateNote, 0.90},
		{"Sarah owes me $50", intent.LabelCreateLedger, 0.92},
		{"I borrowed 20 dollars from Mike", intent.LabelCreateLedger, 0.92},
		{"$50", intent.LabelCreateLedger, 0.92},
		{"1,000 dollars", intent.LabelCreateLedger, 0.92},
		{"schedule an appointment for Tuesday", intent.LabelScheduleEvent, 0.88},
		{"how much did I spend this week", intent.LabelAddExpense, 0.85},
		{"add Priya as a contact", intent.LabelAddFriend, 0.80},
		{"delete that entry", intent.LabelCancelReminder, 0.87},
		{"show all of them", intent.LabelListReminders, 0.82},
		{"i want to go to Goa", intent.LabelGeneralQuery, 0.75},
		{"hello there", intent.LabelGeneralQuery, 0.60},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := c.Classify(tt.text)
			if got.Intent != tt.label {
				t.Errorf("Classify(%q).Intent = %s, want %s", tt.text, got.Intent, tt.label)
			}
			if got.Confidence != tt.confidence {
				t.Errorf("Classify(%q).Confidence = %v, want %v", tt.text, got.Confidence, tt.confidence)
			}
			if got.OriginalText != tt.text {
				t.Errorf("Classify(%q).OriginalText = %q", tt.text, got.OriginalText)
			}
		})
	}
}

func TestClassifyRuleOrder(t *testing.T) {
	c := New()

	// "remind" outranks the debt cue in the same segment.
	got := c.Classify("remind me that John owes me $50")
	if got.Intent != intent.LabelCreateReminder {
		t.Errorf("reminder rule must win over ledger: got %s", got.Intent)
	}

	// "note" outranks the debt cue.
	got = c.Classify("note that Sarah owes me $50")
	if got.Intent != intent.LabelCreateNote {
		t.Errorf("note rule must win over ledger: got %s", got.Intent)
	}
}

func TestClassifyCached(t *testing.T) {
	c := New()
	first := c.Classify("remind me to call John")
	second := c.Classify("remind me to call John")
	if first.Intent != second.Intent || first.Confidence != second.Confidence {
		t.Errorf("cached classification diverged: %+v vs %+v", first, second)
	}
}

func TestIsBareMonetaryAmount(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"$50", true},
		{"$1,000.00", true},
		{"50 dollars", true},
		{"20 bucks", true},
		{"€200", true},
		{"50", true},
		{"fifty dollars", false},
		{"lunch cost $50", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isBareMonetaryAmount(tt.text); got != tt.want {
			t.Errorf("isBareMonetaryAmount(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

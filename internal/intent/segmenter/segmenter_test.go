package segmenter

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	s := New()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "reminder plus ledger",
			text: "Remind me to call John at 5pm and Sarah owes me $50",
			want: []string{"Remind me to call John at 5pm", "Sarah owes me $50"},
		},
		{
			name: "action separator",
			text: "note to buy milk and set an alert for 7am",
			want: []string{"note to buy milk", "set an alert for 7am"},
		},
		{
			name: "three segments",
			text: "Remind me to call John at 5pm and note to buy milk and Mike owes me $20",
			want: []string{"Remind me to call John at 5pm", "note to buy milk", "Mike owes me $20"},
		},
		{
			name: "single intent stays whole",
			text: "Remind me to call John tomorrow",
			want: []string{"Remind me to call John tomorrow"},
		},
		{
			name: "conjunction inside one intent",
			text: "buy bread and butter",
			want: []string{"buy bread and butter"},
		},
		{
			name: "also separator",
			text: "remind me to call mom also create a note about dinner",
			want: []string{"remind me to call mom", "create a note about dinner"},
		},
		{
			name: "first person debt",
			text: "note the address and I owe Sarah 20 dollars",
			want: []string{"note the address", "I owe Sarah 20 dollars"},
		},
		{
			name: "monetary separator",
			text: "remind me about rent and $500 for Mike",
			want: []string{"remind me about rent", "$500 for Mike"},
		},
		{
			name: "whitespace only trims",
			text: "  remind me to stretch  ",
			want: []string{"remind me to stretch"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Split(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestSplitNeverEmpty(t *testing.T) {
	s := New()
	for _, text := range []string{"", "   ", "and", "ok"} {
		if got := s.Split(text); len(got) == 0 {
			t.Errorf("Split(%q) returned no segments", text)
		}
	}
}

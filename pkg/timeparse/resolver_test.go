package timeparse

import (
	"testing"
	"time"
)

func mustResolver(t *testing.T) *Resolver {
	t.Helper()
	r, err := NewResolver("UTC")
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	return r
}

func TestNewResolverInvalidTimezone(t *testing.T) {
	if _, err := NewResolver("Not/AZone"); err == nil {
		t.Fatal("expected error for invalid timezone")
	}
}

func TestFromClock(t *testing.T) {
	r := mustResolver(t)
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		hour   string
		minute string
		ampm   string
		want   time.Time
		ok     bool
	}{
		{"pm adds twelve", "5", "30", "pm", time.Date(2026, 3, 1, 17, 30, 0, 0, time.UTC), true},
		{"noon stays noon", "12", "", "pm", time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), true},
		{"midnight wraps", "12", "", "am", time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), true},
		{"past time rolls to next day", "9", "0", "am", time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), true},
		{"no meridiem", "15", "45", "", time.Date(2026, 3, 1, 15, 45, 0, 0, time.UTC), true},
		{"garbage hour", "pm", "", "", time.Time{}, false},
		{"out of range", "27", "00", "", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.FromClock(tt.hour, tt.minute, tt.ampm, base)
			if ok != tt.ok {
				t.Fatalf("FromClock ok = %v, want %v", ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("FromClock = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveDue(t *testing.T) {
	r := mustResolver(t)
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		text string
		want time.Time
	}{
		{"explicit pm", "remind me at 5pm", time.Date(2026, 3, 1, 17, 0, 0, 0, time.UTC)},
		{"dotted meridiem", "call at 7 p.m.", time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC)},
		{"twenty four hour", "meeting at 14:30", time.Date(2026, 3, 1, 14, 30, 0, 0, time.UTC)},
		{"tomorrow", "call John tomorrow", time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)},
		{"today", "finish the report today", time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)},
		{"tonight", "take out the trash tonight", time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)},
		{"morning already past", "go for a run in the morning", time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)},
		{"afternoon still ahead", "pick up the package this afternoon", time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC)},
		{"in minutes", "call me in 20 minutes", base.Add(20 * time.Minute)},
		{"in hours", "check the oven in 2 hours", base.Add(2 * time.Hour)},
		{"in days", "follow up in 3 days", base.AddDate(0, 0, 3)},
		{"default one hour", "call John", base.Add(time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.ResolveDue(tt.text, base)
			if !got.Equal(tt.want) {
				t.Errorf("ResolveDue(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

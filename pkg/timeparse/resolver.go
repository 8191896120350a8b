// Package timeparse resolves spoken time expressions ("at 8 pm", "tomorrow",
// "in 20 minutes") to concrete instants relative to a base time.
package timeparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Default clock hours for relative words.
const (
	hourTomorrow  = 9
	hourToday     = 18
	hourTonight   = 20
	hourMorning   = 8
	hourAfternoon = 14
	hourEvening   = 18
)

var (
	amPMPattern       = regexp.MustCompile(`(?i)(\d{1,2}):?(\d{2})?\s*(a\.?m\.?|p\.?m\.?)`)
	twentyFourPattern = regexp.MustCompile(`(\d{1,2}):(\d{2})`)
	relativePattern   = regexp.MustCompile(`(?i)\b(tomorrow|today|tonight|morning|evening|afternoon)\b`)
	inUnitsPattern    = regexp.MustCompile(`(?i)\bin\s+(\d+)\s*(minutes?|hours?|days?)`)
)

// Resolver converts time expressions to absolute instants in a fixed
// location.
type Resolver struct {
	location *time.Location
}

// NewResolver creates a Resolver for the given IANA timezone string,
// e.g. "Asia/Kolkata".
func NewResolver(timezone string) (*Resolver, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Resolver{location: loc}, nil
}

// FromClock builds an instant from already-captured clock groups (hour,
// optional minute, optional am/pm marker). The instant lands on base's day
// and rolls to the next day when it would not be in the future. Returns
// false when the groups do not parse.
func (r *Resolver) FromClock(hourStr, minuteStr, ampm string, base time.Time) (time.Time, bool) {
	hour, err := strconv.Atoi(strings.TrimSpace(hourStr))
	if err != nil {
		return time.Time{}, false
	}
	minute := 0
	if s := strings.TrimSpace(minuteStr); s != "" {
		if minute, err = strconv.Atoi(s); err != nil {
			return time.Time{}, false
		}
	}
	if hour > 23 || minute > 59 {
		return time.Time{}, false
	}
	hour = adjustMeridiem(hour, ampm)
	return r.rollForward(r.atClock(base, hour, minute), base), true
}

// ResolveDue extracts a due instant from free text. Families are tried in
// order: explicit am/pm clock, 24-hour clock, relative words, "in N units".
// When nothing matches, the due instant defaults to one hour after base.
func (r *Resolver) ResolveDue(text string, base time.Time) time.Time {
	if m := amPMPattern.FindStringSubmatch(text); m != nil {
		if t, ok := r.FromClock(m[1], m[2], m[3], base); ok {
			return t
		}
	}

	if m := twentyFourPattern.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour <= 23 && minute <= 59 {
			return r.rollForward(r.atClock(base, hour, minute), base)
		}
	}

	if m := relativePattern.FindStringSubmatch(text); m != nil {
		return r.resolveRelative(strings.ToLower(m[1]), base)
	}

	if m := inUnitsPattern.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		switch {
		case strings.HasPrefix(strings.ToLower(m[2]), "minute"):
			return base.Add(time.Duration(n) * time.Minute)
		case strings.HasPrefix(strings.ToLower(m[2]), "hour"):
			return base.Add(time.Duration(n) * time.Hour)
		default:
			return base.AddDate(0, 0, n)
		}
	}

	return base.Add(time.Hour)
}

func (r *Resolver) resolveRelative(word string, base time.Time) time.Time {
	switch word {
	case "tomorrow":
		return r.atClock(base, hourTomorrow, 0).AddDate(0, 0, 1)
	case "today":
		return r.atClock(base, hourToday, 0)
	case "tonight":
		return r.atClock(base, hourTonight, 0)
	case "morning":
		return r.rollForward(r.atClock(base, hourMorning, 0), base)
	case "afternoon":
		return r.rollForward(r.atClock(base, hourAfternoon, 0), base)
	case "evening":
		return r.rollForward(r.atClock(base, hourEvening, 0), base)
	}
	return base.Add(time.Hour)
}

// atClock pins base's date to the given wall-clock time.
func (r *Resolver) atClock(base time.Time, hour, minute int) time.Time {
	b := base.In(r.location)
	return time.Date(b.Year(), b.Month(), b.Day(), hour, minute, 0, 0, r.location)
}

// rollForward pushes t one day ahead when it is not strictly in the future.
func (r *Resolver) rollForward(t, base time.Time) time.Time {
	if !t.After(base) {
		return t.AddDate(0, 0, 1)
	}
	return t
}

func adjustMeridiem(hour int, ampm string) int {
	marker := strings.ToLower(ampm)
	switch {
	case strings.Contains(marker, "p") && hour != 12:
		return hour + 12
	case strings.Contains(marker, "a") && hour == 12:
		return 0
	}
	return hour
}

package agenda

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Mode selects which text around a time marker a speaker must appear in.
type Mode string

const (
	// ModeSpan matches within the whole text up to the next time marker.
	ModeSpan Mode = "span"
	// ModeLine matches only within the line holding the time marker.
	ModeLine Mode = "line"
)

// ParseMode parses a mode name; the empty string means ModeSpan.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeSpan:
		return ModeSpan, nil
	case ModeLine:
		return ModeLine, nil
	}
	return "", fmt.Errorf("unknown attribution mode %q (valid: span, line)", s)
}

// Session is one interval credited to a speaker.
type Session struct {
	Interval Interval        `json:"interval"`
	Hours    decimal.Decimal `json:"hours"`
	Text     string          `json:"text"`
}

// Attribution is the result of matching one speaker against an agenda.
type Attribution struct {
	Speaker  string          `json:"speaker"`
	Mode     Mode            `json:"mode"`
	Hours    decimal.Decimal `json:"hours"`
	Sessions []Session       `json:"sessions"`
}

// Found reports whether the speaker matched at least one session.
func (a Attribution) Found() bool {
	return len(a.Sessions) > 0
}

// Segment returns the governed text of every matched session, joined by newlines.
func (a Attribution) Segment() string {
	parts := make([]string, len(a.Sessions))
	for i, s := range a.Sessions {
		parts[i] = s.Text
	}
	return strings.Join(parts, "\n")
}

// SpeakerHours sums the durations of every interval whose governed text
// contains speaker, compared case-insensitively with whitespace collapsed.
// An unmatched speaker yields zero hours and no sessions, never an error.
func SpeakerHours(text, speaker string, mode Mode) Attribution {
	a := Attribution{Speaker: speaker, Mode: mode, Hours: decimal.Zero}
	needle := fold(speaker)
	if needle == "" {
		return a
	}

	var total time.Duration
	for iv, span := range Intervals(text) {
		scope := span.Text(text)
		if mode == ModeLine {
			scope = span.Line(text)
		}
		if !strings.Contains(fold(scope), needle) {
			continue
		}
		total += iv.Duration()
		a.Sessions = append(a.Sessions, Session{
			Interval: iv,
			Hours:    iv.Hours(),
			Text:     strings.TrimSpace(scope),
		})
	}
	a.Hours = hoursOf(total)
	return a
}

// fold lower-cases s and collapses runs of whitespace, so a name wrapped
// across lines still matches.
func fold(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

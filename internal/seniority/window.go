package seniority

import (
	"strings"

	"github.com/rcliao/inkind/internal/agenda"
)

// Excerpt returns every line of text that mentions name, each with up to n
// surrounding lines on both sides. Overlapping windows are merged. The result
// is empty when name does not occur.
func Excerpt(text, name string, n int) string {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return ""
	}
	if n < 0 {
		n = 0
	}

	lines := strings.Split(text, "\n")
	keep := make([]bool, len(lines))
	found := false
	for i, line := range lines {
		if !strings.Contains(strings.ToLower(line), needle) {
			continue
		}
		found = true
		for j := max(i-n, 0); j <= min(i+n, len(lines)-1); j++ {
			keep[j] = true
		}
	}
	if !found {
		return ""
	}

	var out []string
	for i, line := range lines {
		if keep[i] {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// AgendaSegment returns the agenda text governed by the time markers whose
// sessions mention name.
func AgendaSegment(text, name string, mode agenda.Mode) string {
	return agenda.SpeakerHours(text, name, mode).Segment()
}

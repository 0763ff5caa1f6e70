// Package agenda extracts session time ranges from free-form agenda text and
// attributes presentation hours to named speakers.
package agenda

import (
	"fmt"
	"iter"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Clock is a time of day in minutes after midnight. An interval end that
// rolled past noon or midnight may exceed 24h.
type Clock int

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// Interval is one session time range.
type Interval struct {
	Start Clock `json:"start"`
	End   Clock `json:"end"`
}

// Duration returns End-Start. Parsed intervals never have End before Start.
func (iv Interval) Duration() time.Duration {
	return time.Duration(iv.End-iv.Start) * time.Minute
}

// Hours returns the duration in hours rounded to 2 decimals.
func (iv Interval) Hours() decimal.Decimal {
	return hoursOf(iv.Duration())
}

func (iv Interval) String() string {
	return iv.Start.String() + "-" + iv.End.String()
}

// Span locates one time marker and the text it governs.
type Span struct {
	Marker int // offset where the time range starts
	Start  int // first byte after the time range
	End    int // offset of the next marker, or len(text)
}

// Text returns the governed text between this marker and the next.
func (s Span) Text(src string) string {
	return src[s.Start:s.End]
}

// Line returns the full line holding the marker.
func (s Span) Line(src string) string {
	from := strings.LastIndexByte(src[:s.Marker], '\n') + 1
	to := len(src)
	if i := strings.IndexByte(src[s.Start:], '\n'); i >= 0 {
		to = s.Start + i
	}
	return src[from:to]
}

// rangePattern matches "10:00-11:00", "9:30 am – 10:15", "1:00 - 2:30 p.m.".
// The separator is a hyphen or an en dash.
var rangePattern = regexp.MustCompile(
	`(?i)\b(\d{1,2}):(\d{2})(?:\s*([ap])\.?m\b\.?)?\s*[-–]\s*(\d{1,2}):(\d{2})(?:\s*([ap])\.?m\b\.?)?`)

const (
	minutesPerHalfDay = 12 * 60
	minutesPerDay     = 24 * 60
)

// Intervals lazily yields every well-formed time range in text with the span
// it governs, in document order. A malformed range (hour 25, minute 61) is
// skipped but still closes the span of the range before it.
func Intervals(text string) iter.Seq2[Interval, Span] {
	return func(yield func(Interval, Span) bool) {
		loc := nextMarker(text, 0)
		for loc != nil {
			following := nextMarker(text, loc[1])
			end := len(text)
			if following != nil {
				end = following[0]
			}
			if iv, ok := parseRange(text, loc); ok {
				if !yield(iv, Span{Marker: loc[0], Start: loc[1], End: end}) {
					return
				}
			}
			loc = following
		}
	}
}

func nextMarker(text string, from int) []int {
	if from >= len(text) {
		return nil
	}
	loc := rangePattern.FindStringSubmatchIndex(text[from:])
	if loc == nil {
		return nil
	}
	for i := range loc {
		if loc[i] >= 0 {
			loc[i] += from
		}
	}
	return loc
}

func group(text string, loc []int, n int) string {
	if loc[2*n] < 0 {
		return ""
	}
	return text[loc[2*n]:loc[2*n+1]]
}

// parseRange turns one regexp match into a normalized interval.
func parseRange(text string, loc []int) (Interval, bool) {
	sh, sm := group(text, loc, 1), group(text, loc, 2)
	eh, em := group(text, loc, 4), group(text, loc, 5)
	sMer := strings.ToLower(group(text, loc, 3))
	eMer := strings.ToLower(group(text, loc, 6))

	// A designator on one side only is shared with the other side.
	startInherited := false
	switch {
	case sMer == "" && eMer != "":
		sMer, startInherited = eMer, true
	case eMer == "" && sMer != "":
		eMer = sMer
	}

	start, ok := toClock(sh, sm, sMer)
	if !ok {
		return Interval{}, false
	}
	end, ok := toClock(eh, em, eMer)
	if !ok {
		return Interval{}, false
	}

	// "11:00-12:30 pm" reads as 11 am: an inherited designator that would put
	// the start after the end is flipped.
	if startInherited && start > end {
		start = (start + minutesPerHalfDay) % minutesPerDay
	}

	// Roll the end forward by 12h until the range is non-negative.
	for end < start {
		end += minutesPerHalfDay
	}
	return Interval{Start: start, End: end}, true
}

func toClock(hh, mm, meridiem string) (Clock, bool) {
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m > 59 {
		return 0, false
	}
	switch meridiem {
	case "":
		if h > 23 {
			return 0, false
		}
	case "a", "p":
		if h < 1 || h > 12 {
			return 0, false
		}
		h %= 12
		if meridiem == "p" {
			h += 12
		}
	}
	return Clock(h*60 + m), true
}

func hoursOf(d time.Duration) decimal.Decimal {
	return decimal.NewFromInt(int64(d / time.Second)).Div(decimal.NewFromInt(3600)).Round(2)
}

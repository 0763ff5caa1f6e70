package agenda

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(text string) ([]Interval, []string) {
	var ivs []Interval
	var spans []string
	for iv, span := range Intervals(text) {
		ivs = append(ivs, iv)
		spans = append(spans, span.Text(text))
	}
	return ivs, spans
}

func clock(h, m int) Clock { return Clock(h*60 + m) }

func TestIntervals_24Hour(t *testing.T) {
	ivs, spans := collect("10:00-11:00 Jane Smith presents\n11:15 - 12:45 Panel")
	require.Len(t, ivs, 2)

	assert.Equal(t, Interval{Start: clock(10, 0), End: clock(11, 0)}, ivs[0])
	assert.Equal(t, " Jane Smith presents\n", spans[0])
	assert.Equal(t, Interval{Start: clock(11, 15), End: clock(12, 45)}, ivs[1])
	assert.Equal(t, " Panel", spans[1])
}

func TestIntervals_EnDash(t *testing.T) {
	ivs, _ := collect("09:00–10:15 Opening")
	require.Len(t, ivs, 1)
	assert.Equal(t, "1.25", ivs[0].Hours().String())
}

func TestIntervals_12HourInheritance(t *testing.T) {
	cases := []struct {
		text  string
		start Clock
		end   Clock
	}{
		{"1:00 - 2:30 pm Keynote", clock(13, 0), clock(14, 30)},
		{"1:00 pm - 2:30 Keynote", clock(13, 0), clock(14, 30)},
		{"9:00 a.m. – 10:00 a.m. Welcome", clock(9, 0), clock(10, 0)},
		{"11:00-12:30 PM Lunch talk", clock(11, 0), clock(12, 30)},
		{"12:00 am - 1:00 am Late", clock(0, 0), clock(1, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			ivs, _ := collect(tc.text)
			require.Len(t, ivs, 1)
			assert.Equal(t, tc.start, ivs[0].Start)
			assert.Equal(t, tc.end, ivs[0].End)
		})
	}
}

func TestIntervals_RolloverNeverNegative(t *testing.T) {
	ivs, _ := collect("11:00 - 1:00 Extended workshop")
	require.Len(t, ivs, 1)
	assert.Equal(t, clock(11, 0), ivs[0].Start)
	assert.Equal(t, clock(13, 0), ivs[0].End)
	assert.Equal(t, "2", ivs[0].Hours().String())

	ivs, _ = collect("10:00 am - 2:00 Session")
	require.Len(t, ivs, 1)
	assert.Equal(t, clock(14, 0), ivs[0].End)
}

func TestIntervals_DoesNotEatNames(t *testing.T) {
	ivs, spans := collect("10:00-11:00 Amy Park on trade")
	require.Len(t, ivs, 1)
	assert.Equal(t, clock(11, 0), ivs[0].End)
	assert.Contains(t, spans[0], "Amy Park")
}

func TestIntervals_SkipsMalformed(t *testing.T) {
	text := "25:00-26:00 Broken\n10:00-10:30 Good\n9:75-10:00 Bad minutes\n13:00 pm-14:00 pm Bad meridiem"
	ivs, spans := collect(text)
	require.Len(t, ivs, 1)
	assert.Equal(t, Interval{Start: clock(10, 0), End: clock(10, 30)}, ivs[0])
	assert.Equal(t, " Good\n", spans[0])
}

func TestIntervals_NoMatches(t *testing.T) {
	ivs, _ := collect("Registration opens at noon. Coffee provided.")
	assert.Empty(t, ivs)

	ivs, _ = collect("")
	assert.Empty(t, ivs)
}

func TestIntervals_StopsEarly(t *testing.T) {
	n := 0
	for range Intervals("08:00-09:00 a\n09:00-10:00 b\n10:00-11:00 c") {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestIntervals_DurationProperty(t *testing.T) {
	for start := 0; start < 23*60; start += 37 {
		for _, length := range []int{0, 15, 50, 60, 95} {
			end := start + length
			if end >= 24*60 {
				continue
			}
			text := Clock(start).String() + "-" + Clock(end).String() + " talk"
			ivs, _ := collect(text)
			require.Len(t, ivs, 1, text)

			want := decimal.NewFromInt(int64(length * 60)).Div(decimal.NewFromInt(3600)).Round(2)
			assert.True(t, want.Equal(ivs[0].Hours()), text)
			assert.Equal(t, int64(length), int64(ivs[0].Duration().Minutes()), text)
		}
	}
}

func TestSpanLine(t *testing.T) {
	text := "Day one\n10:00-11:00 Jane Smith\nModerator: Lee\n"
	for _, span := range Intervals(text) {
		assert.Equal(t, "10:00-11:00 Jane Smith", span.Line(text))
		assert.Equal(t, " Jane Smith\nModerator: Lee\n", span.Text(text))
	}
}

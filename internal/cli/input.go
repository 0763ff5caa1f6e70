package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rcliao/inkind/internal/model"
)

// readText reads a text file, or stdin when path is "-".
func readText(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q must be YYYY-MM-DD", s)
	}
	return d, nil
}

// parseAmount parses a non-empty decimal flag value; empty means zero.
func parseAmount(name, s string) (decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("--%s %q is not a number", name, s)
	}
	return d, nil
}

// parseEngagements parses REF or REF@YYYY-MM-DD values. A bare REF takes
// fallback as its date.
func parseEngagements(values []string, fallback string) ([]model.Engagement, error) {
	var out []model.Engagement
	for _, v := range values {
		ref, date, hasDate := strings.Cut(strings.TrimSpace(v), "@")
		ref = strings.TrimSpace(ref)
		if ref == "" {
			return nil, fmt.Errorf("engagement %q has no reference", v)
		}
		if !hasDate {
			if fallback == "" {
				return nil, fmt.Errorf("engagement %q has no date (use REF@YYYY-MM-DD or --date)", v)
			}
			date = fallback
		}
		d, err := parseDate(date)
		if err != nil {
			return nil, fmt.Errorf("engagement %s: %w", ref, err)
		}
		out = append(out, model.Engagement{Ref: ref, Date: d})
	}
	return out, nil
}

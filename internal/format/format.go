// Package format provides rendering of valuations and contribution records.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formats lists the accepted output format names.
var Formats = []string{"table", "plain", "json", "jsonl"}

var printer = message.NewPrinter(language.AmericanEnglish)

// Normalize validates a format name. The empty string means table.
func Normalize(format string) (string, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case "":
		return "table", nil
	case "table", "plain", "json", "jsonl":
		return format, nil
	}
	return "", fmt.Errorf("unsupported format: %s (valid: %s)", format, strings.Join(Formats, ", "))
}

// Money renders an amount in US dollars with thousands grouping, e.g. $1,427.25.
func Money(d decimal.Decimal) string {
	d = d.Round(2)
	_, frac, _ := strings.Cut(d.Abs().StringFixed(2), ".")
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	return sign + "$" + printer.Sprintf("%d", d.Abs().IntPart()) + "." + frac
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeJSONL[T any](w io.Writer, items []T) error {
	enc := json.NewEncoder(w)
	for _, item := range items {
		if err := enc.Encode(item); err != nil {
			return err
		}
	}
	return nil
}

func newTable(w io.Writer) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.Style().Options.SeparateHeader = true
	tw.Style().Options.DrawBorder = true
	return tw
}

func escapeNewlines(text string) string {
	return strings.ReplaceAll(text, "\n", "\\n")
}

func truncate(text string, n int) string {
	r := []rune(strings.Join(strings.Fields(text), " "))
	if len(r) <= n {
		return string(r)
	}
	return string(r[:n-1]) + "…"
}

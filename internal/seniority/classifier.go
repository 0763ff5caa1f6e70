// Package seniority suggests a professional category for a speaker from
// role and title cues in a text window.
package seniority

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rcliao/inkind/internal/model"
)

// Rule is one named pattern in a classification table.
type Rule struct {
	Term    string
	Pattern *regexp.Regexp
}

// NewRule compiles a case-insensitive, word-bounded rule for expr.
func NewRule(term, expr string) Rule {
	return Rule{Term: term, Pattern: regexp.MustCompile(`(?i)\b(?:` + expr + `)\b`)}
}

// DowngradeRules mark a title as past, honorary, or advisory. They are tested
// before any executive rule.
var DowngradeRules = []Rule{
	NewRule("former", `former(?:ly)?`),
	NewRule("ex-", `ex-\w+`),
	NewRule("retired", `retired`),
	NewRule("emeritus", `emerit(?:us|a)`),
	NewRule("previously", `previously`),
	NewRule("advisor", `advis[oe]r(?:y)?`),
	NewRule("board", `board`),
	NewRule("founder", `(?:co-?)?founder`),
	NewRule("consultant", `consultant`),
}

// ExecutiveRules recognise current senior leadership titles. Order matters:
// the first match is cited.
var ExecutiveRules = []Rule{
	NewRule("Chief Executive Officer", `ceo|chief\s+executive(?:\s+officer)?`),
	NewRule("Chief Officer", `chief\s+\w+(?:\s+\w+)?\s+officer|c[fotimdsh]o`),
	NewRule("Executive Vice President", `executive\s+vice[\s-]+president|evp`),
	NewRule("Senior Vice President", `senior\s+vice[\s-]+president|svp`),
	NewRule("Vice President", `vice[\s-]+president|vp`),
	NewRule("Managing Director", `managing\s+director`),
	NewRule("Executive Director", `executive\s+director`),
	NewRule("Director General", `director[\s-]+general`),
	NewRule("Country Director", `country\s+(?:director|manager)`),
	NewRule("Regional Director", `regional\s+director`),
	NewRule("General Manager", `general\s+manager`),
	NewRule("Head of", `head\s+of`),
	NewRule("President", `president`),
	NewRule("Managing Partner", `managing\s+partner`),
	NewRule("Secretary General", `secretary[\s-]+general`),
}

// Classifier evaluates its downgrade table, then its executive table,
// first match wins.
type Classifier struct {
	Downgrades []Rule
	Executive  []Rule
}

// Default returns a classifier over DowngradeRules and ExecutiveRules.
func Default() *Classifier {
	return &Classifier{Downgrades: DowngradeRules, Executive: ExecutiveRules}
}

// Classify suggests a category for the speaker described by window. It never
// fails: without a clear current executive signal the suggestion is the
// lower-cost Senior Specialist, and the rationale says why.
func (c *Classifier) Classify(window string) model.Suggested[model.Category] {
	if strings.TrimSpace(window) == "" {
		return suggest(model.CategorySeniorSpecialist,
			"speaker not found in source text; defaulted conservatively to Senior Specialist")
	}

	if r, loc := firstMatch(c.Downgrades, window); loc != nil {
		return suggest(model.CategorySeniorSpecialist, fmt.Sprintf(
			"downgrade term %q found (%q); title is not a current executive role, classified as Senior Specialist",
			r.Term, excerptAround(window, loc)))
	}

	if r, loc := firstMatch(c.Executive, window); loc != nil {
		return suggest(model.CategoryExecutive, fmt.Sprintf(
			"current executive role %q matched (%q); classified as Executive / Senior Leadership",
			r.Term, excerptAround(window, loc)))
	}

	return suggest(model.CategorySeniorSpecialist, "no seniority signal detected; defaulted to Senior Specialist")
}

func suggest(c model.Category, rationale string) model.Suggested[model.Category] {
	return model.Suggested[model.Category]{Value: c, Rationale: rationale}
}

func firstMatch(rules []Rule, text string) (Rule, []int) {
	for _, r := range rules {
		if loc := r.Pattern.FindStringIndex(text); loc != nil {
			return r, loc
		}
	}
	return Rule{}, nil
}

const excerptPad = 30

// excerptAround returns the matched text with a little context on each side,
// flattened to one line.
func excerptAround(text string, loc []int) string {
	from := max(loc[0]-excerptPad, 0)
	to := min(loc[1]+excerptPad, len(text))
	// keep the cut on rune boundaries
	for from > 0 && !isRuneStart(text[from]) {
		from--
	}
	for to < len(text) && !isRuneStart(text[to]) {
		to++
	}
	return strings.Join(strings.Fields(text[from:to]), " ")
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}

package model

import (
	"fmt"
	"strings"
)

// Category is a professional seniority category with a fixed hourly rate.
type Category string

const (
	CategoryExecutive        Category = "Executive / Senior Leadership"
	CategorySeniorSpecialist Category = "Senior Specialist"
)

// Categories lists the closed set of categories in display order.
var Categories = []Category{CategoryExecutive, CategorySeniorSpecialist}

// ValidCategories are the allowed categories.
var ValidCategories = map[Category]bool{
	CategoryExecutive:        true,
	CategorySeniorSpecialist: true,
}

var categoryAliases = map[string]Category{
	"executive":                     CategoryExecutive,
	"exec":                          CategoryExecutive,
	"senior leadership":             CategoryExecutive,
	"executive / senior leadership": CategoryExecutive,
	"senior specialist":             CategorySeniorSpecialist,
	"senior-specialist":             CategorySeniorSpecialist,
	"specialist":                    CategorySeniorSpecialist,
}

// ParseCategory accepts a full category label or a short alias.
func ParseCategory(s string) (Category, error) {
	if c, ok := categoryAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c, nil
	}
	return "", fmt.Errorf("unknown category %q (valid: executive, senior-specialist)", s)
}

// Suggested is a value proposed by the engine together with the reason for it.
// Callers decide whether to accept it; the engine never produces a confirmed value.
type Suggested[T any] struct {
	Value     T      `json:"value"`
	Rationale string `json:"rationale"`
}

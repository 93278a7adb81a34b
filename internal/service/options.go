package service

import (
	"strings"
)

// MealPlan is the board tier requested for the stay.
type MealPlan int

const (
	MealNone MealPlan = iota
	MealFullBoard
	MealHalfBoard
	MealAllInclusive
)

func (m MealPlan) String() string {
	switch m {
	case MealFullBoard:
		return "full board"
	case MealHalfBoard:
		return "half board"
	case MealAllInclusive:
		return "all inclusive"
	default:
		return "none"
	}
}

func (m MealPlan) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

var (
	fullBoardKeywords    = []string{"fb", "full board", "полный пансион"}
	halfBoardKeywords    = []string{"hb", "half board", "полупансион"}
	allInclusiveKeywords = []string{"ai", "all inclusive", "все включено"}
	extraBedKeywords     = []string{"extra bed", "доп кровать", "e.bed"}
	childKeywords        = []string{"child", "ребенка"}
	sharingBedKeyword    = "sharing bed"
)

// ParsedOptions is the structured form of the free-text options field.
type ParsedOptions struct {
	MealPlan         MealPlan `json:"mealPlan"`
	ExtraBedAdults   int      `json:"extraBedAdults"`
	ExtraBedChildren int      `json:"extraBedChildren"`
	SharingBed       bool     `json:"sharingBed"`
}

// ParseOptions reads meal plan, extra bed and sharing bed requests from s.
// Meal plans are checked full board, half board, all inclusive; the first
// hit wins. An extra bed is for a child when a child keyword is present,
// otherwise for an adult, never both.
func ParseOptions(s string) ParsedOptions {
	var p ParsedOptions
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || trimmed == "-" {
		return p
	}
	lower := strings.ToLower(s)

	switch {
	case containsAny(lower, fullBoardKeywords):
		p.MealPlan = MealFullBoard
	case containsAny(lower, halfBoardKeywords):
		p.MealPlan = MealHalfBoard
	case containsAny(lower, allInclusiveKeywords):
		p.MealPlan = MealAllInclusive
	}

	if containsAny(lower, extraBedKeywords) {
		if containsAny(lower, childKeywords) {
			p.ExtraBedChildren = 1
		} else {
			p.ExtraBedAdults = 1
		}
	}

	p.SharingBed = strings.Contains(lower, sharingBedKeyword)
	return p
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

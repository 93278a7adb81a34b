package service

import (
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/thoas/go-funk"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// normalizeText collapses whitespace runs, trims and lowercases s.
func normalizeText(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func containsKey(sheetKey, userKey string) bool {
	return strings.Contains(sheetKey, userKey)
}

var priceCleaner = strings.NewReplacer(" ", "", "\u00a0", "", ",", ".")

// parsePrice reads a price cell such as "1 500 000" or "12,5" and truncates
// it to an integer. Anything unreadable is 0.
func parsePrice(v any) int {
	s := strings.TrimSpace(cast.ToString(v))
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(priceCleaner.Replace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	if f >= math.MaxInt64 || f <= math.MinInt64 {
		return 0
	}
	return int(f)
}

// parseRate reads an optional conversion rate with a comma or dot decimal separator.
func parseRate(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func parseDayMonthYear(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	layouts := []string{
		DayMonthYear,
		"2.1.2006",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// dateOnly drops the clock part of t, keeping its calendar day.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func addDays(t time.Time, n int) time.Time { return t.AddDate(0, 0, n) }

func daysBetween(a, b time.Time) int { return int(math.Round(b.Sub(a).Hours() / 24)) }

// Remarks is an insertion-ordered list of distinct remark texts.
type Remarks []string

// With returns r extended by the non-empty texts it does not hold yet.
func (r Remarks) With(texts ...string) Remarks {
	out := r
	for _, t := range texts {
		t = strings.TrimSpace(t)
		if t == "" || funk.ContainsString(out, t) {
			continue
		}
		out = append(slices.Clip(out), t)
	}
	return out
}

var printer = message.NewPrinter(language.English)

// formatAmount groups thousands: 1500000 -> "1,500,000".
func formatAmount(n int) string {
	return printer.Sprintf("%d", n)
}

func formatMoney(f float64) string {
	return printer.Sprintf("%.2f", f)
}

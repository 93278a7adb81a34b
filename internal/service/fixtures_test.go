package service

import (
	"context"
	"errors"
	"time"

	"github.com/omerorhan/stay-pricing/internal/storage"
)

var today = time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return today.Add(9 * time.Hour) }

func day(s string) time.Time {
	t, ok := parseDayMonthYear(s)
	if !ok {
		panic("bad test date " + s)
	}
	return t
}

// rateRow is a Sunrise/Deluxe row valid through August 2025 at 500,000 a night.
func rateRow(overrides map[string]any) Row {
	row := Row{
		"HOTELN":       "Sunrise",
		"CATEGORY":     "Deluxe",
		"REGION":       "Bali",
		"START_PERIOD": "01.08.2025",
		"END_PERIOD":   "31.08.2025",
		"ROOM_IDR":     "500000",
	}
	for k, v := range overrides {
		row[k] = v
	}
	return row
}

func record(overrides map[string]any) RateRecord {
	return decodeRecord(rateRow(overrides), DefaultColumns())
}

func newTestService(rows ...Row) *QuoteService {
	qs, err := NewQuoteService(storage.NewMemorySource(rows),
		WithClock(fixedClock),
		WithLogging(false),
	)
	if err != nil {
		panic(err)
	}
	return qs
}

var errSheetOffline = errors.New("sheet offline")

type brokenSource struct{}

func (brokenSource) FetchRows(context.Context) ([]Row, error) { return nil, errSheetOffline }
func (brokenSource) Close() error                             { return nil }

// panickingSource fails the way a buggy driver would.
type panickingSource struct{}

func (panickingSource) FetchRows(context.Context) ([]Row, error) { panic("driver bug") }
func (panickingSource) Close() error                             { return nil }

package api

import (
	"testing"
)

func TestQuoteForm_StayRequest(t *testing.T) {
	valid := quoteForm{
		CheckIn:  "2025-08-01",
		CheckOut: "2025-08-04",
		Hotel:    "Sunrise",
		Category: "Deluxe",
		Adults:   "2",
		Children: "1",
		Options:  "full board",
		USDRate:  " 15000 ",
	}

	req, err := valid.stayRequest()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.CheckIn != "01.08.2025" || req.CheckOut != "04.08.2025" {
		t.Errorf("dates = %s - %s", req.CheckIn, req.CheckOut)
	}
	if req.Adults != 2 || req.Children != 1 || req.CurrencyRate != "15000" {
		t.Errorf("request = %+v", req)
	}

	tests := []struct {
		name   string
		mutate func(*quoteForm)
		want   string
	}{
		{"no check-in", func(f *quoteForm) { f.CheckIn = "" }, "The check-in date is missing."},
		{"bad check-in", func(f *quoteForm) { f.CheckIn = "01.08.2025" }, "Invalid date or guest count format."},
		{"no check-out", func(f *quoteForm) { f.CheckOut = " " }, "The check-out date is missing."},
		{"bad check-out", func(f *quoteForm) { f.CheckOut = "2025-02-30" }, "Invalid date or guest count format."},
		{"no adults", func(f *quoteForm) { f.Adults = "" }, "The number of adults must be a positive number."},
		{"zero adults", func(f *quoteForm) { f.Adults = "0" }, "The number of adults must be a positive number."},
		{"signed adults", func(f *quoteForm) { f.Adults = "+2" }, "The number of adults must be a positive number."},
		{"fractional adults", func(f *quoteForm) { f.Adults = "1.5" }, "The number of adults must be a positive number."},
		{"negative children", func(f *quoteForm) { f.Children = "-1" }, "The number of children must be a number (0 or more)."},
		{"text children", func(f *quoteForm) { f.Children = "two" }, "The number of children must be a number (0 or more)."},
		{"too many adults", func(f *quoteForm) { f.Adults = "100" }, "The number of adults and children must not exceed 99."},
		{"too many children", func(f *quoteForm) { f.Children = "250" }, "The number of adults and children must not exceed 99."},
		{"overflowing adults", func(f *quoteForm) { f.Adults = "999999999" }, "The number of adults must be a positive number."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid
			tt.mutate(&f)
			_, err := f.stayRequest()
			if err == nil || err.Error() != tt.want {
				t.Errorf("got %v, want %q", err, tt.want)
			}
		})
	}
}

func TestQuoteForm_BlankChildrenMeansNone(t *testing.T) {
	f := quoteForm{CheckIn: "2025-08-01", CheckOut: "2025-08-02", Hotel: "h", Category: "c", Adults: "1"}
	req, err := f.stayRequest()
	if err != nil || req.Children != 0 {
		t.Errorf("got %+v, %v", req, err)
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		in, fallback string
		want         int
		ok           bool
	}{
		{"7", "", 7, true},
		{" 12 ", "", 12, true},
		{"", "0", 0, true},
		{"", "", 0, false},
		{"9999", "", 9999, true},
		{"10000", "", 0, false},
		{"-1", "", 0, false},
	}
	for _, tt := range tests {
		got, ok := count(tt.in, tt.fallback)
		if got != tt.want || ok != tt.ok {
			t.Errorf("count(%q, %q) = %d, %v; want %d, %v", tt.in, tt.fallback, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFlexString_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want flexString
	}{
		{`"3"`, "3"},
		{`3`, "3"},
		{`15000.5`, "15000.5"},
		{`null`, ""},
	}
	for _, tt := range tests {
		var f flexString
		if err := f.UnmarshalJSON([]byte(tt.in)); err != nil || f != tt.want {
			t.Errorf("UnmarshalJSON(%s) = %q, %v", tt.in, f, err)
		}
	}

	var f flexString
	if err := f.UnmarshalJSON([]byte(`{}`)); err == nil {
		t.Error("object should not decode")
	}
}

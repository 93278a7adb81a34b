package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/omerorhan/stay-pricing/internal/service"
)

const isoDate = "2006-01-02"

// flexString accepts a JSON string or number, and a plain form value.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

func (f *flexString) UnmarshalParam(param string) error {
	*f = flexString(param)
	return nil
}

// quoteForm is the web form posted by the quote page.
type quoteForm struct {
	CheckIn  string     `form:"checkin_date" json:"checkin_date"`
	CheckOut string     `form:"checkout_date" json:"checkout_date"`
	Hotel    string     `form:"hotel" json:"hotel"`
	Category string     `form:"category" json:"category"`
	Adults   flexString `form:"adults_count" json:"adults_count"`
	Children flexString `form:"children_count" json:"children_count"`
	Options  string     `form:"additional_options" json:"additional_options"`
	USDRate  flexString `form:"usd_rate" json:"usd_rate"`
}

type formError struct {
	message string
}

func (e *formError) Error() string { return e.message }

func rejectForm(msg string) error { return &formError{message: msg} }

// stayRequest checks the form fields and converts them into a quote request.
func (f quoteForm) stayRequest() (service.StayRequest, error) {
	checkIn := strings.TrimSpace(f.CheckIn)
	if checkIn == "" {
		return service.StayRequest{}, rejectForm("The check-in date is missing.")
	}
	in, err := time.Parse(isoDate, checkIn)
	if err != nil {
		return service.StayRequest{}, rejectForm("Invalid date or guest count format.")
	}

	checkOut := strings.TrimSpace(f.CheckOut)
	if checkOut == "" {
		return service.StayRequest{}, rejectForm("The check-out date is missing.")
	}
	out, err := time.Parse(isoDate, checkOut)
	if err != nil {
		return service.StayRequest{}, rejectForm("Invalid date or guest count format.")
	}

	adults, ok := count(string(f.Adults), "")
	if !ok || adults <= 0 {
		return service.StayRequest{}, rejectForm("The number of adults must be a positive number.")
	}
	children, ok := count(string(f.Children), "0")
	if !ok {
		return service.StayRequest{}, rejectForm("The number of children must be a number (0 or more).")
	}
	if adults > service.MaxGuests || children > service.MaxGuests {
		return service.StayRequest{}, rejectForm(fmt.Sprintf("The number of adults and children must not exceed %d.", service.MaxGuests))
	}

	return service.StayRequest{
		CheckIn:      in.Format(service.DayMonthYear),
		CheckOut:     out.Format(service.DayMonthYear),
		Hotel:        f.Hotel,
		Category:     f.Category,
		Adults:       adults,
		Children:     children,
		Options:      f.Options,
		CurrencyRate: strings.TrimSpace(string(f.USDRate)),
	}, nil
}

// count parses a string of at most four ASCII digits; blank input takes fallback.
func count(s, fallback string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		s = fallback
	}
	if s == "" || len(s) > 4 {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}

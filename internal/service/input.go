package service

import (
	"fmt"
	"time"
)

// StayRequest is a quote request. Dates are DD.MM.YYYY; CheckOut is exclusive.
type StayRequest struct {
	CheckIn      string `json:"checkIn"`
	CheckOut     string `json:"checkOut"`
	Hotel        string `json:"hotel"`
	Category     string `json:"category"`
	Adults       int    `json:"adults"`
	Children     int    `json:"children"`
	Options      string `json:"options"`
	CurrencyRate string `json:"currencyRate"`
}

type Guests struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
}

// Stay is a validated StayRequest.
type Stay struct {
	CheckIn     time.Time
	CheckOut    time.Time
	Nights      int
	HotelKey    string
	CategoryKey string
	Guests      Guests
}

// ValidationError carries the single line shown for a rejected request.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(msg string) error { return &ValidationError{Message: msg} }

// Validate checks req and derives the stay it describes.
func (req StayRequest) Validate() (Stay, error) {
	hotelKey := normalizeText(req.Hotel)
	categoryKey := normalizeText(req.Category)
	if req.CheckIn == "" || req.CheckOut == "" || hotelKey == "" || categoryKey == "" || req.Adults <= 0 {
		return Stay{}, invalid("Not all data required for the calculation was provided, or the number of adults is 0.")
	}
	if req.Children < 0 {
		return Stay{}, invalid("The number of children must be 0 or more.")
	}
	if req.Adults > MaxGuests || req.Children > MaxGuests {
		return Stay{}, invalid(fmt.Sprintf("The number of adults and children must not exceed %d.", MaxGuests))
	}

	checkIn, okIn := parseDayMonthYear(req.CheckIn)
	checkOut, okOut := parseDayMonthYear(req.CheckOut)
	if !okIn || !okOut {
		return Stay{}, invalid("Dates must use the DD.MM.YYYY format.")
	}

	nights := daysBetween(checkIn, checkOut)
	if nights <= 0 {
		return Stay{}, invalid("The check-out date must be later than the check-in date.")
	}

	return Stay{
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Nights:      nights,
		HotelKey:    hotelKey,
		CategoryKey: categoryKey,
		Guests:      Guests{Adults: req.Adults, Children: req.Children},
	}, nil
}

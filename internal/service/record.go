package service

import (
	"time"
)

// PersonPrice is a per-person price split by adult and child.
type PersonPrice struct {
	Adult int `json:"adult"`
	Child int `json:"child"`
}

// For prices the given guests.
func (p PersonPrice) For(g Guests) int {
	return p.Adult*g.Adults + p.Child*g.Children
}

// RateRecord is one decoded row of the rate table.
type RateRecord struct {
	Hotel    string `json:"hotel"`
	Category string `json:"category"`
	Region   string `json:"region"`

	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	HasPeriod bool      `json:"hasPeriod"`

	RoomPrice      int         `json:"roomPrice"`
	FullBoard      PersonPrice `json:"fullBoard"`
	HalfBoard      PersonPrice `json:"halfBoard"`
	AllInclusive   PersonPrice `json:"allInclusive"`
	ExtraBedAdult  int         `json:"extraBedAdult"`
	ExtraBedChild  int         `json:"extraBedChild"`
	ChildBreakfast int         `json:"childBreakfast"`
	NYDinner       PersonPrice `json:"nyDinner"`
	NYDinnerRemark string      `json:"nyDinnerRemark,omitempty"`

	// Raw promotion cells, parsed during eligibility so a malformed
	// cutoff can be told apart from an absent one.
	OfferExpiry string `json:"offerExpiry,omitempty"`
	OfferRemark string `json:"offerRemark,omitempty"`
	EarlyBird   string `json:"earlyBird,omitempty"`

	GeneralRemark      string `json:"generalRemark,omitempty"`
	ChildPolicyRemark  string `json:"childPolicyRemark,omitempty"`
	CancellationRemark string `json:"cancellationRemark,omitempty"`

	hotelKey    string
	categoryKey string
}

// covers reports whether day lies in the inclusive validity period.
func (r RateRecord) covers(day time.Time) bool {
	return r.HasPeriod && !day.Before(r.Start) && !day.After(r.End)
}

func (r RateRecord) matchesLoosely(hotelKey, categoryKey string) bool {
	return containsKey(r.hotelKey, hotelKey) && containsKey(r.categoryKey, categoryKey)
}

func (r RateRecord) matchesExactly(hotelKey, categoryKey string) bool {
	return r.hotelKey == hotelKey && r.categoryKey == categoryKey
}

func decodeRecord(row Row, c Columns) RateRecord {
	rec := RateRecord{
		Hotel:    row.String(c.Hotel),
		Category: row.String(c.Category),
		Region:   row.String(c.Region),

		RoomPrice:      parsePrice(row[c.RoomPrice]),
		FullBoard:      PersonPrice{Adult: parsePrice(row[c.FullBoardAdult]), Child: parsePrice(row[c.FullBoardChild])},
		HalfBoard:      PersonPrice{Adult: parsePrice(row[c.HalfBoardAdult]), Child: parsePrice(row[c.HalfBoardChild])},
		AllInclusive:   PersonPrice{Adult: parsePrice(row[c.AllInclusiveAdult]), Child: parsePrice(row[c.AllInclusiveChild])},
		ExtraBedAdult:  parsePrice(row[c.ExtraBedAdult]),
		ExtraBedChild:  parsePrice(row[c.ExtraBedChild]),
		ChildBreakfast: parsePrice(row[c.ChildBreakfast]),
		NYDinner:       PersonPrice{Adult: parsePrice(row[c.NYDinnerAdult]), Child: parsePrice(row[c.NYDinnerChild])},
		NYDinnerRemark: row.String(c.NYDinnerRemark),

		OfferExpiry: row.String(c.OfferExpiry),
		OfferRemark: row.String(c.OfferRemark),
		EarlyBird:   row.String(c.EarlyBird),

		GeneralRemark:      row.String(c.GeneralRemark),
		ChildPolicyRemark:  row.String(c.ChildPolicyRemark),
		CancellationRemark: row.String(c.CancellationRemark),
	}
	rec.hotelKey = normalizeText(rec.Hotel)
	rec.categoryKey = normalizeText(rec.Category)

	start, okStart := parseDayMonthYear(row.String(c.StartPeriod))
	end, okEnd := parseDayMonthYear(row.String(c.EndPeriod))
	if okStart && okEnd {
		rec.Start, rec.End, rec.HasPeriod = start, end, true
	}
	return rec
}

func decodeRecords(rows []Row, c Columns) []RateRecord {
	records := make([]RateRecord, len(rows))
	for i, row := range rows {
		records[i] = decodeRecord(row, c)
	}
	return records
}

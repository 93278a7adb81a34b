package service

import (
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// NightlyOutcome is the rate chosen for one night of the stay.
type NightlyOutcome struct {
	Night    int         `json:"night"`
	Date     time.Time   `json:"date"`
	Resolved bool        `json:"resolved"`
	Price    int         `json:"price"`
	Rule     string      `json:"rule,omitempty"`
	Remark   string      `json:"remark,omitempty"`
	Record   *RateRecord `json:"-"`
}

type SurchargeItem struct {
	Kind   string `json:"kind"`
	Label  string `json:"label"`
	Night  int    `json:"night,omitempty"`
	Amount int    `json:"amount"`
}

// NightSurcharges are the add-ons priced for one resolved night.
type NightSurcharges struct {
	Total int
	Items []SurchargeItem
}

// QuoteResult accumulates the stay. Its methods return updated copies.
type QuoteResult struct {
	RoomTotal           int             `json:"roomTotal"`
	SurchargeTotal      int             `json:"surchargeTotal"`
	Surcharges          []SurchargeItem `json:"surcharges"`
	GeneralRemarks      Remarks         `json:"generalRemarks"`
	PolicyRemarks       Remarks         `json:"policyRemarks"`
	OfferRemarks        Remarks         `json:"offerRemarks"`
	CancellationRemarks Remarks         `json:"cancellationRemarks"`
	AllNightsResolved   bool            `json:"allNightsResolved"`
}

func newQuoteResult() QuoteResult {
	return QuoteResult{AllNightsResolved: true}
}

func (q QuoteResult) GrandTotal() int { return q.RoomTotal + q.SurchargeTotal }

// addNight folds one night's outcome and surcharges into q.
func (q QuoteResult) addNight(n NightlyOutcome, s NightSurcharges, g Guests) QuoteResult {
	if !n.Resolved || n.Record == nil {
		q.AllNightsResolved = false
		return q
	}

	q.RoomTotal += n.Price
	if n.Remark != StandardRate {
		q.OfferRemarks = q.OfferRemarks.With(n.Remark)
	}

	q.SurchargeTotal += s.Total
	q.Surcharges = append(slices.Clip(q.Surcharges), s.Items...)

	if g.Children > 0 {
		q.PolicyRemarks = q.PolicyRemarks.With(n.Record.ChildPolicyRemark)
	}
	q.GeneralRemarks = q.GeneralRemarks.With(n.Record.GeneralRemark)
	q.CancellationRemarks = q.CancellationRemarks.With(n.Record.CancellationRemark)
	return q
}

func (q QuoteResult) addSurcharge(item SurchargeItem, remark string) QuoteResult {
	q.SurchargeTotal += item.Amount
	q.Surcharges = append(slices.Clip(q.Surcharges), item)
	q.OfferRemarks = q.OfferRemarks.With(remark)
	return q
}

// Conversion is the grand total expressed in the target currency.
type Conversion struct {
	Currency       string          `json:"currency"`
	Rate           decimal.Decimal `json:"rate"`
	Total          decimal.Decimal `json:"total"`
	NightlyAverage decimal.Decimal `json:"nightlyAverage"`
}

// QuoteReport is what a quote hands to the presentation layer.
type QuoteReport struct {
	ID         string           `json:"id"`
	Status     string           `json:"status"`
	Lines      []string         `json:"lines"`
	Options    *ParsedOptions   `json:"options,omitempty"`
	Nights     []NightlyOutcome `json:"nights,omitempty"`
	Result     *QuoteResult     `json:"result,omitempty"`
	Conversion *Conversion      `json:"conversion,omitempty"`
}

// HTML joins the lines the way the web form renders them.
func (r *QuoteReport) HTML() string {
	return strings.Join(r.Lines, "<br>")
}

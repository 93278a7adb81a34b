package service

import (
	"fmt"
)

type currencies struct {
	base   string
	target string
}

func remarkSection(lines []string, title string, remarks Remarks) []string {
	if len(remarks) == 0 {
		return lines
	}
	lines = append(lines, fmt.Sprintf("<b>%s</b>", title))
	for _, r := range remarks {
		lines = append(lines, fmt.Sprintf("<i>- %s</i>", r))
	}
	return lines
}

// assembleReport renders the display lines of a computed quote.
func assembleReport(req StayRequest, stay Stay, nights []NightlyOutcome, q QuoteResult, conv *Conversion, cur currencies) []string {
	lines := []string{
		fmt.Sprintf("<b>Calculation details for hotel '%s', category '%s':</b>", req.Hotel, req.Category),
		fmt.Sprintf("Period: %s - %s (%d nights).", stay.CheckIn.Format(DayMonthYear), stay.CheckOut.Format(DayMonthYear), stay.Nights),
		fmt.Sprintf("Guests: adults - %d, children - %d.", stay.Guests.Adults, stay.Guests.Children),
	}

	for _, n := range nights {
		if n.Resolved {
			lines = append(lines, fmt.Sprintf("Night %d (%s): %s %s (room)", n.Night, n.Date.Format(DayMonthYear), formatAmount(n.Price), cur.base))
		} else {
			lines = append(lines, fmt.Sprintf("Night %d (%s): <b>RATE NOT FOUND!</b>", n.Night, n.Date.Format(DayMonthYear)))
		}
	}
	if !q.AllNightsResolved {
		lines = append(lines, "<b>Warning:</b> rates could not be found for every night of the stay.")
	}

	lines = append(lines, fmt.Sprintf("<b>Room subtotal: %s %s</b>", formatAmount(q.RoomTotal), cur.base))

	if len(q.Surcharges) > 0 {
		lines = append(lines, "<b>Extras and surcharges:</b>")
		for _, s := range q.Surcharges {
			lines = append(lines, fmt.Sprintf("  %s: %s %s", s.Label, formatAmount(s.Amount), cur.base))
		}
		lines = append(lines, fmt.Sprintf("<b>Surcharges subtotal: %s %s</b>", formatAmount(q.SurchargeTotal), cur.base))
	}

	lines = remarkSection(lines, "Included in the stay:", q.GeneralRemarks)
	lines = remarkSection(lines, "Child accommodation notes:", q.PolicyRemarks)
	lines = remarkSection(lines, "Notes and special offers:", q.OfferRemarks)
	lines = remarkSection(lines, "Cancellation policy:", q.CancellationRemarks)

	lines = append(lines, fmt.Sprintf("<b>GRAND TOTAL: %s %s</b>", formatAmount(q.GrandTotal()), cur.base))

	if conv != nil {
		lines = append(lines,
			"<hr>",
			fmt.Sprintf("<b>Cost in %s (rate %s):</b>", conv.Currency, formatMoney(conv.Rate.InexactFloat64())),
			fmt.Sprintf("<b>TOTAL: %s %s</b>", formatMoney(conv.Total.InexactFloat64()), conv.Currency),
			fmt.Sprintf("<b>Average per night: %s %s</b>", formatMoney(conv.NightlyAverage.InexactFloat64()), conv.Currency),
		)
	}
	return lines
}

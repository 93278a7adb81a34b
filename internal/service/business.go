package service

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/thoas/go-funk"
)

type offer struct {
	eligible bool
	rule     string
	remark   string
}

// evaluateOffer applies the promotion columns of rec. A cutoff date takes
// precedence over an early-booking lead time; a cutoff that does not parse
// makes the record ineligible.
func evaluateOffer(rec RateRecord, checkIn, today time.Time) offer {
	switch {
	case rec.OfferExpiry != "":
		expiry, ok := parseDayMonthYear(rec.OfferExpiry)
		if !ok || today.After(expiry) {
			return offer{}
		}
		return offer{eligible: true, rule: RuleSpecialOffer, remark: rec.OfferRemark}
	case rec.EarlyBird != "":
		lead, err := strconv.Atoi(rec.EarlyBird)
		if err != nil || daysBetween(today, checkIn) < lead {
			return offer{}
		}
		return offer{
			eligible: true,
			rule:     RuleEarlyBird,
			remark:   fmt.Sprintf("EARLY BIRD applies - %d days before check-in", lead),
		}
	default:
		return offer{eligible: true, rule: RuleStandard, remark: StandardRate}
	}
}

func filterCandidates(records []RateRecord, hotelKey, categoryKey string) []RateRecord {
	var out []RateRecord
	for _, rec := range records {
		if rec.matchesLoosely(hotelKey, categoryKey) {
			out = append(out, rec)
		}
	}
	return out
}

// resolveNight picks the cheapest eligible record for night index i.
// Ties keep the first record in table order.
func resolveNight(candidates []RateRecord, i int, checkIn, today time.Time) NightlyOutcome {
	day := addDays(checkIn, i)
	out := NightlyOutcome{Night: i + 1, Date: day}

	for _, rec := range candidates {
		if !rec.covers(day) || rec.RoomPrice <= 0 {
			continue
		}
		o := evaluateOffer(rec, checkIn, today)
		if !o.eligible {
			continue
		}
		if out.Record == nil || rec.RoomPrice < out.Price {
			chosen := rec
			out.Record = &chosen
			out.Price = rec.RoomPrice
			out.Rule = o.rule
			out.Remark = o.remark
		}
	}

	out.Resolved = out.Record != nil
	return out
}

func mealPrice(rec RateRecord, plan MealPlan) PersonPrice {
	switch plan {
	case MealFullBoard:
		return rec.FullBoard
	case MealHalfBoard:
		return rec.HalfBoard
	case MealAllInclusive:
		return rec.AllInclusive
	default:
		return PersonPrice{}
	}
}

// computeSurcharges prices the add-ons requested in opts against the
// winning record of a night.
func computeSurcharges(rec RateRecord, opts ParsedOptions, g Guests, night int) NightSurcharges {
	var s NightSurcharges

	meal := mealPrice(rec, opts.MealPlan).For(g)
	if meal > 0 {
		s.Items = append(s.Items, SurchargeItem{
			Kind:   SurchargeMeal,
			Label:  fmt.Sprintf("Meal plan surcharge, %s (night %d)", opts.MealPlan, night),
			Night:  night,
			Amount: meal,
		})
	}
	s.Total += meal

	add := func(kind, label string, amount int) {
		if amount <= 0 {
			return
		}
		s.Total += amount
		s.Items = append(s.Items, SurchargeItem{
			Kind:   kind,
			Label:  fmt.Sprintf("%s (night %d)", label, night),
			Night:  night,
			Amount: amount,
		})
	}
	add(SurchargeExtraBedAdult, "Extra bed, adult", rec.ExtraBedAdult*opts.ExtraBedAdults)
	add(SurchargeExtraBedChild, "Extra bed, child", rec.ExtraBedChild*opts.ExtraBedChildren)
	if opts.SharingBed && g.Children > 0 {
		add(SurchargeChildBreakfast, "Child breakfast, sharing bed", rec.ChildBreakfast*g.Children)
	}
	return s
}

// newYearsEveDinner finds the mandatory Dec 31 dinner for stays spanning
// that night. The record must match hotel and category exactly.
func newYearsEveDinner(records []RateRecord, stay Stay) (*SurchargeItem, string) {
	eve := time.Date(stay.CheckIn.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
	if eve.Before(stay.CheckIn) || !eve.Before(stay.CheckOut) {
		return nil, ""
	}

	for _, rec := range records {
		if !rec.matchesExactly(stay.HotelKey, stay.CategoryKey) || !rec.covers(eve) {
			continue
		}
		total := rec.NYDinner.For(stay.Guests)
		if total <= 0 {
			return nil, ""
		}
		return &SurchargeItem{
			Kind:   SurchargeNewYearDinner,
			Label:  "Mandatory New Year's Eve dinner (31.12)",
			Amount: total,
		}, rec.NYDinnerRemark
	}
	return nil, ""
}

// convert expresses total in the target currency at rate, rounded to cents.
func convert(total int, rate float64, nights int, currency string) *Conversion {
	if rate <= 0 || total <= 0 || nights <= 0 {
		return nil
	}
	r := decimal.NewFromFloat(rate)
	converted := decimal.NewFromInt(int64(total)).Div(r)
	return &Conversion{
		Currency:       currency,
		Rate:           r,
		Total:          converted.Round(2),
		NightlyAverage: converted.Div(decimal.NewFromInt(int64(nights))).Round(2),
	}
}

// Catalogue maps region to hotel to its sorted categories.
type Catalogue map[string]map[string][]string

// Regions returns the sorted region names.
func (c Catalogue) Regions() []string {
	regions := funk.Keys(c).([]string)
	sort.Strings(regions)
	return regions
}

// Hotels returns the sorted hotel names of region.
func (c Catalogue) Hotels(region string) []string {
	hotels, ok := c[region]
	if !ok || len(hotels) == 0 {
		return nil
	}
	names := funk.Keys(hotels).([]string)
	sort.Strings(names)
	return names
}

func buildCatalogue(rows []Row, cols Columns) Catalogue {
	cat := make(Catalogue)
	for _, row := range rows {
		region, hotel, category := row.String(cols.Region), row.String(cols.Hotel), row.String(cols.Category)
		if region == "" || hotel == "" || category == "" {
			continue
		}
		if cat[region] == nil {
			cat[region] = make(map[string][]string)
		}
		cat[region][hotel] = append(cat[region][hotel], category)
	}
	for _, hotels := range cat {
		for hotel, categories := range hotels {
			uniq := funk.UniqString(categories)
			sort.Strings(uniq)
			hotels[hotel] = uniq
		}
	}
	return cat
}

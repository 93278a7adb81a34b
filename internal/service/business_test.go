package service

import (
	"testing"
)

func TestEvaluateOffer(t *testing.T) {
	checkIn := day("01.08.2025") // 31 days after today

	tests := []struct {
		name     string
		cells    map[string]any
		eligible bool
		rule     string
		remark   string
	}{
		{"standard", nil, true, RuleStandard, StandardRate},
		{"cutoff today", map[string]any{"SPOEXP": "01.07.2025", "REMSPO": "Summer deal"}, true, RuleSpecialOffer, "Summer deal"},
		{"cutoff later", map[string]any{"SPOEXP": "15.07.2025", "REMSPO": "Summer deal"}, true, RuleSpecialOffer, "Summer deal"},
		{"cutoff passed", map[string]any{"SPOEXP": "30.06.2025", "REMSPO": "Summer deal"}, false, "", ""},
		{"cutoff unparseable", map[string]any{"SPOEXP": "end of June"}, false, "", ""},
		{"cutoff passed ignores early bird", map[string]any{"SPOEXP": "30.06.2025", "EBIRD": "0"}, false, "", ""},
		{"cutoff valid ignores early bird", map[string]any{"SPOEXP": "01.07.2025", "EBIRD": "90"}, true, RuleSpecialOffer, ""},
		{"early bird met", map[string]any{"EBIRD": "30"}, true, RuleEarlyBird, "EARLY BIRD applies - 30 days before check-in"},
		{"early bird exact", map[string]any{"EBIRD": "31"}, true, RuleEarlyBird, "EARLY BIRD applies - 31 days before check-in"},
		{"early bird missed", map[string]any{"EBIRD": "45"}, false, "", ""},
		{"early bird not a number", map[string]any{"EBIRD": "soon"}, false, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := evaluateOffer(record(tt.cells), checkIn, today)
			if got.eligible != tt.eligible || got.rule != tt.rule || got.remark != tt.remark {
				t.Errorf("evaluateOffer = %+v, want {%v %q %q}", got, tt.eligible, tt.rule, tt.remark)
			}
		})
	}
}

func TestResolveNight_CheapestWins(t *testing.T) {
	candidates := []RateRecord{
		record(map[string]any{"ROOM_IDR": "100000"}),
		record(map[string]any{"ROOM_IDR": "95000", "REM1": "cheaper"}),
	}

	got := resolveNight(candidates, 0, day("01.08.2025"), today)
	if !got.Resolved || got.Price != 95000 {
		t.Fatalf("resolveNight = %+v, want 95000", got)
	}
	if got.Record.GeneralRemark != "cheaper" {
		t.Errorf("winning record remark = %q", got.Record.GeneralRemark)
	}
}

func TestResolveNight_TieKeepsFirst(t *testing.T) {
	candidates := []RateRecord{
		record(map[string]any{"REM1": "first"}),
		record(map[string]any{"REM1": "second"}),
	}

	got := resolveNight(candidates, 2, day("01.08.2025"), today)
	if got.Record == nil || got.Record.GeneralRemark != "first" {
		t.Fatalf("resolveNight tie picked %+v", got.Record)
	}
	if got.Night != 3 || !got.Date.Equal(day("03.08.2025")) {
		t.Errorf("night %d dated %v", got.Night, got.Date)
	}
}

func TestResolveNight_SkipsUnusableRecords(t *testing.T) {
	tests := []struct {
		name  string
		cells map[string]any
	}{
		{"zero price", map[string]any{"ROOM_IDR": "0"}},
		{"unparseable price", map[string]any{"ROOM_IDR": "on request"}},
		{"missing period", map[string]any{"START_PERIOD": ""}},
		{"bad period", map[string]any{"END_PERIOD": "2025-08-31"}},
		{"outside period", map[string]any{"START_PERIOD": "01.09.2025", "END_PERIOD": "30.09.2025"}},
		{"expired offer", map[string]any{"SPOEXP": "01.06.2025"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveNight([]RateRecord{record(tt.cells)}, 0, day("01.08.2025"), today)
			if got.Resolved || got.Record != nil || got.Price != 0 {
				t.Errorf("resolveNight = %+v, want unresolved", got)
			}
		})
	}
}

func TestResolveNight_PeriodIsInclusive(t *testing.T) {
	rec := record(map[string]any{"START_PERIOD": "01.08.2025", "END_PERIOD": "01.08.2025"})
	if got := resolveNight([]RateRecord{rec}, 0, day("01.08.2025"), today); !got.Resolved {
		t.Error("single-day period should cover its own day")
	}
}

func TestFilterCandidates(t *testing.T) {
	records := []RateRecord{
		record(map[string]any{"HOTELN": "Sunrise Resort & Spa", "CATEGORY": "Deluxe Ocean"}),
		record(map[string]any{"HOTELN": "Moonlight", "CATEGORY": "Deluxe"}),
		record(map[string]any{"HOTELN": "SUNRISE  resort", "CATEGORY": "Suite"}),
	}

	got := filterCandidates(records, normalizeText("sunrise resort"), normalizeText("deluxe"))
	if len(got) != 1 || got[0].Hotel != "Sunrise Resort & Spa" {
		t.Errorf("filterCandidates = %+v", got)
	}
}

func TestComputeSurcharges(t *testing.T) {
	rec := record(map[string]any{
		"FB_ADT":    "100000",
		"FB_CHLD":   "50000",
		"HB_ADT":    "60000",
		"EBED_ADT":  "250000",
		"EBED_CHLD": "150000",
		"BFST_CHLD": "40000",
	})

	tests := []struct {
		name   string
		opts   ParsedOptions
		guests Guests
		total  int
		kinds  []string
	}{
		{"nothing", ParsedOptions{}, Guests{Adults: 2}, 0, nil},
		{"full board", ParsedOptions{MealPlan: MealFullBoard}, Guests{Adults: 2, Children: 1}, 250000, []string{SurchargeMeal}},
		{"half board without child price", ParsedOptions{MealPlan: MealHalfBoard}, Guests{Adults: 2, Children: 1}, 120000, []string{SurchargeMeal}},
		{"all inclusive not priced", ParsedOptions{MealPlan: MealAllInclusive}, Guests{Adults: 2}, 0, nil},
		{"extra bed adult", ParsedOptions{ExtraBedAdults: 1}, Guests{Adults: 3}, 250000, []string{SurchargeExtraBedAdult}},
		{"extra bed child", ParsedOptions{ExtraBedChildren: 1}, Guests{Adults: 2, Children: 1}, 150000, []string{SurchargeExtraBedChild}},
		{"sharing bed", ParsedOptions{SharingBed: true}, Guests{Adults: 2, Children: 2}, 80000, []string{SurchargeChildBreakfast}},
		{"sharing bed without children", ParsedOptions{SharingBed: true}, Guests{Adults: 2}, 0, nil},
		{
			"everything",
			ParsedOptions{MealPlan: MealFullBoard, ExtraBedAdults: 1, SharingBed: true},
			Guests{Adults: 3, Children: 1},
			350000 + 250000 + 40000,
			[]string{SurchargeMeal, SurchargeExtraBedAdult, SurchargeChildBreakfast},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := computeSurcharges(rec, tt.opts, tt.guests, 1)
			if got.Total != tt.total {
				t.Errorf("total = %d, want %d", got.Total, tt.total)
			}
			if len(got.Items) != len(tt.kinds) {
				t.Fatalf("items = %+v, want kinds %v", got.Items, tt.kinds)
			}
			sum := 0
			for i, item := range got.Items {
				sum += item.Amount
				if item.Kind != tt.kinds[i] || item.Night != 1 {
					t.Errorf("item %d = %+v, want kind %s", i, item, tt.kinds[i])
				}
			}
			if sum != got.Total {
				t.Errorf("items sum to %d, total is %d", sum, got.Total)
			}
		})
	}
}

func TestComputeSurcharges_NegativeMealCountsInTotal(t *testing.T) {
	rec := record(map[string]any{"FB_ADT": "-1000"})

	got := computeSurcharges(rec, ParsedOptions{MealPlan: MealFullBoard}, Guests{Adults: 2}, 1)
	if got.Total != -2000 || len(got.Items) != 0 {
		t.Errorf("computeSurcharges = %+v", got)
	}
}

func TestNewYearsEveDinner(t *testing.T) {
	winter := map[string]any{
		"START_PERIOD":   "01.12.2025",
		"END_PERIOD":     "31.01.2026",
		"NY_DINNER_ADT":  "1000000",
		"NY_DINNER_CHLD": "500000",
		"REMNYD":         "Gala dinner with live music",
	}
	stay := func(in, out string, hotel, category string, g Guests) Stay {
		s, err := StayRequest{
			CheckIn: in, CheckOut: out, Hotel: hotel, Category: category,
			Adults: g.Adults, Children: g.Children,
		}.Validate()
		if err != nil {
			t.Fatal(err)
		}
		return s
	}

	records := []RateRecord{record(winter)}

	item, remark := newYearsEveDinner(records, stay("30.12.2025", "02.01.2026", "Sunrise", "Deluxe", Guests{Adults: 2, Children: 1}))
	if item == nil || item.Amount != 2500000 || item.Kind != SurchargeNewYearDinner {
		t.Fatalf("dinner = %+v", item)
	}
	if remark != "Gala dinner with live music" {
		t.Errorf("remark = %q", remark)
	}

	tests := []struct {
		name string
		stay Stay
	}{
		{"substring match is not enough", stay("30.12.2025", "02.01.2026", "Sun", "Deluxe", Guests{Adults: 2})},
		{"checkout on the 31st", stay("28.12.2025", "31.12.2025", "Sunrise", "Deluxe", Guests{Adults: 2})},
		{"checkin after the eve", stay("02.01.2026", "05.01.2026", "Sunrise", "Deluxe", Guests{Adults: 2})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if item, _ := newYearsEveDinner(records, tt.stay); item != nil {
				t.Errorf("unexpected dinner %+v", item)
			}
		})
	}

	t.Run("checkin on the 31st", func(t *testing.T) {
		item, _ := newYearsEveDinner(records, stay("31.12.2025", "01.01.2026", "Sunrise", "Deluxe", Guests{Adults: 1}))
		if item == nil || item.Amount != 1000000 {
			t.Errorf("dinner = %+v", item)
		}
	})

	t.Run("zero price", func(t *testing.T) {
		free := []RateRecord{record(map[string]any{"START_PERIOD": "01.12.2025", "END_PERIOD": "31.01.2026"})}
		if item, _ := newYearsEveDinner(free, stay("30.12.2025", "02.01.2026", "Sunrise", "Deluxe", Guests{Adults: 2})); item != nil {
			t.Errorf("unexpected dinner %+v", item)
		}
	})
}

func TestConvert(t *testing.T) {
	conv := convert(2100000, 15000, 3, "USD")
	if conv == nil {
		t.Fatal("expected a conversion")
	}
	if got := conv.Total.StringFixed(2); got != "140.00" {
		t.Errorf("total = %s", got)
	}
	if got := conv.NightlyAverage.StringFixed(2); got != "46.67" {
		t.Errorf("average = %s", got)
	}

	for _, rate := range []float64{0, -15000} {
		if convert(2100000, rate, 3, "USD") != nil {
			t.Errorf("rate %v should not convert", rate)
		}
	}
	if convert(0, 15000, 3, "USD") != nil {
		t.Error("zero total should not convert")
	}
}

func TestBuildCatalogue(t *testing.T) {
	rows := []Row{
		rateRow(map[string]any{"CATEGORY": "Suite"}),
		rateRow(nil),
		rateRow(map[string]any{"CATEGORY": " Deluxe "}),
		rateRow(map[string]any{"HOTELN": "Moonlight", "REGION": "Lombok", "CATEGORY": "Villa"}),
		rateRow(map[string]any{"REGION": ""}),
		rateRow(map[string]any{"HOTELN": "Ghost", "CATEGORY": nil}),
	}

	cat := buildCatalogue(rows, DefaultColumns())

	if got := cat.Regions(); len(got) != 2 || got[0] != "Bali" || got[1] != "Lombok" {
		t.Errorf("regions = %v", got)
	}
	if got := cat.Hotels("Bali"); len(got) != 1 || got[0] != "Sunrise" {
		t.Errorf("hotels = %v", got)
	}
	if got := cat["Bali"]["Sunrise"]; len(got) != 2 || got[0] != "Deluxe" || got[1] != "Suite" {
		t.Errorf("categories = %v", got)
	}
	if got := cat.Hotels("Java"); got != nil {
		t.Errorf("unknown region hotels = %v", got)
	}
}

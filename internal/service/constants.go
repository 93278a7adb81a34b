package service

import (
	"github.com/omerorhan/stay-pricing/internal/storage"
)

const StandardRate = "Standard rate"

const (
	StatusComputed = "computed"
	StatusInvalid  = "invalid"
	StatusFailed   = "failed"
)

const (
	RuleStandard     = "standard"
	RuleSpecialOffer = "special_offer"
	RuleEarlyBird    = "early_bird"
)

const (
	SurchargeMeal           = "meal_plan"
	SurchargeExtraBedAdult  = "extra_bed_adult"
	SurchargeExtraBedChild  = "extra_bed_child"
	SurchargeChildBreakfast = "child_breakfast"
	SurchargeNewYearDinner  = "new_year_dinner"
)

const DayMonthYear = "02.01.2006"

// MaxGuests bounds the adults and children of one request.
const MaxGuests = 99

// Storage types used throughout the service
type Row = storage.Row
type Source = storage.Source

package service

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
)

// QuoteService prices stays against a rate table source
type QuoteService struct {
	source Source
	opts   *ServiceOptions
}

// ServiceOptions provides configuration for the quote service
type ServiceOptions struct {
	Columns        Columns          `json:"columns"`
	BaseCurrency   string           `json:"baseCurrency"`
	TargetCurrency string           `json:"targetCurrency"`
	EnableLogging  bool             `json:"enableLogging"`
	Clock          func() time.Time `json:"-"`
}

// DefaultServiceOptions returns sensible default options
func DefaultServiceOptions() *ServiceOptions {
	return &ServiceOptions{
		Columns:        DefaultColumns(),
		BaseCurrency:   "IDR",
		TargetCurrency: "USD",
		EnableLogging:  true,
		Clock:          time.Now,
	}
}

// NewQuoteService creates a quote service reading rates from source
func NewQuoteService(source Source, options ...ServiceOption) (*QuoteService, error) {
	if source == nil {
		return nil, errors.New("rate source is required")
	}
	opts := DefaultServiceOptions()

	// Apply options
	for _, option := range options {
		option(opts)
	}

	return &QuoteService{
		source: source,
		opts:   opts,
	}, nil
}

// ServiceOption is a function that configures service options
type ServiceOption func(*ServiceOptions)

// WithColumns sets the rate table header names
func WithColumns(c Columns) ServiceOption {
	return func(opts *ServiceOptions) {
		opts.Columns = c
	}
}

// WithCurrencies sets the rate table currency and the conversion target
func WithCurrencies(base, target string) ServiceOption {
	return func(opts *ServiceOptions) {
		opts.BaseCurrency = base
		opts.TargetCurrency = target
	}
}

// WithClock replaces time.Now when judging promotion eligibility
func WithClock(clock func() time.Time) ServiceOption {
	return func(opts *ServiceOptions) {
		if clock != nil {
			opts.Clock = clock
		}
	}
}

// WithLogging enables/disables logging
func WithLogging(enabled bool) ServiceOption {
	return func(opts *ServiceOptions) {
		opts.EnableLogging = enabled
	}
}

// Quote prices req. It never returns nil: validation problems and failures
// are reported as a single line with the matching Status.
func (qs *QuoteService) Quote(ctx context.Context, req StayRequest) (report *QuoteReport) {
	report = &QuoteReport{ID: uuid.NewString()}

	defer func() {
		if r := recover(); r != nil {
			qs.log("💥 [%s] critical failure: %v\n%s", report.ID, r, debug.Stack())
			report.fail(fmt.Sprintf("%T", r))
		}
	}()

	qs.log("🧮 [%s] quote requested: %+v", report.ID, req)

	stay, err := req.Validate()
	if err != nil {
		var verr *ValidationError
		if !errors.As(err, &verr) {
			report.fail(fmt.Sprintf("%T", err))
			return report
		}
		qs.log("⚠️ [%s] rejected: %s", report.ID, verr.Message)
		report.Status = StatusInvalid
		report.Lines = []string{"<b>Error:</b> " + verr.Message}
		return report
	}

	opts := ParseOptions(req.Options)
	report.Options = &opts
	qs.log("📝 [%s] parsed options: %+v", report.ID, opts)

	rows, err := qs.source.FetchRows(ctx)
	if err != nil {
		qs.log("❌ [%s] failed to fetch rate table: %+v", report.ID, err)
		report.fail(fmt.Sprintf("%T", pkgerrors.Cause(err)))
		return report
	}

	records := decodeRecords(rows, qs.opts.Columns)
	candidates := filterCandidates(records, stay.HotelKey, stay.CategoryKey)
	today := dateOnly(qs.opts.Clock())

	result := newQuoteResult()
	nights := make([]NightlyOutcome, 0, stay.Nights)
	for i := 0; i < stay.Nights; i++ {
		night := resolveNight(candidates, i, stay.CheckIn, today)

		var extras NightSurcharges
		if night.Resolved {
			qs.log("✅ [%s] night %s: %d %s (%s)", report.ID, night.Date.Format(DayMonthYear), night.Price, qs.opts.BaseCurrency, night.Remark)
			extras = computeSurcharges(*night.Record, opts, stay.Guests, night.Night)
		} else {
			qs.log("⚠️ [%s] night %s: no eligible rate", report.ID, night.Date.Format(DayMonthYear))
		}

		result = result.addNight(night, extras, stay.Guests)
		nights = append(nights, night)
	}

	if item, remark := qs.newYearsEve(report.ID, records, stay); item != nil {
		result = result.addSurcharge(*item, remark)
	}

	conv := convert(result.GrandTotal(), parseRate(req.CurrencyRate), stay.Nights, qs.opts.TargetCurrency)
	cur := currencies{base: qs.opts.BaseCurrency, target: qs.opts.TargetCurrency}

	report.Status = StatusComputed
	report.Nights = nights
	report.Result = &result
	report.Conversion = conv
	report.Lines = assembleReport(req, stay, nights, result, conv, cur)

	qs.log("📊 [%s] grand total %d %s", report.ID, result.GrandTotal(), qs.opts.BaseCurrency)
	return report
}

// newYearsEveLookup finds the mandatory Dec 31 dinner of a stay.
var newYearsEveLookup = newYearsEveDinner

// newYearsEve wraps the Dec 31 dinner lookup; a failure there costs the
// quote its dinner line, nothing more.
func (qs *QuoteService) newYearsEve(id string, records []RateRecord, stay Stay) (item *SurchargeItem, remark string) {
	defer func() {
		if r := recover(); r != nil {
			qs.log("❌ [%s] New Year's Eve dinner lookup failed: %v\n%s", id, r, debug.Stack())
			item, remark = nil, ""
		}
	}()
	return newYearsEveLookup(records, stay)
}

// Catalogue lists regions, hotels and categories found in the rate table.
// A source failure yields an empty catalogue.
func (qs *QuoteService) Catalogue(ctx context.Context) Catalogue {
	rows, err := qs.source.FetchRows(ctx)
	if err != nil {
		qs.log("❌ Failed to load hotel catalogue: %+v", err)
		return Catalogue{}
	}
	return buildCatalogue(rows, qs.opts.Columns)
}

// Close releases the rate source
func (qs *QuoteService) Close() error {
	return qs.source.Close()
}

func (r *QuoteReport) fail(kind string) {
	r.Status = StatusFailed
	r.Options = nil
	r.Nights = nil
	r.Result = nil
	r.Conversion = nil
	r.Lines = []string{fmt.Sprintf("<b>An unexpected critical error occurred (%s).</b>", kind)}
}

func (qs *QuoteService) log(format string, args ...interface{}) {
	if qs.opts.EnableLogging {
		// Use fmt.Printf to write to stdout (INFO level in GCP) instead of stderr (ERROR level)
		fmt.Printf("[QuoteService] "+format+"\n", args...)
	}
}

package pricing

import (
	"context"

	"github.com/omerorhan/stay-pricing/internal/service"
	"github.com/omerorhan/stay-pricing/internal/storage"
)

// Client provides a clean public API for the stay pricing service
type Client struct {
	service *service.QuoteService
}

// NewClient creates a pricing client reading rates from source
func NewClient(source Source, options ...ServiceOption) (*Client, error) {
	svc, err := service.NewQuoteService(source, options...)
	if err != nil {
		return nil, err
	}

	return &Client{
		service: svc,
	}, nil
}

// Quote prices a stay. The report is never nil.
func (c *Client) Quote(ctx context.Context, req StayRequest) *QuoteReport {
	return c.service.Quote(ctx, req)
}

// Catalogue lists the regions, hotels and categories of the rate table
func (c *Client) Catalogue(ctx context.Context) Catalogue {
	return c.service.Catalogue(ctx)
}

// Close releases the rate source
func (c *Client) Close() error {
	return c.service.Close()
}

// Service options (re-exported for convenience)
type ServiceOption = service.ServiceOption

// Re-export service options for clean API
var (
	WithColumns    = service.WithColumns
	WithCurrencies = service.WithCurrencies
	WithClock      = service.WithClock
	WithLogging    = service.WithLogging
	DefaultColumns = service.DefaultColumns
	ParseOptions   = service.ParseOptions
)

// Re-export common types for convenience
type (
	StayRequest   = service.StayRequest
	QuoteReport   = service.QuoteReport
	QuoteResult   = service.QuoteResult
	ParsedOptions = service.ParsedOptions
	Catalogue     = service.Catalogue
	Columns       = service.Columns
	Row           = storage.Row
	Source        = storage.Source
	SourceOptions = storage.SourceOptions
)

// Report statuses
const (
	StatusComputed = service.StatusComputed
	StatusInvalid  = service.StatusInvalid
	StatusFailed   = service.StatusFailed
)

// Rate sources (re-exported for convenience)
var (
	NewMemorySource      = storage.NewMemorySource
	NewExcelSource       = storage.NewExcelSource
	NewRedisSource       = storage.NewRedisSource
	OpenSQLSource        = storage.OpenSQLSource
	OpenSource           = storage.Open
	ReadRows             = storage.ReadRows
	DefaultSourceOptions = storage.DefaultSourceOptions
)

// Rate table publication (re-exported for convenience)
type (
	Publisher       = service.Publisher
	PublisherOption = service.PublisherOption
)

var (
	NewPublisher         = service.NewPublisher
	WithPublishSheet     = service.WithPublishSheet
	WithPublishInterval  = service.WithPublishInterval
	WithLockTTL          = service.WithLockTTL
	WithPublisherLogging = service.WithPublisherLogging
)

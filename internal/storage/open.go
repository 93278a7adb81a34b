package storage

import (
	"github.com/pkg/errors"
)

// Open builds the source named by kind.
func Open(kind string, opts *SourceOptions) (Source, error) {
	if opts == nil {
		opts = DefaultSourceOptions()
	}
	switch kind {
	case KindExcel, "":
		if opts.File == "" {
			return nil, errors.New("RATE_FILE not set")
		}
		return NewExcelSource(opts.File, opts.Sheet), nil
	case KindRedis:
		return NewRedisSource(opts.RedisAddr, opts.Sheet, WithSnapshotTTL(opts.SnapshotTTL))
	case KindSQL:
		return OpenSQLSource(opts.DatabaseURL, opts.Sheet)
	case KindMemory:
		return NewMemorySource(opts.Rows), nil
	default:
		return nil, errors.Errorf("unknown rate source %q", kind)
	}
}

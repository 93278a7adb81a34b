package storage

import (
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Row is one flat record of the rate table keyed by column header.
type Row map[string]any

// String returns the trimmed string form of a cell, or "" when absent.
func (r Row) String(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	return strings.TrimSpace(cast.ToString(v))
}

// RateTable is the snapshot envelope stored by the Redis source.
type RateTable struct {
	Sheet      string    `json:"sheet"`
	Revision   int64     `json:"revision"`
	ImportedAt time.Time `json:"importedAt"`
	Rows       []Row     `json:"rows"`
}

// SourceOptions configures Open.
type SourceOptions struct {
	File        string
	Sheet       string
	RedisAddr   string
	SnapshotTTL time.Duration
	DatabaseURL string
	Rows        []Row
}

func DefaultSourceOptions() *SourceOptions {
	return &SourceOptions{
		Sheet:     DefaultSheet,
		RedisAddr: "tcp://localhost:6379",
	}
}

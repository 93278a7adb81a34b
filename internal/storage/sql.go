package storage

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// RateRowModel stores one rate table row as a JSON payload.
type RateRowModel struct {
	ID       uint   `gorm:"primaryKey"`
	Sheet    string `gorm:"size:128;index:idx_rate_rows_sheet_position,priority:1;not null"`
	Position int    `gorm:"index:idx_rate_rows_sheet_position,priority:2;not null"`
	Payload  string `gorm:"type:text;not null"`
}

func (RateRowModel) TableName() string { return "rate_rows" }

// SQLSource reads rate rows from a relational table through gorm.
type SQLSource struct {
	db    *gorm.DB
	sheet string
}

// OpenSQLSource picks postgres for postgres:// and key=value DSNs, sqlite otherwise.
func OpenSQLSource(dsn, sheet string) (*SQLSource, error) {
	if dsn == "" {
		return nil, errors.New("DATABASE_URL not set")
	}
	db, err := gorm.Open(dialector(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open rate database")
	}
	return NewSQLSource(db, sheet)
}

// NewSQLSource wraps an open connection and migrates the rate table.
func NewSQLSource(db *gorm.DB, sheet string) (*SQLSource, error) {
	if err := db.AutoMigrate(&RateRowModel{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate rate_rows")
	}
	if sheet == "" {
		sheet = DefaultSheet
	}
	return &SQLSource{db: db, sheet: sheet}, nil
}

func dialector(dsn string) gorm.Dialector {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") || strings.Contains(dsn, "host=") {
		return postgres.Open(dsn)
	}
	return sqlite.Open(strings.TrimPrefix(dsn, "sqlite://"))
}

func (ss *SQLSource) FetchRows(ctx context.Context) ([]Row, error) {
	var models []RateRowModel
	err := ss.db.WithContext(ctx).
		Where("sheet = ?", ss.sheet).
		Order("position asc").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query rate rows of %s", ss.sheet)
	}

	rows := make([]Row, 0, len(models))
	for _, m := range models {
		var r Row
		if err := json.Unmarshal([]byte(m.Payload), &r); err != nil {
			return nil, errors.Wrapf(err, "corrupt payload in rate row %d", m.ID)
		}
		rows = append(rows, r)
	}
	return rows, nil
}

// ImportRows replaces every row of sheet in one transaction.
func (ss *SQLSource) ImportRows(ctx context.Context, sheet string, rows []Row) error {
	if sheet == "" {
		sheet = ss.sheet
	}
	return ss.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sheet = ?", sheet).Delete(&RateRowModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to clear rate rows")
		}
		if len(rows) == 0 {
			return nil
		}

		models := make([]RateRowModel, len(rows))
		for i, r := range rows {
			payload, err := json.Marshal(r)
			if err != nil {
				return errors.Wrapf(err, "failed to marshal row %d", i)
			}
			models[i] = RateRowModel{Sheet: sheet, Position: i, Payload: string(payload)}
		}
		return errors.Wrap(tx.CreateInBatches(models, 200).Error, "failed to insert rate rows")
	})
}

func (ss *SQLSource) Close() error {
	sqlDB, err := ss.db.DB()
	if err != nil {
		return errors.WithStack(err)
	}
	return sqlDB.Close()
}

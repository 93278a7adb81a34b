package storage

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

var (
	ErrSheetNotFound = errors.New("sheet not found in workbook")
	ErrNoHeader      = errors.New("sheet has no header row")
)

// ExcelSource reads rate rows from one sheet of an xlsx workbook.
type ExcelSource struct {
	path  string
	sheet string
}

func NewExcelSource(path, sheet string) *ExcelSource {
	if sheet == "" {
		sheet = DefaultSheet
	}
	return &ExcelSource{path: path, sheet: sheet}
}

// FetchRows opens the workbook anew on every call so edits to the file
// show up in the next quote.
func (es *ExcelSource) FetchRows(ctx context.Context) ([]Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := excelize.OpenFile(es.path)
	if err != nil {
		return nil, errors.Wrapf(err, "error opening workbook %s", es.path)
	}
	defer f.Close()

	return sheetRows(f, es.sheet)
}

func (es *ExcelSource) Close() error { return nil }

// ReadRows parses the named sheet of an xlsx stream.
func ReadRows(r io.Reader, sheet string) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "error reading workbook")
	}
	defer f.Close()

	if sheet == "" {
		sheet = DefaultSheet
	}
	return sheetRows(f, sheet)
}

func sheetRows(f *excelize.File, sheet string) ([]Row, error) {
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, errors.Wrapf(ErrSheetNotFound, "sheet %q (have %v)", sheet, f.GetSheetList())
	}

	// Raw values keep prices free of display grouping and dates as serials
	grid, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrapf(err, "error reading sheet %s", sheet)
	}
	dates := newDateCells(f, sheet)

	var header []string
	rows := make([]Row, 0, len(grid))
	for r, cells := range grid {
		if isBlank(cells) {
			continue
		}
		if header == nil {
			header = make([]string, len(cells))
			for i, c := range cells {
				header[i] = strings.TrimSpace(c)
			}
			continue
		}

		row := make(Row, len(header))
		for i, key := range header {
			if key == "" {
				continue
			}
			val := ""
			if i < len(cells) {
				val = dates.format(i+1, r+1, strings.TrimSpace(cells[i]))
			}
			row[key] = val
		}
		rows = append(rows, row)
	}

	if header == nil {
		return nil, errors.Wrapf(ErrNoHeader, "sheet %q", sheet)
	}
	return rows, nil
}

// dateCells renders date-formatted numeric cells as DD.MM.YYYY, the layout
// typed-in period and offer dates use.
type dateCells struct {
	f        *excelize.File
	sheet    string
	date1904 bool
	styles   map[int]bool
}

func newDateCells(f *excelize.File, sheet string) *dateCells {
	d := &dateCells{f: f, sheet: sheet, styles: make(map[int]bool)}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		d.date1904 = *props.Date1904
	}
	return d
}

func (d *dateCells) format(col, row int, raw string) string {
	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return raw
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return raw
	}
	styleID, err := d.f.GetCellStyle(d.sheet, cell)
	if err != nil || !d.isDateStyle(styleID) {
		return raw
	}
	t, err := excelize.ExcelDateToTime(serial, d.date1904)
	if err != nil {
		return raw
	}
	return t.Format("02.01.2006")
}

func (d *dateCells) isDateStyle(styleID int) bool {
	if isDate, ok := d.styles[styleID]; ok {
		return isDate
	}
	isDate := false
	if style, err := d.f.GetStyle(styleID); err == nil && style != nil {
		if style.CustomNumFmt != nil {
			isDate = isDateFormat(*style.CustomNumFmt)
		} else {
			isDate = builtInDateFormats[style.NumFmt]
		}
	}
	d.styles[styleID] = isDate
	return isDate
}

// Built-in number format IDs that show a calendar date.
var builtInDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true, 32: true, 33: true, 34: true, 35: true, 36: true,
	50: true, 51: true, 52: true, 53: true, 54: true, 55: true, 56: true, 57: true, 58: true,
}

// isDateFormat reports whether a custom format code has day or year
// tokens outside quoted literals and bracketed sections.
func isDateFormat(code string) bool {
	var b strings.Builder
	quoted, bracketed := false, false
	for _, r := range code {
		switch {
		case r == '"':
			quoted = !quoted
		case quoted:
		case r == '[':
			bracketed = true
		case r == ']':
			bracketed = false
		case bracketed:
		default:
			b.WriteRune(r)
		}
	}
	plain := strings.ToLower(b.String())
	return strings.ContainsAny(plain, "dy")
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// WriteWorkbook saves rows into a new workbook at path, columns in the given order.
func WriteWorkbook(path, sheet string, columns []string, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheet == "" {
		sheet = DefaultSheet
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return errors.Wrap(err, "error naming sheet")
	}

	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return errors.Wrap(err, "error writing header")
	}

	for i, r := range rows {
		values := make([]any, len(columns))
		for j, c := range columns {
			values[j] = r.String(c)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.WithStack(err)
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return errors.Wrapf(err, "error writing row %d", i+1)
		}
	}
	return errors.Wrapf(f.SaveAs(path), "error saving workbook %s", path)
}

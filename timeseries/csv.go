package timeseries

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	ValueColumn string // Column name for values (used when HasHeader is true)
	ColumnIndex int    // Zero-based column position (used when ValueColumn is empty)
	DateColumn  string // Column name for dates (optional)
	DateFormat  string // Date format (default: "2006-01")
	HasHeader   bool   // Whether CSV has header row (default: true)
	Delimiter   rune   // Field delimiter (default: ',')
	SkipRows    int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ColumnIndex: 1,
		DateFormat:  "2006-01",
		HasHeader:   true,
		Delimiter:   ',',
	}
}

// LoadCSV loads a time series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	series, err := LoadCSVFromReader(file, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return series, nil
}

// LoadCSVFromReader loads a time series from an io.Reader.
//
// Unlike permissive loaders, a row whose value cell does not parse as a number
// is an error, not a skip: a corrupted input file should surface immediately
// rather than silently shorten the series.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	valueIdx := opts.ColumnIndex
	dateIdx := -1

	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}
		found := opts.ValueColumn == ""
		for i, h := range header {
			h = strings.TrimSpace(strings.Trim(h, "\""))
			switch {
			case opts.ValueColumn != "" && h == opts.ValueColumn:
				valueIdx = i
				found = true
			case opts.DateColumn != "" && h == opts.DateColumn:
				dateIdx = i
			case h == "ds" || h == "date" || h == "Date" || h == "Month" || h == "Year":
				if dateIdx == -1 {
					dateIdx = i
				}
			}
		}
		if !found {
			return nil, fmt.Errorf("column %q not found in header", opts.ValueColumn)
		}
	}

	var values []float64
	var timestamps []time.Time
	row := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row++

		if valueIdx < 0 || valueIdx >= len(record) {
			return nil, fmt.Errorf("row %d: value column %d out of range (%d fields)", row, valueIdx, len(record))
		}

		valStr := strings.TrimSpace(strings.Trim(record[valueIdx], "\""))
		if valStr == "" {
			continue // trailing blank rows are common in exported CSVs
		}
		val, err := strconv.ParseFloat(valStr, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: cannot parse value %q", row, valStr)
		}
		values = append(values, val)

		if dateIdx >= 0 && dateIdx < len(record) {
			dateStr := strings.TrimSpace(strings.Trim(record[dateIdx], "\""))
			if ts, perr := parseDate(dateStr, opts.DateFormat); perr == nil {
				timestamps = append(timestamps, ts)
			}
		}
	}

	if len(values) == 0 {
		return nil, errors.New("no valid data found in CSV")
	}

	if len(timestamps) == len(values) {
		return &Series{
			Timestamps: timestamps,
			Values:     values,
		}, nil
	}
	return New(values), nil
}

// parseDate tries the configured format first, then common fallbacks.
func parseDate(s, format string) (time.Time, error) {
	formats := []string{
		format,
		"2006-01",
		"2006-01-02",
		"2006-01-02T15:04:05",
		"2006/01/02",
		"2006",
	}
	var err error
	var ts time.Time
	for _, f := range formats {
		ts, err = time.Parse(f, s)
		if err == nil {
			return ts, nil
		}
	}
	return time.Time{}, err
}

// LoadCSVColumn loads a named column from a CSV file as a series.
func LoadCSVColumn(filename string, column string) (*Series, error) {
	opts := DefaultCSVOptions()
	opts.ValueColumn = column
	return LoadCSV(filename, opts)
}

// LoadCSVColumnIndex loads a column by zero-based position.
func LoadCSVColumnIndex(filename string, index int, hasHeader bool) (*Series, error) {
	opts := DefaultCSVOptions()
	opts.ColumnIndex = index
	opts.HasHeader = hasHeader
	return LoadCSV(filename, opts)
}

// Package csvfile loads minute bars from local CSV exports, the offline
// counterpart of the live market adapter.
//
// Expected layout, one row per minute with an RFC3339 timestamp:
//
//	ts,o,h,l,c,v
//	2025-12-20T15:31:00Z,245.3,245.9,245.1,245.7,1200
package csvfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"chart_backend/internal/feature/chart/domain/entity"
)

const columns = 6

// DefaultPath returns the first existing conventional CSV location for a
// symbol: {SYMBOL}.csv in the working directory, then under data/ and
// sample_data/. The bare filename is returned when none exists, so the
// caller's open fails with a useful path in the error.
func DefaultPath(symbol string) string {
	name := strings.ToUpper(symbol) + ".csv"
	candidates := []string{
		name,
		filepath.Join("data", name),
		filepath.Join("sample_data", name),
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return name
}

// ReadMinuteBars parses every row of the file into minute bars sorted by
// timestamp. A header row starting with "ts" is skipped; any malformed data
// row is an error, not a skip, since a broken local file should be fixed
// rather than silently truncated.
func ReadMinuteBars(path, symbol string) ([]entity.MinuteBar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	bars, err := parse(f, strings.ToUpper(symbol))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return bars, nil
}

func parse(r io.Reader, symbol string) ([]entity.MinuteBar, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = columns

	var bars []entity.MinuteBar
	line := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		if line == 1 && record[0] == "ts" {
			continue
		}

		bar, err := parseRow(record, symbol)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		bars = append(bars, bar)
	}

	sort.SliceStable(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}

func parseRow(record []string, symbol string) (entity.MinuteBar, error) {
	ts, err := time.Parse(time.RFC3339, record[0])
	if err != nil {
		return entity.MinuteBar{}, fmt.Errorf("parse ts %q: %w", record[0], err)
	}
	o, err := strconv.ParseFloat(record[1], 64)
	if err != nil {
		return entity.MinuteBar{}, fmt.Errorf("parse open %q: %w", record[1], err)
	}
	h, err := strconv.ParseFloat(record[2], 64)
	if err != nil {
		return entity.MinuteBar{}, fmt.Errorf("parse high %q: %w", record[2], err)
	}
	l, err := strconv.ParseFloat(record[3], 64)
	if err != nil {
		return entity.MinuteBar{}, fmt.Errorf("parse low %q: %w", record[3], err)
	}
	c, err := strconv.ParseFloat(record[4], 64)
	if err != nil {
		return entity.MinuteBar{}, fmt.Errorf("parse close %q: %w", record[4], err)
	}
	v, err := strconv.ParseInt(record[5], 10, 64)
	if err != nil {
		return entity.MinuteBar{}, fmt.Errorf("parse volume %q: %w", record[5], err)
	}

	return entity.MinuteBar{
		Symbol: symbol,
		Time:   ts.UTC(),
		Open:   o,
		High:   h,
		Low:    l,
		Close:  c,
		Volume: v,
	}, nil
}

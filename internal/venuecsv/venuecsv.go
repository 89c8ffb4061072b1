// Package venuecsv parses venue schedule files. The expected columns
// are VENUE, DATE, SHIFT, CENTRE_CODE and ADDRESS; one row per sitting.
package venuecsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/arijitsen/examdesk/internal/alloc"
)

type Row struct {
	Venue      string
	Date       string
	Shift      alloc.Shift
	CentreCode string
	Address    string
}

var requiredColumns = []string{"VENUE", "DATE", "SHIFT"}

var dateLayouts = []string{"2006-01-02", "02-01-2006", "02/01/2006"}

// Parse reads the whole schedule, validating shifts and dates as it
// goes. Errors carry the 1-based line number of the offending row.
func Parse(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("schedule file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToUpper(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("schedule file is missing the %s column", name)
		}
	}

	var rows []Row
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		get := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		shift, err := alloc.ParseShift(get("SHIFT"))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		date, err := parseDate(get("DATE"))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		venue := get("VENUE")
		if venue == "" {
			return nil, fmt.Errorf("line %d: venue name is empty", line)
		}

		rows = append(rows, Row{
			Venue:      venue,
			Date:       date,
			Shift:      shift,
			CentreCode: get("CENTRE_CODE"),
			Address:    get("ADDRESS"),
		})
	}

	return rows, nil
}

func parseDate(s string) (string, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("unrecognized date %q", s)
}

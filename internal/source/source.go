// Package source fetches the raw session record set from the spreadsheet
// export feed, either a local CSV file or a published CSV export URL.
package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"clarityboard/internal/sessions"
)

const defaultFetchTimeout = 30 * time.Second

// FromFile loads a record set from a CSV file on disk.
func FromFile(path string, mapping ColumnMapping) (sessions.RecordSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return sessions.RecordSet{}, fmt.Errorf("failed to open source file: %w", err)
	}
	defer f.Close()

	set, err := Parse(f, mapping)
	if err != nil {
		return sessions.RecordSet{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return set, nil
}

// FromURL loads a record set from a published CSV export URL, such as a
// sheet shared with "output=csv".
func FromURL(ctx context.Context, url string, mapping ColumnMapping) (sessions.RecordSet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultFetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return sessions.RecordSet{}, fmt.Errorf("failed to build source request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return sessions.RecordSet{}, fmt.Errorf("failed to fetch source export: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return sessions.RecordSet{}, fmt.Errorf("source export returned status %d", resp.StatusCode)
	}

	set, err := Parse(resp.Body, mapping)
	if err != nil {
		return sessions.RecordSet{}, fmt.Errorf("failed to parse source export: %w", err)
	}
	return set, nil
}

// Parse decodes CSV data into a record set, renaming headers through the
// column mapping. Rows shorter than the header are padded with empty
// cells rather than rejected; the normalization stage decides what to
// keep.
func Parse(r io.Reader, mapping ColumnMapping) (sessions.RecordSet, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return sessions.RecordSet{}, fmt.Errorf("source feed is empty")
	}
	if err != nil {
		return sessions.RecordSet{}, fmt.Errorf("failed to read header row: %w", err)
	}

	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = mapping.Canonical(strings.TrimSpace(h))
	}

	var rows []sessions.Record
	for {
		cells, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return sessions.RecordSet{}, fmt.Errorf("failed to read row %d: %w", len(rows)+2, err)
		}

		row := make(sessions.Record, len(columns))
		for i, col := range columns {
			if i < len(cells) {
				row[col] = cells[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}

	return sessions.RecordSet{Columns: columns, Rows: rows}, nil
}

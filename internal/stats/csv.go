package stats

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ParseCSV reads a table with a header row naming the record fields. Column
// order is free; unknown columns are ignored.
func ParseCSV(ctx context.Context, data []byte) ([]Record, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("stats: read csv header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	if _, ok := cols[FieldCountry]; !ok {
		return nil, fmt.Errorf("stats: csv header misses %q column", FieldCountry)
	}
	cell := func(row []string, name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return row[idx]
	}
	c := &coercer{}
	var rs []Record
	line := 1
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("stats: read csv line %d: %w", line, err)
		}
		country := cell(row, FieldCountry)
		if country == "" {
			continue
		}
		rs = append(rs, Record{
			Country: country,
			Beer:    c.number(cell(row, FieldBeer)),
			Spirit:  c.number(cell(row, FieldSpirit)),
			Wine:    c.number(cell(row, FieldWine)),
			Litres:  c.number(cell(row, FieldLitres)),
		})
	}
	c.report(ctx, "csv")
	return rs, nil
}

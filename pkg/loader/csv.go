package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ParseCSVRecords parses a CSV table into records. The first non-empty row
// names the fields; every following non-empty row becomes one record. Rows
// that fail to parse are skipped, short rows leave the missing fields unset.
func ParseCSVRecords(content []byte) ([]Record, error) {
	reader := csv.NewReader(strings.NewReader(normalizeText(content)))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var header []string
	records := make([]Record, 0)

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		if isEmptyRow(row) {
			continue
		}

		if header == nil {
			header = make([]string, len(row))
			for i, field := range row {
				header[i] = strings.TrimSpace(field)
			}
			continue
		}

		rec := Record{}
		for i, field := range row {
			if i >= len(header) || header[i] == "" {
				continue
			}
			rec[header[i]] = strings.TrimSpace(field)
		}
		records = append(records, rec)
	}

	if header == nil {
		return nil, fmt.Errorf("CSV file is empty or contains no valid data")
	}

	return records, nil
}

// CareRecordFromRecord converts a flat care record, e.g. a CSV row, into a
// CareRecord. The services field uses the same list delimiters as every
// other list field, plus "、" and ";".
func CareRecordFromRecord(r Record) CareRecord {
	services := strings.NewReplacer("、", ",", ";", ",", "；", ",").Replace(r.Get("services"))
	return CareRecord{
		Name:       strings.TrimSpace(r.Get("name")),
		Location:   strings.TrimSpace(r.Get("location")),
		Services:   SplitList(services),
		PriceRange: strings.TrimSpace(r.Get("price_range")),
	}
}

func isEmptyRow(row []string) bool {
	for _, field := range row {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

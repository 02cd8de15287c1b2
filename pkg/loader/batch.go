package loader

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

type parsedFile struct {
	records []Record
	care    []CareRecord
}

// LoadBatches fetches and parses every file concurrently and groups the
// resulting records by domain. Records keep the order of files and, within a
// file, the order in which they appear.
func LoadBatches(ctx context.Context, files []GraphFile, parallel int) (Batches, error) {
	if parallel <= 0 {
		parallel = 4
	}

	results := make([]parsedFile, len(files))

	eg, gCtx := errgroup.WithContext(ctx)
	eg.SetLimit(parallel)

	for i, file := range files {
		eg.Go(func() error {
			parsed, err := parseFile(gCtx, file)
			if err != nil {
				return fmt.Errorf("failed to load %s: %w", file.FilePath, err)
			}
			results[i] = parsed
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return Batches{}, err
	}

	var batches Batches
	for i, file := range files {
		switch file.Domain {
		case DomainInsurance:
			batches.Insurance = append(batches.Insurance, results[i].records...)
		case DomainMedical:
			batches.Medical = append(batches.Medical, results[i].records...)
		case DomainCare:
			batches.Care = append(batches.Care, results[i].care...)
		}
	}

	return batches, nil
}

func parseFile(ctx context.Context, file GraphFile) (parsedFile, error) {
	switch file.Domain {
	case DomainInsurance, DomainMedical, DomainCare:
	default:
		return parsedFile{}, fmt.Errorf("unknown domain %q", file.Domain)
	}

	content, err := file.GetText(ctx)
	if err != nil {
		return parsedFile{}, err
	}

	var records []Record
	switch file.FileType {
	case GraphFileTypeText:
		records = ParseTextBlocks(content)
	case GraphFileTypeCSV:
		records, err = ParseCSVRecords(content)
	case GraphFileTypeJSON:
		if file.Domain == DomainCare {
			care, err := ParseCareJSON(content)
			return parsedFile{care: care}, err
		}
		records, err = ParseJSONRecords(content)
	default:
		return parsedFile{}, fmt.Errorf("unsupported file type %q", file.FileType)
	}
	if err != nil {
		return parsedFile{}, err
	}

	if file.Domain != DomainCare {
		return parsedFile{records: records}, nil
	}

	care := make([]CareRecord, 0, len(records))
	for _, r := range records {
		care = append(care, CareRecordFromRecord(r))
	}
	return parsedFile{care: care}, nil
}

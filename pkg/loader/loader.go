package loader

import (
	"context"
	"fmt"
	"strings"
)

// Domain names the source domain a file belongs to.
type Domain string

const (
	DomainInsurance Domain = "insurance"
	DomainMedical   Domain = "medical"
	DomainCare      Domain = "care"
)

// GraphFileType is the on-disk encoding of a source file.
type GraphFileType string

const (
	// GraphFileTypeText is a sequence of "key: value" blocks separated by
	// blank lines.
	GraphFileTypeText GraphFileType = "text"
	// GraphFileTypeCSV is a CSV table whose first row names the fields.
	GraphFileTypeCSV GraphFileType = "csv"
	// GraphFileTypeJSON is a JSON array of objects.
	GraphFileTypeJSON GraphFileType = "json"
)

// GraphFile represents a source file that is parsed into records for graph
// construction. The actual file content is retrieved via the associated
// GraphFileLoader.
type GraphFile struct {
	ID       string
	FilePath string
	Domain   Domain
	FileType GraphFileType
	Loader   GraphFileLoader
}

// NewGraphFileParams defines the input parameters for creating a new
// GraphFile.
type NewGraphFileParams struct {
	ID       string
	FilePath string
	Domain   Domain
	Loader   GraphFileLoader
}

// NewGraphTextFile creates a GraphFile holding "key: value" blocks.
func NewGraphTextFile(params NewGraphFileParams) GraphFile {
	return newGraphFile(params, GraphFileTypeText)
}

// NewGraphCSVFile creates a GraphFile holding a CSV table.
func NewGraphCSVFile(params NewGraphFileParams) GraphFile {
	return newGraphFile(params, GraphFileTypeCSV)
}

// NewGraphJSONFile creates a GraphFile holding a JSON array.
func NewGraphJSONFile(params NewGraphFileParams) GraphFile {
	return newGraphFile(params, GraphFileTypeJSON)
}

func newGraphFile(params NewGraphFileParams, fileType GraphFileType) GraphFile {
	return GraphFile{
		ID:       params.ID,
		FilePath: params.FilePath,
		Domain:   params.Domain,
		FileType: fileType,
		Loader:   params.Loader,
	}
}

// GetText retrieves the raw content of the file using its Loader.
func (f *GraphFile) GetText(ctx context.Context) ([]byte, error) {
	if f.Loader == nil {
		return nil, fmt.Errorf("no loader configured for file %s", f.FilePath)
	}
	return f.Loader.GetFileText(ctx, *f)
}

// GraphFileLoader defines the interface for loading the contents of a
// GraphFile. Implementations may load files from disk, cloud storage, or
// other sources.
type GraphFileLoader interface {
	GetFileText(ctx context.Context, file GraphFile) ([]byte, error)
}

// Default file names of a raw data directory.
const (
	InsuranceFileName = "insurance_clauses.txt"
	MedicalFileName   = "medical_guidelines.txt"
	CareFileName      = "nursing_homes.json"
)

// DefaultFiles returns the three standard source files below root, which is
// a directory for filesystem loaders or a key prefix for object storage.
func DefaultFiles(root string, l GraphFileLoader) []GraphFile {
	join := func(name string) string {
		if root == "" {
			return name
		}
		return strings.TrimSuffix(root, "/") + "/" + name
	}
	return []GraphFile{
		NewGraphTextFile(NewGraphFileParams{
			ID:       string(DomainInsurance),
			FilePath: join(InsuranceFileName),
			Domain:   DomainInsurance,
			Loader:   l,
		}),
		NewGraphTextFile(NewGraphFileParams{
			ID:       string(DomainMedical),
			FilePath: join(MedicalFileName),
			Domain:   DomainMedical,
			Loader:   l,
		}),
		NewGraphJSONFile(NewGraphFileParams{
			ID:       string(DomainCare),
			FilePath: join(CareFileName),
			Domain:   DomainCare,
			Loader:   l,
		}),
	}
}

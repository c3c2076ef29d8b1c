package neuroglancer

import "github.com/AaronLay10/ngstate/internal/config"

// Extraction holds everything pulled out of a single state file.
type Extraction struct {
	Points    []Point `json:"points"`
	SourceURL string  `json:"source_url"`
}

// ExtractFile loads the state file at path and runs both extractors.
// The first failure wins: loading, then annotations, then source.
func ExtractFile(path string, opts config.ExtractionOptions) (*Extraction, error) {
	doc, err := LoadState(path)
	if err != nil {
		return nil, err
	}

	points, err := ExtractAnnotation(doc, opts)
	if err != nil {
		return nil, err
	}

	url, err := ExtractSource(doc, opts)
	if err != nil {
		return nil, err
	}

	return &Extraction{Points: points, SourceURL: url}, nil
}

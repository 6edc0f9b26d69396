package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"go.jacobcolvin.com/bigo/growth"
)

// ReadSamples reads samples from YAML or JSON.
//
// The input is either a list of {size, cost} objects or a document with a
// samples key, such as a previously written [Document].
func ReadSamples(r io.Reader) ([]growth.Sample, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrReadInput)
	}

	var list []growth.Sample

	listErr := yaml.Unmarshal(data, &list)
	if listErr == nil {
		return list, nil
	}

	var doc struct {
		Samples []growth.Sample `yaml:"samples"`
	}

	docErr := yaml.Unmarshal(data, &doc)
	if docErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, listErr)
	}

	if doc.Samples == nil {
		return nil, fmt.Errorf("%w: no samples found", ErrReadInput)
	}

	return doc.Samples, nil
}

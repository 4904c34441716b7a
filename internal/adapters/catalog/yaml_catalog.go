package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"github.com/AntonioJCosta/aliasmap/internal/core/domain/component"
	"github.com/AntonioJCosta/aliasmap/internal/core/ports"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// YAMLCatalog implements ports.ComponentCatalog by decoding the catalog
// compiled into the binary.
type YAMLCatalog struct{}

// NewYAMLCatalog creates a new YAMLCatalog.
func NewYAMLCatalog() ports.ComponentCatalog {
	return &YAMLCatalog{}
}

// CatalogComponents decodes the embedded catalog.
// An empty catalog yields an empty list and no error.
func (c *YAMLCatalog) CatalogComponents() ([]component.Component, error) {
	components := []component.Component{}
	if len(embeddedCatalog) == 0 {
		return components, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(embeddedCatalog))
	decoder.KnownFields(true)
	if err := decoder.Decode(&components); err != nil {
		// A document holding only comments decodes as EOF.
		if errors.Is(err, io.EOF) {
			return []component.Component{}, nil
		}
		return nil, fmt.Errorf("failed to unmarshal embedded component catalog: %w", err)
	}
	return components, nil
}

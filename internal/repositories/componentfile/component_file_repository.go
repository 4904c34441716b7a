package componentfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AntonioJCosta/aliasmap/internal/core/domain/component"
	"github.com/AntonioJCosta/aliasmap/internal/core/ports"
	"github.com/google/renameio/v2"
)

// FileRepository stores components in a YAML or TOML file.
type FileRepository struct {
	path  string
	codec codec
}

// NewFileRepository creates a FileRepository for path. The format is chosen
// from the file extension.
func NewFileRepository(path string) (ports.ComponentRepository, error) {
	if path == "" {
		return nil, fmt.Errorf("component file path cannot be empty")
	}
	c, err := codecFor(path)
	if err != nil {
		return nil, err
	}
	return &FileRepository{path: path, codec: c}, nil
}

// LoadComponents implements the ports.ComponentRepository interface.
// A missing or empty file is not an error; it means no components are registered yet.
func (r *FileRepository) LoadComponents() ([]component.Component, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []component.Component{}, nil
		}
		return nil, fmt.Errorf("failed to read component file %s: %w", r.Location(), err)
	}
	if len(data) == 0 {
		return []component.Component{}, nil
	}

	doc, err := r.codec.decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse component file %s: %w", r.Location(), err)
	}
	if doc.Components == nil {
		return []component.Component{}, nil
	}
	return doc.Components, nil
}

// SaveComponents implements the ports.ComponentRepository interface.
// The file is replaced atomically; its directory is created when missing.
func (r *FileRepository) SaveComponents(components []component.Component) error {
	data, err := r.codec.encode(document{Components: components})
	if err != nil {
		return fmt.Errorf("failed to encode components for %s: %w", r.Location(), err)
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", r.Location(), err)
	}
	if err := renameio.WriteFile(r.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write component file %s: %w", r.Location(), err)
	}
	return nil
}

// Location implements the ports.ComponentRepository interface.
func (r *FileRepository) Location() string {
	return toUserFriendlyPath(r.path)
}

package componentfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/AntonioJCosta/aliasmap/internal/core/domain/component"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// document is the on-disk layout shared by both formats.
type document struct {
	Components []component.Component `yaml:"components" toml:"components"`
}

type codec interface {
	decode(data []byte) (document, error)
	encode(doc document) ([]byte, error)
}

func codecFor(path string) (codec, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return yamlCodec{}, nil
	case ".toml":
		return tomlCodec{}, nil
	default:
		return nil, fmt.Errorf("unsupported component file extension %q (use .yaml, .yml or .toml)", ext)
	}
}

type yamlCodec struct{}

func (yamlCodec) decode(data []byte) (document, error) {
	var doc document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		// A file holding only comments or "---" has no document at all.
		if errors.Is(err, io.EOF) {
			return document{}, nil
		}
		return document{}, err
	}
	return doc, nil
}

func (yamlCodec) encode(doc document) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type tomlCodec struct{}

func (tomlCodec) decode(data []byte) (document, error) {
	var doc document
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return document{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return document{}, fmt.Errorf("unknown fields: %s", strings.Join(keys, ", "))
	}
	return doc, nil
}

func (tomlCodec) encode(doc document) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

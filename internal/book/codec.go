package book

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is the content of one month file.
type Document struct {
	Take   []string       `yaml:"take"`
	Put    []string       `yaml:"put"`
	Target *int64         `yaml:"target,omitempty"`
	Extra  map[string]any `yaml:",inline"` // unknown keys, kept on rewrite
}

// Codec converts between a month file and its document. Decode returns the
// raw key/value form so field types can be checked before use.
type Codec interface {
	Decode(data []byte) (map[string]any, error)
	Encode(doc Document) ([]byte, error)
}

// YAML is the default month file format:
//
//	take:
//	    - 23 - 10.25 Lunch
//	put:
//	    - 22 + 200.50 Payment
//	target: 1500
type YAML struct{}

// Decode parses data. Blank input yields a nil map.
func (YAML) Decode(data []byte) (map[string]any, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	return raw, nil
}

// Encode writes doc as YAML.
func (YAML) Encode(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(4)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return buf.Bytes(), nil
}

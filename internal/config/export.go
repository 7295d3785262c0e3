package config

import (
	"encoding/json"
	"errors"

	"gopkg.in/yaml.v3"
)

// Document is the export shape of a parsed file, for hand-off to tooling
// outside the pipeline.
type Document struct {
	Section   string  `json:"section" yaml:"section"`
	Inversion Mapping `json:"inversion" yaml:"inversion"`
	Forward   Mapping `json:"fwdsim" yaml:"fwdsim"`
}

func newDocument(f *File) (Document, error) {
	if f == nil {
		return Document{}, errors.New("nil file")
	}
	return Document{
		Section:   f.Kind.String(),
		Inversion: f.Inversion,
		Forward:   f.Forward,
	}, nil
}

// EncodeJSON renders the parsed file as indented JSON with sorted keys.
func EncodeJSON(f *File) ([]byte, error) {
	doc, err := newDocument(f)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(doc, "", "  ")
}

// EncodeYAML renders the parsed file as YAML.
func EncodeYAML(f *File) ([]byte, error) {
	doc, err := newDocument(f)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}

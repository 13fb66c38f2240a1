package model

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ExportDocument is the YAML shape written by an export.
type ExportDocument struct {
	Count    int       `yaml:"count"`
	Students []Student `yaml:"students"`
}

// MarshalExport encodes students as a YAML export document.
func MarshalExport(students []Student) ([]byte, error) {
	if students == nil {
		students = []Student{}
	}
	doc := ExportDocument{
		Count:    len(students),
		Students: students,
	}
	data, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}
	return data, nil
}

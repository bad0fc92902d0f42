// Package config parses input files: the worker profile and the
// optional index table override.
package config

import (
	"fmt"
	"os"

	"github.com/pmroz/zusgo/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of worker profile input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadProfile loads a worker profile from a YAML file. Validation is
// the validator's job; this only requires a parseable document.
func (ip *InputParser) LoadProfile(filename string) (*domain.WorkerProfile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var profile domain.WorkerProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile YAML: %w", err)
	}
	return &profile, nil
}

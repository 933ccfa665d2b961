package app

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/Yandex-Practicum/go-ftracker/internal/training"
)

// Package is a single batch of readings sent by the tracker.
type Package struct {
	Type string `json:"type"`
	Data []any  `json:"data"`
}

// DefaultPackages returns the reference scenario.
func DefaultPackages() []Package {
	return []Package{
		{Type: training.CodeSwimming, Data: []any{720, 1, 80, 25, 40}},
		{Type: training.CodeRunning, Data: []any{15000, 1, 75}},
		{Type: training.CodeWalking, Data: []any{9000, 1, 75, 180}},
	}
}

// LoadPackages reads a YAML or JSON list of packages:
//
//	- type: RUN
//	  data: [15000, 1, 75]
func LoadPackages(path string) ([]Package, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading packages file: %w", err)
	}

	var packages []Package
	if err := yaml.UnmarshalStrict(content, &packages); err != nil {
		return nil, fmt.Errorf("parsing packages file %s: %w", path, err)
	}
	return packages, nil
}

package adapter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	m "treesummary.dev/pkg/treesummary/internal/model"
)

// PlanStore reads bucket plans.
type PlanStore interface {
	LoadPlan(path m.Path) (m.Plan, error)
}

// YAMLPlanStore reads plans from YAML files.
type YAMLPlanStore struct{}

// NewYAMLPlanStore creates a YAMLPlanStore.
func NewYAMLPlanStore() *YAMLPlanStore {
	return &YAMLPlanStore{}
}

// LoadPlan decodes the plan at path. Unknown fields are rejected.
func (s *YAMLPlanStore) LoadPlan(path m.Path) (m.Plan, error) {
	var plan m.Plan

	// #nosec G304 - plan path is given on the command line
	f, err := os.Open(string(path))
	if err != nil {
		return plan, fmt.Errorf("open plan: %w", err)
	}
	defer func() { _ = f.Close() }()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	if err := dec.Decode(&plan); err != nil {
		return plan, fmt.Errorf("decode plan %s: %w", path, err)
	}

	return plan, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report writes and reads YAML run reports. A report records the
// configuration and counters of one completed generation run so deploy
// pipelines can archive or inspect it without rerunning the tool.
package report

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/stan-pages/internal/index"
	"github.com/pdiddy/stan-pages/pkg/types"
)

// RunReport is the on-disk representation of a completed run.
type RunReport struct {
	Root    string                `yaml:"root"`
	Config  types.GeneratorConfig `yaml:"config"`
	Summary RunSummary            `yaml:"summary"`
}

// RunSummary stores the traversal counters and timing.
type RunSummary struct {
	Scanned    int       `yaml:"scanned"`
	Created    int       `yaml:"created"`
	Updated    int       `yaml:"updated"`
	Errors     int       `yaml:"errors"`
	StartedAt  time.Time `yaml:"started_at"`
	DurationMS int64     `yaml:"duration_ms"`
}

// Write saves a run report to path.
func Write(path string, cfg types.GeneratorConfig, stats index.Stats, started time.Time, elapsed time.Duration) error {
	r := RunReport{
		Root:   cfg.Root,
		Config: cfg,
		Summary: RunSummary{
			Scanned:    stats.Scanned,
			Created:    stats.Created,
			Updated:    stats.Updated,
			Errors:     stats.Errors,
			StartedAt:  started,
			DurationMS: elapsed.Milliseconds(),
		},
	}

	data, err := yaml.Marshal(&r)
	if err != nil {
		return fmt.Errorf("marshaling run report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Read loads a previously saved run report from disk.
func Read(path string) (*RunReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run report: %w", err)
	}
	var r RunReport
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing run report: %w", err)
	}
	return &r, nil
}

package config

import (
	"time"
)

// DataMode selects which source backs the visible proposal list.
type DataMode string

const (
	// ModeProduction reads live listings from the remote backing
	// service; an empty result is valid when no remote data exists yet.
	ModeProduction DataMode = "production"
	// ModeDevelopment reads approved locally-authored submissions.
	ModeDevelopment DataMode = "development"
	// ModeDemo reads synthetic scenario data.
	ModeDemo DataMode = "demo"
)

// Valid reports whether the mode names a known data source.
func (m DataMode) Valid() bool {
	switch m {
	case ModeProduction, ModeDevelopment, ModeDemo:
		return true
	}
	return false
}

// DefaultScenario backs demo mode when no scenario has been selected.
const DefaultScenario = "investor"

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string

	// Data-source selection
	Mode     DataMode
	Scenario string // demo mode only; empty falls back to DefaultScenario

	// Remote backing service (production mode)
	RemoteURL string

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool // Output in JSON format
	Timeout        time.Duration

	// Resolved project configuration
	Project *ProjectConfig
}

// ScenarioOrDefault returns the selected demo scenario, falling back to
// the default when none was chosen.
func (c *RuntimeConfig) ScenarioOrDefault() string {
	if c.Scenario == "" {
		return DefaultScenario
	}
	return c.Scenario
}

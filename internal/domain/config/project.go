package config

// ProjectConfig is the parsed propdesk.toml at the project root. It
// carries workspace-level defaults; flags and environment variables
// override it at runtime.
type ProjectConfig struct {
	Dashboard DashboardConfig `toml:"dashboard"`
	Remote    RemoteConfig    `toml:"remote"`
}

// DashboardConfig selects the default data source for the dashboard.
type DashboardConfig struct {
	Mode     string `toml:"mode,omitempty"`
	Scenario string `toml:"scenario,omitempty"`
}

// RemoteConfig points at the live backing service used in production
// mode.
type RemoteConfig struct {
	URL string `toml:"url,omitempty"`
}

// DefaultProjectConfig returns the configuration used when no
// propdesk.toml is present.
func DefaultProjectConfig() *ProjectConfig {
	return &ProjectConfig{
		Dashboard: DashboardConfig{
			Mode:     string(ModeDevelopment),
			Scenario: DefaultScenario,
		},
	}
}

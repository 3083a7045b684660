package config

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Agent: AgentConfig{
			Name:        "repo-analyzer",
			Version:     "1.0.0",
			Description: "Repository platform and structure analyzer",
		},
		Analysis: AnalysisConfig{
			MaxSourceSamples: 50,
			MaxTestSamples:   20,
		},
		Output: OutputConfig{
			Formats:   []string{"json"},
			OutputDir: ".",
		},
		Logging: LoggingConfig{
			Level:            "info",
			IncludeTimestamp: true,
		},
	}
}

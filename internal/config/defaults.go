package config

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	recursive := true
	return &Config{
		Headers: []HeaderConfig{
			{Field: "title"},
			{Field: "description"},
		},
		Properties: PropertiesConfig{
			Order: "document",
		},
		Input: InputConfig{
			Directories: []string{"."},
			Include:     []string{"*.opml"},
			Exclude:     []string{".git/**", "vendor/**"},
			Recursive:   &recursive,
		},
		Output: OutputConfig{
			Encoding:            "utf-8",
			Directory:           "org",
			Extension:           ".org",
			CleanBeforeGenerate: false,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		DryRun: false,
	}
}

package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fjglira/opml2org/internal/domain"
)

// Config is the top-level configuration struct.
type Config struct {
	Headers    []HeaderConfig   `yaml:"headers"`
	Properties PropertiesConfig `yaml:"properties"`
	Input      InputConfig      `yaml:"input"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
	DryRun     bool             `yaml:"dry_run"`
}

// HeaderConfig maps an OPML head field to an Org export keyword.
type HeaderConfig struct {
	Field  string `yaml:"field"`
	Export string `yaml:"export"` // empty means the upper-cased field name
}

type PropertiesConfig struct {
	Order string `yaml:"order"` // "document" or "sorted"
}

type InputConfig struct {
	Directories []string `yaml:"directories"`
	Include     []string `yaml:"include"`
	Exclude     []string `yaml:"exclude"`
	Recursive   *bool    `yaml:"recursive"` // pointer to distinguish unset from false
}

type OutputConfig struct {
	Encoding            string `yaml:"encoding"`
	Directory           string `yaml:"directory"`
	Extension           string `yaml:"extension"`
	CleanBeforeGenerate bool   `yaml:"clean_before_generate"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads a YAML configuration file on top of DefaultConfig.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewError("config", path, 0, "failed to read config file", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, domain.NewError("config", path, 0, "failed to parse config file", err)
	}

	return cfg, nil
}

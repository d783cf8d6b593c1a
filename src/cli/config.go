// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// configEnvVar names the environment variable consulted when --config is not set.
const configEnvVar = "CRUD_SCAFFOLD_CONFIG"

const (
	logFormatText = "text"
	logFormatJSON = "json"
)

//go:embed config.schema.json
var configSchema []byte

// ErrInvalidConfig is returned when a configuration file does not match the schema.
var ErrInvalidConfig = errors.New("invalid configuration")

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// Config holds the scaffolder settings that can come from a file.
// Explicitly set command-line flags take precedence over file values.
type Config struct {
	// Dir: Project root the generated paths are relative to
	Dir string `json:"dir" yaml:"dir"`
	// LogFormat: "text" for human-readable lines, "json" for one object per line
	LogFormat string `json:"logFormat" yaml:"logFormat"`
	// Verbose: Print debug output
	Verbose bool `json:"verbose" yaml:"verbose"`
	// Quiet: Suppress progress and debug output
	Quiet bool `json:"quiet" yaml:"quiet"`
}

func defaultConfig() *Config {
	return &Config{
		Dir:       ".",
		LogFormat: logFormatText,
	}
}

// detectConfigFormat determines the configuration file format based on file extension.
// Anything other than .yaml or .yml is treated as JSON.
func detectConfigFormat(configPath string) configFormat {
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// decodeDocument decodes raw configuration data into generic values for
// schema validation. An empty document decodes to an empty object.
func decodeDocument(data []byte, format configFormat) (any, error) {
	var doc any
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if len(strings.TrimSpace(string(data))) == 0 {
			break
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}

	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}

// validateConfigDocument checks doc against the embedded JSON Schema and
// reports every violation in one error.
func validateConfigDocument(doc any) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(configSchema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("validating config: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// unmarshalConfig unmarshals configuration data into config based on format.
func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if len(strings.TrimSpace(string(data))) == 0 {
			return nil
		}
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// loadConfig loads the configuration from a JSON or YAML file or applies defaults.
//
// Configuration Priority:
//  1. Default values are set
//  2. CRUD_SCAFFOLD_CONFIG is checked if configPath is empty
//  3. Config file values override defaults after passing schema validation
//
// Command-line flags are applied on top by the caller.
func loadConfig(configPath string) (*Config, error) {
	config := defaultConfig()

	if configPath == "" {
		configPath = os.Getenv(configEnvVar)
	}
	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	format := detectConfigFormat(configPath)
	doc, err := decodeDocument(data, format)
	if err != nil {
		return nil, err
	}
	if err := validateConfigDocument(doc); err != nil {
		return nil, fmt.Errorf("config file %s: %w", configPath, err)
	}
	if err := unmarshalConfig(data, config, format); err != nil {
		return nil, err
	}

	return config, nil
}

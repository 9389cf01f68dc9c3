// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package config loads application configuration from YAML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		OutputFormat        string  `yaml:"output_format"`
		ConfidenceThreshold float64 `yaml:"confidence_threshold"`
		Verbose             bool    `yaml:"verbose"`
		NoColor             bool    `yaml:"no_color"`
	} `yaml:"defaults"`

	// HTTP server settings
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"server"`

	// Summarizer settings
	Summarizer struct {
		Provider  string `yaml:"provider"`
		Model     string `yaml:"model"`
		MaxLength int    `yaml:"max_length"`
	} `yaml:"summarizer"`
}

// LoadConfig loads configuration from the given path. An empty path
// returns the defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	// Set default values
	config.Defaults.OutputFormat = "text"
	config.Defaults.ConfidenceThreshold = 0.7
	config.Server.Host = "localhost"
	config.Server.Port = 8080
	config.Summarizer.Provider = "extractive"
	config.Summarizer.MaxLength = 500

	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	if err := ValidateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// ValidateConfig checks the configuration for invalid values.
func ValidateConfig(config *Config) error {
	switch config.Defaults.OutputFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid output format: %s", config.Defaults.OutputFormat)
	}
	if config.Defaults.ConfidenceThreshold < 0 || config.Defaults.ConfidenceThreshold > 1 {
		return fmt.Errorf("confidence threshold must be between 0 and 1, got %g", config.Defaults.ConfidenceThreshold)
	}
	if config.Server.Port < 1 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}
	switch config.Summarizer.Provider {
	case "extractive", "openai":
	default:
		return fmt.Errorf("invalid summarizer provider: %s", config.Summarizer.Provider)
	}
	if config.Summarizer.MaxLength < 0 {
		return fmt.Errorf("invalid summarizer max length: %d", config.Summarizer.MaxLength)
	}
	return nil
}

// FindConfigFile looks for a configuration file in the standard
// locations and returns the first one found, or "".
func FindConfigFile() string {
	// Check current directory first - prioritize config.yaml
	candidates := []string{
		"config.yaml",
		"lexiscan.yaml",
		"lexiscan.yml",
		".lexiscan.yaml",
		".lexiscan.yml",
	}
	for _, c := range candidates {
		if fileExists(c) {
			return c
		}
	}

	// Check the user config directory
	if home, err := os.UserHomeDir(); err == nil {
		standard := filepath.Join(home, ".config", "lexiscan", "config.yaml")
		if fileExists(standard) {
			return standard
		}
	}
	return ""
}

// LoadConfigOrDefault loads the given config file, or the first one
// found, falling back to defaults when none loads.
func LoadConfigOrDefault(configFile string) *Config {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		// Callers should not crash on a missing or bad config file.
		cfg, _ = LoadConfig("")
	}
	return cfg
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

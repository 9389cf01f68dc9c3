// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Defaults.OutputFormat != "text" {
		t.Errorf("expected default format=text, got %q", cfg.Defaults.OutputFormat)
	}
	if cfg.Defaults.ConfidenceThreshold != 0.7 {
		t.Errorf("expected default threshold=0.7, got %v", cfg.Defaults.ConfidenceThreshold)
	}
	if cfg.Server.Host != "localhost" || cfg.Server.Port != 8080 {
		t.Errorf("unexpected server defaults: %s:%d", cfg.Server.Host, cfg.Server.Port)
	}
	if cfg.Summarizer.Provider != "extractive" {
		t.Errorf("expected extractive summarizer by default, got %q", cfg.Summarizer.Provider)
	}
}

func TestLoadConfig_ValidFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	content := `
defaults:
  output_format: json
  verbose: true
server:
  port: 9090
summarizer:
  provider: openai
  model: gpt-4o-mini
`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Defaults.OutputFormat != "json" {
		t.Errorf("expected format=json, got %q", cfg.Defaults.OutputFormat)
	}
	if !cfg.Defaults.Verbose {
		t.Error("expected verbose=true")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected port=9090, got %d", cfg.Server.Port)
	}
	// Unset fields keep their defaults.
	if cfg.Server.Host != "localhost" {
		t.Errorf("expected default host, got %q", cfg.Server.Host)
	}
	if cfg.Summarizer.Model != "gpt-4o-mini" {
		t.Errorf("expected configured model, got %q", cfg.Summarizer.Model)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig("/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"bad format", "defaults:\n  output_format: xml\n"},
		{"bad threshold", "defaults:\n  confidence_threshold: 1.5\n"},
		{"bad port", "server:\n  port: 70000\n"},
		{"bad provider", "summarizer:\n  provider: telepathy\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			configPath := filepath.Join(dir, "config.yaml")
			if err := os.WriteFile(configPath, []byte(tc.content), 0600); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}
			if _, err := LoadConfig(configPath); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestLoadConfigOrDefault_FallsBack(t *testing.T) {
	cfg := LoadConfigOrDefault("/nonexistent/path/config.yaml")
	if cfg == nil {
		t.Fatal("expected non-nil config (fallback to defaults)")
	}
	if cfg.Defaults.OutputFormat != "text" {
		t.Errorf("expected default format after fallback, got %q", cfg.Defaults.OutputFormat)
	}
}

func TestLoadConfigOrDefault_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(configPath, []byte(":::invalid yaml:::"), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := LoadConfigOrDefault(configPath)
	if cfg == nil {
		t.Fatal("expected non-nil config (fallback to defaults on parse error)")
	}
}

func TestValidateConfig_Valid(t *testing.T) {
	cfg, _ := LoadConfig("")
	if err := ValidateConfig(cfg); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

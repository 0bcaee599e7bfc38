package config

import (
	"strings"
	"testing"
	"time"

	"choque/listing"
)

func TestValidateYAMLContent_ExampleIsValid(t *testing.T) {
	t.Parallel()

	cfg, err := ValidateYAMLContent([]byte(ExampleYAML()))
	if err != nil {
		t.Fatalf("expected example config to validate: %v", err)
	}
	if cfg.HTTP.Timeout != 30*time.Second || cfg.Serve.Port != 8080 || cfg.Log.Format != "tint" {
		t.Fatalf("unexpected example values: %+v", cfg)
	}
	if len(cfg.SourceOverrides()) != 0 {
		t.Fatalf("expected no source overrides, got %v", cfg.SourceOverrides())
	}
}

func TestValidateYAMLContent_DefaultsApplyToEmptyContent(t *testing.T) {
	t.Parallel()

	cfg, err := ValidateYAMLContent([]byte("{}\n"))
	if err != nil {
		t.Fatalf("expected defaults to validate: %v", err)
	}
	if cfg.HTTP.MaxBytes != 8<<20 || cfg.Log.Level != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestValidateYAMLContent_SourceOverrides(t *testing.T) {
	t.Parallel()

	content := []byte(`log:
  level: DEBUG
datasets:
  real-estate:
    sources:
      - "https://sheets.example.com/nha-dat.csv"
  market:
    sources:
      - "https://sheets.example.com/cho-1.csv"
      - "https://sheets.example.com/cho-2.csv"
`)

	cfg, err := ValidateYAMLContent(content)
	if err != nil {
		t.Fatalf("expected config to validate: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("expected normalized log level, got %q", cfg.Log.Level)
	}

	overrides := cfg.SourceOverrides()
	if len(overrides[listing.KindRealEstate]) != 1 || len(overrides[listing.KindMarket]) != 2 {
		t.Fatalf("unexpected overrides: %v", overrides)
	}
}

func TestValidateYAMLContent_RejectsInvalidValues(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"unknown dataset": "datasets:\n  boats:\n    sources: [\"https://sheets.example.com/a.csv\"]\n",
		"bad source url":  "datasets:\n  food:\n    sources: [\"not a url\"]\n",
		"bad port":        "serve:\n  port: 70000\n",
		"bad log format":  "log:\n  format: xml\n",
		"zero timeout":    "http:\n  timeout: 0s\n",
	}
	for name, content := range cases {
		if _, err := ValidateYAMLContent([]byte(content)); err == nil {
			t.Fatalf("%s: expected validation error", name)
		} else if !strings.Contains(err.Error(), "validation failed") {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
	}
}

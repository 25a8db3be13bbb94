// Package config loads report options from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ReportOptions control the reporting window, timezone and fiat currency of a
// single run. Zero values fall back to "today", "local" and "usd".
type ReportOptions struct {
	StartDate    string `yaml:"start_date"`
	EndDate      string `yaml:"end_date"`
	UserTimezone string `yaml:"user_timezone"`
	FiatCurrency string `yaml:"fiat_currency"`
}

// Load reads report options from a YAML file.
func Load(path string) (*ReportOptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report config: %w", err)
	}
	var opts ReportOptions
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return nil, fmt.Errorf("parse report config: %w", err)
	}
	return &opts, nil
}

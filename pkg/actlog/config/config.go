// Package config centralises runtime configuration for the converter.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config captures runtime configuration, read from environment
// variables with defaults suitable for running aboard.
type Config struct {
	// Toktlogger is the host name or base URL of the live logger API.
	Toktlogger string
	// Snapshot is a path to an offline SQLite export of the logger
	// database. When set it takes precedence over Toktlogger.
	Snapshot string
	// OutputDir is where versioned workbooks are written.
	OutputDir string
	// CruiseFile points to an optional YAML file with expedition
	// metadata the logger does not hold.
	CruiseFile string
	// Cruise selects a specific cruise number; empty means the
	// logger's current cruise.
	Cruise string
}

// Cruise holds expedition metadata merged into the Metadata sheet and
// used as mapping defaults. The logger only knows cruise number and
// vessel; everything else comes from this file.
type Cruise struct {
	Title         string `yaml:"title"`
	Abstract      string `yaml:"abstract"`
	PIName        string `yaml:"pi_name"`
	PIEmail       string `yaml:"pi_email"`
	PIInstitution string `yaml:"pi_institution"`
	PIAddress     string `yaml:"pi_address"`
	RecordedBy    string `yaml:"recorded_by"`
	ProjectID     string `yaml:"project_id"`
	CruiseNumber  string `yaml:"cruise_number"`
	VesselName    string `yaml:"vessel_name"`
}

// Load reads environment variables into Config, applying defaults.
func Load() Config {
	return Config{
		Toktlogger: getEnv("TOKTLOGGER_HOST", "toktlogger.hi.no"),
		Snapshot:   getEnv("TOKTLOGGER_SNAPSHOT", ""),
		OutputDir:  getEnv("ACTLOG_OUTPUT_DIR", "."),
		CruiseFile: getEnv("ACTLOG_CRUISE_FILE", ""),
		Cruise:     getEnv("ACTLOG_CRUISE", ""),
	}
}

// LoadCruise parses the YAML cruise-metadata file at path.
func LoadCruise(path string) (Cruise, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Cruise{}, fmt.Errorf("reading cruise file: %w", err)
	}
	var c Cruise
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Cruise{}, fmt.Errorf("parsing cruise file %q: %w", path, err)
	}
	return c, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by the CLI
const (
	EnvTaxYear  = "ISOAMT_TAX_YEAR"
	EnvTables   = "ISOAMT_TABLES"
	EnvLogLevel = "ISOAMT_LOG_LEVEL"
)

// Settings are process-wide defaults that flags and scenario files override
type Settings struct {
	TaxYear  int
	Tables   []string
	LogLevel string
}

// LoadEnv loads the given .env files (missing files are skipped) and reads
// settings from the environment. Variables already set win over file values.
func LoadEnv(files ...string) (Settings, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, &InputError{File: f, Message: "failed to load env file", Cause: err}
		}
	}
	return SettingsFromEnv()
}

// SettingsFromEnv reads settings without touching any files
func SettingsFromEnv() (Settings, error) {
	s := Settings{LogLevel: "info"}

	if v := strings.TrimSpace(os.Getenv(EnvTaxYear)); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return Settings{}, &InputError{Message: EnvTaxYear + " must be a year", Cause: err}
		}
		s.TaxYear = year
	}
	if v := strings.TrimSpace(os.Getenv(EnvTables)); v != "" {
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				s.Tables = append(s.Tables, p)
			}
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		s.LogLevel = strings.ToLower(v)
	}
	return s, nil
}

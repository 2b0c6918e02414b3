// Package gsheet fetches grid snapshots from the Google Sheets v4 API
// using OAuth installed-app credentials.
package gsheet

import (
	"os"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the OAuth credential and token file locations.
type Config struct {
	// CredentialsPath is the OAuth client secrets file (credentials.json).
	CredentialsPath string
	// TokenPath is the cached user token file (token.json).
	TokenPath string
}

// LoadConfig reads the configuration from the environment, consulting a
// .env file when present. Missing values fall back to credentials.json and
// token.json in the working directory.
func LoadConfig() Config {
	_ = godotenv.Load()

	cfg := Config{
		CredentialsPath: os.Getenv("SHEETSTRUCT_CREDENTIALS"),
		TokenPath:       os.Getenv("SHEETSTRUCT_TOKEN"),
	}
	if cfg.CredentialsPath == "" {
		cfg.CredentialsPath = "credentials.json"
	}
	if cfg.TokenPath == "" {
		cfg.TokenPath = "token.json"
	}
	return cfg
}

var spreadsheetIDPattern = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)

// ExtractSpreadsheetID pulls the spreadsheet id out of a Google Sheets
// URL; anything not matching the URL form is assumed to already be an id.
func ExtractSpreadsheetID(urlOrID string) string {
	if m := spreadsheetIDPattern.FindStringSubmatch(urlOrID); m != nil {
		return m[1]
	}
	return strings.TrimSpace(urlOrID)
}

// SpreadsheetURL returns the canonical URL for a spreadsheet id.
func SpreadsheetURL(id string) string {
	return "https://docs.google.com/spreadsheets/d/" + id
}

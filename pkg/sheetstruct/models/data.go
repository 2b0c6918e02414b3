package models

// SheetTable is the tabular dump of one sheet: the first row as headers,
// every following row keyed by header.
type SheetTable struct {
	// SheetName is the sheet title.
	SheetName string `json:"sheet_name"`
	// IsEmpty reports whether the sheet has no content.
	IsEmpty bool `json:"is_empty"`
	// Dimensions holds the data row count and the header width.
	Dimensions *Dimensions `json:"dimensions,omitempty"`
	// Headers holds the deduplicated header names.
	Headers []string `json:"headers,omitempty"`
	// Data holds one map per data row; blank cells are null.
	Data []map[string]any `json:"data"`
	// Error describes a per-sheet failure, empty on success.
	Error string `json:"error,omitempty"`
}

// DataSummary aggregates counts across all dumped sheets.
type DataSummary struct {
	TotalSheets   int      `json:"total_sheets"`
	SheetNames    []string `json:"sheet_names"`
	TotalDataRows int      `json:"total_data_rows"`
}

// SpreadsheetData is the data document for a whole spreadsheet.
type SpreadsheetData struct {
	SpreadsheetID  string       `json:"spreadsheet_id"`
	SpreadsheetURL string       `json:"spreadsheet_url,omitempty"`
	Title          string       `json:"title"`
	Locale         string       `json:"locale,omitempty"`
	TimeZone       string       `json:"timezone,omitempty"`
	SheetCount     int          `json:"sheet_count"`
	Sheets         []SheetTable `json:"sheets"`
	Summary        DataSummary  `json:"summary"`
}

package models

// GridDimensions holds row and column counts for analysis documents.
type GridDimensions struct {
	// RowCount is the number of fetched rows.
	RowCount int `json:"row_count"`
	// ColumnCount is the widest row's cell count.
	ColumnCount int `json:"column_count"`
}

// SheetAnalysis is the full structural analysis of one sheet.
type SheetAnalysis struct {
	// SheetName is the sheet title.
	SheetName string `json:"sheet_name"`
	// SheetID is the sheet id within the spreadsheet.
	SheetID int64 `json:"sheet_id"`
	// IsEmpty reports whether the sheet has no content.
	IsEmpty bool `json:"is_empty"`
	// Dimensions holds the fetched grid size.
	Dimensions *GridDimensions `json:"dimensions,omitempty"`
	// ColumnHeaders holds the display values of the first row.
	ColumnHeaders []string `json:"column_headers,omitempty"`
	// RowHeaders holds the display values of the first column (first 10 rows).
	RowHeaders []string `json:"row_headers,omitempty"`
	// Columns maps column index to its type profile.
	Columns map[int]ColumnInfo `json:"columns,omitempty"`
	// GridProperties holds sheet dimension and freeze metadata.
	GridProperties *GridProperties `json:"grid_properties,omitempty"`
	// Error describes a per-sheet failure, empty on success.
	Error string `json:"error,omitempty"`
}

// AnalysisSummary aggregates counts across all analyzed sheets.
type AnalysisSummary struct {
	TotalSheets    int      `json:"total_sheets"`
	NonEmptySheets int      `json:"non_empty_sheets"`
	TotalRows      int      `json:"total_rows"`
	SheetNames     []string `json:"sheet_names"`
}

// SpreadsheetAnalysis is the analysis document for a whole spreadsheet.
type SpreadsheetAnalysis struct {
	SpreadsheetID  string          `json:"spreadsheet_id"`
	SpreadsheetURL string          `json:"spreadsheet_url,omitempty"`
	Title          string          `json:"title"`
	Locale         string          `json:"locale,omitempty"`
	TimeZone       string          `json:"timezone,omitempty"`
	SheetCount     int             `json:"sheet_count"`
	Sheets         []SheetAnalysis `json:"sheets"`
	Summary        AnalysisSummary `json:"analysis_summary"`
}

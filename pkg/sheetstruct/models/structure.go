package models

// Dimensions holds row and column counts for structure and data documents.
type Dimensions struct {
	// Rows is the number of rows.
	Rows int `json:"rows"`
	// Columns is the number of columns.
	Columns int `json:"columns"`
}

// Frozen holds frozen row and column counts.
type Frozen struct {
	// Rows is the number of frozen rows.
	Rows int `json:"rows"`
	// Columns is the number of frozen columns.
	Columns int `json:"columns"`
}

// SheetStructure is the pattern-aware structural summary of one sheet.
type SheetStructure struct {
	// SheetName is the sheet title.
	SheetName string `json:"sheet_name"`
	// IsEmpty reports whether the sheet has no content.
	IsEmpty bool `json:"is_empty"`
	// Dimensions holds the sheet's declared size.
	Dimensions *Dimensions `json:"dimensions,omitempty"`
	// ColumnStructure is the detected pattern of the header row.
	ColumnStructure *Pattern `json:"column_structure,omitempty"`
	// RowStructure is the detected pattern of the header column.
	RowStructure *Pattern `json:"row_structure,omitempty"`
	// Frozen holds frozen pane counts, omitted when nothing is frozen.
	Frozen *Frozen `json:"frozen,omitempty"`
	// Error describes a per-sheet failure, empty on success.
	Error string `json:"error,omitempty"`
}

// SpreadsheetStructure is the structure document for a whole spreadsheet.
type SpreadsheetStructure struct {
	SpreadsheetID  string           `json:"spreadsheet_id"`
	SpreadsheetURL string           `json:"spreadsheet_url,omitempty"`
	Title          string           `json:"title"`
	Locale         string           `json:"locale,omitempty"`
	TimeZone       string           `json:"timezone,omitempty"`
	SheetCount     int              `json:"sheet_count"`
	Sheets         []SheetStructure `json:"sheets"`
}

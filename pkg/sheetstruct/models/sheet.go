package models

// GridProperties holds sheet dimension and freeze metadata.
type GridProperties struct {
	// RowCount is the total number of rows in the sheet.
	RowCount int `json:"row_count"`
	// ColumnCount is the total number of columns in the sheet.
	ColumnCount int `json:"column_count"`
	// FrozenRowCount is the number of frozen rows.
	FrozenRowCount int `json:"frozen_row_count,omitempty"`
	// FrozenColumnCount is the number of frozen columns.
	FrozenColumnCount int `json:"frozen_column_count,omitempty"`
}

// Sheet is the in-memory snapshot of a single sheet's grid.
type Sheet struct {
	// Name is the sheet title.
	Name string `json:"name"`
	// ID is the sheet id within the spreadsheet (0 for xlsx sources).
	ID int64 `json:"id"`
	// Props holds dimension and freeze metadata.
	Props GridProperties `json:"grid_properties"`
	// Rows contains the fetched grid rows. May be shorter than
	// Props.RowCount when the fetch was truncated.
	Rows []RowData `json:"rows,omitempty"`
	// Truncated reports whether the fetch was capped at a row limit.
	Truncated bool `json:"truncated,omitempty"`
	// Error describes a failed fetch for this sheet, empty on success. A
	// sheet with an error has no rows.
	Error string `json:"error,omitempty"`
}

// Spreadsheet is the in-memory snapshot of a whole spreadsheet.
type Spreadsheet struct {
	// ID is the spreadsheet id (or file path for xlsx sources).
	ID string `json:"id"`
	// URL is the canonical spreadsheet URL, empty for local files.
	URL string `json:"url,omitempty"`
	// Title is the spreadsheet title.
	Title string `json:"title"`
	// Locale is the spreadsheet locale (e.g., en_US).
	Locale string `json:"locale,omitempty"`
	// TimeZone is the spreadsheet time zone (e.g., Asia/Tokyo).
	TimeZone string `json:"timezone,omitempty"`
	// Sheets contains per-sheet grid snapshots in workbook order.
	Sheets []Sheet `json:"sheets"`
}

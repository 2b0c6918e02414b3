package models

// ColumnInfo describes the cell and data type profile of one column,
// including formula range analysis when the column carries formulas.
type ColumnInfo struct {
	// ColumnIndex is the 0-based column index.
	ColumnIndex int `json:"column_index"`
	// ColumnLetter is the column letter (A..Z, then ColN).
	ColumnLetter string `json:"column_letter"`
	// DominantCellType is the most frequent cell type in the column.
	DominantCellType string `json:"dominant_cell_type"`
	// CellTypeDistribution maps cell type to its fraction of scanned cells.
	CellTypeDistribution map[string]float64 `json:"cell_type_distribution"`
	// DominantDataType is the most frequent inferred data type.
	DominantDataType string `json:"dominant_data_type"`
	// DataTypeDistribution maps data type to its fraction of typed cells.
	DataTypeDistribution map[string]float64 `json:"data_type_distribution"`
	// NonEmptyCount is the number of non-empty cells scanned.
	NonEmptyCount int `json:"non_empty_count"`
	// FormulaCount is the total number of formulas in the column.
	FormulaCount int `json:"formula_count,omitempty"`
	// FormulaRanges is the number of contiguous formula runs.
	FormulaRanges int `json:"formula_ranges,omitempty"`
	// FormulaFlow describes each formula run and its breaks.
	FormulaFlow []FormulaFlowEntry `json:"formula_flow,omitempty"`
	// HasDropdown reports whether any cell has a dropdown validation.
	HasDropdown bool `json:"has_dropdown,omitempty"`
	// DropdownOptions holds the option list of the first dropdown found.
	DropdownOptions []string `json:"dropdown_options,omitempty"`
}

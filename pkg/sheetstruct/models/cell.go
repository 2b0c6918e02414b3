// Package models defines data structures for spreadsheet grid snapshots
// and analysis result documents.
package models

// ExtendedValue holds the typed calculated value of a cell. At most one
// field is set.
type ExtendedValue struct {
	// String is the string value, if the cell evaluates to text.
	String *string `json:"string_value,omitempty"`
	// Number is the numeric value, if the cell evaluates to a number.
	// Dates are represented as serial day counts from the sheets epoch.
	Number *float64 `json:"number_value,omitempty"`
	// Bool is the boolean value, if the cell evaluates to TRUE/FALSE.
	Bool *bool `json:"bool_value,omitempty"`
}

// DataValidation describes a validation rule attached to a cell.
type DataValidation struct {
	// ConditionType is the rule type (e.g., BOOLEAN, ONE_OF_LIST, ONE_OF_RANGE).
	ConditionType string `json:"condition_type"`
	// Values contains the allowed values for list-type conditions.
	Values []string `json:"values,omitempty"`
}

// Cell is a single grid cell as delivered by a source. The zero value is an
// empty cell.
type Cell struct {
	// Formula is the user-entered formula text, empty if the cell holds no formula.
	Formula string `json:"formula,omitempty"`
	// Effective is the typed calculated value, nil if the cell is empty.
	Effective *ExtendedValue `json:"effective_value,omitempty"`
	// Formatted is the display string as rendered by the spreadsheet.
	Formatted string `json:"formatted_value,omitempty"`
	// Validation is the data validation rule, nil if none is set.
	Validation *DataValidation `json:"data_validation,omitempty"`
	// NumberFormatType is the number format type of the cell (e.g., DATE,
	// DATE_TIME, NUMBER), empty if unknown.
	NumberFormatType string `json:"number_format_type,omitempty"`
}

// RowData is an ordered list of cells in one row. Trailing empty cells may
// be absent, so rows in the same sheet can have different lengths.
type RowData struct {
	// Values contains the cells of the row in column order.
	Values []Cell `json:"values,omitempty"`
}

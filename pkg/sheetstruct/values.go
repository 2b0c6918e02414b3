// Package sheetstruct analyzes spreadsheet grid snapshots: it profiles
// column types, detects structural patterns in header sequences, tracks
// formula ranges, and dumps tabular data.
package sheetstruct

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/sheetstruct-go/pkg/sheetstruct/models"
)

// Cell type labels produced by CellType.
const (
	TypeEmpty    = "empty"
	TypeCheckbox = "checkbox"
	TypeDropdown = "dropdown"
	TypeFormula  = "formula"
	TypeNumber   = "number"
	TypeText     = "text"
	TypeBoolean  = "boolean"
	TypeDate     = "date"
	TypeURL      = "url"
	TypeEmail    = "email"
)

var (
	dataDatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{2,4}$`),
		regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
		regexp.MustCompile(`^\d{1,2}-\d{1,2}-\d{2,4}$`),
	}
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// sheetsEpoch is the spreadsheet serial date epoch (December 30, 1899).
var sheetsEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// CellType determines the type of a cell from its metadata. Validation
// rules win over formulas, formulas over plain values.
func CellType(cell models.Cell) string {
	if cell.Validation != nil {
		switch cell.Validation.ConditionType {
		case "BOOLEAN":
			return TypeCheckbox
		case "ONE_OF_RANGE", "ONE_OF_LIST":
			return TypeDropdown
		}
	}
	if cell.Formula != "" {
		return TypeFormula
	}
	if cell.Effective != nil {
		switch {
		case cell.Effective.Number != nil:
			return TypeNumber
		case cell.Effective.String != nil:
			return TypeText
		case cell.Effective.Bool != nil:
			return TypeBoolean
		}
	}
	return TypeEmpty
}

// InferDataType classifies a scalar display value. Partial matches fall
// through to the looser text classification.
func InferDataType(value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return TypeEmpty
	}

	if _, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", ""), 64); err == nil {
		return TypeNumber
	}

	switch strings.ToLower(v) {
	case "true", "false", "yes", "no":
		return TypeBoolean
	}

	for _, re := range dataDatePatterns {
		if re.MatchString(v) {
			return TypeDate
		}
	}

	if strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://") {
		return TypeURL
	}
	if emailPattern.MatchString(v) {
		return TypeEmail
	}
	return TypeText
}

// SerialToDate converts a spreadsheet serial day count to a YYYY-MM-DD
// string. Values outside the representable date range come back as the
// plain number.
func SerialToDate(serial float64) string {
	if math.IsNaN(serial) || math.IsInf(serial, 0) || serial < -700000 || serial > 3000000 {
		return formatNumber(serial)
	}
	d := sheetsEpoch.Add(time.Duration(serial * float64(24*time.Hour)))
	return d.Format("2006-01-02")
}

// ColumnLetter returns the display letter for a column index: A..Z for the
// first 26 columns, ColN beyond.
func ColumnLetter(idx int) string {
	if idx >= 0 && idx < 26 {
		return string(rune('A' + idx))
	}
	return fmt.Sprintf("Col%d", idx)
}

// headerValue extracts the display value of a header cell: the formatted
// string when present, else the effective value. Numeric values carrying a
// date format render as dates.
func headerValue(cell models.Cell) string {
	if cell.Formatted != "" {
		return cell.Formatted
	}
	if cell.Effective == nil {
		return ""
	}
	switch {
	case cell.Effective.String != nil:
		return *cell.Effective.String
	case cell.Effective.Number != nil:
		n := *cell.Effective.Number
		if n > 1 && n < 100000 && isDateFormat(cell.NumberFormatType) {
			return SerialToDate(n)
		}
		return formatNumber(n)
	case cell.Effective.Bool != nil:
		return strconv.FormatBool(*cell.Effective.Bool)
	}
	return ""
}

// cellValue extracts the value of a data cell for tabular output.
func cellValue(cell models.Cell) any {
	if cell.Formatted != "" {
		return cell.Formatted
	}
	if cell.Effective == nil {
		return nil
	}
	switch {
	case cell.Effective.String != nil:
		return *cell.Effective.String
	case cell.Effective.Number != nil:
		return *cell.Effective.Number
	case cell.Effective.Bool != nil:
		return *cell.Effective.Bool
	}
	return nil
}

func isDateFormat(formatType string) bool {
	return formatType == "DATE" || formatType == "DATE_TIME"
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

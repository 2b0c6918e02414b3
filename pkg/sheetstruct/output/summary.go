package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/sheetstruct-go/pkg/sheetstruct/models"
)

// SummarizeStructure renders a structure document as a short report.
func SummarizeStructure(w io.Writer, doc *models.SpreadsheetStructure) {
	fmt.Fprintf(w, "Spreadsheet: %s\n", doc.Title)
	if doc.SpreadsheetURL != "" {
		fmt.Fprintf(w, "URL: %s\n", doc.SpreadsheetURL)
	}
	if doc.Locale != "" || doc.TimeZone != "" {
		fmt.Fprintf(w, "%s | %s\n", doc.Locale, doc.TimeZone)
	}
	fmt.Fprintf(w, "\n%d sheets:\n\n", doc.SheetCount)

	for i, sheet := range doc.Sheets {
		if sheet.IsEmpty {
			fmt.Fprintf(w, "%d. %s: EMPTY\n", i+1, sheet.SheetName)
			continue
		}
		if sheet.Error != "" {
			fmt.Fprintf(w, "%d. %s: ERROR - %s\n", i+1, sheet.SheetName, sheet.Error)
			continue
		}

		if sheet.Dimensions != nil {
			fmt.Fprintf(w, "%d. %s: %d rows x %d cols\n",
				i+1, sheet.SheetName, sheet.Dimensions.Rows, sheet.Dimensions.Columns)
		} else {
			fmt.Fprintf(w, "%d. %s\n", i+1, sheet.SheetName)
		}

		if sheet.ColumnStructure != nil {
			fmt.Fprintf(w, "   Columns: %s\n", describePattern(sheet.ColumnStructure))
		}
		if sheet.RowStructure != nil {
			fmt.Fprintf(w, "   Rows: %s\n", describePattern(sheet.RowStructure))
		}
		if sheet.Frozen != nil {
			fmt.Fprintf(w, "   Frozen: %d rows, %d columns\n", sheet.Frozen.Rows, sheet.Frozen.Columns)
		}
		fmt.Fprintln(w)
	}
}

// SummarizeAnalysis renders an analysis document as a short report.
func SummarizeAnalysis(w io.Writer, doc *models.SpreadsheetAnalysis) {
	fmt.Fprintf(w, "Spreadsheet: %s\n", doc.Title)
	if doc.SpreadsheetURL != "" {
		fmt.Fprintf(w, "URL: %s\n", doc.SpreadsheetURL)
	}
	fmt.Fprintf(w, "Locale: %s | Timezone: %s\n", doc.Locale, doc.TimeZone)
	fmt.Fprintf(w, "\nSheets: %d\n\n", doc.SheetCount)

	for i, sheet := range doc.Sheets {
		switch {
		case sheet.IsEmpty:
			fmt.Fprintf(w, "%d. %s: EMPTY\n", i+1, sheet.SheetName)
		case sheet.Error != "":
			fmt.Fprintf(w, "%d. %s: ERROR - %s\n", i+1, sheet.SheetName, sheet.Error)
		default:
			rows, cols := 0, 0
			if sheet.Dimensions != nil {
				rows, cols = sheet.Dimensions.RowCount, sheet.Dimensions.ColumnCount
			}
			fmt.Fprintf(w, "%d. %s: %d rows x %d columns\n", i+1, sheet.SheetName, rows, cols)
		}
	}

	fmt.Fprintf(w, "\nTotal rows across all sheets: %d\n", doc.Summary.TotalRows)
}

// describePattern renders one detected pattern as a single line.
func describePattern(p *models.Pattern) string {
	switch p.Type {
	case models.PatternRepeating:
		desc := fmt.Sprintf("[%s] x %d blocks", strings.Join(p.Template, ", "), p.RepeatCount)
		if len(p.Breaks) > 0 {
			desc += fmt.Sprintf(" (%d breaks)", len(p.Breaks))
		}
		return desc
	case models.PatternList:
		preview := p.Values
		suffix := ""
		if len(preview) > 8 {
			preview = preview[:8]
			suffix = "..."
		}
		return fmt.Sprintf("%d items - %s%s", len(p.Values), strings.Join(preview, ", "), suffix)
	case models.PatternVariedWithPrefix:
		return fmt.Sprintf("%d/%d start with %q", p.PrefixCount, p.Total, p.CommonPrefix)
	case models.PatternDateSequence:
		return fmt.Sprintf("%d dates from %s to %s", p.Count, p.First, p.Last)
	case models.PatternUniform:
		return fmt.Sprintf("all %q (%dx)", p.Value, p.Count)
	case models.PatternSingle:
		return fmt.Sprintf("single value %q", p.Value)
	case models.PatternVaried:
		return fmt.Sprintf("%d unique values", p.UniqueCount)
	case models.PatternAllEmpty:
		return fmt.Sprintf("empty (%d cells)", p.Count)
	case models.PatternEmpty:
		return "empty"
	default:
		return string(p.Type)
	}
}

package formula

import "github.com/ukaji3/sheetstruct-go/pkg/sheetstruct/models"

// LookAheadWindow is the number of rows scanned past a closed range for a
// formula resumption. Carried over from field-tuned defaults.
const LookAheadWindow = 9

// Flow projects formula ranges to 1-based row numbers and annotates each
// range whose end is not the last row with the next formula-bearing row in
// the same column, when one exists within the look-ahead window.
func Flow(ranges []models.FormulaRange, rows []models.RowData, colIdx int) []models.FormulaFlowEntry {
	var flow []models.FormulaFlowEntry
	for _, r := range ranges {
		entry := models.FormulaFlowEntry{
			StartRow:     r.StartRow + 1,
			EndRow:       r.EndRow + 1,
			RowCount:     r.FormulaCount,
			Pattern:      r.Pattern,
			FirstFormula: r.FirstFormula,
			Examples:     exampleFormulas(r.Formulas),
		}

		if r.EndRow < len(rows)-1 {
			if next, ok := nextFormulaRow(rows, colIdx, r.EndRow); ok {
				size := next - entry.EndRow - 1
				entry.BreakAfter = true
				entry.ContinuesAtRow = next
				entry.BreakSize = &size
			}
		}

		flow = append(flow, entry)
	}
	return flow
}

// nextFormulaRow looks ahead up to LookAheadWindow rows after endRow for a
// formula-bearing row and returns its 1-based index.
func nextFormulaRow(rows []models.RowData, colIdx, endRow int) (int, bool) {
	limit := endRow + 1 + LookAheadWindow
	if limit > len(rows) {
		limit = len(rows)
	}
	for rowIdx := endRow + 1; rowIdx < limit; rowIdx++ {
		if cellFormula(rows, rowIdx, colIdx) != "" {
			return rowIdx + 1, true
		}
	}
	return 0, false
}

func exampleFormulas(formulas []string) []string {
	if len(formulas) > maxExampleFormulas {
		formulas = formulas[:maxExampleFormulas]
	}
	out := make([]string, len(formulas))
	copy(out, formulas)
	return out
}

package formula

import "github.com/ukaji3/sheetstruct-go/pkg/sheetstruct/models"

// maxExampleFormulas is the number of raw formulas kept per range.
const maxExampleFormulas = 3

// AnalyzeColumn scans one column from startRow to the end of rows and
// groups contiguous formula-bearing rows by normalized signature. A row
// without a cell at colIdx, or whose cell holds no formula, closes the
// open range. Row indexes in the result are 0-based.
func AnalyzeColumn(rows []models.RowData, colIdx, startRow int) []models.FormulaRange {
	var ranges []models.FormulaRange
	var current *models.FormulaRange

	for rowIdx := startRow; rowIdx < len(rows); rowIdx++ {
		f := cellFormula(rows, rowIdx, colIdx)
		if f == "" {
			if current != nil {
				ranges = append(ranges, *current)
				current = nil
			}
			continue
		}

		pattern := Normalize(f)
		switch {
		case current == nil:
			current = newRange(rowIdx, pattern, f)
		case current.Pattern == pattern:
			current.EndRow = rowIdx
			current.FormulaCount++
			if len(current.Formulas) < maxExampleFormulas {
				current.Formulas = append(current.Formulas, f)
			}
		default:
			ranges = append(ranges, *current)
			current = newRange(rowIdx, pattern, f)
		}
	}

	if current != nil {
		ranges = append(ranges, *current)
	}
	return ranges
}

func newRange(rowIdx int, pattern, formula string) *models.FormulaRange {
	return &models.FormulaRange{
		StartRow:     rowIdx,
		EndRow:       rowIdx,
		Pattern:      pattern,
		FirstFormula: formula,
		FormulaCount: 1,
		Formulas:     []string{formula},
	}
}

// cellFormula returns the formula at (rowIdx, colIdx), or "" when the row
// has no cell there.
func cellFormula(rows []models.RowData, rowIdx, colIdx int) string {
	row := rows[rowIdx]
	if colIdx >= len(row.Values) {
		return ""
	}
	return row.Values[colIdx].Formula
}

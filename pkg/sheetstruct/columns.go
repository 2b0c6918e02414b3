package sheetstruct

import (
	"github.com/ukaji3/sheetstruct-go/pkg/sheetstruct/formula"
	"github.com/ukaji3/sheetstruct-go/pkg/sheetstruct/models"
)

// AnalyzeColumns profiles cell and data types for every column of a grid,
// scanning rows from startRow (headers usually excluded). Columns carrying
// formulas additionally get formula range and flow analysis.
func AnalyzeColumns(rows []models.RowData, startRow int) map[int]models.ColumnInfo {
	if len(rows) <= startRow {
		return map[int]models.ColumnInfo{}
	}

	maxCols := 0
	for _, row := range rows {
		if len(row.Values) > maxCols {
			maxCols = len(row.Values)
		}
	}

	columns := make(map[int]models.ColumnInfo, maxCols)
	for colIdx := 0; colIdx < maxCols; colIdx++ {
		columns[colIdx] = analyzeColumn(rows, colIdx, startRow)
	}
	return columns
}

func analyzeColumn(rows []models.RowData, colIdx, startRow int) models.ColumnInfo {
	cellTypes := newTypeTally()
	dataTypes := newTypeTally()
	formulaCount := 0
	hasDropdown := false
	var dropdownOptions []string

	for rowIdx := startRow; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		if colIdx >= len(row.Values) {
			continue
		}
		cell := row.Values[colIdx]

		cellType := CellType(cell)
		cellTypes.add(cellType)

		if cell.Formula != "" {
			formulaCount++
		}

		if cellType == TypeDropdown {
			hasDropdown = true
			if dropdownOptions == nil {
				dropdownOptions = dropdownValues(cell)
			}
		}

		if cell.Effective != nil {
			switch {
			case cell.Effective.String != nil:
				dataTypes.add(InferDataType(*cell.Effective.String))
			case cell.Effective.Number != nil:
				dataTypes.add(TypeNumber)
			case cell.Effective.Bool != nil:
				dataTypes.add(TypeBoolean)
			}
		}
	}

	info := models.ColumnInfo{
		ColumnIndex:          colIdx,
		ColumnLetter:         ColumnLetter(colIdx),
		DominantCellType:     cellTypes.dominant(),
		CellTypeDistribution: cellTypes.distribution(),
		DominantDataType:     dataTypes.dominant(),
		DataTypeDistribution: dataTypes.distribution(),
		NonEmptyCount:        cellTypes.total - cellTypes.counts[TypeEmpty],
	}

	if formulaCount > 0 {
		ranges := formula.AnalyzeColumn(rows, colIdx, startRow)
		info.FormulaCount = formulaCount
		info.FormulaRanges = len(ranges)
		info.FormulaFlow = formula.Flow(ranges, rows, colIdx)
	}

	if hasDropdown {
		info.HasDropdown = true
		info.DropdownOptions = dropdownOptions
	}
	return info
}

// dropdownValues returns the option list of a ONE_OF_LIST validation.
func dropdownValues(cell models.Cell) []string {
	if cell.Validation == nil || cell.Validation.ConditionType != "ONE_OF_LIST" {
		return nil
	}
	return cell.Validation.Values
}

// typeTally counts type labels preserving first-occurrence order, so
// dominant-type ties resolve deterministically.
type typeTally struct {
	counts map[string]int
	order  []string
	total  int
}

func newTypeTally() *typeTally {
	return &typeTally{counts: make(map[string]int)}
}

func (t *typeTally) add(label string) {
	if _, seen := t.counts[label]; !seen {
		t.order = append(t.order, label)
	}
	t.counts[label]++
	t.total++
}

func (t *typeTally) dominant() string {
	if t.total == 0 {
		return TypeEmpty
	}
	best := ""
	bestCount := 0
	for _, label := range t.order {
		if t.counts[label] > bestCount {
			best = label
			bestCount = t.counts[label]
		}
	}
	return best
}

func (t *typeTally) distribution() map[string]float64 {
	if t.total == 0 {
		return map[string]float64{TypeEmpty: 1.0}
	}
	dist := make(map[string]float64, len(t.counts))
	for label, count := range t.counts {
		dist[label] = float64(count) / float64(t.total)
	}
	return dist
}

package source

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/sheetstruct-go/pkg/sheetstruct"
	"github.com/ukaji3/sheetstruct-go/pkg/sheetstruct/models"
)

// XLSX reads grid snapshots from local .xlsx files.
type XLSX struct{}

// NewXLSX returns an xlsx file source.
func NewXLSX() *XLSX {
	return &XLSX{}
}

// Open reads an xlsx file into a grid snapshot: formatted values, typed
// effective values, formulas, list validations, and frozen panes.
func (s *XLSX) Open(ctx context.Context, path string, opts Options) (*models.Spreadsheet, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", sheetstruct.ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sp := &models.Spreadsheet{
		ID:    path,
		Title: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
	}

	for _, sheetName := range f.GetSheetList() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sheet, err := readSheet(f, sheetName, opts)
		if err != nil {
			serr := sheetstruct.NewSheetError(sheetName, "fetch", err)
			slog.Warn("sheet read failed", "sheet", sheetName, "error", serr)
			sheet = models.Sheet{Name: sheetName, Error: serr.Error()}
		}
		idx, _ := f.GetSheetIndex(sheetName)
		sheet.ID = int64(idx)
		sp.Sheets = append(sp.Sheets, sheet)
	}

	return sp, nil
}

func readSheet(f *excelize.File, sheetName string, opts Options) (models.Sheet, error) {
	grid, err := f.GetRows(sheetName)
	if err != nil {
		return models.Sheet{}, err
	}

	sheet := models.Sheet{Name: sheetName}
	sheet.Props.RowCount = len(grid)
	for _, row := range grid {
		if len(row) > sheet.Props.ColumnCount {
			sheet.Props.ColumnCount = len(row)
		}
	}

	if opts.MaxRows > 0 && len(grid) > opts.MaxRows {
		slog.Warn("sheet truncated", "sheet", sheetName, "rows", len(grid), "max_rows", opts.MaxRows)
		grid = grid[:opts.MaxRows]
		sheet.Truncated = true
	}

	validations := listValidations(f, sheetName)

	for rowIdx, row := range grid {
		// Scan the full sheet width, not just the populated cells: a
		// formula without a cached value reads back as a blank.
		cells := make([]models.Cell, sheet.Props.ColumnCount)
		for colIdx := range cells {
			var cell models.Cell
			if colIdx < len(row) {
				cell.Formatted = row[colIdx]
				if row[colIdx] != "" {
					cell.Effective = typedValue(row[colIdx])
				}
			}

			cellName, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if fml, err := f.GetCellFormula(sheetName, cellName); err == nil && fml != "" {
				// Stored formulas may or may not carry the leading "=".
				cell.Formula = "=" + strings.TrimPrefix(fml, "=")
			}
			if dv, ok := validations[cellKey(colIdx+1, rowIdx+1)]; ok {
				cell.Validation = dv
			}
			cells[colIdx] = cell
		}
		sheet.Rows = append(sheet.Rows, models.RowData{Values: trimRow(cells)})
	}

	if panes, err := f.GetPanes(sheetName); err == nil && panes.Freeze {
		sheet.Props.FrozenRowCount = panes.YSplit
		sheet.Props.FrozenColumnCount = panes.XSplit
	}

	return sheet, nil
}

// trimRow drops trailing cells carrying no content at all.
func trimRow(cells []models.Cell) []models.Cell {
	end := len(cells)
	for end > 0 {
		c := cells[end-1]
		if c.Formatted != "" || c.Formula != "" || c.Effective != nil || c.Validation != nil {
			break
		}
		end--
	}
	return cells[:end]
}

// typedValue mirrors how the sheets API types calculated values: numbers
// and booleans get their native type, everything else stays a string.
func typedValue(s string) *models.ExtendedValue {
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return &models.ExtendedValue{Number: &n}
	}
	switch s {
	case "TRUE":
		b := true
		return &models.ExtendedValue{Bool: &b}
	case "FALSE":
		b := false
		return &models.ExtendedValue{Bool: &b}
	}
	v := s
	return &models.ExtendedValue{String: &v}
}

// listValidations maps cell coordinates to their dropdown validation, for
// every list-type data validation in the sheet.
func listValidations(f *excelize.File, sheetName string) map[string]*models.DataValidation {
	result := make(map[string]*models.DataValidation)

	dvs, err := f.GetDataValidations(sheetName)
	if err != nil {
		return result
	}

	for _, dv := range dvs {
		if dv == nil || dv.Type != "list" || dv.Formula1 == "" {
			continue
		}
		rule := listRule(dv.Formula1)
		for _, ref := range strings.Fields(dv.Sqref) {
			for _, key := range cellKeysInRange(ref) {
				result[key] = rule
			}
		}
	}
	return result
}

// listRule converts an xlsx list formula into a validation rule. An inline
// list like "a,b,c" becomes ONE_OF_LIST with its options; a range
// reference becomes ONE_OF_RANGE.
func listRule(formula string) *models.DataValidation {
	formula = strings.TrimSpace(formula)
	if strings.HasPrefix(formula, `"`) && strings.HasSuffix(formula, `"`) && len(formula) >= 2 {
		inner := formula[1 : len(formula)-1]
		return &models.DataValidation{
			ConditionType: "ONE_OF_LIST",
			Values:        strings.Split(inner, ","),
		}
	}
	return &models.DataValidation{ConditionType: "ONE_OF_RANGE"}
}

// cellKeysInRange expands a reference like "A1" or "A1:B3" into cell keys.
func cellKeysInRange(ref string) []string {
	parts := strings.SplitN(ref, ":", 2)
	c1, r1, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil
	}
	c2, r2 := c1, r1
	if len(parts) == 2 {
		c2, r2, err = excelize.CellNameToCoordinates(parts[1])
		if err != nil {
			return nil
		}
	}

	var keys []string
	for col := c1; col <= c2; col++ {
		for row := r1; row <= r2; row++ {
			keys = append(keys, cellKey(col, row))
		}
	}
	return keys
}

func cellKey(col, row int) string {
	return strconv.Itoa(col) + ":" + strconv.Itoa(row)
}

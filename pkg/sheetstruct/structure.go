package sheetstruct

import (
	"log/slog"

	"github.com/ukaji3/sheetstruct-go/pkg/sheetstruct/models"
	"github.com/ukaji3/sheetstruct-go/pkg/sheetstruct/pattern"
)

// ExtractStructure builds the pattern-aware structural summary of a
// spreadsheet: header shapes only, no data values.
func ExtractStructure(sp *models.Spreadsheet) *models.SpreadsheetStructure {
	doc := &models.SpreadsheetStructure{
		SpreadsheetID:  sp.ID,
		SpreadsheetURL: sp.URL,
		Title:          sp.Title,
		Locale:         sp.Locale,
		TimeZone:       sp.TimeZone,
		SheetCount:     len(sp.Sheets),
	}
	for i := range sp.Sheets {
		slog.Info("extracting structure", "sheet", sp.Sheets[i].Name)
		doc.Sheets = append(doc.Sheets, SheetStructureOf(&sp.Sheets[i]))
	}
	return doc
}

// SheetStructureOf classifies the header row and header column of a sheet.
// Only the first StructureScanRows rows contribute row headers. A sheet
// that failed to fetch reports its error instead of a structure.
func SheetStructureOf(sheet *models.Sheet) models.SheetStructure {
	if sheet.Error != "" {
		return models.SheetStructure{
			SheetName: sheet.Name,
			Error:     sheet.Error,
		}
	}
	if sheet.Props.RowCount == 0 || len(sheet.Rows) == 0 {
		return models.SheetStructure{
			SheetName: sheet.Name,
			IsEmpty:   true,
		}
	}

	rows := sheet.Rows
	if len(rows) > StructureScanRows {
		rows = rows[:StructureScanRows]
	}

	var columnHeaders []string
	for _, cell := range rows[0].Values {
		columnHeaders = append(columnHeaders, headerValue(cell))
	}

	var rowHeaders []string
	for _, row := range rows {
		if len(row.Values) > 0 {
			rowHeaders = append(rowHeaders, headerValue(row.Values[0]))
		} else {
			rowHeaders = append(rowHeaders, "")
		}
	}

	colPattern := pattern.Detect(columnHeaders)
	rowPattern := pattern.Detect(rowHeaders)

	result := models.SheetStructure{
		SheetName: sheet.Name,
		IsEmpty:   false,
		Dimensions: &models.Dimensions{
			Rows:    sheet.Props.RowCount,
			Columns: sheet.Props.ColumnCount,
		},
		ColumnStructure: &colPattern,
		RowStructure:    &rowPattern,
	}

	if sheet.Props.FrozenRowCount > 0 || sheet.Props.FrozenColumnCount > 0 {
		result.Frozen = &models.Frozen{
			Rows:    sheet.Props.FrozenRowCount,
			Columns: sheet.Props.FrozenColumnCount,
		}
	}
	return result
}

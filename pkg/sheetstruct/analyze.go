package sheetstruct

import (
	"log/slog"

	"github.com/ukaji3/sheetstruct-go/pkg/sheetstruct/models"
)

// Analyze runs the full structural analysis over an already-fetched
// spreadsheet snapshot: headers, column type profiles, formula ranges.
func Analyze(sp *models.Spreadsheet, opts Options) *models.SpreadsheetAnalysis {
	doc := &models.SpreadsheetAnalysis{
		SpreadsheetID:  sp.ID,
		SpreadsheetURL: sp.URL,
		Title:          sp.Title,
		Locale:         sp.Locale,
		TimeZone:       sp.TimeZone,
		SheetCount:     len(sp.Sheets),
	}

	totalRows := 0
	nonEmpty := 0
	names := make([]string, 0, len(sp.Sheets))
	for i := range sp.Sheets {
		sheet := &sp.Sheets[i]
		names = append(names, sheet.Name)
		slog.Info("analyzing sheet", "sheet", sheet.Name)

		sa := AnalyzeSheet(sheet, opts)
		if !sa.IsEmpty && sa.Error == "" {
			nonEmpty++
		}
		if sa.Dimensions != nil {
			totalRows += sa.Dimensions.RowCount
		}
		doc.Sheets = append(doc.Sheets, sa)
	}

	doc.Summary = models.AnalysisSummary{
		TotalSheets:    len(sp.Sheets),
		NonEmptySheets: nonEmpty,
		TotalRows:      totalRows,
		SheetNames:     names,
	}
	return doc
}

// AnalyzeSheet analyzes a single sheet snapshot. A sheet that failed to
// fetch reports its error instead of an analysis.
func AnalyzeSheet(sheet *models.Sheet, opts Options) models.SheetAnalysis {
	if sheet.Error != "" {
		return models.SheetAnalysis{
			SheetName: sheet.Name,
			SheetID:   sheet.ID,
			Error:     sheet.Error,
		}
	}
	if len(sheet.Rows) == 0 {
		return models.SheetAnalysis{
			SheetName:  sheet.Name,
			SheetID:    sheet.ID,
			IsEmpty:    true,
			Dimensions: &models.GridDimensions{},
		}
	}

	rows := sheet.Rows
	if opts.MaxRows > 0 && len(rows) > opts.MaxRows {
		slog.Warn("sheet truncated", "sheet", sheet.Name, "rows", len(rows), "max_rows", opts.MaxRows)
		rows = rows[:opts.MaxRows]
	}

	columnCount := 0
	for _, row := range rows {
		if len(row.Values) > columnCount {
			columnCount = len(row.Values)
		}
	}

	var columnHeaders []string
	for _, cell := range rows[0].Values {
		columnHeaders = append(columnHeaders, headerValue(cell))
	}

	var rowHeaders []string
	for _, row := range rows {
		if len(rowHeaders) == RowHeaderLimit {
			break
		}
		if len(row.Values) > 0 {
			rowHeaders = append(rowHeaders, headerValue(row.Values[0]))
		} else {
			rowHeaders = append(rowHeaders, "")
		}
	}

	props := sheet.Props
	return models.SheetAnalysis{
		SheetName: sheet.Name,
		SheetID:   sheet.ID,
		IsEmpty:   false,
		Dimensions: &models.GridDimensions{
			RowCount:    len(rows),
			ColumnCount: columnCount,
		},
		ColumnHeaders:  columnHeaders,
		RowHeaders:     rowHeaders,
		Columns:        AnalyzeColumns(rows, opts.DataStartRow),
		GridProperties: &props,
	}
}

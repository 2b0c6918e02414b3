package sheetstruct

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ukaji3/sheetstruct-go/pkg/sheetstruct/models"
)

// ExtractData dumps the spreadsheet as header-keyed row records, one table
// per sheet.
func ExtractData(sp *models.Spreadsheet, opts Options) *models.SpreadsheetData {
	doc := &models.SpreadsheetData{
		SpreadsheetID:  sp.ID,
		SpreadsheetURL: sp.URL,
		Title:          sp.Title,
		Locale:         sp.Locale,
		TimeZone:       sp.TimeZone,
		SheetCount:     len(sp.Sheets),
	}

	totalRows := 0
	names := make([]string, 0, len(sp.Sheets))
	for i := range sp.Sheets {
		sheet := &sp.Sheets[i]
		names = append(names, sheet.Name)
		slog.Info("extracting data", "sheet", sheet.Name)

		table := SheetTableOf(sheet, opts)
		if table.Dimensions != nil {
			totalRows += table.Dimensions.Rows
		}
		doc.Sheets = append(doc.Sheets, table)
	}

	doc.Summary = models.DataSummary{
		TotalSheets:   len(sp.Sheets),
		SheetNames:    names,
		TotalDataRows: totalRows,
	}
	return doc
}

// SheetTableOf converts one sheet into a tabular record: the first row
// becomes the (deduplicated) header list, every following row a map keyed
// by header. Blank cells become nulls. A sheet that failed to fetch
// reports its error instead of a table.
func SheetTableOf(sheet *models.Sheet, opts Options) models.SheetTable {
	if sheet.Error != "" {
		return models.SheetTable{
			SheetName: sheet.Name,
			Error:     sheet.Error,
		}
	}
	if len(sheet.Rows) == 0 {
		return models.SheetTable{
			SheetName: sheet.Name,
			IsEmpty:   true,
		}
	}

	rows := sheet.Rows
	if opts.MaxRows > 0 && len(rows) > opts.MaxRows {
		slog.Warn("sheet truncated", "sheet", sheet.Name, "rows", len(rows), "max_rows", opts.MaxRows)
		rows = rows[:opts.MaxRows]
	}

	var rawHeaders []string
	for _, cell := range rows[0].Values {
		rawHeaders = append(rawHeaders, headerValue(cell))
	}
	headers := NormalizeHeaders(rawHeaders)

	var data []map[string]any
	for _, row := range rows[1:] {
		record := make(map[string]any, len(headers))
		for i, header := range headers {
			var value any
			if i < len(row.Values) {
				value = cellValue(row.Values[i])
			}
			if value == "" {
				value = nil
			}
			record[header] = value
		}
		data = append(data, record)
	}

	return models.SheetTable{
		SheetName: sheet.Name,
		IsEmpty:   false,
		Dimensions: &models.Dimensions{
			Rows:    len(data),
			Columns: len(headers),
		},
		Headers: headers,
		Data:    data,
	}
}

// NormalizeHeaders trims header names, replaces blanks with ColumnN, and
// suffixes repeats with _1, _2 and so on.
func NormalizeHeaders(headers []string) []string {
	normalized := make([]string, 0, len(headers))
	seen := make(map[string]int)
	for i, header := range headers {
		header = strings.TrimSpace(header)
		if header == "" {
			header = fmt.Sprintf("Column%d", i+1)
		}
		if n, dup := seen[header]; dup {
			seen[header] = n + 1
			header = fmt.Sprintf("%s_%d", header, n+1)
		} else {
			seen[header] = 0
		}
		normalized = append(normalized, header)
	}
	return normalized
}

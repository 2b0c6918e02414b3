package gsheet

import (
	"google.golang.org/api/sheets/v4"

	"github.com/ukaji3/sheetstruct-go/pkg/sheetstruct/models"
)

// convertGrid maps API grid data to the snapshot row model. Only the first
// grid chunk is read; full-sheet fetches return exactly one.
func convertGrid(data []*sheets.GridData) []models.RowData {
	if len(data) == 0 {
		return nil
	}

	var rows []models.RowData
	for _, rd := range data[0].RowData {
		row := models.RowData{}
		if rd != nil {
			for _, cd := range rd.Values {
				row.Values = append(row.Values, convertCell(cd))
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// convertCell maps one API cell to the snapshot cell model.
func convertCell(cd *sheets.CellData) models.Cell {
	if cd == nil {
		return models.Cell{}
	}

	cell := models.Cell{Formatted: cd.FormattedValue}

	if cd.UserEnteredValue != nil && cd.UserEnteredValue.FormulaValue != nil {
		cell.Formula = *cd.UserEnteredValue.FormulaValue
	}

	if ev := cd.EffectiveValue; ev != nil {
		cell.Effective = &models.ExtendedValue{
			String: ev.StringValue,
			Number: ev.NumberValue,
			Bool:   ev.BoolValue,
		}
	}

	if dv := cd.DataValidation; dv != nil && dv.Condition != nil {
		validation := &models.DataValidation{ConditionType: dv.Condition.Type}
		for _, v := range dv.Condition.Values {
			if v != nil {
				validation.Values = append(validation.Values, v.UserEnteredValue)
			}
		}
		cell.Validation = validation
	}

	if cd.EffectiveFormat != nil && cd.EffectiveFormat.NumberFormat != nil {
		cell.NumberFormatType = cd.EffectiveFormat.NumberFormat.Type
	}

	return cell
}

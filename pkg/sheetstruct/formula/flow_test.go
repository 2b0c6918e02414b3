package formula

import (
	"testing"
)

func TestFlowGapBetweenRanges(t *testing.T) {
	// Formulas in rows 1-5 and 7-8 (1-based), one blank row between.
	rows := formulaColumn("=B1", "=B2", "=B3", "=B4", "=B5", "", "=B7", "=B8")
	ranges := AnalyzeColumn(rows, 0, 0)

	flow := Flow(ranges, rows, 0)
	if len(flow) != 2 {
		t.Fatalf("got %d entries, expected 2", len(flow))
	}

	first := flow[0]
	if first.StartRow != 1 || first.EndRow != 5 {
		t.Errorf("first rows %d..%d, expected 1..5", first.StartRow, first.EndRow)
	}
	if first.RowCount != 5 {
		t.Errorf("RowCount = %d, expected 5", first.RowCount)
	}
	if !first.BreakAfter {
		t.Error("first entry not marked BreakAfter")
	}
	if first.ContinuesAtRow != 7 {
		t.Errorf("ContinuesAtRow = %d, expected 7", first.ContinuesAtRow)
	}
	if first.BreakSize == nil || *first.BreakSize != 1 {
		t.Errorf("BreakSize = %v, expected 1", first.BreakSize)
	}

	last := flow[1]
	if last.StartRow != 7 || last.EndRow != 8 {
		t.Errorf("second rows %d..%d, expected 7..8", last.StartRow, last.EndRow)
	}
	if last.BreakAfter || last.ContinuesAtRow != 0 || last.BreakSize != nil {
		t.Errorf("last entry annotated unexpectedly: %+v", last)
	}
}

func TestFlowAdjacentSignatureChange(t *testing.T) {
	// No blank row between the two ranges: the break size is zero.
	rows := formulaColumn("=B1*2", "=B2*2", "=SUM($C$1:C3)")
	ranges := AnalyzeColumn(rows, 0, 0)

	flow := Flow(ranges, rows, 0)
	if len(flow) != 2 {
		t.Fatalf("got %d entries, expected 2", len(flow))
	}
	first := flow[0]
	if !first.BreakAfter || first.ContinuesAtRow != 3 {
		t.Fatalf("first entry = %+v, expected continuation at row 3", first)
	}
	if first.BreakSize == nil || *first.BreakSize != 0 {
		t.Errorf("BreakSize = %v, expected 0", first.BreakSize)
	}
}

func TestFlowResumptionBeyondWindow(t *testing.T) {
	// Ten blank rows between ranges: past the look-ahead window, so the
	// first entry gets no continuation.
	formulas := []string{"=B1"}
	for i := 0; i < LookAheadWindow+1; i++ {
		formulas = append(formulas, "")
	}
	formulas = append(formulas, "=B12")
	rows := formulaColumn(formulas...)
	ranges := AnalyzeColumn(rows, 0, 0)

	flow := Flow(ranges, rows, 0)
	if len(flow) != 2 {
		t.Fatalf("got %d entries, expected 2", len(flow))
	}
	if flow[0].BreakAfter || flow[0].BreakSize != nil {
		t.Errorf("first entry = %+v, expected no break annotation", flow[0])
	}
}

func TestFlowResumptionAtWindowEdge(t *testing.T) {
	// The last row inside the window still counts.
	formulas := []string{"=B1"}
	for i := 0; i < LookAheadWindow-1; i++ {
		formulas = append(formulas, "")
	}
	formulas = append(formulas, "=B11")
	rows := formulaColumn(formulas...)
	ranges := AnalyzeColumn(rows, 0, 0)

	flow := Flow(ranges, rows, 0)
	if len(flow) != 2 {
		t.Fatalf("got %d entries, expected 2", len(flow))
	}
	if !flow[0].BreakAfter {
		t.Fatal("first entry not marked BreakAfter")
	}
	if flow[0].ContinuesAtRow != LookAheadWindow+1 {
		t.Errorf("ContinuesAtRow = %d, expected %d", flow[0].ContinuesAtRow, LookAheadWindow+1)
	}
	if flow[0].BreakSize == nil || *flow[0].BreakSize != LookAheadWindow-1 {
		t.Errorf("BreakSize = %v, expected %d", flow[0].BreakSize, LookAheadWindow-1)
	}
}

func TestFlowExamplesCapped(t *testing.T) {
	rows := formulaColumn("=B1", "=B2", "=B3", "=B4", "=B5")
	flow := Flow(AnalyzeColumn(rows, 0, 0), rows, 0)
	if len(flow) != 1 {
		t.Fatalf("got %d entries, expected 1", len(flow))
	}
	if len(flow[0].Examples) != maxExampleFormulas {
		t.Errorf("kept %d examples, expected %d", len(flow[0].Examples), maxExampleFormulas)
	}
	if flow[0].Examples[0] != "=B1" {
		t.Errorf("Examples[0] = %q, expected =B1", flow[0].Examples[0])
	}
}

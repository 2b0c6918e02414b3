package models

// FormulaRange is a maximal run of contiguous rows in one column whose
// formulas normalize to the same reference-shape signature. Row indexes
// are 0-based.
type FormulaRange struct {
	// StartRow is the first row of the run (0-based).
	StartRow int `json:"start_row"`
	// EndRow is the last row of the run (0-based, inclusive).
	EndRow int `json:"end_row"`
	// Pattern is the normalized reference-shape signature.
	Pattern string `json:"pattern"`
	// FirstFormula is the raw formula at StartRow.
	FirstFormula string `json:"first_formula"`
	// FormulaCount is the number of formulas in the run.
	FormulaCount int `json:"formula_count"`
	// Formulas holds up to three example formulas from the run.
	Formulas []string `json:"formulas"`
}

// FormulaFlowEntry is a FormulaRange projected to 1-based row numbers,
// optionally annotated with where a broken run resumes.
type FormulaFlowEntry struct {
	// StartRow is the first row of the run (1-based).
	StartRow int `json:"start_row"`
	// EndRow is the last row of the run (1-based, inclusive).
	EndRow int `json:"end_row"`
	// RowCount is the number of formulas in the run.
	RowCount int `json:"row_count"`
	// Pattern is the normalized reference-shape signature.
	Pattern string `json:"pattern"`
	// FirstFormula is the raw formula at StartRow.
	FirstFormula string `json:"first_formula"`
	// Examples holds up to three example formulas from the run.
	Examples []string `json:"examples"`
	// BreakAfter reports that another formula-bearing row was found within
	// the look-ahead window after this run ended.
	BreakAfter bool `json:"break_after,omitempty"`
	// ContinuesAtRow is the 1-based row where formulas resume.
	ContinuesAtRow int `json:"continues_at_row,omitempty"`
	// BreakSize is the number of formula-less rows between the run's end
	// and the resumption. Nil when no resumption was found.
	BreakSize *int `json:"break_size,omitempty"`
}

package pattern

import (
	"fmt"
	"testing"

	"github.com/ukaji3/sheetstruct-go/pkg/sheetstruct/models"
)

func TestDetectTrivialShapes(t *testing.T) {
	tests := []struct {
		name     string
		values   []string
		expected models.Pattern
	}{
		{
			name:     "empty sequence",
			values:   nil,
			expected: models.Pattern{Type: models.PatternEmpty},
		},
		{
			name:     "all blank",
			values:   []string{"", "", ""},
			expected: models.Pattern{Type: models.PatternAllEmpty, Count: 3},
		},
		{
			name:     "single value",
			values:   []string{"X"},
			expected: models.Pattern{Type: models.PatternSingle, Value: "X"},
		},
		{
			name:     "single value among blanks",
			values:   []string{"", "X", ""},
			expected: models.Pattern{Type: models.PatternSingle, Value: "X"},
		},
		{
			name:     "uniform",
			values:   []string{"A", "A", "A"},
			expected: models.Pattern{Type: models.PatternUniform, Value: "A", Count: 3},
		},
		{
			// count covers all elements, blanks included
			name:     "uniform with blanks",
			values:   []string{"A", "", "A", "A"},
			expected: models.Pattern{Type: models.PatternUniform, Value: "A", Count: 4},
		},
		{
			// identical numbers resolve as uniform before the block search
			name:     "uniform numbers",
			values:   []string{"5", "5", "5"},
			expected: models.Pattern{Type: models.PatternUniform, Value: "5", Count: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.values)
			if got.Type != tt.expected.Type {
				t.Fatalf("Detect(%v).Type = %q, expected %q", tt.values, got.Type, tt.expected.Type)
			}
			if got.Value != tt.expected.Value {
				t.Errorf("Value = %q, expected %q", got.Value, tt.expected.Value)
			}
			if got.Count != tt.expected.Count {
				t.Errorf("Count = %d, expected %d", got.Count, tt.expected.Count)
			}
		})
	}
}

func TestDetectRepeating(t *testing.T) {
	got := Detect([]string{"Q1", "Rev", "Q1", "Rev", "Q1", "Rev"})

	if got.Type != models.PatternRepeating {
		t.Fatalf("Type = %q, expected repeating", got.Type)
	}
	if got.BlockSize != 2 {
		t.Errorf("BlockSize = %d, expected 2", got.BlockSize)
	}
	if !equalSlices(got.Template, []string{"Q1", "Rev"}) {
		t.Errorf("Template = %v, expected [Q1 Rev]", got.Template)
	}
	if got.RepeatCount != 3 {
		t.Errorf("RepeatCount = %d, expected 3", got.RepeatCount)
	}
	if got.TotalItems != 6 {
		t.Errorf("TotalItems = %d, expected 6", got.TotalItems)
	}
	if len(got.Breaks) != 0 {
		t.Errorf("Breaks = %v, expected none", got.Breaks)
	}
	if !equalSlices(got.SampleFirstBlock, []string{"Q1", "Rev"}) {
		t.Errorf("SampleFirstBlock = %v, expected [Q1 Rev]", got.SampleFirstBlock)
	}
}

func TestDetectRepeatingBreak(t *testing.T) {
	got := Detect([]string{"Q1", "Rev", "Q1", "Rev", "Q1", "Cost"})

	if got.Type != models.PatternRepeating {
		t.Fatalf("Type = %q, expected repeating", got.Type)
	}
	if got.BlockSize != 2 {
		t.Errorf("BlockSize = %d, expected 2", got.BlockSize)
	}
	if len(got.Breaks) != 1 {
		t.Fatalf("got %d breaks, expected 1", len(got.Breaks))
	}

	brk := got.Breaks[0]
	if brk.BlockIndex != 2 {
		t.Errorf("BlockIndex = %d, expected 2", brk.BlockIndex)
	}
	if brk.Position != 4 {
		t.Errorf("Position = %d, expected 4", brk.Position)
	}
	if !equalSlices(brk.ExpectedTemplate, []string{"Q1", "Rev"}) {
		t.Errorf("ExpectedTemplate = %v, expected [Q1 Rev]", brk.ExpectedTemplate)
	}
	if !equalSlices(brk.ActualValues, []string{"Q1", "Cost"}) {
		t.Errorf("ActualValues = %v, expected [Q1 Cost]", brk.ActualValues)
	}
}

func TestDetectRepeatingGeneralizesNumbersAndDates(t *testing.T) {
	tests := []struct {
		name     string
		values   []string
		template []string
		repeats  int
	}{
		{
			name:     "label number pairs",
			values:   []string{"Item", "1", "Item", "2", "Item", "3"},
			template: []string{"Item", "<number>"},
			repeats:  3,
		},
		{
			name:     "label date pairs",
			values:   []string{"Start", "2024-01-01", "Start", "2024-02-02"},
			template: []string{"Start", "<date>"},
			repeats:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.values)
			if got.Type != models.PatternRepeating {
				t.Fatalf("Type = %q, expected repeating", got.Type)
			}
			if !equalSlices(got.Template, tt.template) {
				t.Errorf("Template = %v, expected %v", got.Template, tt.template)
			}
			if got.RepeatCount != tt.repeats {
				t.Errorf("RepeatCount = %d, expected %d", got.RepeatCount, tt.repeats)
			}
		})
	}
}

func TestDetectRepeatingSkipsBlanks(t *testing.T) {
	got := Detect([]string{"Q1", "", "Rev", "Q1", "Rev", ""})

	if got.Type != models.PatternRepeating {
		t.Fatalf("Type = %q, expected repeating", got.Type)
	}
	if got.BlockSize != 2 {
		t.Errorf("BlockSize = %d, expected 2", got.BlockSize)
	}
	if got.TotalItems != 4 {
		t.Errorf("TotalItems = %d, expected 4", got.TotalItems)
	}
}

func TestDetectDateSequence(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		first  string
		last   string
	}{
		{
			name:   "iso dates",
			values: []string{"2024-01-01", "2024-01-02", "2024-01-03"},
			first:  "2024-01-01",
			last:   "2024-01-03",
		},
		{
			name:   "slash dates",
			values: []string{"26/09/2025", "27/09/2025", "28/09/2025", "29/09/2025"},
			first:  "26/09/2025",
			last:   "29/09/2025",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.values)
			if got.Type != models.PatternDateSequence {
				t.Fatalf("Type = %q, expected date_sequence", got.Type)
			}
			if got.Count != len(tt.values) {
				t.Errorf("Count = %d, expected %d", got.Count, len(tt.values))
			}
			if got.First != tt.first || got.Last != tt.last {
				t.Errorf("First/Last = %q/%q, expected %q/%q", got.First, got.Last, tt.first, tt.last)
			}
		})
	}
}

func TestDetectVariedWithPrefix(t *testing.T) {
	values := []string{"Total A", "Total B", "Total C", "Alpha", "Beta", "Gamma", "Delta"}
	got := Detect(values)

	if got.Type != models.PatternVariedWithPrefix {
		t.Fatalf("Type = %q, expected varied_with_prefix", got.Type)
	}
	if got.CommonPrefix != "Total" {
		t.Errorf("CommonPrefix = %q, expected Total", got.CommonPrefix)
	}
	if got.PrefixCount != 3 {
		t.Errorf("PrefixCount = %d, expected 3", got.PrefixCount)
	}
	if got.Total != 7 {
		t.Errorf("Total = %d, expected 7", got.Total)
	}
	if len(got.Sample) != 5 {
		t.Errorf("len(Sample) = %d, expected 5", len(got.Sample))
	}
}

func TestDetectList(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		unique []string
		total  int
	}{
		{
			name:   "three distinct",
			values: []string{"Alpha", "Beta", "Gamma"},
			unique: []string{"Alpha", "Beta", "Gamma"},
			total:  3,
		},
		{
			name:   "duplicates collapse in order",
			values: []string{"A", "B", "A", "C"},
			unique: []string{"A", "B", "C"},
			total:  4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.values)
			if got.Type != models.PatternList {
				t.Fatalf("Type = %q, expected list", got.Type)
			}
			if !equalSlices(got.Values, tt.unique) {
				t.Errorf("Values = %v, expected %v", got.Values, tt.unique)
			}
			if got.Total != tt.total {
				t.Errorf("Total = %d, expected %d", got.Total, tt.total)
			}
		})
	}
}

func TestDetectVaried(t *testing.T) {
	var values []string
	for i := 0; i < 25; i++ {
		values = append(values, fmt.Sprintf("%c%c-val", 'a'+i, 'z'-i))
	}

	got := Detect(values)
	if got.Type != models.PatternVaried {
		t.Fatalf("Type = %q, expected varied", got.Type)
	}
	if got.UniqueCount != 25 {
		t.Errorf("UniqueCount = %d, expected 25", got.UniqueCount)
	}
	if got.Total != 25 {
		t.Errorf("Total = %d, expected 25", got.Total)
	}
	if len(got.Sample) != 10 {
		t.Errorf("len(Sample) = %d, expected 10", len(got.Sample))
	}
}

func TestDetectDeterministic(t *testing.T) {
	values := []string{"Q1", "Rev", "Q1", "Rev", "Q1", "Cost"}
	first := Detect(values)
	for i := 0; i < 5; i++ {
		again := Detect(values)
		if again.Type != first.Type || again.BlockSize != first.BlockSize ||
			len(again.Breaks) != len(first.Breaks) {
			t.Fatalf("run %d differed: %+v vs %+v", i, again, first)
		}
	}
}

func TestIsDateShaped(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"2024-01-01", true},
		{"26/09/2025", true},
		{"26-09-2025", true},
		{"1/1/2024", true},
		{"2024-1-1", false}, // iso form needs two-digit month and day
		{"2024/01/01", false},
		{"not a date", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := isDateShaped(tt.value); got != tt.expected {
			t.Errorf("isDateShaped(%q) = %v, expected %v", tt.value, got, tt.expected)
		}
	}
}

func TestIsNumberShaped(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"123", true},
		{"1.5", true},
		{"-42", true},
		{"1-2-3", true},
		{".", false},
		{"-", false},
		{"", false},
		{"12a", false},
	}

	for _, tt := range tests {
		if got := isNumberShaped(tt.value); got != tt.expected {
			t.Errorf("isNumberShaped(%q) = %v, expected %v", tt.value, got, tt.expected)
		}
	}
}

func TestPrefixOf(t *testing.T) {
	tests := []struct {
		value    string
		expected string
	}{
		{"Total Revenue", "Total"},
		{"Short", "Short"},
		{"Elongated", "Elong"},
		{"ab", "ab"},
		{"   ", "   "}, // whitespace-only falls back to the raw slice
	}

	for _, tt := range tests {
		if got := prefixOf(tt.value); got != tt.expected {
			t.Errorf("prefixOf(%q) = %q, expected %q", tt.value, got, tt.expected)
		}
	}
}

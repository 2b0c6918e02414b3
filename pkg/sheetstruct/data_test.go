package sheetstruct

import (
	"testing"

	"github.com/ukaji3/sheetstruct-go/pkg/sheetstruct/models"
)

func TestNormalizeHeaders(t *testing.T) {
	tests := []struct {
		name     string
		headers  []string
		expected []string
	}{
		{
			name:     "clean headers pass through",
			headers:  []string{"Name", "Age", "City"},
			expected: []string{"Name", "Age", "City"},
		},
		{
			name:     "blanks become positional names",
			headers:  []string{"Name", "", "Value"},
			expected: []string{"Name", "Column2", "Value"},
		},
		{
			name:     "duplicates get numeric suffixes",
			headers:  []string{"Name", "Name", "", "Value"},
			expected: []string{"Name", "Name_1", "Column3", "Value"},
		},
		{
			name:     "triple duplicate",
			headers:  []string{"X", "X", "X"},
			expected: []string{"X", "X_1", "X_2"},
		},
		{
			name:     "whitespace trimmed before dedup",
			headers:  []string{" Name ", "Name"},
			expected: []string{"Name", "Name_1"},
		},
		{
			name:     "empty input",
			headers:  nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeHeaders(tt.headers)
			if len(got) != len(tt.expected) {
				t.Fatalf("got %v, expected %v", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("header %d = %q, expected %q", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestSheetTableOf(t *testing.T) {
	sheet := testSheet("People", []models.RowData{
		{Values: []models.Cell{textCell("Name"), textCell("Age")}},
		{Values: []models.Cell{textCell("Alice"), numberCell(30)}},
		{Values: []models.Cell{textCell("Bob")}},
	})

	table := SheetTableOf(&sheet, DefaultOptions())
	if table.IsEmpty {
		t.Fatal("table reported empty")
	}
	if table.Dimensions.Rows != 2 || table.Dimensions.Columns != 2 {
		t.Errorf("Dimensions = %+v, expected 2x2", table.Dimensions)
	}
	if len(table.Headers) != 2 || table.Headers[0] != "Name" {
		t.Errorf("Headers = %v, expected [Name Age]", table.Headers)
	}
	if len(table.Data) != 2 {
		t.Fatalf("got %d data rows, expected 2", len(table.Data))
	}
	if table.Data[0]["Name"] != "Alice" {
		t.Errorf("Data[0][Name] = %v, expected Alice", table.Data[0]["Name"])
	}
	if table.Data[0]["Age"] != "30" {
		t.Errorf("Data[0][Age] = %v, expected formatted 30", table.Data[0]["Age"])
	}
	// Bob's row has no age cell: the key is present with a null value.
	if v, ok := table.Data[1]["Age"]; !ok || v != nil {
		t.Errorf("Data[1][Age] = %v (present %v), expected nil", v, ok)
	}
}

func TestSheetTableOfBlankCellsAreNull(t *testing.T) {
	sheet := testSheet("S", []models.RowData{
		{Values: []models.Cell{textCell("A"), textCell("B")}},
		{Values: []models.Cell{textCell(""), textCell("x")}},
	})

	table := SheetTableOf(&sheet, DefaultOptions())
	if v := table.Data[0]["A"]; v != nil {
		t.Errorf("blank cell = %v, expected nil", v)
	}
	if v := table.Data[0]["B"]; v != "x" {
		t.Errorf("cell B = %v, expected x", v)
	}
}

func TestSheetTableOfEmpty(t *testing.T) {
	sheet := testSheet("Blank", nil)
	table := SheetTableOf(&sheet, DefaultOptions())
	if !table.IsEmpty {
		t.Fatal("table not reported empty")
	}
}

func TestSheetTableOfFetchError(t *testing.T) {
	sheet := models.Sheet{Name: "Broken", Error: "sheet fetch failed"}

	table := SheetTableOf(&sheet, DefaultOptions())
	if table.Error != "sheet fetch failed" {
		t.Errorf("Error = %q, expected the fetch error", table.Error)
	}
	if table.IsEmpty {
		t.Error("failed sheet reported as empty")
	}
	if table.Headers != nil || table.Data != nil {
		t.Errorf("failed sheet carries data: %+v", table)
	}
}

func TestSheetTableOfTruncation(t *testing.T) {
	rows := []models.RowData{{Values: []models.Cell{textCell("H")}}}
	for i := 0; i < 10; i++ {
		rows = append(rows, models.RowData{Values: []models.Cell{textCell("v")}})
	}
	sheet := testSheet("Big", rows)

	table := SheetTableOf(&sheet, Options{MaxRows: 4, DataStartRow: 1})
	if table.Dimensions.Rows != 3 {
		t.Errorf("Rows = %d, expected 3 data rows under a 4 row cap", table.Dimensions.Rows)
	}
}

func TestExtractData(t *testing.T) {
	sp := &models.Spreadsheet{
		ID:    "id1",
		Title: "Doc",
		Sheets: []models.Sheet{
			testSheet("T", []models.RowData{
				{Values: []models.Cell{textCell("K")}},
				{Values: []models.Cell{textCell("v1")}},
				{Values: []models.Cell{textCell("v2")}},
			}),
		},
	}

	doc := ExtractData(sp, DefaultOptions())
	if doc.Summary.TotalDataRows != 2 {
		t.Errorf("TotalDataRows = %d, expected 2", doc.Summary.TotalDataRows)
	}
	if len(doc.Summary.SheetNames) != 1 || doc.Summary.SheetNames[0] != "T" {
		t.Errorf("SheetNames = %v, expected [T]", doc.Summary.SheetNames)
	}
}

package sheetstruct

// Options configures analysis behavior.
type Options struct {
	// MaxRows caps how many rows per sheet are fetched and analyzed.
	// Oversized sheets are truncated, not rejected.
	MaxRows int
	// DataStartRow is the first row of the column type scan (0-based), so
	// header rows stay out of the type profile.
	DataStartRow int
}

// Default analysis limits.
const (
	// DefaultMaxRows is the per-sheet row cap.
	DefaultMaxRows = 5000
	// RowHeaderLimit is how many leading rows contribute a row header.
	RowHeaderLimit = 10
	// StructureScanRows is how many leading rows the structure extraction
	// inspects for row-header patterns.
	StructureScanRows = 20
)

// DefaultOptions returns default analysis options.
func DefaultOptions() Options {
	return Options{
		MaxRows:      DefaultMaxRows,
		DataStartRow: 1,
	}
}

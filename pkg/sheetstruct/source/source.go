// Package source provides grid snapshot sources. A source fetches a
// spreadsheet into the in-memory grid model the analysis packages consume.
package source

import (
	"context"

	"github.com/ukaji3/sheetstruct-go/pkg/sheetstruct/models"
)

// Options configures snapshot fetching.
type Options struct {
	// MaxRows caps how many rows per sheet are fetched. Zero means no cap.
	MaxRows int
}

// Source fetches a spreadsheet snapshot by reference. The reference format
// is source-specific: a file path, a spreadsheet id, or a URL.
type Source interface {
	Open(ctx context.Context, ref string, opts Options) (*models.Spreadsheet, error)
}

package gsheet

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/ukaji3/sheetstruct-go/pkg/sheetstruct"
	"github.com/ukaji3/sheetstruct-go/pkg/sheetstruct/models"
	"github.com/ukaji3/sheetstruct-go/pkg/sheetstruct/source"
)

// Client fetches grid snapshots through the Google Sheets v4 API.
type Client struct {
	svc *sheets.Service
}

// NewClient authenticates and returns a Sheets API client.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	httpClient, err := newHTTPClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	svc, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("creating sheets service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// Open fetches the full grid snapshot for a spreadsheet URL or id. Sheets
// larger than opts.MaxRows are truncated to the cap. A sheet whose grid
// fetch fails is kept in the snapshot without rows, carrying the failure
// in its Error field.
func (c *Client) Open(ctx context.Context, ref string, opts source.Options) (*models.Spreadsheet, error) {
	id := ExtractSpreadsheetID(ref)

	meta, err := c.svc.Spreadsheets.Get(id).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("fetching spreadsheet %s: %w", id, err)
	}

	sp := &models.Spreadsheet{
		ID:  id,
		URL: SpreadsheetURL(id),
	}
	if meta.Properties != nil {
		sp.Title = meta.Properties.Title
		sp.Locale = meta.Properties.Locale
		sp.TimeZone = meta.Properties.TimeZone
	}

	for _, s := range meta.Sheets {
		if s.Properties == nil {
			continue
		}
		slog.Info("fetching sheet", "sheet", s.Properties.Title)

		sheet, err := c.fetchSheet(ctx, id, s.Properties, opts)
		if err != nil {
			serr := sheetstruct.NewSheetError(s.Properties.Title, "fetch", err)
			slog.Warn("sheet fetch failed", "sheet", s.Properties.Title, "error", serr)
			sheet = models.Sheet{
				Name:  s.Properties.Title,
				ID:    s.Properties.SheetId,
				Error: serr.Error(),
			}
		}
		sp.Sheets = append(sp.Sheets, sheet)
	}

	return sp, nil
}

func (c *Client) fetchSheet(ctx context.Context, id string, props *sheets.SheetProperties, opts source.Options) (models.Sheet, error) {
	sheet := models.Sheet{
		Name: props.Title,
		ID:   props.SheetId,
	}
	if props.GridProperties != nil {
		sheet.Props = models.GridProperties{
			RowCount:          int(props.GridProperties.RowCount),
			ColumnCount:       int(props.GridProperties.ColumnCount),
			FrozenRowCount:    int(props.GridProperties.FrozenRowCount),
			FrozenColumnCount: int(props.GridProperties.FrozenColumnCount),
		}
	}

	rangeRef := quoteSheetName(props.Title)
	if opts.MaxRows > 0 && sheet.Props.RowCount > opts.MaxRows {
		slog.Warn("sheet truncated", "sheet", props.Title, "rows", sheet.Props.RowCount, "max_rows", opts.MaxRows)
		rangeRef = fmt.Sprintf("%s!A1:ZZZ%d", rangeRef, opts.MaxRows)
		sheet.Truncated = true
	}

	res, err := c.svc.Spreadsheets.Get(id).
		Ranges(rangeRef).
		IncludeGridData(true).
		Context(ctx).
		Do()
	if err != nil {
		return models.Sheet{}, err
	}
	if len(res.Sheets) == 0 {
		return sheet, nil
	}

	sheet.Rows = convertGrid(res.Sheets[0].Data)
	return sheet, nil
}

// quoteSheetName wraps a sheet name in single quotes for A1 notation.
func quoteSheetName(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

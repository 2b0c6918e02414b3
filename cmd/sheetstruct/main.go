// Package main provides the CLI entry point for sheetstruct-go.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ukaji3/sheetstruct-go/pkg/sheetstruct"
	"github.com/ukaji3/sheetstruct-go/pkg/sheetstruct/gsheet"
	"github.com/ukaji3/sheetstruct-go/pkg/sheetstruct/models"
	"github.com/ukaji3/sheetstruct-go/pkg/sheetstruct/output"
	"github.com/ukaji3/sheetstruct-go/pkg/sheetstruct/source"
)

var (
	outputPath      string
	pretty          bool
	maxRows         int
	credentialsPath string
	tokenPath       string
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	rootCmd := &cobra.Command{
		Use:   "sheetstruct",
		Short: "Analyze spreadsheet structure and dump JSON",
		Long: `sheetstruct analyzes Google Sheets or local .xlsx files and dumps
structural summaries (header patterns, column type profiles, formula
ranges) or tabular data as JSON.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().IntVar(&maxRows, "max-rows", sheetstruct.DefaultMaxRows, "Maximum rows fetched per sheet")
	rootCmd.PersistentFlags().StringVar(&credentialsPath, "credentials", "", "OAuth credentials file (default: $SHEETSTRUCT_CREDENTIALS or credentials.json)")
	rootCmd.PersistentFlags().StringVar(&tokenPath, "token", "", "OAuth token cache file (default: $SHEETSTRUCT_TOKEN or token.json)")

	rootCmd.AddCommand(newAnalyzeCommand())
	rootCmd.AddCommand(newStructureCommand())
	rootCmd.AddCommand(newDataCommand())
	rootCmd.AddCommand(newSummarizeCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newAnalyzeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [url|id|file.xlsx]",
		Short: "Full structural analysis: headers, column types, formula ranges",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sp, err := openSnapshot(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			doc := sheetstruct.Analyze(sp, analysisOptions())
			return writeResult(doc)
		},
	}
}

func newStructureCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "structure [url|id|file.xlsx]",
		Short: "Pattern-aware header structure, no data values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sp, err := openSnapshot(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			doc := sheetstruct.ExtractStructure(sp)
			return writeResult(doc)
		},
	}
}

func newDataCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "data [url|id|file.xlsx]",
		Short: "Dump sheet data as header-keyed records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sp, err := openSnapshot(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			doc := sheetstruct.ExtractData(sp, analysisOptions())
			return writeResult(doc)
		},
	}
}

func newSummarizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summarize [document.json]",
		Short: "Print a human-readable report of a previously written document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return summarizeFile(args[0])
		},
	}
}

// openSnapshot selects a source for the reference: an existing .xlsx path
// opens locally, anything else goes through the Sheets API.
func openSnapshot(ctx context.Context, ref string) (*models.Spreadsheet, error) {
	opts := source.Options{MaxRows: maxRows}

	if strings.HasSuffix(strings.ToLower(ref), ".xlsx") {
		if _, err := os.Stat(ref); err == nil {
			return source.NewXLSX().Open(ctx, ref, opts)
		}
	}

	cfg := gsheet.LoadConfig()
	if credentialsPath != "" {
		cfg.CredentialsPath = credentialsPath
	}
	if tokenPath != "" {
		cfg.TokenPath = tokenPath
	}

	client, err := gsheet.NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return client.Open(ctx, ref, opts)
}

func analysisOptions() sheetstruct.Options {
	opts := sheetstruct.DefaultOptions()
	opts.MaxRows = maxRows
	return opts
}

func writeResult(v any) error {
	if outputPath != "" {
		if err := output.WriteFile(outputPath, v, pretty); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	data, err := output.ToJSON(v, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// summarizeFile sniffs the document kind by its envelope and renders the
// matching report.
func summarizeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("invalid document: %w", err)
	}

	if _, ok := probe["analysis_summary"]; ok {
		var doc models.SpreadsheetAnalysis
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("invalid analysis document: %w", err)
		}
		output.SummarizeAnalysis(os.Stdout, &doc)
		return nil
	}

	var doc models.SpreadsheetStructure
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid structure document: %w", err)
	}
	output.SummarizeStructure(os.Stdout, &doc)
	return nil
}

// Package main provides the CLI entry point for xlinspect.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/xlinspect-go/internal/xlinspect"
	"github.com/ukaji3/xlinspect-go/internal/xlinspect/parser"
)

var (
	engine         string
	format         string
	pretty         bool
	maxColumns     int
	sampleRows     int
	previewColumns int
	logLevel       string
)

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	defaults := xlinspect.DefaultOptions()

	rootCmd := &cobra.Command{
		Use:   "xlinspect [input.xlsx]",
		Short: "Print the structure of an Excel workbook",
		Long: `xlinspect opens an Excel workbook and prints its sheet names, dimensions,
header row values, and the first few data rows of every sheet.

Without an argument the built-in default workbook path is inspected.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(stdout, stderr, args)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.Flags().StringVar(&engine, "engine", string(defaults.Engine), "Workbook reader: excelize or stream")
	rootCmd.Flags().StringVar(&format, "format", string(defaults.Format), "Output format: text, json, or toon")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().IntVar(&maxColumns, "max-columns", defaults.MaxColumns, "Columns read from the header row and each sampled row")
	rootCmd.Flags().IntVar(&sampleRows, "sample-rows", defaults.SampleRows, "Data rows sampled after the header row")
	rootCmd.Flags().IntVar(&previewColumns, "preview-columns", defaults.PreviewColumns, "Values printed per sampled row")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, or error")

	return rootCmd
}

func run(stdout, stderr io.Writer, args []string) error {
	level, err := parseLogLevel(logLevel)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	inputPath := xlinspect.DefaultPath
	if len(args) == 1 {
		inputPath = args[0]
	}

	opts := xlinspect.Options{
		Engine:         parser.Engine(engine),
		Format:         xlinspect.Format(format),
		Pretty:         pretty,
		MaxColumns:     maxColumns,
		SampleRows:     sampleRows,
		PreviewColumns: previewColumns,
	}

	return xlinspect.Run(stdout, stderr, inputPath, opts)
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", s)
	}
}

// Package main provides the CLI entry point for the activity log converter.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"actlog/pkg/actlog"
	"actlog/pkg/actlog/config"
	"actlog/pkg/actlog/mapper"
	"actlog/pkg/actlog/reader"
	"actlog/pkg/actlog/writer"
)

// Exit codes, one per failure kind.
const (
	exitFailure        = 1
	exitConnection     = 2
	exitSchemaMismatch = 3
	exitWrite          = 4
)

var (
	toktlogger string
	snapshot   string
	outputDir  string
	cruiseFile string
	cruise     string
	verbose    bool

	logger *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "actlog",
		Short: "Export Toktlogger activities to an activity log workbook",
		Long: `actlog pulls the sampling activities recorded by the onboard
Toktlogger and writes them into the fixed activity log template,
saving activity_log_<n>.xlsx with an auto-incremented version number.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	cfg := config.Load()
	rootCmd.Flags().StringVar(&toktlogger, "toktlogger", cfg.Toktlogger, "Host name or base URL of the Toktlogger API")
	rootCmd.Flags().StringVar(&snapshot, "snapshot", cfg.Snapshot, "Path to an offline SQLite export of the logger database")
	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", cfg.OutputDir, "Directory for the generated workbook")
	rootCmd.Flags().StringVar(&cruiseFile, "cruise-file", cfg.CruiseFile, "YAML file with expedition metadata")
	rootCmd.Flags().StringVar(&cruise, "cruise", cfg.Cruise, "Cruise number to export (default: current cruise)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

func run(cmd *cobra.Command, args []string) error {
	zapCfg := zap.NewProductionConfig()
	zapCfg.Encoding = "console"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	var err error
	logger, err = zapCfg.Build()
	if err != nil {
		return err
	}
	defer logger.Sync()

	var meta config.Cruise
	if cruiseFile != "" {
		meta, err = config.LoadCruise(cruiseFile)
		if err != nil {
			return err
		}
	}

	src, err := openReader()
	if err != nil {
		return err
	}
	defer src.Close()

	result, err := actlog.Run(cmd.Context(), actlog.Options{
		Reader:    src,
		OutputDir: outputDir,
		Cruise:    cruise,
		Metadata:  meta,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Generated file: %s (%d activities)\n", result.Path, result.Records)
	return nil
}

// openReader picks the source backend: a snapshot path when given,
// otherwise the live Toktlogger API.
func openReader() (reader.Reader, error) {
	if snapshot != "" {
		logger.Debug("opening snapshot database", zap.String("path", snapshot))
		return reader.OpenSnapshot(snapshot)
	}
	logger.Debug("using toktlogger API", zap.String("target", toktlogger))
	return reader.NewTokt(toktlogger), nil
}

func exitCode(err error) int {
	var (
		connErr   *reader.ConnectionError
		schemaErr *mapper.SchemaMismatchError
		writeErr  *writer.WriteError
	)
	switch {
	case errors.As(err, &connErr):
		return exitConnection
	case errors.As(err, &schemaErr):
		return exitSchemaMismatch
	case errors.As(err, &writeErr):
		return exitWrite
	default:
		return exitFailure
	}
}

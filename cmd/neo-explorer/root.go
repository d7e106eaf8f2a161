package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"neo-explorer/internal/config"
	"neo-explorer/internal/database"
	"neo-explorer/internal/extract"
)

// rootOptions holds the persistent flags shared by every subcommand.
// Flag values override the job file, which overrides the built-in defaults.
type rootOptions struct {
	neoPath    string
	cadPath    string
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "neo-explorer",
		Short:        "Explore near-Earth objects and their close approaches to Earth",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.neoPath, "neofile", "", "path of the NEO dataset (CSV)")
	cmd.PersistentFlags().StringVar(&opts.cadPath, "cadfile", "", "path of the close-approach dataset (JSON)")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path of an optional YAML job file")

	cmd.AddCommand(newInspectCmd(opts))
	cmd.AddCommand(newExportCmd(opts))

	return cmd
}

// resolveJob merges the optional job file with the command-line flags.
func (o *rootOptions) resolveJob() (*config.Job, error) {
	job := config.Default()
	if o.configPath != "" {
		loaded, err := config.LoadFile(o.configPath)
		if err != nil {
			return nil, err
		}
		job = loaded
	}

	if o.neoPath != "" {
		job.Datasets.NEOs = o.neoPath
	}
	if o.cadPath != "" {
		job.Datasets.Approaches = o.cadPath
	}

	return job, nil
}

// loadDatabase runs the whole ingestion pipeline: both datasets, then the
// link pass. Unlinked approaches are logged as warnings; everything else
// aborts the run.
func loadDatabase(opts *rootOptions, logger *zap.Logger) (*database.NEODatabase, *config.Job, error) {
	job, err := opts.resolveJob()
	if err != nil {
		return nil, nil, err
	}

	neos, err := extract.LoadNEOs(job.Datasets.NEOs)
	if err != nil {
		return nil, nil, fmt.Errorf("loading NEO dataset: %w", err)
	}

	approaches, err := extract.LoadApproaches(job.Datasets.Approaches)
	if err != nil {
		return nil, nil, fmt.Errorf("loading close-approach dataset: %w", err)
	}

	db, err := database.New(neos, approaches)
	if err != nil {
		return nil, nil, fmt.Errorf("linking datasets: %w", err)
	}

	logger.Info("datasets linked",
		zap.String("neofile", job.Datasets.NEOs),
		zap.String("cadfile", job.Datasets.Approaches),
		zap.Int("objects", len(db.NEOs())),
		zap.Int("approaches", len(db.Approaches())),
		zap.Int("unlinked", db.Unlinked()),
	)

	for _, finding := range db.Diagnostics().Findings {
		logger.Warn("data-quality finding",
			zap.String("code", finding.Code),
			zap.String("dataset", finding.Dataset),
			zap.Int("record", finding.Record),
			zap.String("detail", finding.Message),
		)
	}

	return db, job, nil
}

func newLogger() (*zap.Logger, error) {
	return zap.NewProduction()
}

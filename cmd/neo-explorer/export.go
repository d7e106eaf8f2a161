package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"neo-explorer/internal/export"
	"neo-explorer/internal/model"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the linked close approaches to a CSV or JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			db, job, err := loadDatabase(opts, logger)
			if err != nil {
				return err
			}

			if out == "" {
				out = job.Output.Path
			}
			if out == "" {
				return errors.New("no output path: pass --out or set output.path in the job file")
			}

			// Unlinked approaches have no owning object to serialize.
			linked := make([]*model.CloseApproach, 0, len(db.Approaches()))
			for _, ca := range db.Approaches() {
				if ca.Linked() {
					linked = append(linked, ca)
				}
			}

			if err := export.WriteFile(out, linked); err != nil {
				return err
			}

			logger.Info("approaches exported",
				zap.String("path", out),
				zap.Int("records", len(linked)),
			)

			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "output path; .csv or .json extension picks the format")

	return cmd
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInspectCmd(opts *rootOptions) *cobra.Command {
	var designation string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Load and link both datasets, then report what was built",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			db, _, err := loadDatabase(opts, logger)
			if err != nil {
				return err
			}

			if designation == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%d objects, %d approaches (%d unlinked)\n",
					len(db.NEOs()), len(db.Approaches()), db.Unlinked())
				return nil
			}

			neo, ok := db.GetByDesignation(designation)
			if !ok {
				return fmt.Errorf("no object with designation %q", designation)
			}

			fmt.Fprintln(cmd.OutOrStdout(), neo)
			for _, ca := range neo.Approaches {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", ca)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&designation, "designation", "", "print one object and its approaches")

	return cmd
}

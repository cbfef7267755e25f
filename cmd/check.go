package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/signalnine/benchpoints/internal/convert"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [base-dir]",
		Short: "Verify that every points file matches its input",
		Long:  "Re-derive the points of each run directory in memory and compare them with the existing 000_points file. Nothing is written.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			c := convert.New(logger, convert.Options{Sorted: true})
			results, err := c.Check(resolveBaseDir(cfg, args))
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			bad := 0
			for _, r := range results {
				if r.Status != convert.StatusUpToDate {
					bad++
				}
				if r.Err != nil {
					fmt.Fprintf(tw, "%s\t%s\t%v\n", r.Name, r.Status, r.Err)
					continue
				}
				fmt.Fprintf(tw, "%s\t%s\n", r.Name, r.Status)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if bad > 0 {
				return fmt.Errorf("%d of %d run directories are not up to date", bad, len(results))
			}
			return nil
		},
	}
}

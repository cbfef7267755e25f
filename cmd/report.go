package cmd

import (
	"github.com/signalnine/benchpoints/internal/report"
	"github.com/spf13/cobra"
)

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [base-dir]",
		Short: "Summarise existing points files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			format, err := resolveFormat(cmd, cfg, flagFormat)
			if err != nil {
				return err
			}
			stats, err := report.CollectStats(resolveBaseDir(cfg, args), true)
			if err != nil {
				return err
			}
			return report.GenerateStats(stats, format, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&flagFormat, "format", "table", "output format (table, markdown, json)")
	return cmd
}

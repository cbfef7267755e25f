package cmd

import (
	"github.com/signalnine/benchpoints/internal/convert"
	"github.com/signalnine/benchpoints/internal/report"
	"github.com/spf13/cobra"
)

var (
	flagSort      bool
	flagKeepGoing bool
	flagQuiet     bool
	flagFormat    string
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [base-dir]",
		Short: "Write a 000_points file for every run directory",
		Long: `Read <base-dir>/<run>/000 for every entry of base-dir and write the integer
after the last ':' of each line to <base-dir>/<run>/000_points as "(line,value)".
Lines without a trailing integer are skipped. A run directory without a 000
file aborts the conversion unless --keep-going is set.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runConvert,
	}
	cmd.Flags().BoolVar(&flagSort, "sort", false, "process run directories in lexical order")
	cmd.Flags().BoolVar(&flagKeepGoing, "keep-going", false, "continue past run directories that cannot be converted")
	cmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "do not print the summary")
	cmd.Flags().StringVar(&flagFormat, "format", "table", "summary format (table, markdown, json)")
	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	format, err := resolveFormat(cmd, cfg, flagFormat)
	if err != nil {
		return err
	}
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	opts := convert.Options{
		Sorted:    cfg.Convert.Sort || flagSort,
		KeepGoing: cfg.Convert.KeepGoing || flagKeepGoing,
	}
	summary, convErr := convert.New(logger, opts).Convert(resolveBaseDir(cfg, args))

	if !flagQuiet && len(summary.Dirs) > 0 {
		if err := report.Generate(summary, format, cmd.OutOrStdout()); err != nil {
			return err
		}
	}
	return convErr
}

package cmd

import (
	"fmt"
	"os"

	"github.com/signalnine/benchpoints/internal/result"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var sorted bool
	cmd := &cobra.Command{
		Use:   "list [base-dir]",
		Short: "List run directories and their input and points files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			baseDir := resolveBaseDir(cfg, args)
			names, err := result.ListDirs(baseDir, sorted || cfg.Convert.Sort)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Run directories in %s:\n", baseDir)
			for _, name := range names {
				fmt.Fprintf(out, "  - %s (input: %s, points: %s)\n", name,
					yesNo(exists(result.InputPath(baseDir, name))),
					yesNo(exists(result.OutputPath(baseDir, name))))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&sorted, "sort", false, "list in lexical order")
	return cmd
}

func exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

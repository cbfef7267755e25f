package cmd

import (
	"fmt"

	"github.com/signalnine/benchpoints/internal/config"
	"github.com/signalnine/benchpoints/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile     string
	flagVerbose bool
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "benchpoints",
		Short:        "Extract plottable points from benchmark result logs",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newConvertCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newReportCmd())
	return root
}

// loadConfig reads --config. The default path is optional; an explicitly
// named file must exist.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	return config.LoadOrDefault(cfgFile, !cmd.Flags().Changed("config"))
}

func resolveBaseDir(cfg *config.Config, args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return cfg.Results.Dir
}

// resolveFormat prefers an explicit --format over the config file.
func resolveFormat(cmd *cobra.Command, cfg *config.Config, flagValue string) (string, error) {
	format := cfg.Report.Format
	if cmd.Flags().Changed("format") {
		format = flagValue
	}
	if !config.ValidFormat(format) {
		return "", fmt.Errorf("unknown format %q (table, markdown, json)", format)
	}
	return format, nil
}

func newLogger() (*zap.Logger, error) {
	return logging.New(flagVerbose)
}

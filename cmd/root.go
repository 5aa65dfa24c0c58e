package cmd

import (
	"fmt"

	"codesnap/pkg/config"
	"codesnap/pkg/logging"
	"codesnap/pkg/snapshot"
	"codesnap/pkg/version"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// NewRootCmd builds the codesnap command tree. Running it without a
// subcommand snapshots the working directory.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "codesnap",
		Short: "codesnap snapshots a directory tree into a single text document",
		Long: `codesnap walks a directory, writes an outline of its tree followed by the
contents of every UTF-8 text file into a summary document, and ranks the
embedded files by size in a separate lengths document.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return fmt.Errorf("error loading configuration: %w", err)
			}

			if cfg.Debug {
				if err := logging.Setup(true, "codesnap", version.Get().Version); err != nil {
					return fmt.Errorf("failed to initialize debug logger: %w", err)
				}
			}
			logger := logging.ForRun(cfg.Identifier, cfg.Dir)

			result, err := snapshot.RunSnapshot(cfg.Arguments(), logger)
			if err != nil {
				logger.Error("Snapshot failed", zap.Error(err))
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Summary written to %s\n", result.SummaryPath)
			fmt.Fprintf(cmd.OutOrStdout(), "Lengths written to %s\n", result.LengthsPath)
			return nil
		},
	}

	flags := rootCmd.Flags()
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.codesnap.yaml or $HOME/.config/codesnap/.codesnap.yaml)")
	flags.StringP("dir", "d", "", "Directory to snapshot (default is the working directory)")
	flags.StringP("output-dir", "o", "", "Directory receiving the summary and lengths files (default is the working directory)")
	flags.String("base-name", snapshot.DefaultBaseName, "Prefix of the generated file names")
	flags.String("identifier", snapshot.DefaultIdentifier, "Run identifier embedded in output names; entries containing it are skipped")
	flags.StringSlice("skip", snapshot.DefaultSkipNames, "Exact file or directory names to skip")
	flags.Bool("debug", false, "Enable development logging at debug level")

	bindings := map[string]string{
		config.KeyDir:        "dir",
		config.KeyOutputDir:  "output-dir",
		config.KeyBaseName:   "base-name",
		config.KeyIdentifier: "identifier",
		config.KeySkip:       "skip",
		config.KeyDebug:      "debug",
	}
	for key, flag := range bindings {
		cobra.CheckErr(v.BindPFlag(key, flags.Lookup(flag)))
	}

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}

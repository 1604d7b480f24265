package cmd

import (
	"github.com/repify/repify/config"
	"github.com/repify/repify/logger"
	"github.com/spf13/cobra"
)

var (
	// Command line flags
	cfgFile   string
	logLevel  string
	logFormat string

	// appConfig is loaded once before any subcommand runs
	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "repify",
	Short: "Repify - AI clone content agency landing service",
	Long: `Repify serves the agency landing page and its AI script writer.
Scripts are generated by a hosted language model; see "repify serve" and "repify generate".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("log-level") {
			cfg.Log.Level = logLevel
		}
		if cmd.Flags().Changed("log-format") {
			cfg.Log.Format = logFormat
		}

		logger.Init(cfg.Log.Level, cfg.Log.Format)
		logger.Debugf("Log level set to: %s", cfg.Log.Level)
		if cfg.File != "" {
			logger.Debugf("Using config file: %s", cfg.File)
		}

		appConfig = cfg
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
	Run: func(cmd *cobra.Command, args []string) {
		// Default behavior when no subcommands are provided
		cmd.Help()
	},
}

// Execute runs the root command and handles errors
func Execute() error {
	// Subcommands are added in their respective init() functions
	return rootCmd.Execute()
}

func init() {
	// Add persistent flags that will be available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Config file (default is ./repify.yaml or $HOME/.config/repify/repify.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"Set the logging level (debug, info, warn, error, dpanic, panic, fatal)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", logger.FormatJSON,
		"Set the log encoding (json, console)")
}

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sofmeright/nativex-launcher/src/config"
)

var (
	cfgFile string
	verbose bool
	logFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "nativex-launcher",
	Short: "Front-end for the nativex build tool",
	Long: `nativex-launcher collects the values nativex needs (JRE folder, JAR file,
target OS and architecture, build name and location), runs nativex with them
and streams its output as it is produced.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(); err != nil {
			return err
		}
		// Skip config loading for commands that don't need it.
		if cmd.Name() == "version" {
			return nil
		}
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if cfg.Source != "" {
			logrus.WithField("file", cfg.Source).Debug("loaded config")
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .nativex.yml, then .nativex.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
}

func setupLogging() error {
	logrus.SetLevel(logrus.InfoLevel)
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if logFile == "" {
		logrus.SetOutput(os.Stderr)
		return nil
	}

	f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	logrus.SetOutput(f)
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	return nil
}

// quietLogs keeps log lines off a full-screen front-end unless they are
// going to a file.
func quietLogs() {
	if logFile == "" {
		logrus.SetOutput(io.Discard)
	}
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}

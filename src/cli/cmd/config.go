package cmd

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after defaults, the config file and
NATIVEX_TOOL_PATH have been applied. Nothing is written.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&configFormat, "format", "yaml", "output format: yaml or toml")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	var (
		data []byte
		err  error
	)
	switch configFormat {
	case "yaml":
		data, err = yaml.Marshal(cfg)
	case "toml":
		data, err = toml.Marshal(cfg)
	default:
		return fmt.Errorf("unknown --format %q (want yaml or toml)", configFormat)
	}
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	w := cmd.OutOrStdout()
	if cfg.Source != "" {
		fmt.Fprintf(w, "# from %s\n", cfg.Source)
	}
	_, err = w.Write(data)
	return err
}

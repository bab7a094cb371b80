package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/sofmeright/nativex-launcher/src/output"
	"github.com/sofmeright/nativex-launcher/src/tui"
)

var (
	formBrowse    bool
	formFixedTool bool
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Fill in the build form and watch nativex run",
	Long: `Open a terminal form prefilled from the config, then a build panel that
runs nativex and tails its output.

In the panel: b builds again, e returns to the form, q quits. The build key
is ignored while a build is running. ctrl+c leaves at any time.`,
	Args: cobra.NoArgs,
	RunE: runForm,
}

func init() {
	formCmd.Flags().BoolVar(&formBrowse, "browse", false, "pick paths with file pickers instead of typing them")
	formCmd.Flags().BoolVar(&formFixedTool, "fixed-tool", false, "use the configured tool path without offering it in the form")

	rootCmd.AddCommand(formCmd)
}

func runForm(cmd *cobra.Command, args []string) error {
	if !output.Interactive() {
		return errors.New("form needs an interactive terminal; use build instead")
	}
	quietLogs()

	opts := tui.FormOptions{
		EditableTool: !formFixedTool,
		Browse:       formBrowse,
	}
	return tui.Run(cfg.NewLauncher(), cfg.Request(), opts, cmd.OutOrStdout())
}

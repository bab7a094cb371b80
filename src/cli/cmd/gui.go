//go:build gui

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sofmeright/nativex-launcher/src/gui"
)

var guiFixedTool bool

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Open the desktop builder window",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		quietLogs()
		return gui.Run(cfg.NewLauncher(), cfg.Request(), gui.Options{EditableTool: !guiFixedTool})
	},
}

func init() {
	guiCmd.Flags().BoolVar(&guiFixedTool, "fixed-tool", false, "use the configured tool path without offering it in the window")
	rootCmd.AddCommand(guiCmd)
}

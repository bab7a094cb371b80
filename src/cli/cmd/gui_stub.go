//go:build !gui

package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

var guiCmd = &cobra.Command{
	Use:    "gui",
	Short:  "Open the desktop builder window (needs a build with -tags gui)",
	Hidden: true,
	Args:   cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return errors.New("GUI support not compiled in; rebuild with: go build -tags gui ./src/cli")
	},
}

func init() {
	rootCmd.AddCommand(guiCmd)
}

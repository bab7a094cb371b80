package tui

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/sofmeright/nativex-launcher/src/build"
)

// Run alternates between the form and the build panel until the user
// quits. The last log is copied to out once the panel closes, since the
// panel draws on the alternate screen.
func Run(l *build.Launcher, req build.BuildRequest, opts FormOptions, out io.Writer) error {
	for {
		var err error
		req, err = RunForm(req, opts)
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("form: %w", err)
		}

		m := NewModel(l, req)
		if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
			return fmt.Errorf("panel: %w", err)
		}
		if m.Action() != ActionEdit {
			fmt.Fprint(out, m.Log())
			return nil
		}
	}
}

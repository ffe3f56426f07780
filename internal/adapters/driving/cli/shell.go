package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gtree-project/gtree/internal/adapters/driving/tui"
	"github.com/gtree-project/gtree/internal/core/ports/driving"
	"github.com/gtree-project/gtree/internal/logger"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Launch the interactive browser",
	Long: `Launches the interactive terminal browser over the tree file.

The browser lists every person, opens profiles and draws charts with
keyboard navigation. Edits made to the file from outside (an editor,
another gtree) are picked up automatically.

Controls:
  ↑/k, ↓/j - Navigate
  Enter    - Select
  t / a    - Descendant / ancestor chart
  Esc      - Back
  ?        - Help
  q        - Quit`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(_ *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in shell: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	s, err := openSession()
	if err != nil {
		return err
	}

	ports := &tui.Ports{
		Query:    s.query,
		Renderer: renderer(),
		Path:     s.path,
		Reload: func() (driving.QueryService, error) {
			fresh, err := openSession()
			if err != nil {
				return nil, err
			}
			return fresh.query, nil
		},
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create shell: %w", err)
	}

	if w, err := tui.NewWatcher(s.path); err != nil {
		logger.Warn("file watching disabled: %v", err)
	} else {
		defer w.Close()
		app.WithWatcher(w)
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("shell error: %w", err)
	}
	return nil
}

package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"funknotes/internal/adapters/editor"
	"funknotes/internal/adapters/prompt"
	"funknotes/internal/adapters/tui"
	"funknotes/internal/application/commands"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse and edit a project in a full-screen interface",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		base := GetWorkspace()
		// the app confirms destructive actions itself
		ws := commands.NewWorkspace(base.Store, base.State, prompt.NewFixed(true))
		ws.Logger = base.Logger

		app := tui.NewApp(ws, projectFlag, editor.NewOpener(settings.Editor))
		p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
		_, err := p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

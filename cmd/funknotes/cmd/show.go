package cmd

import (
	"github.com/spf13/cobra"

	"funknotes/internal/adapters/render"
	"funknotes/internal/application/commands"
)

var showCmd = &cobra.Command{
	Use:   "show [project|object] [object]",
	Short: "List objects or items",
	Long: `Without arguments, list the objects of the primary project.
With one argument, list the objects of that project, or, when no project
has that name or index, the items of that object in the primary project.
With two arguments, list the items of an object in the given project.

Examples:
  funknotes show
  funknotes show work
  funknotes show todo
  funknotes show work todo`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if projectFlag != "" && len(args) == 1 {
			args = []string{projectFlag, args[0]}
		}
		res, err := commands.NewShowCommand(GetWorkspace(), args...).Execute(cmd.Context())
		if err != nil {
			return err
		}
		render.Show(cmd.OutOrStdout(), res)
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history <object>",
	Short: "Show the change history of an object",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		listing, err := commands.NewShowHistoryCommand(GetWorkspace(), projectFlag, args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		render.History(cmd.OutOrStdout(), listing)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(historyCmd)
}

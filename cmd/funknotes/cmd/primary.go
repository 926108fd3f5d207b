package cmd

import (
	"github.com/spf13/cobra"

	"funknotes/internal/adapters/render"
	"funknotes/internal/application/commands"
)

var primaryCmd = &cobra.Command{
	Use:   "primary <project>",
	Short: "Set the primary project",
	Long: `Set the project that commands act on by default.
The project can be given by name or by index.

Examples:
  funknotes primary work
  funknotes primary 3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := commands.NewSetPrimaryCommand(GetWorkspace(), args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		render.Message(cmd.OutOrStdout(), res.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(primaryCmd)
}

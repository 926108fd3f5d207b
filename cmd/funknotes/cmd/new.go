package cmd

import (
	"github.com/spf13/cobra"

	"funknotes/internal/adapters/render"
	"funknotes/internal/application/commands"
)

var newCmd = &cobra.Command{
	Use:   "new <project>",
	Short: "Create a project or an object",
	Long: `Create a new project, or an object inside a project.

Examples:
  funknotes new work              # Create project "work"
  funknotes new project work      # Same as above
  funknotes new object todo       # Create object "todo" in the primary project
  funknotes new object todo -p 2  # Create it in project 2`,
	Args: cobra.ExactArgs(1),
	RunE: runNewProject,
}

var newProjectCmd = &cobra.Command{
	Use:   "project <name>",
	Short: "Create a project",
	Args:  cobra.ExactArgs(1),
	RunE:  runNewProject,
}

var newObjectCmd = &cobra.Command{
	Use:   "object <name>",
	Short: "Create an empty object",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := commands.NewAddObjectCommand(GetWorkspace(), projectFlag, args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		render.Message(cmd.OutOrStdout(), res.Message)
		return nil
	},
}

func runNewProject(cmd *cobra.Command, args []string) error {
	res, err := commands.NewNewProjectCommand(GetWorkspace(), args[0]).Execute(cmd.Context())
	if err != nil {
		return err
	}
	render.Message(cmd.OutOrStdout(), res.Message)
	return nil
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.AddCommand(newProjectCmd)
	newCmd.AddCommand(newObjectCmd)
}

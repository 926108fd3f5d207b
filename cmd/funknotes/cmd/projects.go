package cmd

import (
	"github.com/spf13/cobra"

	"funknotes/internal/adapters/render"
	"funknotes/internal/application/commands"
)

var matchPattern string

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List projects",
	Long: `List every project with its index. The primary project is marked.

Examples:
  funknotes projects
  funknotes projects --match 'work*'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		projects, err := commands.NewListProjectsCommand(GetWorkspace(), matchPattern).Execute(cmd.Context())
		if err != nil {
			return err
		}
		render.Projects(cmd.OutOrStdout(), projects)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(projectsCmd)
	projectsCmd.Flags().StringVarP(&matchPattern, "match", "m", "", "only list projects whose name matches this glob")
}

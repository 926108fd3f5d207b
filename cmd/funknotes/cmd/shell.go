package cmd

import (
	"github.com/spf13/cobra"

	"funknotes/internal/adapters/shell"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive funknotes prompt",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sh := shell.New(GetWorkspace(), prompter.Reader(), cmd.OutOrStdout())
		sh.Project = projectFlag
		return sh.Run(cmd.Context())
	},
}

var openCmd = &cobra.Command{
	Use:   "open <object>",
	Short: "Open an object shell that adds each typed line as an item",
	Long: `Open an object, creating it if needed, and add every line you type as
a new item. Type 'show' to list the items, 'delete' to remove some, and
'q' to leave.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sh := shell.New(GetWorkspace(), prompter.Reader(), cmd.OutOrStdout())
		sh.Project = projectFlag
		return sh.OpenObject(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(openCmd)
}

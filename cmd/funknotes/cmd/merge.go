package cmd

import (
	"github.com/spf13/cobra"

	"funknotes/internal/adapters/render"
	"funknotes/internal/adapters/shell"
	"funknotes/internal/application/commands"
)

var mergeCmd = &cobra.Command{
	Use:   "merge <projects|project> <a,b,...,target>",
	Short: "Merge projects or objects",
	Long: `Merge several projects, or several objects of one project, into the
last one listed. Items and history are appended to the target. You are
asked before merging and again before the sources are deleted.

Examples:
  funknotes merge projects old,older,work     # Merge old and older into work
  funknotes merge work drafts,notes,ideas     # Merge two objects of work into ideas`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		names := shell.SplitList(args[1])

		if args[0] == "projects" {
			res, err := commands.NewMergeProjectsCommand(GetWorkspace(), names...).Execute(ctx)
			if err != nil {
				return err
			}
			render.Warnings(cmd.ErrOrStderr(), res.Warnings)
			render.Message(cmd.OutOrStdout(), res.Message)
			return nil
		}

		res, err := commands.NewMergeObjectsCommand(GetWorkspace(), args[0], names...).Execute(ctx)
		if err != nil {
			return err
		}
		render.Warnings(cmd.ErrOrStderr(), res.Warnings)
		render.Message(cmd.OutOrStdout(), res.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}

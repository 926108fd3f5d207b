package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"funknotes/internal/adapters/render"
	"funknotes/internal/adapters/shell"
	"funknotes/internal/application"
	"funknotes/internal/application/commands"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <object> <index|list>",
	Short: "Delete items, objects or projects",
	Long: `Delete items from an object, a whole object, or whole projects.
Every deletion asks for confirmation first.

Warning: Deleting an object or a project cannot be undone.

Examples:
  funknotes delete todo 3            # Delete item 3 of todo
  funknotes delete todo 1,3,5-7      # Delete several items at once
  funknotes delete object todo       # Delete the object and its history
  funknotes delete project work      # Delete a project
  funknotes delete projects a,b      # Delete several projects`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		switch args[0] {
		case "project", "projects":
			res, err := commands.NewDeleteProjectCommand(GetWorkspace(), shell.SplitList(args[1])...).Execute(ctx)
			if err != nil {
				return err
			}
			render.Warnings(cmd.ErrOrStderr(), res.Warnings)
			render.Message(out, res.Message)
			return nil

		case "object":
			res, err := commands.NewDeleteObjectCommand(GetWorkspace(), projectFlag, args[1]).Execute(ctx)
			if err != nil {
				return err
			}
			render.Message(out, res.Message)
			return nil
		}

		var (
			res *commands.DeleteItemsResult
			err error
		)
		if application.IsIndexSpec(args[1]) {
			res, err = commands.NewDeleteItemsCommand(GetWorkspace(), projectFlag, args[0], args[1]).Execute(ctx)
		} else {
			index, convErr := strconv.Atoi(args[1])
			if convErr != nil {
				return fmt.Errorf("invalid index: %s", args[1])
			}
			res, err = commands.NewDeleteItemCommand(GetWorkspace(), projectFlag, args[0], index).Execute(ctx)
		}
		if err != nil {
			return err
		}
		render.Message(out, res.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

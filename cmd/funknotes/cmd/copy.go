package cmd

import (
	"fmt"
	"strconv"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"funknotes/internal/adapters/render"
	"funknotes/internal/application"
	"funknotes/internal/application/commands"
)

var copyCmd = &cobra.Command{
	Use:   "copy <object> <index>",
	Short: "Copy an item's text to the clipboard",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid index: %s", args[1])
		}

		listing, err := commands.NewListItemsCommand(GetWorkspace(), projectFlag, args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		if index < 1 || index > len(listing.Items) {
			return &application.RangeError{Object: args[0], Index: index, Count: len(listing.Items)}
		}

		if err := clipboard.WriteAll(listing.Items[index-1].Text); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		render.Message(cmd.OutOrStdout(), fmt.Sprintf("Copied item %d of %s", index, args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(copyCmd)
}

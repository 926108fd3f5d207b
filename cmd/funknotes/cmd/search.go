package cmd

import (
	"github.com/spf13/cobra"

	"funknotes/internal/adapters/render"
	"funknotes/internal/application/commands"
)

var searchObject string

var searchCmd = &cobra.Command{
	Use:   "search [object] <keywords...>",
	Short: "Find items containing every keyword",
	Long: `Search the items of the primary project. An item matches when its
text contains every keyword, ignoring case. When the first word names an
object and more words follow, only that object is searched.

Examples:
  funknotes search milk
  funknotes search todo buy milk
  funknotes search --object ideas coffee`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		search := commands.NewSearchCommand(GetWorkspace(), projectFlag, searchObject, args...)
		search.DetectScope = searchObject == ""
		res, err := search.Execute(cmd.Context())
		if err != nil {
			return err
		}
		render.SearchResults(cmd.OutOrStdout(), res)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringVarP(&searchObject, "object", "o", "", "only search this object")
}

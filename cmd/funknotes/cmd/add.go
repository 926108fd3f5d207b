package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"funknotes/internal/adapters/editor"
	"funknotes/internal/adapters/prompt"
	"funknotes/internal/adapters/render"
	"funknotes/internal/application/commands"
)

var useEditor bool

var addCmd = &cobra.Command{
	Use:   "add <object> [text...]",
	Short: "Add an item to an object",
	Long: `Add a timestamped item to an object of the primary project.
If the object does not exist you are asked whether to create it.

The text is taken from the arguments, from stdin when it is piped, or
from your editor with --edit.

Examples:
  funknotes add todo buy milk
  echo "call mom" | funknotes add todo
  funknotes add ideas --edit`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := itemText(cmd, args[1:])
		if err != nil {
			return err
		}

		res, err := commands.NewAddItemCommand(GetWorkspace(), projectFlag, args[0], text).Execute(cmd.Context())
		if err != nil {
			return err
		}
		render.Message(cmd.OutOrStdout(), res.Message)
		return nil
	},
}

// itemText picks the item text from args, the editor or piped stdin
func itemText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if useEditor {
		return editor.NewOpener(settings.Editor).Compose("")
	}
	if !prompt.IsTerminal(os.Stdin) {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return strings.TrimSuffix(strings.TrimSuffix(string(data), "\n"), "\r"), nil
	}
	return "", fmt.Errorf("no text given: pass it as arguments, pipe it on stdin or use --edit")
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().BoolVarP(&useEditor, "edit", "e", false, "compose the item in $EDITOR")
}

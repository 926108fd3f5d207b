// Package shell runs the interactive funknotes prompt and the per-object
// shell on top of the command layer.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"funknotes/internal/adapters/render"
	"funknotes/internal/adapters/tui/styles"
	"funknotes/internal/application"
	"funknotes/internal/application/commands"
)

const clearScreen = "\033[H\033[2J"

// Shell reads commands line by line and runs them against a workspace
type Shell struct {
	ws     *commands.Workspace
	reader *bufio.Reader
	writer io.Writer
	// Project overrides the primary project for every command, when set
	Project string
}

// New creates a shell. Pass the same reader to the prompter so answers to
// confirmations are read from the same input.
func New(ws *commands.Workspace, reader *bufio.Reader, writer io.Writer) *Shell {
	return &Shell{
		ws:     ws,
		reader: reader,
		writer: writer,
	}
}

// IsExitWord reports whether line ends a shell loop
func IsExitWord(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "q", "quit", "exit", "drop":
		return true
	}
	return false
}

// readLine prints prompt and returns the next trimmed line.
// io.EOF is returned once input is exhausted.
func (s *Shell) readLine(prompt string) (string, error) {
	fmt.Fprint(s.writer, styles.Prompt.Render(prompt))
	line, err := s.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSpace(line), nil
		}
		if err == io.EOF {
			fmt.Fprintln(s.writer)
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Run starts the main loop. It returns nil on an exit word or end of input.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(s.writer, styles.Header.Render("funknotes shell"))
	fmt.Fprintln(s.writer, styles.MutedText.Render("Type 'help' for commands, 'q' to quit."))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := s.readLine("funknotes> ")
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		if line == "" {
			continue
		}
		if IsExitWord(line) {
			return nil
		}

		if err := s.Exec(ctx, line); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			s.report(err)
		}
	}
}

// report prints err. A declined confirmation is not shown as an error.
func (s *Shell) report(err error) {
	if errors.Is(err, application.ErrCancelled) {
		fmt.Fprintln(s.writer, styles.MutedText.Render(err.Error()))
		return
	}
	render.Error(s.writer, err)
}

// Exec runs a single shell command line
func (s *Shell) Exec(ctx context.Context, line string) error {
	args := strings.Fields(line)
	if len(args) == 0 {
		return nil
	}
	name, rest := strings.ToLower(args[0]), args[1:]

	switch name {
	case "help", "?":
		s.help()
		return nil
	case "clear":
		fmt.Fprint(s.writer, clearScreen)
		return nil
	case "new":
		return s.newCmd(ctx, rest)
	case "add":
		return s.addCmd(ctx, rest)
	case "show", "ls":
		return s.showCmd(ctx, rest)
	case "search":
		return s.searchCmd(ctx, rest)
	case "delete", "rm":
		return s.deleteCmd(ctx, rest)
	case "merge":
		return s.mergeCmd(ctx, rest)
	case "open":
		if len(rest) != 1 {
			return usage("open <object>")
		}
		return s.OpenObject(ctx, rest[0])
	case "primary":
		if len(rest) != 1 {
			return usage("primary <project>")
		}
		res, err := commands.NewSetPrimaryCommand(s.ws, rest[0]).Execute(ctx)
		if err != nil {
			return err
		}
		render.Message(s.writer, res.Message)
		return nil
	case "projects":
		pattern := ""
		if len(rest) > 0 {
			pattern = rest[0]
		}
		projects, err := commands.NewListProjectsCommand(s.ws, pattern).Execute(ctx)
		if err != nil {
			return err
		}
		render.Projects(s.writer, projects)
		return nil
	case "history":
		if len(rest) != 1 {
			return usage("history <object>")
		}
		listing, err := commands.NewShowHistoryCommand(s.ws, s.Project, rest[0]).Execute(ctx)
		if err != nil {
			return err
		}
		render.History(s.writer, listing)
		return nil
	default:
		return fmt.Errorf("unknown command '%s' (type 'help')", name)
	}
}

func usage(text string) error {
	return &application.ValidationError{Field: "usage", Message: text}
}

func (s *Shell) newCmd(ctx context.Context, args []string) error {
	if len(args) == 2 && args[0] == "object" {
		res, err := commands.NewAddObjectCommand(s.ws, s.Project, args[1]).Execute(ctx)
		if err != nil {
			return err
		}
		render.Message(s.writer, res.Message)
		return nil
	}
	if len(args) == 2 && args[0] == "project" {
		args = args[1:]
	}
	if len(args) != 1 {
		return usage("new [project] <name> | new object <name>")
	}
	res, err := commands.NewNewProjectCommand(s.ws, args[0]).Execute(ctx)
	if err != nil {
		return err
	}
	render.Message(s.writer, res.Message)
	return nil
}

func (s *Shell) addCmd(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return usage("add <object> <text...>")
	}
	res, err := commands.NewAddItemCommand(s.ws, s.Project, args[0], strings.Join(args[1:], " ")).Execute(ctx)
	if err != nil {
		return err
	}
	render.Message(s.writer, res.Message)
	return nil
}

func (s *Shell) showCmd(ctx context.Context, args []string) error {
	if s.Project != "" && len(args) == 1 {
		args = []string{s.Project, args[0]}
	}
	res, err := commands.NewShowCommand(s.ws, args...).Execute(ctx)
	if err != nil {
		return err
	}
	render.Show(s.writer, res)
	return nil
}

func (s *Shell) searchCmd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usage("search [object] <keywords...>")
	}
	cmd := commands.NewSearchCommand(s.ws, s.Project, "", args...)
	cmd.DetectScope = true
	res, err := cmd.Execute(ctx)
	if err != nil {
		return err
	}
	render.SearchResults(s.writer, res)
	return nil
}

// deleteCmd handles
//
//	delete project <id>
//	delete projects <a,b,...>
//	delete object <name>
//	delete <object> <index|spec>
func (s *Shell) deleteCmd(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usage("delete project <p> | delete projects <a,b> | delete object <o> | delete <object> <index|spec>")
	}

	switch args[0] {
	case "project":
		return s.deleteProjects(ctx, []string{args[1]})
	case "projects":
		return s.deleteProjects(ctx, SplitList(args[1]))
	case "object":
		res, err := commands.NewDeleteObjectCommand(s.ws, s.Project, args[1]).Execute(ctx)
		if err != nil {
			return err
		}
		render.Message(s.writer, res.Message)
		return nil
	}
	return s.deleteItems(ctx, args[0], args[1])
}

func (s *Shell) deleteProjects(ctx context.Context, ids []string) error {
	res, err := commands.NewDeleteProjectCommand(s.ws, ids...).Execute(ctx)
	if err != nil {
		return err
	}
	render.Warnings(s.writer, res.Warnings)
	render.Message(s.writer, res.Message)
	return nil
}

// deleteItems deletes a single index or an index list from object
func (s *Shell) deleteItems(ctx context.Context, object, spec string) error {
	var (
		res *commands.DeleteItemsResult
		err error
	)
	if application.IsIndexSpec(spec) {
		res, err = commands.NewDeleteItemsCommand(s.ws, s.Project, object, spec).Execute(ctx)
	} else {
		index, convErr := strconv.Atoi(spec)
		if convErr != nil {
			return &application.ValidationError{Field: "index", Message: fmt.Sprintf("invalid index: %s", spec)}
		}
		res, err = commands.NewDeleteItemCommand(s.ws, s.Project, object, index).Execute(ctx)
	}
	if err != nil {
		return err
	}
	render.Message(s.writer, res.Message)
	return nil
}

// mergeCmd handles
//
//	merge projects <a,b,...,target>
//	merge <project> <o1,o2,...,target>
func (s *Shell) mergeCmd(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usage("merge projects <a,b,target> | merge <project> <o1,o2,target>")
	}

	if args[0] == "projects" {
		res, err := commands.NewMergeProjectsCommand(s.ws, SplitList(args[1])...).Execute(ctx)
		if err != nil {
			return err
		}
		render.Warnings(s.writer, res.Warnings)
		render.Message(s.writer, res.Message)
		return nil
	}

	res, err := commands.NewMergeObjectsCommand(s.ws, args[0], SplitList(args[1])...).Execute(ctx)
	if err != nil {
		return err
	}
	render.Warnings(s.writer, res.Warnings)
	render.Message(s.writer, res.Message)
	return nil
}

// SplitList splits a comma separated list, dropping empty entries
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (s *Shell) help() {
	lines := [][2]string{
		{"new [project] <name>", "create a project"},
		{"new object <name>", "create an object in the primary project"},
		{"primary <project>", "set the primary project"},
		{"projects [glob]", "list projects"},
		{"add <object> <text...>", "add an item"},
		{"show [project|object] [object]", "list objects or items"},
		{"history <object>", "show the change history of an object"},
		{"search [object] <keywords...>", "find items containing every keyword"},
		{"open <object>", "enter the object shell"},
		{"delete <object> <n|a-b|a,b>", "delete items"},
		{"delete object <name>", "delete an object"},
		{"delete project(s) <a,b>", "delete projects"},
		{"merge projects <a,b,target>", "merge projects into the last one"},
		{"merge <project> <a,b,target>", "merge objects into the last one"},
		{"clear", "clear the screen"},
		{"q, quit, exit, drop", "leave the shell"},
	}
	for _, l := range lines {
		fmt.Fprintf(s.writer, "  %s  %s\n", styles.HelpKey.Render(padRight(l[0], 32)), styles.HelpDesc.Render(l[1]))
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

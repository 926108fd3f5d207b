package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"funknotes/internal/adapters/render"
	"funknotes/internal/adapters/tui/styles"
	"funknotes/internal/application"
	"funknotes/internal/application/commands"
)

// OpenObject runs the object shell: every line that is not a shell word is
// added to the object as a new item. The object is created when missing.
func (s *Shell) OpenObject(ctx context.Context, object string) error {
	if _, err := commands.NewAddObjectCommand(s.ws, s.Project, object).Execute(ctx); err != nil {
		if !errors.Is(err, application.ErrAlreadyExists) {
			return err
		}
	} else {
		render.Message(s.writer, fmt.Sprintf("Created object '%s'", object))
	}

	if err := s.listItems(ctx, object); err != nil {
		return err
	}
	fmt.Fprintln(s.writer, styles.MutedText.Render("Each line is added as an item. 'show', 'delete', 'clear', 'q' to leave."))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := s.readLine(object + "> ")
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		switch {
		case line == "":
			continue
		case IsExitWord(line):
			return nil
		case line == "show":
			err = s.listItems(ctx, object)
		case line == "clear":
			fmt.Fprint(s.writer, clearScreen)
		case line == "delete":
			err = s.deleteLoop(ctx, object)
		case strings.HasPrefix(line, "delete "):
			err = s.deleteFromObject(ctx, object, strings.TrimSpace(strings.TrimPrefix(line, "delete ")))
		default:
			var res *commands.AddItemResult
			res, err = commands.NewAddItemCommand(s.ws, s.Project, object, line).Execute(ctx)
			if err == nil {
				render.Message(s.writer, res.Message)
			}
		}

		if err != nil {
			s.report(err)
		}
	}
}

// deleteLoop reads index specs until an empty line or an exit word.
// Each accepted line is "N", "a-b", "a,b" or "delete <spec>".
func (s *Shell) deleteLoop(ctx context.Context, object string) error {
	if err := s.listItems(ctx, object); err != nil {
		return err
	}
	for {
		line, err := s.readLine("delete> ")
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" || IsExitWord(line) {
			return nil
		}

		spec := strings.TrimSpace(strings.TrimPrefix(line, "delete"))
		if err := s.deleteFromObject(ctx, object, spec); err != nil {
			s.report(err)
		}
	}
}

func (s *Shell) deleteFromObject(ctx context.Context, object, spec string) error {
	if spec == "" {
		return usage("delete <n|a-b|a,b>")
	}
	if err := s.deleteItems(ctx, object, spec); err != nil {
		return err
	}
	return s.listItems(ctx, object)
}

func (s *Shell) listItems(ctx context.Context, object string) error {
	listing, err := commands.NewListItemsCommand(s.ws, s.Project, object).Execute(ctx)
	if err != nil {
		return err
	}
	render.Items(s.writer, listing)
	return nil
}

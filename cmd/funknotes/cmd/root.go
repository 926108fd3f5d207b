package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"funknotes/internal/adapters/codec"
	"funknotes/internal/adapters/filesystem"
	"funknotes/internal/adapters/prompt"
	"funknotes/internal/adapters/render"
	"funknotes/internal/application"
	"funknotes/internal/application/commands"
	"funknotes/internal/config"
)

var (
	homeFlag    string
	projectFlag string
	verbose     bool

	settings *config.Settings
	prompter *prompt.Terminal
	ws       *commands.Workspace
	logger   *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "funknotes",
	Short: "Keep timestamped notes in projects and objects",
	Long: `funknotes stores notes as timestamped items inside named objects,
grouped into projects. One project can be marked primary; commands act on
it unless --project names another.

Every add and delete is recorded in the object's history.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		return setup(cmd)
	},
}

func setup(cmd *cobra.Command) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	home, err := config.ResolveHome(homeFlag)
	if err != nil {
		return err
	}
	settings, err = config.Load(home, cmd.Flags())
	if err != nil {
		return err
	}
	logger.Debug("configuration loaded", "home", settings.Home, "format", settings.StorageFormat, "config", settings.ConfigFile)

	projectCodec, err := codec.New(settings.StorageFormat)
	if err != nil {
		return err
	}

	state := filesystem.NewStateStore(settings.StatePath())
	dir := filesystem.NewDirectory(settings.ProjectsDir(), projectCodec, state, logger)
	prompter = prompt.NewTerminal(os.Stdin, prompt.WithWriter(os.Stderr))

	ws = commands.NewWorkspace(dir, state, prompter)
	ws.Logger = logger
	return nil
}

// Execute runs the root command. A declined confirmation is not a failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return
	}
	if errors.Is(err, application.ErrCancelled) {
		fmt.Fprintln(os.Stdout, err)
		return
	}
	render.Error(os.Stderr, err)
	stop()
	os.Exit(1)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&homeFlag, "home", "", "funknotes home directory (default $FUNKNOTES_HOME or ~/.funknotes)")
	rootCmd.PersistentFlags().StringVarP(&projectFlag, "project", "p", "", "project name or index to use instead of the primary project")
	rootCmd.PersistentFlags().String("format", "", "storage format: json, text or sqlite (default from config)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "log debug output to stderr")
}

// GetWorkspace returns the initialized workspace
func GetWorkspace() *commands.Workspace {
	return ws
}

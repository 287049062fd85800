package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/JonMunkholm/MondayImport/internal/config"
	"github.com/JonMunkholm/MondayImport/internal/core"
	_ "github.com/JonMunkholm/MondayImport/internal/core/boards" // Register all boards
	"github.com/JonMunkholm/MondayImport/internal/database"
	"github.com/JonMunkholm/MondayImport/internal/logging"
)

// app carries state shared by subcommands once the root has run setup.
type app struct {
	envFile string
	cfg     *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "monday",
		Short:         "Analyze Monday.com exports and build a PostgreSQL seed script",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "Dotenv file loaded before reading the environment")

	cmd.AddCommand(newAnalyzeCmd(a))
	cmd.AddCommand(newImportCmd(a))
	cmd.AddCommand(newApplyCmd(a))
	cmd.AddCommand(newVerifyCmd(a))
	return cmd
}

// setup loads configuration, configures logging and tags the command
// context with a run id.
func (a *app) setup(cmd *cobra.Command) error {
	// Overload so the dotenv file wins over stale shell exports
	if err := godotenv.Overload(a.envFile); err != nil {
		slog.Debug("no env file loaded, using environment variables", "path", a.envFile)
	}

	cfg, err := config.Load()
	if err != nil {
		return withCode(exitConfig, err)
	}
	a.cfg = cfg

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	ctx := logging.WithRunID(cmd.Context())
	cmd.SetContext(ctx)

	logging.FromContext(ctx).Debug("configuration loaded",
		"command", cmd.Name(),
		"config", cfg.String(),
		"boards", core.BoardCount(),
	)
	return nil
}

// Execute runs the root command and exits with the mapped exit code.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		code := exitCode(err)
		fmt.Fprintln(os.Stderr, err.Error())
		if code == exitDB && database.IsKnown(err) {
			fmt.Fprintln(os.Stderr, "hint:", database.FormatUserError(err))
		}
		os.Exit(code)
	}
}

// selectBoards narrows all to the boards named in keys, keeping registry
// order. An empty keys selects every board. A key registered for another
// command is reported apart from one that is not registered at all.
func selectBoards(keys []string, all []core.BoardDefinition) ([]core.BoardDefinition, error) {
	if len(keys) == 0 {
		return all, nil
	}

	want := make(map[string]bool, len(keys))
	for _, k := range keys {
		want[k] = true
	}

	out := make([]core.BoardDefinition, 0, len(keys))
	for _, def := range all {
		if want[def.Key] {
			out = append(out, def)
			delete(want, def.Key)
		}
	}
	for _, k := range keys {
		if !want[k] {
			continue
		}
		if def, ok := core.Get(k); ok {
			return nil, withCode(exitUsage, fmt.Errorf("board %q (%s) is not available for this command", k, def.Label))
		}
		return nil, withCode(exitUsage, fmt.Errorf("unknown board %q", k))
	}
	return out, nil
}

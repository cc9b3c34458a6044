package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"bothint/internal/commands"
	"bothint/internal/config"
	"bothint/internal/eventbus"
	"bothint/internal/logging"
	"bothint/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bothint",
	Short: "Chat composer with slash-command suggestions",
	Long: `bothint is a terminal chat composer. Typing "/" opens a list of the bot's
commands; arrow keys or tab move through it, enter inserts the highlighted
command and escape closes the list. Commands come from a TOML config file
that is reloaded while the program runs.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringP("config", "c", config.DefaultPath(), "Path to the TOML config file")
	rootCmd.Flags().String("log", "bothint.log", "Path to the log file")
	rootCmd.Flags().Bool("debug", false, "Log at debug level")
	rootCmd.Flags().Bool("watch", true, "Reload commands when the config file changes")
	rootCmd.Flags().Bool("write-default", false, "Write the default config to --config and exit")
}

func run(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	logPath, _ := cmd.Flags().GetString("log")
	debug, _ := cmd.Flags().GetBool("debug")
	watch, _ := cmd.Flags().GetBool("watch")
	writeDefault, _ := cmd.Flags().GetBool("write-default")

	configSvc := config.NewConfigService(configPath)
	if writeDefault {
		if err := configSvc.Save(config.DefaultConfig()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configSvc.Path())
		return nil
	}

	closeLog, err := logging.Setup(logPath, debug)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := configSvc.Load()
	if err != nil {
		return fmt.Errorf("loading %s: %w", configSvc.Path(), err)
	}
	slog.Info("Config loaded", "path", configSvc.Path(), "commands", len(cfg.Commands))

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	bus := eventbus.New()
	zones := zone.New()
	defer zones.Close()

	uiModel := ui.NewModel(cfg, bus, zones)
	program := tea.NewProgram(
		uiModel,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)
	uiModel.SetProgram(program)

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			program.Quit()
		case <-ctx.Done():
		}
	}()

	if watch {
		err := config.Watch(ctx, configSvc, func(c *config.Config) {
			program.Send(ui.CommandsReloadedMsg{Registry: commands.NewRegistry(c.Commands)})
		})
		if err != nil {
			// Directory may not exist yet when running on defaults
			slog.Warn("Config watch disabled", "error", err)
		}
	}

	var runErr error
	func() {
		defer logging.RecoverPanic("tui", func() {
			runErr = errors.New("bothint crashed, see the log for details")
		})
		_, runErr = program.Run()
	}()
	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		slog.Error("Error running program", "error", runErr)
		return runErr
	}
	slog.Info("UI exited normally")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

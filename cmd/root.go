// Package cmd is the command line entry point. Without a subcommand it runs
// the interactive terminal UI.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"kino-cli/app"
	"kino-cli/config"
	"kino-cli/flash"
	"kino-cli/i18n"
	"kino-cli/logger"
	"kino-cli/tui"
)

const appName = "kino"

var (
	version = "dev"
	commit  = "none"

	langFlag string
	logFile  *os.File
)

var rootCmd = &cobra.Command{
	Use:           appName,
	Short:         "Cinema booking from the terminal",
	Long:          `Browse movies and sessions, pick seats and manage your bookings without leaving the terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if langFlag != "" {
			if _, ok := i18n.Parse(langFlag); !ok {
				return fmt.Errorf("unknown language %q (use ru, en or kk)", langFlag)
			}
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, true)
		if err != nil {
			return err
		}
		_, err = tea.NewProgram(tui.New(a), tea.WithAltScreen()).Run()
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logFile != nil {
			_ = logFile.Close()
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s", appName, version)
		if commit != "none" && commit != "" {
			fmt.Fprintf(out, " (%s)", commit)
		}
		fmt.Fprintln(out)
	},
}

// Execute runs the root command with build metadata.
func Execute(buildVersion string, buildCommit string) {
	version = buildVersion
	commit = buildCommit
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "", "interface language: ru, en or kk")
	rootCmd.AddCommand(versionCmd)
}

// newApp loads configuration, sets up logging and builds the application.
// The TUI logs to a file because it owns the terminal; plain commands log
// to stderr.
func newApp(cmd *cobra.Command, interactive bool) (*app.App, error) {
	cfg := config.Load()

	var out io.Writer = cmd.ErrOrStderr()
	if interactive {
		out = io.Discard
		if f, err := logger.OpenFile(cfg.LogFile); err == nil {
			logFile = f
			out = f
		}
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat, out)

	a, err := app.New(cfg)
	if err != nil {
		return nil, err
	}
	if lang, ok := i18n.Parse(langFlag); ok {
		a.Lang.Set(lang)
	}
	return a, nil
}

// restoredApp builds the application and resumes the saved session.
func restoredApp(cmd *cobra.Command) (*app.App, error) {
	a, err := newApp(cmd, false)
	if err != nil {
		return nil, err
	}
	a.Account.Restore(cmd.Context())
	return a, nil
}

// outcome turns the flash left by an operation into command output: errors
// carry the flash text, successes print it.
func outcome(cmd *cobra.Command, a *app.App, err error) error {
	msg, _ := a.Flash.Current()
	if err != nil {
		if msg.Kind == flash.Error && msg.Text != "" {
			return errors.New(msg.Text)
		}
		return err
	}
	if msg.Kind == flash.Success && msg.Text != "" {
		fmt.Fprintln(cmd.OutOrStdout(), msg.Text)
	}
	return nil
}

// Package cli maps the ecorp subcommands onto the mail service and turns
// their outcome into output and an exit status.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Ning0612/ecorp/internal/config"
	"github.com/Ning0612/ecorp/internal/display"
	"github.com/Ning0612/ecorp/internal/logger"
	"github.com/Ning0612/ecorp/internal/service"
)

// errNoCommand is returned when ecorp is invoked without a subcommand
var errNoCommand = errors.New("no command given")

// handlerError marks a failure raised by a command handler, as opposed to
// a usage error detected while parsing the command line
type handlerError struct {
	err error
}

func (e *handlerError) Error() string { return e.err.Error() }
func (e *handlerError) Unwrap() error { return e.err }

// App holds the process streams and the injectable display capability
type App struct {
	Stdout io.Writer
	Stderr io.Writer

	// Display overrides the configured editor when set
	Display display.Displayer

	configPath string
	logLevel   string
	cfg        *config.Config
}

// Run executes ecorp with os-level streams and returns the exit status
func Run(args []string, stdout, stderr io.Writer) int {
	app := &App{Stdout: stdout, Stderr: stderr}
	return app.Run(args)
}

// Run executes the command line and returns the process exit status:
// 0 on success, 1 on a usage error or handler failure
func (a *App) Run(args []string) int {
	defer logger.Shutdown()

	root := a.newRootCmd()
	root.SetArgs(args)

	cmd, err := root.ExecuteC()
	if err == nil {
		return 0
	}

	var herr *handlerError
	if errors.As(err, &herr) {
		fmt.Fprintln(a.Stderr, herr.err.Error())
		return 1
	}

	if !errors.Is(err, errNoCommand) {
		fmt.Fprintf(a.Stderr, "Error: %v\n", err)
	}
	cmd.SetOut(a.Stdout)
	_ = cmd.Help()
	return 1
}

func (a *App) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ecorp",
		Short:         "Script to retrieve and submit solution for homework 01.",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return errNoCommand
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	root.SetOut(a.Stdout)
	root.SetErr(a.Stderr)

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default searches ./config.yaml, ~/.config/ecorp/config.yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "diagnostic log level: debug, info, warn, error")

	root.AddCommand(a.newGetEmailCmd())
	root.AddCommand(a.newShareCmd())

	return root
}

// setup loads configuration and starts logging before any handler runs
func (a *App) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return &handlerError{err: err}
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}

	err = logger.Init(logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		Writer: a.Stderr,
		File: logger.FileConfig{
			Path:       cfg.Log.File,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxAgeDays: cfg.Log.MaxAgeDays,
			MaxBackups: cfg.Log.MaxBackups,
			Compress:   cfg.Log.Compress,
		},
	})
	if err != nil {
		return &handlerError{err: err}
	}

	a.cfg = cfg
	return nil
}

// service builds the mail service from the loaded configuration
func (a *App) service() (*service.MailService, error) {
	svc, err := service.NewFromConfig(a.cfg, a.Stdout, a.Display)
	if err != nil {
		return nil, &handlerError{err: err}
	}
	return svc, nil
}

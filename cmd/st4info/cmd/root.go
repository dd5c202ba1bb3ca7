package cmd

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/st4info/foundation/core/error"
	mdwlog "github.com/msto63/st4info/foundation/core/log"
	"github.com/msto63/st4info/internal/command"
	"github.com/msto63/st4info/internal/info"
	"github.com/msto63/st4info/pkg/core/config"
	"github.com/msto63/st4info/pkg/core/logging"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "st4info",
	Short: "st4info - template expansion with info object and scratch pad",
	Long: `st4info expands text templates against a data model. Every template
sees an info object with application, time and file information, a scratch
pad calculator for counters and conditions and the commands error, warn,
info and debug.

Commands:
  render   - expand a template file
  eval     - evaluate scratch pad keys
  version  - show the version`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file, TOML or YAML (default: $ST4INFO_CONFIG or ./st4info.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log threshold: off, fatal, error, warn, info, debug or 0..5")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: plain, text, console, json")
}

// run holds what one invocation needs: configuration, logger and counter
type run struct {
	cfg     *config.Config
	logger  *mdwlog.Logger
	counter *command.ErrorCounter
	id      string
}

// newRun loads the configuration, applies the flags and creates the logger.
// Log output goes to stderr.
func newRun(stderr io.Writer) (*run, error) {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
		if err == nil {
			cfg.ApplyEnv()
		}
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return nil, err
	}

	if logLevel != "" {
		cfg.General.LogLevel = logLevel
	}
	if logFormat != "" {
		cfg.General.LogFormat = logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	return &run{
		cfg:     cfg,
		logger:  logging.FromConfig(cfg, stderr, id),
		counter: command.NewErrorCounter(),
		id:      id,
	}, nil
}

// newInfo creates the info object of the run
func (r *run) newInfo() (*info.Info, error) {
	app, err := r.cfg.AppInfo()
	if err != nil {
		return nil, err
	}
	return info.New(info.Options{
		App:     app,
		Sink:    r.logger,
		Counter: r.counter,
	}), nil
}

// report sends message through the same path as the template commands, so
// it is logged and counted
func (r *run) report(level mdwlog.Level, message string) {
	command.NewDispatcher(r.logger, r.counter).Interpret(level, message)
}

// result turns the counter into the command's error
func (r *run) result(what string) error {
	r.logger.Debug(fmt.Sprintf("%s finished with %s", what, r.counter),
		mdwlog.String("run_id", r.id))

	if !r.counter.Failed() {
		return nil
	}
	return mdwerror.Newf("%s failed with %s", what, r.counter).
		WithCode(mdwerror.CodeApplication).
		WithDetail("errors", r.counter.Errors()).
		WithDetail("warnings", r.counter.Warnings())
}

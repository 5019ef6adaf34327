package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/unitconv/internal/config"
	"github.com/alexisbeaulieu97/unitconv/internal/logger"
)

// appContext bundles state resolved once per invocation.
type appContext struct {
	flags *rootFlags

	cfg     *config.Config
	cfgPath string
	log     *logger.Logger
	logFile *os.File
}

// setup loads preferences and builds the logger. Logs go to --log-file when
// given, otherwise to the command's stderr.
func (a *appContext) setup(cmd *cobra.Command) error {
	cfg, path, err := config.Load(a.flags.configPath)
	if err != nil {
		return newCommandError("load configuration", describeConfigPath(a.flags.configPath), err,
			"Fix the preferences file or point --config at a valid one.")
	}
	a.cfg = cfg
	a.cfgPath = path

	var writer io.Writer = cmd.ErrOrStderr()
	if a.flags.logFile != "" {
		file, err := os.OpenFile(a.flags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return newCommandError("open log file", a.flags.logFile, err, "Check that the directory exists and is writable.")
		}
		a.logFile = file
		writer = file
	}

	level := cfg.Log.Level
	if a.flags.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{Level: level, Format: cfg.Log.Format, Writer: writer})
	if err != nil {
		return newCommandError("create logger", "level "+level, err, "Use one of trace, debug, info, warn, error, disabled.")
	}
	a.log = log.With("command", cmd.Name())

	if path != "" {
		a.log.With("path", path).Debug("preferences loaded")
	}
	return nil
}

// interactiveLogger returns a logger that never writes to the terminal.
func (a *appContext) interactiveLogger() *logger.Logger {
	if a.logFile == nil {
		return logger.Nop()
	}
	return a.log
}

func (a *appContext) close() error {
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	return err
}

func describeConfigPath(path string) string {
	if path == "" {
		return "resolving preferences"
	}
	return "reading " + path
}

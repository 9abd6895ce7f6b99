package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/harrison/grepr/internal/config"
	"github.com/harrison/grepr/internal/filelock"
	"github.com/harrison/grepr/internal/logger"
	"github.com/harrison/grepr/internal/search"
)

// reportCommitTimeout bounds how long --output waits for another grepr
// process writing the same file
const reportCommitTimeout = 30 * time.Second

// runLogger is what a search run logs to: engine diagnostics plus the
// final summary
type runLogger interface {
	search.Logger
	LogSummary(summary logger.Summary)
}

// runSearch resolves the configuration, runs the engine and publishes the
// report
func runSearch(cmd *cobra.Command, args []string) error {
	if handled, err := handleMetaFlags(cmd, args); handled {
		return err
	}

	configPath, explicit := config.ConfigPath(args)
	fileCfg, err := config.LoadFileConfig(configPath, explicit)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg, err := config.Resolve(args, fileCfg)
	if err != nil {
		return err
	}

	log, closeLog, err := newRunLogger(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	if configPath != "" {
		log.LogDebug(fmt.Sprintf("Using config file %s", configPath))
	}
	for _, p := range cfg.Unresolved {
		log.LogDebug(fmt.Sprintf("Path %s could not be resolved, using its absolute form", p))
	}

	mode := search.ModeSimple
	if cfg.Positions {
		mode = search.ModePositional
	}

	var (
		printer *search.Printer
		report  *filelock.ReportFile
	)
	if cfg.OutputPath != "" {
		report = filelock.NewReportFile(cfg.OutputPath)
		printer = search.NewPrinter(report, mode, cfg.Color == config.ColorAlways)
	} else {
		out := cmd.OutOrStdout()
		printer = search.NewPrinter(out, mode, colorEnabled(cfg.Color, out))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	stats, err := search.NewEngine(cfg, printer, log).Run(ctx)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if report != nil {
		commitCtx, cancel := context.WithTimeout(ctx, reportCommitTimeout)
		defer cancel()

		if err := report.Commit(commitCtx); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		log.LogInfo(fmt.Sprintf("Report written to %s (%d bytes)", report.Path(), report.Len()))
	}

	if cfg.Stats {
		log.LogSummary(summaryOf(stats))
	}

	return nil
}

// handleMetaFlags prints help or the version when -h, --help or --version
// appears before "--"
func handleMetaFlags(cmd *cobra.Command, args []string) (bool, error) {
	for _, arg := range args {
		switch arg {
		case "--":
			return false, nil
		case "-h", "--help":
			return true, cmd.Help()
		case "--version":
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "grepr version %s\n", Version)
			return true, err
		}
	}
	return false, nil
}

// newRunLogger builds the console logger on w and, when configured, the
// file logger. The returned func closes whatever was opened.
func newRunLogger(w io.Writer, cfg *config.Config) (runLogger, func(), error) {
	level := cfg.LogLevel
	if cfg.Stats && (level == "warn" || level == "error") {
		// The summary is an info line; asking for it must not be filtered out
		level = "info"
	}

	console := logger.NewConsoleLoggerWithColor(w, level, colorEnabled(cfg.Color, w))
	if cfg.LogFile == "" {
		return console, func() {}, nil
	}

	fileLog, err := logger.NewFileLogger(cfg.LogFile, level)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create file logger: %w", err)
	}

	multi := &multiLogger{loggers: []runLogger{console, fileLog}}
	return multi, func() { fileLog.Close() }, nil
}

// colorEnabled applies the color mode to a destination. Auto enables color
// only for terminals.
func colorEnabled(mode config.ColorMode, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func summaryOf(stats *search.Stats) logger.Summary {
	return logger.Summary{
		FilesScanned: stats.FilesScanned.Load(),
		FilesMatched: stats.FilesMatched.Load(),
		LinesMatched: stats.LinesMatched.Load(),
		Skipped:      stats.TotalSkipped(),
		Duration:     stats.Duration,
	}
}

// multiLogger implements runLogger by delegating to multiple loggers
type multiLogger struct {
	loggers []runLogger
}

// LogTrace forwards to all loggers
func (ml *multiLogger) LogTrace(message string) {
	for _, l := range ml.loggers {
		l.LogTrace(message)
	}
}

// LogDebug forwards to all loggers
func (ml *multiLogger) LogDebug(message string) {
	for _, l := range ml.loggers {
		l.LogDebug(message)
	}
}

// LogInfo forwards to all loggers
func (ml *multiLogger) LogInfo(message string) {
	for _, l := range ml.loggers {
		l.LogInfo(message)
	}
}

// LogWarn forwards to all loggers
func (ml *multiLogger) LogWarn(message string) {
	for _, l := range ml.loggers {
		l.LogWarn(message)
	}
}

// LogSummary forwards to all loggers
func (ml *multiLogger) LogSummary(summary logger.Summary) {
	for _, l := range ml.loggers {
		l.LogSummary(summary)
	}
}

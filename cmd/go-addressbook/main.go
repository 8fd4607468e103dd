package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/tartampluch/go-addressbook/internal/cli"
	"github.com/tartampluch/go-addressbook/internal/config"
	"github.com/tartampluch/go-addressbook/internal/engine"
	"github.com/tartampluch/go-addressbook/internal/i18n"
	"github.com/tartampluch/go-addressbook/internal/storage"
)

// options collects the command-line flags.
type options struct {
	dataFile    string
	lang        string
	debug       bool
	showVersion bool
}

// main is the application entry point.
// It delegates execution to runMain to ensure that deferred function calls
// (like closing log files) are executed before the process terminates.
func main() {
	os.Exit(runMain(os.Args[1:], os.Stdin, os.Stdout))
}

// runMain manages argument parsing, logging and exit codes.
// Returns config.ExitCodeSuccess on success, config.ExitCodeError on failure.
func runMain(args []string, in io.Reader, out io.Writer) int {
	var opts options

	root := &cobra.Command{
		Use:           config.CommandName,
		Short:         config.CmdShort,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.showVersion {
				printVersion(cmd.OutOrStdout())
				return nil
			}

			logCloser := setupLogging(opts.debug)
			if logCloser != nil {
				defer func() {
					_ = logCloser.Close() // Best effort close
				}()
			}
			logStartupInfo()

			if err := run(cmd.Context(), opts, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				slog.Error(config.ErrAppFailed,
					config.LogKeyComponent, config.CompMain,
					config.LogKeyError, err,
				)
				return err
			}
			return nil
		},
	}

	flags := root.Flags()
	flags.StringVar(&opts.dataFile, config.FlagFile, config.DefaultDataFile, config.FlagDescFile)
	flags.StringVar(&opts.lang, config.FlagLang, config.DefaultLanguage, config.FlagDescLang)
	flags.BoolVar(&opts.debug, config.FlagDebug, false, config.FlagDescDebug)
	flags.BoolVar(&opts.showVersion, config.FlagVersion, false, config.FlagDescVersion)

	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return config.ExitCodeError
	}
	return config.ExitCodeSuccess
}

// run loads the address book, wires dependencies and hands control to the REPL.
func run(ctx context.Context, opts options, in io.Reader, out io.Writer) error {
	tr, err := i18n.New(opts.lang)
	if err != nil {
		return err
	}

	// A corrupt file stops the program here so it is never overwritten on exit.
	book, err := storage.Load(opts.dataFile)
	if err != nil {
		return err
	}

	assistant := cli.New(book, newPlanner(tr), tr, opts.dataFile)
	if err := assistant.Run(ctx, in, out); err != nil {
		return err
	}

	slog.InfoContext(ctx, config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return nil
}

// newPlanner binds the birthday planner to the wall clock and localizes the
// titles of exported calendar events.
func newPlanner(tr *i18n.Translator) *engine.Planner {
	planner := engine.NewPlanner()
	planner.FormatSummary = func(name string) string {
		return tr.Msg(config.TKeyEventSummary, map[string]any{"Name": name})
	}
	return planner
}

// printVersion outputs the build information.
func printVersion(w io.Writer) {
	fmt.Fprintf(w, config.MsgVersionOutput,
		config.AppName,
		config.Version,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyCommit, config.Commit),
			slog.String(config.LogKeyBuilt, config.Date),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging configures the default slog logger.
// Stdout belongs to the assistant dialogue, so logs go to a file in the user
// cache directory and, in debug mode, to stderr as well.
func setupLogging(debugMode bool) io.Closer {
	var writers []io.Writer
	var logFile *os.File

	if debugMode {
		writers = append(writers, os.Stderr)
	}

	if logPath, err := getLogFilePath(); err == nil {
		// O_TRUNC resets logs on restart to prevent indefinite growth.
		f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
		if err == nil {
			writers = append(writers, f)
			logFile = f
		} else {
			fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, logPath, err)
		}
	}

	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}

	logger := slog.New(slog.NewJSONHandler(io.MultiWriter(writers...), opts))
	slog.SetDefault(logger)

	if logFile == nil {
		return nil
	}
	return logFile
}

// getLogFilePath determines the platform-specific cache directory for logs.
func getLogFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppID)

	// Ensure the directory exists with restricted permissions (700).
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, config.LogFileName), nil
}

package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"syscall"

	"github.com/tartampluch/go-shamsi/internal/config"
	"github.com/tartampluch/go-shamsi/internal/engine"
	"github.com/tartampluch/go-shamsi/internal/numerals"
	"github.com/tartampluch/go-shamsi/internal/picker"
	"github.com/tartampluch/go-shamsi/internal/ui"
)

// cliOptions carries the parsed command-line flags into run.
type cliOptions struct {
	lang     string
	dateText string
	persian  bool
	remember bool
}

// main is the application entry point.
// It delegates execution to runMain to ensure that deferred function calls
// (like closing log files) are executed before the process terminates.
// os.Exit() does not run defers, so we must return an integer code first.
func main() {
	os.Exit(runMain())
}

// runMain manages the application lifecycle, argument parsing, and exit codes.
// Returns config.ExitCodeSuccess on success, config.ExitCodeError on failure.
func runMain() int {
	// -------------------------------------------------------------------------
	// 1. CLI Argument Parsing
	// -------------------------------------------------------------------------
	showVersion := flag.Bool(config.FlagVersion, false, config.FlagDescVersion)
	debugMode := flag.Bool(config.FlagDebug, false, config.FlagDescDebug)

	opts := cliOptions{}
	flag.StringVar(&opts.lang, config.FlagLang, config.DefaultLanguage, config.FlagDescLang)
	flag.StringVar(&opts.dateText, config.FlagDate, "", config.FlagDescDate)
	flag.BoolVar(&opts.persian, config.FlagPersian, false, config.FlagDescPersian)
	flag.BoolVar(&opts.remember, config.FlagRemember, false, config.FlagDescRemember)
	flag.Parse()

	if *showVersion {
		printVersion()
		return config.ExitCodeSuccess
	}

	// -------------------------------------------------------------------------
	// 2. Logging Initialization
	// -------------------------------------------------------------------------
	// We configure structured logging (slog) early to capture startup issues.
	logCloser := setupLogging(*debugMode)
	if logCloser != nil {
		defer func() {
			_ = logCloser.Close() // Best effort close
		}()
	}

	// -------------------------------------------------------------------------
	// 3. Context & Signal Handling
	// -------------------------------------------------------------------------
	// Create a root context that cancels on SIGINT (Ctrl+C) or SIGTERM.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logStartupInfo()

	// -------------------------------------------------------------------------
	// 4. Application Logic
	// -------------------------------------------------------------------------
	if err := run(ctx, opts); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// run wires the picker and message catalogs and drives the stdin REPL.
func run(ctx context.Context, opts cliOptions) error {
	if !slices.Contains(config.SupportedLanguages, opts.lang) {
		return fmt.Errorf("%s: %q", config.ErrLangFlag, opts.lang)
	}

	msgs := ui.NewMessages(nil)
	msgs.SetLanguage(opts.lang)

	pickOpts := picker.Options{RememberLast: opts.remember}

	if opts.dateText != "" {
		date, err := parseDateFlag(opts.dateText, msgs)
		if err != nil {
			return err
		}
		pickOpts.DefaultDate = date
	}

	p, err := picker.New(pickOpts)
	if err != nil {
		return err
	}

	out := os.Stdout
	p.OnSelect(func(d engine.JalaliDate) {
		fmt.Fprintf(out, config.ReplPicked, formatDate(p, d, opts.persian))
	})
	p.OnCancel(func() {
		fmt.Fprint(out, config.ReplCancelled)
	})

	fmt.Fprintln(out, config.ReplHelp)
	p.Open()
	printState(out, p, msgs, opts.persian)
	printGrid(out, p, opts.persian)

	// Scanner runs in its own goroutine so a shutdown signal interrupts the
	// blocking read.
	scanner := bufio.NewScanner(os.Stdin)
	lines := make(chan string)
	go func() {
		defer close(lines)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		fmt.Fprint(out, config.ReplPrompt)

		select {
		case <-ctx.Done():
			slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompMain)
			fmt.Fprintln(out)
			return nil

		case line, ok := <-lines:
			if !ok {
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("%s: %w", config.ErrInputRead, err)
				}
				return nil
			}
			if quit := dispatch(out, p, msgs, opts.persian, line); quit {
				return nil
			}
		}
	}
}

// dispatch executes one REPL line and reports whether the loop should end.
func dispatch(out io.Writer, p *picker.Picker, msgs *ui.Messages, persian bool, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "q":
		return true

	case "h":
		fmt.Fprintln(out, config.ReplHelp)

	case "o":
		p.Open()
		printState(out, p, msgs, persian)
		printGrid(out, p, persian)

	case "w":
		p.HandleKey(picker.KeyW)
		printState(out, p, msgs, persian)

	case "a":
		p.HandleKey(picker.KeyA)
		printState(out, p, msgs, persian)

	case "s":
		p.HandleKey(picker.KeyS)
		printState(out, p, msgs, persian)

	case "d":
		p.HandleKey(picker.KeyD)
		printState(out, p, msgs, persian)

	case "enter":
		// The OnSelect callback prints the outcome.
		p.HandleKey(picker.KeyEnter)

	case "esc":
		p.HandleKey(picker.KeyEscape)

	case "t":
		p.Today()
		printState(out, p, msgs, persian)

	case "g":
		printGrid(out, p, persian)

	case "m":
		if len(fields) < 2 {
			fmt.Fprintf(out, config.ReplUnknown, line)
			return false
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			fmt.Fprintf(out, config.ReplUnknown, line)
			return false
		}
		p.StepMonth(n)
		printState(out, p, msgs, persian)
		printGrid(out, p, persian)

	case "y":
		if len(fields) < 2 {
			fmt.Fprintf(out, config.ReplUnknown, line)
			return false
		}
		year, err := strconv.Atoi(fields[1])
		if err != nil {
			fmt.Fprintf(out, config.ReplUnknown, line)
			return false
		}
		p.SwitchMode(picker.ModeYear)
		p.SelectYear(year)
		printState(out, p, msgs, persian)
		printGrid(out, p, persian)

	case "i":
		text := strings.Join(fields[1:], " ")
		p.SwitchMode(picker.ModeInput)
		result := p.SubmitInput(text)
		if !result.Valid {
			fmt.Fprintf(out, config.ReplInvalid, msgs.ReasonMessage(result.Reason))
		}
		printState(out, p, msgs, persian)

	default:
		fmt.Fprintf(out, config.ReplUnknown, fields[0])
	}
	return false
}

// parseDateFlag validates the -date value through the engine with the full
// calendar bounds; the picker clamps it into its window afterwards.
func parseDateFlag(text string, msgs *ui.Messages) (engine.JalaliDate, error) {
	cal := engine.NewCalendar(0)
	result := cal.Parse(text,
		engine.JalaliDate{Year: config.MinYear, Month: 1, Day: 1},
		engine.JalaliDate{Year: config.MaxYear, Month: 12, Day: 29},
	)
	if !result.Valid {
		return engine.JalaliDate{}, fmt.Errorf("%s: %s", config.ErrDateFlag, msgs.ReasonMessage(result.Reason))
	}
	return result.Date, nil
}

// formatDate renders a date with its weekday name in the chosen digits.
func formatDate(p *picker.Picker, d engine.JalaliDate, persian bool) string {
	info, err := p.Calendar().Info(d)
	if err != nil {
		return d.String()
	}
	if persian {
		return info.FormattedPersian + " " + info.DayName
	}
	return info.Formatted + " " + info.DayName
}

// printState prints a one-line summary of the picker state, plus the last
// input rejection while the input view is active.
func printState(out io.Writer, p *picker.Picker, msgs *ui.Messages, persian bool) {
	state := p.GetState()
	if !state.Open {
		fmt.Fprint(out, config.ReplClosed)
		return
	}

	fmt.Fprintf(out, config.ReplState, state.Mode, formatDate(p, state.Focused, persian))
	if state.Mode == picker.ModeInput && state.InputReason != engine.ReasonNone {
		fmt.Fprintf(out, config.ReplInvalid, msgs.ReasonMessage(state.InputReason))
	}
}

// printGrid renders the focused month, Saturday in the first column, the
// focused day in brackets.
func printGrid(out io.Writer, p *picker.Picker, persian bool) {
	state := p.GetState()
	if !state.Open {
		return
	}
	layout, err := p.MonthGrid()
	if err != nil {
		return
	}

	monthName, err := engine.MonthName(layout.Month)
	if err != nil {
		return
	}
	fmt.Fprintf(out, "%s %s\n", monthName, dayText(layout.Year, persian))

	for col := 0; col < config.DaysPerWeek; col++ {
		fmt.Fprintf(out, "%4s", engine.WeekdayShort(engine.Weekday(col)))
	}
	fmt.Fprintln(out)

	for row := range layout.Weeks {
		blank := true
		for _, cell := range layout.Weeks[row] {
			if cell != 0 {
				blank = false
				break
			}
		}
		if blank {
			continue
		}

		for _, cell := range layout.Weeks[row] {
			switch {
			case cell == 0:
				fmt.Fprintf(out, "%4s", "")
			case cell == state.Focused.Day:
				fmt.Fprintf(out, "%4s", "["+dayText(cell, persian)+"]")
			default:
				fmt.Fprintf(out, "%4s", dayText(cell, persian))
			}
		}
		fmt.Fprintln(out)
	}
}

func dayText(n int, persian bool) string {
	text := strconv.Itoa(n)
	if persian {
		return numerals.ToPersianDigits(text)
	}
	return text
}

// printVersion outputs the build information to stdout and exits.
func printVersion() {
	fmt.Printf(config.MsgVersionOutput,
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
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging configures the default slog logger. Log lines go to stderr so
// REPL output on stdout stays clean, and to a best-effort file in the user
// cache directory.
func setupLogging(debugMode bool) io.Closer {
	var writers []io.Writer
	var logFile *os.File

	// 1. Always write to Stderr.
	writers = append(writers, os.Stderr)

	// 2. Attempt to set up a file writer in the user's cache directory.
	if logPath, err := getLogFilePath(); err == nil {
		// O_TRUNC resets logs on restart to prevent indefinite growth.
		// Use centralized permission constants for security.
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

// Package main provides the CLI entrypoint for chaplet.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/quisutdeus/chaplet/internal/chaplet"
	"github.com/quisutdeus/chaplet/internal/config"
	"github.com/quisutdeus/chaplet/internal/model"
	"github.com/quisutdeus/chaplet/internal/monitor"
	"github.com/quisutdeus/chaplet/internal/morse"
	"github.com/quisutdeus/chaplet/internal/sounder"
	statsPkg "github.com/quisutdeus/chaplet/internal/stats"
	"github.com/quisutdeus/chaplet/internal/store"
)

const (
	defaultUnitMs  = 80 // ~15 WPM, a contemplative pace
	defaultDelay   = 30
	defaultRest    = 60
	defaultLang    = "latin"
	defaultBackend = sounder.BackendAuto
	defaultGPIOPin = 17
	defaultToneHz  = sounder.DefaultToneHz
)

const banner = `
  THE AUTOMATED PRAYER PROJECT: CHAPLET OF ST. MICHAEL

  A telegraph sounder keyed by a continuously running program,
  cycling through the Chaplet of St. Michael in Morse code.
  In the spirit of the original Automated Prayer Project (c. 2000).

  Who is like unto God?
`

var (
	runUnitMs  int
	runWPM     int
	runDelay   int
	runRest    int
	runLang    string
	runBackend string
	runPin     int
	runToneHz  float64
	runVerbose bool
	runMonitor bool
	runCycles  int
	runNoLog   bool

	sendUnitMs  int
	sendWPM     int
	sendBackend string
	sendPin     int
	sendToneHz  float64

	statsLang  string
	statsSince string
	statsLast  int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "chaplet",
		Short:         "Pray the Chaplet of St. Michael over a telegraph sounder",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runRootCmd,
	}

	rootCmd.Flags().IntVar(&runUnitMs, "unit-ms", defaultUnitMs, "Morse unit duration in milliseconds")
	rootCmd.Flags().IntVar(&runWPM, "wpm", 0, "Morse speed in words per minute (overrides --unit-ms)")
	rootCmd.Flags().IntVar(&runDelay, "delay", defaultDelay, "seconds between prayers")
	rootCmd.Flags().IntVar(&runRest, "rest", defaultRest, "seconds between cycles")
	rootCmd.Flags().StringVar(&runLang, "lang", defaultLang, "language: latin, english, or alternating")
	rootCmd.Flags().StringVar(&runBackend, "backend", defaultBackend, "sounder backend: auto, gpio, audio, console, null")
	rootCmd.Flags().IntVar(&runPin, "pin", defaultGPIOPin, "GPIO pin for the sounder (BCM numbering)")
	rootCmd.Flags().Float64Var(&runToneHz, "tone-hz", defaultToneHz, "sidetone frequency for the audio backend")
	rootCmd.Flags().BoolVar(&runVerbose, "verbose", true, "echo prayers to the console as they are keyed")
	rootCmd.Flags().BoolVar(&runMonitor, "monitor", false, "show the live transmission monitor")
	rootCmd.Flags().IntVar(&runCycles, "cycles", 0, "stop after this many cycles (0 = pray without ceasing)")
	rootCmd.Flags().BoolVar(&runNoLog, "no-log", false, "disable the transmission log")

	rootCmd.AddCommand(newSendCmd())
	rootCmd.AddCommand(newScriptCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runRootCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "unit-ms", &runUnitMs, fileCfg.Telegraph.UnitMs)
	applyIntConfig(cmd, "wpm", &runWPM, fileCfg.Telegraph.WPM)
	applyIntConfig(cmd, "delay", &runDelay, fileCfg.Telegraph.DelaySeconds)
	applyIntConfig(cmd, "rest", &runRest, fileCfg.Telegraph.RestSeconds)
	applyStringConfig(cmd, "lang", &runLang, fileCfg.Telegraph.Language)
	applyBoolConfig(cmd, "verbose", &runVerbose, fileCfg.Telegraph.Verbose)
	applyStringConfig(cmd, "backend", &runBackend, fileCfg.Sounder.Backend)
	applyIntConfig(cmd, "pin", &runPin, fileCfg.Sounder.GPIOPin)
	applyFloatConfig(cmd, "tone-hz", &runToneHz, fileCfg.Sounder.ToneHz)

	cfg := model.RunConfig{
		UnitMs:       runUnitMs,
		WPM:          runWPM,
		DelaySeconds: runDelay,
		RestSeconds:  runRest,
		Language:     runLang,
		Backend:      runBackend,
		GPIOPin:      runPin,
		ToneHz:       runToneHz,
		Verbose:      runVerbose,
		Monitor:      runMonitor,
		Cycles:       runCycles,
		NoLog:        runNoLog,
	}
	if err := validateRunConfig(cfg); err != nil {
		return err
	}
	lang, err := chaplet.ParseLanguage(cfg.Language)
	if err != nil {
		return err
	}

	script, err := chaplet.BuildScript()
	if err != nil {
		return fmt.Errorf("failed to build chaplet script: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	key, err := sounder.Open(sounder.Config{
		Backend: cfg.Backend,
		GPIOPin: cfg.GPIOPin,
		ToneHz:  cfg.ToneHz,
		Out:     os.Stdout,
		Logf:    logErrf,
	})
	if err != nil {
		return err
	}

	var st *store.Store
	if !cfg.NoLog {
		st, err = store.Open(config.DefaultDBPath())
		if err != nil {
			// A broken log never stops the cycle.
			logErrf("transmission log unavailable: %v\n", err)
			st = nil
		} else {
			defer func() {
				if cerr := st.Close(); cerr != nil {
					logErrf("failed to close transmission log: %v\n", cerr)
				}
			}()
		}
	}

	tx := morse.NewTransmitter(key, unitDuration(cfg))
	seq := chaplet.NewSequencer(script, tx, lang, time.Duration(cfg.DelaySeconds)*time.Second)
	rest := time.Duration(cfg.RestSeconds) * time.Second

	if cfg.Monitor {
		return runWithMonitor(ctx, cancel, seq, tx, key, st, rest, cfg.Cycles)
	}

	fmt.Println(banner)
	seq.SetNotify(composeNotify(recordEvents(st), printEvents(cfg.Verbose)))
	if cfg.Verbose {
		tx.SetEcho(func(r rune) { fmt.Print(string(r)) })
	}

	return praySession(ctx, seq, tx, key, rest, cfg.Cycles, func() {
		if cfg.Verbose {
			fmt.Println("\n[PAUSE] Resting before next cycle...")
		}
	})
}

// praySession owns the sounder for the life of the prayer loop. On
// interruption it keys the final invocation, and it releases the sounder
// exactly once on the way out, whatever stopped the loop.
func praySession(ctx context.Context, seq *chaplet.Sequencer, tx *morse.Transmitter, key morse.Keyer, rest time.Duration, cycles int, onRest func()) error {
	defer closeSounder(key)
	err := runLoop(ctx, seq, rest, cycles, onRest)
	if errors.Is(err, context.Canceled) {
		logErrln("\n[INTERRUPTED] Closing with final invocation...")
		farewell(tx)
		logErrln("[SHUTDOWN] Sounder released. Pax vobiscum.")
		return nil
	}
	return err
}

func closeSounder(key morse.Keyer) {
	if err := key.Close(); err != nil {
		logErrf("failed to release sounder: %v\n", err)
	}
}

// runLoop prays cycles until the context is cancelled or the requested
// count is reached.
func runLoop(ctx context.Context, seq *chaplet.Sequencer, rest time.Duration, cycles int, onRest func()) error {
	clock := morse.RealClock{}
	for {
		if err := seq.RunCycle(ctx); err != nil {
			return err
		}
		if cycles > 0 && seq.CycleCount() >= int64(cycles) {
			return nil
		}
		if onRest != nil {
			onRest()
		}
		if err := clock.Sleep(ctx, rest); err != nil {
			return err
		}
	}
}

func runWithMonitor(ctx context.Context, cancel context.CancelFunc, seq *chaplet.Sequencer, tx *morse.Transmitter, key morse.Keyer, st *store.Store, rest time.Duration, cycles int) error {
	defer closeSounder(key)
	m := monitor.NewModel(cancel)
	program := tea.NewProgram(m, tea.WithAltScreen())

	record := recordEvents(st)
	seq.SetNotify(func(ev chaplet.Event) {
		record(ev)
		program.Send(monitor.EventMsg(ev))
	})
	tx.SetEcho(func(r rune) {
		program.Send(monitor.EchoMsg(r))
	})

	go func() {
		err := runLoop(ctx, seq, rest, cycles, nil)
		if errors.Is(err, context.Canceled) {
			farewell(tx)
			err = nil
		}
		program.Send(monitor.DoneMsg{Err: err})
	}()

	if _, err := program.Run(); err != nil {
		cancel()
		return fmt.Errorf("failed to run monitor: %w", err)
	}
	return m.Err()
}

// farewell keys the final invocation on shutdown, outside the cancelled
// run context so the interrupt cannot cut it off.
func farewell(tx *morse.Transmitter) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := tx.Send(ctx, chaplet.FinalSignoff); err != nil {
		logErrf("failed to key final invocation: %v\n", err)
	}
}

// recordEvents writes segment and cycle records to the transmission log.
// A nil store records nothing.
func recordEvents(st *store.Store) func(chaplet.Event) {
	if st == nil {
		return func(chaplet.Event) {}
	}
	return func(ev chaplet.Event) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		switch ev.Kind {
		case chaplet.EventSegmentEnd:
			rec := model.SegmentRecord{
				SentAt:     time.Now(),
				Cycle:      ev.Cycle,
				Label:      ev.Label,
				Language:   ev.Language.String(),
				Chars:      utf8.RuneCountInString(ev.Text),
				DurationMs: ev.Elapsed.Milliseconds(),
			}
			if err := st.InsertSegment(ctx, rec); err != nil {
				logErrf("failed to log segment: %v\n", err)
			}
		case chaplet.EventCycleEnd:
			now := time.Now()
			rec := model.CycleRecord{
				Number:     ev.Cycle,
				StartedAt:  now.Add(-ev.Elapsed),
				EndedAt:    now,
				Language:   ev.Language.String(),
				Segments:   ev.Total,
				DurationMs: ev.Elapsed.Milliseconds(),
			}
			if _, err := st.InsertCycle(ctx, rec); err != nil {
				logErrf("failed to log cycle: %v\n", err)
			}
		}
	}
}

// printEvents echoes cycle and segment headers to stdout.
func printEvents(verbose bool) func(chaplet.Event) {
	return func(ev chaplet.Event) {
		switch ev.Kind {
		case chaplet.EventCycleStart:
			fmt.Printf("\n%s\n", strings.Repeat("=", 60))
			fmt.Printf("CHAPLET OF ST. MICHAEL - CYCLE %d\n", ev.Cycle)
			fmt.Printf("Language: %s\n", ev.Language)
			fmt.Println(strings.Repeat("=", 60))
		case chaplet.EventSegmentStart:
			if verbose {
				fmt.Printf("\n[%s]\n", strings.ToUpper(ev.Label))
			}
		case chaplet.EventSegmentEnd:
			if verbose {
				fmt.Println()
			}
		case chaplet.EventCycleEnd:
			fmt.Printf("\n%s\n", strings.Repeat("=", 60))
			fmt.Printf("CYCLE %d COMPLETE (%s)\n", ev.Cycle, ev.Elapsed.Round(time.Second))
			fmt.Println(strings.Repeat("=", 60))
		}
	}
}

func composeNotify(fns ...func(chaplet.Event)) func(chaplet.Event) {
	return func(ev chaplet.Event) {
		for _, fn := range fns {
			fn(ev)
		}
	}
}

func newSendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send [text]...",
		Short: "Transmit arbitrary text once and exit",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSendCmd,
	}
	cmd.Flags().IntVar(&sendUnitMs, "unit-ms", defaultUnitMs, "Morse unit duration in milliseconds")
	cmd.Flags().IntVar(&sendWPM, "wpm", 0, "Morse speed in words per minute (overrides --unit-ms)")
	cmd.Flags().StringVar(&sendBackend, "backend", defaultBackend, "sounder backend: auto, gpio, audio, console, null")
	cmd.Flags().IntVar(&sendPin, "pin", defaultGPIOPin, "GPIO pin for the sounder (BCM numbering)")
	cmd.Flags().Float64Var(&sendToneHz, "tone-hz", defaultToneHz, "sidetone frequency for the audio backend")
	return cmd
}

func runSendCmd(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	unit := time.Duration(sendUnitMs) * time.Millisecond
	if sendWPM > 0 {
		unit = morse.UnitForWPM(sendWPM)
	}
	if unit <= 0 {
		return fmt.Errorf("--unit-ms must be > 0")
	}

	elements := morse.Encode(text)
	if len(elements) == 0 {
		return fmt.Errorf("nothing to send: no character of %q has a Morse code", text)
	}
	logErrf("Sending %d characters, about %s\n", len(elements), morse.Duration(elements, unit).Round(time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	key, err := sounder.Open(sounder.Config{
		Backend: sendBackend,
		GPIOPin: sendPin,
		ToneHz:  sendToneHz,
		Out:     cmd.OutOrStdout(),
		Logf:    logErrf,
	})
	if err != nil {
		return err
	}
	defer func() {
		if cerr := key.Close(); cerr != nil {
			logErrf("failed to release sounder: %v\n", cerr)
		}
	}()

	tx := morse.NewTransmitter(key, unit)
	tx.SetEcho(func(r rune) { fmt.Print(string(r)) })
	if err := tx.SendElements(ctx, elements); err != nil {
		return fmt.Errorf("transmission aborted: %w", err)
	}
	fmt.Println()
	return nil
}

func newScriptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "script",
		Short: "Print the chaplet traversal order",
		Args:  cobra.NoArgs,
		RunE:  runScriptCmd,
	}
}

func runScriptCmd(cmd *cobra.Command, _ []string) error {
	script, err := chaplet.BuildScript()
	if err != nil {
		return fmt.Errorf("failed to build chaplet script: %w", err)
	}
	for i, seg := range script.Segments() {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%2d  %s\n", i+1, seg.Label); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the transmission log",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsLang, "lang", "", "language filter")
	cmd.Flags().StringVar(&statsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N cycles")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	var sinceTime *time.Time
	if statsSince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", statsSince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}

	cfg := model.StatsConfig{
		Language: statsLang,
		Since:    sinceTime,
		Last:     statsLast,
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open transmission log: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close transmission log: %v\n", cerr)
		}
	}()

	report, err := statsPkg.BuildReport(context.Background(), st, cfg)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}
	return statsPkg.RenderReport(cmd.OutOrStdout(), report, statsPkg.TerminalWidth())
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func validateRunConfig(cfg model.RunConfig) error {
	if cfg.WPM < 0 {
		return fmt.Errorf("--wpm must be >= 0")
	}
	if cfg.WPM == 0 && cfg.UnitMs <= 0 {
		return fmt.Errorf("--unit-ms must be > 0")
	}
	if cfg.DelaySeconds < 0 {
		return fmt.Errorf("--delay must be >= 0")
	}
	if cfg.RestSeconds < 0 {
		return fmt.Errorf("--rest must be >= 0")
	}
	if cfg.GPIOPin < 0 {
		return fmt.Errorf("--pin must be >= 0")
	}
	if cfg.ToneHz <= 0 {
		return fmt.Errorf("--tone-hz must be > 0")
	}
	if cfg.Cycles < 0 {
		return fmt.Errorf("--cycles must be >= 0")
	}
	return nil
}

func unitDuration(cfg model.RunConfig) time.Duration {
	if cfg.WPM > 0 {
		return morse.UnitForWPM(cfg.WPM)
	}
	return time.Duration(cfg.UnitMs) * time.Millisecond
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# chaplet configuration
# Uncomment a value to enable it. CLI flags override config values.

[telegraph]
# unit-ms = %d      # Morse unit duration in milliseconds
# wpm = 15          # Speed in words per minute (overrides unit-ms)
# delay = %d        # Seconds between prayers
# rest = %d         # Seconds between cycles
# language = %q # latin, english, or alternating
# verbose = true    # Echo prayers to the console

[sounder]
# backend = %q    # auto, gpio, audio, console, null
# gpio-pin = %d      # BCM pin driving the sounder
# tone-hz = %.1f    # Sidetone frequency for the audio backend
`,
		defaultUnitMs,
		defaultDelay,
		defaultRest,
		defaultLang,
		defaultBackend,
		defaultGPIOPin,
		defaultToneHz,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

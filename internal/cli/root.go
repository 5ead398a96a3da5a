// Package cli implements the texorg command: it wires flags and config,
// the logger, the source prompt, the organizing pipeline, and the run
// report, and maps failures to exit codes.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/backmassage/texorg/internal/check"
	"github.com/backmassage/texorg/internal/config"
	"github.com/backmassage/texorg/internal/display"
	"github.com/backmassage/texorg/internal/logging"
	"github.com/backmassage/texorg/internal/pipeline"
	"github.com/backmassage/texorg/internal/prompt"
	"github.com/backmassage/texorg/internal/report"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1 // Usage, config, or source path error.
	exitSysError  = 2 // I/O failure during the run.
)

// BuildInfo identifies the binary; set from ldflags in cmd/texorg.
type BuildInfo struct {
	Version string
	Commit  string
}

// IO holds the streams the command reads from and writes to.
type IO struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

// exitError carries an exit code through cobra. Logged errors were already
// shown by the logger and are not printed again.
type exitError struct {
	code   int
	err    error
	logged bool
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// NewRootCmd creates the texorg command with every flag registered.
func NewRootCmd(info BuildInfo, streams IO) *cobra.Command {
	cfg := config.DefaultConfig()
	root := &cobra.Command{
		Use:   "texorg [path]",
		Short: "Organize the texture outputs from FFXIV TexTools into a more usable format",
		Long: "texorg sorts the images exported by FFXIV TexTools into one folder per\n" +
			"body or garment part, next to the exported .fbx, and gives them readable\n" +
			"names such as chest_b_albedo.png.",
		Args:    cobra.MaximumNArgs(1),
		Version: fmt.Sprintf("%s (%s)", info.Version, info.Commit),
		// Errors are printed by Execute with the right exit code.
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(streams.In)
	root.SetOut(streams.Out)
	root.SetErr(streams.ErrOut)

	binding := config.BindFlags(root.Flags(), &cfg)
	root.RunE = func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), &cfg, binding, args, info, streams)
	}
	return root
}

// Execute runs texorg on the process streams and returns the exit code.
func Execute(info BuildInfo) int {
	root := NewRootCmd(info, IO{In: os.Stdin, Out: os.Stdout, ErrOut: os.Stderr})
	return executeCmd(root, os.Stderr)
}

func executeCmd(root *cobra.Command, errOut io.Writer) int {
	err := root.Execute()
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if !ee.logged {
			fmt.Fprintf(errOut, "texorg: %v\n", ee.err)
		}
		return ee.code
	}
	// Flag parsing and argument count errors come straight from cobra.
	fmt.Fprintf(errOut, "texorg: %v\n", err)
	return exitUserError
}

func run(ctx context.Context, cfg *config.Config, binding *config.Binding, args []string, info BuildInfo, s IO) error {
	// Phase 1: Bootstrap. No logger yet; errors are printed by Execute.
	if err := binding.Finish(args); err != nil {
		return &exitError{code: exitUserError, err: err}
	}
	if err := cfg.Validate(); err != nil {
		return &exitError{code: exitUserError, err: err}
	}
	log, err := logging.NewLoggerTo(cfg, s.Out, s.ErrOut)
	if err != nil {
		return &exitError{code: exitUserError, err: err}
	}
	defer log.Close()

	if cfg.ShowCodes {
		display.PrintCodes(s.Out)
		return nil
	}

	// Phase 2: Logger available. Resolve the source folder, asking for it
	// when no path was given.
	p := prompt.New(s.In, s.Out, cfg.AssumeYes)
	if cfg.PauseOnExit {
		defer p.Wait("Press Enter to exit...")
	}
	if log.Verbosity() >= config.VerbosityInfo {
		display.PrintBanner(s.Out, info.Version)
	}
	if _, err := check.ResolveSource(cfg, p); err != nil {
		log.Error("%v", err)
		return &exitError{code: exitUserError, err: err, logged: true}
	}

	// Phase 3: Signal handling. Cancel the context on SIGINT/SIGTERM so the
	// pipeline stops between files.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Received interrupt, finishing current file...")
			cancel()
		case <-ctx.Done():
		}
	}()

	// Phase 4: Run the batch.
	rep := report.New(info.Version)
	stats, runErr := pipeline.Run(ctx, cfg, log, p)
	if runErr != nil {
		log.Error("%v", runErr)
	}

	if cfg.ReportFile != "" {
		rep.Fill(cfg, &stats)
		if err := rep.Write(cfg.ReportFile); err != nil {
			log.Error("%v", err)
			if runErr == nil {
				runErr = err
			}
		} else {
			log.Info("Report written to %s", cfg.ReportFile)
		}
	}

	if runErr != nil {
		return &exitError{code: exitSysError, err: runErr, logged: true}
	}
	if stats.Failed > 0 {
		return &exitError{code: exitSysError, err: fmt.Errorf("%d file(s) failed", stats.Failed), logged: true}
	}
	return nil
}

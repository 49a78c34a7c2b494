// Package runner invokes the export pipeline as an external process on
// behalf of the dashboard.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"time"
)

// TailLength is how much captured output is reported back
const TailLength = 2000

// waitDelay bounds how long output pipes are drained after the process is
// killed
const waitDelay = 2 * time.Second

// Command is a program and its arguments
type Command struct {
	Path string
	Args []string
	Dir  string
}

func (c Command) String() string {
	return fmt.Sprintf("%s %v", c.Path, c.Args)
}

// Result is the outcome of a finished command. ExitCode is -1 when the
// process could not be started or was killed.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// Success reports whether the command exited with status zero
func (r *Result) Success() bool {
	return r.ExitCode == 0
}

// OutputTail returns the last TailLength characters of the most relevant
// stream: stdout on success, stderr (or stdout when stderr is empty) on
// failure
func (r *Result) OutputTail() string {
	out := r.Stdout
	if !r.Success() && r.Stderr != "" {
		out = r.Stderr
	}
	return Tail(out, TailLength)
}

// Tail returns the last n characters of s
func Tail(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[len(runes)-n:])
}

// CommandRunner runs a command to completion and captures its output
type CommandRunner interface {
	Run(ctx context.Context, cmd Command) (*Result, error)
}

// ExecRunner runs commands as child processes
type ExecRunner struct {
	Logger *slog.Logger
}

// Run starts cmd and waits for it. A non-zero exit is reported through
// Result, not as an error; the error is reserved for processes that could
// not be started or were cut short by ctx.
func (r ExecRunner) Run(ctx context.Context, cmd Command) (*Result, error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var stdout, stderr bytes.Buffer
	c := exec.CommandContext(ctx, cmd.Path, cmd.Args...)
	c.Dir = cmd.Dir
	c.Stdout = &stdout
	c.Stderr = &stderr
	c.WaitDelay = waitDelay

	start := time.Now()
	err := c.Run()
	res := &Result{
		ExitCode: -1,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		res.ExitCode = 0
	case ctx.Err() != nil:
		logger.Error("Command cancelled", "command", cmd.String(), "error", ctx.Err())
		return res, fmt.Errorf("command %s did not finish: %w", cmd.Path, ctx.Err())
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
	default:
		logger.Error("Command failed to start", "command", cmd.String(), "error", err)
		return res, fmt.Errorf("failed to run %s: %w", cmd.Path, err)
	}

	logger.Info("Command finished", "command", cmd.String(), "exit_code", res.ExitCode,
		"duration_ms", res.Duration.Milliseconds())
	return res, nil
}

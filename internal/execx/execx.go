// Package execx executes external commands for the scaffolding pipeline.
//
// Every invocation is synchronous and all-or-nothing: output is captured,
// not streamed, and there is no retry. The package returns structured
// results and errors rather than terminating the process itself; the
// decision to abort the whole run on a failed command belongs to the
// orchestrator in internal/cli. This keeps the exit policy at the top
// level and lets tests drive commands without guarding against os.Exit.
package execx

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Result captures the outcome of one executed external command.
// It is transient: callers consume it immediately to decide
// success or failure and to surface diagnostics.
type Result struct {
	// Stdout is the captured standard output.
	Stdout string

	// Stderr is the captured standard error.
	Stderr string

	// ExitCode is the command's exit status. Zero on success.
	ExitCode int
}

// CommandError describes a command that exited non-zero or failed to
// start. It retains the full command line and the captured result so the
// CLI can report exactly what failed and what the command said.
type CommandError struct {
	// Cmd is the command line that was executed, formatted for display.
	Cmd string

	// Result holds the captured output and exit status. Nil if the
	// command could not be started at all.
	Result *Result

	// Err is the underlying error from os/exec.
	Err error
}

// Error satisfies the error interface. The captured stderr is folded into
// the message because it is usually the only useful diagnostic from a
// failed pip or git invocation.
func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command %q failed", e.Cmd)
	if e.Result != nil {
		if stderr := strings.TrimSpace(e.Result.Stderr); stderr != "" {
			msg = fmt.Sprintf("%s: %s", msg, stderr)
		}
	}
	return msg
}

// Unwrap returns the underlying os/exec error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// Run executes a command in the given working directory and waits for it
// to finish. Stdout and stderr are captured separately so stderr can be
// included in error messages while stdout is returned on success.
//
// On a non-zero exit the returned error is a *CommandError carrying the
// command line and the full Result. The Result is also returned alongside
// the error so callers can inspect partial output. There is no timeout:
// a hung command hangs the run, matching the fire-and-forget contract.
func Run(ctx context.Context, dir string, name string, args ...string) (*Result, error) {
	// #nosec G204 -- command names and arguments are constructed
	// internally, not taken from untrusted input
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
		// -1 when the command never started (e.g. binary not found),
		// so there is no exit status to report.
		ExitCode: -1,
	}
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}

	if err != nil {
		return result, &CommandError{
			Cmd:    DisplayName(name, args...),
			Result: result,
			Err:    err,
		}
	}
	return result, nil
}

// DisplayName formats a command and its arguments as a single string for
// diagnostics, the way a user would type it in a shell.
func DisplayName(name string, args ...string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}

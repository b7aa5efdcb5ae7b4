// Package runner invokes kernel executables with a bounded wall-clock budget.
package runner

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"
)

// Status tags the three possible invocation outcomes.
type Status int

const (
	// Completed means the process ran to exit within the time budget.
	// The exit code may still be non-zero; the caller decides disposition.
	Completed Status = iota
	// TimedOut means the budget expired and the process was killed.
	TimedOut
	// LaunchFailed means the process never started (missing or
	// unexecutable binary). Fatal to the whole run.
	LaunchFailed
)

// killGracePeriod bounds how long we wait for pipes to drain after the
// context kills a child. Without it a kernel that leaks the pipe to a
// grandchild could block Wait forever.
const killGracePeriod = 5 * time.Second

// Outcome captures everything observed from one invocation.
type Outcome struct {
	Status   Status
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error // populated for LaunchFailed
}

// Run executes the kernel with the given argument vector, blocking until it
// exits, the timeout expires, or ctx is cancelled. Timed-out processes are
// terminated, never left orphaned.
func Run(ctx context.Context, executable string, args []string, timeout time.Duration) Outcome {
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, executable, args...)
	cmd.WaitDelay = killGracePeriod

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return Outcome{Status: LaunchFailed, Err: err}
	}

	err := cmd.Wait()

	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return Outcome{Status: TimedOut, Stdout: stdout.String(), Stderr: stderr.String()}
	}

	outcome := Outcome{
		Status: Completed,
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			outcome.ExitCode = exitErr.ExitCode()
		} else {
			// Wait failed for a non-exit reason (I/O on the pipes);
			// report it the same way as a failed launch.
			return Outcome{Status: LaunchFailed, Err: err}
		}
	}
	return outcome
}

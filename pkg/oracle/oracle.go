// Package oracle validates candidate implementations against a stored
// corpus by driving them as subprocesses.
//
// For each case the harness launches the candidate, writes the full input
// payload to its standard input, closes the pipe so the candidate observes
// end-of-input (candidates may be internally concurrent and only start
// producing output once the input is complete), reads standard output until
// the process exits, and compares the captured output byte-for-byte against
// the stored expectation.
//
// Comparison is exact and newline-sensitive: an output differing only by a
// missing trailing newline is a mismatch. Validation is fail-fast — the
// first failing case stops the run with both payloads reported in full.
//
// Two failure modes are kept distinct because they need different
// remediation: a [*ProcessError] (abnormal exit, broken pipe, timeout) and
// a content mismatch recorded on the [Verdict].
package oracle

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/matzehuels/caseforge/pkg/corpus"
)

// DefaultTimeout bounds a single candidate invocation. An unresponsive
// candidate is force-killed once the deadline passes instead of hanging
// the harness indefinitely.
const DefaultTimeout = 30 * time.Second

// ErrNoCommand is returned when a Harness has an empty command line.
var ErrNoCommand = errors.New("no candidate command configured")

// ErrCaseMissing is returned when the corpus has no case at a requested index.
var ErrCaseMissing = errors.New("corpus case missing")

// ProcessError reports a process-level failure of the candidate, as opposed
// to a content mismatch: non-zero exit, a broken pipe, or a timeout kill.
type ProcessError struct {
	Case     int    // failing case index
	ExitCode int    // -1 when the process did not exit normally
	Stderr   string // captured standard error, for diagnosis
	TimedOut bool
	Err      error
}

// Error implements the error interface.
func (e *ProcessError) Error() string {
	if e.TimedOut {
		return fmt.Sprintf("case %d: candidate timed out", e.Case)
	}
	return fmt.Sprintf("case %d: candidate process failed (exit %d): %v", e.Case, e.ExitCode, e.Err)
}

// Unwrap returns the underlying execution error.
func (e *ProcessError) Unwrap() error { return e.Err }

// Harness runs one candidate process per case, sequentially.
type Harness struct {
	// Command is the candidate command line (argv). The candidate receives
	// no arguments beyond those identifying which task it implements.
	Command []string
	// Timeout bounds each invocation; DefaultTimeout when zero.
	Timeout time.Duration
}

// Run executes the candidate once: writes input to its stdin, closes the
// pipe, and returns the complete stdout. Process-level failures come back
// as a *ProcessError with Case left zero for the caller to fill in.
func (h *Harness) Run(ctx context.Context, input []byte) ([]byte, error) {
	if len(h.Command) == 0 {
		return nil, ErrNoCommand
	}

	timeout := h.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, h.Command[0], h.Command[1:]...)

	var stdout, stderr bytes.Buffer
	cmd.Stdin = bytes.NewReader(input) // exec closes stdin at EOF, signaling end-of-input
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		perr := &ProcessError{
			ExitCode: -1,
			Stderr:   stderr.String(),
			TimedOut: errors.Is(ctx.Err(), context.DeadlineExceeded),
			Err:      err,
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			perr.ExitCode = exitErr.ExitCode()
		}
		return nil, perr
	}

	return stdout.Bytes(), nil
}

// Verdict is the outcome of a validation run.
type Verdict struct {
	Task     string
	CasesRun int // cases executed, including the failing one
	Pass     bool

	// Populated on content mismatch: the failing case index plus both
	// payloads in full.
	Failed   int
	Expected []byte
	Actual   []byte
}

// Verify runs the candidate against cases 1..cases of the stored corpus,
// failing fast: the first mismatch stops the run with both payloads on the
// Verdict; the first process or storage failure aborts with an error.
func Verify(ctx context.Context, h *Harness, store corpus.Store, task string, cases int) (*Verdict, error) {
	v := &Verdict{Task: task}

	for idx := 1; idx <= cases; idx++ {
		c, ok, err := store.ReadCase(ctx, task, idx)
		if err != nil {
			return nil, fmt.Errorf("read case %d: %w", idx, err)
		}
		if !ok {
			return nil, fmt.Errorf("task %s case %d: %w", task, idx, ErrCaseMissing)
		}

		actual, err := h.Run(ctx, c.Input)
		if err != nil {
			var perr *ProcessError
			if errors.As(err, &perr) {
				perr.Case = idx
			}
			return nil, err
		}
		v.CasesRun++

		if !bytes.Equal(actual, c.Expected) {
			v.Failed = idx
			v.Expected = c.Expected
			v.Actual = actual
			return v, nil
		}
	}

	v.Pass = true
	return v, nil
}

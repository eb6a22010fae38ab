package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	cferrors "github.com/matzehuels/caseforge/pkg/errors"
	"github.com/matzehuels/caseforge/pkg/oracle"
	"github.com/matzehuels/caseforge/pkg/task"
)

// checkOpts holds the command-line flags for the check command.
type checkOpts struct {
	cases   int           // cases to run; 0 means the task's default count
	timeout time.Duration // per-invocation timeout for the candidate
	store   storeOpts
}

// newCheckCmd creates the check command for validating a candidate against a
// stored corpus. The candidate command line follows a "--" separator; it is
// launched once per case with the input payload on stdin.
func newCheckCmd() *cobra.Command {
	var opts checkOpts

	cmd := &cobra.Command{
		Use:   "check <task> -- <candidate command...>",
		Short: "Validate a candidate command against a stored corpus",
		Long: `Run the candidate once per stored case, feeding the input payload on
stdin and comparing stdout byte for byte against the stored expectation.
Validation is fail-fast: the first mismatch stops the run and reports both
payloads in full. A process failure (crash, non-zero exit, timeout) is
reported separately from a wrong answer.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dash := cmd.ArgsLenAtDash()
			if dash != 1 || len(args) < 2 {
				return cferrors.New(cferrors.ErrCodeInvalidConfig,
					"usage: check <task> -- <candidate command...>")
			}
			return runCheck(cmd.Context(), args[0], args[1:], &opts)
		},
	}

	cmd.Flags().IntVar(&opts.cases, "cases", 0, "cases to run (0 = task default)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", oracle.DefaultTimeout, "per-case candidate timeout")
	opts.store.register(cmd, "corpus")

	return cmd
}

// runCheck drives the oracle harness and renders the verdict.
func runCheck(ctx context.Context, taskName string, candidate []string, opts *checkOpts) error {
	logger := loggerFromContext(ctx)

	t, ok := task.Lookup(taskName)
	if !ok {
		return cferrors.New(cferrors.ErrCodeInvalidTask, "unknown task %q", taskName)
	}
	cases := opts.cases
	if cases == 0 {
		cases = t.Cases
	}

	store, err := opts.store.open(ctx)
	if err != nil {
		return cferrors.Wrap(cferrors.ErrCodeStorage, err, "open store")
	}
	defer store.Close()

	printInfo("checking %s against %s (%d cases)",
		StyleValue.Render(strings.Join(candidate, " ")),
		StyleHighlight.Render(t.Name), cases)

	h := &oracle.Harness{Command: candidate, Timeout: opts.timeout}
	prog := newProgress(logger)
	verdict, err := oracle.Verify(ctx, h, store, t.Name, cases)
	if err != nil {
		var perr *oracle.ProcessError
		if errors.As(err, &perr) {
			printError("case %d: candidate process failed", perr.Case)
			if perr.TimedOut {
				printDetail("timed out after %s", opts.timeout)
			} else {
				printDetail("exit code %d", perr.ExitCode)
			}
			if perr.Stderr != "" {
				printDetail("stderr: %s", strings.TrimSpace(perr.Stderr))
			}
			return cferrors.Wrap(cferrors.ErrCodeProcessFailure, err, "candidate failed")
		}
		return err
	}
	prog.done(fmt.Sprintf("ran %d cases", verdict.CasesRun))

	if !verdict.Pass {
		printError("case %d: output mismatch", verdict.Failed)
		printDetail("expected: %q", verdict.Expected)
		printDetail("actual:   %q", verdict.Actual)
		return cferrors.New(cferrors.ErrCodeContentMismatch,
			"case %d: output mismatch", verdict.Failed)
	}

	printSuccess("%s: all %s cases passed",
		StyleHighlight.Render(t.Name),
		StyleNumber.Render(fmt.Sprintf("%d", verdict.CasesRun)))
	return nil
}

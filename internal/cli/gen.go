package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/caseforge/pkg/corpus"
	cferrors "github.com/matzehuels/caseforge/pkg/errors"
	"github.com/matzehuels/caseforge/pkg/graph"
	"github.com/matzehuels/caseforge/pkg/task"
)

const defaultSeed = 42 // default run seed for reproducible corpora

// genOpts holds the command-line flags for the gen command.
type genOpts struct {
	seed    uint64    // run seed; every case is a pure function of (seed, idx)
	cases   int       // case count override; 0 means per-task default
	profile string    // optional TOML profile path
	dryRun  bool      // generate and hash, but discard payloads
	store   storeOpts // file or Redis backend
}

// newGenCmd creates the gen command for synthesizing corpora.
// With no arguments it generates every registered task; otherwise only the
// named tasks. A TOML profile can override the seed, output directory, and
// per-task case counts.
func newGenCmd() *cobra.Command {
	var opts genOpts

	cmd := &cobra.Command{
		Use:   "gen [task...]",
		Short: "Generate seeded test corpora",
		Long: `Generate deterministic (input, expected-output) corpora for the named
tasks, or for every registered task when none are named. Rerunning with the
same seed reproduces the corpus byte for byte; the written manifest records
per-case hashes so reproduction can be verified without diffing payloads.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var prof *task.Profile
			if opts.profile != "" {
				p, err := task.LoadProfile(opts.profile)
				if err != nil {
					return cferrors.Wrap(cferrors.ErrCodeInvalidProfile, err, "load profile")
				}
				if !cmd.Flags().Changed("seed") && p.Seed != 0 {
					opts.seed = p.Seed
				}
				if !cmd.Flags().Changed("dir") && p.Out != "" {
					opts.store.dir = p.Out
				}
				prof = p
			}
			return runGen(cmd.Context(), args, prof, &opts)
		},
	}

	cmd.Flags().Uint64Var(&opts.seed, "seed", defaultSeed, "run seed")
	cmd.Flags().IntVar(&opts.cases, "cases", 0, "cases per task (0 = task default)")
	cmd.Flags().StringVar(&opts.profile, "profile", "", "TOML generation profile")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "generate without storing payloads")
	opts.store.register(cmd, "corpus")

	return cmd
}

// runGen generates the selected tasks into the configured store, writing a
// per-task manifest next to the payload files when the file store is in use.
func runGen(ctx context.Context, names []string, prof *task.Profile, opts *genOpts) error {
	logger := loggerFromContext(ctx)

	tasks, err := selectTasks(names)
	if err != nil {
		return err
	}

	store, err := openGenStore(ctx, opts)
	if err != nil {
		return cferrors.Wrap(cferrors.ErrCodeStorage, err, "open store")
	}
	defer store.Close()

	for _, t := range tasks {
		// Profile-wide seed and output resolution happened at flag time;
		// only per-task overrides apply here.
		seed, cases := opts.seed, opts.cases
		if prof != nil {
			if tp, ok := prof.Tasks[t.Name]; ok && tp.Seed != 0 {
				seed = tp.Seed
			}
			if cases == 0 {
				cases = prof.CasesFor(t)
			}
		}

		logger.Debug("generating", "task", t.Name, "seed", seed)
		prog := newProgress(logger)
		m, err := t.Run(ctx, store, seed, cases)
		if err != nil {
			return wrapGenError(err)
		}
		prog.done(fmt.Sprintf("generated %d cases for %s", m.Cases, t.Name))

		printSuccess("%s: %s cases (seed %s)",
			StyleHighlight.Render(t.Name),
			StyleNumber.Render(fmt.Sprintf("%d", m.Cases)),
			StyleNumber.Render(fmt.Sprintf("%d", seed)))

		if fs, ok := store.(*corpus.FileStore); ok {
			path := filepath.Join(fs.Dir(), t.Name, "manifest.json")
			if err := m.WriteFile(path); err != nil {
				return cferrors.Wrap(cferrors.ErrCodeStorage, err, "write manifest")
			}
			printFile(path)
		}
	}

	if opts.dryRun {
		printInfo("dry run: no payloads stored")
	}
	return nil
}

// wrapGenError maps generation failures onto the structured taxonomy:
// infeasible parameters are configuration errors, a cycle slipping through
// synthesis is a fatal structural failure.
func wrapGenError(err error) error {
	switch {
	case errors.Is(err, graph.ErrGraphHasCycle):
		return cferrors.Wrap(cferrors.ErrCodeStructuralInvariant, err, "generation aborted")
	case errors.Is(err, graph.ErrTooManyEdges),
		errors.Is(err, graph.ErrTooFewVertices),
		errors.Is(err, graph.ErrNegativeEdges),
		errors.Is(err, graph.ErrInvalidWeight):
		return cferrors.Wrap(cferrors.ErrCodeInvalidConfig, err, "generation rejected")
	}
	return err
}

// selectTasks resolves command arguments to registry entries; no arguments
// means every registered task.
func selectTasks(names []string) ([]*task.Task, error) {
	if len(names) == 0 {
		return task.All, nil
	}
	tasks := make([]*task.Task, 0, len(names))
	for _, name := range names {
		t, ok := task.Lookup(name)
		if !ok {
			return nil, cferrors.New(cferrors.ErrCodeInvalidTask, "unknown task %q", name)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// openGenStore picks the destination store, honoring --dry-run.
func openGenStore(ctx context.Context, opts *genOpts) (corpus.Store, error) {
	if opts.dryRun {
		return corpus.NewNullStore(), nil
	}
	return opts.store.open(ctx)
}

package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/caseforge/pkg/corpus"
	cferrors "github.com/matzehuels/caseforge/pkg/errors"
	"github.com/matzehuels/caseforge/pkg/task"
)

func TestRunGenFileStore(t *testing.T) {
	dir := t.TempDir()
	opts := &genOpts{seed: 7, cases: 2, store: storeOpts{dir: dir}}

	if err := runGen(context.Background(), []string{"sumsquares"}, nil, opts); err != nil {
		t.Fatalf("runGen() error: %v", err)
	}

	for _, name := range []string{"test_1.in", "test_1.ans", "test_2.in", "test_2.ans", "manifest.json"} {
		if _, err := os.Stat(filepath.Join(dir, "sumsquares", name)); err != nil {
			t.Errorf("missing output file %s: %v", name, err)
		}
	}

	m, err := corpus.ReadManifest(filepath.Join(dir, "sumsquares", "manifest.json"))
	if err != nil {
		t.Fatalf("ReadManifest() error: %v", err)
	}
	if m.Task != "sumsquares" || m.Seed != 7 || m.Cases != 2 {
		t.Errorf("manifest = task %q seed %d cases %d", m.Task, m.Seed, m.Cases)
	}
}

func TestRunGenUnknownTask(t *testing.T) {
	opts := &genOpts{seed: 1, store: storeOpts{dir: t.TempDir()}}

	err := runGen(context.Background(), []string{"nope"}, nil, opts)
	if !cferrors.Is(err, cferrors.ErrCodeInvalidTask) {
		t.Errorf("error = %v, want INVALID_TASK", err)
	}
}

func TestRunGenDryRun(t *testing.T) {
	dir := t.TempDir()
	opts := &genOpts{seed: 3, cases: 1, dryRun: true, store: storeOpts{dir: dir}}

	if err := runGen(context.Background(), []string{"sumsquares"}, nil, opts); err != nil {
		t.Fatalf("runGen() error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "sumsquares")); !os.IsNotExist(err) {
		t.Error("dry run should not write any files")
	}
}

func TestRunGenProfileOverrides(t *testing.T) {
	dir := t.TempDir()
	prof := &task.Profile{
		Seed:  100,
		Tasks: map[string]task.TaskProfile{"sumsquares": {Cases: 3}},
	}
	opts := &genOpts{seed: defaultSeed, store: storeOpts{dir: dir}}
	// Flag resolution applies the profile-wide seed before runGen.
	opts.seed = prof.Seed

	if err := runGen(context.Background(), []string{"sumsquares"}, prof, opts); err != nil {
		t.Fatalf("runGen() error: %v", err)
	}

	m, err := corpus.ReadManifest(filepath.Join(dir, "sumsquares", "manifest.json"))
	if err != nil {
		t.Fatalf("ReadManifest() error: %v", err)
	}
	if m.Seed != 100 {
		t.Errorf("Seed = %d, want profile seed 100", m.Seed)
	}
	if m.Cases != 3 {
		t.Errorf("Cases = %d, want profile override 3", m.Cases)
	}
}

func TestSelectTasksDefaultsToAll(t *testing.T) {
	tasks, err := selectTasks(nil)
	if err != nil {
		t.Fatalf("selectTasks() error: %v", err)
	}
	if len(tasks) != len(task.All) {
		t.Errorf("got %d tasks, want the whole registry (%d)", len(tasks), len(task.All))
	}
}

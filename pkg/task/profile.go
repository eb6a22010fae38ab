package task

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Profile is a TOML-backed generation profile overriding per-task defaults.
//
// Example:
//
//	seed = 42
//	out = "corpus"
//
//	[tasks.shortest]
//	cases = 25
//
//	[tasks.sumsquares]
//	cases = 10
//	seed = 7
type Profile struct {
	Seed  uint64                 `toml:"seed"`
	Out   string                 `toml:"out"`
	Tasks map[string]TaskProfile `toml:"tasks"`
}

// TaskProfile holds per-task overrides. Zero values mean "use the default".
type TaskProfile struct {
	Cases int    `toml:"cases"`
	Seed  uint64 `toml:"seed"`
}

// LoadProfile reads and validates a TOML profile. Every task named in the
// profile must exist in the registry; a typo fails the whole profile rather
// than silently generating nothing.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile %s: %w", path, err)
	}

	var p Profile
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}

	for name, tp := range p.Tasks {
		if _, ok := Lookup(name); !ok {
			return nil, fmt.Errorf("profile %s: unknown task %q", path, name)
		}
		if tp.Cases < 0 {
			return nil, fmt.Errorf("profile %s: task %q: negative case count", path, name)
		}
	}
	return &p, nil
}

// CasesFor resolves the case count for a task: profile override first,
// then the task default.
func (p *Profile) CasesFor(t *Task) int {
	if tp, ok := p.Tasks[t.Name]; ok && tp.Cases > 0 {
		return tp.Cases
	}
	return t.Cases
}

// SeedFor resolves the seed for a task: per-task override first, then the
// profile-wide seed.
func (p *Profile) SeedFor(t *Task) uint64 {
	if tp, ok := p.Tasks[t.Name]; ok && tp.Seed != 0 {
		return tp.Seed
	}
	return p.Seed
}

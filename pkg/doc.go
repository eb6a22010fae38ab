// Package pkg provides the core libraries for caseforge corpus generation
// and validation.
//
// # Overview
//
// Caseforge synthesizes deterministic test corpora and validates candidate
// implementations against them. The pkg directory is organized as follows:
//
//   - [sampler] - Seeded random primitives; every draw is a pure function of
//     the seed
//   - [graph] - Graph synthesis: random DAGs, topological relabeling, and
//     adversarial weighted-graph constructors
//   - [task] - The task registry: per-task input generators paired with
//     independent reference computations
//   - [corpus] - Case storage (file, Redis, null) and run manifests
//   - [oracle] - Subprocess validation harness with fail-fast comparison
//   - [render] - Graphviz DOT/SVG rendering of stored graph cases
//   - [errors] - Structured error codes shared across the CLI
//
// # Data Flow
//
// The typical flow through caseforge:
//
//	seed
//	  ↓
//	[sampler] (deterministic draws)
//	  ↓
//	[task] + [graph] (input + reference expectation)
//	  ↓
//	[corpus] (test_<idx>.in / test_<idx>.ans + manifest)
//	  ↓
//	[oracle] (candidate subprocess, byte-exact comparison)
//
// [sampler]: https://pkg.go.dev/github.com/matzehuels/caseforge/pkg/sampler
// [graph]: https://pkg.go.dev/github.com/matzehuels/caseforge/pkg/graph
// [task]: https://pkg.go.dev/github.com/matzehuels/caseforge/pkg/task
// [corpus]: https://pkg.go.dev/github.com/matzehuels/caseforge/pkg/corpus
// [oracle]: https://pkg.go.dev/github.com/matzehuels/caseforge/pkg/oracle
// [render]: https://pkg.go.dev/github.com/matzehuels/caseforge/pkg/render
// [errors]: https://pkg.go.dev/github.com/matzehuels/caseforge/pkg/errors
package pkg

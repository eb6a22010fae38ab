// Package graph implements the structural test-case synthesizers: random
// DAG construction, topological relabeling, and adversarial weighted-graph
// generation.
//
// All constructors draw from an explicit [sampler.Sampler], so a graph is a
// pure function of its seed. Acyclicity of synthesized DAGs is guaranteed
// by construction (edges are only sampled consistent with a hidden random
// total order) and re-checked where downstream consumers depend on it.
//
// # Relabeling
//
// [ReverseRankRelabel] deliberately decouples vertex identity from
// topological rank: the vertex that is i-th in topological order receives
// the new label N-1-i. Every rewritten edge therefore goes from a higher
// label to a lower label, so candidates under test cannot assume that
// processing vertices in increasing label order respects dependencies.
// Downstream consumers rely on this as an adversarial property.
//
// # Adversarial construction
//
// Worst-case topologies for label-correcting shortest-path algorithms are
// pluggable via the [Adversary] interface; [LadderAdversary] is the stock
// strategy, shaped to force repeated re-relaxation in SPFA-family solvers.
package graph

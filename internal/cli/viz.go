package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	cferrors "github.com/matzehuels/caseforge/pkg/errors"
	"github.com/matzehuels/caseforge/pkg/render"
)

// vizOpts holds the command-line flags for the viz command.
type vizOpts struct {
	output    string // output path; derived from task and case when empty
	format    string // "svg" or "dot"
	weighted  bool   // label edges with weights
	highlight int    // vertex to highlight; default is the header's source
	// highlightSet records whether --highlight was given explicitly, so the
	// default can follow the parsed source vertex instead of a fixed value.
	highlightSet bool
	store        storeOpts
}

// newVizCmd creates the viz command for rendering a stored graph case.
// It reads the case's input payload, parses the edge-list wire format, and
// writes Graphviz DOT or rendered SVG. Only graph-shaped tasks (those whose
// inputs are edge lists) can be visualized.
func newVizCmd() *cobra.Command {
	opts := vizOpts{format: "svg", weighted: true, highlight: -1}

	cmd := &cobra.Command{
		Use:   "viz <task> <case>",
		Short: "Render a stored graph case as DOT or SVG",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := strconv.Atoi(args[1])
			if err != nil {
				return cferrors.New(cferrors.ErrCodeInvalidConfig, "case index %q is not a number", args[1])
			}
			if opts.format != "svg" && opts.format != "dot" {
				return cferrors.New(cferrors.ErrCodeInvalidConfig, "invalid format %q (must be 'svg' or 'dot')", opts.format)
			}
			opts.highlightSet = cmd.Flags().Changed("highlight")
			return runViz(cmd.Context(), args[0], idx, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default <task>_test_<case>.<format>)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), dot")
	cmd.Flags().BoolVar(&opts.weighted, "weighted", opts.weighted, "label edges with weights")
	cmd.Flags().IntVar(&opts.highlight, "highlight", opts.highlight, "vertex to highlight (default: the case's source vertex)")
	opts.store.register(cmd, "corpus")

	return cmd
}

// runViz loads the case, parses its edge list, and writes the rendering.
func runViz(ctx context.Context, taskName string, idx int, opts *vizOpts) error {
	logger := loggerFromContext(ctx)

	store, err := opts.store.open(ctx)
	if err != nil {
		return cferrors.Wrap(cferrors.ErrCodeStorage, err, "open store")
	}
	defer store.Close()

	c, ok, err := store.ReadCase(ctx, taskName, idx)
	if err != nil {
		return cferrors.Wrap(cferrors.ErrCodeStorage, err, "read case")
	}
	if !ok {
		return cferrors.New(cferrors.ErrCodeNotFound, "task %s has no case %d", taskName, idx)
	}

	g, source, err := render.ParseEdgeList(bytes.NewReader(c.Input))
	if err != nil {
		return cferrors.Wrap(cferrors.ErrCodeInvalidConfig, err,
			"case %d of %s is not an edge-list input", idx, taskName)
	}
	logger.Debug("parsed graph", "vertices", g.N, "edges", len(g.Edges), "source", source)

	highlight := opts.highlight
	if !opts.highlightSet {
		highlight = source
	}
	dot := render.ToDOT(g, render.Options{Weighted: opts.weighted, Highlight: highlight})

	output := opts.output
	if output == "" {
		output = fmt.Sprintf("%s_test_%d.%s", taskName, idx, opts.format)
	}

	var data []byte
	switch opts.format {
	case "dot":
		data = []byte(dot)
	case "svg":
		data, err = render.SVG(ctx, dot)
		if err != nil {
			return cferrors.Wrap(cferrors.ErrCodeInternal, err, "render SVG")
		}
	}

	if err := os.WriteFile(output, data, 0644); err != nil {
		return cferrors.Wrap(cferrors.ErrCodeStorage, err, "write output")
	}

	printSuccess("rendered %s case %s", StyleHighlight.Render(taskName), StyleNumber.Render(strconv.Itoa(idx)))
	printFile(output)
	return nil
}

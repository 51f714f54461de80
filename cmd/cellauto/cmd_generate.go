// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cellauto/builder"
	"github.com/katalvlaran/cellauto/graphfile"
)

// errUnknownKind is returned for an unknown --kind value.
var errUnknownKind = errors.New("unknown fixture kind")

// generateFlags holds the flags of the generate command.
type generateFlags struct {
	kind   string
	items  int
	layers int
	p      float64
	seed   int64
}

func (c *cli) newGenerateCmd() *cobra.Command {
	var f generateFlags
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a generated graph file to stdout",
		Long: `Generate builds a fixture (chain, ring, layered, complete, random DAG or
random graph) with unit weights and writes it as a YAML graph file.
Random kinds are seeded; layered uses --layers layers of --items items each.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.generate(cmd.OutOrStdout(), f)
		},
	}
	cmd.Flags().StringVar(&f.kind, "kind", "chain", "fixture kind: chain, ring, layered, complete, dag or graph")
	cmd.Flags().IntVar(&f.items, "items", 8, "number of items (per layer for layered)")
	cmd.Flags().IntVar(&f.layers, "layers", 3, "layered: number of layers")
	cmd.Flags().Float64Var(&f.p, "p", 0.3, "relation probability for dag and graph")
	cmd.Flags().Int64Var(&f.seed, "seed", 1, "random seed")

	return cmd
}

// constructor maps a --kind value to a builder constructor.
func constructor(f generateFlags) (builder.Constructor, error) {
	switch f.kind {
	case "chain":
		return builder.Chain(f.items), nil
	case "ring":
		return builder.Ring(f.items), nil
	case "layered":
		widths := make([]int, f.layers)
		for i := range widths {
			widths[i] = f.items
		}
		return builder.Layered(widths...), nil
	case "complete":
		return builder.Complete(f.items), nil
	case "dag":
		return builder.RandomDAG(f.items, f.p), nil
	case "graph":
		return builder.RandomGraph(f.items, f.p), nil
	default:
		return nil, fmt.Errorf("%w %q (want chain, ring, layered, complete, dag or graph)", errUnknownKind, f.kind)
	}
}

// generate executes the generate command.
func (c *cli) generate(out io.Writer, f generateFlags) error {
	cons, err := constructor(f)
	if err != nil {
		return err
	}
	fx, err := builder.Build([]builder.BuilderOption{builder.WithSeed(f.seed)}, cons)
	if err != nil {
		return err
	}
	doc, err := graphfile.FromArena(fx.Cells, fx.Neighborhood)
	if err != nil {
		return err
	}
	data, err := doc.Marshal()
	if err != nil {
		return err
	}
	c.logger.Debug("fixture generated", "kind", f.kind, "items", fx.Len(), "relations", fx.Neighborhood.Size())
	_, err = out.Write(data)

	return err
}

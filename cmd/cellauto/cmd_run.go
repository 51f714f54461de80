// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cellauto/automaton"
	"github.com/katalvlaran/cellauto/follower"
	"github.com/katalvlaran/cellauto/graphfile"
	"github.com/katalvlaran/cellauto/multipass"
)

// runFlags holds the flags of the run command.
type runFlags struct {
	recursive bool
	multipass bool
	minLength int
	maxPasses int
}

func (c *cli) newRunCmd() *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Evaluate a graph file and print the best path",
		Long: `Run loads a YAML graph file, applies the cellular automaton and prints the
best path start, its state, the best path and the run statistics.
With --multipass, disjoint best paths are extracted until none is left.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd.OutOrStdout(), args[0], f)
		},
	}
	cmd.Flags().BoolVar(&f.recursive, "recursive", false, "evaluate with native recursion instead of the explicit stack")
	cmd.Flags().BoolVar(&f.multipass, "multipass", false, "extract disjoint paths repeatedly")
	cmd.Flags().IntVar(&f.minLength, "min-length", 1, "multipass: minimum path length")
	cmd.Flags().IntVar(&f.maxPasses, "max-passes", 0, "multipass: maximum number of paths (0 = unlimited)")

	return cmd
}

// run executes the run command against the graph file.
func (c *cli) run(out io.Writer, file string, f runFlags) error {
	doc, err := graphfile.Load(file)
	if err != nil {
		return err
	}
	g, err := doc.Build()
	if err != nil {
		return err
	}
	c.logger.Debug("graph loaded",
		slog.String("file", file),
		slog.Int("items", len(g.Cells)),
		slog.Int("relations", g.Neighborhood.Size()),
	)

	autoOpts := []automaton.Option{automaton.WithLogger(c.logger)}
	if f.recursive {
		autoOpts = append(autoOpts, automaton.WithRecursion())
	}

	if f.multipass {
		paths, err := multipass.Find(g.Cells, g.Neighborhood,
			multipass.WithLogger(c.logger),
			multipass.WithMinLength(f.minLength),
			multipass.WithMaxPasses(f.maxPasses),
			multipass.WithAutomatonOptions(autoOpts...),
		)
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			fmt.Fprintln(out, "no path start found")
			return nil
		}
		for i, p := range paths {
			fmt.Fprintf(out, "path %d: %s\n", i+1, strings.Join(g.PathNames(p), " -> "))
		}
		return nil
	}

	res, err := automaton.Apply(g.Cells, g.Neighborhood, autoOpts...)
	if err != nil {
		return err
	}
	if !res.Found() {
		fmt.Fprintln(out, "no path start found")
	} else {
		path, err := follower.Follow(g.Cells, g.Neighborhood, res.Start)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "start: %s\n", g.Names[res.Start])
		fmt.Fprintf(out, "state: %g\n", res.State)
		fmt.Fprintf(out, "path: %s\n", strings.Join(g.PathNames(path), " -> "))
	}
	fmt.Fprintf(out, "evaluations: %d, failed: %d, cycles: %d\n",
		res.Stats.Evaluations, res.Stats.Failed, res.Stats.Cycles)

	return nil
}

// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Command iscasbench is the benchmark front end named in spec §6: it loads
// a gate-level netlist, builds its BDD representation, and can report
// statistics, emit a DOT graph, or run a symbolic reachability query
// against the gates it built.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	bdd "github.com/jp-pino/VDSProject"
	"github.com/jp-pino/VDSProject/circuit"
	"github.com/jp-pino/VDSProject/reachability"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.Red("iscasbench: %s", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "iscasbench",
		Short: "Build and query BDDs from ISCAS-style gate-level netlists",
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newBuildCmd(&verbose))
	root.AddCommand(newDotCmd(&verbose))
	root.AddCommand(newStatsCmd(&verbose))
	root.AddCommand(newReachCmd(&verbose))
	return root
}

func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func loadAndBuild(path string, logger *zap.Logger) (*bdd.Manager, *circuit.Netlist, map[int]bdd.ID, error) {
	net, err := circuit.LoadNetlist(afero.NewOsFs(), path)
	if err != nil {
		return nil, nil, nil, err
	}
	mgr := bdd.New(bdd.WithLogger(logger))
	ids, err := circuit.Build(mgr, net, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	return mgr, net, ids, nil
}

func newBuildCmd(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "build <netlist>",
		Short: "Parse and build the BDD for a netlist, printing manager statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(*verbose)
			mgr, _, _, err := loadAndBuild(args[0], logger)
			if err != nil {
				return err
			}
			fmt.Print(mgr.Stats())
			return nil
		},
	}
}

func newDotCmd(verbose *bool) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "dot <netlist>",
		Short: "Build the BDD and write its DOT graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(*verbose)
			mgr, _, ids, err := loadAndBuild(args[0], logger)
			if err != nil {
				return err
			}
			roots := make([]bdd.ID, 0, len(ids))
			for _, id := range ids {
				roots = append(roots, id)
			}
			w := os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				return mgr.PrintDot(f, roots...)
			}
			return mgr.PrintDot(w, roots...)
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output file (default stdout)")
	return cmd
}

func newStatsCmd(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <netlist>",
		Short: "Report structural statistics about the built BDD",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(*verbose)
			mgr, net, ids, err := loadAndBuild(args[0], logger)
			if err != nil {
				return err
			}
			fmt.Printf("Gates:      %d\n", len(net.Gates))
			fmt.Print(mgr.Stats())
			for _, gate := range net.Gates {
				if gate.Kind != "OUTPUT" {
					continue
				}
				id := ids[gate.ID]
				fmt.Printf("Output %d: nodes=%d support=%d\n", gate.ID, len(mgr.FindNodes(id)), len(mgr.FindVars(id)))
			}
			return nil
		},
	}
}

func newReachCmd(verbose *bool) *cobra.Command {
	var statesFlag, inputsFlag, targetFlag string
	cmd := &cobra.Command{
		Use:   "reach <netlist>",
		Short: "Wire built gate outputs as transition functions and report reachability",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(*verbose)
			mgr, _, ids, err := loadAndBuild(args[0], logger)
			if err != nil {
				return err
			}

			stateGates, err := parseIDList(statesFlag)
			if err != nil {
				return err
			}
			inputGates, err := parseIDList(inputsFlag)
			if err != nil {
				return err
			}

			r, err := reachability.New(mgr, len(stateGates), len(inputGates), reachability.WithLogger(logger))
			if err != nil {
				return err
			}
			tau := make([]bdd.ID, len(stateGates))
			for i, g := range stateGates {
				id, ok := ids[g]
				if !ok {
					return fmt.Errorf("gate %d not found in netlist", g)
				}
				tau[i] = id
			}
			if err := r.SetTransitionFunctions(tau); err != nil {
				return err
			}

			ctx := context.Background()
			count := 0
			total := 1 << len(stateGates)
			for v := 0; v < total; v++ {
				bits := bitsOf(v, len(stateGates))
				reachable, err := r.IsReachable(ctx, bits)
				if err != nil {
					return err
				}
				if reachable {
					count++
				}
			}
			fmt.Printf("Reachable states: %d / %d\n", count, total)

			if targetFlag != "" {
				target, err := parseBitList(targetFlag)
				if err != nil {
					return err
				}
				d, err := r.StateDistance(ctx, target)
				if err != nil {
					return err
				}
				fmt.Printf("Distance to %v: %d\n", target, d)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&statesFlag, "states", "", "comma-separated gate ids used as next-state functions")
	cmd.Flags().StringVar(&inputsFlag, "input", "", "comma-separated gate ids; their count sets the number of input variables, the ids themselves are not wired to them")
	cmd.Flags().StringVar(&targetFlag, "target", "", "comma-separated 0/1 bit vector to query the distance of")
	return cmd
}

func parseIDList(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid gate id %q: %w", p, err)
		}
		out[i] = v
	}
	return out, nil
}

func parseBitList(s string) ([]bool, error) {
	parts := strings.Split(s, ",")
	out := make([]bool, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid bit %q: %w", p, err)
		}
		out[i] = v != 0
	}
	return out, nil
}

func bitsOf(v, width int) []bool {
	out := make([]bool, width)
	for i := 0; i < width; i++ {
		out[i] = v&(1<<uint(i)) != 0
	}
	return out
}

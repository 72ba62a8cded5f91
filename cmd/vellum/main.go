// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command vellum is the engine's entrypoint: a cobra root that starts
// the UCI loop by default, plus perft/eval/bench utility subcommands
// for development use outside of a GUI.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"vellum.dev/x/vellum/internal/build"
	"vellum.dev/x/vellum/internal/config"
	"vellum.dev/x/vellum/internal/core"
	"vellum.dev/x/vellum/internal/engine"
	"vellum.dev/x/vellum/internal/eval"
	"vellum.dev/x/vellum/internal/search"
	"vellum.dev/x/vellum/internal/xlog"
)

var (
	configPath string
	verbose    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "vellum",
		Short:   "vellum is a UCI chess engine",
		Version: build.Version,
		// With no subcommand, behave like every other UCI engine binary:
		// start talking UCI on stdin/stdout.
		RunE: runUCI,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "vellum.toml", "path to engine configuration file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging on stderr")

	root.AddCommand(newUCICmd())
	root.AddCommand(newPerftCmd())
	root.AddCommand(newEvalCmd())
	root.AddCommand(newBenchCmd())

	return root
}

func loadConfig() config.Config {
	if verbose {
		xlog.SetLevel(zerolog.DebugLevel)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		xlog.Logger.Fatal().Err(err).Msg("main: loading config")
	}
	cfg.Apply()
	return cfg
}

func newUCICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uci",
		Short: "start the UCI protocol loop (default)",
		RunE:  runUCI,
	}
}

func runUCI(cmd *cobra.Command, args []string) error {
	loadConfig()
	xlog.Logger.Info().Str("version", build.Version).Msg("vellum starting")

	client := engine.New()
	return client.Start()
}

func newPerftCmd() *cobra.Command {
	var depth int
	var fen string

	c := &cobra.Command{
		Use:   "perft",
		Short: "count leaf nodes at a fixed depth from a position",
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := core.ParseFEN(fen)
			if err != nil {
				return err
			}

			divide := core.PerftDivide(pos, depth)
			var total uint64
			for move, nodes := range divide {
				fmt.Printf("%s: %d\n", move, nodes)
				total += nodes
			}
			fmt.Printf("\nnodes searched: %d\n", total)
			return nil
		},
	}

	c.Flags().IntVarP(&depth, "depth", "d", 5, "perft depth")
	c.Flags().StringVarP(&fen, "fen", "f", core.StartFEN, "position to search from")
	return c
}

func newEvalCmd() *cobra.Command {
	var fen string

	c := &cobra.Command{
		Use:   "eval",
		Short: "print the static evaluation of a position",
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := core.ParseFEN(fen)
			if err != nil {
				return err
			}
			fmt.Println(eval.Evaluate(pos))
			return nil
		},
	}

	c.Flags().StringVarP(&fen, "fen", "f", core.StartFEN, "position to evaluate")
	return c
}

// benchPositions is a fixed suite used to catch accidental slowdowns;
// the node count reported for them should stay roughly stable across
// commits that aren't meant to change search behaviour.
var benchPositions = []string{
	core.StartFEN,
	"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
	"rnbqkb1r/pp1p1ppp/2p2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 0 4",
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
}

func newBenchCmd() *cobra.Command {
	var depth int

	c := &cobra.Command{
		Use:   "bench",
		Short: "run a fixed-depth search over a fixed suite and report total nodes",
		RunE: func(cmd *cobra.Command, args []string) error {
			var totalNodes int
			start := time.Now()

			for _, fen := range benchPositions {
				pos, err := core.ParseFEN(fen)
				if err != nil {
					return err
				}

				var nodes int
				ctx := search.NewContext(pos)
				ctx.Report = func(info search.Info) {
					nodes = info.Nodes
				}

				_, score, err := ctx.Search(search.Limits{Depth: depth, Infinite: true})
				if err != nil {
					return err
				}
				totalNodes += nodes
				fmt.Printf("%-70s score %6s\n", fen, score)
			}

			elapsed := time.Since(start)
			nps := 0
			if elapsed > 0 {
				nps = int(float64(totalNodes) / elapsed.Seconds())
			}
			fmt.Printf("\n%d nodes %d nps\n", totalNodes, nps)
			return nil
		},
	}

	c.Flags().IntVarP(&depth, "depth", "d", 10, "search depth per position")
	return c
}

package main

import (
	"flag"
	"fmt"
	"os"

	"vellum.dev/x/vellum/internal/eval"
	"vellum.dev/x/vellum/internal/tune"
)

func main() {
	openings := flag.String("openings", "", "opening book containing a list of fens, one per line")
	output := flag.String("output", "dataset.txt", "output file for the generated fens and results")
	games := flag.Int("games", 10_000, "number of games to generate data for (actual might be less)")
	nodes := flag.Int("nodes", 10_000, "node limit for searches on a single position")
	winThreshold := flag.Int("win-adjudicate-eval", int(eval.Mate-2*eval.MaxDepth), "score past which a game is adjudicated decided")

	flag.Parse()

	cfg := tune.GenConfig{
		OpeningBook:  *openings,
		Output:       *output,
		Games:        *games,
		Nodes:        *nodes,
		WinThreshold: eval.Eval(*winThreshold),
	}

	if err := tune.Generate(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

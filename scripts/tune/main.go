package main

import (
	"fmt"
	"os"

	"vellum.dev/x/vellum/internal/tune"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: tune <dataset-path>")
		os.Exit(1)
	}
	dataPath := os.Args[1]

	fmt.Printf("loading dataset: %s\n", dataPath)
	dataset, err := tune.LoadDataset(dataPath)
	if err != nil {
		fmt.Printf("error loading dataset: %v\n", err)
		return
	}
	fmt.Printf("dataset loaded: %d entries\n", len(dataset))

	termTuner := tune.Tuner{
		Config:  tune.DefaultConfig(),
		Dataset: dataset,
		Params:  tune.DefaultParams(),
	}

	if err := termTuner.Tune(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

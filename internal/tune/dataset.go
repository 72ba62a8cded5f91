// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
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

// Package tune implements a texel-style tuner for vellum's evaluation
// terms and the self-play datagen that feeds it, following the same
// sigmoid-fitted-to-game-result scheme as the teacher's classical
// evaluation tuner.
package tune

import (
	"bufio"
	"math"
	"os"
	"strings"

	"github.com/pkg/errors"

	"vellum.dev/x/vellum/internal/core"
	"vellum.dev/x/vellum/internal/eval"
)

// Entry is a single tuning sample: a position and the eventual result
// of the game it was drawn from, from the perspective of the side to
// move (1 = win, 0.5 = draw, 0 = loss).
type Entry struct {
	FEN    string
	Result float64
}

// LoadDataset reads a newline-delimited dataset written by Generate:
// each line is "[<result>] <fen>", result one of 0.0, 0.5, or 1.0.
func LoadDataset(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "tune: opening dataset %s", path)
	}
	defer f.Close()

	var dataset []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		result, fen, found := strings.Cut(line, " ")
		if !found {
			return nil, errors.Errorf("tune: malformed dataset line %q", line)
		}

		var r float64
		switch result {
		case "[1.0]":
			r = 1.0
		case "[0.5]":
			r = 0.5
		case "[0.0]":
			r = 0.0
		default:
			return nil, errors.Errorf("tune: unknown result tag %q", result)
		}

		dataset = append(dataset, Entry{FEN: fen, Result: r})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "tune: reading dataset")
	}

	return dataset, nil
}

// Sigmoid maps a centipawn evaluation onto the [0, 1] win-probability
// scale, with K controlling its steepness.
func Sigmoid(k, eval float64) float64 {
	return 1.0 / (1.0 + math.Exp(-k*eval/400.0))
}

// staticEval parses and statically evaluates e.FEN. eval.Evaluate is
// already relative to the side to move, matching the perspective
// Entry.Result was recorded in.
func (e Entry) staticEval() (float64, error) {
	pos, err := core.ParseFEN(e.FEN)
	if err != nil {
		return 0, err
	}
	return float64(eval.Evaluate(pos)), nil
}

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

package tune

import (
	"bufio"
	"fmt"
	"os"

	notnilchess "github.com/notnil/chess"
	"github.com/pkg/errors"

	"vellum.dev/x/vellum/internal/core"
	"vellum.dev/x/vellum/internal/eval"
	"vellum.dev/x/vellum/internal/search"
)

// GenConfig controls a self-play data generation run.
type GenConfig struct {
	OpeningBook string // path to a file of one FEN per line
	Output      string // destination file, appended in "[result] fen" lines

	Games int
	Nodes int // node budget per move search

	// WinThreshold adjudicates a game as decided once abs(score)
	// crosses it, so lines aren't spent grinding out forced mates.
	WinThreshold eval.Eval
}

// DefaultGenConfig mirrors the node/threshold defaults the self-play
// generator this package is modeled on used.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Output:       "dataset.txt",
		Games:        10_000,
		Nodes:        10_000,
		WinThreshold: eval.Mate - 2*eval.MaxDepth,
	}
}

// Generate plays Games self-play games from the positions in
// OpeningBook, one after another, and appends the positions reached
// along the way to Output tagged with the eventual game result.
// Positions with the side to move in check are skipped, since a static
// evaluation of them wouldn't be meaningful; positions with a capture
// pending are not filtered out.
func Generate(cfg GenConfig) error {
	book, err := os.Open(cfg.OpeningBook)
	if err != nil {
		return errors.Wrapf(err, "tune: opening book %s", cfg.OpeningBook)
	}
	defer book.Close()

	out, err := os.OpenFile(cfg.Output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, "tune: opening dataset output %s", cfg.Output)
	}
	defer out.Close()
	w := bufio.NewWriter(out)
	defer w.Flush()

	limits := search.Limits{Nodes: cfg.Nodes}

	scanner := bufio.NewScanner(book)
	played := 0
	for played < cfg.Games && scanner.Scan() {
		fen := scanner.Text()
		if fen == "" {
			continue
		}

		if err := playGame(fen, limits, cfg.WinThreshold, w); err != nil {
			return errors.Wrapf(err, "tune: playing game from %q", fen)
		}
		played++
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "tune: reading opening book")
	}

	return w.Flush()
}

// playGame plays out a single game from fen using one search context for
// the whole game, writing every position visited with the side to move
// not in check to w once the game's result is known.
func playGame(fen string, limits search.Limits, winThreshold eval.Eval, w *bufio.Writer) error {
	pos, err := core.ParseFEN(fen)
	if err != nil {
		return err
	}
	// ParseFEN's output round-trips through an independent library as a
	// sanity check that the generated FEN is well-formed.
	if _, err := notnilchess.FEN(pos.FEN()); err != nil {
		return errors.Wrapf(err, "tune: fen %q failed external validation", pos.FEN())
	}

	ctx := search.NewContext(pos)

	type sample struct {
		fen   string
		white bool // true if White was to move in this sample
	}
	var samples []sample

	// whiteResult is the game outcome from White's perspective: 1.0 win,
	// 0.5 draw, 0.0 loss. Each sample is re-expressed relative to its
	// own side to move below, since a game can flip which side is to
	// move between any two recorded positions.
	whiteResult := 0.5

	for {
		if pos.IsDrawn() {
			break
		}

		pv, score, err := ctx.Search(limits)
		if err != nil {
			break
		}

		best := pv.Move(0)
		if best == core.Null {
			break
		}

		relative := score
		if pos.SideToMove == core.Black {
			relative = -relative
		}

		if abs(relative) >= winThreshold {
			whiteResult = 0.5
			switch {
			case relative > 0:
				whiteResult = 1.0
			case relative < 0:
				whiteResult = 0.0
			}
			break
		}

		if !pos.InCheck(pos.SideToMove) {
			samples = append(samples, sample{fen: pos.FEN(), white: pos.SideToMove == core.White})
		}

		pos.Make(best)
	}

	for _, s := range samples {
		result := whiteResult
		if !s.white {
			result = 1.0 - result
		}
		if _, err := fmt.Fprintf(w, "[%.1f] %s\n", result, s.fen); err != nil {
			return err
		}
	}
	return nil
}

func abs(e eval.Eval) eval.Eval {
	if e < 0 {
		return -e
	}
	return e
}

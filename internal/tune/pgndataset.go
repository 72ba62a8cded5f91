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
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/notnil/chess"
	"github.com/pkg/errors"

	"vellum.dev/x/vellum/internal/core"
)

// GenerateFromPGN walks dir for .pgn files, replays each game move by
// move with the notnil/chess PGN reader, and appends every quiet
// position to output tagged with the game's recorded result. Unlike
// Generate, positions come from real games rather than self-play, so
// no search is run; the final move of each game is skipped since its
// result is already baked into the outcome.
func GenerateFromPGN(dir, output string) error {
	out, err := os.OpenFile(output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, "tune: opening dataset output %s", output)
	}
	defer out.Close()
	w := bufio.NewWriter(out)
	defer w.Flush()

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".pgn") {
			return nil
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		return writePGNSamples(f, w)
	})
	if err != nil {
		return errors.Wrap(err, "tune: walking pgn directory")
	}

	return w.Flush()
}

// writePGNSamples replays every game in r move by move, writing every
// quiet position but the last to w tagged with that game's result,
// expressed relative to the position's side to move.
func writePGNSamples(r io.Reader, w *bufio.Writer) error {
	scanner := chess.NewScanner(r)
	for scanner.Scan() {
		game := scanner.Next()

		var result string
		switch game.GetTagPair("Result").Value {
		case "1-0":
			result = "[1.0]"
		case "0-1":
			result = "[0.0]"
		case "1/2-1/2":
			result = "[0.5]"
		default:
			continue
		}

		if err := writeGameSamples(game, result, w); err != nil {
			return err
		}
	}
	return nil
}

func writeGameSamples(game *chess.Game, result string, w *bufio.Writer) error {
	moves := game.Moves()
	pos, err := core.ParseFEN(core.StartFEN)
	if err != nil {
		return err
	}

	for i, gm := range moves {
		if i == len(moves)-1 {
			// the last move's resulting position is where the game
			// ended (mate, resignation, etc); not a useful static
			// evaluation sample
			break
		}

		move, err := convertMove(pos, gm)
		if err != nil {
			return errors.Wrapf(err, "tune: converting pgn move %s", gm)
		}

		pos.Make(move)

		if pos.InCheck(pos.SideToMove) {
			continue
		}

		// result is White's; re-express it for Black-to-move positions
		tag := result
		if pos.SideToMove == core.Black {
			switch result {
			case "[1.0]":
				tag = "[0.0]"
			case "[0.0]":
				tag = "[1.0]"
			}
		}

		if _, err := fmt.Fprintf(w, "%s %s\n", tag, pos.FEN()); err != nil {
			return err
		}
	}

	return nil
}

// convertMove translates a notnil/chess move, whose squares are
// numbered A8=0 across each rank down to H1=63, into a core.Move
// against pos.
func convertMove(pos *core.Position, gm *chess.Move) (core.Move, error) {
	from := chessSquare(gm.S1())
	to := chessSquare(gm.S2())

	piece := pos.PieceAt(from)
	if piece.Type() == core.NoType {
		return core.Null, errors.Errorf("no piece on source square of move %s", gm)
	}

	promo := core.NoType
	switch gm.Promo() {
	case chess.Knight:
		promo = core.Knight
	case chess.Bishop:
		promo = core.Bishop
	case chess.Rook:
		promo = core.Rook
	case chess.Queen:
		promo = core.Queen
	}

	return core.NewMove(from, to, piece.Type(), promo), nil
}

func chessSquare(s chess.Square) core.Square {
	file := core.File(int(s) % 8)
	rank := core.Rank(7 - int(s)/8)
	return core.NewSquare(file, rank)
}

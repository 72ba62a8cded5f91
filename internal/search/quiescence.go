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

package search

import (
	"vellum.dev/x/vellum/internal/core"
	"vellum.dev/x/vellum/internal/eval"
	"vellum.dev/x/vellum/internal/search/tt"
	"vellum.dev/x/vellum/internal/util"
)

// quiescence extends the search along capture/promotion lines past the
// main search's horizon, so a side is never scored right after losing
// material to a capture it hasn't had the chance to recapture.
// https://www.chessprogramming.org/Quiescence_Search
func (s *Context) quiescence(ply int, alpha, beta eval.Eval) eval.Eval {
	s.nodes++

	if s.shouldStop() {
		return 0
	}

	if s.Pos.IsFiftyMoveDraw() || s.Pos.Repetitions() >= 2 {
		return s.draw()
	}

	standPat := s.score()
	if standPat >= beta {
		return standPat
	}
	alpha = util.Max(alpha, standPat)

	if entry, hit := s.tt.Probe(s.Pos.Hash); hit {
		value := entry.Value.Eval(ply)
		switch entry.Type {
		case tt.ExactEntry:
			return value
		case tt.LowerBound:
			if value >= beta {
				return value
			}
		case tt.UpperBound:
			if value <= alpha {
				return value
			}
		}
	}

	inCheck := s.Pos.InCheck(s.Pos.SideToMove)

	var moves []core.Move
	if inCheck {
		// in check, quiescence must consider every legal reply: there is
		// no "quiet" move that doesn't need evaluating for safety.
		moves = s.Pos.GenerateMoves()
		if len(moves) == 0 {
			return eval.MatedIn(ply)
		}
	} else {
		moves = s.Pos.GenerateCaptures()
	}

	endgame := eval.NonPawnPieceCount(s.Pos, core.White)+eval.NonPawnPieceCount(s.Pos, core.Black) <= 2

	best := standPat
	ordered := s.orderMoves(moves, core.Null, ply)
	for _, sm := range ordered {
		m := sm.move

		if !inCheck && !endgame {
			// delta pruning: even winning the target piece plus a safety
			// margin wouldn't reach alpha, so this capture can't help.
			captured := s.Pos.PieceAt(m.To())
			gain := eval.Eval(200)
			if captured != core.NoPiece {
				gain = eval.Eval(captured.Type().Value())
			}
			if standPat+gain+250 < alpha {
				continue
			}
		}

		s.Pos.Make(m)
		score := -s.quiescence(ply+1, -beta, -alpha)
		s.Pos.Unmake()

		if score > best {
			best = score
			if score > alpha {
				alpha = score
				if alpha >= beta {
					break
				}
			}
		}
	}

	return best
}

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
	"sort"

	"vellum.dev/x/vellum/internal/core"
	"vellum.dev/x/vellum/internal/eval"
)

// scoredMove pairs a move with its move-ordering score so the search
// loop can walk moves best-first without re-deriving the score.
type scoredMove struct {
	move  core.Move
	score eval.MoveScore
}

// orderMoves scores every move in moves for ordering purposes (TT move
// first, then MVV/LVA captures, then killers, then history) and returns
// them sorted best-first.
func (s *Context) orderMoves(moves []core.Move, ttMove core.Move, ply int) []scoredMove {
	scored := make([]scoredMove, len(moves))
	for i, m := range moves {
		scored[i] = scoredMove{move: m, score: s.scoreMove(m, ttMove, ply)}
	}
	sort.Slice(scored, func(i, j int) bool { return scored[i].score > scored[j].score })
	return scored
}

// scoreMove assigns m its move-ordering priority within the current
// node: the transposition table's move outranks everything, captures
// are ranked by MVV/LVA, then the two killer moves for this ply, then
// quiet moves fall back to their history score.
func (s *Context) scoreMove(m, ttMove core.Move, ply int) eval.MoveScore {
	switch {
	case m == ttMove:
		return eval.PVMove
	case isCapture(s.Pos, m):
		return eval.ScoreCapture(s.Pos, m)
	case m == s.killers[ply][0]:
		return eval.CaptureBase - 1
	case m == s.killers[ply][1]:
		return eval.CaptureBase - 2
	default:
		return eval.QuietBase + s.history[s.Pos.SideToMove][m.From()][m.To()]
	}
}

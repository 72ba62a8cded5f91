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

// negamax is the alpha-beta search that explores the tree rooted at the
// context's current position, returning its value from the side to
// move's perspective. https://www.chessprogramming.org/Negamax
//
// nullAllowed disables null-move pruning (and the repetition-within-
// search-path cutoff) on the line leading up to a null move, since two
// null moves in a row prove nothing.
func (s *Context) negamax(ply, depth int, alpha, beta eval.Eval, nullAllowed bool, pv *core.Variation) eval.Eval {
	s.nodes++

	isRoot := ply == 0
	isPVNode := beta-alpha != 1

	switch {
	case s.shouldStop():
		return 0

	case !isRoot && s.Pos.IsFiftyMoveDraw():
		return s.draw()

	case !isRoot && s.Pos.Repetitions() >= 2:
		// the position has occurred three times total: a claimable draw.
		return s.draw()

	case !isRoot && nullAllowed && s.Pos.Repetitions() >= 1:
		// a single repeat within the current search line is usually
		// heading for a draw; cut early rather than prove it out.
		return s.draw()
	}

	inCheck := s.Pos.InCheck(s.Pos.SideToMove)
	if inCheck {
		depth++ // check extension: forcing lines are searched deeper
	}

	var ttMove core.Move
	if entry, hit := s.tt.Probe(s.Pos.Hash); hit {
		ttMove = entry.Move
		if !isPVNode && int(entry.Depth) >= depth {
			s.ttHits++
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
	} else if depth > 3 {
		// internal iterative reduction: no hash move to trust, so treat
		// this node as shallower rather than spending a full-depth
		// search ordering moves blindly.
		depth--
	}

	if depth <= 0 || ply >= MaxPly {
		return s.quiescence(ply, alpha, beta)
	}

	moves := s.Pos.GenerateMoves()
	if len(moves) == 0 {
		if inCheck {
			return eval.MatedIn(ply)
		}
		return eval.Draw
	}

	staticEval := s.score()

	if !isPVNode && !inCheck {
		// reverse futility pruning: if the static eval already clears
		// beta by a depth-scaled margin, trust it without searching.
		if depth < 7 && staticEval > beta+eval.Eval(75*depth) {
			return staticEval
		}

		// null-move pruning: if passing still leaves us ahead of beta,
		// the position is probably winning regardless of best play.
		if nullAllowed && staticEval >= beta && depth > 2 &&
			eval.NonPawnPieceCount(s.Pos, s.Pos.SideToMove) >= 2 {
			s.Pos.MakeNull()
			var childPV core.Variation
			score := -s.negamax(ply+1, depth-4, -beta, -beta+1, false, &childPV)
			s.Pos.UnmakeNull()

			if score >= beta {
				return beta
			}
		}
	}

	originalAlpha := alpha
	bestMove := core.Null
	bestEval := -eval.Inf

	ordered := s.orderMoves(moves, ttMove, ply)
	quietsSearched := make([]core.Move, 0, len(moves))

	for i, sm := range ordered {
		m := sm.move
		quiet := !isCapture(s.Pos, m)

		// late move pruning: deep into the quiet move list of an
		// unpromising non-PV node, stop looking entirely.
		if !isPVNode && !inCheck && quiet && i > 3+depth*depth {
			break
		}

		s.Pos.Make(m)

		var childPV core.Variation
		var childScore eval.Eval

		switch {
		case i == 0:
			childScore = -s.negamax(ply+1, depth-1, -beta, -alpha, true, &childPV)

		case quiet && depth > 2 && i > 4:
			reduction := lateMoveReduction(depth, i)
			reducedDepth := util.Max(depth-1-reduction, 1)

			childScore = -s.negamax(ply+1, reducedDepth, -alpha-1, -alpha, true, &childPV)
			if childScore > alpha && reducedDepth < depth-1 {
				childScore = -s.negamax(ply+1, depth-1, -alpha-1, -alpha, true, &childPV)
			}
			if isPVNode && childScore > alpha {
				childScore = -s.negamax(ply+1, depth-1, -beta, -alpha, true, &childPV)
			}

		default:
			childScore = -s.negamax(ply+1, depth-1, -alpha-1, -alpha, true, &childPV)
			if isPVNode && childScore > alpha {
				childScore = -s.negamax(ply+1, depth-1, -beta, -alpha, true, &childPV)
			}
		}

		s.Pos.Unmake()

		if quiet {
			quietsSearched = append(quietsSearched, m)
		}

		if childScore > bestEval {
			bestMove = m
			bestEval = childScore

			if childScore > alpha {
				alpha = childScore
				pv.Update(m, childPV)

				if alpha >= beta {
					if quiet {
						bonus := historyBonus(depth)
						s.storeKiller(ply, m)
						s.updateHistory(m, bonus)
						for _, q := range quietsSearched[:len(quietsSearched)-1] {
							s.updateHistory(q, -bonus)
						}
					}
					break
				}
			}
		}
	}

	if !s.stopped {
		var kind tt.EntryType
		switch {
		case bestEval <= originalAlpha:
			kind = tt.UpperBound
		case bestEval >= beta:
			kind = tt.LowerBound
		default:
			kind = tt.ExactEntry
		}

		s.tt.Store(tt.Entry{
			Hash:  s.Pos.Hash,
			Move:  bestMove,
			Value: tt.EvalFrom(bestEval, ply),
			Depth: uint8(util.Clamp(depth, 0, 255)),
			Type:  kind,
		})
	}

	return bestEval
}

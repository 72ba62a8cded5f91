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

// Package search implements iterative-deepening alpha-beta search with
// quiescence, a transposition table, and move ordering heuristics.
package search

import (
	"errors"

	"vellum.dev/x/vellum/internal/core"
	"vellum.dev/x/vellum/internal/eval"
	searchtime "vellum.dev/x/vellum/internal/search/time"
	"vellum.dev/x/vellum/internal/search/tt"
)

// MaxPly bounds the recursion depth of a single search, matching the ply
// range mate scores are normalised across.
const MaxPly = eval.MaxDepth

// NewContext creates a search Context bound to pos. pos is not copied;
// the context mutates it in place via Make/Unmake during search and
// always leaves it restored to its original state once Search returns.
func NewContext(pos *core.Position) *Context {
	return &Context{
		Pos:     pos,
		tt:      tt.NewTable(16),
		stopped: true,
	}
}

// Context holds the state of a single search: the position being
// searched, the transposition table, move-ordering heuristics, and the
// limits governing when to stop. Reuse a Context across searches of the
// same game (it keeps the transposition table and history heuristics
// warm); start a new one for an unrelated game.
type Context struct {
	Pos *core.Position

	tt *tt.Table

	stopped bool
	limits  Limits

	nodes  int
	ttHits int

	killers [MaxPly + 1][2]core.Move
	history [core.ColorN][core.SquareN][core.SquareN]eval.MoveScore

	// rootPly is reset to zero at the start of every search; nothing in
	// the search reads it.
	rootPly int

	// Report, if set, is called once per completed iterative-deepening
	// iteration so a UCI front end can emit "info depth ..." lines.
	Report func(Info)
}

// Info is a single iterative-deepening iteration's result, handed to
// Context.Report as it completes.
type Info struct {
	Depth int
	Score eval.Eval
	Nodes int
	PV    core.Variation
}

// Limits bounds how long a single Search call may run.
type Limits struct {
	Nodes int // 0 means unlimited
	Depth int // 0 means use MaxPly

	Infinite bool
	Time     searchtime.Manager
}

// Search runs iterative deepening on the context's position until the
// time manager's deadline fires or a node/depth limit is hit, and
// returns the best line found along with its score.
func (s *Context) Search(limits Limits) (core.Variation, eval.Eval, error) {
	if s.Pos.InCheck(s.Pos.SideToMove.Other()) {
		return core.Variation{}, eval.Inf, errors.New("search: position is illegal, side not to move is in check")
	}

	s.start(limits)
	defer s.Stop()

	pv, score := s.iterativeDeepening()
	return pv, score, nil
}

// InProgress reports whether a search is currently running.
func (s *Context) InProgress() bool { return !s.stopped }

// Stop signals the running search to unwind as soon as it next checks.
func (s *Context) Stop() { s.stopped = true }

// ResizeTT reallocates the context's transposition table to mbs
// megabytes, discarding its contents.
func (s *Context) ResizeTT(mbs int) { s.tt.Resize(mbs) }

func (s *Context) start(limits Limits) {
	if limits.Depth <= 0 || limits.Depth > MaxPly {
		limits.Depth = MaxPly
	}
	s.limits = limits

	s.nodes = 0
	s.ttHits = 0
	s.rootPly = 0
	s.killers = [MaxPly + 1][2]core.Move{}

	s.tt.NextEpoch()
	s.stopped = false
	if s.limits.Time != nil {
		s.limits.Time.Start()
	}
}

// shouldStop reports whether the in-progress search must unwind now.
// Node/time limits are only sampled every few nodes to keep the check
// itself from dominating the search at high node rates.
func (s *Context) shouldStop() bool {
	switch {
	case s.stopped:
		return true
	case s.nodes&2047 != 0, s.limits.Infinite:
		return false
	case s.limits.Nodes > 0 && s.nodes > s.limits.Nodes:
		s.Stop()
		return true
	case s.limits.Time != nil && s.limits.Time.Expired():
		s.Stop()
		return true
	default:
		return false
	}
}

// score returns the static evaluation of the context's current position.
func (s *Context) score() eval.Eval {
	return eval.Evaluate(s.Pos)
}

// draw returns the score to use for a position that is a draw.
func (s *Context) draw() eval.Eval {
	return eval.Draw
}

// iterativeDeepening repeatedly searches from depth 1 upward, widening
// an aspiration window around the previous iteration's score, until the
// context is stopped. Only fully completed iterations update the
// returned principal variation; a partial iteration cut short by the
// deadline is discarded, except at depth 1, where there is no earlier
// iteration to fall back on and the partial result is kept.
func (s *Context) iterativeDeepening() (core.Variation, eval.Eval) {
	var pv core.Variation
	var score eval.Eval

	for depth := 1; depth <= s.limits.Depth; depth++ {
		var childPV core.Variation
		childScore := s.aspirationWindow(depth, score, &childPV)

		if s.stopped && depth > 1 {
			// ran out of time mid-iteration; keep the previous iteration's pv
			break
		}

		pv, score = childPV, childScore

		if s.Report != nil {
			s.Report(Info{Depth: depth, Score: score, Nodes: s.nodes, PV: pv})
		}

		if s.stopped {
			break
		}
	}

	return pv, score
}

// aspirationWindow searches depth with a narrow window centered on the
// previous iteration's score, widening and retrying on a fail-high or
// fail-low until the true score is bracketed.
func (s *Context) aspirationWindow(depth int, prevScore eval.Eval, pv *core.Variation) eval.Eval {
	if depth < 4 {
		return s.negamax(0, depth, -eval.Inf, eval.Inf, true, pv)
	}

	window := eval.Eval(25)
	alpha := prevScore - window
	beta := prevScore + window

	for {
		if alpha < -eval.Inf {
			alpha = -eval.Inf
		}
		if beta > eval.Inf {
			beta = eval.Inf
		}

		score := s.negamax(0, depth, alpha, beta, true, pv)
		if s.stopped {
			return score
		}

		switch {
		case score <= alpha:
			alpha -= window
			window *= 2
		case score >= beta:
			beta += window
			window *= 2
		default:
			return score
		}
	}
}

// isCapture reports whether m, about to be played in p, captures a piece
// (including en-passant). Move itself carries no capture flag; the
// answer depends on the position it is about to be played in.
func isCapture(p *core.Position, m core.Move) bool {
	if p.PieceAt(m.To()) != core.NoPiece {
		return true
	}
	return m.Piece() == core.Pawn && m.To() == p.EnPassant
}


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

package eval

import "vellum.dev/x/vellum/internal/core"

// weightScale is the fixed-point denominator used for the endgame weight,
// so blending stays integer arithmetic instead of floats.
const weightScale = 256

// nonPawnWeight is the per-piece-kind weight used by the endgame-weight
// formula: N=B=1, R=2, Q=4.
var nonPawnWeight = [core.PieceTypeN]int{
	core.Knight: 1,
	core.Bishop: 1,
	core.Rook:   2,
	core.Queen:  4,
}

// endgameWeight returns a 0..weightScale value: 0 in the full material
// middlegame, weightScale once neither side has any non-pawn material.
// It is the average of both sides' individual weight = 1 - min(1, m/12).
func endgameWeight(p *core.Position) int {
	white := sideNonPawnMaterial(p, core.White)
	black := sideNonPawnMaterial(p, core.Black)
	return (sideWeight(white) + sideWeight(black)) / 2
}

// NonPawnPieceCount returns how many knights, bishops, rooks, and queens
// c still has on the board. Used by null-move pruning to avoid the
// technique in piece-starved endgames, where zugzwang makes "the
// opponent gets a free move" an unsound assumption.
func NonPawnPieceCount(p *core.Position, c core.Color) int {
	count := 0
	for t := core.Knight; t <= core.Queen; t++ {
		count += p.Pieces(t, c).Count()
	}
	return count
}

func sideNonPawnMaterial(p *core.Position, c core.Color) int {
	m := 0
	for t := core.Knight; t <= core.Queen; t++ {
		m += p.Pieces(t, c).Count() * nonPawnWeight[t]
	}
	return m
}

func sideWeight(m int) int {
	scaled := m * weightScale / 12
	if scaled > weightScale {
		scaled = weightScale
	}
	return weightScale - scaled
}

// blend linearly interpolates between early (middlegame) and end (endgame)
// terms using w, a 0..weightScale endgame weight.
func blend(early, end Eval, w int) Eval {
	return (early*Eval(weightScale-w) + end*Eval(w)) / weightScale
}

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

// Evaluate returns the static score of p from the perspective of its side
// to move: material, phased piece-square tables, mobility, king safety,
// passed pawns, open files, and tempo.
func Evaluate(p *core.Position) Eval {
	w := endgameWeight(p)

	var score [core.ColorN]Eval
	for c := core.White; c <= core.Black; c++ {
		score[c] = material(p, c) + pst(p, c, w) + mobility(p, c) +
			kingSafety(p, c, w) + passedPawns(p, c) + openFiles(p, c)
	}

	us := p.SideToMove
	them := us.Other()

	result := score[us] - score[them]
	result += blend(tempoBonus, 0, w)
	return result
}

func material(p *core.Position, c core.Color) Eval {
	var total Eval
	for t := core.Pawn; t <= core.Queen; t++ {
		total += Eval(p.Pieces(t, c).Count() * t.Value())
	}
	return total
}

func pst(p *core.Position, c core.Color, w int) Eval {
	var total Eval
	for bb := p.Pieces(core.Pawn, c); bb != core.Empty; {
		s := bb.Pop()
		total += blend(mgPawnPST[relativeSquare(s, c)], egPawnPST[relativeSquare(s, c)], w)
	}
	for bb := p.Pieces(core.Knight, c); bb != core.Empty; {
		total += knightPST[relativeSquare(bb.Pop(), c)]
	}
	for bb := p.Pieces(core.Bishop, c); bb != core.Empty; {
		total += bishopPST[relativeSquare(bb.Pop(), c)]
	}
	for bb := p.Pieces(core.Rook, c); bb != core.Empty; {
		total += rookPST[relativeSquare(bb.Pop(), c)]
	}
	for bb := p.Pieces(core.Queen, c); bb != core.Empty; {
		total += queenPST[relativeSquare(bb.Pop(), c)]
	}
	ks := p.KingSquare(c)
	total += blend(mgKingPST[relativeSquare(ks, c)], egKingPST[relativeSquare(ks, c)], w)
	return total
}

// relativeSquare returns s as seen from c's point of view, so every PST
// is written once from White's perspective.
func relativeSquare(s core.Square, c core.Color) core.Square {
	if c == core.White {
		return s
	}
	return mirror(s)
}

func mobility(p *core.Position, c core.Color) Eval {
	occ := p.Occupied()
	own := p.ColorBB(c)
	ring := extendedKingRing(p.KingSquare(c.Other()), c.Other())

	var total Eval
	score := func(t core.PieceType, targets core.Bitboard) {
		targets &^= own
		total += Eval(targets.Count()) * mobilityWeight[t]
		total += Eval((targets & ring).Count()) * kingRingAttackBonus
	}

	for bb := p.Pieces(core.Knight, c); bb != core.Empty; {
		s := bb.Pop()
		score(core.Knight, core.KnightAttacks[s])
	}
	for bb := p.Pieces(core.Bishop, c); bb != core.Empty; {
		s := bb.Pop()
		score(core.Bishop, core.BishopAttacks(s, occ))
	}
	for bb := p.Pieces(core.Rook, c); bb != core.Empty; {
		s := bb.Pop()
		score(core.Rook, core.RookAttacks(s, occ))
	}
	for bb := p.Pieces(core.Queen, c); bb != core.Empty; {
		s := bb.Pop()
		score(core.Queen, core.QueenAttacks(s, occ))
	}

	return total
}

// extendedKingRing is the king's own ring plus up to three squares
// further forward (towards the center), restricted to the king's file
// and its two neighbors — where a mobile enemy piece is most dangerous.
func extendedKingRing(kingSq core.Square, kingColor core.Color) core.Bitboard {
	ring := core.KingAttacks[kingSq] | core.Squares[kingSq]

	var fileBand core.Bitboard
	kf := kingSq.File()
	for f := kf - 1; f <= kf+1; f++ {
		if f < core.FileA || f > core.FileH {
			continue
		}
		fileBand |= core.Files[f]
	}

	extended := ring
	cur := ring
	for i := 0; i < 3; i++ {
		if kingColor == core.White {
			cur = cur << 8
		} else {
			cur = cur >> 8
		}
		cur &= fileBand
		extended |= cur
	}
	return extended
}

func kingSafety(p *core.Position, c core.Color, w int) Eval {
	ks := p.KingSquare(c)
	ring := core.KingAttacks[ks]

	ownPawns := (ring & p.Pieces(core.Pawn, c)).Count()
	empty := (ring &^ p.Occupied()).Count()

	shield := Eval(ownPawns) * pawnShieldBonus
	ringPenalty := blend(-8, -3, w) * Eval(empty)

	return shield + ringPenalty
}

func passedPawns(p *core.Position, c core.Color) Eval {
	them := c.Other()
	oppPawns := p.Pieces(core.Pawn, them)

	var total Eval
	for bb := p.Pieces(core.Pawn, c); bb != core.Empty; {
		s := bb.Pop()
		if isPassed(s, c, oppPawns) {
			distance := int(core.Rank8) - int(s.RelativeRank(c))
			total += passedPawnBonus[distance]
		}
	}
	return total
}

func isPassed(s core.Square, c core.Color, oppPawns core.Bitboard) bool {
	for bb := oppPawns; bb != core.Empty; {
		o := bb.Pop()
		df := int(o.File()) - int(s.File())
		if df < -1 || df > 1 {
			continue
		}
		if isAhead(o, s, c) {
			return false
		}
	}
	return true
}

func isAhead(sq, of core.Square, c core.Color) bool {
	if c == core.White {
		return sq.Rank() > of.Rank()
	}
	return sq.Rank() < of.Rank()
}

func openFiles(p *core.Position, c core.Color) Eval {
	ownPawns := p.Pieces(core.Pawn, c)

	var total Eval
	for t := core.Knight; t <= core.Queen; t++ {
		for bb := p.Pieces(t, c); bb != core.Empty; {
			s := bb.Pop()
			if ownPawns&core.Files[s.File()] == core.Empty {
				total += openFileBonus
			}
		}
	}
	return total
}

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

package core

// IsAttacked reports whether any piece of defender's opponent attacks
// target, short-circuiting on the first match found: sliding rook/queen,
// sliding bishop/queen, knight, king, then pawn.
func (p *Position) IsAttacked(target Square, defender Color) bool {
	them := defender.Other()
	occ := p.Occupied()

	attackers := p.colorBB[them] & (p.pieceBB[Rook] | p.pieceBB[Queen])
	if attackers&RookMask[target] != Empty && RookAttacks(target, occ)&attackers != Empty {
		return true
	}

	attackers = p.colorBB[them] & (p.pieceBB[Bishop] | p.pieceBB[Queen])
	if attackers&BishopMask[target] != Empty && BishopAttacks(target, occ)&attackers != Empty {
		return true
	}

	if p.colorBB[them]&p.pieceBB[Knight]&KnightAttacks[target] != Empty {
		return true
	}

	if p.colorBB[them]&p.pieceBB[King]&KingAttacks[target] != Empty {
		return true
	}

	// pawn attackers: a pawn of "them" attacks target from the squares
	// target's forward diagonals point to from the defender's own
	// perspective (PawnAttacks[defender][target] gives exactly those
	// squares, with file wraparound already excluded by offset()).
	return p.colorBB[them]&p.pieceBB[Pawn]&PawnAttacks[defender][target] != Empty
}

// InCheck reports whether the given side's king currently stands attacked.
func (p *Position) InCheck(c Color) bool {
	return p.IsAttacked(p.kingSquare[c], c)
}

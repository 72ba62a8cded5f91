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

// This file implements draw detection: the fifty-move rule, threefold
// repetition, and insufficient mating material.
package core

// Repetitions returns how many earlier positions in p's history share p's
// current hash and side to move, bounded by the halfmove clock (a pawn
// move or capture cuts off any repetition chain).
func (p *Position) Repetitions() int {
	k := len(p.history)
	limit := k - p.HalfmoveClock
	if limit < 0 {
		limit = 0
	}

	count := 0
	for j := k - 2; j >= limit; j -= 2 {
		if p.history[j].hash == p.Hash {
			count++
		}
	}
	return count
}

// IsThreefoldRepetition reports whether the current position has occurred
// at least twice before in p's history (three occurrences total).
func (p *Position) IsThreefoldRepetition() bool {
	return p.Repetitions() >= 2
}

// IsFiftyMoveDraw reports whether 50 full moves (100 halfmoves) have
// passed since the last pawn move or capture.
func (p *Position) IsFiftyMoveDraw() bool {
	return p.HalfmoveClock >= 100
}

// IsInsufficientMaterial reports whether neither side has enough material
// left to deliver checkmate: K vs K, K+N vs K, or K+B vs K (same or
// different bishop colors; a lone bishop can never force mate).
func (p *Position) IsInsufficientMaterial() bool {
	if p.pieceBB[Pawn] != Empty || p.pieceBB[Rook] != Empty || p.pieceBB[Queen] != Empty {
		return false
	}

	minorCount := p.pieceBB[Knight].Count() + p.pieceBB[Bishop].Count()
	if minorCount <= 1 {
		return true
	}

	// two bishops of the same color, no other minors, can't force mate either.
	if p.pieceBB[Knight] == Empty && minorCount == 2 {
		lightSquares := Bitboard(0x55AA55AA55AA55AA)
		bishops := p.pieceBB[Bishop]
		onLight := bishops & lightSquares
		return onLight == bishops || onLight == Empty
	}

	return false
}

// IsDrawn reports whether the position is a draw by any of the rules
// applicable without reference to the legal move list (stalemate is
// handled by the caller, since it requires generating moves).
func (p *Position) IsDrawn() bool {
	return p.IsFiftyMoveDraw() || p.IsThreefoldRepetition() || p.IsInsufficientMaterial()
}

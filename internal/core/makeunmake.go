// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
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

// This file implements the "MakeUnmake" component: in-place application
// and reversal of a single ply, including the null move used by null-move
// pruning.
package core

// Make applies m to p in place, pushing an UndoRecord onto p's history.
// m is assumed pseudo-legal for the side to move; Make does not check
// whether it leaves the mover's own king in check, nor does it touch
// p.SideToMove's legality — callers validate that via the candidate
// make -> in_check? -> unmake dance in GenerateMoves, or trust a move
// that came from there.
func (p *Position) Make(m Move) {
	us := p.SideToMove
	them := us.Other()
	from, to := m.From(), m.To()
	piece := m.Piece()

	rec := undoRecord{
		move:           m,
		castlingRights: p.CastlingRights,
		enPassant:      p.EnPassant,
		halfmoveClock:  p.HalfmoveClock,
		hash:           p.Hash,
	}

	isEnPassant := piece == Pawn && p.EnPassant != None && to == p.EnPassant

	switch {
	case isEnPassant:
		rec.captured = Pawn
		p.clearSquare(epCapturedSquare(us, to))
	case p.mailbox[to] != NoPiece:
		rec.captured = p.mailbox[to].Type()
		p.clearSquare(to)
	}

	p.clearSquare(from)
	if m.IsPromotion() {
		p.fillSquare(to, NewPiece(m.Promotion(), us))
	} else {
		p.fillSquare(to, NewPiece(piece, us))
	}

	if m.IsCastling() {
		rook := castlingRook[to]
		p.clearSquare(rook.from)
		p.fillSquare(rook.to, rook.rook)
	}

	p.Hash ^= zobristCastling[p.CastlingRights]
	p.CastlingRights &^= rightsLost[from] | rightsLost[to]
	p.Hash ^= zobristCastling[p.CastlingRights]

	if p.EnPassant != None {
		p.Hash ^= zobristEnPassant[p.EnPassant.File()]
	}
	if piece == Pawn && abs(int(to)-int(from)) == 16 {
		p.EnPassant = Square((int(from) + int(to)) / 2)
		p.Hash ^= zobristEnPassant[p.EnPassant.File()]
	} else {
		p.EnPassant = None
	}

	if piece == Pawn || rec.captured != NoType {
		p.HalfmoveClock = 0
	} else {
		p.HalfmoveClock++
	}
	if us == Black {
		p.FullMoveNumber++
	}

	p.SideToMove = them
	p.Hash ^= zobristSideToMove

	p.history = append(p.history, rec)
}

// Unmake reverses the most recently applied Make call.
func (p *Position) Unmake() {
	n := len(p.history) - 1
	rec := p.history[n]
	p.history = p.history[:n]

	m := rec.move
	from, to := m.From(), m.To()
	us := p.SideToMove.Other()
	piece := m.Piece()

	if m.IsCastling() {
		rook := castlingRook[to]
		p.clearSquare(rook.to)
		p.fillSquare(rook.from, rook.rook)
	}

	p.clearSquare(to)
	p.fillSquare(from, NewPiece(piece, us))

	if rec.captured != NoType {
		if piece == Pawn && rec.enPassant != None && to == rec.enPassant {
			p.fillSquare(epCapturedSquare(us, to), NewPiece(Pawn, us.Other()))
		} else {
			p.fillSquare(to, NewPiece(rec.captured, us.Other()))
		}
	}

	p.CastlingRights = rec.castlingRights
	p.EnPassant = rec.enPassant
	p.HalfmoveClock = rec.halfmoveClock
	if us == Black {
		p.FullMoveNumber--
	}
	p.SideToMove = us
	p.Hash = rec.hash
}

// MakeNull passes the move without moving a piece, used by null-move
// pruning to probe "what if the opponent got two moves in a row".
func (p *Position) MakeNull() {
	rec := undoRecord{isNull: true, enPassant: p.EnPassant, hash: p.Hash}

	if p.EnPassant != None {
		p.Hash ^= zobristEnPassant[p.EnPassant.File()]
	}
	p.EnPassant = None
	p.SideToMove = p.SideToMove.Other()
	p.Hash ^= zobristSideToMove

	p.history = append(p.history, rec)
}

// UnmakeNull reverses the most recent MakeNull call.
func (p *Position) UnmakeNull() {
	n := len(p.history) - 1
	rec := p.history[n]
	p.history = p.history[:n]

	p.SideToMove = p.SideToMove.Other()
	p.EnPassant = rec.enPassant
	p.Hash = rec.hash
}

// epCapturedSquare returns the square the captured pawn stood on for an
// en-passant capture by color us landing on to.
func epCapturedSquare(us Color, to Square) Square {
	if us == White {
		return Square(int(to) - 8)
	}
	return Square(int(to) + 8)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

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

// This file implements the "MoveGen" component: pseudo-legal generation
// per piece kind split into "all" and "captures-only", and the legality
// filter that splits moves into a cheap in-place class and a
// make/unmake-validated candidate class.
package core

// orthogonalDirs and diagonalDirs split the 8 ray directions by the
// slider kinds (rook/queen, bishop/queen) that can pin/attack along them.
var orthogonalDirs = []direction{dirNorth, dirSouth, dirEast, dirWest}
var diagonalDirs = []direction{dirNE, dirNW, dirSE, dirSW}

// pinnedPieces returns the bitboard of us's pieces that stand between
// their own king and an enemy slider on the same ray, with nothing else
// in between — i.e. pieces that might expose the king if moved off that
// ray, and therefore require make/unmake validation rather than the cheap
// in-place path.
func (p *Position) pinnedPieces(us Color) Bitboard {
	them := us.Other()
	kingSq := p.kingSquare[us]
	occ := p.Occupied()

	var pinned Bitboard

	scan := func(dirs []direction, sliders Bitboard) {
		for _, d := range dirs {
			ray := rayOf(d)[kingSq]
			blockers := ray & occ
			if blockers == Empty {
				continue
			}
			first := nearestBlocker(d, blockers)
			if p.colorBB[us]&Squares[first] == Empty {
				continue // first blocker is an enemy piece or no pin possible
			}
			beyond := rayOf(d)[first] & occ
			if beyond == Empty {
				continue
			}
			second := nearestBlocker(d, beyond)
			if sliders&Squares[second] != Empty {
				pinned.Set(first)
			}
		}
	}

	scan(orthogonalDirs, p.colorBB[them]&(p.pieceBB[Rook]|p.pieceBB[Queen]))
	scan(diagonalDirs, p.colorBB[them]&(p.pieceBB[Bishop]|p.pieceBB[Queen]))

	return pinned
}

func nearestBlocker(d direction, blockers Bitboard) Square {
	switch d {
	case dirNorth, dirEast, dirNE, dirNW:
		return blockers.LSB()
	default:
		return blockers.MSB()
	}
}

// GenerateMoves returns every fully legal move available to the side to
// move in the current position.
func (p *Position) GenerateMoves() []Move {
	return p.generate(false)
}

// GenerateCaptures returns the legal moves whose destination is occupied
// by an opposing piece, plus capturing promotions and en-passant
// captures. Used by quiescence search.
func (p *Position) GenerateCaptures() []Move {
	return p.generate(true)
}

func (p *Position) generate(capturesOnly bool) []Move {
	us := p.SideToMove
	them := us.Other()

	occ := p.Occupied()
	own := p.colorBB[us]
	opp := p.colorBB[them]

	inCheck := p.InCheck(us)
	pinned := p.pinnedPieces(us)

	moveList := make([]Move, 0, 40)
	candidates := make([]Move, 0, 8)

	add := func(from, to Square, piece PieceType, promo PieceType) {
		m := NewMove(from, to, piece, promo)
		needsValidation := inCheck || piece == King || pinned.IsSet(from) || (piece == Pawn && to == p.EnPassant)
		if needsValidation {
			candidates = append(candidates, m)
		} else {
			moveList = append(moveList, m)
		}
	}

	emit := func(from Square, targets Bitboard, piece PieceType) {
		for targets != Empty {
			to := targets.Pop()
			add(from, to, piece, NoType)
		}
	}

	for bb := p.Pieces(Knight, us); bb != Empty; {
		from := bb.Pop()
		targets := KnightAttacks[from] &^ own
		if capturesOnly {
			targets &= opp
		}
		emit(from, targets, Knight)
	}

	for bb := p.Pieces(Bishop, us); bb != Empty; {
		from := bb.Pop()
		targets := BishopAttacks(from, occ) &^ own
		if capturesOnly {
			targets &= opp
		}
		emit(from, targets, Bishop)
	}

	for bb := p.Pieces(Rook, us); bb != Empty; {
		from := bb.Pop()
		targets := RookAttacks(from, occ) &^ own
		if capturesOnly {
			targets &= opp
		}
		emit(from, targets, Rook)
	}

	for bb := p.Pieces(Queen, us); bb != Empty; {
		from := bb.Pop()
		targets := QueenAttacks(from, occ) &^ own
		if capturesOnly {
			targets &= opp
		}
		emit(from, targets, Queen)
	}

	kingSq := p.kingSquare[us]
	kingTargets := KingAttacks[kingSq] &^ own
	if capturesOnly {
		kingTargets &= opp
	}
	emit(kingSq, kingTargets, King)

	p.generatePawnMoves(us, occ, own, opp, capturesOnly, add)

	if !capturesOnly && !inCheck {
		p.generateCastlingMoves(us, occ, &moveList)
	}

	for _, m := range candidates {
		p.Make(m)
		legal := !p.InCheck(us)
		p.Unmake()
		if legal {
			moveList = append(moveList, m)
		}
	}

	return moveList
}

// pawnAddFunc is the same callback shape as generate's add closure.
type pawnAddFunc func(from, to Square, piece PieceType, promo PieceType)

func (p *Position) generatePawnMoves(us Color, occ, own, opp Bitboard, capturesOnly bool, add pawnAddFunc) {
	var up direction
	var promotionRank Bitboard
	var doublePushFromRank Bitboard

	switch us {
	case White:
		up = dirNorth
		promotionRank = Ranks[Rank8]
		doublePushFromRank = Ranks[Rank2]
	case Black:
		up = dirSouth
		promotionRank = Ranks[Rank1]
		doublePushFromRank = Ranks[Rank7]
	}

	pawns := p.Pieces(Pawn, us)

	pushOne := func(pushes Bitboard, delta direction) {
		for pushes != Empty {
			to := pushes.Pop()
			from := Square(int(to) - int(delta))
			emitPawnMove(add, from, to, promotionRank, false)
		}
	}

	if !capturesOnly {
		single := shiftPawns(pawns, up) &^ occ
		pushOne(single, up)

		eligible := single & shiftPawns(pawns&doublePushFromRank, up)
		double := shiftPawns(eligible, up) &^ occ
		for double != Empty {
			to := double.Pop()
			from := Square(int(to) - 2*int(up))
			add(from, to, Pawn, NoType)
		}
	}

	captureDirLeft := up + dirWest
	captureDirRight := up + dirEast

	left := shiftPawnsDiag(pawns, captureDirLeft) & opp
	for left != Empty {
		to := left.Pop()
		from := Square(int(to) - int(captureDirLeft))
		emitPawnMove(add, from, to, promotionRank, true)
	}

	right := shiftPawnsDiag(pawns, captureDirRight) & opp
	for right != Empty {
		to := right.Pop()
		from := Square(int(to) - int(captureDirRight))
		emitPawnMove(add, from, to, promotionRank, true)
	}

	if p.EnPassant != None {
		attackers := PawnAttacks[us.Other()][p.EnPassant] & pawns
		for attackers != Empty {
			from := attackers.Pop()
			add(from, p.EnPassant, Pawn, NoType)
		}
	}
}

func emitPawnMove(add pawnAddFunc, from, to Square, promotionRank Bitboard, _ bool) {
	if promotionRank.IsSet(to) {
		add(from, to, Pawn, Queen)
		add(from, to, Pawn, Rook)
		add(from, to, Pawn, Bishop)
		add(from, to, Pawn, Knight)
		return
	}
	add(from, to, Pawn, NoType)
}

// shiftPawns advances every pawn in bb one step in direction d (N or S),
// used for pushes; it never wraps files since N/S never change file.
func shiftPawns(bb Bitboard, d direction) Bitboard {
	if d > 0 {
		return bb << uint(d)
	}
	return bb >> uint(-d)
}

// shiftPawnsDiag advances every pawn in bb one step in a diagonal
// direction, masking off the source file that would wrap around the
// board edge.
func shiftPawnsDiag(bb Bitboard, d direction) Bitboard {
	switch d {
	case dirNorth + dirEast, dirSouth + dirEast:
		bb &^= Files[FileH]
	case dirNorth + dirWest, dirSouth + dirWest:
		bb &^= Files[FileA]
	}
	if d > 0 {
		return bb << uint(d)
	}
	return bb >> uint(-d)
}

func (p *Position) generateCastlingMoves(us Color, occ Bitboard, moveList *[]Move) {
	them := us.Other()

	type castle struct {
		right            CastlingRights
		kingFrom, kingTo Square
		betweenEmpty     Bitboard
		kingPath         []Square
	}

	var castles []castle
	if us == White {
		castles = []castle{
			{WhiteKingside, E1, G1, Squares[F1] | Squares[G1], []Square{F1, G1}},
			{WhiteQueenside, E1, C1, Squares[B1] | Squares[C1] | Squares[D1], []Square{D1, C1}},
		}
	} else {
		castles = []castle{
			{BlackKingside, E8, G8, Squares[F8] | Squares[G8], []Square{F8, G8}},
			{BlackQueenside, E8, C8, Squares[B8] | Squares[C8] | Squares[D8], []Square{D8, C8}},
		}
	}

	for _, c := range castles {
		if p.CastlingRights&c.right == 0 {
			continue
		}
		if occ&c.betweenEmpty != Empty {
			continue
		}
		attacked := false
		for _, sq := range c.kingPath {
			if p.IsAttacked(sq, us) {
				attacked = true
				break
			}
		}
		if attacked {
			continue
		}
		_ = them
		*moveList = append(*moveList, NewMove(c.kingFrom, c.kingTo, King, NoType))
	}
}

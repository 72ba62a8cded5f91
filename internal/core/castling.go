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

package core

// CastlingRights is a subset of {WK, WQ, BK, BQ} packed into a nibble.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling CastlingRights = 0
	AllCastling CastlingRights = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside

	CastlingRightsN = 16
)

// NewCastlingRights parses a FEN castling field ("KQkq", "Kq", "-", ...).
func NewCastlingRights(s string) (CastlingRights, error) {
	if s == "-" {
		return NoCastling, nil
	}

	var rights CastlingRights
	for _, c := range s {
		switch c {
		case 'K':
			rights |= WhiteKingside
		case 'Q':
			rights |= WhiteQueenside
		case 'k':
			rights |= BlackKingside
		case 'q':
			rights |= BlackQueenside
		default:
			return NoCastling, errInvalidFenf("invalid castling rights %q", s)
		}
	}
	return rights, nil
}

// String renders the rights in the canonical KQkq subset order. Unlike the
// original program (whose get_fen prints "k" for white kingside and drops
// black kingside entirely — see DESIGN.md), this is always the correct
// canonical subset.
func (c CastlingRights) String() string {
	var s string
	if c&WhiteKingside != 0 {
		s += "K"
	}
	if c&WhiteQueenside != 0 {
		s += "Q"
	}
	if c&BlackKingside != 0 {
		s += "k"
	}
	if c&BlackQueenside != 0 {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}

// rightsLost maps a square to the castling rights forfeited when a piece
// moves from or to it: the king's or a rook's home square.
var rightsLost [SquareN]CastlingRights

func init() {
	rightsLost[E1] = WhiteKingside | WhiteQueenside
	rightsLost[H1] = WhiteKingside
	rightsLost[A1] = WhiteQueenside
	rightsLost[E8] = BlackKingside | BlackQueenside
	rightsLost[H8] = BlackKingside
	rightsLost[A8] = BlackQueenside
}

// castling rook source/destination squares for each king destination.
type rookMove struct {
	from, to Square
	rook     Piece
}

var castlingRook = map[Square]rookMove{
	G1: {from: H1, to: F1, rook: WRook},
	C1: {from: A1, to: D1, rook: WRook},
	G8: {from: H8, to: F8, rook: BRook},
	C8: {from: A8, to: D8, rook: BRook},
}

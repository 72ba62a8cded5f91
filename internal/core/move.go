// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
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

// This file implements the "MoveCodec" component: encoding/decoding moves
// into a compact integer.
package core

// Move is a compact record of a single ply: source square, target square,
// the moving piece kind, and the promotion piece kind (if any). Castling
// is a king move with |to-from| == 2; en-passant is a pawn move to the
// en-passant target square.
//
// Format: MSB -> LSB
// [promo PieceType: 3][piece PieceType: 3][to Square: 6][from Square: 6]
type Move uint32

// Null represents "no move" — used as a sentinel and for null-move search.
const Null Move = 0

const (
	fromWidth  = 6
	toWidth    = 6
	pieceWidth = 3
	promoWidth = 3

	fromOffset  = 0
	toOffset    = fromOffset + fromWidth
	pieceOffset = toOffset + toWidth
	promoOffset = pieceOffset + pieceWidth

	fromMask  = (1 << fromWidth) - 1
	toMask    = (1 << toWidth) - 1
	pieceMask = (1 << pieceWidth) - 1
	promoMask = (1 << promoWidth) - 1
)

// NewMove builds a Move from its components. promo is NoType for a
// non-promoting move.
func NewMove(from, to Square, piece PieceType, promo PieceType) Move {
	m := Move(from) << fromOffset
	m |= Move(to) << toOffset
	m |= Move(piece) << pieceOffset
	m |= Move(promo) << promoOffset
	return m
}

// From returns the source square.
func (m Move) From() Square { return Square((m >> fromOffset) & fromMask) }

// To returns the target square.
func (m Move) To() Square { return Square((m >> toOffset) & toMask) }

// Piece returns the kind of the piece being moved.
func (m Move) Piece() PieceType { return PieceType((m >> pieceOffset) & pieceMask) }

// Promotion returns the promotion piece kind, or NoType if this move is
// not a promotion.
func (m Move) Promotion() PieceType { return PieceType((m >> promoOffset) & promoMask) }

// IsPromotion reports whether m promotes a pawn.
func (m Move) IsPromotion() bool { return m.Promotion() != NoType }

// IsCastling reports whether m is a castling move (a king move of two
// files).
func (m Move) IsCastling() bool {
	if m.Piece() != King {
		return false
	}
	d := int(m.To()) - int(m.From())
	return d == 2 || d == -2
}

// String converts m to UCI long algebraic notation, e.g. "e2e4", "e1g1"
// (castling), "d7d8q" (promotion), "0000" (null).
func (m Move) String() string {
	if m == Null {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += promoLetter(m.Promotion())
	}
	return s
}

func promoLetter(t PieceType) string {
	switch t {
	case Queen:
		return "q"
	case Rook:
		return "r"
	case Bishop:
		return "b"
	case Knight:
		return "n"
	default:
		return ""
	}
}

// ParseMoveUCI parses a UCI move string ("e2e4", "e7e8q") against the
// position p, which supplies the moving piece kind. It does not validate
// legality; callers should check the result against GenerateMoves.
func ParseMoveUCI(p *Position, s string) (Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return Null, errInvalidFenf("invalid uci move %q", s)
	}
	from, err := NewSquareFromString(s[0:2])
	if err != nil {
		return Null, err
	}
	to, err := NewSquareFromString(s[2:4])
	if err != nil {
		return Null, err
	}
	piece := p.PieceAt(from).Type()
	if piece == NoType {
		return Null, errInvalidFenf("no piece on %s", from)
	}

	promo := NoType
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			promo = Queen
		case 'r':
			promo = Rook
		case 'b':
			promo = Bishop
		case 'n':
			promo = Knight
		default:
			return Null, errInvalidFenf("invalid promotion piece %q", s[4:])
		}
	}

	return NewMove(from, to, piece, promo), nil
}

// Variation is an ordered list of moves, used to report a principal
// variation out of the search.
type Variation struct {
	Moves []Move
}

// Move returns the i-th move of the variation, or Null if it does not exist.
func (v *Variation) Move(i int) Move {
	if i >= len(v.Moves) {
		return Null
	}
	return v.Moves[i]
}

// Update replaces v with [m] followed by child's moves.
func (v *Variation) Update(m Move, child Variation) {
	v.Moves = v.Moves[:0]
	v.Moves = append(v.Moves, m)
	v.Moves = append(v.Moves, child.Moves...)
}

func (v Variation) String() string {
	s := ""
	for i, m := range v.Moves {
		if i > 0 {
			s += " "
		}
		s += m.String()
	}
	return s
}

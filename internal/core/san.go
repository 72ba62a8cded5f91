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

// This file implements standard algebraic notation, a feature the UCI
// protocol never needs; nothing else in the module calls it outside its
// tests.
package core

import "strings"

var pieceLetters = map[PieceType]string{
	Knight: "N", Bishop: "B", Rook: "R", Queen: "Q", King: "K",
}

// SAN renders m, which must be legal in p, as standard algebraic
// notation, including the check/mate suffix.
func (p *Position) SAN(m Move) string {
	if m.IsCastling() {
		var s string
		if m.To().File() == FileG {
			s = "O-O"
		} else {
			s = "O-O-O"
		}
		return s + p.sanSuffix(m)
	}

	piece := m.Piece()
	capture := p.mailbox[m.To()] != NoPiece || (piece == Pawn && m.To() == p.EnPassant)

	var sb strings.Builder
	if piece == Pawn {
		if capture {
			sb.WriteString(m.From().File().String())
		}
	} else {
		sb.WriteString(pieceLetters[piece])
		sb.WriteString(p.disambiguate(m))
	}

	if capture {
		sb.WriteString("x")
	}
	sb.WriteString(m.To().String())

	if m.IsPromotion() {
		sb.WriteString("=")
		sb.WriteString(strings.ToUpper(promoLetter(m.Promotion())))
	}

	sb.WriteString(p.sanSuffix(m))
	return sb.String()
}

// disambiguate returns the minimal file/rank/square prefix needed to tell
// m apart from other legal moves of the same piece kind to the same
// square.
func (p *Position) disambiguate(m Move) string {
	var sameFile, sameRank, ambiguous bool
	for _, other := range p.GenerateMoves() {
		if other == m || other.Piece() != m.Piece() || other.To() != m.To() {
			continue
		}
		ambiguous = true
		if other.From().File() == m.From().File() {
			sameFile = true
		}
		if other.From().Rank() == m.From().Rank() {
			sameRank = true
		}
	}
	if !ambiguous {
		return ""
	}
	switch {
	case !sameFile:
		return m.From().File().String()
	case !sameRank:
		return m.From().Rank().String()
	default:
		return m.From().String()
	}
}

func (p *Position) sanSuffix(m Move) string {
	c := p.Clone()
	c.Make(m)
	them := c.SideToMove
	inCheck := c.InCheck(them)
	if !inCheck {
		return ""
	}
	if len(c.GenerateMoves()) == 0 {
		return "#"
	}
	return "+"
}

// ParseSAN resolves s against p's legal moves.
func ParseSAN(p *Position, s string) (Move, error) {
	clean := strings.TrimRight(s, "+#")
	clean = strings.TrimSuffix(clean, "!")
	clean = strings.TrimSuffix(clean, "?")

	for _, m := range p.GenerateMoves() {
		if strings.TrimRight(p.SAN(m), "+#") == clean {
			return m, nil
		}
	}
	return Null, errInvalidFenf("no legal move matches san %q", s)
}

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

// This file implements the "FenCodec" component: parsing and emitting the
// six-field FEN representation of a Position.
package core

import (
	"strconv"
	"strings"
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a complete six-field FEN string into a new Position.
// Parse failures (wrong number of ranks/files, unknown character, or a
// malformed en-passant square) return ErrInvalidFen.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, errInvalidFenf("expected 6 fen fields, got %d", len(fields))
	}

	p := NewPosition()

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, errInvalidFenf("expected 8 ranks, got %d", len(ranks))
	}

	for i, rankData := range ranks {
		rank := Rank8 - Rank(i)
		file := FileA
		for _, ch := range rankData {
			if file > FileH {
				return nil, errInvalidFenf("rank %d has too many files", i+1)
			}

			if ch >= '1' && ch <= '8' {
				file += File(ch - '0')
				continue
			}

			piece, err := NewPieceFromString(string(ch))
			if err != nil {
				return nil, err
			}
			p.fillSquare(NewSquare(file, rank), piece)
			file++
		}

		if file != FileN {
			return nil, errInvalidFenf("rank %d does not cover all 8 files", i+1)
		}
	}

	stm, err := NewColor(fields[1])
	if err != nil {
		return nil, err
	}
	p.SideToMove = stm
	if stm == Black {
		p.Hash ^= zobristSideToMove
	}

	rights, err := NewCastlingRights(fields[2])
	if err != nil {
		return nil, err
	}
	p.CastlingRights = rights
	p.Hash ^= zobristCastling[rights]

	ep, err := NewSquareFromString(fields[3])
	if err != nil {
		return nil, err
	}
	p.EnPassant = ep
	if ep != None {
		p.Hash ^= zobristEnPassant[ep.File()]
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, errInvalidFenf("invalid halfmove clock %q", fields[4])
	}
	p.HalfmoveClock = halfmove

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, errInvalidFenf("invalid fullmove number %q", fields[5])
	}
	p.FullMoveNumber = fullmove

	if p.kingSquare[White] == None || p.kingSquare[Black] == None {
		return nil, errInvalidFenf("position is missing a king")
	}

	return p, nil
}

// FEN renders p back into the standard six-field representation.
func (p *Position) FEN() string {
	var sb strings.Builder

	for r := Rank8; r >= Rank1; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.mailbox[NewSquare(f, r)]
			if pc == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r != Rank1 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(p.SideToMove.String())
	sb.WriteByte(' ')
	sb.WriteString(p.CastlingRights.String())
	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.FullMoveNumber))

	return sb.String()
}

func (p *Position) String() string {
	var sb strings.Builder
	for r := Rank8; r >= Rank1; r-- {
		for f := FileA; f <= FileH; f++ {
			sb.WriteString(p.mailbox[NewSquare(f, r)].String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("fen: ")
	sb.WriteString(p.FEN())
	return sb.String()
}

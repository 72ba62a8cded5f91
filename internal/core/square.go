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

import "fmt"

// Square represents a square on a chessboard, numbered 0..63 with square 0
// being a1 and square 63 being h8. Rank = square/8, file = square%8.
type Square int

// None is the null square, used for "no en-passant target" and similar.
const None Square = -1

// Named constants for every square, a1 through h8, used throughout move
// generation.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8

	SquareN = 64
)

// File represents one of the eight files (columns) of a chessboard.
type File int

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH

	FileN = 8
)

func (f File) String() string {
	return string(rune('a' + int(f)))
}

// Rank represents one of the eight ranks (rows) of a chessboard.
type Rank int

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8

	RankN = 8
)

func (r Rank) String() string {
	return string(rune('1' + int(r)))
}

// NewSquare builds a Square from a file and rank pair.
func NewSquare(f File, r Rank) Square {
	return Square(int(r)*8 + int(f))
}

// NewSquareFromString parses an algebraic square ("e4") or "-" (None).
func NewSquareFromString(id string) (Square, error) {
	if id == "-" {
		return None, nil
	}
	if len(id) != 2 {
		return None, errInvalidFenf("invalid square %q", id)
	}
	file := id[0]
	rank := id[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return None, errInvalidFenf("invalid square %q", id)
	}
	return NewSquare(File(file-'a'), Rank(rank-'1')), nil
}

// String converts a Square into its algebraic notation, e.g. "e4".
func (s Square) String() string {
	if s == None {
		return "-"
	}
	return fmt.Sprintf("%s%s", s.File(), s.Rank())
}

// File returns the file the square lies on.
func (s Square) File() File {
	return File(s % 8)
}

// Rank returns the rank the square lies on.
func (s Square) Rank() Rank {
	return Rank(s / 8)
}

// RelativeRank returns the square's rank as seen by the given color, i.e.
// rank 1 is always the mover's back rank.
func (s Square) RelativeRank(c Color) Rank {
	if c == White {
		return s.Rank()
	}
	return Rank8 - s.Rank()
}

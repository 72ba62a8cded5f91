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

import "vellum.dev/x/vellum/internal/util"

// ZobristKey is a 64-bit Zobrist hash used to key the transposition table
// and to detect repeated positions.
type ZobristKey uint64

var (
	zobristPieceSquare [16][SquareN]ZobristKey
	zobristEnPassant   [FileN]ZobristKey
	zobristCastling    [CastlingRightsN]ZobristKey
	zobristSideToMove  ZobristKey
)

func init() {
	var rng util.PRNG
	rng.Seed(1070372) // seed used from Stockfish

	for p := 0; p < 16; p++ {
		for s := Square(0); s < SquareN; s++ {
			zobristPieceSquare[p][s] = ZobristKey(rng.Uint64())
		}
	}

	for f := FileA; f <= FileH; f++ {
		zobristEnPassant[f] = ZobristKey(rng.Uint64())
	}

	for r := CastlingRights(0); r < CastlingRightsN; r++ {
		zobristCastling[r] = ZobristKey(rng.Uint64())
	}

	zobristSideToMove = ZobristKey(rng.Uint64())
}

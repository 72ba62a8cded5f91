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

// This file holds the static evaluation term tables: piece-square tables
// (phased for pawn and king, flat for the others), mobility weights, and
// the small bonuses for king safety, passed pawns, and open files.
package eval

import "vellum.dev/x/vellum/internal/core"

// Tables are written from White's point of view, square a1 first; a
// black piece reads the mirror square (flip the rank).

var mgPawnPST = [core.SquareN]Eval{
	0, 0, 0, 0, 0, 0, 0, 0,
	-35, -1, -20, -23, -15, 24, 38, -22,
	-26, -4, -4, -10, 3, 3, 33, -12,
	-27, -2, -5, 12, 17, 6, 10, -25,
	-14, 13, 6, 21, 23, 12, 17, -23,
	-6, 7, 26, 31, 65, 56, 25, -20,
	98, 134, 61, 95, 68, 126, 34, -11,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var egPawnPST = [core.SquareN]Eval{
	0, 0, 0, 0, 0, 0, 0, 0,
	13, 8, 8, 10, 13, 0, 2, -7,
	4, 7, -6, 1, 0, -5, -1, -8,
	13, 9, -3, -7, -7, -8, 3, -1,
	32, 24, 13, 5, -2, 4, 17, 17,
	94, 100, 85, 67, 56, 53, 82, 84,
	178, 173, 158, 134, 147, 132, 165, 187,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightPST = [core.SquareN]Eval{
	-105, -21, -58, -33, -17, -28, -19, -23,
	-29, -53, -12, -3, -1, 18, -14, -19,
	-23, -9, 12, 10, 19, 17, 25, -16,
	-13, 4, 16, 13, 28, 19, 21, -8,
	-9, 17, 19, 53, 37, 69, 18, 22,
	-47, 60, 37, 65, 84, 129, 73, 44,
	-73, -41, 72, 36, 23, 62, 7, -17,
	-167, -89, -34, -49, 61, -97, -15, -107,
}

var bishopPST = [core.SquareN]Eval{
	-33, -3, -14, -21, -13, -12, -39, -21,
	4, 15, 16, 0, 7, 21, 33, 1,
	0, 15, 15, 15, 14, 27, 18, 10,
	-6, 13, 13, 26, 34, 12, 10, 4,
	-4, 5, 19, 50, 37, 37, 7, -2,
	-16, 37, 43, 40, 35, 50, 37, -2,
	-26, 16, -18, -13, 30, 59, 18, -47,
	-29, 4, -82, -37, -25, -42, 7, -8,
}

var rookPST = [core.SquareN]Eval{
	-19, -13, 1, 17, 16, 7, -37, -26,
	-44, -16, -20, -9, -1, 11, -6, -71,
	-45, -25, -16, -17, 3, 0, -5, -33,
	-36, -26, -12, -1, 9, -7, 6, -23,
	-24, -11, 7, 26, 24, 35, -8, -20,
	-5, 19, 26, 36, 17, 45, 61, 16,
	27, 32, 58, 62, 80, 67, 26, 44,
	32, 42, 32, 51, 63, 9, 31, 43,
}

var queenPST = [core.SquareN]Eval{
	-1, -18, -9, 10, -15, -25, -31, -50,
	-35, -8, 11, 2, 8, 15, -3, 1,
	-14, 2, -11, -2, -5, 2, 14, 5,
	-9, -26, -9, -10, -2, -4, 3, -3,
	-27, -27, -16, -16, -1, 17, -2, 1,
	-13, -17, 7, 8, 29, 56, 47, 57,
	-24, -39, -5, 1, -16, 57, 28, 54,
	-28, 0, 29, 12, 59, 44, 43, 45,
}

var mgKingPST = [core.SquareN]Eval{
	-15, 36, 12, -54, 8, -28, 24, 14,
	1, 7, -8, -64, -43, -16, 9, 8,
	-14, -14, -22, -46, -44, -30, -15, -27,
	-49, -1, -27, -39, -46, -44, -33, -51,
	-17, -20, -12, -27, -30, -25, -14, -36,
	-9, 24, 2, -16, -20, 6, 22, -22,
	29, -1, -20, -7, -8, -4, -38, -29,
	-65, 23, 16, -15, -56, -34, 2, 13,
}

var egKingPST = [core.SquareN]Eval{
	-53, -34, -21, -11, -28, -14, -24, -43,
	-27, -11, 4, 13, 14, 4, -5, -17,
	-19, -3, 11, 21, 23, 16, 7, -9,
	-18, -4, 21, 24, 27, 23, 9, -11,
	-8, 22, 24, 27, 26, 33, 26, 3,
	10, 17, 23, 15, 20, 45, 44, 13,
	-12, 17, 14, 17, 17, 38, 23, 11,
	-74, -35, -18, -18, -11, 15, 4, -17,
}

// mirror flips a white-relative square to its black-relative mirror,
// used to read the same table from black's point of view.
func mirror(s core.Square) core.Square {
	return core.NewSquare(s.File(), core.Rank8-s.Rank())
}

// mobilityWeight is the per-destination-square score added to a side's
// mobility term for each piece kind.
var mobilityWeight = [core.PieceTypeN]Eval{
	core.Knight: 4,
	core.Bishop: 5,
	core.Rook:   2,
	core.Queen:  1,
}

// kingRingAttackBonus is added per mobility destination square that
// falls within the opposing king's extended neighbourhood. Tunable by
// internal/tune.
var kingRingAttackBonus Eval = 3

// pawnShieldBonus is added per own pawn found in the king's ring.
// Overridable at startup by internal/config's eval.king_ring_pawn.
var pawnShieldBonus Eval = 20

// passedPawnBonus is indexed by distance-to-promotion (1 = one square
// from queening); index 0 is unused since a pawn on the promotion rank
// has already promoted.
var passedPawnBonus = [7]Eval{0, 120, 80, 50, 30, 15, 15}

// openFileBonus is added for each non-pawn piece standing on a file with
// no pawn of its own color. Tunable by internal/tune.
var openFileBonus Eval = 10

// tempoBonus is added for the side to move, scaled down as the endgame
// weight grows. Overridable at startup by internal/config's
// eval.tempo_bonus.
var tempoBonus Eval = 18

// SetTempoBonus overrides the compiled-in tempo bonus; called once at
// startup from internal/config if vellum.toml sets eval.tempo_bonus.
func SetTempoBonus(v int) { tempoBonus = Eval(v) }

// SetKingRingPawnBonus overrides the compiled-in per-pawn king-ring
// shield bonus; called once at startup from internal/config if
// vellum.toml sets eval.king_ring_pawn.
func SetKingRingPawnBonus(v int) { pawnShieldBonus = Eval(v) }

// SetKingRingAttackBonus and SetOpenFileBonus, together with the getters
// below, let internal/tune perturb these terms during gradient descent.
func SetKingRingAttackBonus(v int) { kingRingAttackBonus = Eval(v) }
func SetOpenFileBonus(v int)       { openFileBonus = Eval(v) }

// TempoBonus, KingRingPawnBonus, KingRingAttackBonus, and OpenFileBonus
// expose the current value of their respective terms, read by
// internal/tune before perturbing them.
func TempoBonus() int          { return int(tempoBonus) }
func KingRingPawnBonus() int   { return int(pawnShieldBonus) }
func KingRingAttackBonus() int { return int(kingRingAttackBonus) }
func OpenFileBonus() int       { return int(openFileBonus) }

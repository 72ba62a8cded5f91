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

package eval

import "vellum.dev/x/vellum/internal/core"

// MoveScore orders moves for search: the transposition table's move is
// tried first, then captures by MVV/LVA, then everything else falls to
// the caller's killer/history ordering.
type MoveScore int32

const (
	PVMove      MoveScore = 1 << 20
	CaptureBase MoveScore = 1 << 14
	QuietBase   MoveScore = 0
)

// mvvLva[victim][attacker] ranks "most valuable victim, least valuable
// attacker" captures above weaker trades.
var mvvLva = [core.PieceTypeN][core.PieceTypeN]MoveScore{
	core.Pawn:   {0, 15, 14, 13, 12, 11, 10},
	core.Knight: {0, 25, 24, 23, 22, 21, 20},
	core.Bishop: {0, 35, 34, 33, 32, 31, 30},
	core.Rook:   {0, 45, 44, 43, 42, 41, 40},
	core.Queen:  {0, 55, 54, 53, 52, 51, 50},
}

// ScoreCapture returns the MVV/LVA score for a capturing or promoting
// move m in position p (evaluated before the move is made).
func ScoreCapture(p *core.Position, m core.Move) MoveScore {
	victim := p.PieceAt(m.To()).Type()
	if victim == core.NoType {
		victim = core.Pawn // en-passant: captured piece is always a pawn
	}
	attacker := m.Piece()
	return CaptureBase + mvvLva[victim][attacker]
}

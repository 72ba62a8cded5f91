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

package search

import (
	"vellum.dev/x/vellum/internal/core"
	"vellum.dev/x/vellum/internal/eval"
	"vellum.dev/x/vellum/internal/util"
)

// storeKiller records m as the newest killer move for ply, demoting the
// previous first killer to second. Captures are excluded: MVV/LVA
// already orders them well, and they aren't repeated as quiets elsewhere
// in the tree the way a quiet refutation is.
func (s *Context) storeKiller(ply int, m core.Move) {
	if isCapture(s.Pos, m) {
		return
	}
	if m == s.killers[ply][0] {
		return
	}
	s.killers[ply][1] = s.killers[ply][0]
	s.killers[ply][0] = m
}

// updateHistory applies bonus to the history score of quiet move m,
// decaying the existing entry towards the bonus so the table tracks
// recent form instead of accumulating without bound.
func (s *Context) updateHistory(m core.Move, bonus eval.MoveScore) {
	if isCapture(s.Pos, m) {
		return
	}
	entry := &s.history[s.Pos.SideToMove][m.From()][m.To()]
	*entry += bonus - *entry*util.Abs(bonus)/32768
}

// historyBonus returns the history table adjustment for a cutoff found
// at the given depth: deeper cutoffs are stronger evidence.
func historyBonus(depth int) eval.MoveScore {
	return eval.MoveScore(util.Min(2000, depth*depth))
}

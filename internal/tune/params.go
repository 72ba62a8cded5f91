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

package tune

import "vellum.dev/x/vellum/internal/eval"

// Param is a single scalar evaluation term exposed for tuning through
// a getter/setter pair on package eval; the classical tuner's
// coefficient-vector approach needs a trace accumulator vellum's
// evaluator doesn't have, so tuning here runs one scalar term at a
// time instead of the whole piece-square-table vector at once.
type Param struct {
	Name string
	Get  func() int
	Set  func(int)
}

// DefaultParams is every scalar term package eval exposes a
// getter/setter pair for.
func DefaultParams() []Param {
	return []Param{
		{Name: "tempo_bonus", Get: eval.TempoBonus, Set: eval.SetTempoBonus},
		{Name: "king_ring_pawn_bonus", Get: eval.KingRingPawnBonus, Set: eval.SetKingRingPawnBonus},
		{Name: "king_ring_attack_bonus", Get: eval.KingRingAttackBonus, Set: eval.SetKingRingAttackBonus},
		{Name: "open_file_bonus", Get: eval.OpenFileBonus, Set: eval.SetOpenFileBonus},
	}
}

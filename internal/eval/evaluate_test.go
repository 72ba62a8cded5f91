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

package eval_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vellum.dev/x/vellum/internal/core"
	"vellum.dev/x/vellum/internal/eval"
)

func TestEvaluateSymmetricStartpos(t *testing.T) {
	p, err := core.ParseFEN(core.StartFEN)
	require.NoError(t, err)

	// the only asymmetry at the startpos is the side-to-move tempo bonus.
	score := eval.Evaluate(p)
	require.Greater(t, int(score), 0)
	require.Less(t, int(score), 100)
}

func TestEvaluateExtraQueenIsWinning(t *testing.T) {
	p, err := core.ParseFEN("4k3/8/8/8/8/8/8/R3KQ2 w - - 0 1")
	require.NoError(t, err)
	require.Greater(t, int(eval.Evaluate(p)), int(eval.Eval(800)))
}

func TestMatedInPrefersLongerLines(t *testing.T) {
	require.Greater(t, int(eval.MatedIn(5)), int(eval.MatedIn(1)))
}

func TestEvalStringMateFormat(t *testing.T) {
	require.Equal(t, "mate 1", eval.MateIn(1).String())
}

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

package search_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"vellum.dev/x/vellum/internal/core"
	"vellum.dev/x/vellum/internal/eval"
	"vellum.dev/x/vellum/internal/search"
	searchtime "vellum.dev/x/vellum/internal/search/time"
)

func mustFEN(t *testing.T, fen string) *core.Position {
	t.Helper()
	p, err := core.ParseFEN(fen)
	require.NoError(t, err)
	return p
}

func TestSearchFindsMateInOne(t *testing.T) {
	// scholar's mate, one move early: Qxf7 is checkmate.
	p := mustFEN(t, "r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 5 4")
	ctx := search.NewContext(p)

	pv, score, err := ctx.Search(search.Limits{
		Depth: 4,
		Time:  &searchtime.FixedManager{Duration: 2 * time.Second},
	})
	require.NoError(t, err)
	require.NotEqual(t, core.Null, pv.Move(0))
	require.Greater(t, int(score), int(eval.WinInMaxPly))
}

func TestSearchRejectsIllegalPosition(t *testing.T) {
	// black king could be captured: side not to move (black) is in check
	// with white to move, an impossible position to hand to search.
	p := mustFEN(t, "rnbqkbnr/pppp1ppp/8/4Q3/4p3/8/PPPP1PPP/RNB1KBNR w KQkq - 0 1")
	ctx := search.NewContext(p)

	_, _, err := ctx.Search(search.Limits{Depth: 1})
	require.Error(t, err)
}

func TestSearchLeavesPositionUnchanged(t *testing.T) {
	p := mustFEN(t, core.StartFEN)
	before := p.FEN()

	ctx := search.NewContext(p)
	_, _, err := ctx.Search(search.Limits{
		Depth: 3,
		Time:  &searchtime.FixedManager{Duration: 2 * time.Second},
	})
	require.NoError(t, err)
	require.Equal(t, before, p.FEN())
}

func TestSearchStopsAtDeadline(t *testing.T) {
	p := mustFEN(t, core.StartFEN)
	ctx := search.NewContext(p)

	start := time.Now()
	_, _, err := ctx.Search(search.Limits{
		Depth: search.MaxPly,
		Time:  &searchtime.FixedManager{Duration: 50 * time.Millisecond},
	})
	require.NoError(t, err)
	require.Less(t, time.Since(start), 2*time.Second)
}

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

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vellum.dev/x/vellum/internal/core"
)

func TestPerftStartpos(t *testing.T) {
	want := []uint64{1, 20, 400, 8902, 197281, 4865609}

	p, err := core.ParseFEN(core.StartFEN)
	require.NoError(t, err)

	for depth, expect := range want {
		got := core.Perft(p, depth)
		require.Equalf(t, expect, got, "perft(%d) from startpos", depth)
	}
}

func TestPerftKiwipete(t *testing.T) {
	const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	want := []uint64{1, 48, 2039, 97862}

	p, err := core.ParseFEN(kiwipete)
	require.NoError(t, err)

	for depth, expect := range want {
		got := core.Perft(p, depth)
		require.Equalf(t, expect, got, "perft(%d) from kiwipete", depth)
	}
}

func TestPerftLeavesPositionUnchanged(t *testing.T) {
	p, err := core.ParseFEN(core.StartFEN)
	require.NoError(t, err)

	before := p.FEN()
	core.Perft(p, 4)
	require.Equal(t, before, p.FEN())
}

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

func TestSANBasicMoves(t *testing.T) {
	p, err := core.ParseFEN(core.StartFEN)
	require.NoError(t, err)

	m, err := core.ParseMoveUCI(p, "e2e4")
	require.NoError(t, err)
	require.Equal(t, "e4", p.SAN(m))
}

func TestSANCastling(t *testing.T) {
	p, err := core.ParseFEN("r1bqkbnr/pppppppp/2n5/8/4P3/5N2/PPPPBPPP/RNBQK2R w KQkq - 4 4")
	require.NoError(t, err)

	m, err := core.ParseMoveUCI(p, "e1g1")
	require.NoError(t, err)
	require.Equal(t, "O-O", p.SAN(m))
}

func TestSANCheckAndMateSuffix(t *testing.T) {
	p, err := core.ParseFEN(core.StartFEN)
	require.NoError(t, err)

	for _, uci := range []string{"f2f3", "e7e5", "g2g4"} {
		m, err := core.ParseMoveUCI(p, uci)
		require.NoError(t, err)
		p.Make(m)
	}

	m, err := core.ParseMoveUCI(p, "d8h4")
	require.NoError(t, err)
	require.Equal(t, "Qh4#", p.SAN(m))
}

func TestParseSANRoundTrip(t *testing.T) {
	p, err := core.ParseFEN(core.StartFEN)
	require.NoError(t, err)

	m, err := core.ParseSAN(p, "e4")
	require.NoError(t, err)
	require.Equal(t, "e2e4", m.String())
}

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

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		core.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}
	for _, fen := range fens {
		p, err := core.ParseFEN(fen)
		require.NoError(t, err)
		require.Equal(t, fen, p.FEN())
	}
}

func TestParseFENRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",        // missing rank
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1", // bad piece letter
		"8/8/8/8/8/8/8/8 w - - 0 1",                                 // no kings
	}
	for _, fen := range cases {
		_, err := core.ParseFEN(fen)
		require.Error(t, err)
	}
}

func TestMakeUnmakeRoundTrip(t *testing.T) {
	const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	p, err := core.ParseFEN(kiwipete)
	require.NoError(t, err)

	before := p.FEN()
	beforeHash := p.Hash

	for _, m := range p.GenerateMoves() {
		p.Make(m)
		require.NoError(t, p.AuditInvariants())
		p.Unmake()
		require.Equal(t, before, p.FEN())
		require.Equal(t, beforeHash, p.Hash)
	}
}

func TestMakeNullUnmakeNullRoundTrip(t *testing.T) {
	p, err := core.ParseFEN(core.StartFEN)
	require.NoError(t, err)

	before := p.FEN()
	p.MakeNull()
	require.NotEqual(t, before, p.FEN()) // side to move flips
	p.UnmakeNull()
	require.Equal(t, before, p.FEN())
}

func TestPawnPushE2E4(t *testing.T) {
	p, err := core.ParseFEN(core.StartFEN)
	require.NoError(t, err)

	m, err := core.ParseMoveUCI(p, "e2e4")
	require.NoError(t, err)

	p.Make(m)
	require.Equal(t, core.E3, p.EnPassant)
	require.Equal(t, core.WPawn, p.PieceAt(core.E4))
	require.Equal(t, core.NoPiece, p.PieceAt(core.E2))
}

func TestWhiteShortCastle(t *testing.T) {
	p, err := core.ParseFEN("r1bqkbnr/pppppppp/2n5/8/4P3/5N2/PPPPBPPP/RNBQK2R w KQkq - 4 4")
	require.NoError(t, err)

	m, err := core.ParseMoveUCI(p, "e1g1")
	require.NoError(t, err)

	p.Make(m)
	require.Equal(t, core.WKing, p.PieceAt(core.G1))
	require.Equal(t, core.WRook, p.PieceAt(core.F1))
	require.Equal(t, core.NoPiece, p.PieceAt(core.E1))
	require.Equal(t, core.NoPiece, p.PieceAt(core.H1))
	require.Equal(t, core.NoCastling, p.CastlingRights&(core.WhiteKingside|core.WhiteQueenside))
}

func TestEnPassantCapture(t *testing.T) {
	p, err := core.ParseFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	require.NoError(t, err)

	m, err := core.ParseMoveUCI(p, "e5d6")
	require.NoError(t, err)

	p.Make(m)
	require.Equal(t, core.WPawn, p.PieceAt(core.D6))
	require.Equal(t, core.NoPiece, p.PieceAt(core.D5))
	require.Equal(t, core.NoPiece, p.PieceAt(core.E5))
}

func TestPromotionWithCapture(t *testing.T) {
	p, err := core.ParseFEN("r1b1kbnr/pPpppppp/8/8/8/8/P1PPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)

	m, err := core.ParseMoveUCI(p, "b7a8q")
	require.NoError(t, err)

	p.Make(m)
	require.Equal(t, core.WQueen, p.PieceAt(core.A8))
}

func TestFoolsMate(t *testing.T) {
	p, err := core.ParseFEN(core.StartFEN)
	require.NoError(t, err)

	for _, uci := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		m, err := core.ParseMoveUCI(p, uci)
		require.NoError(t, err)
		p.Make(m)
	}

	require.True(t, p.InCheck(core.White))
	require.Empty(t, p.GenerateMoves())
}

func TestThreefoldRepetition(t *testing.T) {
	p, err := core.ParseFEN(core.StartFEN)
	require.NoError(t, err)

	moves := []string{
		"g1f3", "g8f6", "f3g1", "f6g8",
		"g1f3", "g8f6", "f3g1", "f6g8",
	}
	for _, uci := range moves {
		m, err := core.ParseMoveUCI(p, uci)
		require.NoError(t, err)
		p.Make(m)
	}

	require.True(t, p.IsThreefoldRepetition())
	require.True(t, p.IsDrawn())
}

func TestInsufficientMaterial(t *testing.T) {
	p, err := core.ParseFEN("8/8/4k3/8/8/3NK3/8/8 w - - 0 1")
	require.NoError(t, err)
	require.True(t, p.IsInsufficientMaterial())

	p, err = core.ParseFEN("8/8/4k3/8/8/3RK3/8/8 w - - 0 1")
	require.NoError(t, err)
	require.False(t, p.IsInsufficientMaterial())
}

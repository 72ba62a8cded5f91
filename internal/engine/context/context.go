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

// Package context holds the state shared between an engine's UCI
// commands: the position under search, the running search itself, and
// the declared option values. It is kept separate from package cmd to
// let both cmd and options depend on it without an import cycle.
package context

import (
	"vellum.dev/x/vellum/internal/core"
	"vellum.dev/x/vellum/internal/search"
	"vellum.dev/x/vellum/internal/uci"
	"vellum.dev/x/vellum/internal/uci/option"
)

// Engine is the state shared by every UCI command: the client that
// dispatches them, the search running against the current position,
// and the declared option values.
type Engine struct {
	// Client is the engine's UCI REPL.
	Client uci.Client

	// Search is the search context bound to the current position. It
	// is replaced wholesale on ucinewgame and position.
	Search *search.Context

	Pondering    bool
	PonderLimits search.Limits

	// OptionSchema is declared in response to "uci" and dispatches
	// "setoption" commands into Options.
	OptionSchema option.Schema
	Options      Options
}

// Options holds the values of the UCI options vellum declares support
// for.
type Options struct {
	Ponder  bool // name Ponder type check
	Hash    int  // name Hash type spin
	Threads int  // name Threads type spin
}

// NewEngine returns an Engine ready to play from the standard starting
// position, with Search wired to report iterative-deepening progress
// as "info ..." lines on the client's reply stream.
func NewEngine() *Engine {
	e := &Engine{Client: uci.NewClient()}
	pos, _ := core.ParseFEN(core.StartFEN)
	e.newSearch(pos)
	return e
}

// newSearch replaces e.Search with a fresh context bound to pos,
// carrying over the reply-reporting behaviour every context needs.
func (e *Engine) newSearch(pos *core.Position) {
	e.Search = search.NewContext(pos)
	e.Search.Report = func(info search.Info) {
		e.Client.Printf(
			"info depth %d score %s nodes %d pv %s",
			info.Depth, info.Score, info.Nodes, info.PV,
		)
	}
	if e.Options.Hash > 0 {
		e.Search.ResizeTT(e.Options.Hash)
	}
}

// NewGame resets Search to a fresh context, discarding the
// transposition table and move-ordering heuristics of the previous
// game; it should precede the first position of an unrelated game.
func (e *Engine) NewGame() {
	hash := e.Options.Hash
	e.newSearch(core.NewPosition())
	e.Options.Hash = hash
}

// SetPosition swaps in pos as the position under search, keeping the
// existing transposition table and history heuristics warm across
// moves of the same game.
func (e *Engine) SetPosition(pos *core.Position) {
	e.Search.Pos = pos
}

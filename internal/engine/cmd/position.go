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

package cmd

import (
	"errors"
	"strings"

	"vellum.dev/x/vellum/internal/core"
	"vellum.dev/x/vellum/internal/engine/context"
	"vellum.dev/x/vellum/internal/uci/cmd"
	"vellum.dev/x/vellum/internal/uci/flag"
)

// UCI command position [ fen <fenstring> | startpos ] moves <move>...
//
// Set up the position described in fenstring on the internal board and
// play the moves on the internal chess board.
//
// If the game was played from the start position the string startpos will
// be sent
//
// Note: no "new" command is needed. However, if this position is from a
// different game than the last position sent to the engine, the GUI should
// have sent a ucinewgame in-between.
func NewPosition(engine *context.Engine) cmd.Command {
	schema := flag.NewSchema()

	// base position
	schema.Array("fen", len(strings.Fields(core.StartFEN)))
	schema.Button("startpos")

	// moves played on base position
	schema.Variadic("moves")

	return cmd.Command{
		Name: "position",
		Run: func(interaction cmd.Interaction) error {
			pos, err := parsePositionFlags(interaction.Values)
			if err != nil {
				return err
			}

			engine.SetPosition(pos)
			return nil
		},
		Flags: schema,
	}
}

// parsePositionFlags parses the position data out of the given flags.
func parsePositionFlags(values flag.Values) (*core.Position, error) {
	var pos *core.Position

	switch {
	// only one of the base position descriptors should be set
	case values["startpos"].Set && values["fen"].Set:
		return nil, errors.New("position: both startpos and fen flags found")

	case values["startpos"].Set:
		var err error
		pos, err = core.ParseFEN(core.StartFEN)
		if err != nil {
			return nil, err
		}

	case values["fen"].Set:
		fen := strings.Join(values["fen"].Value.([]string), " ")
		var err error
		pos, err = core.ParseFEN(fen)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.New("position: no startpos or fen option")
	}

	if values["moves"].Set {
		for _, s := range values["moves"].Value.([]string) {
			m, err := core.ParseMoveUCI(pos, s)
			if err != nil {
				return nil, err
			}
			pos.Make(m)
		}
	}

	return pos, nil
}

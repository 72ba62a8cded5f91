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

package cmd

import (
	"vellum.dev/x/vellum/internal/engine/context"
	"vellum.dev/x/vellum/internal/uci/cmd"
)

// NewD builds the non-standard "d" debug command, printing the board,
// its FEN, and its Zobrist key — the same information engines in the
// pack expose for manual UCI-console debugging.
func NewD(engine *context.Engine) cmd.Command {
	return cmd.Command{
		Name: "d",
		Run: func(interaction cmd.Interaction) error {
			pos := engine.Search.Pos
			interaction.Reply(pos.String())
			interaction.Replyf("Fen: %s", pos.FEN())
			interaction.Replyf("Key: %X", uint64(pos.Hash))
			return nil
		},
	}
}

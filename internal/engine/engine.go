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

// Package engine assembles the UCI-facing engine: the shared
// search/position state in package context, the protocol commands in
// package cmd, and the declared options in package options.
package engine

import (
	"vellum.dev/x/vellum/internal/engine/cmd"
	"vellum.dev/x/vellum/internal/engine/context"
	"vellum.dev/x/vellum/internal/engine/options"
	"vellum.dev/x/vellum/internal/uci"
	"vellum.dev/x/vellum/internal/uci/option"
)

// New builds a ready-to-run UCI client: startpos loaded, every
// protocol command registered, and Hash/Threads/Ponder declared as
// UCI options with their defaults already applied.
func New() uci.Client {
	engine := context.NewEngine()

	engine.OptionSchema = optionSchema(engine)
	_ = engine.OptionSchema.SetDefaults()

	engine.Client.AddCommand(cmd.NewUci(engine))
	engine.Client.AddCommand(cmd.NewUciNewGame(engine))
	engine.Client.AddCommand(cmd.NewPosition(engine))
	engine.Client.AddCommand(cmd.NewGo(engine))
	engine.Client.AddCommand(cmd.NewStop(engine))
	engine.Client.AddCommand(cmd.NewPonderHit(engine))
	engine.Client.AddCommand(cmd.NewSetOption(engine))
	engine.Client.AddCommand(cmd.NewD(engine))

	return engine.Client
}

func optionSchema(engine *context.Engine) option.Schema {
	schema := option.NewSchema()
	schema.AddOption("Hash", options.NewHash(engine))
	schema.AddOption("Threads", options.NewThreads(engine))
	schema.AddOption("Ponder", options.NewPonder(engine))
	return schema
}

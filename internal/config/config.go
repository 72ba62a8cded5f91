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

// Package config loads the optional vellum.toml engine configuration
// file: hash table size, default time control, and evaluation term
// overrides, following the same declarative-table style
// Mgrdich-TermChess uses for its own settings file.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"vellum.dev/x/vellum/internal/eval"
)

// Config is the root of vellum.toml.
type Config struct {
	Engine EngineConfig `toml:"engine"`
	Eval   EvalConfig   `toml:"eval"`
}

// EngineConfig holds search-side defaults. Both fields are parsed from
// vellum.toml, but nothing in the engine reads them: the table size
// comes from the UCI Hash option and the move time from the go command.
type EngineConfig struct {
	HashMB        int `toml:"hash_mb"`         // transposition table size
	DefaultMoveMS int `toml:"default_move_ms"` // movetime used when no GUI clock is supplied
}

// EvalConfig overrides a handful of named evaluation terms without
// requiring a rebuild; zero values mean "use the compiled-in default"
// and are left unapplied by Apply.
type EvalConfig struct {
	TempoBonus  int `toml:"tempo_bonus"`
	KingRingPawn int `toml:"king_ring_pawn"`
}

// Default returns the configuration used when no vellum.toml is found.
func Default() Config {
	return Config{
		Engine: EngineConfig{HashMB: 16, DefaultMoveMS: 1000},
	}
}

// Load reads and parses path, falling back silently to Default if path
// does not exist; a malformed file that does exist is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "config: reading %s", path)
	}

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return cfg, errors.Wrapf(err, "config: parsing %s", path)
	}

	return cfg, nil
}

// Apply pushes any non-zero eval overrides from c into the eval
// package's term tables. Zero fields mean "not set in vellum.toml" and
// are left alone so the compiled-in defaults survive.
func (c Config) Apply() {
	if c.Eval.TempoBonus != 0 {
		eval.SetTempoBonus(c.Eval.TempoBonus)
	}
	if c.Eval.KingRingPawn != 0 {
		eval.SetKingRingPawnBonus(c.Eval.KingRingPawn)
	}
}

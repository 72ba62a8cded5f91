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

// Package xlog is the engine's diagnostic logger: engine startup, config
// loading, and tuner progress. It is kept strictly
// separate from UCI protocol output, which must stay raw "info ..."
// lines on stdout for GUI compatibility; xlog always writes to stderr.
package xlog

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the process-wide diagnostic logger, writing structured
// human-readable lines to stderr.
var Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
	With().Timestamp().Logger()

// SetLevel adjusts the minimum level xlog emits; callers pass a more
// verbose level under e.g. a --verbose flag.
func SetLevel(level zerolog.Level) {
	Logger = Logger.Level(level)
}

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
	"errors"

	"vellum.dev/x/vellum/internal/engine/context"
	"vellum.dev/x/vellum/internal/uci/cmd"
)

// NewPonderHit builds the "ponderhit" command. Pondering here is a fixed
// infinite search started by "go ponder"; ponderhit just cuts it short
// so the goroutine started by NewGo reports the move it already has.
// The GUI-supplied PonderLimits are recorded but not resumed into —
// deeper support would need the search loop to accept a new deadline
// mid-flight, which vellum doesn't implement.
func NewPonderHit(engine *context.Engine) cmd.Command {
	return cmd.Command{
		Name: "ponderhit",
		Run: func(interaction cmd.Interaction) error {
			if !engine.Pondering {
				return errors.New("ponderhit: no ponder search ongoing")
			}

			engine.Pondering = false
			engine.Search.Stop()
			return nil
		},
	}
}

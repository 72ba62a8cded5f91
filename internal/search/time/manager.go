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

// Package time manages the deadline a search must respect. The search
// itself never calls time.Now: it polls a relaxed atomic flag that a
// single background goroutine flips once the deadline passes.
package time

import (
	"sync/atomic"
	"time"

	"vellum.dev/x/vellum/internal/core"
)

// Manager computes and exposes a search deadline.
type Manager interface {
	// Start arms the deadline and begins the background timer that will
	// flip Expired once it passes.
	Start()

	// Expired reports whether the deadline has passed. Safe to call
	// from the search goroutine on every node; it reads a relaxed
	// atomic flag rather than consulting the clock directly.
	Expired() bool

	// Stop releases the background timer. Safe to call multiple times.
	Stop()
}

// flag is the shared expired-flag plumbing used by every manager
// below: a timer goroutine that flips expired once d elapses.
type flag struct {
	expired atomic.Bool
	timer   *time.Timer
}

func (f *flag) arm(d time.Duration) {
	f.timer = time.AfterFunc(d, func() { f.expired.Store(true) })
}

func (f *flag) Expired() bool { return f.expired.Load() }

func (f *flag) Stop() {
	if f.timer != nil {
		f.timer.Stop()
	}
}

// FixedManager allocates a single fixed duration to the search, used for
// UCI's movetime and as the long failsafe deadline of infinite and
// ponder searches. Its deadline cannot be extended.
type FixedManager struct {
	flag
	Duration time.Duration
}

var _ Manager = (*FixedManager)(nil)

func (m *FixedManager) Start() { m.arm(m.Duration) }

// NormalManager derives a soft budget from the clock and increment the
// GUI reports for both sides, the way a UCI "go wtime ... btime ..."
// command is normally handled: roughly 1/20th of the remaining time,
// plus half the increment, biased by how many moves remain to the next time
// control (0 meaning "sudden death").
type NormalManager struct {
	flag

	Us core.Color

	Time, Increment [core.ColorN]time.Duration
	MovesToGo       int
}

var _ Manager = (*NormalManager)(nil)

func (m *NormalManager) Start() {
	remaining := m.Time[m.Us]
	inc := m.Increment[m.Us]

	movesToGo := m.MovesToGo
	if movesToGo <= 0 {
		movesToGo = 20
	}

	budget := remaining/time.Duration(movesToGo) + inc/2
	// never allocate more than is actually left on the clock, leaving
	// a small safety margin for the GUI's own overhead.
	if ceiling := remaining - 50*time.Millisecond; budget > ceiling {
		budget = ceiling
	}
	if budget < 0 {
		budget = 0
	}

	m.arm(budget)
}

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

package time_test

import (
	stdtime "time"

	"testing"

	"github.com/stretchr/testify/require"

	"vellum.dev/x/vellum/internal/core"
	searchtime "vellum.dev/x/vellum/internal/search/time"
)

func TestFixedManagerExpiresAfterDuration(t *testing.T) {
	m := &searchtime.FixedManager{Duration: 10 * stdtime.Millisecond}
	m.Start()
	defer m.Stop()

	require.False(t, m.Expired())
	stdtime.Sleep(40 * stdtime.Millisecond)
	require.True(t, m.Expired())
}

func TestNormalManagerNeverExceedsRemainingClock(t *testing.T) {
	m := &searchtime.NormalManager{
		Us:   core.White,
		Time: [core.ColorN]stdtime.Duration{core.White: 100 * stdtime.Millisecond},
	}
	m.Start()
	defer m.Stop()

	require.False(t, m.Expired())
	stdtime.Sleep(120 * stdtime.Millisecond)
	require.True(t, m.Expired())
}

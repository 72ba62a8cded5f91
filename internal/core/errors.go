// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
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

package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidFen is returned by FEN parsing on any malformed field: wrong
// file count, unknown piece letter, or a malformed en-passant square.
var ErrInvalidFen = errors.New("invalid fen")

// ErrIllegalMove is returned when the caller asks to play a move that does
// not appear in the current position's legal move list. Make itself
// assumes legality and does not return this error; it is the caller's
// responsibility to validate against GenerateMoves first.
var ErrIllegalMove = errors.New("illegal move")

// ErrInternalInvariantBroken marks a detected violation of a Position
// invariant (e.g. white & black != 0). It represents an engine bug, is
// fatal to the current search, and callers may choose to abort on it.
var ErrInternalInvariantBroken = errors.New("internal invariant broken")

// errInvalidFenf wraps ErrInvalidFen with a formatted detail message.
func errInvalidFenf(format string, args ...any) error {
	return errors.Wrap(ErrInvalidFen, fmt.Sprintf(format, args...))
}

// errInvalidFenWrap wraps the given sentinel error with a formatted
// detail message.
func errInvalidFenWrap(sentinel error, format string, args ...any) error {
	return errors.Wrap(sentinel, fmt.Sprintf(format, args...))
}

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

// Package tt implements the transposition table that caches the result
// of prior searches of a position, keyed by its Zobrist hash.
package tt

import (
	"math/bits"
	"unsafe"

	"vellum.dev/x/vellum/internal/core"
	"vellum.dev/x/vellum/internal/eval"
)

// EntrySize is the size in bytes of a single table entry.
var EntrySize = int(unsafe.Sizeof(Entry{}))

// NewTable allocates a transposition table sized to fit within mbs
// megabytes.
func NewTable(mbs int) *Table {
	size := (mbs * 1024 * 1024) / EntrySize
	if size == 0 {
		size = 1
	}
	return &Table{table: make([]Entry, size), size: size}
}

// Table is a fixed-size, always-replace-by-quality hash table mapping
// Zobrist hashes to search results.
type Table struct {
	table []Entry
	size  int
	epoch uint8
}

// Clear empties every entry in the table.
func (tt *Table) Clear() {
	clear(tt.table)
}

// NextEpoch marks the start of a new search generation; entries from
// earlier epochs become progressively cheaper to overwrite.
func (tt *Table) NextEpoch() {
	tt.epoch++
}

// Resize rebuilds the table at a new size, discarding every entry.
func (tt *Table) Resize(mbs int) {
	size := (mbs * 1024 * 1024) / EntrySize
	if size == 0 {
		size = 1
	}
	*tt = Table{table: make([]Entry, size), size: size}
}

// Store inserts entry into the table, replacing the existing slot only
// if the new entry is of equal or higher quality.
func (tt *Table) Store(entry Entry) {
	target := tt.fetch(entry.Hash)
	entry.epoch = tt.epoch
	if entry.quality() >= target.quality() {
		*target = entry
	}
}

// Probe looks up hash and reports whether the stored entry is usable:
// present and not a hash-index collision with a different key.
func (tt *Table) Probe(hash core.ZobristKey) (Entry, bool) {
	entry := *tt.fetch(hash)
	return entry, entry.Type != NoEntry && entry.Hash == hash
}

func (tt *Table) fetch(hash core.ZobristKey) *Entry {
	return &tt.table[tt.indexOf(hash)]
}

// indexOf maps hash into [0, size) via a fast multiplicative reduction,
// avoiding the bias and cost of a plain modulo.
// https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction/
func (tt *Table) indexOf(hash core.ZobristKey) uint {
	index, _ := bits.Mul(uint(hash), uint(tt.size))
	return index
}

// Entry is a single cached search result.
type Entry struct {
	Hash core.ZobristKey
	Move core.Move

	Value Eval
	Type  EntryType

	Depth uint8
	epoch uint8
}

// quality ranks entries for replacement: newer and deeper searches are
// more valuable and harder to evict.
func (entry *Entry) quality() uint8 {
	return entry.epoch + entry.Depth/3
}

// EntryType records what kind of bound an Entry's Value represents.
type EntryType uint8

const (
	NoEntry EntryType = iota
	ExactEntry
	LowerBound
	UpperBound
)

// EvalFrom converts score, expressed as plies-to-mate from the search
// root, into the ply-independent form stored in the table.
func EvalFrom(score eval.Eval, ply int) Eval {
	switch {
	case score > eval.WinInMaxPly:
		score += eval.Eval(ply)
	case score < eval.LoseInMaxPly:
		score -= eval.Eval(ply)
	}
	return Eval(score)
}

// Eval is a mate-distance-normalised score: it stores plies-to-mate from
// the position where it was recorded rather than from the search root,
// so the same entry stays valid however deep it is reused.
type Eval eval.Eval

// Eval converts e back into a plies-to-mate-from-root score for use at
// the given ply.
func (e Eval) Eval(ply int) eval.Eval {
	score := eval.Eval(e)
	switch {
	case score > eval.WinInMaxPly:
		score -= eval.Eval(ply)
	case score < eval.LoseInMaxPly:
		score += eval.Eval(ply)
	}
	return score
}

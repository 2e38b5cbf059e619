//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package transpositiontable

import (
	. "github.com/eduherminio/chesscore/internal/types"
)

// TtEntry is a single, densely packed slot of a TT cluster: 10 bytes.
// Only the upper 16 bits of the full Zobrist key are kept (key16) -
// collisions are accepted as the cost of keeping each entry this small;
// a full key is never stored or compared.
type TtEntry struct {
	key16 uint16
	move  uint16
	eval  int16
	value int16

	depth    uint8
	genBound uint8 // bits 0-4 generation, bit 5 pv, bits 6-7 bound
}

const (
	// TtEntrySize is the size in bytes of a single TtEntry.
	TtEntrySize = 10

	// genBound8 packing: low bits generation, high bits bound - as
	// specified (bound type is the high field, generation the low one).
	// A pv flag is threaded through the single bit between them; there
	// is no room for it in a pure 6-low/2-high split once it is kept,
	// so generation is 5 bits here (genCycle=32) rather than 6.
	genMask   = uint8(0b0001_1111)
	pvMask    = uint8(0b0010_0000)
	boundMask = uint8(0b1100_0000)
	boundShift = uint8(6)
	genCycle  = 32 // number of distinct generation values (5 bits)
)

func key16Of(key Key) uint16 {
	return uint16(uint64(key) >> 48)
}

// Key16 returns the stored 16-bit verification key.
func (e *TtEntry) Key16() uint16 {
	return e.key16
}

// Move returns the packed best/refutation move stored for this position.
func (e *TtEntry) Move() Move {
	return Move(e.move)
}

// Value returns the (mate-distance-adjusted, TT-relative) search value.
func (e *TtEntry) Value() Value {
	return Value(e.value)
}

// Eval returns the static evaluation stored alongside the search value.
func (e *TtEntry) Eval() Value {
	return Value(e.eval)
}

// Depth returns the depth the entry was searched to.
func (e *TtEntry) Depth() int8 {
	return int8(e.depth)
}

// Bound returns the bound type (ALPHA/BETA/EXACT) of the stored value.
func (e *TtEntry) Bound() ValueType {
	return ValueType((e.genBound & boundMask) >> boundShift)
}

// IsPv reports whether this entry was stored from a PV node.
func (e *TtEntry) IsPv() bool {
	return e.genBound&pvMask != 0
}

// Generation returns the table generation this entry was last written in.
func (e *TtEntry) Generation() uint8 {
	return e.genBound & genMask
}

// relativeAge returns how many generations old this entry is relative to
// the table's current generation, wrapping around genCycle.
func (e *TtEntry) relativeAge(currentGen uint8) uint8 {
	return (currentGen - e.Generation() + genCycle) & genMask
}

// quality is the replacement-policy score used when two candidate slots
// within a cluster both fail to match key16: higher quality survives.
// Deeper and newer entries are worth more; PV entries get a small bonus
// so principal-variation information is not evicted by noisy siblings.
func (e *TtEntry) quality(currentGen uint8) int {
	q := int(e.depth) - 2*int(e.relativeAge(currentGen))
	if e.IsPv() {
		q += 2
	}
	return q
}

func (e *TtEntry) isEmpty() bool {
	return e.genBound == 0 && e.depth == 0 && e.key16 == 0
}

func (e *TtEntry) store(key Key, move Move, depth int8, value Value, eval Value, valueType ValueType, isPv bool, generation uint8) {
	k16 := key16Of(key)
	// preserve the existing move when the new store carries none and the
	// slot already refers to the same position - a deeper re-search of a
	// cut node should not blow away a known good move.
	if move == MoveNone && k16 == e.key16 {
		move = e.Move()
	}
	e.key16 = k16
	e.move = uint16(move)
	e.value = int16(value)
	if eval != ValueNA {
		e.eval = int16(eval)
	}
	e.depth = uint8(depth)
	var b uint8
	if isPv {
		b = pvMask
	}
	e.genBound = b | (uint8(valueType)<<boundShift)&boundMask | generation&genMask
}

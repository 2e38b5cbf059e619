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

// Package history provides data structures and functionality to manage
// history driven move tables (e.g. history counter, counter moves, etc.)
package history

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/eduherminio/chesscore/internal/types"
)

var out = message.NewPrinter(language.German)

// continuationSlots is the number of prior plies a continuation history
// table looks back to (the move just played and the move before that -
// "countermove history" and "follow-up history" in common engine usage).
const continuationSlots = 2

// historyMax bounds all history scores so that repeated beta cutoffs at
// high depth cannot overflow the packed move-ordering keys that combine
// these scores with other heuristics.
const historyMax = 1 << 14

// History is a data structure updated during search to provide the move
// generator with valuable information for move sorting: a classic
// from/to "butterfly" table for quiet moves, a countermove table, a
// capture history indexed by piece/to-square/captured-piece-type, and a
// short continuation history keyed by the move(s) played just before.
type History struct {
	HistoryCount [2][64][64]int64
	CounterMoves [64][64]Move

	// CaptureHistory scores quiet-capture-like SEE-losing or equal
	// captures for move ordering, independent of side to move since the
	// moving piece already encodes color.
	CaptureHistory [PieceLength][64][PtLength]int32

	// ContinuationHistory[i] scores a quiet move by the (piece, to) of
	// the move played i+1 plies earlier, capturing "this reply tends to
	// follow that move" patterns LMR/LMP alone cannot see.
	ContinuationHistory [continuationSlots][PieceLength][64][PieceLength][64]int32
}

func (h History) String() string {
	sb := strings.Builder{}
	for sf := SqA1; sf < SqNone; sf++ {
		for st := SqA1; st < SqNone; st++ {
			sb.WriteString(out.Sprintf("Move=%s%s: ", sf.String(), st.String()))
			for c := White; c <= 1; c++ {
				count := h.HistoryCount[c][sf][st]
				sb.WriteString(out.Sprintf("%s=%-7d ", c.String(), count))
			}
			m := h.CounterMoves[sf][st]
			sb.WriteString(out.Sprintf("cm=%s\n", m.StringUci()))
		}
	}
	return sb.String()
}

// UpdateCaptureHistory bumps the capture history score for a capturing
// move that caused a beta cutoff, and damps scores of other captures
// tried earlier at the same node so bad captures sink over time (the
// same gravity-towards-zero idea used for the butterfly table).
func (h *History) UpdateCaptureHistory(piece Piece, to Square, captured PieceType, depth int, good bool, tried []capturedAt) {
	bonus := int32(depth * depth)
	if !good {
		bonus = -bonus
	}
	h.bumpCapture(piece, to, captured, bonus)
	for _, c := range tried {
		if c.piece == piece && c.to == to && c.captured == captured {
			continue
		}
		h.bumpCapture(c.piece, c.to, c.captured, -bonus)
	}
}

func (h *History) bumpCapture(piece Piece, to Square, captured PieceType, bonus int32) {
	cur := &h.CaptureHistory[piece][to][captured]
	*cur += bonus - (*cur)*abs32(bonus)/historyMax
}

// CaptureScore returns the current capture history score used to order
// captures that are not already ordered by MVV/LVA or SEE.
func (h *History) CaptureScore(piece Piece, to Square, captured PieceType) int32 {
	return h.CaptureHistory[piece][to][captured]
}

// capturedAt names one capture attempted earlier at the current node -
// used by UpdateCaptureHistory to damp the alternatives that failed to
// produce a cutoff.
type capturedAt struct {
	piece    Piece
	to       Square
	captured PieceType
}

// UpdateContinuation bumps the continuation history score for a quiet
// move given the piece/to-square of the move played `slot+1` plies ago.
func (h *History) UpdateContinuation(slot int, prevPiece Piece, prevTo Square, piece Piece, to Square, bonus int32) {
	if slot < 0 || slot >= continuationSlots {
		return
	}
	cur := &h.ContinuationHistory[slot][prevPiece][prevTo][piece][to]
	*cur += bonus - (*cur)*abs32(bonus)/historyMax
}

// ContinuationScore returns the current continuation history score.
func (h *History) ContinuationScore(slot int, prevPiece Piece, prevTo Square, piece Piece, to Square) int32 {
	if slot < 0 || slot >= continuationSlots {
		return 0
	}
	return h.ContinuationHistory[slot][prevPiece][prevTo][piece][to]
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// NewHistory creates a new History instance.
func NewHistory() *History {
	return &History{}
}

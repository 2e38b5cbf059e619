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

// Package transpositiontable implements a cache of previous search results
// keyed by Zobrist hash. Entries are grouped into fixed-size clusters that
// fit a single cache line; lookups and stores are racy by design so that
// multiple search threads can share one table without locking (see
// TtTable.Probe/Put) - a stale or torn read is simply treated as a miss
// or a slightly wrong move ordering hint, never as a correctness bug.
package transpositiontable

import (
	"math/bits"
	"time"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/eduherminio/chesscore/internal/logging"
	. "github.com/eduherminio/chesscore/internal/types"
	"github.com/eduherminio/chesscore/internal/util"
)

var out = message.NewPrinter(language.German)

const (
	// MaxSizeInMB maximal memory usage of tt
	MaxSizeInMB = 1_048_576

	// entriesPerCluster matches one 32-byte cache line: 3*10 + 2 padding.
	entriesPerCluster = 3
)

// cluster groups entriesPerCluster TtEntry slots that share one cache
// line. On Probe/Put all slots of the addressed cluster are scanned
// linearly for a key16 match before falling back to the replacement
// policy.
type cluster struct {
	entries [entriesPerCluster]TtEntry
	_       [2]byte // pad to 32 bytes
}

// TtTable is the transposition table. It is safe for concurrent Probe and
// Put from multiple search threads (Lazy SMP): writes may race and tear,
// but torn entries are caught by key16 mismatch and simply not used.
// Resize and Clear are NOT safe to call concurrently with searching.
type TtTable struct {
	log          *logging.Logger
	clusters     []cluster
	clusterCount uint64
	sizeInByte   uint64
	generation   uint8
	entryCount   uint64
	Stats        TtStats
}

// TtStats holds statistical data on tt usage
type TtStats struct {
	numberOfPuts       uint64
	numberOfCollisions uint64
	numberOfOverwrites uint64
	numberOfUpdates    uint64
	numberOfProbes     uint64
	numberOfHits       uint64
	numberOfMisses     uint64
}

// NewTtTable creates a new TtTable sized to fit within sizeInMByte.
func NewTtTable(sizeInMByte int) *TtTable {
	tt := TtTable{
		log: myLogging.GetLog(),
	}
	tt.Resize(sizeInMByte)
	return &tt
}

// Resize resizes the tt table. All entries are cleared. Not safe to call
// concurrently with a running search.
func (tt *TtTable) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		tt.log.Error(out.Sprintf("Requested size for TT of %d MB reduced to max of %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}

	clusterSize := uint64(unsafe.Sizeof(cluster{}))
	tt.sizeInByte = uint64(sizeInMByte) * MB
	tt.clusterCount = tt.sizeInByte / clusterSize
	if tt.clusterCount == 0 {
		tt.clusters = nil
		tt.sizeInByte = 0
		return
	}

	tt.clusters = make([]cluster, tt.clusterCount)
	tt.sizeInByte = tt.clusterCount * clusterSize
	tt.entryCount = 0
	tt.generation = 0

	tt.log.Info(out.Sprintf("TT Size %d MByte, Capacity %d clusters of %d entries (entry=%dByte) (Requested were %d MBytes)",
		tt.sizeInByte/MB, tt.clusterCount, entriesPerCluster, unsafe.Sizeof(TtEntry{}), sizeInMByte))
	tt.log.Debug(util.MemStat())
}

// clusterOf returns a pointer to the cluster addressed by key using
// Lemire's multiplicative-reduction trick: (key * clusterCount) >> 64.
// This avoids a division/modulo on the hot path and distributes keys
// over exactly clusterCount buckets without requiring a power-of-two size.
func (tt *TtTable) clusterOf(key Key) *cluster {
	hi, _ := bits.Mul64(uint64(key), tt.clusterCount)
	return &tt.clusters[hi]
}

// GetEntry returns a pointer to the matching entry in the addressed
// cluster, or nil if no slot's key16 matches. Does not affect statistics.
func (tt *TtTable) GetEntry(key Key) *TtEntry {
	if tt.clusterCount == 0 {
		return nil
	}
	c := tt.clusterOf(key)
	k16 := key16Of(key)
	for i := range c.entries {
		if !c.entries[i].isEmpty() && c.entries[i].key16 == k16 {
			return &c.entries[i]
		}
	}
	return nil
}

// Probe returns a pointer to the matching entry, or nil on a miss.
// Updates hit/miss statistics.
func (tt *TtTable) Probe(key Key) *TtEntry {
	if tt.clusterCount == 0 {
		return nil
	}
	tt.Stats.numberOfProbes++
	e := tt.GetEntry(key)
	if e != nil {
		tt.Stats.numberOfHits++
		return e
	}
	tt.Stats.numberOfMisses++
	return nil
}

// Put stores a search result into the tt. If a slot in the addressed
// cluster already matches this position's key16 it is updated in place;
// otherwise the lowest quality slot in the cluster (see TtEntry.quality)
// is evicted. A move of MoveNone never overwrites an existing move for
// the same position - only a fresh best move is worth remembering.
func (tt *TtTable) Put(key Key, move Move, depth int8, value Value, valueType ValueType, eval Value) {
	if tt.clusterCount == 0 {
		return
	}
	tt.Stats.numberOfPuts++

	c := tt.clusterOf(key)
	k16 := key16Of(key)
	isPv := valueType == EXACT

	var target *TtEntry
	worst := 1 << 30
	for i := range c.entries {
		e := &c.entries[i]
		if e.isEmpty() {
			target = e
			tt.entryCount++
			break
		}
		if e.key16 == k16 {
			tt.Stats.numberOfUpdates++
			target = e
			break
		}
		if q := e.quality(tt.generation); q < worst {
			worst = q
			target = e
		}
	}

	if target == nil {
		return
	}
	if target.key16 != 0 && target.key16 != k16 {
		tt.Stats.numberOfCollisions++
		tt.Stats.numberOfOverwrites++
	}
	target.store(key, move, depth, value, eval, valueType, isPv, tt.generation)
}

// Clear clears all entries of the tt. Not safe to call concurrently with
// a running search.
func (tt *TtTable) Clear() {
	tt.clusters = make([]cluster, tt.clusterCount)
	tt.entryCount = 0
	tt.generation = 0
	tt.Stats = TtStats{}
}

// Hashfull returns how full the transposition table is in permill, as
// required by the UCI "info hashfull" field. Sampled from the first
// 1000 clusters rather than scanning the whole table.
func (tt *TtTable) Hashfull() int {
	if tt.clusterCount == 0 {
		return 0
	}
	sample := tt.clusterCount
	if sample > 1000 {
		sample = 1000
	}
	used := 0
	for i := uint64(0); i < sample; i++ {
		for j := range tt.clusters[i].entries {
			if !tt.clusters[i].entries[j].isEmpty() && tt.clusters[i].entries[j].Generation() == tt.generation {
				used++
			}
		}
	}
	return (used * 1000) / int(sample*entriesPerCluster)
}

// String returns a string representation of this TtTable instance
func (tt *TtTable) String() string {
	return out.Sprintf("TT: size %d MB clusters %d entries/cluster %d (entry=%dByte) entries %d (%d%%o) puts %d "+
		"updates %d collisions %d overwrites %d probes %d hits %d (%d%%) misses %d (%d%%)",
		tt.sizeInByte/MB, tt.clusterCount, entriesPerCluster, unsafe.Sizeof(TtEntry{}), tt.entryCount, tt.Hashfull(),
		tt.Stats.numberOfPuts, tt.Stats.numberOfUpdates, tt.Stats.numberOfCollisions, tt.Stats.numberOfOverwrites, tt.Stats.numberOfProbes,
		tt.Stats.numberOfHits, (tt.Stats.numberOfHits*100)/(1+tt.Stats.numberOfProbes),
		tt.Stats.numberOfMisses, (tt.Stats.numberOfMisses*100)/(1+tt.Stats.numberOfProbes))
}

// Len returns the number of non empty entries in the tt
func (tt *TtTable) Len() uint64 {
	return tt.entryCount
}

// AgeEntries advances the table's generation counter. Entries are not
// rewritten - relativeAge is computed lazily from the stored generation
// against the table's current generation at replacement time, so aging
// the whole table is an O(1) operation instead of an O(n) sweep.
func (tt *TtTable) AgeEntries() {
	startTime := time.Now()
	tt.generation = (tt.generation + 1) & genMask
	elapsed := time.Since(startTime)
	tt.log.Debug(out.Sprintf("Advanced TT generation to %d (%d entries of %d clusters) in %d ns\n",
		tt.generation, tt.entryCount, len(tt.clusters), elapsed.Nanoseconds()))
}

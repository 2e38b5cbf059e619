/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package config

// searchConfiguration is a data structure to hold the configuration of an
// instance of a search.
type searchConfiguration struct {
	// Opening book
	UseBook    bool
	BookPath   string
	BookFile   string
	BookFormat string

	// Ponder
	UsePonder bool

	// Quiescence search
	UseQuiescence bool
	UseQSStandpat bool
	UseSEE        bool

	// Move ordering
	UsePVS       bool
	UseKiller    bool
	UseIID       bool
	IIDDepth     int
	IIDReduction int

	// Transposition Table
	UseTT      bool
	TTSize     int
	UseTTMove  bool
	UseTTValue bool
	UseQSTT    bool
	UseEvalTT  bool

	// Prunings pre move gen
	UseMDP       bool
	UseRFP       bool
	UseNullMove  bool
	NmpDepth     int
	NmpReduction int

	// extensions of search depth
	UseExt       bool
	UseCheckExt  bool
	UseThreatExt bool

	// prunings after move generation but before making move
	UseFP            bool
	UseQFP           bool
	UseLmp           bool
	UseLmr           bool
	LmrDepth         int
	LmrMovesSearched int

	// razoring - drop straight to quiescence when static eval is far
	// below alpha near the leaves
	UseRazoring bool
	RazorMargin int

	// history heuristics
	UseHistoryCounter bool
	UseCounterMoves   bool

	// extensions
	UseExtAddDepth   bool
	UsePromNonQuiet  bool

	// root search strategy selection - iterative deepening re-uses the
	// previous iteration's value as the centre of a narrow window
	// (aspiration) or as the target value for a null-window MTD(f) pass.
	UseAspiration       bool
	AspirationMargin    int
	UseMTDf             bool
	MTDfStep            int

	// ProbCut - a shallow reduced-depth search used to prove a fail-high
	// at very little cost before committing to a full-depth search.
	UseProbCut     bool
	ProbCutDepth   int
	ProbCutMargin  int

	// Singular extensions - re-search excluding the TT move at a reduced
	// depth/window to detect forced ("singular") moves worth extending.
	UseSingularExtension bool
	SingularDepth        int
	SingularMargin       int

	// Internal Iterative Reduction - when no TT move is available at a
	// node that would otherwise warrant a full-depth search, shave one
	// ply off depth instead of doing a full IID pre-search.
	UseIIR      bool
	IIRDepth    int
	IIRReduction int

	// Lazy SMP thread pool
	Threads int

	// MultiPV - number of principal variations reported from the root
	MultiPv int

	// Chess960 (Fischer Random) castling rules
	UseChess960 bool
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Search.UseBook = true
	Settings.Search.BookPath = "./assets/books"
	Settings.Search.BookFile = "book.txt"
	Settings.Search.BookFormat = "Simple"

	Settings.Search.UsePonder = true

	Settings.Search.UseQuiescence = true
	Settings.Search.UseQSStandpat = true
	Settings.Search.UseSEE = true

	Settings.Search.UsePVS = true
	Settings.Search.UseKiller = true
	Settings.Search.UseIID = true
	Settings.Search.IIDDepth = 6
	Settings.Search.IIDReduction = 2

	Settings.Search.UseTT = true
	Settings.Search.TTSize = 128
	Settings.Search.UseTTMove = true
	Settings.Search.UseTTValue = true
	Settings.Search.UseQSTT = true
	Settings.Search.UseEvalTT = false

	Settings.Search.UseMDP = true
	Settings.Search.UseRFP = false
	Settings.Search.UseNullMove = true
	Settings.Search.NmpDepth = 3
	Settings.Search.NmpReduction = 2

	Settings.Search.UseExt = true
	Settings.Search.UseCheckExt = true
	Settings.Search.UseThreatExt = false

	Settings.Search.UseFP = false
	Settings.Search.UseQFP = false
	Settings.Search.UseLmp = true
	Settings.Search.UseLmr = true
	Settings.Search.LmrDepth = 3
	Settings.Search.LmrMovesSearched = 3

	Settings.Search.UseRazoring = false
	Settings.Search.RazorMargin = 531

	Settings.Search.UseHistoryCounter = true
	Settings.Search.UseCounterMoves = true

	Settings.Search.UseExtAddDepth = true
	Settings.Search.UsePromNonQuiet = false

	Settings.Search.UseAspiration = true
	Settings.Search.AspirationMargin = 50
	Settings.Search.UseMTDf = false
	Settings.Search.MTDfStep = 10

	Settings.Search.UseProbCut = false
	Settings.Search.ProbCutDepth = 5
	Settings.Search.ProbCutMargin = 100

	Settings.Search.UseSingularExtension = false
	Settings.Search.SingularDepth = 8
	Settings.Search.SingularMargin = 0

	Settings.Search.UseIIR = false
	Settings.Search.IIRDepth = 4
	Settings.Search.IIRReduction = 1

	Settings.Search.Threads = 1
	Settings.Search.MultiPv = 1
	Settings.Search.UseChess960 = false
}

// set defaults for configurations here in case a configuration
// is not available from the config file
func setupSearch() {

}

package bench

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/boardgate/board"
)

var ErrInvalidDepth = errors.New("invalid perft depth")

// Result holds the counters of one perft run. Move counters only cover the moves of the last ply.
type Result struct {
	Depth     int
	Nodes     uint64
	Captures  uint64
	EnPassant uint64
	Promotion uint64
	Checks    uint64
	Elapsed   time.Duration
}

func (r Result) String() string {
	rate := 0
	if r.Elapsed > 0 {
		rate = int(float64(r.Nodes) / r.Elapsed.Seconds())
	}
	return message.NewPrinter(language.English).
		Sprintf("d=%d nodes=%d rate=%dn/s cap=%d enp=%d pro=%d chk=%d (%.3fs elapsed)",
			r.Depth, r.Nodes, rate, r.Captures, r.EnPassant, r.Promotion, r.Checks, r.Elapsed.Seconds())
}

// Perft counts the leaf nodes of the legal move tree of side s. With verbose set, the subtree size of
// every root move is sent to out before the summary.
func Perft(b *board.Board, s board.Side, depth int, parallel, verbose bool, out chan<- string) (Result, error) {
	if depth < 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidDepth, depth)
	}
	if b == nil {
		b = board.Default()
	}

	var run perftFunc
	if parallel {
		run = runPerftParallel
	} else {
		run = runPerft
	}

	c := &counters{}
	start := time.Now()
	run(b, s, depth, true, verbose, out, c)
	res := c.result(depth, time.Since(start))

	if out != nil {
		out <- res.String()
	}
	return res, nil
}

type counters struct {
	nodes, cap, enp, pro, chk uint64
}

func (c *counters) result(depth int, elapsed time.Duration) Result {
	return Result{
		Depth:     depth,
		Nodes:     atomic.LoadUint64(&c.nodes),
		Captures:  atomic.LoadUint64(&c.cap),
		EnPassant: atomic.LoadUint64(&c.enp),
		Promotion: atomic.LoadUint64(&c.pro),
		Checks:    atomic.LoadUint64(&c.chk),
		Elapsed:   elapsed,
	}
}

// leaf records mv, played by s, as a move of the last ply. after is the position once mv is made.
func (c *counters) leaf(after *board.Board, s board.Side, mv board.Move) {
	atomic.AddUint64(&c.nodes, 1)
	if mv.IsCapture() {
		atomic.AddUint64(&c.cap, 1)
	}
	if mv.IsEnPassant() {
		atomic.AddUint64(&c.enp, 1)
	}
	if mv.Promotion() != board.PieceUnknown {
		atomic.AddUint64(&c.pro, 1)
	}
	if after.IsInCheck(s.Opposite()) {
		atomic.AddUint64(&c.chk, 1)
	}
}

type perftFunc func(b *board.Board, s board.Side, d int, root, verbose bool, out chan<- string, c *counters) uint64

func runPerft(b *board.Board, s board.Side, d int, root, verbose bool, out chan<- string, c *counters) uint64 {
	if d == 0 {
		atomic.AddUint64(&c.nodes, 1)
		return 1
	}

	var sum uint64
	for _, mv := range b.LegalMoves(s) {
		var child uint64
		bb := b.Clone()
		bb.MakeMove(mv)
		if d == 1 {
			c.leaf(bb, s, mv)
			child = 1
		} else {
			child = runPerft(bb, s.Opposite(), d-1, false, verbose, out, c)
		}
		if verbose && root && out != nil {
			out <- fmt.Sprintf("%s: %d", mv.UCI(), child)
		}
		sum += child
	}
	return sum
}

// runPerftParallel fans the root moves out to goroutines and walks every subtree sequentially.
func runPerftParallel(b *board.Board, s board.Side, d int, root, verbose bool, out chan<- string, c *counters) uint64 {
	if d <= 1 {
		return runPerft(b, s, d, root, verbose, out, c)
	}

	var sum uint64
	var wg sync.WaitGroup
	for _, mv := range b.LegalMoves(s) {
		mv := mv
		wg.Add(1)
		go func() {
			defer wg.Done()
			bb := b.Clone()
			bb.MakeMove(mv)
			child := runPerft(bb, s.Opposite(), d-1, false, verbose, out, c)
			if verbose && root && out != nil {
				out <- fmt.Sprintf("%s: %d", mv.UCI(), child)
			}
			atomic.AddUint64(&sum, child)
		}()
	}
	wg.Wait()
	return sum
}

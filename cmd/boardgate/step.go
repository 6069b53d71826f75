package main

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/daystram/boardgate/board"
	"github.com/daystram/boardgate/session"
)

// step plays random legal moves through the session and checks the board invariants after every ply.
func step(w io.Writer, s *session.Session, plies int, seed uint64) error {
	log.Println("============ step")
	var (
		timesGenerateMoves []time.Duration
		timesSubmit        []time.Duration
		timesState         []time.Duration
	)
	r := board.NewPseudoRand(seed)
	st := s.Status()
	for ply := 0; ply < plies && st.IsRunning(); ply++ {
		t1 := time.Now()
		b := s.Board()
		mvs := b.LegalMoves(s.Turn())
		timesGenerateMoves = append(timesGenerateMoves, time.Since(t1))
		if len(mvs) == 0 {
			return fmt.Errorf("unexpected move exhaustion: state=%s", st)
		}
		mv := mvs[r.Intn(len(mvs))]

		t1 = time.Now()
		if _, err := s.Submit(mv.From(), mv.To(), mv.Promotion()); err != nil {
			return fmt.Errorf("generated move %s rejected: %w", mv, err)
		}
		timesSubmit = append(timesSubmit, time.Since(t1))
		if err := s.Board().CheckInvariants(); err != nil {
			return fmt.Errorf("after %s: %w", mv, err)
		}

		t1 = time.Now()
		st = s.Status()
		timesState = append(timesState, time.Since(t1))

		fmt.Fprintf(w, "\n===== [#%d] %s: %s\n", ply/2+1, s.Turn().Opposite(), mv.Algebra())
		fmt.Fprintln(w, s.Board().Dump())
	}

	avg := func(ds []time.Duration) time.Duration {
		if len(ds) == 0 {
			return 0
		}
		var sum time.Duration
		for _, d := range ds {
			sum += d
		}
		return sum / time.Duration(len(ds))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, st)
	fmt.Fprintln(w, s.Notation())
	fmt.Fprintln(w, "genmv:", avg(timesGenerateMoves))
	fmt.Fprintln(w, "submit:", avg(timesSubmit))
	fmt.Fprintln(w, "state:", avg(timesState))
	return nil
}

package main

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/daystram/boardgate/session"
)

func movegen(w io.Writer, s *session.Session, draw bool) error {
	log.Println("============ movegen")
	b := s.Board()
	fmt.Fprintln(w, "to move:", s.Turn())
	fmt.Fprintln(w, b.Dump())
	fmt.Fprintln(w, s.Status())
	if en, ok := b.EnPassant(); ok {
		fmt.Fprintln(w, "en passant:", en)
	}

	for _, from := range b.Side(s.Turn()).Squares() {
		if dsts := s.Legal(from); len(dsts) > 0 {
			fmt.Fprintf(w, "%s: %s\n", from, strings.Join(notations(dsts), " "))
		}
	}

	mvs := b.LegalMoves(s.Turn())
	for i, mv := range mvs {
		fmt.Fprintf(w, "option %*d: [%s] [%s] %s %s %s => %s (cap=%v) (enp=%v) (pro=%s)\n",
			len(strconv.Itoa(len(mvs))), i+1, mv.UCI(), mv.Algebra(), s.Turn(), mv.Piece(), mv.From(), mv.To(), mv.IsCapture(), mv.IsEnPassant(), mv.Promotion())
		if draw {
			bb := b.Clone()
			bb.MakeMove(mv)
			fmt.Fprintln(w, bb.Draw())
		}
	}
	return nil
}

package main

import (
	"log"

	"github.com/daystram/boardgate/bench"
	"github.com/daystram/boardgate/session"
)

func perft(s *session.Session, depth int, parallel bool) error {
	name := "dfs"
	if parallel {
		name = "parallel dfs"
	}
	log.Printf("============ perft(%d): %s\n", depth, name)

	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for l := range out {
			log.Println(l)
		}
	}()

	_, err := bench.Perft(s.Board(), s.Turn(), depth, parallel, true, out)
	close(out)
	<-done
	return err
}

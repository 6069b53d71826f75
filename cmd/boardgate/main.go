package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"

	"github.com/daystram/boardgate/session"
	"github.com/daystram/boardgate/square"
)

const (
	exitOK = iota
	exitErr
)

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")

	movegenRun  = flag.Bool("movegen", false, "run movegen mode")
	movegenDraw = flag.Bool("movegen.draw", false, "draw every legal move in movegen mode")

	stepRun   = flag.Bool("step", false, "run step mode")
	stepPlies = flag.Int("step.plies", 500, "maximum plies in step mode")
	stepSeed  = flag.Uint64("step.seed", 1, "random seed in step mode")

	perftDepth    = flag.Int("perft", -1, "run perft to the given depth")
	perftParallel = flag.Bool("perft.parallel", true, "fan perft root moves out to goroutines")
)

func main() {
	flag.Parse()

	if *profile {
		runProfiler()
	}

	err := realMain(flag.Args())
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		log.Printf("starting pprof endpoint: http://%s/debug/pprof\n", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}

// realMain replays args, a list of moves in coordinate notation, before running the selected mode.
func realMain(args []string) error {
	s, err := replay(args)
	if err != nil {
		return err
	}
	if *movegenRun {
		return movegen(os.Stdout, s, *movegenDraw)
	}
	if *stepRun {
		return step(os.Stdout, s, *stepPlies, *stepSeed)
	}
	if *perftDepth >= 0 {
		return perft(s, *perftDepth, *perftParallel)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	return session.NewInterface(s, os.Stdin, os.Stdout, session.WithParallelPerft(*perftParallel)).Run(ctx)
}

func replay(mvs []string) (*session.Session, error) {
	s := session.New()
	for _, m := range mvs {
		from, to, promote, err := session.ParseMove(m)
		if err != nil {
			return nil, err
		}
		if _, err := s.Submit(from, to, promote); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func notations(sqs []square.Square) []string {
	ns := make([]string, 0, len(sqs))
	for _, sq := range sqs {
		ns = append(ns, sq.Notation())
	}
	return ns
}

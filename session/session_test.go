package session

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/daystram/boardgate/board"
	"github.com/daystram/boardgate/square"
)

type bufferLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *bufferLogger) log(a ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprint(a...))
}

func mustSubmit(t *testing.T, s *Session, mvs ...string) {
	t.Helper()
	for _, m := range mvs {
		from, to, promote, err := ParseMove(m)
		if err != nil {
			t.Fatal("unexpected error:", err)
		}
		if _, err := s.Submit(from, to, promote); err != nil {
			t.Fatalf("unexpected error submitting %s: %v", m, err)
		}
	}
}

func TestSubmit(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		played  []string
		move    string
		want    string
		wantErr error
	}{
		{name: "opening move", move: "e2e4", want: "e2e4"},
		{name: "reply", played: []string{"e2e4"}, move: "e7e5", want: "e7e5"},
		{name: "dark moves first", move: "e7e5", wantErr: ErrNotYourTurn},
		{name: "light moves twice", played: []string{"e2e4"}, move: "d2d4", wantErr: ErrNotYourTurn},
		{name: "empty origin", move: "e3e4", wantErr: board.ErrNoPieceAtOrigin},
		{name: "own piece", move: "a1a2", wantErr: board.ErrSelfCapture},
		{name: "unreachable", move: "e2e5", wantErr: board.ErrUnreachable},
		{name: "knight cannot promote", move: "g1f3q", wantErr: board.ErrUnreachable},
		{name: "ignoring check", played: []string{"e2e4", "f7f5", "d2d3", "f5f4", "d1h5"}, move: "a7a6", wantErr: board.ErrKingExposed},
		{name: "blocking check", played: []string{"e2e4", "f7f5", "d2d3", "f5f4", "d1h5"}, move: "g7g6", want: "g7g6"},
		{name: "en passant", played: []string{"e2e4", "a7a6", "e4e5", "d7d5"}, move: "e5d6", want: "e5d6"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			logger := &bufferLogger{}
			s := New(WithLogger(logger.log))
			mustSubmit(t, s, tt.played...)
			before := s.Board().Dump()
			turn := s.Turn()

			from, to, promote, err := ParseMove(tt.move)
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			mv, err := s.Submit(from, to, promote)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("unexpected error: got=%v want=%v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				if diff := cmp.Diff(before, s.Board().Dump()); diff != "" {
					t.Errorf("board changed on rejection (-before +after):\n%s", diff)
				}
				if s.Turn() != turn {
					t.Errorf("unexpected turn: got=%v want=%v", s.Turn(), turn)
				}
				if len(s.History()) != len(tt.played) {
					t.Errorf("unexpected history length: got=%d want=%d", len(s.History()), len(tt.played))
				}
				if len(logger.lines) != 1 {
					t.Fatalf("unexpected log lines: %v", logger.lines)
				}
				return
			}
			if mv.UCI() != tt.want {
				t.Errorf("unexpected move: got=%s want=%s", mv.UCI(), tt.want)
			}
			if s.Turn() != turn.Opposite() {
				t.Errorf("unexpected turn: got=%v want=%v", s.Turn(), turn.Opposite())
			}
			if len(logger.lines) != 0 {
				t.Errorf("unexpected log lines: %v", logger.lines)
			}
		})
	}
}

func TestSubmitLogsReason(t *testing.T) {
	t.Parallel()
	logger := &bufferLogger{}
	s := New(WithLogger(logger.log))
	_, _ = s.Submit(square.E2, square.E5, board.PieceUnknown)
	_, _ = s.Submit(square.E7, square.E5, board.PieceUnknown)

	want := []string{
		"rejected e2e5: illegal move: destination unreachable",
		"rejected e7e5: not your turn: Light to move",
	}
	if diff := cmp.Diff(want, logger.lines); diff != "" {
		t.Errorf("unexpected log (-want +got):\n%s", diff)
	}
}

func TestSubmitPromotion(t *testing.T) {
	t.Parallel()
	b, err := board.NewBoard(board.WithPlacement(
		board.Placement{Square: square.E1, Side: board.SideLight, Piece: board.PieceKing},
		board.Placement{Square: square.B7, Side: board.SideLight, Piece: board.PiecePawn},
		board.Placement{Square: square.A8, Side: board.SideDark, Piece: board.PieceKnight},
		board.Placement{Square: square.H8, Side: board.SideDark, Piece: board.PieceKing},
	))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	tests := []struct {
		move    string
		want    board.PieceType
		wantErr error
	}{
		{move: "b7b8", want: board.PieceQueen},
		{move: "b7b8q", want: board.PieceQueen},
		{move: "b7b8n", want: board.PieceKnight},
		{move: "b7a8r", want: board.PieceRook},
		{move: "b7a8b", want: board.PieceBishop},
		{move: "b7b8k", wantErr: board.ErrBadPromotion},
		{move: "b7b8p", wantErr: board.ErrBadPromotion},
		{move: "b7c8q", wantErr: board.ErrUnreachable},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.move, func(t *testing.T) {
			t.Parallel()
			s := New(WithBoard(b, board.SideLight), WithLogger(func(...any) {}))
			from, to, promote, err := ParseMove(tt.move)
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			mv, err := s.Submit(from, to, promote)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("unexpected error: got=%v want=%v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if mv.Promotion() != tt.want {
				t.Errorf("unexpected promotion: got=%v want=%v", mv.Promotion(), tt.want)
			}
			if _, p := s.Board().PieceAt(to); p != tt.want {
				t.Errorf("unexpected piece on %s: got=%v want=%v", to, p, tt.want)
			}
		})
	}
}

func TestStatus(t *testing.T) {
	t.Parallel()
	s := New(WithLogger(func(...any) {}))
	if got := s.Status(); got != board.StateRunning {
		t.Errorf("unexpected status: got=%v want=%v", got, board.StateRunning)
	}
	mustSubmit(t, s, "f2f3", "e7e5", "g2g4")
	if got := s.Status(); got != board.StateRunning {
		t.Errorf("unexpected status: got=%v want=%v", got, board.StateRunning)
	}
	mustSubmit(t, s, "d8h4")
	if got := s.Status(); got != board.StateCheckmate {
		t.Errorf("unexpected status: got=%v want=%v", got, board.StateCheckmate)
	}
	if got, want := s.Notation(), "1. f3 e5 2. g4 Qh4#"; got != want {
		t.Errorf("unexpected notation: got=%q want=%q", got, want)
	}
	if _, err := s.Submit(square.E2, square.E4, board.PieceUnknown); !errors.Is(err, board.ErrKingExposed) {
		t.Errorf("unexpected error: got=%v want=%v", err, board.ErrKingExposed)
	}
}

func TestLegalAndReset(t *testing.T) {
	t.Parallel()
	s := New(WithLogger(func(...any) {}))
	if diff := cmp.Diff([]square.Square{square.E3, square.E4}, s.Legal(square.E2)); diff != "" {
		t.Errorf("unexpected legal destinations (-want +got):\n%s", diff)
	}
	if got := s.Legal(square.E7); got != nil {
		t.Errorf("dark must not move first: got=%v", got)
	}

	mustSubmit(t, s, "e2e4", "e7e5")
	b := s.Board()
	b.MakeMove(mustCreate(t, b, square.G1, square.F3))
	if _, p := s.Board().PieceAt(square.G1); p != board.PieceKnight {
		t.Error("Board must return a copy")
	}

	s.Reset()
	if diff := cmp.Diff(board.Default().Dump(), s.Board().Dump()); diff != "" {
		t.Errorf("unexpected board after reset (-want +got):\n%s", diff)
	}
	if s.Turn() != board.SideLight || len(s.History()) != 0 {
		t.Errorf("unexpected state after reset: turn=%v history=%v", s.Turn(), s.History())
	}
}

func TestResetKeepsStartingPosition(t *testing.T) {
	t.Parallel()
	b, err := board.NewBoard(board.WithPlacement(
		board.Placement{Square: square.E1, Side: board.SideLight, Piece: board.PieceKing},
		board.Placement{Square: square.E8, Side: board.SideDark, Piece: board.PieceKing},
		board.Placement{Square: square.D7, Side: board.SideDark, Piece: board.PiecePawn},
	))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	s := New(WithBoard(b, board.SideDark), WithLogger(func(...any) {}))
	b.MakeMove(mustCreate(t, b, square.E1, square.E2))

	mustSubmit(t, s, "d7d5", "e1d2")
	if got, want := s.Notation(), "1... d5 2. Kd2"; got != want {
		t.Errorf("unexpected notation: got=%q want=%q", got, want)
	}
	s.Reset()
	if s.Turn() != board.SideDark {
		t.Errorf("unexpected turn: got=%v want=%v", s.Turn(), board.SideDark)
	}
	if _, p := s.Board().PieceAt(square.E1); p != board.PieceKing {
		t.Error("session must not share the board it was given")
	}
}

func TestWithNilBoard(t *testing.T) {
	t.Parallel()
	s := New(WithBoard(nil, board.SideDark), WithLogger(func(...any) {}))
	if diff := cmp.Diff(board.Default().Dump(), s.Board().Dump()); diff != "" {
		t.Errorf("unexpected board (-want +got):\n%s", diff)
	}
	if s.Turn() != board.SideDark {
		t.Errorf("unexpected turn: got=%v want=%v", s.Turn(), board.SideDark)
	}
	mustSubmit(t, s, "e7e5")
}

func mustCreate(t *testing.T, b *board.Board, from, to square.Square) board.Move {
	t.Helper()
	mv, err := b.ResolveMove(from, to)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	return mv
}

func TestParseMove(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in          string
		wantFrom    square.Square
		wantTo      square.Square
		wantPromote board.PieceType
		wantErr     error
	}{
		{in: "e2e4", wantFrom: square.E2, wantTo: square.E4},
		{in: "a7a8n", wantFrom: square.A7, wantTo: square.A8, wantPromote: board.PieceKnight},
		{in: "h2h1Q", wantFrom: square.H2, wantTo: square.H1, wantPromote: board.PieceQueen},
		{in: "e2", wantErr: square.ErrInvalidNotation},
		{in: "e2e9", wantErr: square.ErrInvalidNotation},
		{in: "i2e4", wantErr: square.ErrInvalidNotation},
		{in: "a7a8x", wantErr: square.ErrInvalidNotation},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			from, to, promote, err := ParseMove(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("unexpected error: got=%v want=%v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if from != tt.wantFrom || to != tt.wantTo || promote != tt.wantPromote {
				t.Errorf("unexpected move: got=%s%s%v want=%s%s%v", from, to, promote, tt.wantFrom, tt.wantTo, tt.wantPromote)
			}
		})
	}
}

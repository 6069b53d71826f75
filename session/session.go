package session

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/daystram/boardgate/board"
	"github.com/daystram/boardgate/square"
)

var ErrNotYourTurn = errors.New("not your turn")

type Logger func(a ...any)

func DefaultLogger(a ...any) {
	log.Println(a...)
}

type config struct {
	board  *board.Board
	turn   board.Side
	logger Logger
}

type Option func(*config)

// WithBoard starts the session from a copy of b with side turn to move. A nil b starts from the
// standard position.
func WithBoard(b *board.Board, turn board.Side) Option {
	return func(cfg *config) {
		cfg.board = nil
		if b != nil {
			cfg.board = b.Clone()
		}
		cfg.turn = turn
	}
}

func WithLogger(l Logger) Option {
	return func(cfg *config) {
		cfg.logger = l
	}
}

// Session is one game on one board. The board is only ever touched under the session lock, and a
// move reaches it only after it passed validation.
type Session struct {
	mu sync.Mutex

	start     *board.Board
	startTurn board.Side

	board   *board.Board
	turn    board.Side
	history []board.Move
	logger  Logger
}

func New(opts ...Option) *Session {
	cfg := &config{
		turn:   board.SideLight,
		logger: DefaultLogger,
	}
	for _, f := range opts {
		f(cfg)
	}
	if cfg.board == nil {
		cfg.board = board.Default()
	}
	if cfg.turn != board.SideLight && cfg.turn != board.SideDark {
		cfg.turn = board.SideLight
	}
	if cfg.logger == nil {
		cfg.logger = DefaultLogger
	}

	return &Session{
		start:     cfg.board,
		startTurn: cfg.turn,
		board:     cfg.board.Clone(),
		turn:      cfg.turn,
		logger:    cfg.logger,
	}
}

// Submit plays the move from from to to for the side to move. A promote other than PieceUnknown
// replaces the proposed promotion kind. A rejected move leaves the session untouched.
func (s *Session) Submit(from, to square.Square, promote board.PieceType) (board.Move, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	mv, err := s.board.ResolveMove(from, to)
	if err != nil {
		return board.Move{}, s.reject(from.Notation()+to.Notation(), err)
	}
	if promote != board.PieceUnknown {
		mv = mv.WithPromotion(promote)
	}
	if side, _ := s.board.PieceAt(from); side != s.turn {
		return board.Move{}, s.reject(mv.UCI(), fmt.Errorf("%w: %s to move", ErrNotYourTurn, s.turn))
	}
	if err := s.board.ValidateMove(mv); err != nil {
		return board.Move{}, s.reject(mv.UCI(), err)
	}

	s.board.MakeMove(mv)
	s.history = append(s.history, mv)
	s.turn = s.turn.Opposite()
	return mv, nil
}

func (s *Session) reject(mv string, err error) error {
	s.logger(fmt.Sprintf("rejected %s: %v", mv, err))
	return err
}

// Legal returns the legal destinations of the piece on from, empty when that piece does not belong to
// the side to move.
func (s *Session) Legal(from square.Square) []square.Square {
	s.mu.Lock()
	defer s.mu.Unlock()

	if side, _ := s.board.PieceAt(from); side != s.turn {
		return nil
	}
	return s.board.LegalDestinations(from).Squares()
}

// Board returns a copy of the current position.
func (s *Session) Board() *board.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Clone()
}

func (s *Session) Turn() board.Side {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.turn
}

func (s *Session) History() []board.Move {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]board.Move(nil), s.history...)
}

func (s *Session) Status() board.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.State(s.turn)
}

// Reset returns to the starting position and clears the history.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.board = s.start.Clone()
	s.turn = s.startTurn
	s.history = nil
}

// Notation replays the history from the starting position, e.g. "1. e4 e5 2. Qh5 Nc6".
func (s *Session) Notation() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return DumpHistory(s.start, s.startTurn, s.history)
}

// DumpHistory writes mvs, played from b with turn to move, in numbered algebraic notation.
func DumpHistory(b *board.Board, turn board.Side, mvs []board.Move) string {
	if b == nil || len(mvs) < 1 {
		return ""
	}
	builder := strings.Builder{}
	bb := b.Clone()
	fullMove := 1
	if turn == board.SideDark {
		_, _ = builder.WriteString(fmt.Sprintf("%d... ", fullMove))
	}
	for i, mv := range mvs {
		bb.MakeMove(mv)
		if turn == board.SideLight {
			_, _ = builder.WriteString(fmt.Sprintf("%d. %s", fullMove, mv.Algebra()))
		} else {
			_, _ = builder.WriteString(mv.Algebra())
			fullMove++
		}
		turn = turn.Opposite()
		switch bb.State(turn) {
		case board.StateCheck:
			_, _ = builder.WriteRune('+')
		case board.StateCheckmate:
			_, _ = builder.WriteRune('#')
		}
		if i < len(mvs)-1 {
			_, _ = builder.WriteRune(' ')
		}
	}
	return builder.String()
}

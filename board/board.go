package board

import (
	"errors"
	"fmt"

	"github.com/daystram/boardgate/square"
)

var (
	ErrNoPieceAtOrigin  = errors.New("no piece at origin")
	ErrInvalidPosition  = errors.New("invalid position")
	ErrBrokenInvariants = errors.New("broken board invariants")
)

// Board is the position under little-endian rank-file (LERF) mapping. Every mask is a value, so
// copying a Board never shares storage with the original.
type Board struct {
	sides     [2 + 1]Bitmap
	pieces    [6 + 1]Bitmap
	enPassant Bitmap
}

// Placement puts one piece on one square when building a Board.
type Placement struct {
	Square square.Square
	Side   Side
	Piece  PieceType
}

type boardConfig struct {
	empty      bool
	placements []Placement
	enPassant  *square.Square
}

type BoardOption func(*boardConfig)

// WithPlacement starts from an empty board and puts the given pieces on it.
func WithPlacement(ps ...Placement) BoardOption {
	return func(cfg *boardConfig) {
		cfg.empty = true
		cfg.placements = append(cfg.placements, ps...)
	}
}

// WithEnPassant sets the square a pawn skipped on its last double push. NewBoard rejects a target that is
// occupied or has no pawn of the pushing side right behind it.
func WithEnPassant(sq square.Square) BoardOption {
	return func(cfg *boardConfig) {
		cfg.enPassant = &sq
	}
}

func NewBoard(opts ...BoardOption) (*Board, error) {
	cfg := &boardConfig{}
	for _, f := range opts {
		f(cfg)
	}

	b := Default()
	if cfg.empty {
		b = &Board{}
	}
	for _, p := range cfg.placements {
		if !p.Square.IsValid() {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPosition, square.ErrInvalidSquare)
		}
		if p.Side != SideLight && p.Side != SideDark {
			return nil, fmt.Errorf("%w: unknown side on %s", ErrInvalidPosition, p.Square)
		}
		if p.Piece < PiecePawn || p.Piece > PieceKing {
			return nil, fmt.Errorf("%w: unknown piece on %s", ErrInvalidPosition, p.Square)
		}
		if b.Occupied().Has(p.Square) {
			return nil, fmt.Errorf("%w: %s occupied twice", ErrInvalidPosition, p.Square)
		}
		b.set(p.Side, p.Piece, p.Square, true)
	}
	if cfg.enPassant != nil {
		if !cfg.enPassant.IsValid() {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPosition, square.ErrInvalidSquare)
		}
		if r := cfg.enPassant.Rank(); r != square.Rank3 && r != square.Rank6 {
			return nil, fmt.Errorf("%w: en passant target %s off the third and sixth rank", ErrInvalidPosition, *cfg.enPassant)
		}
		// the side that double pushed owns the pawn behind the target
		mover := SideDark
		if cfg.enPassant.Rank() == square.Rank3 {
			mover = SideLight
		}
		if b.Occupied().Has(*cfg.enPassant) {
			return nil, fmt.Errorf("%w: en passant target %s occupied", ErrInvalidPosition, *cfg.enPassant)
		}
		if !(b.pieces[PiecePawn] & b.sides[mover]).Has(enPassantVictim(*cfg.enPassant, mover.Opposite())) {
			return nil, fmt.Errorf("%w: no %s pawn behind en passant target %s", ErrInvalidPosition, mover, *cfg.enPassant)
		}
		b.enPassant = maskCell[*cfg.enPassant]
	}
	return b, nil
}

// Default returns the standard starting position.
func Default() *Board {
	b := &Board{}
	b.sides[SideLight] = startLight
	b.sides[SideDark] = startDark
	b.pieces[PiecePawn] = startPawns
	b.pieces[PieceKnight] = startKnights
	b.pieces[PieceBishop] = startBishops
	b.pieces[PieceRook] = startRooks
	b.pieces[PieceQueen] = startQueens
	b.pieces[PieceKing] = startKings
	return b
}

func (b *Board) LightPieces() Bitmap { return b.sides[SideLight] }
func (b *Board) DarkPieces() Bitmap  { return b.sides[SideDark] }
func (b *Board) Pawns() Bitmap       { return b.pieces[PiecePawn] }
func (b *Board) Knights() Bitmap     { return b.pieces[PieceKnight] }
func (b *Board) Bishops() Bitmap     { return b.pieces[PieceBishop] }
func (b *Board) Rooks() Bitmap       { return b.pieces[PieceRook] }
func (b *Board) Queens() Bitmap      { return b.pieces[PieceQueen] }
func (b *Board) Kings() Bitmap       { return b.pieces[PieceKing] }

func (b *Board) Occupied() Bitmap {
	return b.sides[SideLight] | b.sides[SideDark]
}

func (b *Board) Side(s Side) Bitmap {
	if s != SideLight && s != SideDark {
		return 0
	}
	return b.sides[s]
}

func (b *Board) Pieces(p PieceType) Bitmap {
	if p < PiecePawn || p > PieceKing {
		return 0
	}
	return b.pieces[p]
}

// EnPassant returns the en passant target, if any.
func (b *Board) EnPassant() (square.Square, bool) {
	if b.enPassant == 0 {
		return 0, false
	}
	return b.enPassant.LS1B(), true
}

func (b *Board) PieceAt(sq square.Square) (Side, PieceType) {
	if !sq.IsValid() {
		return SideUnknown, PieceUnknown
	}
	cell := maskCell[sq]
	s := SideUnknown
	switch {
	case b.sides[SideLight]&cell != 0:
		s = SideLight
	case b.sides[SideDark]&cell != 0:
		s = SideDark
	default:
		return SideUnknown, PieceUnknown
	}
	for _, p := range PieceTypes {
		if b.pieces[p]&cell != 0 {
			return s, p
		}
	}
	return s, PieceUnknown
}

// Obstructed reports whether any piece stands strictly between two aligned squares.
func (b *Board) Obstructed(from, to square.Square) bool {
	return Between(from, to)&b.Occupied() != 0
}

// CreateMove classifies the move of the piece on from to to. Pawns landing on the first or eighth rank
// always propose a Queen; en passant is never set here.
func (b *Board) CreateMove(from, to square.Square) (Move, error) {
	if !from.IsValid() || !to.IsValid() {
		return Move{}, square.ErrInvalidSquare
	}
	_, p := b.PieceAt(from)
	if p == PieceUnknown {
		return Move{}, fmt.Errorf("%w: %s", ErrNoPieceAtOrigin, from)
	}
	mv := Move{
		from:    from,
		to:      to,
		piece:   p,
		capture: b.Occupied().Has(to),
	}
	if p == PiecePawn && (FirstRank|EighthRank).Has(to) {
		mv.promotion = PieceQueen
	}
	return mv, nil
}

// ResolveMove is CreateMove plus en passant detection: a pawn stepping diagonally onto the en passant
// target captures the enemy pawn behind it.
func (b *Board) ResolveMove(from, to square.Square) (Move, error) {
	mv, err := b.CreateMove(from, to)
	if err != nil {
		return Move{}, err
	}
	s, _ := b.PieceAt(from)
	if mv.piece == PiecePawn && !mv.capture && b.enPassantTarget(s).Has(to) && square.FileDistance(from, to) == 1 {
		mv.enPassant = true
		mv.capture = true
	}
	return mv, nil
}

func (b *Board) set(s Side, p PieceType, sq square.Square, value bool) {
	if s > SideDark || p > PieceKing {
		return
	}
	if value {
		b.sides[s].Set(sq)
		b.pieces[p].Set(sq)
	} else {
		b.sides[s].Unset(sq)
		b.pieces[p].Unset(sq)
	}
}

// MakeMove applies mv. The move must have passed ValidateMove on this exact position: nothing is
// checked here and an illegal move leaves the board in an undefined state.
func (b *Board) MakeMove(mv Move) {
	s, _ := b.PieceAt(mv.from)

	// remove from
	b.set(s, mv.piece, mv.from, false)

	// remove captured piece
	if mv.enPassant {
		b.set(s.Opposite(), PiecePawn, enPassantVictim(mv.to, s), false)
	} else if mv.capture {
		b.sides[s.Opposite()].Unset(mv.to)
		for _, p := range PieceTypes {
			b.pieces[p].Unset(mv.to)
		}
	}

	// place to
	if mv.promotion == PieceUnknown {
		b.set(s, mv.piece, mv.to, true)
	} else {
		b.set(s, mv.promotion, mv.to, true)
	}

	// update en passant target
	b.enPassant = 0
	if mv.piece == PiecePawn && square.RankDistance(mv.from, mv.to) == 2 {
		b.enPassant = Between(mv.from, mv.to)
	}
}

// Play validates mv and applies it only when it is legal.
func (b *Board) Play(mv Move) error {
	if err := b.ValidateMove(mv); err != nil {
		return err
	}
	b.MakeMove(mv)
	return nil
}

func (b *Board) Clone() *Board {
	bb := *b
	return &bb
}

// CheckInvariants verifies that the side masks partition the occupied squares and that the kind masks
// are pairwise disjoint and cover exactly the same squares.
func (b *Board) CheckInvariants() error {
	if b.sides[SideLight]&b.sides[SideDark] != 0 {
		return fmt.Errorf("%w: sides overlap on %v", ErrBrokenInvariants, (b.sides[SideLight] & b.sides[SideDark]).Squares())
	}
	var union Bitmap
	for _, p := range PieceTypes {
		if union&b.pieces[p] != 0 {
			return fmt.Errorf("%w: %s overlaps another kind on %v", ErrBrokenInvariants, p, (union & b.pieces[p]).Squares())
		}
		union |= b.pieces[p]
	}
	if union != b.Occupied() {
		return fmt.Errorf("%w: kinds cover %v, sides cover %v", ErrBrokenInvariants, union.Squares(), b.Occupied().Squares())
	}
	return nil
}

func enPassantVictim(to square.Square, s Side) square.Square {
	if s == SideLight {
		return to - square.Width
	}
	return to + square.Width
}

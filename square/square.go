package square

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

const (
	// Width is the number of files (and ranks) on the board.
	Width = 8

	// Count is the number of squares on the board.
	Count = Width * Width
)

var (
	// ErrInvalidSquare represents a bit index outside the board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
)

// Square is one board cell under little-endian rank-file mapping (a1=0, h8=63).
type Square uint8

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

type File uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

type Rank uint8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// FromIndex converts a bit index into a Square. Indices outside [0,63] are rejected, never clamped.
func FromIndex(i int) (Square, error) {
	if i < 0 || i >= Count {
		return 0, fmt.Errorf("%w: index %d", ErrInvalidSquare, i)
	}
	return Square(i), nil
}

// New builds the Square at the given file and rank.
func New(f File, r Rank) (Square, error) {
	if f >= Width || r >= Width {
		return 0, fmt.Errorf("%w: file %d rank %d", ErrInvalidSquare, f, r)
	}
	return Square(uint8(r)*Width + uint8(f)), nil
}

func FromNotation(n string) (Square, error) {
	f, r, err := notationToFileRank(n)
	if err != nil {
		return 0, err
	}
	return New(f, r)
}

func (s Square) Index() int {
	return int(s)
}

func (s Square) IsValid() bool {
	return s < Count
}

func (s Square) File() File {
	return File(s % Width)
}

func (s Square) Rank() Rank {
	return Rank(s / Width)
}

func (s Square) String() string {
	return s.Notation()
}

func (s Square) Notation() string {
	if !s.IsValid() {
		return ""
	}
	return s.File().Notation() + s.Rank().Notation()
}

func (f File) Notation() string {
	if f >= Width {
		return ""
	}
	return string(rune('a' + f))
}

func (r Rank) Notation() string {
	if r >= Width {
		return ""
	}
	return string(rune('1' + r))
}

// FileDistance is the number of files separating a and b.
func FileDistance(a, b Square) int {
	return abs(int(a.File()) - int(b.File()))
}

// RankDistance is the number of ranks separating a and b.
func RankDistance(a, b Square) int {
	return abs(int(a.Rank()) - int(b.Rank()))
}

func notationToFileRank(n string) (File, Rank, error) {
	if len(n) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidNotation, n)
	}
	f, err := notationToFile(n[0])
	if err != nil {
		return 0, 0, err
	}
	r, err := notationToRank(n[1])
	if err != nil {
		return 0, 0, err
	}
	return f, r, nil
}

func notationToFile(x byte) (File, error) {
	if x < 'a' || x > 'h' {
		return 0, fmt.Errorf("%w: file %q", ErrInvalidNotation, x)
	}
	return File(x - 'a'), nil
}

func notationToRank(y byte) (Rank, error) {
	if y < '1' || y > '8' {
		return 0, fmt.Errorf("%w: rank %q", ErrInvalidNotation, y)
	}
	return Rank(y - '1'), nil
}

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return x * -1
	}
	return x
}

package board

import "github.com/daystram/boardgate/square"

type PieceType uint8

const (
	PieceUnknown PieceType = iota
	PiecePawn
	PieceKnight
	PieceBishop
	PieceRook
	PieceQueen
	PieceKing
)

// PieceTypes lists every real piece kind.
var PieceTypes = []PieceType{PiecePawn, PieceKnight, PieceBishop, PieceRook, PieceQueen, PieceKing}

// PromotionCandidates represents the candidates for pawn promotion.
var PromotionCandidates = []PieceType{PieceQueen, PieceRook, PieceBishop, PieceKnight}

// MoveFlags narrows the pawn destinations to the ones a move of that kind may use.
type MoveFlags struct {
	Promotion bool
	EnPassant bool
}

// MovesFrom returns the pseudo-legal destinations of the piece of kind p sitting on origin. Whether the
// move would leave its own King attacked is not considered. The set is empty when origin does not hold p.
func (p PieceType) MovesFrom(origin square.Square, b *Board, flags MoveFlags) Bitmap {
	if !origin.IsValid() || b == nil {
		return 0
	}
	s, at := b.PieceAt(origin)
	if at != p {
		return 0
	}
	return b.genDestination(origin, s, p, flags)
}

// Destinations is MovesFrom over every flag combination.
func (p PieceType) Destinations(origin square.Square, b *Board) Bitmap {
	dst := p.MovesFrom(origin, b, MoveFlags{})
	if p == PiecePawn {
		dst |= p.MovesFrom(origin, b, MoveFlags{Promotion: true})
		dst |= p.MovesFrom(origin, b, MoveFlags{EnPassant: true})
	}
	return dst
}

func (p PieceType) IsPromotionCandidate() bool {
	for _, c := range PromotionCandidates {
		if p == c {
			return true
		}
	}
	return false
}

func (p PieceType) String() string {
	return p.Name()
}

func (p PieceType) Name() string {
	switch p {
	case PiecePawn:
		return "Pawn"
	case PieceKnight:
		return "Knight"
	case PieceBishop:
		return "Bishop"
	case PieceRook:
		return "Rook"
	case PieceQueen:
		return "Queen"
	case PieceKing:
		return "King"
	default:
		return ""
	}
}

func (p PieceType) SymbolAlgebra(s Side) string {
	if p == PiecePawn {
		return ""
	}
	return p.SymbolFEN(s)
}

func (p PieceType) SymbolFEN(s Side) string {
	var sym rune
	switch p {
	case PiecePawn:
		sym = 'P'
	case PieceKnight:
		sym = 'N'
	case PieceBishop:
		sym = 'B'
	case PieceRook:
		sym = 'R'
	case PieceQueen:
		sym = 'Q'
	case PieceKing:
		sym = 'K'
	default:
		return ""
	}
	if s == SideDark {
		sym |= 0x20 // lowercase is +32 uppercase
	}
	return string(sym)
}

// PieceFromSymbol is the inverse of SymbolFEN.
func PieceFromSymbol(r rune) (Side, PieceType) {
	s := SideLight
	if r >= 'a' && r <= 'z' {
		s, r = SideDark, r&^0x20
	}
	for _, p := range PieceTypes {
		if p.SymbolFEN(SideLight) == string(r) {
			return s, p
		}
	}
	return SideUnknown, PieceUnknown
}

func (p PieceType) SymbolUnicode(s Side) string {
	switch s {
	case SideLight:
		switch p {
		case PiecePawn:
			return "♙"
		case PieceKnight:
			return "♘"
		case PieceBishop:
			return "♗"
		case PieceRook:
			return "♖"
		case PieceQueen:
			return "♕"
		case PieceKing:
			return "♔"
		default:
			return ""
		}
	case SideDark:
		switch p {
		case PiecePawn:
			return "♟"
		case PieceKnight:
			return "♞"
		case PieceBishop:
			return "♝"
		case PieceRook:
			return "♜"
		case PieceQueen:
			return "♛"
		case PieceKing:
			return "♚"
		default:
			return ""
		}
	default:
		return ""
	}
}

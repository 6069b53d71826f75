package board

import "github.com/daystram/boardgate/square"

// Move describes one ply. It is produced by a Board and holds no reference to it.
type Move struct {
	from, to  square.Square
	piece     PieceType
	capture   bool
	promotion PieceType
	enPassant bool
}

func (m Move) From() square.Square {
	return m.from
}

func (m Move) To() square.Square {
	return m.to
}

func (m Move) Piece() PieceType {
	return m.piece
}

func (m Move) IsCapture() bool {
	return m.capture
}

// Promotion is PieceUnknown when the move does not promote.
func (m Move) Promotion() PieceType {
	return m.promotion
}

func (m Move) IsEnPassant() bool {
	return m.enPassant
}

// WithPromotion returns a copy of m promoting to p. The kind is checked when the move is validated.
func (m Move) WithPromotion(p PieceType) Move {
	m.promotion = p
	return m
}

func (m Move) String() string {
	return m.UCI()
}

func (m Move) UCI() string {
	return m.from.Notation() + m.to.Notation() + m.promotion.SymbolAlgebra(SideDark)
}

func (m Move) Algebra() string {
	nt := m.piece.SymbolAlgebra(SideLight) // SideLight because it returns capital symbols
	if m.capture {
		if m.piece == PiecePawn {
			nt += m.from.File().Notation()
		} else {
			nt += m.from.Notation()
		}
		nt += "x"
	}
	nt += m.to.Notation()
	if m.promotion != PieceUnknown {
		nt += m.promotion.SymbolAlgebra(SideLight)
	}
	if m.enPassant {
		nt += " e.p."
	}
	return nt
}

func (m Move) flags() MoveFlags {
	return MoveFlags{
		Promotion: m.promotion != PieceUnknown,
		EnPassant: m.enPassant,
	}
}

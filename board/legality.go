package board

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalMove = errors.New("illegal move")

	ErrSelfCapture  = fmt.Errorf("%w: destination holds own piece", ErrIllegalMove)
	ErrUnreachable  = fmt.Errorf("%w: destination unreachable", ErrIllegalMove)
	ErrKingExposed  = fmt.Errorf("%w: king left attacked", ErrIllegalMove)
	ErrBadPromotion = fmt.Errorf("%w: bad promotion kind", ErrIllegalMove)
)

// ValidateMove runs the legality checks in order and returns the first one that fails. The board is
// never modified.
func (b *Board) ValidateMove(mv Move) error {
	s, _ := b.PieceAt(mv.from)

	// 1. destination not held by the mover
	if b.Side(s).Has(mv.to) {
		return ErrSelfCapture
	}

	// 2. destination reachable for this kind, origin and flags
	if !mv.piece.MovesFrom(mv.from, b, mv.flags()).Has(mv.to) {
		return ErrUnreachable
	}

	// 3. own King not attacked once the move is applied; a King made by this promotion is judged in 4
	kings := b.pieces[PieceKing] & b.Side(s)
	if mv.piece == PieceKing {
		kings = kings&^maskCell[mv.from] | maskCell[mv.to]
	}
	bb := b.Clone()
	bb.MakeMove(mv)
	for ; kings != 0; kings &= kings - 1 {
		if bb.IsSquareAttacked(kings.LS1B(), s.Opposite()) {
			return ErrKingExposed
		}
	}

	// 4. promotion kind is one a Pawn may become
	if mv.promotion != PieceUnknown && !mv.promotion.IsPromotionCandidate() {
		return fmt.Errorf("%w: %s", ErrBadPromotion, mv.promotion)
	}
	return nil
}

func (b *Board) IsMoveValid(mv Move) bool {
	return b.ValidateMove(mv) == nil
}

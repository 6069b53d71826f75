package board

import "github.com/daystram/boardgate/square"

// genDestination generates the bitmap for the next valid positions.
// This generate function is not strictly legal (e.g., king may be left in check).
func (b *Board) genDestination(from square.Square, s Side, p PieceType, flags MoveFlags) Bitmap {
	if p != PiecePawn && (flags.Promotion || flags.EnPassant) {
		return 0
	}
	occupied := b.Occupied()
	switch p {
	case PiecePawn:
		return b.genPawnDestination(from, s, flags)
	case PieceKnight:
		return maskKnight[from] &^ b.sides[s]
	case PieceBishop:
		return HitDiagonals(from, occupied) &^ b.sides[s]
	case PieceRook:
		return HitLaterals(from, occupied) &^ b.sides[s]
	case PieceQueen:
		return (HitDiagonals(from, occupied) | HitLaterals(from, occupied)) &^ b.sides[s]
	case PieceKing:
		return maskKing[from] &^ b.sides[s]
	default:
		return 0
	}
}

func (b *Board) genPawnDestination(from square.Square, s Side, flags MoveFlags) Bitmap {
	cell := maskCell[from]
	occupied := b.Occupied()
	capture := maskPawnAttack[s][from]
	if flags.EnPassant {
		return capture & b.enPassantTarget(s)
	}

	var push, farRank Bitmap
	if s == SideLight {
		moveN1 := ShiftN(cell&^EighthRank) &^ occupied
		moveN2 := ShiftN(moveN1&maskRank[square.Rank3]) &^ occupied
		push, farRank = moveN1|moveN2, EighthRank
	} else {
		moveS1 := ShiftS(cell&^FirstRank) &^ occupied
		moveS2 := ShiftS(moveS1&maskRank[square.Rank6]) &^ occupied
		push, farRank = moveS1|moveS2, FirstRank
	}
	dst := push | capture&b.sides[s.Opposite()]
	if flags.Promotion {
		return dst & farRank
	}
	return dst &^ farRank
}

// enPassantTarget returns the en passant target side s may capture onto. The target must be empty with
// a pawn of the other side right behind it.
func (b *Board) enPassantTarget(s Side) Bitmap {
	if b.enPassant == 0 || b.enPassant&b.Occupied() != 0 {
		return 0
	}
	if !(b.pieces[PiecePawn] & b.Side(s.Opposite())).Has(enPassantVictim(b.enPassant.LS1B(), s)) {
		return 0
	}
	return b.enPassant
}

// Attackers returns the pieces of side by that attack sq. Sliders are found with the in-between
// occupancy test against every aligned slider.
func (b *Board) Attackers(sq square.Square, by Side) Bitmap {
	if !sq.IsValid() || (by != SideLight && by != SideDark) {
		return 0
	}
	occupied := b.Occupied()
	attackers := maskKnight[sq] & b.pieces[PieceKnight]
	attackers |= maskKing[sq] & b.pieces[PieceKing]
	attackers |= maskPawnAttack[by.Opposite()][sq] & b.pieces[PiecePawn]

	diagonal := (maskDiagonal[sq] | maskAntiDiagonal[sq]) & (b.pieces[PieceBishop] | b.pieces[PieceQueen])
	lateral := (maskFile[sq.File()] | maskRank[sq.Rank()]) & (b.pieces[PieceRook] | b.pieces[PieceQueen])
	sliders := (diagonal | lateral) & b.sides[by] &^ maskCell[sq]
	for sliders != 0 {
		from := sliders.LS1B()
		if Between(from, sq)&occupied == 0 {
			attackers |= maskCell[from]
		}
		sliders &= sliders - 1
	}
	return attackers & b.sides[by]
}

func (b *Board) IsSquareAttacked(sq square.Square, by Side) bool {
	return b.Attackers(sq, by) != 0
}

// IsInCheck reports whether any King of side s is attacked.
func (b *Board) IsInCheck(s Side) bool {
	kings := b.pieces[PieceKing] & b.Side(s)
	for kings != 0 {
		if b.IsSquareAttacked(kings.LS1B(), s.Opposite()) {
			return true
		}
		kings &= kings - 1
	}
	return false
}

// LegalDestinations returns every square the piece on from can legally move to.
func (b *Board) LegalDestinations(from square.Square) Bitmap {
	_, p := b.PieceAt(from)
	if p == PieceUnknown {
		return 0
	}
	var legal Bitmap
	candidates := p.Destinations(from, b)
	for candidates != 0 {
		to := candidates.LS1B()
		candidates &= candidates - 1
		mv, err := b.ResolveMove(from, to)
		if err != nil {
			continue
		}
		if b.IsMoveValid(mv) {
			legal |= maskCell[to]
		}
	}
	return legal
}

// LegalMoves generates every legal move of side s, one per promotion candidate when promoting.
func (b *Board) LegalMoves(s Side) []Move {
	var mvs []Move
	fromBM := b.Side(s)
	for fromBM != 0 {
		from := fromBM.LS1B()
		fromBM &= fromBM - 1

		_, p := b.PieceAt(from)
		toBM := p.Destinations(from, b)
		for toBM != 0 {
			to := toBM.LS1B()
			toBM &= toBM - 1

			mv, err := b.ResolveMove(from, to)
			if err != nil {
				continue
			}
			candidateMoves := []Move{mv}
			if mv.promotion != PieceUnknown {
				candidateMoves = candidateMoves[:0]
				for _, prom := range PromotionCandidates {
					candidateMoves = append(candidateMoves, mv.WithPromotion(prom))
				}
			}
			for _, cmv := range candidateMoves {
				if b.IsMoveValid(cmv) {
					mvs = append(mvs, cmv)
				}
			}
		}
	}
	return mvs
}

// State reports the game state for side s to move.
func (b *Board) State(s Side) State {
	checked := b.IsInCheck(s)
	if len(b.LegalMoves(s)) == 0 {
		if checked {
			return StateCheckmate
		}
		return StateStalemate
	}
	if checked {
		return StateCheck
	}
	return StateRunning
}

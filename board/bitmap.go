package board

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/daystram/boardgate/square"
)

// Bitmap is a set of squares, bit i standing for square.Square(i).
type Bitmap uint64

func BitmapOf(sqs ...square.Square) Bitmap {
	var bm Bitmap
	for _, sq := range sqs {
		bm |= maskCell[sq]
	}
	return bm
}

func reverse(bm Bitmap) Bitmap {
	return Bitmap(bits.Reverse64(uint64(bm)))
}

func ShiftNW(bm Bitmap) Bitmap {
	return bm << 7
}

func ShiftN(bm Bitmap) Bitmap {
	return bm << 8
}

func ShiftNE(bm Bitmap) Bitmap {
	return bm << 9
}

func ShiftE(bm Bitmap) Bitmap {
	return bm << 1
}

func ShiftSE(bm Bitmap) Bitmap {
	return bm >> 7
}

func ShiftS(bm Bitmap) Bitmap {
	return bm >> 8
}

func ShiftSW(bm Bitmap) Bitmap {
	return bm >> 9
}

func ShiftW(bm Bitmap) Bitmap {
	return bm >> 1
}

func Union(bms ...Bitmap) Bitmap {
	var u Bitmap
	for _, bm := range bms {
		u |= bm
	}
	return u
}

func HitDiagonals(sq square.Square, occupied Bitmap) Bitmap {
	return ScanHit(maskCell[sq], occupied, maskDiagonal[sq]) | ScanHit(maskCell[sq], occupied, maskAntiDiagonal[sq])
}

func HitLaterals(sq square.Square, occupied Bitmap) Bitmap {
	return ScanHit(maskCell[sq], occupied, maskFile[sq.File()]) | ScanHit(maskCell[sq], occupied, maskRank[sq.Rank()])
}

// ScanHit uses o^(o-2r) trick. The result holds every square of mask reachable from cell, up to and
// including the first blocker in each direction.
func ScanHit(cell, occupied, mask Bitmap) Bitmap {
	blocker := occupied & mask
	return ((blocker - 2*cell) ^ reverse(reverse(blocker)-2*reverse(cell))) & mask
}

// Between returns the squares strictly between a and b when both share a file, rank or diagonal.
func Between(a, b square.Square) Bitmap {
	return maskBetween[a][b]
}

func (bm Bitmap) Has(sq square.Square) bool {
	return bm&maskCell[sq] != 0
}

func (bm *Bitmap) Set(sq square.Square) {
	*bm |= maskCell[sq]
}

func (bm *Bitmap) Unset(sq square.Square) {
	*bm &^= maskCell[sq]
}

func (bm Bitmap) LS1B() square.Square {
	return square.Square(bits.TrailingZeros64(uint64(bm)))
}

func (bm Bitmap) BitCount() int {
	return bits.OnesCount64(uint64(bm))
}

// Squares lists the members in ascending order.
func (bm Bitmap) Squares() []square.Square {
	sqs := make([]square.Square, 0, bm.BitCount())
	for bm != 0 {
		sqs = append(sqs, bm.LS1B())
		bm &= bm - 1
	}
	return sqs
}

func (bm Bitmap) Dump(sym ...rune) string {
	builder := strings.Builder{}
	for r := square.Rank8; ; r-- {
		_, _ = builder.WriteString(fmt.Sprintf(" %s |", r.Notation()))
		for f := square.FileA; f <= square.FileH; f++ {
			if bm&maskRank[r]&maskFile[f] != 0 {
				s := "#"
				if len(sym) == 1 {
					s = string(sym[0])
				}
				_, _ = builder.WriteString(fmt.Sprintf(" %s ", s))
			} else {
				_, _ = builder.WriteString(" . ")
			}
		}
		_, _ = builder.WriteString("\n")
		if r == square.Rank1 {
			break
		}
	}
	_, _ = builder.WriteString("    ------------------------\n    ")
	for f := square.FileA; f <= square.FileH; f++ {
		_, _ = builder.WriteString(fmt.Sprintf(" %s ", f.Notation()))
	}
	return builder.String()
}

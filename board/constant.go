package board

import (
	"github.com/daystram/boardgate/square"
)

const (
	AFile            Bitmap = 0x_01_01_01_01_01_01_01_01
	HFile            Bitmap = 0x_80_80_80_80_80_80_80_80
	FirstRank        Bitmap = 0x_00_00_00_00_00_00_00_FF
	EighthRank       Bitmap = 0x_FF_00_00_00_00_00_00_00
	A1H8Diagonal     Bitmap = 0x_80_40_20_10_08_04_02_01
	H1A8AntiDiagonal Bitmap = 0x_01_02_04_08_10_20_40_80

	startLight   Bitmap = 0x_00_00_00_00_00_00_FF_FF
	startDark    Bitmap = 0x_FF_FF_00_00_00_00_00_00
	startPawns   Bitmap = 0x_00_FF_00_00_00_00_FF_00
	startBishops Bitmap = 0x_24_00_00_00_00_00_00_24
	startKnights Bitmap = 0x_42_00_00_00_00_00_00_42
	startRooks   Bitmap = 0x_81_00_00_00_00_00_00_81
	startQueens  Bitmap = 0x_08_00_00_00_00_00_00_08
	startKings   Bitmap = 0x_10_00_00_00_00_00_00_10
)

var (
	maskFile = [square.Width]Bitmap{
		square.FileA: AFile,
		square.FileB: AFile << 1,
		square.FileC: AFile << 2,
		square.FileD: AFile << 3,
		square.FileE: AFile << 4,
		square.FileF: AFile << 5,
		square.FileG: AFile << 6,
		square.FileH: HFile,
	}
	maskRank = [square.Width]Bitmap{
		square.Rank1: FirstRank,
		square.Rank2: FirstRank << 8,
		square.Rank3: FirstRank << 16,
		square.Rank4: FirstRank << 24,
		square.Rank5: FirstRank << 32,
		square.Rank6: FirstRank << 40,
		square.Rank7: FirstRank << 48,
		square.Rank8: EighthRank,
	}
	maskCell         [square.Count]Bitmap
	maskDiagonal     [square.Count]Bitmap
	maskAntiDiagonal [square.Count]Bitmap
	maskKnight       [square.Count]Bitmap
	maskKing         [square.Count]Bitmap
	maskPawnAttack   [2 + 1][square.Count]Bitmap
	maskBetween      [square.Count][square.Count]Bitmap
)

func init() {
	initMask()
	initBetween()
}

func initMask() {
	for sq := 0; sq < square.Count; sq++ {
		maskCell[sq] = 1 << sq
	}

	// both diagonal families are shifts of the two long diagonals
	for sq := 0; sq < square.Count; sq++ {
		f, r := sq%square.Width, sq/square.Width
		if d := r - f; d >= 0 {
			maskDiagonal[sq] = A1H8Diagonal << (8 * d)
		} else {
			maskDiagonal[sq] = A1H8Diagonal >> (8 * -d)
		}
		if d := r + f - 7; d >= 0 {
			maskAntiDiagonal[sq] = H1A8AntiDiagonal << (8 * d)
		} else {
			maskAntiDiagonal[sq] = H1A8AntiDiagonal >> (8 * -d)
		}
	}

	for sq := 0; sq < square.Count; sq++ {
		cell := maskCell[sq]
		mask := Bitmap(0)
		mask |= ShiftN(ShiftN(ShiftE(cell &^ maskRank[7] &^ maskRank[6] &^ maskFile[7])))
		mask |= ShiftN(ShiftN(ShiftW(cell &^ maskRank[7] &^ maskRank[6] &^ maskFile[0])))
		mask |= ShiftS(ShiftS(ShiftE(cell &^ maskRank[0] &^ maskRank[1] &^ maskFile[7])))
		mask |= ShiftS(ShiftS(ShiftW(cell &^ maskRank[0] &^ maskRank[1] &^ maskFile[0])))
		mask |= ShiftE(ShiftE(ShiftN(cell &^ maskFile[7] &^ maskFile[6] &^ maskRank[7])))
		mask |= ShiftE(ShiftE(ShiftS(cell &^ maskFile[7] &^ maskFile[6] &^ maskRank[0])))
		mask |= ShiftW(ShiftW(ShiftN(cell &^ maskFile[0] &^ maskFile[1] &^ maskRank[7])))
		mask |= ShiftW(ShiftW(ShiftS(cell &^ maskFile[0] &^ maskFile[1] &^ maskRank[0])))
		maskKnight[sq] = mask
	}

	for sq := 0; sq < square.Count; sq++ {
		cell := maskCell[sq]
		mask := Bitmap(0)
		mask |= ShiftN(cell &^ maskRank[7])
		mask |= ShiftNE(cell &^ maskRank[7] &^ maskFile[7])
		mask |= ShiftE(cell &^ maskFile[7])
		mask |= ShiftSE(cell &^ maskRank[0] &^ maskFile[7])
		mask |= ShiftS(cell &^ maskRank[0])
		mask |= ShiftSW(cell &^ maskRank[0] &^ maskFile[0])
		mask |= ShiftW(cell &^ maskFile[0])
		mask |= ShiftNW(cell &^ maskRank[7] &^ maskFile[0])
		maskKing[sq] = mask
	}

	for sq := 0; sq < square.Count; sq++ {
		cell := maskCell[sq]
		maskPawnAttack[SideLight][sq] = ShiftNW(cell&^EighthRank&^AFile) | ShiftNE(cell&^EighthRank&^HFile)
		maskPawnAttack[SideDark][sq] = ShiftSW(cell&^FirstRank&^AFile) | ShiftSE(cell&^FirstRank&^HFile)
	}
}

// initBetween walks the eight rays out of every square, so only aligned pairs get a mask.
func initBetween() {
	directions := [8][2]int{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}
	for from := 0; from < square.Count; from++ {
		for _, d := range directions {
			var ray Bitmap
			f, r := from%square.Width+d[0], from/square.Width+d[1]
			for f >= 0 && f < square.Width && r >= 0 && r < square.Width {
				to := r*square.Width + f
				maskBetween[from][to] = ray
				ray |= maskCell[to]
				f, r = f+d[0], r+d[1]
			}
		}
	}
}

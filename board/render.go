package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/boardgate/square"
)

var (
	drawLabel     = color.New(color.Bold)
	drawCellLight = color.New(color.FgBlack, color.BgHiWhite)
	drawCellDark  = color.New(color.FgBlack, color.BgGreen)
)

func (b *Board) String() string {
	return b.Dump()
}

// Dump renders the board as plain text, rank 8 first, uppercase for Light and lowercase for Dark,
// followed by a file legend.
func (b *Board) Dump() string {
	builder := strings.Builder{}
	for r := square.Rank8; ; r-- {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %s |", r.Notation()))
		for f := square.FileA; f <= square.FileH; f++ {
			sq, _ := square.New(f, r)
			s, p := b.PieceAt(sq)
			sym := p.SymbolFEN(s)
			if s == SideUnknown {
				sym = " "
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
		if r == square.Rank1 {
			break
		}
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for f := square.FileA; f <= square.FileH; f++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", f.Notation()))
	}
	return builder.String()
}

// Draw renders the board with Unicode glyphs on checkered terminal colours.
func (b *Board) Draw() string {
	builder := strings.Builder{}
	for r := square.Rank8; ; r-- {
		_, _ = builder.WriteString(drawLabel.Sprintf(" %s ", r.Notation()))
		for f := square.FileA; f <= square.FileH; f++ {
			sq, _ := square.New(f, r)
			s, p := b.PieceAt(sq)
			sym := p.SymbolUnicode(s)
			if p == PieceUnknown {
				sym = " "
			}
			cell := drawCellDark
			if (uint8(f)+uint8(r))%2 == 1 {
				cell = drawCellLight
			}
			_, _ = builder.WriteString(cell.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
		if r == square.Rank1 {
			break
		}
	}
	_, _ = builder.WriteString("   ")
	for f := square.FileA; f <= square.FileH; f++ {
		_, _ = builder.WriteString(drawLabel.Sprintf(" %s ", f.Notation()))
	}
	return builder.String()
}

func (b *Board) DumpEnPassant() string {
	return b.enPassant.Dump()
}

func (b *Board) DumpOccupied() string {
	return b.Occupied().Dump()
}

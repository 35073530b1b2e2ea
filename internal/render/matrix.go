package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bran/ddsolve/internal/batch"
	"github.com/bran/ddsolve/internal/ddcard"
)

var trumpColumns = [ddcard.NumSuits + 1]ddcard.Suit{
	ddcard.Clubs, ddcard.Diamonds, ddcard.Hearts, ddcard.Spades, ddcard.NoTrump,
}

// Matrix renders a batch.Matrix as a bordered table: one row per opening
// leader, one column per trump. If mismatch is non-nil, that single cell
// is highlighted instead of rendered with its ordinary suit color.
func Matrix(m batch.Matrix, mismatch *batch.Mismatch) string {
	th := defaultTheme()
	var b strings.Builder

	b.WriteString(th.RowLabel.Render(""))
	for _, trump := range trumpColumns {
		b.WriteString(th.Header.Render(headerLabel(trump)))
	}
	b.WriteString("\n")

	for leaderIdx := 0; leaderIdx < ddcard.NumSides; leaderIdx++ {
		leader := ddcard.Side(leaderIdx)
		b.WriteString(th.RowLabel.Render(leader.String()))
		for col, trump := range trumpColumns {
			text := "-"
			if v := m[leaderIdx][col]; v != batch.Unsolved {
				text = strconv.Itoa(v)
			}
			b.WriteString(cellStyle(th, trump, mismatch, leader).Render(text))
		}
		b.WriteString("\n")
	}

	return th.Border.Render(b.String())
}

func headerLabel(trump ddcard.Suit) string {
	if trump == ddcard.NoTrump {
		return "NT"
	}
	return trump.Symbol()
}

func cellStyle(th theme, trump ddcard.Suit, mismatch *batch.Mismatch, leader ddcard.Side) lipgloss.Style {
	if mismatch != nil && mismatch.Leader == leader && mismatch.Trump == trump {
		return th.Mismatch
	}
	if trump == ddcard.Hearts || trump == ddcard.Diamonds {
		return th.CellRed
	}
	return th.CellBlack
}

// Mismatch renders a one-line diagnostic for a Mismatch, or "" if nil.
func Mismatch(mm *batch.Mismatch) string {
	if mm == nil {
		return ""
	}
	return fmt.Sprintf("mismatch at leader=%s trump=%s: got %d, want %d", mm.Leader, mm.Trump, mm.Got, mm.Want)
}

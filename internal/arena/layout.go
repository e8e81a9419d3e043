package arena

import (
	"fmt"
	"strings"
)

// Layout is the starting orientation of every slot in the stick table.
type Layout [SlotCount]Orientation

// defaultRows is the shipped puzzle, one string per stick row.
var defaultRows = []string{
	"VVVHHVHV",
	"HHVHVVV",
	"HVVVVHVH",
	"HVHHVHH",
	"HHVHHHVH",
	"VHVHVHV",
	"VVHVVVHV",
	"VHHVVVH",
	"HVHHVVVH",
}

var defaultLayout = mustParseLayout(defaultRows)

// DefaultLayout returns the shipped starting layout.
func DefaultLayout() Layout {
	return defaultLayout
}

func mustParseLayout(rows []string) Layout {
	l, err := ParseLayout(rows)
	if err != nil {
		panic(err)
	}
	return l
}

// rowLen is the number of real sticks in stick row y.
func rowLen(y int) int {
	if y&1 != 0 {
		return SticksPerRow - 1
	}
	return SticksPerRow
}

// ParseLayout reads a layout from one string per stick row. Even rows have
// SticksPerRow characters, odd rows one fewer. H or - is horizontal, V or |
// is vertical and . marks a hole with no stick.
func ParseLayout(rows []string) (Layout, error) {
	var l Layout
	if len(rows) != StickRows {
		return l, fmt.Errorf("arena: layout has %d rows, expected %d", len(rows), StickRows)
	}

	for y, row := range rows {
		row = strings.TrimSpace(row)
		if len(row) != rowLen(y) {
			return l, fmt.Errorf("arena: layout row %d has %d sticks, expected %d", y, len(row), rowLen(y))
		}
		for i, ch := range row {
			var o Orientation
			switch ch {
			case 'H', 'h', '-':
				o = Horizontal
			case 'V', 'v', '|':
				o = Vertical
			case '.', '_':
				o = None
			default:
				return l, fmt.Errorf("arena: layout row %d: invalid stick %q at column %d", y, ch, i)
			}
			l[y*SticksPerRow+i] = o
		}
	}
	return l, nil
}

// Rows renders the layout back into the ParseLayout format.
func (l Layout) Rows() []string {
	rows := make([]string, StickRows)
	for y := range rows {
		var sb strings.Builder
		for i := 0; i < rowLen(y); i++ {
			switch l[y*SticksPerRow+i] {
			case Horizontal:
				sb.WriteByte('H')
			case Vertical:
				sb.WriteByte('V')
			default:
				sb.WriteByte('.')
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

// StickCount returns the number of real sticks in the layout.
func (l Layout) StickCount() int {
	n := 0
	for slot, o := range l {
		if _, ok := slotCoord(slot); ok && o != None {
			n++
		}
	}
	return n
}

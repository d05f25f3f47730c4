package layout

import "github.com/chewxy/math32"

// Direction is the main axis along which a stack lays out children.
type Direction uint8

const (
	Row           Direction = iota // left to right
	Column                         // top to bottom
	RowReverse                     // right to left
	ColumnReverse                  // bottom to top
)

// Horizontal reports whether the main axis is the x axis.
func (d Direction) Horizontal() bool {
	return d == Row || d == RowReverse
}

// Reversed reports whether children populate from the end edge.
func (d Direction) Reversed() bool {
	return d == RowReverse || d == ColumnReverse
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Row:
		return "Row"
	case Column:
		return "Column"
	case RowReverse:
		return "RowReverse"
	case ColumnReverse:
		return "ColumnReverse"
	}
	return "Unknown"
}

// MainAlign distributes residual main-axis space within a line.
type MainAlign uint8

const (
	MainStart MainAlign = iota
	MainCenter
	MainEnd
	MainSpaceBetween
	MainSpaceAround
)

// CrossAlign positions children on the cross axis within their line.
type CrossAlign uint8

const (
	CrossStart CrossAlign = iota
	CrossCenter
	CrossEnd
	// CrossStretch grows each child's cross size to the full line.
	CrossStretch
)

// StackMargin is the main-axis spacing applied around every child in a
// stack, before and after it in flow order. Margins are flow-relative:
// Start always precedes the child along the flow, so under a reversed
// direction it sits on the visually far side.
type StackMargin struct {
	Start Value
	End   Value
}

// Stack describes how a Div container flows its children.
type Stack struct {
	Direction Direction
	// Wrap moves children that would overflow the main axis onto a new
	// line. Without it a single line spans the full cross axis.
	Wrap       bool
	Gap        XY // main, cross
	Margin     StackMargin
	AlignMain  MainAlign
	AlignCross CrossAlign
}

// Item is one child measured for placement: its intrinsic main and
// cross lengths plus the resolved per-child margins.
type Item struct {
	Main        float32
	Cross       float32
	MarginStart float32
	MarginEnd   float32
}

// Slot is a placement result in main/cross coordinates relative to the
// container origin. The driver converts back to x/y per Direction.
type Slot struct {
	MainPos  float32
	CrossPos float32
	Main     float32
	Cross    float32
}

// outer is the main-axis length the item occupies including margins.
func (it Item) outer() float32 {
	return it.MarginStart + it.Main + it.MarginEnd
}

// Place packs items into lines and returns one slot per item, in input
// order. mainLen and crossLen are the container's lengths on the two
// axes; gapMain and gapCross are the resolved gap values.
func (s Stack) Place(items []Item, mainLen, crossLen, gapMain, gapCross float32) []Slot {
	slots := make([]Slot, len(items))
	if len(items) == 0 {
		return slots
	}

	// Phase 1: break into lines.
	type line struct {
		first, last int // item index range, inclusive
		used        float32
		cross       float32
	}
	lines := []line{{first: 0, last: -1}}
	cur := &lines[0]
	for i, it := range items {
		needed := it.outer()
		if cur.last >= cur.first {
			needed += gapMain
		}
		if s.Wrap && cur.last >= cur.first && cur.used+needed > mainLen {
			lines = append(lines, line{first: i, last: -1})
			cur = &lines[len(lines)-1]
			needed = it.outer()
		}
		cur.last = i
		cur.used += needed
		cur.cross = math32.Max(cur.cross, it.Cross)
	}

	// Without wrapping the single line spans the whole cross axis, the
	// way a single-line flex container does. Wrapped lines are as tall
	// as their tallest child and stack from the start edge.
	if !s.Wrap {
		lines[0].cross = crossLen
	}

	// Phase 2: place each line.
	linePos := float32(0)
	for li, ln := range lines {
		if li > 0 {
			linePos += gapCross
		}
		count := ln.last - ln.first + 1
		free := math32.Max(0, mainLen-ln.used)
		offset, spacing := mainDistribution(s.AlignMain, free, count)

		cursor := offset
		for i := ln.first; i <= ln.last; i++ {
			it := items[i]
			if i > ln.first {
				cursor += gapMain + spacing
			}
			cursor += it.MarginStart

			slot := Slot{
				MainPos: cursor,
				Main:    it.Main,
				Cross:   it.Cross,
			}
			switch s.AlignCross {
			case CrossCenter:
				slot.CrossPos = linePos + (ln.cross-it.Cross)/2
			case CrossEnd:
				slot.CrossPos = linePos + ln.cross - it.Cross
			case CrossStretch:
				slot.CrossPos = linePos
				slot.Cross = ln.cross
			default: // CrossStart
				slot.CrossPos = linePos
			}
			if s.Direction.Reversed() {
				slot.MainPos = mainLen - slot.MainPos - slot.Main
			}
			slots[i] = slot

			cursor += it.Main + it.MarginEnd
		}
		linePos += ln.cross
	}

	return slots
}

// mainDistribution returns the initial offset and the extra per-child
// spacing for the given main-axis alignment and residual space.
func mainDistribution(align MainAlign, free float32, count int) (offset, spacing float32) {
	if free <= 0 || count == 0 {
		return 0, 0
	}
	switch align {
	case MainCenter:
		return free / 2, 0
	case MainEnd:
		return free, 0
	case MainSpaceBetween:
		if count > 1 {
			return 0, free / float32(count-1)
		}
		return 0, 0
	case MainSpaceAround:
		return free / float32(count*2), free / float32(count)
	default: // MainStart
		return 0, 0
	}
}

package sdp

import "strconv"

// Symbol is the three-way state of one cube position.
type Symbol uint8

const (
	DontCare Symbol = iota // DontCare: the link is irrelevant to the term.
	Up                     // Up: the link must be operational.
	Down                   // Down: the link belongs to a "not all up" group.
)

// String renders the symbol as used in cube notation.
func (s Symbol) String() string {
	switch s {
	case Up:
		return "1"
	case Down:
		return "0"
	default:
		return "x"
	}
}

// Bit is one position of a Cube: Up, DontCare, or Down with a group label.
//
// The zero value is DontCare. The group is only observable for Down bits;
// group 0 marks an ungrouped literal ("this link is down"), any other group g
// means "not every link labeled Down(g) in this cube is up".
type Bit struct {
	sym   Symbol
	group uint32
}

// UpBit returns an Up bit.
func UpBit() Bit { return Bit{sym: Up} }

// DontCareBit returns a DontCare bit.
func DontCareBit() Bit { return Bit{} }

// DownBit returns a Down bit in the given group.
func DownBit(group uint32) Bit { return Bit{sym: Down, group: group} }

// Symbol returns the bit's state.
func (b Bit) Symbol() Symbol { return b.sym }

// Group returns the group label of a Down bit, and 0 for any other bit.
func (b Bit) Group() uint32 {
	if b.sym != Down {
		return 0
	}

	return b.group
}

// IsUp reports whether b is Up.
func (b Bit) IsUp() bool { return b.sym == Up }

// IsDown reports whether b is Down (any group).
func (b Bit) IsDown() bool { return b.sym == Down }

// IsDontCare reports whether b is DontCare.
func (b Bit) IsDontCare() bool { return b.sym == DontCare }

// inGroup reports whether b is Down(g).
func (b Bit) inGroup(g uint32) bool { return b.sym == Down && b.group == g }

// String renders "1", "x", "0" (ungrouped) or "0:g".
func (b Bit) String() string {
	if b.sym == Down && b.group != 0 {
		return "0:" + strconv.FormatUint(uint64(b.group), 10)
	}

	return b.sym.String()
}

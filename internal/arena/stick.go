package arena

// Orientation is the direction a stick lies in.
type Orientation uint8

const (
	None       Orientation = 0
	Horizontal Orientation = 1
	Vertical   Orientation = 2

	orientMask = 3
)

// String returns a short name for the orientation.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "none"
	}
}

// Toggled returns the other axis. None stays None.
func (o Orientation) Toggled() Orientation {
	if o == None {
		return None
	}
	return orientMask - o
}

// Stick is the packed per-slot value: orientation in the low two bits and
// the frozen flag in the high bit.
type Stick uint8

const frozenBit Stick = 0x80

// Orientation returns the stick's orientation, ignoring the frozen flag.
func (s Stick) Orientation() Orientation {
	return Orientation(s & orientMask)
}

// Frozen reports whether the stick is frozen.
func (s Stick) Frozen() bool {
	return s&frozenBit != 0
}

// IsNone reports whether the slot holds no stick.
func (s Stick) IsNone() bool {
	return s.Orientation() == None
}

// String returns H, V or . with a trailing * when frozen.
func (s Stick) String() string {
	var r string
	switch s.Orientation() {
	case Horizontal:
		r = "H"
	case Vertical:
		r = "V"
	default:
		return "."
	}
	if s.Frozen() {
		r += "*"
	}
	return r
}

func withOrientation(s Stick, o Orientation) Stick {
	return (s &^ orientMask) | Stick(o)
}

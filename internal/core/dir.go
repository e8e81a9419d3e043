package core

import (
	"fmt"
	"strings"
)

// Dir is a direction of travel between adjacent tiles.
type Dir uint8

const (
	DirNone Dir = iota
	DirUp
	DirRight
	DirDown
	DirLeft
)

// Axis groups directions by the line they travel along.
type Axis uint8

const (
	AxisNone Axis = iota
	AxisHorizontal
	AxisVertical
)

// Dirs lists the four travel directions in a fixed order.
var Dirs = [4]Dir{DirLeft, DirRight, DirUp, DirDown}

// String returns the lower-case name of the direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "none"
	}
}

// Delta returns the (dx, dy) unit vector for this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Dir) Opposite() Dir {
	switch d {
	case DirUp:
		return DirDown
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return d
	}
}

// Axis reports which axis the direction travels along.
func (d Dir) Axis() Axis {
	switch d {
	case DirLeft, DirRight:
		return AxisHorizontal
	case DirUp, DirDown:
		return AxisVertical
	default:
		return AxisNone
	}
}

// IsHorizontal is true for Left and Right.
func (d Dir) IsHorizontal() bool {
	return d.Axis() == AxisHorizontal
}

// IsVertical is true for Up and Down.
func (d Dir) IsVertical() bool {
	return d.Axis() == AxisVertical
}

// ParseDir accepts full names and single-letter shorthands (l, r, u, d).
func ParseDir(s string) (Dir, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, nil
	case "right", "r":
		return DirRight, nil
	case "down", "d":
		return DirDown, nil
	case "left", "l":
		return DirLeft, nil
	default:
		return DirNone, fmt.Errorf("unknown direction %q", s)
	}
}

package arena

import "github.com/vovakirdan/blarbs/internal/core"

// Arena is the mutable stick grid. The zero value has no sticks; use New or
// NewWithLayout.
type Arena struct {
	layout Layout
	sticks [SlotCount]Stick
}

// New returns an arena loaded with the default layout.
func New() *Arena {
	return NewWithLayout(DefaultLayout())
}

// NewWithLayout returns an arena loaded with the given layout.
func NewWithLayout(l Layout) *Arena {
	a := &Arena{layout: l}
	a.Reset()
	return a
}

// Reset restores every stick to its layout orientation and thaws it.
func (a *Arena) Reset() {
	for slot := range a.sticks {
		if _, ok := slotCoord(slot); !ok {
			a.sticks[slot] = Stick(None)
			continue
		}
		a.sticks[slot] = Stick(a.layout[slot])
	}
}

// Layout returns the layout the arena resets to.
func (a *Arena) Layout() Layout {
	return a.layout
}

// Snapshot returns a copy of the packed stick table.
func (a *Arena) Snapshot() [SlotCount]Stick {
	return a.sticks
}

// Clone returns an independent copy of the arena.
func (a *Arena) Clone() *Arena {
	c := *a
	return &c
}

// StickAt returns the packed stick at (x, y). Off-grid points read as an
// empty, unfrozen slot.
func (a *Arena) StickAt(x, y int) Stick {
	off := stickOffset(x, y)
	if off < 0 {
		return Stick(None)
	}
	return a.sticks[off]
}

// StickOrientationAt returns the orientation at (x, y), or None off-grid.
func (a *Arena) StickOrientationAt(x, y int) Orientation {
	return a.StickAt(x, y).Orientation()
}

// IsFrozenAt reports whether the stick at (x, y) is frozen.
func (a *Arena) IsFrozenAt(x, y int) bool {
	return a.StickAt(x, y).Frozen()
}

// slot returns a pointer to a real stick, or nil for off-grid points and
// holes.
func (a *Arena) slot(x, y int) *Stick {
	off := stickOffset(x, y)
	if off < 0 || a.sticks[off].IsNone() {
		return nil
	}
	return &a.sticks[off]
}

// SetStickOrientationAt overwrites the orientation at (x, y), keeping the
// frozen flag. Holes, off-grid points and None as a target are ignored.
func (a *Arena) SetStickOrientationAt(x, y int, o Orientation) {
	s := a.slot(x, y)
	if s == nil || (o != Horizontal && o != Vertical) {
		return
	}
	*s = withOrientation(*s, o)
}

// FreezeStickAt sets the frozen flag at (x, y).
func (a *Arena) FreezeStickAt(x, y int) {
	if s := a.slot(x, y); s != nil {
		*s |= frozenBit
	}
}

// ThawStickAt clears the frozen flag at (x, y).
func (a *Arena) ThawStickAt(x, y int) {
	if s := a.slot(x, y); s != nil {
		*s &^= frozenBit
	}
}

// RotateStickAt toggles the orientation at (x, y). Frozen sticks, holes and
// off-grid points are left alone and false is returned.
func (a *Arena) RotateStickAt(x, y int) bool {
	s := a.slot(x, y)
	if s == nil || s.Frozen() {
		return false
	}
	*s = withOrientation(*s, s.Orientation().Toggled())
	return true
}

// ForEachStick calls fn for every real stick in row-major order.
func (a *Arena) ForEachStick(fn func(at core.Coord, s Stick)) {
	for slot, s := range a.sticks {
		if s.IsNone() {
			continue
		}
		at, ok := slotCoord(slot)
		if !ok {
			continue
		}
		fn(at, s)
	}
}

// StickCount returns the number of real sticks.
func (a *Arena) StickCount() int {
	n := 0
	a.ForEachStick(func(core.Coord, Stick) { n++ })
	return n
}

// FrozenCount returns the number of frozen sticks.
func (a *Arena) FrozenCount() int {
	n := 0
	a.ForEachStick(func(_ core.Coord, s Stick) {
		if s.Frozen() {
			n++
		}
	})
	return n
}

// StickChangedAt builds a change notification carrying the current value of
// the stick at c.
func (a *Arena) StickChangedAt(c core.Coord) StickChangedEvent {
	return StickChangedEvent{At: c, Stick: a.StickAt(c.X, c.Y)}
}

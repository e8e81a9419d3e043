package core

import "testing"

func TestDirAxis(t *testing.T) {
	tests := []struct {
		dir  Dir
		axis Axis
	}{
		{DirLeft, AxisHorizontal},
		{DirRight, AxisHorizontal},
		{DirUp, AxisVertical},
		{DirDown, AxisVertical},
		{DirNone, AxisNone},
	}

	for _, tc := range tests {
		if got := tc.dir.Axis(); got != tc.axis {
			t.Errorf("%v.Axis() = %v, expected %v", tc.dir, got, tc.axis)
		}
	}
}

func TestDirOpposite(t *testing.T) {
	for _, d := range Dirs {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v.Opposite().Opposite() = %v", d, d.Opposite().Opposite())
		}
		if d.Opposite().Axis() != d.Axis() {
			t.Errorf("%v and its opposite are on different axes", d)
		}
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		if dx+ox != 0 || dy+oy != 0 {
			t.Errorf("%v delta does not cancel its opposite", d)
		}
	}
}

func TestParseDir(t *testing.T) {
	tests := []struct {
		in      string
		want    Dir
		wantErr bool
	}{
		{"left", DirLeft, false},
		{"R", DirRight, false},
		{" up ", DirUp, false},
		{"d", DirDown, false},
		{"sideways", DirNone, true},
		{"", DirNone, true},
	}

	for _, tc := range tests {
		got, err := ParseDir(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDir(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParseDir(%q) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}

func TestInputFrameDirection(t *testing.T) {
	f := NewInputFrame()
	if f.Direction() != DirNone {
		t.Errorf("empty frame Direction() = %v, expected none", f.Direction())
	}

	f.Set(ActionLeft)
	if f.Direction() != DirLeft {
		t.Errorf("Direction() = %v, expected left", f.Direction())
	}

	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear should remove all actions")
	}

	for _, d := range Dirs {
		if got := FrameFor(ActionForDir(d)).Direction(); got != d {
			t.Errorf("FrameFor(%v).Direction() = %v", d, got)
		}
	}
}

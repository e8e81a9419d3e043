package main

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/blarbs/internal/core"
)

func TestParseMoves(t *testing.T) {
	tests := []struct {
		in      string
		want    []core.Dir
		wantErr bool
	}{
		{"", nil, false},
		{"DDDLLD", []core.Dir{core.DirDown, core.DirDown, core.DirDown, core.DirLeft, core.DirLeft, core.DirDown}, false},
		{"u, r", []core.Dir{core.DirUp, core.DirRight}, false},
		{"DX", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseMoves(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseMoves(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseMoves(%q) = %v, expected %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLivesLabel(t *testing.T) {
	if got := livesLabel(0); got != "unlimited" {
		t.Errorf("livesLabel(0) = %q", got)
	}
	if got := livesLabel(3); got != "♥♥♥" {
		t.Errorf("livesLabel(3) = %q", got)
	}
}

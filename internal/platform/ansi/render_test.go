package ansi

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/blarbs/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetCell(2, 0, '@', core.ColorGreen)
	s.SetCell(3, 1, 'M', core.Color(200)) // unknown colors fall back to default

	out := RenderScreen(s)
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen() rows = %d, expected 2", strings.Count(out, "\n")+1)
	}
	for _, want := range []string{"ab", "@", "M"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() = %q, missing %q", out, want)
		}
	}
}

func TestPrintPlainWhenNotTerminal(t *testing.T) {
	s := core.NewScreen(3, 1)
	s.SetCell(1, 0, 'x', core.ColorRed)

	var buf bytes.Buffer
	if IsTerminal(&buf) {
		t.Fatal("bytes.Buffer reported as terminal")
	}
	if err := Print(&buf, s); err != nil {
		t.Fatalf("Print() error = %v", err)
	}
	if got := buf.String(); got != " x \n" {
		t.Errorf("Print() = %q, expected plain text", got)
	}
}

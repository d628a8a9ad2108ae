package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestText_RendersEveryNodeKind(t *testing.T) {
	out := ansi.Strip(Text([]Node{
		StyledText{Classes: []string{"quote"}, Text: ">be me"},
		EmbeddedObjection{Asset: "/img/objection.gif"},
		DiceRoll{Value: 2},
		Placeholder{},
	}, 80))

	for _, want := range []string{">be me", "OBJECTION!", "/img/objection.gif", "🎲 2"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestText_ClampsToWidth(t *testing.T) {
	out := Text([]Node{EmbeddedObjection{Asset: strings.Repeat("x", 200)}}, 30)
	for _, ln := range strings.Split(out, "\n") {
		if w := ansi.StringWidth(ln); w > 30 {
			t.Fatalf("line wider than 30: %d %q", w, ansi.Strip(ln))
		}
	}
}

func TestPreview_PlaceholderIsEmpty(t *testing.T) {
	if got := Preview(Placeholder{}, 40); got != "" {
		t.Fatalf("placeholder must render empty, got %q", got)
	}
	if got := Preview(nil, 40); got != "" {
		t.Fatalf("nil preview must render empty, got %q", got)
	}
}

func TestBacklinks(t *testing.T) {
	out := ansi.Strip(Backlinks([]RefView{{No: 2, Found: true}, {No: 9}}, 0))
	if !strings.Contains(out, ">>2") || !strings.Contains(out, ">>9") {
		t.Fatalf("backlinks missing: %q", out)
	}
	if Backlinks(nil, -1) != "" {
		t.Fatalf("no refs must render empty")
	}
}

func TestHeader_AnonymousFallback(t *testing.T) {
	out := ansi.Strip(Header(PostView{No: 5, Subject: "hi"}))
	if !strings.Contains(out, "Anonymous") || !strings.Contains(out, "No. 5") || !strings.Contains(out, "hi") {
		t.Fatalf("unexpected header: %q", out)
	}
}

package schemas

import (
	"strings"
	"testing"
)

func TestDeckFromMarkdownSplitsAndClassifies(t *testing.T) {
	md := strings.Join([]string{
		"# Quarterly Review",
		"---",
		"## Highlights",
		"- Revenue up",
		"- Churn down",
		"***",
		"## Numbers",
		"```",
		"rev = 1200",
		"```",
		"___",
		"> Ship early, ship often.",
		"---",
		"## Context",
		"Some narrative paragraph.",
	}, "\n")

	deck := DeckFromMarkdown(md)
	if len(deck.Slides) != 5 {
		t.Fatalf("expected 5 slides, got %d", len(deck.Slides))
	}

	layouts := make([]string, len(deck.Slides))
	for i, s := range deck.Slides {
		layouts[i] = s.Layout
	}
	want := []string{"title", "bullets", "code", "quote", "text"}
	for i := range want {
		if layouts[i] != want[i] {
			t.Fatalf("slide %d: expected layout %q, got %q (all: %v)", i, want[i], layouts[i], layouts)
		}
	}

	if deck.Slides[0].Title != "Quarterly Review" {
		t.Fatalf("title slide: got %q", deck.Slides[0].Title)
	}
	if len(deck.Slides[1].Bullets) != 2 || deck.Slides[1].Bullets[0] != "Revenue up" {
		t.Fatalf("bullets slide: got %v", deck.Slides[1].Bullets)
	}
}

func TestDeckFromMarkdownDropsEmptySegments(t *testing.T) {
	deck := DeckFromMarkdown("---\n\n---\n# Only slide")
	if len(deck.Slides) != 1 {
		t.Fatalf("expected 1 slide, got %d", len(deck.Slides))
	}
}

func TestDeckFromMarkdownEmptyInput(t *testing.T) {
	deck := DeckFromMarkdown("")
	if deck.Slides == nil || len(deck.Slides) != 0 {
		t.Fatalf("expected empty non-nil slide list, got %v", deck.Slides)
	}
}

func TestTimelineFromMarkdown(t *testing.T) {
	md := strings.Join([]string{
		"intro text that precedes any heading",
		"## 2025-01-15 🚀 Kickoff",
		"Project start.",
		"Second line of detail.",
		"",
		"### 2025-02-01 Design review",
		"## not-a-date heading",
		"still part of the previous description",
	}, "\n")

	tl := TimelineFromMarkdown(md)
	if len(tl.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(tl.Events))
	}

	first := tl.Events[0]
	if first.Date != "2025-01-15" || first.Title != "Kickoff" || first.Icon != "🚀" {
		t.Fatalf("first event: %+v", first)
	}
	if first.Description != "Project start.\nSecond line of detail." {
		t.Fatalf("first description: %q", first.Description)
	}

	second := tl.Events[1]
	if second.Icon != "" || second.Title != "Design review" {
		t.Fatalf("second event: %+v", second)
	}
	if !strings.Contains(second.Description, "not-a-date") {
		t.Fatalf("malformed heading should fold into description, got %q", second.Description)
	}
}

func TestTimelineFromMarkdownNoHeadings(t *testing.T) {
	tl := TimelineFromMarkdown("just\nsome\nprose")
	if tl.Events == nil || len(tl.Events) != 0 {
		t.Fatalf("expected empty non-nil event list, got %v", tl.Events)
	}
}

func TestSplitIcon(t *testing.T) {
	cases := []struct {
		in, icon, title string
	}{
		{"🚀 Kickoff", "🚀", "Kickoff"},
		{"Plain title", "", "Plain title"},
		{"1 numbered", "", "1 numbered"},
		{"🎉", "", "🎉"},
	}
	for _, c := range cases {
		icon, title := splitIcon(c.in)
		if icon != c.icon || title != c.title {
			t.Errorf("splitIcon(%q) = %q, %q; want %q, %q", c.in, icon, title, c.icon, c.title)
		}
	}
}

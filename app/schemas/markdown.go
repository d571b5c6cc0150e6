package schemas

import (
	"regexp"
	"strings"
	"unicode"
)

// Markdown-to-structured-content adapters for the deck and timeline apps.
// Both are pure functions over an explicit grammar: decks split on
// horizontal-rule lines, timelines on date-then-title heading lines.

type Slide struct {
	Layout  string   `json:"layout"`
	Title   string   `json:"title"`
	Body    string   `json:"body"`
	Bullets []string `json:"bullets"`
}

type Deck struct {
	Slides []Slide `json:"slides"`
}

type TimelineEvent struct {
	Date        string `json:"date"`
	Title       string `json:"title"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

type Timeline struct {
	Events []TimelineEvent `json:"events"`
}

var (
	ruleLine    = regexp.MustCompile(`^\s*(---+|\*\*\*+|___+)\s*$`)
	headingLine = regexp.MustCompile(`^#{1,6}\s+(.*)$`)
	dateHeading = regexp.MustCompile(`^#{1,6}\s+(\d{4}-\d{2}-\d{2})\s+(.+)$`)
)

// DeckFromMarkdown splits markdown into slides on horizontal-rule lines and
// classifies each segment's layout by its content:
//
//   - "title":   a lone heading
//   - "bullets": a heading followed only by list items
//   - "code":    contains a fenced code block
//   - "quote":   first content line is a blockquote
//   - "text":    everything else
func DeckFromMarkdown(md string) Deck {
	deck := Deck{Slides: []Slide{}}
	for _, segment := range splitOnRules(md) {
		slide := classifySegment(segment)
		if slide != nil {
			deck.Slides = append(deck.Slides, *slide)
		}
	}
	return deck
}

func splitOnRules(md string) []string {
	var segments []string
	var cur []string
	for _, line := range strings.Split(md, "\n") {
		if ruleLine.MatchString(line) {
			segments = append(segments, strings.Join(cur, "\n"))
			cur = cur[:0]
			continue
		}
		cur = append(cur, line)
	}
	segments = append(segments, strings.Join(cur, "\n"))
	return segments
}

func classifySegment(segment string) *Slide {
	lines := strings.Split(segment, "\n")
	slide := Slide{Layout: "text", Bullets: []string{}}
	var body []string
	content := 0
	bullets := 0
	fenced := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		content++
		if strings.HasPrefix(trimmed, "```") {
			fenced = true
		}
		if m := headingLine.FindStringSubmatch(trimmed); m != nil && slide.Title == "" {
			slide.Title = strings.TrimSpace(m[1])
			continue
		}
		if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
			slide.Bullets = append(slide.Bullets, strings.TrimSpace(trimmed[2:]))
			bullets++
		}
		body = append(body, line)
	}
	if content == 0 {
		return nil
	}
	slide.Body = strings.TrimSpace(strings.Join(body, "\n"))

	switch {
	case fenced:
		slide.Layout = "code"
	case slide.Title != "" && len(body) == 0:
		slide.Layout = "title"
	case bullets > 0 && bullets == len(body):
		slide.Layout = "bullets"
	case strings.HasPrefix(slide.Body, ">"):
		slide.Layout = "quote"
	}
	return &slide
}

// TimelineFromMarkdown parses heading lines of the form
//
//	## 2025-01-15 Title text
//
// into events, accumulating subsequent lines as the event description. A
// leading emoji rune in the title is extracted as the event icon. Lines that
// precede the first date heading are dropped; after a heading they join that
// event's description.
func TimelineFromMarkdown(md string) Timeline {
	tl := Timeline{Events: []TimelineEvent{}}
	var cur *TimelineEvent
	var desc []string

	flush := func() {
		if cur != nil {
			cur.Description = strings.TrimSpace(strings.Join(desc, "\n"))
			tl.Events = append(tl.Events, *cur)
		}
		cur = nil
		desc = nil
	}

	for _, line := range strings.Split(md, "\n") {
		trimmed := strings.TrimSpace(line)
		if m := dateHeading.FindStringSubmatch(trimmed); m != nil {
			flush()
			icon, title := splitIcon(strings.TrimSpace(m[2]))
			cur = &TimelineEvent{Date: m[1], Title: title, Icon: icon}
			continue
		}
		if cur == nil || trimmed == "" {
			continue
		}
		desc = append(desc, trimmed)
	}
	flush()
	return tl
}

// splitIcon extracts a leading emoji rune (anything outside letters, digits
// and punctuation) followed by a space.
func splitIcon(title string) (string, string) {
	runes := []rune(title)
	if len(runes) < 2 {
		return "", title
	}
	r := runes[0]
	if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsPunct(r) || r < 128 {
		return "", title
	}
	rest := strings.TrimSpace(string(runes[1:]))
	if rest == "" {
		return "", title
	}
	return string(r), rest
}

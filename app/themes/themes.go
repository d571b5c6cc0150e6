package themes

import (
	"fmt"
	"sort"
	"strings"
)

// Static registry of content theme presets. These style rendered user
// content (slides, notes, timeline events), not the app chrome. Custom
// themes saved through the API are normalized into the same shape.

type Fonts struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
	Mono    string `json:"mono"`
}

type Colors struct {
	Background       string `json:"background"`
	BackgroundSolid  string `json:"backgroundSolid"`
	Text             string `json:"text"`
	Heading          string `json:"heading"`
	Accent           string `json:"accent"`
	AccentAlt        string `json:"accentAlt"`
	Muted            string `json:"muted"`
	Link             string `json:"link"`
	CodeBg           string `json:"codeBg"`
	CodeText         string `json:"codeText"`
	BlockquoteBorder string `json:"blockquoteBorder"`
	BlockquoteBg     string `json:"blockquoteBg"`
	TableBorder      string `json:"tableBorder"`
	TableHeaderBg    string `json:"tableHeaderBg"`
}

type Styles struct {
	HeadingWeight        int     `json:"headingWeight"`
	HeadingLetterSpacing string  `json:"headingLetterSpacing"`
	BodyLineHeight       float64 `json:"bodyLineHeight"`
	ParagraphSpacing     string  `json:"paragraphSpacing"`
	BorderRadius         string  `json:"borderRadius"`
}

type Preset struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Fonts       Fonts  `json:"fonts"`
	Colors      Colors `json:"colors"`
	Styles      Styles `json:"styles"`
}

type FontPreset struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Heading     string `json:"heading"`
	Body        string `json:"body"`
	Mono        string `json:"mono"`
	GoogleFonts string `json:"googleFonts"`
}

var registry = map[string]Preset{
	"midnight": {
		Name: "Midnight", Category: "dark", Description: "Deep blue-black with crisp white text",
		Fonts: Fonts{Heading: "'Space Grotesk', sans-serif", Body: "'Inter', sans-serif", Mono: "'JetBrains Mono', monospace"},
		Colors: Colors{
			Background:      "linear-gradient(135deg, #0f0f23 0%, #1a1a3e 50%, #0d0d1a 100%)",
			BackgroundSolid: "#0f0f23", Text: "#e8e8e8", Heading: "#ffffff",
			Accent: "#e94560", AccentAlt: "#ff6b6b", Muted: "#8892b0", Link: "#64ffda",
			CodeBg: "rgba(255, 255, 255, 0.08)", CodeText: "#e8e8e8",
			BlockquoteBorder: "#e94560", BlockquoteBg: "rgba(233, 69, 96, 0.1)",
			TableBorder: "#2a2a4a", TableHeaderBg: "rgba(255, 255, 255, 0.05)",
		},
		Styles: Styles{HeadingWeight: 700, HeadingLetterSpacing: "-0.02em", BodyLineHeight: 1.7, ParagraphSpacing: "1.25em", BorderRadius: "8px"},
	},
	"aurora": {
		Name: "Aurora", Category: "dark", Description: "Northern lights inspired with cyan accents",
		Fonts: Fonts{Heading: "'Space Grotesk', sans-serif", Body: "'Inter', sans-serif", Mono: "'Fira Code', monospace"},
		Colors: Colors{
			Background:      "linear-gradient(135deg, #1a1a2e 0%, #16213e 30%, #0f3460 70%, #1a1a2e 100%)",
			BackgroundSolid: "#1a1a2e", Text: "#e0e0e0", Heading: "#64ffda",
			Accent: "#64ffda", AccentAlt: "#00bfa5", Muted: "#8892b0", Link: "#64ffda",
			CodeBg: "rgba(100, 255, 218, 0.1)", CodeText: "#64ffda",
			BlockquoteBorder: "#64ffda", BlockquoteBg: "rgba(100, 255, 218, 0.05)",
			TableBorder: "#2a3f5f", TableHeaderBg: "rgba(100, 255, 218, 0.1)",
		},
		Styles: Styles{HeadingWeight: 600, HeadingLetterSpacing: "-0.01em", BodyLineHeight: 1.75, ParagraphSpacing: "1.5em", BorderRadius: "12px"},
	},
	"ember": {
		Name: "Ember", Category: "dark", Description: "Warm orange and amber tones",
		Fonts: Fonts{Heading: "'Outfit', sans-serif", Body: "'Source Sans 3', sans-serif", Mono: "'JetBrains Mono', monospace"},
		Colors: Colors{
			Background:      "linear-gradient(135deg, #1c1917 0%, #292524 100%)",
			BackgroundSolid: "#1c1917", Text: "#fafaf9", Heading: "#fbbf24",
			Accent: "#f59e0b", AccentAlt: "#fb923c", Muted: "#a8a29e", Link: "#fbbf24",
			CodeBg: "rgba(251, 191, 36, 0.1)", CodeText: "#fbbf24",
			BlockquoteBorder: "#f59e0b", BlockquoteBg: "rgba(245, 158, 11, 0.1)",
			TableBorder: "#44403c", TableHeaderBg: "rgba(251, 191, 36, 0.1)",
		},
		Styles: Styles{HeadingWeight: 700, HeadingLetterSpacing: "-0.02em", BodyLineHeight: 1.7, ParagraphSpacing: "1.25em", BorderRadius: "10px"},
	},
	"paper": {
		Name: "Paper", Category: "light", Description: "Classic editorial with warm cream tones",
		Fonts: Fonts{Heading: "'Playfair Display', serif", Body: "'Source Serif 4', serif", Mono: "'Fira Code', monospace"},
		Colors: Colors{
			Background:      "linear-gradient(135deg, #f5f5dc 0%, #faf8ef 50%, #f5f5dc 100%)",
			BackgroundSolid: "#faf8ef", Text: "#3d3d3d", Heading: "#1a1a1a",
			Accent: "#8b4513", AccentAlt: "#a0522d", Muted: "#666666", Link: "#8b4513",
			CodeBg: "rgba(139, 69, 19, 0.08)", CodeText: "#8b4513",
			BlockquoteBorder: "#8b4513", BlockquoteBg: "rgba(139, 69, 19, 0.05)",
			TableBorder: "#d4c4a8", TableHeaderBg: "rgba(139, 69, 19, 0.08)",
		},
		Styles: Styles{HeadingWeight: 700, HeadingLetterSpacing: "-0.01em", BodyLineHeight: 1.85, ParagraphSpacing: "1.5em", BorderRadius: "4px"},
	},
	"minimal": {
		Name: "Minimal", Category: "light", Description: "Clean and simple black on white",
		Fonts: Fonts{Heading: "'Inter', sans-serif", Body: "'Inter', sans-serif", Mono: "'SF Mono', monospace"},
		Colors: Colors{
			Background:      "#ffffff",
			BackgroundSolid: "#ffffff", Text: "#333333", Heading: "#111111",
			Accent: "#0066cc", AccentAlt: "#0052a3", Muted: "#666666", Link: "#0066cc",
			CodeBg: "#f4f4f4", CodeText: "#333333",
			BlockquoteBorder: "#dddddd", BlockquoteBg: "#f9f9f9",
			TableBorder: "#e5e5e5", TableHeaderBg: "#f4f4f4",
		},
		Styles: Styles{HeadingWeight: 600, HeadingLetterSpacing: "-0.02em", BodyLineHeight: 1.7, ParagraphSpacing: "1.25em", BorderRadius: "6px"},
	},
	"typewriter": {
		Name: "Typewriter", Category: "light", Description: "Monospace everything, vintage feel",
		Fonts: Fonts{Heading: "'Courier Prime', monospace", Body: "'Courier Prime', monospace", Mono: "'Courier Prime', monospace"},
		Colors: Colors{
			Background:      "#f4f1ea",
			BackgroundSolid: "#f4f1ea", Text: "#2c2c2c", Heading: "#1a1a1a",
			Accent: "#c41e3a", AccentAlt: "#a01830", Muted: "#666666", Link: "#c41e3a",
			CodeBg: "#e8e4db", CodeText: "#2c2c2c",
			BlockquoteBorder: "#2c2c2c", BlockquoteBg: "#ebe7de",
			TableBorder: "#d4d0c7", TableHeaderBg: "#e8e4db",
		},
		Styles: Styles{HeadingWeight: 700, HeadingLetterSpacing: "0", BodyLineHeight: 1.65, ParagraphSpacing: "1.5em", BorderRadius: "0px"},
	},
	"terminal": {
		Name: "Terminal", Category: "dark", Description: "Green on black, hacker aesthetic",
		Fonts: Fonts{Heading: "'JetBrains Mono', monospace", Body: "'JetBrains Mono', monospace", Mono: "'JetBrains Mono', monospace"},
		Colors: Colors{
			Background:      "#0d0d0d",
			BackgroundSolid: "#0d0d0d", Text: "#33ff33", Heading: "#33ff33",
			Accent: "#33ff33", AccentAlt: "#00cc00", Muted: "#1a991a", Link: "#66ff66",
			CodeBg: "#1a1a1a", CodeText: "#33ff33",
			BlockquoteBorder: "#33ff33", BlockquoteBg: "rgba(51, 255, 51, 0.05)",
			TableBorder: "#1a4d1a", TableHeaderBg: "rgba(51, 255, 51, 0.1)",
		},
		Styles: Styles{HeadingWeight: 700, HeadingLetterSpacing: "0", BodyLineHeight: 1.5, ParagraphSpacing: "1em", BorderRadius: "0px"},
	},
}

var fontPresets = []FontPreset{
	{
		ID: "modern-sans", Name: "Modern Sans",
		Heading: "'Space Grotesk', sans-serif", Body: "'Inter', sans-serif", Mono: "'JetBrains Mono', monospace",
		GoogleFonts: "Space+Grotesk:wght@400;500;600;700&family=Inter:wght@400;500;600&family=JetBrains+Mono:wght@400;500",
	},
	{
		ID: "classic-serif", Name: "Classic Serif",
		Heading: "'Playfair Display', serif", Body: "'Source Serif 4', serif", Mono: "'Fira Code', monospace",
		GoogleFonts: "Playfair+Display:wght@400;500;600;700&family=Source+Serif+4:wght@400;500;600&family=Fira+Code:wght@400;500",
	},
	{
		ID: "technical", Name: "Technical",
		Heading: "'IBM Plex Sans', sans-serif", Body: "'IBM Plex Sans', sans-serif", Mono: "'IBM Plex Mono', monospace",
		GoogleFonts: "IBM+Plex+Sans:wght@400;500;600;700&family=IBM+Plex+Mono:wght@400;500",
	},
	{
		ID: "geometric", Name: "Geometric",
		Heading: "'DM Sans', sans-serif", Body: "'DM Sans', sans-serif", Mono: "'DM Mono', monospace",
		GoogleFonts: "DM+Sans:wght@400;500;600;700&family=DM+Mono:wght@400;500",
	},
}

// All returns the presets sorted by id.
func All() []Preset {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]Preset, 0, len(ids))
	for _, id := range ids {
		p := registry[id]
		p.ID = id
		out = append(out, p)
	}
	return out
}

// ByCategory filters presets by category.
func ByCategory(category string) []Preset {
	var out []Preset
	for _, p := range All() {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Get looks up one preset by id.
func Get(id string) (Preset, bool) {
	p, ok := registry[id]
	if ok {
		p.ID = id
	}
	return p, ok
}

// FontPresets returns the font pairings offered by the theme designer.
func FontPresets() []FontPreset { return fontPresets }

// CSSVariables renders a preset as the --content-* custom property block
// applied to rendered content containers.
func CSSVariables(p Preset) string {
	var b strings.Builder
	add := func(name, value string) {
		fmt.Fprintf(&b, "--content-%s: %s;\n", name, value)
	}
	add("font-heading", p.Fonts.Heading)
	add("font-body", p.Fonts.Body)
	add("font-mono", p.Fonts.Mono)
	add("bg", p.Colors.Background)
	add("bg-solid", p.Colors.BackgroundSolid)
	add("text", p.Colors.Text)
	add("heading", p.Colors.Heading)
	add("accent", p.Colors.Accent)
	add("accent-alt", p.Colors.AccentAlt)
	add("muted", p.Colors.Muted)
	add("link", p.Colors.Link)
	add("code-bg", p.Colors.CodeBg)
	add("code-text", p.Colors.CodeText)
	add("blockquote-border", p.Colors.BlockquoteBorder)
	add("blockquote-bg", p.Colors.BlockquoteBg)
	add("table-border", p.Colors.TableBorder)
	add("table-header-bg", p.Colors.TableHeaderBg)
	add("heading-weight", fmt.Sprintf("%d", p.Styles.HeadingWeight))
	add("heading-letter-spacing", p.Styles.HeadingLetterSpacing)
	add("body-line-height", fmt.Sprintf("%g", p.Styles.BodyLineHeight))
	add("paragraph-spacing", p.Styles.ParagraphSpacing)
	add("border-radius", p.Styles.BorderRadius)
	return b.String()
}

// Normalize fills a custom theme definition with preset defaults so partial
// definitions from the theme designer render consistently.
func Normalize(p Preset) Preset {
	def := registry["midnight"]
	if p.Name == "" {
		p.Name = "Custom Theme"
	}
	p.Category = "custom"
	if p.Fonts.Heading == "" {
		p.Fonts.Heading = def.Fonts.Heading
	}
	if p.Fonts.Body == "" {
		p.Fonts.Body = def.Fonts.Body
	}
	if p.Fonts.Mono == "" {
		p.Fonts.Mono = def.Fonts.Mono
	}
	if p.Colors.Background == "" {
		p.Colors.Background = p.Colors.BackgroundSolid
	}
	if p.Colors.BackgroundSolid == "" {
		p.Colors.BackgroundSolid = p.Colors.Background
	}
	if p.Colors.Background == "" {
		p.Colors.Background = def.Colors.BackgroundSolid
		p.Colors.BackgroundSolid = def.Colors.BackgroundSolid
	}
	if p.Colors.Text == "" {
		p.Colors.Text = def.Colors.Text
	}
	if p.Colors.Heading == "" {
		p.Colors.Heading = p.Colors.Text
	}
	if p.Colors.Accent == "" {
		p.Colors.Accent = "#6366f1"
	}
	if p.Colors.AccentAlt == "" {
		p.Colors.AccentAlt = p.Colors.Accent
	}
	if p.Colors.Muted == "" {
		p.Colors.Muted = "#8888a0"
	}
	if p.Colors.Link == "" {
		p.Colors.Link = p.Colors.Accent
	}
	if p.Colors.CodeBg == "" {
		p.Colors.CodeBg = def.Colors.CodeBg
	}
	if p.Colors.CodeText == "" {
		p.Colors.CodeText = p.Colors.Text
	}
	if p.Colors.BlockquoteBorder == "" {
		p.Colors.BlockquoteBorder = p.Colors.Accent
	}
	if p.Colors.BlockquoteBg == "" {
		p.Colors.BlockquoteBg = def.Colors.BlockquoteBg
	}
	if p.Colors.TableBorder == "" {
		p.Colors.TableBorder = def.Colors.TableBorder
	}
	if p.Colors.TableHeaderBg == "" {
		p.Colors.TableHeaderBg = def.Colors.TableHeaderBg
	}
	if p.Styles.HeadingWeight == 0 {
		p.Styles.HeadingWeight = def.Styles.HeadingWeight
	}
	if p.Styles.HeadingLetterSpacing == "" {
		p.Styles.HeadingLetterSpacing = def.Styles.HeadingLetterSpacing
	}
	if p.Styles.BodyLineHeight == 0 {
		p.Styles.BodyLineHeight = def.Styles.BodyLineHeight
	}
	if p.Styles.ParagraphSpacing == "" {
		p.Styles.ParagraphSpacing = def.Styles.ParagraphSpacing
	}
	if p.Styles.BorderRadius == "" {
		p.Styles.BorderRadius = def.Styles.BorderRadius
	}
	return p
}

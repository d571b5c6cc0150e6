package schemas

import "worksuite/app/errs"

// Schema describes the JSON shape of one content app's payload. Shapes are
// used for validation on the schema-aware create path and for the discovery
// endpoints; the storage layer never enforces them.
type Schema struct {
	App         string            `json:"app"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Required    []string          `json:"required"`
	Shape       map[string]string `json:"shape"`
	Example     map[string]any    `json:"example"`
}

var registry = []Schema{
	{
		App:         "note",
		Title:       "Notes",
		Description: "Free-form rich text notes",
		Required:    []string{"text"},
		Shape:       map[string]string{"text": "string", "format": "string (plain|markdown)"},
		Example:     map[string]any{"text": "# Meeting notes\n\n- ship it", "format": "markdown"},
	},
	{
		App:         "board",
		Title:       "Kanban",
		Description: "Kanban board with columns of cards",
		Required:    []string{"columns"},
		Shape:       map[string]string{"columns": "array of {id, title, cards: array of {id, title, description}}"},
		Example: map[string]any{
			"columns": []any{
				map[string]any{"id": "c1", "title": "Todo", "cards": []any{
					map[string]any{"id": "k1", "title": "Write spec", "description": ""},
				}},
				map[string]any{"id": "c2", "title": "Done", "cards": []any{}},
			},
		},
	},
	{
		App:         "timeline",
		Title:       "Timeline",
		Description: "Chronological events with optional icons",
		Required:    []string{"events"},
		Shape:       map[string]string{"events": "array of {date, title, icon, description}"},
		Example: map[string]any{
			"events": []any{
				map[string]any{"date": "2025-01-15", "title": "Kickoff", "icon": "🚀", "description": "Project start"},
			},
		},
	},
	{
		App:         "markdown",
		Title:       "Markdown Editor",
		Description: "Markdown documents with optional diagrams",
		Required:    []string{"source"},
		Shape:       map[string]string{"source": "string (markdown)", "diagrams": "array of {id, kind, definition}"},
		Example:     map[string]any{"source": "# Title\n\nBody text.", "diagrams": []any{}},
	},
	{
		App:         "deck",
		Title:       "Slide Deck",
		Description: "Presentation slides",
		Required:    []string{"slides"},
		Shape:       map[string]string{"slides": "array of {layout, title, body, bullets}"},
		Example: map[string]any{
			"slides": []any{
				map[string]any{"layout": "title", "title": "Quarterly Review", "body": "", "bullets": []any{}},
				map[string]any{"layout": "bullets", "title": "Highlights", "body": "", "bullets": []any{"Revenue up", "Churn down"}},
			},
		},
	},
	{
		App:         "metric",
		Title:       "Spreadsheet",
		Description: "Grid of cells keyed by A1-style coordinates",
		Required:    []string{"cells"},
		Shape:       map[string]string{"cells": "object keyed by cell ref, values string or number", "formats": "object keyed by cell ref"},
		Example:     map[string]any{"cells": map[string]any{"A1": "Budget", "B1": 1200}, "formats": map[string]any{}},
	},
	{
		App:         "theme",
		Title:       "Theme Designer",
		Description: "Custom content theme definition",
		Required:    []string{"colors"},
		Shape:       map[string]string{"colors": "object of named colors", "fonts": "object {heading, body, mono}", "styles": "object of layout values"},
		Example: map[string]any{
			"colors": map[string]any{"background": "#0f0f23", "text": "#e8e8e8", "accent": "#e94560"},
			"fonts":  map[string]any{"heading": "'Space Grotesk', sans-serif", "body": "'Inter', sans-serif", "mono": "'JetBrains Mono', monospace"},
			"styles": map[string]any{"borderRadius": "8px"},
		},
	},
}

// All returns every registered schema in stable order.
func All() []Schema { return registry }

// Get looks up one app's schema.
func Get(app string) (Schema, bool) {
	for _, s := range registry {
		if s.App == app {
			return s, true
		}
	}
	return Schema{}, false
}

// Validate checks the required top-level fields for a known app. Unknown
// apps pass; the registry enumerates, it does not gate.
func Validate(app string, content map[string]any) error {
	s, ok := Get(app)
	if !ok {
		return nil
	}
	for _, field := range s.Required {
		if _, present := content[field]; !present {
			return errs.Validation("content."+field, "required for app "+app)
		}
	}
	return nil
}

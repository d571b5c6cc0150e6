package schemas

import (
	"testing"
	"worksuite/app/errs"
)

func TestRegistryCoversEveryApp(t *testing.T) {
	want := []string{"note", "board", "timeline", "markdown", "deck", "metric", "theme"}
	all := All()
	if len(all) != len(want) {
		t.Fatalf("expected %d schemas, got %d", len(want), len(all))
	}
	for _, app := range want {
		s, ok := Get(app)
		if !ok {
			t.Fatalf("missing schema for %s", app)
		}
		if len(s.Required) == 0 {
			t.Fatalf("%s schema has no required fields", app)
		}
		if s.Example == nil {
			t.Fatalf("%s schema has no example", app)
		}
	}
}

func TestExamplePayloadsPassValidation(t *testing.T) {
	for _, s := range All() {
		if err := Validate(s.App, s.Example); err != nil {
			t.Errorf("example for %s fails its own schema: %v", s.App, err)
		}
	}
}

func TestValidateRejectsMissingRequiredField(t *testing.T) {
	err := Validate("deck", map[string]any{"title": "no slides here"})
	if !errs.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestValidateUnknownAppPasses(t *testing.T) {
	if err := Validate("sketchpad", map[string]any{}); err != nil {
		t.Fatalf("unknown apps must pass, got %v", err)
	}
}

func TestGetUnknownApp(t *testing.T) {
	if _, ok := Get("nope"); ok {
		t.Fatal("expected miss for unknown app")
	}
}

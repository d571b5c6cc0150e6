package services

import (
	"encoding/json"
	"testing"
	"worksuite/app/dto"
	"worksuite/app/errs"
	"worksuite/app/repo"
	"worksuite/app/themes"
)

func newThemeService(t *testing.T) *ThemeService {
	t.Helper()
	env := newTestEnv(t, nil)
	return NewThemeService(repo.NewThemeRepository(env.db))
}

func TestThemeCreateNormalizesPartialDefinition(t *testing.T) {
	svc := newThemeService(t)
	created, err := svc.Create(dto.CreateThemeRequest{
		Name: "My Theme",
		Data: json.RawMessage(`{"colors":{"accent":"#ff0000"}}`),
	}, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	var stored themes.Preset
	if err := json.Unmarshal([]byte(created.Data), &stored); err != nil {
		t.Fatalf("stored data not a theme: %v", err)
	}
	if stored.Name != "My Theme" || stored.Category != "custom" {
		t.Fatalf("identity not normalized: %+v", stored)
	}
	if stored.Fonts.Body == "" || stored.Colors.Text == "" {
		t.Fatalf("defaults not filled: %+v", stored)
	}
	if stored.Colors.Link != "#ff0000" {
		t.Fatalf("accent should cascade to link, got %q", stored.Colors.Link)
	}
}

func TestThemeCreateValidation(t *testing.T) {
	svc := newThemeService(t)
	if _, err := svc.Create(dto.CreateThemeRequest{Data: json.RawMessage(`{}`)}, nil); !errs.IsValidation(err) {
		t.Fatalf("expected name validation, got %v", err)
	}
	if _, err := svc.Create(dto.CreateThemeRequest{Name: "x", Data: json.RawMessage(`nope`)}, nil); !errs.IsValidation(err) {
		t.Fatalf("expected data validation, got %v", err)
	}
}

func TestThemeVisibility(t *testing.T) {
	svc := newThemeService(t)
	owner := "u-1"
	other := "u-2"
	mk := func(name string, ownerID *string, public bool) {
		if _, err := svc.Create(dto.CreateThemeRequest{
			Name: name, Data: json.RawMessage(`{}`), IsPublic: public,
		}, ownerID); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}
	mk("public", &owner, true)
	mk("private", &owner, false)
	mk("foreign-private", &other, false)

	mine, err := svc.ListVisible(&owner)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("owner should see public + own private, got %d", len(mine))
	}

	anon, err := svc.ListVisible(nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(anon) != 1 || anon[0].Name != "public" {
		t.Fatalf("anonymous should see only public, got %d", len(anon))
	}
}

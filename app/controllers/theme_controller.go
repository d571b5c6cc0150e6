package controllers

import (
	"net/http"
	"worksuite/app/dto"
	"worksuite/app/middleware"
	"worksuite/app/services"
	"worksuite/app/themes"
)

type ThemeController struct{ Themes *services.ThemeService }

func NewThemeController(svc *services.ThemeService) *ThemeController {
	return &ThemeController{Themes: svc}
}

// List returns public themes plus the caller's own when authenticated.
func (c *ThemeController) List(w http.ResponseWriter, r *http.Request) {
	out, err := c.Themes.ListVisible(middleware.OwnerID(r.Context()))
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (c *ThemeController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateThemeRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	t, err := c.Themes.Create(req, middleware.OwnerID(r.Context()))
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// Presets serves the static preset registry. With ?category= it filters,
// with ?id= it returns one preset and its rendered CSS variables.
func (c *ThemeController) Presets(w http.ResponseWriter, r *http.Request) {
	if id := r.URL.Query().Get("id"); id != "" {
		p, ok := themes.Get(id)
		if !ok {
			writeError(w, http.StatusNotFound, "unknown preset")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"preset": p, "css": themes.CSSVariables(p)})
		return
	}
	if cat := r.URL.Query().Get("category"); cat != "" {
		writeJSON(w, http.StatusOK, themes.ByCategory(cat))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"themes": themes.All(),
		"fonts":  themes.FontPresets(),
	})
}

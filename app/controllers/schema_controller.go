package controllers

import (
	"net/http"
	"worksuite/app/dto"
	"worksuite/app/schemas"
)

// SchemaController exposes the content-app schema registry and the
// markdown-to-structured-content adapters.
type SchemaController struct{}

func NewSchemaController() *SchemaController { return &SchemaController{} }

func (c *SchemaController) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, schemas.All())
}

func (c *SchemaController) Get(w http.ResponseWriter, r *http.Request) {
	s, ok := schemas.Get(r.PathValue("app"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown app")
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// Convert turns markdown into the structured payload of the deck or
// timeline app.
func (c *SchemaController) Convert(w http.ResponseWriter, r *http.Request) {
	var req dto.ConvertRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	switch r.PathValue("app") {
	case "deck":
		writeJSON(w, http.StatusOK, schemas.DeckFromMarkdown(req.Markdown))
	case "timeline":
		writeJSON(w, http.StatusOK, schemas.TimelineFromMarkdown(req.Markdown))
	default:
		writeError(w, http.StatusBadRequest, "no adapter for app")
	}
}

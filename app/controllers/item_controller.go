package controllers

import (
	"net/http"
	"strconv"
	"worksuite/app/dto"
	"worksuite/app/middleware"
	"worksuite/app/repo"
	"worksuite/app/services"
)

// ItemController serves both route families over the item store: the plain
// CRUD family (/items, optional auth, loose validation) and the app-aware
// API family (/api/items, auth required, schema-validated create, search).
type ItemController struct{ Items *services.ItemService }

func NewItemController(items *services.ItemService) *ItemController {
	return &ItemController{Items: items}
}

func filterFromQuery(r *http.Request) (repo.ItemFilter, string) {
	q := r.URL.Query()
	f := repo.ItemFilter{
		Scope:       q.Get("scope"),
		Folder:      q.Get("folder"),
		Status:      q.Get("status"),
		App:         q.Get("app"),
		WorkspaceID: q.Get("workspace_id"),
	}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil && v > 0 {
		f.Limit = v
	}
	if v, err := strconv.Atoi(q.Get("offset")); err == nil && v > 0 {
		f.Offset = v
	}
	return f, q.Get("tag")
}

func (c *ItemController) List(w http.ResponseWriter, r *http.Request) {
	f, tag := filterFromQuery(r)
	items, err := c.Items.List(f, tag)
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Search handles GET /api/items: with a q parameter it searches, without it
// falls back to a filtered list.
func (c *ItemController) Search(w http.ResponseWriter, r *http.Request) {
	f, tag := filterFromQuery(r)
	q := r.URL.Query().Get("q")
	if q == "" {
		c.List(w, r)
		return
	}
	items, err := c.Items.Search(q, f, tag)
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (c *ItemController) Get(w http.ResponseWriter, r *http.Request) {
	item, err := c.Items.Get(r.PathValue("id"))
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (c *ItemController) Create(w http.ResponseWriter, r *http.Request) {
	c.create(w, r, false)
}

// CreateChecked is the schema-aware create: name, app and content are
// required and the app's required content fields are validated.
func (c *ItemController) CreateChecked(w http.ResponseWriter, r *http.Request) {
	c.create(w, r, true)
}

func (c *ItemController) create(w http.ResponseWriter, r *http.Request, enforceSchema bool) {
	var req dto.CreateItemRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	item, err := c.Items.Create(r.Context(), req, middleware.OwnerID(r.Context()), enforceSchema)
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (c *ItemController) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateItemRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	item, err := c.Items.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (c *ItemController) Move(w http.ResponseWriter, r *http.Request) {
	var req dto.MoveItemRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	item, err := c.Items.Move(r.PathValue("id"), req)
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (c *ItemController) Tag(w http.ResponseWriter, r *http.Request) {
	var req dto.TagItemRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	item, err := c.Items.Tag(r.PathValue("id"), req)
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (c *ItemController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Items.Delete(r.Context(), r.PathValue("id")); err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

package controllers

import (
	"net/http"
	"worksuite/app/middleware"
	"worksuite/app/workspace"
)

// WorkspaceController proxies workspace directory lookups. Unlike item
// linkage, here the external call is the operation itself, so failures are
// surfaced as 503 rather than swallowed.
type WorkspaceController struct{ WS *workspace.Client }

func NewWorkspaceController(ws *workspace.Client) *WorkspaceController {
	return &WorkspaceController{WS: ws}
}

func (c *WorkspaceController) List(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	out, err := c.WS.ListWorkspaces(r.Context(), claims.ID)
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (c *WorkspaceController) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := decode(r, &req); err != nil || req.Name == "" {
		writeError(w, http.StatusBadRequest, "name required")
		return
	}
	claims := middleware.GetClaims(r.Context())
	out, err := c.WS.CreateWorkspace(r.Context(), req.Name, claims.ID)
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (c *WorkspaceController) Objects(w http.ResponseWriter, r *http.Request) {
	out, err := c.WS.ListByWorkspace(r.Context(), r.PathValue("id"))
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (c *WorkspaceController) UserByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, http.StatusBadRequest, "email required")
		return
	}
	out, err := c.WS.UserByEmail(r.Context(), email)
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

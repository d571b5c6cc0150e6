package controllers

import (
	"net/http"
	"worksuite/app/dto"
	"worksuite/app/middleware"
	"worksuite/app/services"
)

type BatchController struct{ Batch *services.BatchService }

func NewBatchController(batch *services.BatchService) *BatchController {
	return &BatchController{Batch: batch}
}

func (c *BatchController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.BatchCreateRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	writeJSON(w, http.StatusOK, c.Batch.Create(r.Context(), req, middleware.OwnerID(r.Context())))
}

func (c *BatchController) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.BatchUpdateRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	writeJSON(w, http.StatusOK, c.Batch.Update(r.Context(), req))
}

func (c *BatchController) Move(w http.ResponseWriter, r *http.Request) {
	var req dto.BatchMoveRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	writeJSON(w, http.StatusOK, c.Batch.Move(req))
}

func (c *BatchController) Tag(w http.ResponseWriter, r *http.Request) {
	var req dto.BatchTagRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	writeJSON(w, http.StatusOK, c.Batch.Tag(req))
}

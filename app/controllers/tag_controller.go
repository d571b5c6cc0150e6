package controllers

import (
	"net/http"
	"worksuite/app/services"
)

type TagController struct{ Tags *services.TagService }

func NewTagController(tags *services.TagService) *TagController { return &TagController{Tags: tags} }

// List returns tags with usage counts, most used first.
func (c *TagController) List(w http.ResponseWriter, r *http.Request) {
	tags, err := c.Tags.ListWithUsage()
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tags)
}

// ListAll returns every tag ordered by name.
func (c *TagController) ListAll(w http.ResponseWriter, r *http.Request) {
	tags, err := c.Tags.ListAll()
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tags)
}

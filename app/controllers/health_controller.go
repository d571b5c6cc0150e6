package controllers

import (
	"net/http"
	"worksuite/global"
)

type HealthController struct{ Version string }

func NewHealthController(version string) *HealthController {
	return &HealthController{Version: version}
}

func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": c.Version,
		"storage": global.Config.DataPath,
	})
}

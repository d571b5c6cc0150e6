package controllers

import (
	"net/http"
	"worksuite/app/services"
	"worksuite/app/storage"
)

const maxUploadBytes = 100 << 20

type UploadController struct {
	Items *services.ItemService
	Files *storage.Files
}

func NewUploadController(items *services.ItemService, files *storage.Files) *UploadController {
	return &UploadController{Items: items, Files: files}
}

// Upload stores a multipart file under {scope}/{folder}/ and records it as
// an item carrying the relative file path.
func (c *UploadController) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file")
		return
	}
	defer file.Close()

	scope := r.FormValue("scope")
	if scope == "" {
		scope = "me"
	}
	folder := r.FormValue("folder")
	name := r.FormValue("name")
	if name == "" {
		name = header.Filename
	}

	rel, err := c.Files.Save(scope, folder, header.Filename, file)
	if err != nil {
		fail(w, err)
		return
	}
	var folderPtr *string
	if folder != "" {
		folderPtr = &folder
	}
	item, err := c.Items.CreateUpload(name, r.FormValue("app"), scope, folderPtr, rel)
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

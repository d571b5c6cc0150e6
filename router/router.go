package router

import (
	"net/http"
	"worksuite/app/controllers"
	"worksuite/app/middleware"
)

func NewRouter(
	health *controllers.HealthController,
	auth *controllers.AuthController,
	items *controllers.ItemController,
	uploads *controllers.UploadController,
	tags *controllers.TagController,
	themes *controllers.ThemeController,
	schemas *controllers.SchemaController,
	batch *controllers.BatchController,
	ws *controllers.WorkspaceController,
	sock *controllers.SocketController,
	mw *middleware.Auth,
) http.Handler {
	mux := http.NewServeMux()

	// public
	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("POST /auth/register", auth.Register)
	mux.HandleFunc("POST /auth/login", auth.Login)
	mux.HandleFunc("GET /tags", tags.List)
	mux.HandleFunc("GET /tags/all", tags.ListAll)
	mux.HandleFunc("GET /themes/presets", themes.Presets)
	mux.HandleFunc("GET /ws", sock.Serve)

	// plain CRUD family: identity is optional, owner recorded when present
	opt := func(h http.HandlerFunc) http.Handler { return mw.OptionalAuth(h) }
	mux.Handle("GET /items", opt(items.List))
	mux.Handle("POST /items", opt(items.Create))
	mux.Handle("GET /items/{id}", opt(items.Get))
	mux.Handle("PUT /items/{id}", opt(items.Update))
	mux.Handle("DELETE /items/{id}", opt(items.Delete))
	mux.Handle("POST /upload", opt(uploads.Upload))
	mux.Handle("GET /themes", opt(themes.List))
	mux.Handle("POST /themes", opt(themes.Create))

	// app-aware API family: auth required, schema-validated create
	req := func(h http.HandlerFunc) http.Handler { return mw.RequireAuth(h) }
	mux.Handle("GET /api/items", req(items.Search))
	mux.Handle("POST /api/items", req(items.CreateChecked))
	mux.Handle("GET /api/items/{id}", req(items.Get))
	mux.Handle("PATCH /api/items/{id}", req(items.Update))
	mux.Handle("DELETE /api/items/{id}", req(items.Delete))
	mux.Handle("POST /api/items/{id}/move", req(items.Move))
	mux.Handle("POST /api/items/{id}/tags", req(items.Tag))

	mux.Handle("GET /api/schemas", req(schemas.List))
	mux.Handle("GET /api/schemas/{app}", req(schemas.Get))
	mux.Handle("POST /api/convert/{app}", req(schemas.Convert))

	mux.Handle("POST /api/batch/create", req(batch.Create))
	mux.Handle("POST /api/batch/update", req(batch.Update))
	mux.Handle("POST /api/batch/move", req(batch.Move))
	mux.Handle("POST /api/batch/tag", req(batch.Tag))

	mux.Handle("GET /api/workspaces", req(ws.List))
	mux.Handle("POST /api/workspaces", req(ws.Create))
	mux.Handle("GET /api/workspaces/{id}/objects", req(ws.Objects))
	mux.Handle("GET /api/users/by-email", req(ws.UserByEmail))

	return mux
}

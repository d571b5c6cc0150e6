package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"worksuite/app/controllers"
	"worksuite/app/db"
	"worksuite/app/dto"
	jwtutil "worksuite/app/jwt"
	"worksuite/app/middleware"
	"worksuite/app/models"
	"worksuite/app/repo"
	"worksuite/app/services"
	"worksuite/app/socket"
	"worksuite/app/storage"
	"worksuite/config"
	"worksuite/global"
	"worksuite/router"

	"github.com/rs/zerolog"
)

func TestMain(m *testing.M) {
	global.Logger = zerolog.Nop()
	os.Exit(m.Run())
}

// newServer wires the full router over a temp database, the way the app
// itself is built.
func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	dir := t.TempDir()
	global.Config = &config.Config{DataPath: dir}

	gdb, err := db.Connect(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	if err := gdb.AutoMigrate(&models.User{}, &models.Item{}, &models.Tag{}, &models.ItemTag{}, &models.Theme{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	files, err := storage.New(filepath.Join(dir, "files"))
	if err != nil {
		t.Fatalf("init files: %v", err)
	}

	itemRepo := repo.NewItemRepository(gdb)
	tagRepo := repo.NewTagRepository(gdb)
	userRepo := repo.NewUserRepository(gdb)
	themeRepo := repo.NewThemeRepository(gdb)
	itemSvc := services.NewItemService(itemRepo, tagRepo, files, nil)
	batchSvc := services.NewBatchService(itemSvc)

	signer := &jwtutil.Signer{Secret: []byte("test-secret"), Issuer: "worksuite-test", ExpDays: 1}
	h := router.NewRouter(
		controllers.NewHealthController("test"),
		controllers.NewAuthController(services.NewUserService(userRepo), signer),
		controllers.NewItemController(itemSvc),
		controllers.NewUploadController(itemSvc, files),
		controllers.NewTagController(services.NewTagService(tagRepo)),
		controllers.NewThemeController(services.NewThemeService(themeRepo)),
		controllers.NewSchemaController(),
		controllers.NewBatchController(batchSvc),
		controllers.NewWorkspaceController(nil),
		controllers.NewSocketController(socket.NewHub(nil, "")),
		&middleware.Auth{Signer: signer},
	)

	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, method, url, token string, body any) (*http.Response, []byte) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, rd)
	if err != nil {
		t.Fatal(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	return resp, data
}

func register(t *testing.T, ts *httptest.Server) string {
	t.Helper()
	resp, body := doJSON(t, http.MethodPost, ts.URL+"/auth/register", "", map[string]string{
		"email": "u@test.dev", "password": "hunter22", "display_name": "U",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("register: %d %s", resp.StatusCode, body)
	}
	var out dto.AuthResponse
	if err := json.Unmarshal(body, &out); err != nil || out.Token == "" {
		t.Fatalf("register response: %v %s", err, body)
	}
	return out.Token
}

func TestHealth(t *testing.T) {
	ts := newServer(t)
	resp, body := doJSON(t, http.MethodGet, ts.URL+"/health", "", nil)
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), `"status":"ok"`) {
		t.Fatalf("health: %d %s", resp.StatusCode, body)
	}
}

func TestRegisterLoginAndProtectedRoute(t *testing.T) {
	ts := newServer(t)
	token := register(t, ts)

	// duplicate registration is rejected
	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/auth/register", "", map[string]string{
		"email": "u@test.dev", "password": "other", "display_name": "U2",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("duplicate register: %d", resp.StatusCode)
	}

	resp, body := doJSON(t, http.MethodPost, ts.URL+"/auth/login", "", map[string]string{
		"email": "u@test.dev", "password": "hunter22",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: %d %s", resp.StatusCode, body)
	}

	resp, _ = doJSON(t, http.MethodPost, ts.URL+"/auth/login", "", map[string]string{
		"email": "u@test.dev", "password": "wrong",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bad login: %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, http.MethodGet, ts.URL+"/api/items", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("protected route without token: %d", resp.StatusCode)
	}
	resp, _ = doJSON(t, http.MethodGet, ts.URL+"/api/items", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("protected route with token: %d", resp.StatusCode)
	}
}

func TestPlainCRUDWithoutAuth(t *testing.T) {
	ts := newServer(t)

	resp, body := doJSON(t, http.MethodPost, ts.URL+"/items", "", map[string]any{
		"name": "note one", "app": "note", "content": map[string]string{"text": "hi"}, "tags": []string{"inbox"},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create: %d %s", resp.StatusCode, body)
	}
	var created dto.ItemView
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatal(err)
	}
	if created.OwnerID != nil {
		t.Fatalf("anonymous create must not record an owner, got %v", *created.OwnerID)
	}

	resp, body = doJSON(t, http.MethodGet, ts.URL+"/items/"+created.ID, "", nil)
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), "note one") {
		t.Fatalf("get: %d %s", resp.StatusCode, body)
	}

	resp, _ = doJSON(t, http.MethodGet, ts.URL+"/items/unknown-id", "", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("get missing: %d", resp.StatusCode)
	}

	resp, body = doJSON(t, http.MethodPut, ts.URL+"/items/"+created.ID, "", map[string]any{"status": "done"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update: %d %s", resp.StatusCode, body)
	}

	resp, _ = doJSON(t, http.MethodDelete, ts.URL+"/items/"+created.ID, "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete: %d", resp.StatusCode)
	}
	// delete is idempotent
	resp, _ = doJSON(t, http.MethodDelete, ts.URL+"/items/"+created.ID, "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("repeat delete: %d", resp.StatusCode)
	}
}

func TestSchemaCheckedCreateAndSearch(t *testing.T) {
	ts := newServer(t)
	token := register(t, ts)

	resp, body := doJSON(t, http.MethodPost, ts.URL+"/api/items", token, map[string]any{"name": "incomplete"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("schema create without app: %d %s", resp.StatusCode, body)
	}

	resp, body = doJSON(t, http.MethodPost, ts.URL+"/api/items", token, map[string]any{
		"name": "roadmap", "app": "timeline",
		"content": map[string]any{"events": []any{}},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("schema create: %d %s", resp.StatusCode, body)
	}

	resp, body = doJSON(t, http.MethodGet, ts.URL+"/api/items?q=roadmap", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("search: %d %s", resp.StatusCode, body)
	}
	var found []dto.ItemView
	if err := json.Unmarshal(body, &found); err != nil || len(found) != 1 {
		t.Fatalf("search results: %v %s", err, body)
	}
	if found[0].OwnerID == nil {
		t.Fatal("authenticated create should record the owner")
	}
}

func TestBatchCreateEndpointReportsPartialFailure(t *testing.T) {
	ts := newServer(t)
	token := register(t, ts)

	resp, body := doJSON(t, http.MethodPost, ts.URL+"/api/batch/create", token, map[string]any{
		"items": []map[string]any{{"name": "a"}, {"name": ""}, {"name": "b"}},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("batch create: %d %s", resp.StatusCode, body)
	}
	var res dto.BatchResult
	if err := json.Unmarshal(body, &res); err != nil {
		t.Fatal(err)
	}
	if res.Count != 2 || len(res.Errors) != 1 || res.Errors[0].Index != 1 {
		t.Fatalf("batch result: %+v", res)
	}
}

func TestThemePresetsEndpoint(t *testing.T) {
	ts := newServer(t)

	resp, body := doJSON(t, http.MethodGet, ts.URL+"/themes/presets", "", nil)
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), `"fonts"`) {
		t.Fatalf("presets: %d %s", resp.StatusCode, body)
	}

	resp, body = doJSON(t, http.MethodGet, ts.URL+"/themes/presets?id=terminal", "", nil)
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), "--content-text") {
		t.Fatalf("preset by id: %d %s", resp.StatusCode, body)
	}

	resp, _ = doJSON(t, http.MethodGet, ts.URL+"/themes/presets?id=nope", "", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown preset: %d", resp.StatusCode)
	}
}

func TestConvertEndpoint(t *testing.T) {
	ts := newServer(t)
	token := register(t, ts)

	resp, body := doJSON(t, http.MethodPost, ts.URL+"/api/convert/deck", token, map[string]string{
		"markdown": "# One\n---\n# Two",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("convert: %d %s", resp.StatusCode, body)
	}
	var deck struct {
		Slides []json.RawMessage `json:"slides"`
	}
	if err := json.Unmarshal(body, &deck); err != nil || len(deck.Slides) != 2 {
		t.Fatalf("deck payload: %v %s", err, body)
	}

	resp, _ = doJSON(t, http.MethodPost, ts.URL+"/api/convert/metric", token, map[string]string{"markdown": "x"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("convert unsupported app: %d", resp.StatusCode)
	}
}

func TestUploadEndpoint(t *testing.T) {
	ts := newServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "report.txt")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write([]byte("contents")); err != nil {
		t.Fatal(err)
	}
	_ = mw.WriteField("scope", "us")
	_ = mw.WriteField("folder", "docs")
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/upload", &buf)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("upload: %d %s", resp.StatusCode, body)
	}
	var item dto.ItemView
	if err := json.Unmarshal(body, &item); err != nil {
		t.Fatal(err)
	}
	if item.FilePath == nil || !strings.HasPrefix(*item.FilePath, "us/docs/") {
		t.Fatalf("file path: %+v", item.FilePath)
	}
	if item.Type != "file" || item.Name != "report.txt" {
		t.Fatalf("upload item: %+v", item)
	}
}

func TestTagsEndpointAggregatesUsage(t *testing.T) {
	ts := newServer(t)

	for _, tags := range [][]string{{"alpha", "beta"}, {"alpha"}} {
		resp, body := doJSON(t, http.MethodPost, ts.URL+"/items", "", map[string]any{"name": "n", "tags": tags})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("create: %d %s", resp.StatusCode, body)
		}
	}

	resp, body := doJSON(t, http.MethodGet, ts.URL+"/tags", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("tags: %d %s", resp.StatusCode, body)
	}
	var usage []struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	if err := json.Unmarshal(body, &usage); err != nil {
		t.Fatal(err)
	}
	if len(usage) != 2 || usage[0].Name != "alpha" || usage[0].Count != 2 {
		t.Fatalf("usage: %+v", usage)
	}
}

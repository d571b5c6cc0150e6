package workspace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
	"worksuite/app/errs"
)

// Client talks to the external workspace/object directory over JSON HTTP.
// Every call is time-bounded; callers treat failures as "linkage absent"
// and never let them fail the enclosing item operation.
type Client struct {
	base string
	http *http.Client
}

// New returns nil when no base URL is configured; a nil client reports
// every call as unavailable.
func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		return nil
	}
	return &Client{base: baseURL, http: &http.Client{Timeout: timeout}}
}

// Object is a mirrored item in the external directory.
type Object struct {
	ID          string `json:"id"`
	WorkspaceID string `json:"workspace_id"`
	ItemID      string `json:"item_id"`
	Name        string `json:"name"`
	App         string `json:"app"`
	Scope       string `json:"scope"`
}

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type Workspace struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	OwnerID string `json:"owner_id"`
}

// Register mirrors an item into a workspace and returns the external object id.
func (c *Client) Register(ctx context.Context, workspaceID string, obj Object) (string, error) {
	var out Object
	path := fmt.Sprintf("/workspaces/%s/objects", url.PathEscape(workspaceID))
	if err := c.do(ctx, http.MethodPost, path, obj, &out); err != nil {
		return "", err
	}
	if out.ID == "" {
		return "", fmt.Errorf("%w: register returned no id", errs.ErrExternal)
	}
	return out.ID, nil
}

// Update pushes the item's current state to its mirrored object.
func (c *Client) Update(ctx context.Context, objectID string, obj Object) error {
	path := fmt.Sprintf("/objects/%s", url.PathEscape(objectID))
	return c.do(ctx, http.MethodPut, path, obj, nil)
}

// Delete removes the mirrored object.
func (c *Client) Delete(ctx context.Context, objectID string) error {
	path := fmt.Sprintf("/objects/%s", url.PathEscape(objectID))
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// ListByWorkspace fetches all mirrored objects in a workspace.
func (c *Client) ListByWorkspace(ctx context.Context, workspaceID string) ([]Object, error) {
	var out []Object
	path := fmt.Sprintf("/workspaces/%s/objects", url.PathEscape(workspaceID))
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UserByEmail looks up a directory user.
func (c *Client) UserByEmail(ctx context.Context, email string) (*User, error) {
	var out User
	path := "/users/by-email?email=" + url.QueryEscape(email)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateWorkspace creates a workspace owned by the given user.
func (c *Client) CreateWorkspace(ctx context.Context, name, ownerID string) (*Workspace, error) {
	var out Workspace
	in := Workspace{Name: name, OwnerID: ownerID}
	if err := c.do(ctx, http.MethodPost, "/workspaces", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListWorkspaces lists workspaces visible to the given user.
func (c *Client) ListWorkspaces(ctx context.Context, userID string) ([]Workspace, error) {
	var out []Workspace
	path := "/workspaces?user_id=" + url.QueryEscape(userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	if c == nil {
		return fmt.Errorf("%w: no workspace service configured", errs.ErrExternal)
	}
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%w: encode request: %v", errs.ErrExternal, err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrExternal, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrExternal, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s %s: status %d", errs.ErrExternal, method, path, resp.StatusCode)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: decode response: %v", errs.ErrExternal, err)
		}
	}
	return nil
}

package dto

import (
	"encoding/json"
	"time"
)

type TagView struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Color *string `json:"color"`
}

// ItemView is the API shape of an item: the stored row with its resolved tag
// set and its content parsed back out of serialized form.
type ItemView struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	App         string          `json:"app"`
	Scope       string          `json:"scope"`
	Folder      *string         `json:"folder"`
	Status      string          `json:"status"`
	Content     json.RawMessage `json:"content"`
	FilePath    *string         `json:"file_path,omitempty"`
	OwnerID     *string         `json:"owner_id"`
	WorkspaceID *string         `json:"workspace_id"`
	ObjectID    *string         `json:"service0_object_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Tags        []TagView       `json:"tags"`
}

type CreateItemRequest struct {
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	App         string          `json:"app"`
	Scope       string          `json:"scope"`
	Folder      *string         `json:"folder"`
	Status      string          `json:"status"`
	Content     json.RawMessage `json:"content"`
	Tags        []string        `json:"tags"`
	WorkspaceID *string         `json:"workspace_id"`
}

// UpdateItemRequest carries partial updates: a nil field means "leave
// unchanged". workspace_id additionally distinguishes an explicit null
// (clear the field) from absence, tracked through custom unmarshalling.
type UpdateItemRequest struct {
	Name        *string         `json:"name"`
	Scope       *string         `json:"scope"`
	Folder      *string         `json:"folder"`
	Status      *string         `json:"status"`
	Content     json.RawMessage `json:"content"`
	Tags        *[]string       `json:"tags"`
	WorkspaceID *string         `json:"workspace_id"`

	workspaceIDSet bool
}

func (r *UpdateItemRequest) UnmarshalJSON(b []byte) error {
	type plain UpdateItemRequest
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*r = UpdateItemRequest(p)
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(b, &keys); err != nil {
		return err
	}
	_, r.workspaceIDSet = keys["workspace_id"]
	return nil
}

// WorkspaceIDProvided reports whether workspace_id appeared in the request
// body, even as an explicit null.
func (r *UpdateItemRequest) WorkspaceIDProvided() bool { return r.workspaceIDSet }

// MoveItemRequest is the placement-only update: folder, scope, status.
type MoveItemRequest struct {
	Folder *string `json:"folder"`
	Scope  *string `json:"scope"`
	Status *string `json:"status"`
}

type TagItemRequest struct {
	Tags []string `json:"tags"`
	// Mode is add (default), remove, or replace.
	Mode string `json:"mode"`
}

type ConvertRequest struct {
	Markdown string `json:"markdown"`
}

package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"worksuite/app/dto"
	"worksuite/app/errs"
	"worksuite/app/models"
	"worksuite/app/repo"
	"worksuite/app/schemas"
	"worksuite/app/storage"
	"worksuite/app/workspace"
	"worksuite/global"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemService owns the item lifecycle: filtered listing, search, create,
// partial update, move, tagging, delete. Workspace-scoped mutations trigger
// best-effort external object linkage; linkage failures are logged and never
// fail the local write.
type ItemService struct {
	items *repo.ItemRepository
	tags  *repo.TagRepository
	files *storage.Files
	ws    *workspace.Client
}

func NewItemService(items *repo.ItemRepository, tags *repo.TagRepository, files *storage.Files, ws *workspace.Client) *ItemService {
	return &ItemService{items: items, tags: tags, files: files, ws: ws}
}

// List applies the shared filter vocabulary. The tag filter is resolved
// after the row query, against each item's attached tag names and ids.
// Ordering is always updated_at descending.
func (s *ItemService) List(f repo.ItemFilter, tag string) ([]*dto.ItemView, error) {
	items, err := s.items.List(f)
	if err != nil {
		return nil, err
	}
	views := make([]*dto.ItemView, 0, len(items))
	for i := range items {
		v, err := s.view(&items[i])
		if err != nil {
			return nil, err
		}
		if tag != "" && !hasTag(v, tag) {
			continue
		}
		views = append(views, v)
	}
	return views, nil
}

// Search is List with a mandatory free-text query over name and serialized
// content. Matching is case-insensitive for ASCII (SQLite LIKE).
func (s *ItemService) Search(q string, f repo.ItemFilter, tag string) ([]*dto.ItemView, error) {
	if strings.TrimSpace(q) == "" {
		return nil, errs.Validation("q", "required")
	}
	f.Query = q
	return s.List(f, tag)
}

func (s *ItemService) Get(id string) (*dto.ItemView, error) {
	item, err := s.items.FindByID(id)
	if err != nil {
		return nil, err
	}
	return s.view(item)
}

// Create inserts a new item and links its tags inside one transaction. When
// enforceSchema is set (the app-aware API path), app and content are
// required and the app's required content fields are checked. A supplied
// workspace id triggers external registration after the local write; a
// failed registration leaves the linkage reference null.
func (s *ItemService) Create(ctx context.Context, req dto.CreateItemRequest, ownerID *string, enforceSchema bool) (*dto.ItemView, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, errs.Validation("name", "required")
	}
	if enforceSchema {
		if req.App == "" {
			return nil, errs.Validation("app", "required")
		}
		if len(req.Content) == 0 {
			return nil, errs.Validation("content", "required")
		}
		var payload map[string]any
		if err := json.Unmarshal(req.Content, &payload); err != nil {
			return nil, errs.Validation("content", "must be a JSON object")
		}
		if err := schemas.Validate(req.App, payload); err != nil {
			return nil, err
		}
	}
	scope := req.Scope
	if scope == "" {
		scope = "me"
	}
	if !models.ValidScope(scope) {
		return nil, errs.Validation("scope", "must be one of me, us, we, there")
	}
	status := req.Status
	if status == "" {
		status = "backlog"
	}
	if !models.ValidStatus(status) {
		return nil, errs.Validation("status", "invalid status")
	}
	typ := req.Type
	if typ == "" {
		typ = "file"
	}
	content := ""
	if len(req.Content) > 0 {
		if !json.Valid(req.Content) {
			return nil, errs.Validation("content", "invalid JSON")
		}
		content = string(req.Content)
	}

	item := &models.Item{
		ID: uuid.NewString(), Name: req.Name, Type: typ, App: req.App,
		Scope: scope, Folder: req.Folder, Status: status, Content: content,
		OwnerID: ownerID, WorkspaceID: req.WorkspaceID,
	}
	err := s.items.DB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(item).Error; err != nil {
			return fmt.Errorf("create item: %w", err)
		}
		return s.linkNames(tx, item.ID, req.Tags)
	})
	if err != nil {
		return nil, err
	}

	if req.WorkspaceID != nil && ownerID != nil {
		s.register(ctx, item)
	}
	return s.Get(item.ID)
}

// Update applies a partial update: nil fields keep their stored values, and
// a supplied tag list fully replaces the item's tag set inside the same
// transaction. An explicit workspace_id null clears the reference.
func (s *ItemService) Update(ctx context.Context, id string, req dto.UpdateItemRequest) (*dto.ItemView, error) {
	item, err := s.items.FindByID(id)
	if err != nil {
		return nil, err
	}
	cols := map[string]any{}
	if req.Name != nil {
		cols["name"] = *req.Name
	}
	if req.Scope != nil {
		if !models.ValidScope(*req.Scope) {
			return nil, errs.Validation("scope", "must be one of me, us, we, there")
		}
		cols["scope"] = *req.Scope
	}
	if req.Folder != nil {
		cols["folder"] = *req.Folder
	}
	if req.Status != nil {
		if !models.ValidStatus(*req.Status) {
			return nil, errs.Validation("status", "invalid status")
		}
		cols["status"] = *req.Status
	}
	if len(req.Content) > 0 {
		if !json.Valid(req.Content) {
			return nil, errs.Validation("content", "invalid JSON")
		}
		cols["content"] = string(req.Content)
	}
	if req.WorkspaceIDProvided() {
		cols["workspace_id"] = req.WorkspaceID
	}
	// explicit so updated_at advances even when only tags change
	cols["updated_at"] = time.Now()
	err = s.items.DB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Item{}).Where("id = ?", id).Updates(cols).Error; err != nil {
			return fmt.Errorf("update item: %w", err)
		}
		if req.Tags != nil {
			if err := s.tags.ClearForItem(tx, id); err != nil {
				return err
			}
			if err := s.linkNames(tx, id, *req.Tags); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if item.ObjectID != nil {
		s.pushUpdate(ctx, id, *item.ObjectID)
	}
	return s.Get(id)
}

// Move is the placement-only update: folder, scope, status.
func (s *ItemService) Move(id string, req dto.MoveItemRequest) (*dto.ItemView, error) {
	if _, err := s.items.FindByID(id); err != nil {
		return nil, err
	}
	cols := map[string]any{}
	if req.Folder != nil {
		cols["folder"] = *req.Folder
	}
	if req.Scope != nil {
		if !models.ValidScope(*req.Scope) {
			return nil, errs.Validation("scope", "must be one of me, us, we, there")
		}
		cols["scope"] = *req.Scope
	}
	if req.Status != nil {
		if !models.ValidStatus(*req.Status) {
			return nil, errs.Validation("status", "invalid status")
		}
		cols["status"] = *req.Status
	}
	cols["updated_at"] = time.Now()
	if err := s.items.UpdateColumns(id, cols); err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Tag adjusts an item's tag set. Mode add links new names idempotently,
// remove unlinks them, replace swaps the whole set.
func (s *ItemService) Tag(id string, req dto.TagItemRequest) (*dto.ItemView, error) {
	if _, err := s.items.FindByID(id); err != nil {
		return nil, err
	}
	mode := req.Mode
	if mode == "" {
		mode = "add"
	}
	err := s.items.DB().Transaction(func(tx *gorm.DB) error {
		switch mode {
		case "add":
			if err := s.linkNames(tx, id, req.Tags); err != nil {
				return err
			}
		case "replace":
			if err := s.tags.ClearForItem(tx, id); err != nil {
				return err
			}
			if err := s.linkNames(tx, id, req.Tags); err != nil {
				return err
			}
		case "remove":
			for _, name := range req.Tags {
				tag, err := s.tags.FindByName(tx, name)
				if err != nil || tag == nil {
					continue
				}
				if err := s.tags.Unlink(tx, id, tag.ID); err != nil {
					return err
				}
			}
		default:
			return errs.Validation("mode", "must be add, remove or replace")
		}
		// tag-only changes still count as a touch, committed with them
		return tx.Model(&models.Item{}).Where("id = ?", id).
			Update("updated_at", time.Now()).Error
	})
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete removes the row, its tag links, its backing file and its mirrored
// external object. Deleting an absent id succeeds; file and linkage removal
// are best-effort.
func (s *ItemService) Delete(ctx context.Context, id string) error {
	item, err := s.items.FindByID(id)
	if err != nil {
		// idempotent delete: only a missing id is success
		if errors.Is(err, errs.ErrNotFound) {
			return nil
		}
		return err
	}
	if err := s.items.Delete(id); err != nil {
		return err
	}
	if item.FilePath != nil {
		if err := s.files.Remove(*item.FilePath); err != nil {
			global.Logger.Warn().Err(err).Str("item", id).Msg("delete backing file")
		}
	}
	if item.ObjectID != nil {
		if err := s.ws.Delete(ctx, *item.ObjectID); err != nil {
			global.Logger.Warn().Err(err).Str("item", id).Msg("delete linked object")
		}
	}
	return nil
}

// CreateUpload records an uploaded file as an item with its relative path
// under the files root.
func (s *ItemService) CreateUpload(name, app, scope string, folder *string, relPath string) (*dto.ItemView, error) {
	if !models.ValidScope(scope) {
		scope = "me"
	}
	item := &models.Item{
		ID: uuid.NewString(), Name: name, Type: "file", App: app,
		Scope: scope, Folder: folder, Status: "backlog", FilePath: &relPath,
	}
	if err := s.items.Create(item); err != nil {
		return nil, err
	}
	return s.Get(item.ID)
}

// linkNames upserts each tag name and links it to the item. When the lookup
// after the upsert race comes back empty the name is skipped rather than
// failing the whole write.
func (s *ItemService) linkNames(tx *gorm.DB, itemID string, names []string) error {
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		tag, err := s.tags.UpsertByName(tx, name)
		if err != nil || tag == nil {
			global.Logger.Warn().Str("tag", name).Str("item", itemID).Msg("tag upsert returned nothing, skipping link")
			continue
		}
		if err := s.tags.Link(tx, itemID, tag.ID); err != nil {
			return err
		}
	}
	return nil
}

func (s *ItemService) register(ctx context.Context, item *models.Item) {
	obj := workspace.Object{
		WorkspaceID: *item.WorkspaceID, ItemID: item.ID,
		Name: item.Name, App: item.App, Scope: item.Scope,
	}
	externalID, err := s.ws.Register(ctx, *item.WorkspaceID, obj)
	if err != nil {
		global.Logger.Warn().Err(err).Str("item", item.ID).Msg("register linked object")
		return
	}
	if err := s.items.UpdateColumns(item.ID, map[string]any{"service0_object_id": externalID}); err != nil {
		global.Logger.Warn().Err(err).Str("item", item.ID).Msg("persist linked object id")
	}
}

func (s *ItemService) pushUpdate(ctx context.Context, id, objectID string) {
	item, err := s.items.FindByID(id)
	if err != nil {
		return
	}
	obj := workspace.Object{ItemID: item.ID, Name: item.Name, App: item.App, Scope: item.Scope}
	if item.WorkspaceID != nil {
		obj.WorkspaceID = *item.WorkspaceID
	}
	if err := s.ws.Update(ctx, objectID, obj); err != nil {
		global.Logger.Warn().Err(err).Str("item", id).Msg("update linked object")
	}
}

// view materializes an item with its resolved tags and parsed content. A
// corrupted stored payload is surfaced, never swallowed.
func (s *ItemService) view(item *models.Item) (*dto.ItemView, error) {
	content := json.RawMessage("null")
	if item.Content != "" {
		if !json.Valid([]byte(item.Content)) {
			return nil, fmt.Errorf("item %s: stored content is corrupted", item.ID)
		}
		content = json.RawMessage(item.Content)
	}
	tags, err := s.tags.ListForItem(item.ID)
	if err != nil {
		return nil, err
	}
	tagViews := make([]dto.TagView, 0, len(tags))
	for _, t := range tags {
		tagViews = append(tagViews, dto.TagView{ID: t.ID, Name: t.Name, Color: t.Color})
	}
	return &dto.ItemView{
		ID: item.ID, Name: item.Name, Type: item.Type, App: item.App,
		Scope: item.Scope, Folder: item.Folder, Status: item.Status,
		Content: content, FilePath: item.FilePath, OwnerID: item.OwnerID,
		WorkspaceID: item.WorkspaceID, ObjectID: item.ObjectID,
		CreatedAt: item.CreatedAt, UpdatedAt: item.UpdatedAt, Tags: tagViews,
	}, nil
}

func hasTag(v *dto.ItemView, tag string) bool {
	for _, t := range v.Tags {
		if t.Name == tag || t.ID == tag {
			return true
		}
	}
	return false
}

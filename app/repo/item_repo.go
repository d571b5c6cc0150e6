package repo

import (
	"errors"
	"fmt"
	"worksuite/app/errs"
	"worksuite/app/models"

	"gorm.io/gorm"
)

type ItemRepository struct{ db *gorm.DB }

func NewItemRepository(db *gorm.DB) *ItemRepository { return &ItemRepository{db: db} }

// ItemFilter is the shared filter vocabulary of the listing operations.
// Present fields are ANDed as exact-match predicates; Query matches
// substrings of name or serialized content (SQLite LIKE, case-insensitive
// for ASCII). Tag is resolved after the row query by the service layer.
type ItemFilter struct {
	Scope       string
	Folder      string
	Status      string
	App         string
	WorkspaceID string
	Query       string
	Limit       int
	Offset      int
}

func (r *ItemRepository) List(f ItemFilter) ([]models.Item, error) {
	q := r.db.Model(&models.Item{})
	if f.Scope != "" {
		q = q.Where("scope = ?", f.Scope)
	}
	if f.Folder != "" {
		q = q.Where("folder = ?", f.Folder)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.App != "" {
		q = q.Where("app = ?", f.App)
	}
	if f.WorkspaceID != "" {
		q = q.Where("workspace_id = ?", f.WorkspaceID)
	}
	if f.Query != "" {
		like := "%" + f.Query + "%"
		q = q.Where("name LIKE ? OR content LIKE ?", like, like)
	}
	limit := f.Limit
	if limit <= 0 {
		limit = 100
	}
	var items []models.Item
	err := q.Order("updated_at DESC").Limit(limit).Offset(f.Offset).Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

func (r *ItemRepository) FindByID(id string) (*models.Item, error) {
	var item models.Item
	if err := r.db.Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("item %s: %w", id, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("find item: %w", err)
	}
	return &item, nil
}

func (r *ItemRepository) Create(item *models.Item) error {
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

// UpdateColumns applies a partial update and refreshes updated_at. Absent
// columns keep their stored values.
func (r *ItemRepository) UpdateColumns(id string, cols map[string]any) error {
	res := r.db.Model(&models.Item{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return fmt.Errorf("update item: %w", res.Error)
	}
	return nil
}

// Delete removes the item row and its tag links. Deleting an absent id is a
// no-op success.
func (r *ItemRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("item_id = ?", id).Delete(&models.ItemTag{}).Error; err != nil {
			return fmt.Errorf("delete tag links: %w", err)
		}
		if err := tx.Where("id = ?", id).Delete(&models.Item{}).Error; err != nil {
			return fmt.Errorf("delete item: %w", err)
		}
		return nil
	})
}

// DB exposes the handle for cross-repo transactions in the service layer.
func (r *ItemRepository) DB() *gorm.DB { return r.db }

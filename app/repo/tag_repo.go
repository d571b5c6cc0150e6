package repo

import (
	"errors"
	"fmt"
	"worksuite/app/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TagRepository struct{ db *gorm.DB }

func NewTagRepository(db *gorm.DB) *TagRepository { return &TagRepository{db: db} }

// TagUsage is a tag with the number of items linked to it.
type TagUsage struct {
	models.Tag
	Count int `json:"count"`
}

// UpsertByName creates the tag only when the name is new and returns the
// stored id either way.
func (r *TagRepository) UpsertByName(tx *gorm.DB, name string) (*models.Tag, error) {
	if tx == nil {
		tx = r.db
	}
	tag := models.Tag{ID: uuid.NewString(), Name: name}
	if err := tx.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).Create(&tag).Error; err != nil {
		return nil, fmt.Errorf("upsert tag: %w", err)
	}
	var stored models.Tag
	if err := tx.Where("name = ?", name).First(&stored).Error; err != nil {
		return nil, fmt.Errorf("lookup tag after upsert: %w", err)
	}
	return &stored, nil
}

// FindByName looks a tag up without creating it; returns nil when absent.
func (r *TagRepository) FindByName(tx *gorm.DB, name string) (*models.Tag, error) {
	if tx == nil {
		tx = r.db
	}
	var tag models.Tag
	err := tx.Where("name = ?", name).First(&tag).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find tag: %w", err)
	}
	return &tag, nil
}

// Link associates a tag with an item; a duplicate link is a no-op.
func (r *TagRepository) Link(tx *gorm.DB, itemID, tagID string) error {
	if tx == nil {
		tx = r.db
	}
	link := models.ItemTag{ItemID: itemID, TagID: tagID}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
		return fmt.Errorf("link tag: %w", err)
	}
	return nil
}

// Unlink removes one association if present.
func (r *TagRepository) Unlink(tx *gorm.DB, itemID, tagID string) error {
	if tx == nil {
		tx = r.db
	}
	if err := tx.Where("item_id = ? AND tag_id = ?", itemID, tagID).Delete(&models.ItemTag{}).Error; err != nil {
		return fmt.Errorf("unlink tag: %w", err)
	}
	return nil
}

// ClearForItem removes every link of an item.
func (r *TagRepository) ClearForItem(tx *gorm.DB, itemID string) error {
	if tx == nil {
		tx = r.db
	}
	if err := tx.Where("item_id = ?", itemID).Delete(&models.ItemTag{}).Error; err != nil {
		return fmt.Errorf("clear tag links: %w", err)
	}
	return nil
}

// ListForItem returns an item's tags in junction insertion order.
func (r *TagRepository) ListForItem(itemID string) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Raw(
		"SELECT t.* FROM tags t JOIN item_tags it ON it.tag_id = t.id WHERE it.item_id = ? ORDER BY it.rowid",
		itemID,
	).Scan(&tags).Error
	if err != nil {
		return nil, fmt.Errorf("list item tags: %w", err)
	}
	return tags, nil
}

// ListAll returns every tag ordered by name.
func (r *TagRepository) ListAll() ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.Order("name").Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

// ListWithUsage returns tags with linked-item counts, most used first, name
// as the tiebreak.
func (r *TagRepository) ListWithUsage() ([]TagUsage, error) {
	var out []TagUsage
	err := r.db.Raw(
		"SELECT t.*, COUNT(it.item_id) AS count FROM tags t LEFT JOIN item_tags it ON it.tag_id = t.id GROUP BY t.id ORDER BY count DESC, t.name",
	).Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list tag usage: %w", err)
	}
	return out, nil
}

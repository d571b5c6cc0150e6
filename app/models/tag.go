package models

// Tag is a named label, globally unique by name. Creation is idempotent on
// name collision.
type Tag struct {
	ID    string  `gorm:"primaryKey;size:36" json:"id"`
	Name  string  `gorm:"uniqueIndex;size:191;not null" json:"name"`
	Color *string `gorm:"size:32" json:"color"`
}

// ItemTag is the item/tag junction. It has no identity beyond its two
// parents; rowid order preserves insertion order for per-item tag listing.
type ItemTag struct {
	ItemID string `gorm:"primaryKey;size:36"`
	TagID  string `gorm:"primaryKey;size:36"`
}

func (ItemTag) TableName() string { return "item_tags" }

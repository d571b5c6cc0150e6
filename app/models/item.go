package models

import "time"

// Item is the unit of content shared by every editor app. Content is stored
// as its serialized JSON payload; the shape is per-app and not enforced at
// the storage layer.
type Item struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Type        string    `gorm:"size:64;not null;default:file" json:"type"`
	App         string    `gorm:"size:64;index" json:"app"`
	Scope       string    `gorm:"size:16;default:me;index" json:"scope"`
	Folder      *string   `gorm:"size:255" json:"folder"`
	Status      string    `gorm:"size:32;default:backlog;index" json:"status"`
	Content     string    `json:"-"`
	FilePath    *string   `gorm:"size:512" json:"file_path,omitempty"`
	OwnerID     *string   `gorm:"size:36;index" json:"owner_id"`
	WorkspaceID *string   `gorm:"size:36;index" json:"workspace_id"`
	ObjectID    *string   `gorm:"column:service0_object_id;size:64" json:"service0_object_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `gorm:"index" json:"updated_at"`
}

// Scopes are the four visibility buckets; they double as the top-level
// directories of flat-file storage.
var Scopes = []string{"me", "us", "we", "there"}

// Statuses are the allowed item statuses.
var Statuses = []string{"backlog", "in-progress", "done", "closed"}

func ValidScope(s string) bool {
	for _, v := range Scopes {
		if v == s {
			return true
		}
	}
	return false
}

func ValidStatus(s string) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"worksuite/app/models"
)

// Files is flat-file storage for uploaded items. Uploaded paths are stored
// relative to Root, scoped under {scope}/{folder}/{filename}.
type Files struct{ Root string }

// New creates the storage root and the four scope subdirectories.
func New(root string) (*Files, error) {
	for _, scope := range models.Scopes {
		if err := os.MkdirAll(filepath.Join(root, scope), 0o755); err != nil {
			return nil, fmt.Errorf("create scope dir %s: %w", scope, err)
		}
	}
	return &Files{Root: root}, nil
}

// Save writes the upload under {scope}/{folder}/ with a timestamp-prefixed
// name and returns the path relative to Root.
func (f *Files) Save(scope, folder, filename string, r io.Reader) (string, error) {
	if !models.ValidScope(scope) {
		scope = "me"
	}
	folder = clean(folder)
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), clean(filename))
	rel := filepath.Join(scope, folder, name)

	dst := filepath.Join(f.Root, rel)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("create folder: %w", err)
	}
	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer out.Close()
	if _, err := io.Copy(out, r); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return rel, nil
}

// Remove deletes the backing file for a stored relative path. A missing file
// is not an error.
func (f *Files) Remove(rel string) error {
	if rel == "" {
		return nil
	}
	full := filepath.Join(f.Root, filepath.Clean("/"+rel))
	err := os.Remove(full)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}

// clean strips path separators and parent references from user-supplied
// folder and file names.
func clean(s string) string {
	s = strings.ReplaceAll(s, "\\", "/")
	parts := strings.Split(s, "/")
	kept := parts[:0]
	for _, p := range parts {
		if p == "" || p == "." || p == ".." {
			continue
		}
		kept = append(kept, p)
	}
	return filepath.Join(kept...)
}

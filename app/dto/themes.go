package dto

import "encoding/json"

type CreateThemeRequest struct {
	Name     string          `json:"name"`
	Data     json.RawMessage `json:"data"`
	IsPublic bool            `json:"is_public"`
}

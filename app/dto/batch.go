package dto

import "encoding/json"

// Batch requests apply one kind of mutation to many items with independent
// per-element success or failure; one bad element never aborts its siblings.

type BatchCreateRequest struct {
	Items []CreateItemRequest `json:"items"`
}

type BatchUpdateEntry struct {
	ID string `json:"id"`
	UpdateItemRequest
}

// UnmarshalJSON keeps the embedded patch's custom decoding from shadowing
// the id field.
func (e *BatchUpdateEntry) UnmarshalJSON(b []byte) error {
	if err := json.Unmarshal(b, &e.UpdateItemRequest); err != nil {
		return err
	}
	var probe struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(b, &probe); err != nil {
		return err
	}
	e.ID = probe.ID
	return nil
}

type BatchUpdateRequest struct {
	Items []BatchUpdateEntry `json:"items"`
}

type BatchMoveEntry struct {
	ID string `json:"id"`
	MoveItemRequest
}

type BatchMoveRequest struct {
	Items []BatchMoveEntry `json:"items"`
}

type BatchTagEntry struct {
	ID string `json:"id"`
	TagItemRequest
}

type BatchTagRequest struct {
	Items []BatchTagEntry `json:"items"`
}

type BatchError struct {
	Index int    `json:"index"`
	ID    string `json:"id,omitempty"`
	Error string `json:"error"`
}

type BatchResult struct {
	Count  int          `json:"count"`
	Items  []*ItemView  `json:"items"`
	Errors []BatchError `json:"errors"`
}

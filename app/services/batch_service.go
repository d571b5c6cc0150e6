package services

import (
	"context"
	"worksuite/app/dto"
)

// BatchService applies one kind of item mutation across a list, recording
// per-element failures by index without aborting or rolling back siblings.
// There are deliberately no all-or-nothing semantics here.
type BatchService struct{ items *ItemService }

func NewBatchService(items *ItemService) *BatchService { return &BatchService{items: items} }

func (s *BatchService) Create(ctx context.Context, req dto.BatchCreateRequest, ownerID *string) dto.BatchResult {
	res := dto.BatchResult{Items: []*dto.ItemView{}, Errors: []dto.BatchError{}}
	for i, in := range req.Items {
		v, err := s.items.Create(ctx, in, ownerID, false)
		if err != nil {
			res.Errors = append(res.Errors, dto.BatchError{Index: i, Error: err.Error()})
			continue
		}
		res.Items = append(res.Items, v)
	}
	res.Count = len(res.Items)
	return res
}

func (s *BatchService) Update(ctx context.Context, req dto.BatchUpdateRequest) dto.BatchResult {
	res := dto.BatchResult{Items: []*dto.ItemView{}, Errors: []dto.BatchError{}}
	for i, in := range req.Items {
		v, err := s.items.Update(ctx, in.ID, in.UpdateItemRequest)
		if err != nil {
			res.Errors = append(res.Errors, dto.BatchError{Index: i, ID: in.ID, Error: err.Error()})
			continue
		}
		res.Items = append(res.Items, v)
	}
	res.Count = len(res.Items)
	return res
}

func (s *BatchService) Move(req dto.BatchMoveRequest) dto.BatchResult {
	res := dto.BatchResult{Items: []*dto.ItemView{}, Errors: []dto.BatchError{}}
	for i, in := range req.Items {
		v, err := s.items.Move(in.ID, in.MoveItemRequest)
		if err != nil {
			res.Errors = append(res.Errors, dto.BatchError{Index: i, ID: in.ID, Error: err.Error()})
			continue
		}
		res.Items = append(res.Items, v)
	}
	res.Count = len(res.Items)
	return res
}

func (s *BatchService) Tag(req dto.BatchTagRequest) dto.BatchResult {
	res := dto.BatchResult{Items: []*dto.ItemView{}, Errors: []dto.BatchError{}}
	for i, in := range req.Items {
		v, err := s.items.Tag(in.ID, in.TagItemRequest)
		if err != nil {
			res.Errors = append(res.Errors, dto.BatchError{Index: i, ID: in.ID, Error: err.Error()})
			continue
		}
		res.Items = append(res.Items, v)
	}
	res.Count = len(res.Items)
	return res
}

package services

import (
	"worksuite/app/models"
	"worksuite/app/repo"
)

type TagService struct{ tags *repo.TagRepository }

func NewTagService(tags *repo.TagRepository) *TagService { return &TagService{tags: tags} }

func (s *TagService) ListAll() ([]models.Tag, error) { return s.tags.ListAll() }

func (s *TagService) ListWithUsage() ([]repo.TagUsage, error) { return s.tags.ListWithUsage() }

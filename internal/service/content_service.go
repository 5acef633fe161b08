package service

import (
	"assessment-assistant-be/internal/dto"
	"assessment-assistant-be/internal/entity"
	"assessment-assistant-be/internal/pkg/serverutils"
	"assessment-assistant-be/pkg/content"
)

type IContentService interface {
	List() *dto.ContentListResponse
	Search(query string) *dto.ContentListResponse
	Get(slug string) (*entity.Article, error)
}

type contentService struct {
	index *content.Index
}

func NewContentService(index *content.Index) IContentService {
	return &contentService{
		index: index,
	}
}

func (s *contentService) List() *dto.ContentListResponse {
	return &dto.ContentListResponse{Articles: s.index.Articles()}
}

func (s *contentService) Search(query string) *dto.ContentListResponse {
	return &dto.ContentListResponse{Articles: s.index.Search(query)}
}

func (s *contentService) Get(slug string) (*entity.Article, error) {
	article := s.index.Get(slug)
	if article == nil {
		return nil, serverutils.NewNotFoundError("article not found")
	}
	return article, nil
}

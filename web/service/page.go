package service

import (
	"github.com/fengshuifortune/shop/database"
	"github.com/fengshuifortune/shop/database/model"

	"gorm.io/gorm"
)

// PageService handles the flat content pages addressed by slug.
type PageService struct {
	db *gorm.DB
}

func NewPageService(db *gorm.DB) *PageService {
	return &PageService{db: db}
}

func (s *PageService) AllPages() ([]model.Page, error) {
	pages := make([]model.Page, 0)
	err := s.db.Model(model.Page{}).
		Order("id desc").
		Find(&pages).
		Error
	return pages, err
}

func (s *PageService) PageBySlug(slug string) (*model.Page, error) {
	page := &model.Page{}
	err := s.db.Model(model.Page{}).
		Where("slug = ?", slug).
		First(page).
		Error
	if database.IsNotFound(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return page, nil
}

func (s *PageService) CreatePage(slug, title, body string) error {
	if slug == "" || title == "" {
		return newValidationError("Slug and title required")
	}
	page := &model.Page{
		Slug:  slug,
		Title: title,
		Body:  body,
	}
	if err := s.db.Create(page).Error; err != nil {
		if database.IsDuplicate(err) {
			return newValidationError("A page with that slug already exists")
		}
		return err
	}
	return nil
}

func (s *PageService) UpdatePage(id int, slug, title, body string) error {
	if slug == "" || title == "" {
		return newValidationError("Slug and title required")
	}
	result := s.db.Model(model.Page{}).
		Where("id = ?", id).
		Updates(map[string]any{"slug": slug, "title": title, "body": body})
	if database.IsDuplicate(result.Error) {
		return newValidationError("A page with that slug already exists")
	}
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PageService) DeletePage(id int) error {
	result := s.db.Delete(&model.Page{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

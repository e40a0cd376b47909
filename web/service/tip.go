package service

import (
	"github.com/fengshuifortune/shop/database"
	"github.com/fengshuifortune/shop/database/model"

	"gorm.io/gorm"
)

// TipService handles the daily feng-shui tips. Each calendar date carries at
// most one tip.
type TipService struct {
	db *gorm.DB
}

func NewTipService(db *gorm.DB) *TipService {
	return &TipService{db: db}
}

// AllTips lists tips newest date first.
func (s *TipService) AllTips() ([]model.Tip, error) {
	tips := make([]model.Tip, 0)
	err := s.db.Model(model.Tip{}).
		Order("date desc").
		Find(&tips).
		Error
	return tips, err
}

// TipForDate returns the tip for a calendar date, or nil when the date has
// none. The home page tolerates a missing tip.
func (s *TipService) TipForDate(date string) (*model.Tip, error) {
	tip := &model.Tip{}
	err := s.db.Model(model.Tip{}).
		Where("date = ?", date).
		First(tip).
		Error
	if database.IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return tip, nil
}

func (s *TipService) GetTip(id int) (*model.Tip, error) {
	tip := &model.Tip{}
	err := s.db.Model(model.Tip{}).
		Where("id = ?", id).
		First(tip).
		Error
	if database.IsNotFound(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return tip, nil
}

func (s *TipService) CreateTip(title, body, date, videoUrl string) error {
	if title == "" || date == "" {
		return newValidationError("Title and date required")
	}
	tip := &model.Tip{
		Title:    title,
		Body:     body,
		Date:     date,
		VideoUrl: videoUrl,
	}
	if err := s.db.Create(tip).Error; err != nil {
		if database.IsDuplicate(err) {
			return newValidationError("A tip already exists for that date")
		}
		return err
	}
	return nil
}

func (s *TipService) UpdateTip(id int, title, body, date, videoUrl string) error {
	if title == "" || date == "" {
		return newValidationError("Title and date required")
	}
	if _, err := s.GetTip(id); err != nil {
		return err
	}
	err := s.db.Model(model.Tip{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"title":     title,
			"body":      body,
			"date":      date,
			"video_url": videoUrl,
		}).
		Error
	if database.IsDuplicate(err) {
		return newValidationError("A tip already exists for that date")
	}
	return err
}

func (s *TipService) DeleteTip(id int) error {
	result := s.db.Delete(&model.Tip{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

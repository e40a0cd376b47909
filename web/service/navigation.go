package service

import (
	"github.com/fengshuifortune/shop/database/model"

	"gorm.io/gorm"
)

// NavigationService handles the ordered navigation bar entries.
type NavigationService struct {
	db *gorm.DB
}

func NewNavigationService(db *gorm.DB) *NavigationService {
	return &NavigationService{db: db}
}

// AllEntries lists the navigation in display order.
func (s *NavigationService) AllEntries() ([]model.NavigationEntry, error) {
	entries := make([]model.NavigationEntry, 0)
	err := s.db.Model(model.NavigationEntry{}).
		Order("order_index asc").
		Find(&entries).
		Error
	return entries, err
}

// CreateEntry appends an entry after the current last one: its order index
// is one past the current maximum, or 0 for an empty table.
func (s *NavigationService) CreateEntry(label, url string) error {
	if label == "" || url == "" {
		return newValidationError("Label and url required")
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		var maxIndex struct {
			M int
		}
		err := tx.Model(model.NavigationEntry{}).
			Select("COALESCE(MAX(order_index), -1) as m").
			Scan(&maxIndex).
			Error
		if err != nil {
			return err
		}
		entry := &model.NavigationEntry{
			Label:      label,
			Url:        url,
			OrderIndex: maxIndex.M + 1,
		}
		return tx.Create(entry).Error
	})
}

func (s *NavigationService) DeleteEntry(id int) error {
	result := s.db.Delete(&model.NavigationEntry{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

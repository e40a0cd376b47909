package service

import (
	"github.com/fengshuifortune/shop/database"
	"github.com/fengshuifortune/shop/database/model"
	"github.com/fengshuifortune/shop/web/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingService handles the flat site configuration table.
type SettingService struct {
	db *gorm.DB
}

func NewSettingService(db *gorm.DB) *SettingService {
	return &SettingService{db: db}
}

// GetAllSettings loads the fixed settings surface. Stored keys outside the
// fixed set are ignored.
func (s *SettingService) GetAllSettings() (*entity.SiteSettings, error) {
	settings := make([]model.Setting, 0)
	if err := s.db.Model(model.Setting{}).Find(&settings).Error; err != nil {
		return nil, err
	}
	pairs := make(map[string]string, len(settings))
	for _, setting := range settings {
		pairs[setting.Key] = setting.Value
	}
	all := &entity.SiteSettings{}
	all.Load(pairs)
	return all, nil
}

// UpdateAllSettings upserts the fixed key set in one transaction; the write
// is all-or-nothing.
func (s *SettingService) UpdateAllSettings(all *entity.SiteSettings) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for key, value := range all.Pairs() {
			setting := &model.Setting{Key: key, Value: value}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value"}),
			}).Create(setting).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// GetSetting returns a single stored value, or empty when unset.
func (s *SettingService) GetSetting(key string) (string, error) {
	setting := &model.Setting{}
	err := s.db.Model(model.Setting{}).Where("key = ?", key).First(setting).Error
	if database.IsNotFound(err) {
		return "", nil
	} else if err != nil {
		return "", err
	}
	return setting.Value, nil
}

package database

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/fengshuifortune/shop/database/model"
	"github.com/fengshuifortune/shop/logger"
	"github.com/fengshuifortune/shop/util/crypto"

	"github.com/pelletier/go-toml/v2"
	"gorm.io/gorm"
)

//go:embed seed.toml
var seedToml []byte

type seedProduct struct {
	Name        string  `toml:"name"`
	Description string  `toml:"description"`
	Price       float64 `toml:"price"`
	Stock       int     `toml:"stock"`
	ImageUrl    string  `toml:"imageUrl"`
}

type seedNavigation struct {
	Label string `toml:"label"`
	Url   string `toml:"url"`
}

type seedAdmin struct {
	Name     string `toml:"name"`
	Email    string `toml:"email"`
	Password string `toml:"password"`
}

type seedData struct {
	Admin      seedAdmin         `toml:"admin"`
	Products   []seedProduct     `toml:"products"`
	Navigation []seedNavigation  `toml:"navigation"`
	Settings   map[string]string `toml:"settings"`
}

// Seed inserts default data into empty tables: the admin account, the sample
// catalog, a month of tips, the navigation bar and default settings. Bulk
// inserts run in a transaction so a partially seeded table cannot survive a
// failed startup.
func Seed(db *gorm.DB) error {
	var data seedData
	if err := toml.Unmarshal(seedToml, &data); err != nil {
		return err
	}

	if err := seedAdminUser(db, data.Admin); err != nil {
		return err
	}
	if err := seedProducts(db, data.Products); err != nil {
		return err
	}
	if err := seedTips(db); err != nil {
		return err
	}
	if err := seedNavigationEntries(db, data.Navigation); err != nil {
		return err
	}
	return seedSettings(db, data.Settings)
}

func isTableEmpty(db *gorm.DB, tableName string) (bool, error) {
	var count int64
	err := db.Table(tableName).Count(&count).Error
	return count == 0, err
}

func seedAdminUser(db *gorm.DB, admin seedAdmin) error {
	var count int64
	err := db.Model(&model.User{}).Where("email = ?", admin.Email).Count(&count).Error
	if err != nil || count > 0 {
		return err
	}
	hash, err := crypto.HashPasswordAsBcrypt(admin.Password)
	if err != nil {
		return err
	}
	user := &model.User{
		Name:         admin.Name,
		Email:        admin.Email,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
		Favorites:    "[]",
	}
	if err := db.Create(user).Error; err != nil {
		return err
	}
	logger.Infof("seeded admin user: %s", admin.Email)
	return nil
}

func seedProducts(db *gorm.DB, products []seedProduct) error {
	empty, err := isTableEmpty(db, "products")
	if err != nil || !empty {
		return err
	}
	err = db.Transaction(func(tx *gorm.DB) error {
		for _, p := range products {
			product := &model.Product{
				Name:        p.Name,
				Description: p.Description,
				Price:       p.Price,
				Stock:       p.Stock,
				ImageUrl:    p.ImageUrl,
			}
			if err := tx.Create(product).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err == nil {
		logger.Info("seeded sample products")
	}
	return err
}

// seedTips fills the current month with one tip per day.
func seedTips(db *gorm.DB) error {
	empty, err := isTableEmpty(db, "tips")
	if err != nil || !empty {
		return err
	}
	now := time.Now()
	err = db.Transaction(func(tx *gorm.DB) error {
		for i := 0; i < 31; i++ {
			date := time.Date(now.Year(), now.Month(), i+1, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
			tip := &model.Tip{
				Title: fmt.Sprintf("Daily Tip #%d", i+1),
				Body:  fmt.Sprintf("Feng Shui guidance for %s. Example: Keep your entryway bright and clutter-free to invite positive energy.", date),
				Date:  date,
			}
			if err := tx.Create(tip).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err == nil {
		logger.Info("seeded sample daily tips")
	}
	return err
}

func seedNavigationEntries(db *gorm.DB, entries []seedNavigation) error {
	empty, err := isTableEmpty(db, "navigation")
	if err != nil || !empty {
		return err
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for i, n := range entries {
			entry := &model.NavigationEntry{
				Label:      n.Label,
				Url:        n.Url,
				OrderIndex: i,
			}
			if err := tx.Create(entry).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// seedSettings inserts defaults for keys that do not exist yet, never
// overwriting operator-changed values.
func seedSettings(db *gorm.DB, defaults map[string]string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for key, value := range defaults {
			var count int64
			if err := tx.Model(&model.Setting{}).Where("key = ?", key).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}
			if err := tx.Create(&model.Setting{Key: key, Value: value}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

package service

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/fengshuifortune/shop/database"
	"github.com/fengshuifortune/shop/database/model"
	"github.com/fengshuifortune/shop/logger"

	"github.com/op/go-logging"
	"gorm.io/gorm"
)

var loggerOnce sync.Once

// newTestDB opens a throwaway seeded database for one test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	t.Setenv("FSSHOP_LOG_FOLDER", t.TempDir())
	loggerOnce.Do(func() {
		logger.InitLogger(logging.ERROR)
	})
	db, err := database.InitDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("InitDB() error: %v", err)
	}
	t.Cleanup(func() {
		_ = database.CloseDB(db)
	})
	return db
}

// seededAdmin loads the admin account created by the seed data.
func seededAdmin(t *testing.T, db *gorm.DB) *model.User {
	t.Helper()
	admin := &model.User{}
	if err := db.Where("role = ?", model.RoleAdmin).First(admin).Error; err != nil {
		t.Fatalf("loading seeded admin: %v", err)
	}
	return admin
}

// createUser inserts a user with the given role directly, bypassing guards.
func createUser(t *testing.T, db *gorm.DB, email string, role model.Role) *model.User {
	t.Helper()
	user := &model.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "x",
		Role:         role,
		Favorites:    "[]",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("creating %s user: %v", role, err)
	}
	return user
}

// Package model defines the database models for the shop.
package model

import (
	"time"

	"github.com/goccy/go-json"
)

// Role is the single role assigned to a user account.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleOwner      Role = "owner"
	RoleEditor     Role = "editor"
	RoleSubscriber Role = "subscriber"
)

// Roles lists every assignable role.
func Roles() []Role {
	return []Role{RoleAdmin, RoleOwner, RoleEditor, RoleSubscriber}
}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleOwner, RoleEditor, RoleSubscriber:
		return true
	}
	return false
}

type User struct {
	Id           int       `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Name         string    `json:"name" form:"name"`
	Email        string    `json:"email" form:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         Role      `json:"role" form:"role" gorm:"size:20;not null"`
	Favorites    string    `json:"-" gorm:"default:'[]'"`
	CreatedAt    time.Time `json:"createdAt"`
}

// FavoriteIds decodes the favorites column, a JSON array of product ids.
// A malformed or empty column decodes as no favorites.
func (u *User) FavoriteIds() []int {
	ids := make([]int, 0)
	if u.Favorites == "" {
		return ids
	}
	if err := json.Unmarshal([]byte(u.Favorites), &ids); err != nil {
		return nil
	}
	return ids
}

// SetFavoriteIds re-encodes the favorites column.
func (u *User) SetFavoriteIds(ids []int) error {
	if ids == nil {
		ids = make([]int, 0)
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	u.Favorites = string(data)
	return nil
}

type Product struct {
	Id          int       `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" form:"name" gorm:"not null"`
	Description string    `json:"description" form:"description"`
	Price       float64   `json:"price" form:"price" gorm:"not null"`
	Stock       int       `json:"stock" form:"stock" gorm:"not null;default:0"`
	ImageUrl    string    `json:"imageUrl" form:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Tip struct {
	Id       int    `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Title    string `json:"title" form:"title" gorm:"not null"`
	Body     string `json:"body" form:"body"`
	Date     string `json:"date" form:"date" gorm:"uniqueIndex;not null"`
	VideoUrl string `json:"videoUrl" form:"videoUrl"`
}

type Appointment struct {
	Id        int       `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	UserId    *int      `json:"userId"`
	Reference string    `json:"reference" gorm:"uniqueIndex"`
	Name      string    `json:"name" form:"name"`
	Email     string    `json:"email" form:"email"`
	Service   string    `json:"service" form:"service"`
	Date      string    `json:"date" form:"date"`
	Time      string    `json:"time" form:"time"`
	Message   string    `json:"message" form:"message"`
	Status    string    `json:"status" gorm:"default:pending"`
	CreatedAt time.Time `json:"createdAt"`
}

type Page struct {
	Id    int    `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Slug  string `json:"slug" form:"slug" gorm:"uniqueIndex;not null"`
	Title string `json:"title" form:"title" gorm:"not null"`
	Body  string `json:"body" form:"body"`
}

type NavigationEntry struct {
	Id         int    `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Label      string `json:"label" form:"label" gorm:"not null"`
	Url        string `json:"url" form:"url" gorm:"not null"`
	OrderIndex int    `json:"orderIndex" gorm:"not null;default:0"`
}

// TableName keeps the table name the seed data and queries use.
func (NavigationEntry) TableName() string {
	return "navigation"
}

type Setting struct {
	Key   string `json:"key" form:"key" gorm:"primaryKey"`
	Value string `json:"value" form:"value"`
}

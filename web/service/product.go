package service

import (
	"github.com/fengshuifortune/shop/database/model"

	"gorm.io/gorm"
)

// ProductService handles the catalog.
type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// AllProducts lists the catalog in insertion order, newest first.
func (s *ProductService) AllProducts() ([]model.Product, error) {
	products := make([]model.Product, 0)
	err := s.db.Model(model.Product{}).
		Order("id desc").
		Find(&products).
		Error
	return products, err
}

// LatestProducts returns the n most recently added products.
func (s *ProductService) LatestProducts(n int) ([]model.Product, error) {
	products := make([]model.Product, 0)
	err := s.db.Model(model.Product{}).
		Order("id desc").
		Limit(n).
		Find(&products).
		Error
	return products, err
}

func (s *ProductService) CountProducts() (int64, error) {
	var count int64
	err := s.db.Model(model.Product{}).Count(&count).Error
	return count, err
}

func (s *ProductService) CreateProduct(name, description string, price float64, stock int, imageUrl string) error {
	if name == "" {
		return newValidationError("Product name required")
	}
	if price < 0 {
		return newValidationError("Price must not be negative")
	}
	if stock < 0 {
		return newValidationError("Stock must not be negative")
	}
	product := &model.Product{
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
		ImageUrl:    imageUrl,
	}
	return s.db.Create(product).Error
}

func (s *ProductService) UpdateProduct(id int, name, description string, price float64, stock int, imageUrl string) error {
	if name == "" {
		return newValidationError("Product name required")
	}
	if price < 0 {
		return newValidationError("Price must not be negative")
	}
	if stock < 0 {
		return newValidationError("Stock must not be negative")
	}
	result := s.db.Model(model.Product{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":        name,
			"description": description,
			"price":       price,
			"stock":       stock,
			"image_url":   imageUrl,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ProductService) DeleteProduct(id int) error {
	result := s.db.Delete(&model.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

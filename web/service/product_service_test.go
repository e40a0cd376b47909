package service

import (
	"errors"
	"testing"
)

func TestCreateProductValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)

	tests := []struct {
		name    string
		product string
		price   float64
		stock   int
	}{
		{"missing name", "", 9.99, 1},
		{"negative price", "Lucky Coin", -1, 1},
		{"negative stock", "Lucky Coin", 9.99, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.CreateProduct(tt.product, "", tt.price, tt.stock, "")
			if !IsValidation(err) {
				t.Errorf("CreateProduct() error = %v, expected validation failure", err)
			}
		})
	}
}

func TestProductCrudRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)

	before, err := svc.CountProducts()
	if err != nil {
		t.Fatalf("CountProducts() error: %v", err)
	}

	if err := svc.CreateProduct("Jade Dragon", "carved figurine", 45, 3, "/assets/img/dragon.jpg"); err != nil {
		t.Fatalf("CreateProduct() error: %v", err)
	}
	products, err := svc.AllProducts()
	if err != nil {
		t.Fatalf("AllProducts() error: %v", err)
	}
	if int64(len(products)) != before+1 {
		t.Fatalf("catalog size = %d, expected %d", len(products), before+1)
	}
	created := products[0]
	if created.Name != "Jade Dragon" {
		t.Fatalf("newest product = %s, expected the just-created one first", created.Name)
	}

	if err := svc.UpdateProduct(created.Id, "Jade Dragon", "carved figurine", 39.5, 2, created.ImageUrl); err != nil {
		t.Fatalf("UpdateProduct() error: %v", err)
	}
	products, err = svc.AllProducts()
	if err != nil {
		t.Fatalf("AllProducts() error: %v", err)
	}
	if products[0].Price != 39.5 || products[0].Stock != 2 {
		t.Errorf("updated product = %+v", products[0])
	}

	if err := svc.DeleteProduct(created.Id); err != nil {
		t.Fatalf("DeleteProduct() error: %v", err)
	}
	after, err := svc.CountProducts()
	if err != nil {
		t.Fatalf("CountProducts() error: %v", err)
	}
	if after != before {
		t.Errorf("catalog size after delete = %d, expected %d", after, before)
	}
}

func TestProductMissingIdIsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)

	if err := svc.UpdateProduct(9999, "Ghost", "", 1, 1, ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateProduct(9999) error = %v, expected ErrNotFound", err)
	}
	if err := svc.DeleteProduct(9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteProduct(9999) error = %v, expected ErrNotFound", err)
	}
}

func TestLatestProductsLimitsCount(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)

	products, err := svc.LatestProducts(3)
	if err != nil {
		t.Fatalf("LatestProducts() error: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("LatestProducts(3) returned %d products", len(products))
	}
	if products[0].Id < products[1].Id || products[1].Id < products[2].Id {
		t.Errorf("latest products not newest first: %d, %d, %d",
			products[0].Id, products[1].Id, products[2].Id)
	}
}

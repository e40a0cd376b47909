package service

import (
	"testing"

	"github.com/fengshuifortune/shop/database/model"
)

func TestCreateEntryAppendsAfterHighestOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewNavigationService(db)

	before, err := svc.AllEntries()
	if err != nil {
		t.Fatalf("AllEntries() error: %v", err)
	}
	highest := before[len(before)-1].OrderIndex

	if err := svc.CreateEntry("Blog", "/blog"); err != nil {
		t.Fatalf("CreateEntry() error: %v", err)
	}

	after, err := svc.AllEntries()
	if err != nil {
		t.Fatalf("AllEntries() error: %v", err)
	}
	last := after[len(after)-1]
	if last.Label != "Blog" || last.OrderIndex != highest+1 {
		t.Errorf("new entry = %+v, expected order index %d", last, highest+1)
	}
}

func TestCreateEntryOnEmptyTableStartsAtZero(t *testing.T) {
	db := newTestDB(t)
	svc := NewNavigationService(db)

	if err := db.Where("1 = 1").Delete(&model.NavigationEntry{}).Error; err != nil {
		t.Fatalf("clearing navigation: %v", err)
	}

	if err := svc.CreateEntry("Home", "/"); err != nil {
		t.Fatalf("CreateEntry() error: %v", err)
	}
	entries, err := svc.AllEntries()
	if err != nil {
		t.Fatalf("AllEntries() error: %v", err)
	}
	if len(entries) != 1 || entries[0].OrderIndex != 0 {
		t.Errorf("entries = %+v, expected a single entry at order 0", entries)
	}
}

func TestCreateEntryValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewNavigationService(db)

	if err := svc.CreateEntry("", "/blog"); !IsValidation(err) {
		t.Errorf("missing label: error = %v, expected validation failure", err)
	}
	if err := svc.CreateEntry("Blog", ""); !IsValidation(err) {
		t.Errorf("missing url: error = %v, expected validation failure", err)
	}
}

func TestDeleteEntry(t *testing.T) {
	db := newTestDB(t)
	svc := NewNavigationService(db)

	before, err := svc.AllEntries()
	if err != nil {
		t.Fatalf("AllEntries() error: %v", err)
	}
	if err := svc.DeleteEntry(before[0].Id); err != nil {
		t.Fatalf("DeleteEntry() error: %v", err)
	}
	after, err := svc.AllEntries()
	if err != nil {
		t.Fatalf("AllEntries() error: %v", err)
	}
	if len(after) != len(before)-1 {
		t.Errorf("entries after delete = %d, expected %d", len(after), len(before)-1)
	}
}

package service

import (
	"errors"
	"reflect"
	"testing"

	"github.com/fengshuifortune/shop/database/model"
)

func TestRegisterForcesSubscriberRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user, err := svc.Register("Alice", "alice@example.com", "pw123")
	if err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if user.Role != model.RoleSubscriber {
		t.Errorf("registered role = %s, expected subscriber", user.Role)
	}
	if user.PasswordHash == "pw123" {
		t.Error("password stored unhashed")
	}
}

func TestRegisterValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"missing email", "", "pw123"},
		{"missing password", "bob@example.com", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Register("Bob", tt.email, tt.password); !IsValidation(err) {
				t.Errorf("Register() error = %v, expected validation failure", err)
			}
		})
	}

	if _, err := svc.Register("Alice", "alice@example.com", "pw123"); err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if _, err := svc.Register("Other", "alice@example.com", "pw456"); !IsValidation(err) {
		t.Errorf("duplicate email error = %v, expected validation failure", err)
	}
}

func TestCheckUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	if _, err := svc.Register("Alice", "alice@example.com", "pw123"); err != nil {
		t.Fatalf("Register() error: %v", err)
	}

	if user := svc.CheckUser("alice@example.com", "pw123"); user == nil {
		t.Error("CheckUser with correct credentials returned nil")
	}
	if user := svc.CheckUser("alice@example.com", "wrong"); user != nil {
		t.Error("CheckUser with wrong password returned a user")
	}
	if user := svc.CheckUser("nobody@example.com", "pw123"); user != nil {
		t.Error("CheckUser with unknown email returned a user")
	}
}

func TestToggleFavoriteIsIdempotentOverTwoCalls(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user, err := svc.Register("Alice", "alice@example.com", "pw123")
	if err != nil {
		t.Fatalf("Register() error: %v", err)
	}

	favorites, err := svc.ToggleFavorite(user.Id, 3)
	if err != nil {
		t.Fatalf("ToggleFavorite() error: %v", err)
	}
	if !reflect.DeepEqual(favorites, []int{3}) {
		t.Errorf("favorites after first toggle = %v, expected [3]", favorites)
	}

	favorites, err = svc.ToggleFavorite(user.Id, 3)
	if err != nil {
		t.Fatalf("ToggleFavorite() error: %v", err)
	}
	if len(favorites) != 0 {
		t.Errorf("favorites after second toggle = %v, expected empty", favorites)
	}

	stored, err := svc.GetUser(user.Id)
	if err != nil {
		t.Fatalf("GetUser() error: %v", err)
	}
	if len(stored.FavoriteIds()) != 0 {
		t.Errorf("stored favorites = %v, expected empty", stored.FavoriteIds())
	}
}

func TestCreateUserAdminAssignment(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	admin := seededAdmin(t, db)
	owner := createUser(t, db, "owner@example.com", model.RoleOwner)

	err := svc.CreateUser(owner, "Eve", "eve@example.com", "pw", model.RoleAdmin)
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("owner creating admin: error = %v, expected ErrForbidden", err)
	}

	if err := svc.CreateUser(admin, "Eve", "eve@example.com", "pw", model.RoleAdmin); err != nil {
		t.Errorf("admin creating admin: error = %v", err)
	}

	if err := svc.CreateUser(owner, "Fred", "fred@example.com", "pw", model.RoleEditor); err != nil {
		t.Errorf("owner creating editor: error = %v", err)
	}
}

func TestUpdateUserSelfDemotionBlocked(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	admin := seededAdmin(t, db)

	err := svc.UpdateUser(admin, admin.Id, admin.Name, admin.Email, model.RoleEditor)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("self-demotion error = %v, expected ErrForbidden", err)
	}

	stored, err := svc.GetUser(admin.Id)
	if err != nil {
		t.Fatalf("GetUser() error: %v", err)
	}
	if stored.Role != model.RoleAdmin {
		t.Errorf("role after blocked demotion = %s, expected admin", stored.Role)
	}
}

func TestUpdateUserGuards(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	owner := createUser(t, db, "owner@example.com", model.RoleOwner)
	subscriber := createUser(t, db, "sub@example.com", model.RoleSubscriber)

	err := svc.UpdateUser(owner, subscriber.Id, "Sub", "sub@example.com", model.RoleAdmin)
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("owner promoting to admin: error = %v, expected ErrForbidden", err)
	}

	if err := svc.UpdateUser(owner, subscriber.Id, "Sub", "sub@example.com", model.RoleEditor); err != nil {
		t.Errorf("owner promoting to editor: error = %v", err)
	}

	err = svc.UpdateUser(owner, 9999, "Ghost", "ghost@example.com", model.RoleEditor)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("updating missing user: error = %v, expected ErrNotFound", err)
	}
}

func TestDeleteUserGuards(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	admin := seededAdmin(t, db)
	owner := createUser(t, db, "owner@example.com", model.RoleOwner)
	subscriber := createUser(t, db, "sub@example.com", model.RoleSubscriber)

	if err := svc.DeleteUser(admin, admin.Id); !errors.Is(err, ErrForbidden) {
		t.Errorf("admin deleting self: error = %v, expected ErrForbidden", err)
	}
	if err := svc.DeleteUser(owner, owner.Id); !errors.Is(err, ErrForbidden) {
		t.Errorf("owner deleting self: error = %v, expected ErrForbidden", err)
	}
	if err := svc.DeleteUser(owner, admin.Id); !errors.Is(err, ErrForbidden) {
		t.Errorf("owner deleting admin: error = %v, expected ErrForbidden", err)
	}
	if err := svc.DeleteUser(owner, subscriber.Id); err != nil {
		t.Errorf("owner deleting subscriber: error = %v", err)
	}
	if _, err := svc.GetUser(subscriber.Id); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleted user still resolvable, error = %v", err)
	}
}

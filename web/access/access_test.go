package access

import (
	"testing"

	"github.com/fengshuifortune/shop/database/model"
)

func TestCanMatchesPolicyTable(t *testing.T) {
	// role -> capabilities in Capabilities() order:
	// manageUsers, manageAdmins, manageContent, manageProducts, manageSystem, viewAdmin
	table := map[model.Role][6]bool{
		model.RoleAdmin:      {true, true, true, true, true, true},
		model.RoleOwner:      {true, false, true, true, true, true},
		model.RoleEditor:     {false, false, true, true, false, true},
		model.RoleSubscriber: {false, false, false, false, false, false},
	}

	for role, expected := range table {
		for i, capability := range Capabilities() {
			if got := Can(role, capability); got != expected[i] {
				t.Errorf("Can(%s, %s) = %v, expected %v", role, capability, got, expected[i])
			}
		}
	}
}

func TestUnknownRoleGrantsNothing(t *testing.T) {
	for _, capability := range Capabilities() {
		if Can(model.Role("superuser"), capability) {
			t.Errorf("unknown role granted %s", capability)
		}
	}
}

func TestAnonymousDeniesEveryCapability(t *testing.T) {
	for _, capability := range Capabilities() {
		if UserCan(nil, capability) {
			t.Errorf("anonymous granted %s", capability)
		}
	}
}

func TestCanAssignRole(t *testing.T) {
	admin := &model.User{Id: 1, Role: model.RoleAdmin}
	owner := &model.User{Id: 2, Role: model.RoleOwner}
	editor := &model.User{Id: 3, Role: model.RoleEditor}

	tests := []struct {
		name     string
		actor    *model.User
		role     model.Role
		expected bool
	}{
		{"admin assigns admin", admin, model.RoleAdmin, true},
		{"admin assigns owner", admin, model.RoleOwner, true},
		{"owner assigns admin", owner, model.RoleAdmin, false},
		{"owner assigns editor", owner, model.RoleEditor, true},
		{"owner assigns subscriber", owner, model.RoleSubscriber, true},
		{"editor assigns subscriber", editor, model.RoleSubscriber, false},
		{"anonymous assigns subscriber", nil, model.RoleSubscriber, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAssignRole(tt.actor, tt.role); got != tt.expected {
				t.Errorf("CanAssignRole() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestCanUpdateRole(t *testing.T) {
	admin := &model.User{Id: 1, Role: model.RoleAdmin}
	owner := &model.User{Id: 2, Role: model.RoleOwner}

	tests := []struct {
		name     string
		actor    *model.User
		targetId int
		newRole  model.Role
		expected bool
	}{
		{"admin demotes self", admin, 1, model.RoleEditor, false},
		{"admin keeps self admin", admin, 1, model.RoleAdmin, true},
		{"admin demotes other admin", admin, 5, model.RoleEditor, true},
		{"admin promotes other to admin", admin, 5, model.RoleAdmin, true},
		{"owner promotes other to admin", owner, 5, model.RoleAdmin, false},
		{"owner changes own role", owner, 2, model.RoleEditor, true},
		{"owner updates subscriber", owner, 5, model.RoleSubscriber, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanUpdateRole(tt.actor, tt.targetId, tt.newRole); got != tt.expected {
				t.Errorf("CanUpdateRole() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestCanDeleteUser(t *testing.T) {
	admin := &model.User{Id: 1, Role: model.RoleAdmin}
	otherAdmin := &model.User{Id: 4, Role: model.RoleAdmin}
	owner := &model.User{Id: 2, Role: model.RoleOwner}
	subscriber := &model.User{Id: 3, Role: model.RoleSubscriber}

	tests := []struct {
		name     string
		actor    *model.User
		target   *model.User
		expected bool
	}{
		{"admin deletes self", admin, admin, false},
		{"owner deletes self", owner, owner, false},
		{"admin deletes other admin", admin, otherAdmin, true},
		{"owner deletes admin", owner, admin, false},
		{"owner deletes subscriber", owner, subscriber, true},
		{"subscriber deletes subscriber", subscriber, &model.User{Id: 9, Role: model.RoleSubscriber}, false},
		{"anonymous deletes subscriber", nil, subscriber, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanDeleteUser(tt.actor, tt.target); got != tt.expected {
				t.Errorf("CanDeleteUser() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

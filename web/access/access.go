// Package access implements the role-based authorization policy: the static
// role to capability mapping plus the cross-cutting guards on user management
// that a capability alone cannot express.
package access

import (
	"github.com/fengshuifortune/shop/database/model"
)

// Capability is a named permission checked independently of role identity.
type Capability string

const (
	ManageUsers    Capability = "manageUsers"
	ManageAdmins   Capability = "manageAdmins"
	ManageContent  Capability = "manageContent"
	ManageProducts Capability = "manageProducts"
	ManageSystem   Capability = "manageSystem"
	ViewAdmin      Capability = "viewAdmin"
)

// Capabilities lists every capability, in policy-table order.
func Capabilities() []Capability {
	return []Capability{ManageUsers, ManageAdmins, ManageContent, ManageProducts, ManageSystem, ViewAdmin}
}

// Can reports whether a role grants a capability. The switch is exhaustive
// over the role enum; a role outside the enum grants nothing.
func Can(role model.Role, capability Capability) bool {
	switch role {
	case model.RoleAdmin:
		return true
	case model.RoleOwner:
		switch capability {
		case ManageUsers, ManageContent, ManageProducts, ManageSystem, ViewAdmin:
			return true
		case ManageAdmins:
			return false
		}
	case model.RoleEditor:
		switch capability {
		case ManageContent, ManageProducts, ViewAdmin:
			return true
		case ManageUsers, ManageAdmins, ManageSystem:
			return false
		}
	case model.RoleSubscriber:
		return false
	}
	return false
}

// UserCan is Can lifted over a resolved user; anonymous holds no capability.
func UserCan(user *model.User, capability Capability) bool {
	if user == nil {
		return false
	}
	return Can(user.Role, capability)
}

// CanAssignRole reports whether the acting user may create a user with, or
// promote a user to, the given role. Assigning admin requires the actor to
// be admin, even though owner holds ManageUsers.
func CanAssignRole(actor *model.User, role model.Role) bool {
	if !UserCan(actor, ManageUsers) {
		return false
	}
	if role == model.RoleAdmin {
		return actor.Role == model.RoleAdmin
	}
	return true
}

// CanUpdateRole applies the role-update guards: admin assignment is
// admin-only, and an admin may never move their own account off the admin
// role. The self-demotion block is unconditional; it does not check whether
// another admin exists.
func CanUpdateRole(actor *model.User, targetId int, newRole model.Role) bool {
	if !CanAssignRole(actor, newRole) {
		return false
	}
	if actor.Id == targetId && actor.Role == model.RoleAdmin && newRole != model.RoleAdmin {
		return false
	}
	return true
}

// CanDeleteUser reports whether the acting user may delete the target.
// Nobody deletes their own account, and deleting an admin requires the
// actor to be admin.
func CanDeleteUser(actor *model.User, target *model.User) bool {
	if !UserCan(actor, ManageUsers) {
		return false
	}
	if actor.Id == target.Id {
		return false
	}
	if target.Role == model.RoleAdmin && actor.Role != model.RoleAdmin {
		return false
	}
	return true
}

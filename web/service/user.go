package service

import (
	"github.com/fengshuifortune/shop/database"
	"github.com/fengshuifortune/shop/database/model"
	"github.com/fengshuifortune/shop/logger"
	"github.com/fengshuifortune/shop/util/crypto"
	"github.com/fengshuifortune/shop/util/random"
	"github.com/fengshuifortune/shop/web/access"

	"gorm.io/gorm"
)

// UserService handles registration, credential checks, account management
// and favorites.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// GetUser resolves a user by id. A miss returns ErrNotFound; the session
// layer treats that as anonymous.
func (s *UserService) GetUser(id int) (*model.User, error) {
	user := &model.User{}
	err := s.db.Model(model.User{}).
		Where("id = ?", id).
		First(user).
		Error
	if database.IsNotFound(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return user, nil
}

// CheckUser verifies email and password, returning nil on any failure.
func (s *UserService) CheckUser(email string, password string) *model.User {
	user := &model.User{}
	err := s.db.Model(model.User{}).
		Where("email = ?", email).
		First(user).
		Error
	if database.IsNotFound(err) {
		return nil
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil
	}
	if !crypto.CheckPasswordHash(user.PasswordHash, password) {
		return nil
	}
	return user
}

// Register creates a subscriber account. The role is never taken from the
// caller.
func (s *UserService) Register(name string, email string, password string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, newValidationError("Email and password required")
	}
	var count int64
	if err := s.db.Model(model.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, newValidationError("Email already registered")
	}
	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleSubscriber,
		Favorites:    "[]",
	}
	if err := s.db.Create(user).Error; err != nil {
		if database.IsDuplicate(err) {
			return nil, newValidationError("Email already registered")
		}
		return nil, err
	}
	return user, nil
}

// AllUsers lists accounts newest first, without password hashes.
func (s *UserService) AllUsers() ([]model.User, error) {
	users := make([]model.User, 0)
	err := s.db.Model(model.User{}).
		Select("id", "name", "email", "role", "created_at").
		Order("id desc").
		Find(&users).
		Error
	return users, err
}

// CreateUser creates an account on behalf of the acting user. Assigning the
// admin role requires the actor to be admin. A blank password gets a random
// one.
func (s *UserService) CreateUser(actor *model.User, name, email, password string, role model.Role) error {
	if !role.Valid() {
		return newValidationError("Unknown role")
	}
	if !access.CanAssignRole(actor, role) {
		return ErrForbidden
	}
	if email == "" {
		return newValidationError("Email required")
	}
	if password == "" {
		password = random.Seq(12)
	}
	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return err
	}
	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Favorites:    "[]",
	}
	if err := s.db.Create(user).Error; err != nil {
		if database.IsDuplicate(err) {
			return newValidationError("Email already registered")
		}
		return err
	}
	return nil
}

// UpdateUser overwrites a user's profile and role on behalf of the acting
// user, applying the admin-assignment and self-demotion guards before any
// write.
func (s *UserService) UpdateUser(actor *model.User, id int, name, email string, role model.Role) error {
	if !role.Valid() {
		return newValidationError("Unknown role")
	}
	if _, err := s.GetUser(id); err != nil {
		return err
	}
	if !access.CanUpdateRole(actor, id, role) {
		return ErrForbidden
	}
	err := s.db.Model(model.User{}).
		Where("id = ?", id).
		Updates(map[string]any{"name": name, "email": email, "role": role}).
		Error
	if database.IsDuplicate(err) {
		return newValidationError("Email already registered")
	}
	return err
}

// DeleteUser removes an account on behalf of the acting user. Self-deletion
// is always refused, and deleting an admin requires the actor to be admin.
func (s *UserService) DeleteUser(actor *model.User, id int) error {
	target, err := s.GetUser(id)
	if err != nil {
		return err
	}
	if !access.CanDeleteUser(actor, target) {
		return ErrForbidden
	}
	return s.db.Delete(&model.User{}, id).Error
}

// ToggleFavorite adds the product id to the user's favorites if absent,
// removes it if present, and returns the new set. Two toggles of the same
// id restore the original set.
func (s *UserService) ToggleFavorite(userId int, productId int) ([]int, error) {
	user, err := s.GetUser(userId)
	if err != nil {
		return nil, err
	}
	favorites := user.FavoriteIds()
	found := false
	next := make([]int, 0, len(favorites)+1)
	for _, id := range favorites {
		if id == productId {
			found = true
			continue
		}
		next = append(next, id)
	}
	if !found {
		next = append(next, productId)
	}
	if err := user.SetFavoriteIds(next); err != nil {
		return nil, err
	}
	err = s.db.Model(model.User{}).
		Where("id = ?", userId).
		Update("favorites", user.Favorites).
		Error
	if err != nil {
		return nil, err
	}
	return next, nil
}

// FavoriteProducts loads the products in the user's favorites set.
func (s *UserService) FavoriteProducts(user *model.User) ([]model.Product, error) {
	ids := user.FavoriteIds()
	products := make([]model.Product, 0)
	if len(ids) == 0 {
		return products, nil
	}
	err := s.db.Model(model.Product{}).
		Where("id IN ?", ids).
		Find(&products).
		Error
	return products, err
}

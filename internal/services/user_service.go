package services

import (
	"strings"

	"gorm.io/gorm"

	"record-tracker/internal/models"
)

// UserService owns account creation and credential checks.
type UserService interface {
	// Register creates a non-admin account. Returns models.ErrMissingFields
	// when a field is blank and models.ErrEmailTaken on a duplicate email.
	Register(name, email, password string) (*models.User, error)
	// Authenticate verifies email + password. Unknown email and wrong
	// password both return models.ErrInvalidCredentials.
	Authenticate(email, password string) (*models.User, error)
	// CreateAdmin inserts an account with admin privilege.
	CreateAdmin(name, email, password string) (*models.User, error)
	// GetUserByEmail looks up an account by its normalized email.
	GetUserByEmail(email string) (*models.User, error)
}

type userService struct {
	db *gorm.DB
}

// NewUserService creates a new instance of UserService
func NewUserService(db *gorm.DB) UserService {
	return &userService{db: db}
}

func (s *userService) Register(name, email, password string) (*models.User, error) {
	return s.create(name, email, password, false)
}

func (s *userService) CreateAdmin(name, email, password string) (*models.User, error) {
	return s.create(name, email, password, true)
}

func (s *userService) create(name, email, password string, isAdmin bool) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return nil, models.ErrMissingFields
	}

	user := &models.User{Name: name, Email: email, IsAdmin: isAdmin}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}
	if err := s.db.Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, models.ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", normalizeEmail(email)).First(&user).Error; err != nil {
		return nil, models.ErrInvalidCredentials
	}
	if !user.CheckPassword(password) {
		return nil, models.ErrInvalidCredentials
	}
	return &user, nil
}

func (s *userService) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", normalizeEmail(email)).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// normalizeEmail lowercases the login identifier; uniqueness is
// case-insensitive because every write and lookup passes through here.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// isUniqueConstraintError matches the duplicate-key message of both the
// sqlite and postgres drivers.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "UNIQUE constraint") || strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint")
}

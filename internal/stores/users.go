package stores

import (
	"errors"

	"github.com/gonetfly/gonetfly-backend/internal/models"
	"gorm.io/gorm"
)

// UserStore persists user accounts and checks credentials.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Register hashes the password and inserts a new user. The email
// unique constraint is the arbiter for duplicates, so two concurrent
// registrations with the same email cannot both succeed.
func (s *UserStore) Register(email, password, firstName, lastName, phone string) (*models.User, error) {
	user := models.User{
		Email:     email,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
	}

	if err := user.HashPassword(); err != nil {
		return nil, err
	}

	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	return &user, nil
}

// Authenticate looks the user up by email and verifies the password
// against the stored hash.
func (s *UserStore) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := user.CheckPassword(password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

package models

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email        string `gorm:"column:email;unique;not null"`
	Password     string `gorm:"-:all"` // Temporary field for password handling
	PasswordHash string `gorm:"column:password_hash;not null"`
	FirstName    string `gorm:"column:first_name;not null"`
	LastName     string `gorm:"column:last_name;not null"`
	Phone        string `gorm:"column:phone"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// DisplayName is the name bound to the session and shown on pages.
func (u *User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}

func (u *User) HashPassword() error {
	if u.Password == "" {
		return nil
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}

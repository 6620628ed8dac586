package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User is an account that can log in and submit records. Email is stored
// lowercase; every writer and lookup normalizes before touching the store.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null" json:"-"`
	IsAdmin      bool   `gorm:"not null;default:false"`
	CreatedAt    time.Time

	Records []Record `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// SetPassword hashes the plaintext with bcrypt and stores the hash on the user.
func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword compares the plaintext against the stored hash.
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plain)) == nil
}

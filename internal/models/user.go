package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the role a user holds on their own account.
type Role string

const (
	RoleOwner  Role = "OWNER"
	RoleUser   Role = "USER"
	RoleViewer Role = "VIEWER"
)

// User is a person with access to an account.
type User struct {
	DefaultModel
	Account    Account `json:"-"`
	AccountID  uuid.UUID
	Name       string
	Email      string `gorm:"uniqueIndex"`
	Password   string `json:"-"` // bcrypt hash, empty for Google sign-in users
	Country    string
	Mobile     string
	Role       Role
	Picture    string
	GoogleUser bool
}

// BeforeSave normalizes the email so that lookups are case-insensitive.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))

	return nil
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	_ = u.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*User)
	return u.checkIntegrity(tx, *toSave)
}

// checkIntegrity verifies references to other resources
func (u *User) checkIntegrity(tx *gorm.DB, toSave User) error {
	return tx.First(&Account{}, toSave.AccountID).Error
}

// UserByEmail looks a user up by their email, case-insensitively.
func UserByEmail(db *gorm.DB, email string) (User, error) {
	var user User
	err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	return user, err
}

package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is a named expense category of an account.
//
// Categories are created lazily the first time a plan references a new name
// and are never deleted, only their per-month envelopes are.
type Category struct {
	DefaultModel
	Account   Account   `json:"-"`
	AccountID uuid.UUID `gorm:"uniqueIndex:category_account_name"`
	Name      string    `gorm:"uniqueIndex:category_account_name"`
}

// BeforeSave trims whitespace from the name.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	return nil
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	_ = c.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Category)
	return c.checkIntegrity(tx, *toSave)
}

// checkIntegrity verifies references to other resources
func (c *Category) checkIntegrity(tx *gorm.DB, toSave Category) error {
	return tx.First(&Account{}, toSave.AccountID).Error
}

// ResolveCategory returns the category with the name for the account,
// matching case-insensitively. It is created if it does not exist yet.
// The stored name keeps the casing of its first mention.
func ResolveCategory(db *gorm.DB, accountID uuid.UUID, name string) (Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Category{}, ErrCategoryNameMissing
	}

	var category Category
	err := db.
		Where("account_id = ? AND LOWER(name) = ?", accountID, strings.ToLower(name)).
		First(&category).Error
	if err == nil {
		return category, nil
	}

	if !errors.Is(err, ErrResourceNotFound) {
		return Category{}, err
	}

	category = Category{AccountID: accountID, Name: name}
	err = db.Create(&category).Error
	if err != nil {
		return Category{}, err
	}

	return category, nil
}

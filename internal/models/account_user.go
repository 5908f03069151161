package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountUser links an additional user to a BUSINESS account.
//
// The account owner is not linked here, their membership is implied by
// User.AccountID.
type AccountUser struct {
	DefaultModel
	Account   Account   `json:"-"`
	AccountID uuid.UUID `gorm:"uniqueIndex:account_user_member"`
	User      User      `json:"-"`
	UserID    uuid.UUID `gorm:"uniqueIndex:account_user_member"`
	Role      Role
}

func (a *AccountUser) BeforeCreate(tx *gorm.DB) error {
	_ = a.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*AccountUser)
	return a.checkIntegrity(tx, *toSave)
}

// checkIntegrity verifies references to other resources
func (a *AccountUser) checkIntegrity(tx *gorm.DB, toSave AccountUser) error {
	err := tx.First(&Account{}, toSave.AccountID).Error
	if err != nil {
		return err
	}

	return tx.First(&User{}, toSave.UserID).Error
}

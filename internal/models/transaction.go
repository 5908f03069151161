package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionType string

const (
	TransactionIncome  TransactionType = "INCOME"
	TransactionExpense TransactionType = "EXPENSE"
)

type PaymentMethod string

const (
	PaymentCash       PaymentMethod = "CASH"
	PaymentDebitCard  PaymentMethod = "DEBIT_CARD"
	PaymentCreditCard PaymentMethod = "CREDIT_CARD"
)

// Transaction is the journal record of one expense. It is immutable once
// created, the only lifecycle operation after creation is deletion, which
// reverses its effect on the envelope.
//
// EnvelopeID is a plain reference, not a constrained association: the
// envelope may be cleaned up later while its journal entries remain.
type Transaction struct {
	DefaultModel
	User          User `json:"-"`
	UserID        uuid.UUID
	Account       Account `json:"-"`
	AccountID     uuid.UUID
	Category      Category `json:"-"`
	CategoryID    uuid.UUID
	EnvelopeID    uuid.UUID
	Type          TransactionType
	Amount        decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Description   string
	PaymentMethod PaymentMethod
	ReceiptURL    string
	Date          time.Time
}

// AfterFind updates the date to use UTC as timezone, not +0000.
func (t *Transaction) AfterFind(_ *gorm.DB) error {
	t.Date = t.Date.In(time.UTC)
	return nil
}

// BeforeSave defaults the date and normalizes strings.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	t.Description = strings.TrimSpace(t.Description)

	return nil
}

// RecordExpense journals an expense against an envelope and adds its
// amount to the envelope's spent counter. When the counter ends up above
// the budget, the returned alert is the one appended for this breach.
//
// An unknown envelope aborts the call before any write. An envelope of a
// different account counts as unknown.
func RecordExpense(db *gorm.DB, t Transaction) (Transaction, *OverSpendingAlert, error) {
	if !t.Amount.IsPositive() {
		return Transaction{}, nil, ErrAmountNotPositive
	}

	envelope, err := EnvelopeForAccount(db, t.AccountID, t.EnvelopeID)
	if err != nil {
		return Transaction{}, nil, err
	}

	t.CategoryID = envelope.CategoryID
	t.Type = TransactionExpense

	if err := db.Create(&t).Error; err != nil {
		return Transaction{}, nil, err
	}

	alert, err := envelope.AddSpend(db, t.UserID, t.Amount)
	if err != nil {
		return Transaction{}, nil, err
	}

	return t, alert, nil
}

// DeleteExpense releases the transaction's amount from its envelope and
// deletes the journal entry. The envelope's counter is floored at zero.
// The envelope itself may already have been removed by a plan
// resubmission, in which case only the journal entry goes away.
func DeleteExpense(db *gorm.DB, id uuid.UUID) (Envelope, error) {
	var transaction Transaction
	if err := db.First(&transaction, id).Error; err != nil {
		return Envelope{}, err
	}

	var envelope Envelope
	err := db.First(&envelope, transaction.EnvelopeID).Error

	switch {
	case err == nil:
		if err := envelope.ReleaseSpend(db, transaction.Amount); err != nil {
			return Envelope{}, err
		}

	case errors.Is(err, ErrResourceNotFound):
		// Nothing to release

	default:
		return Envelope{}, err
	}

	if err := db.Delete(&transaction).Error; err != nil {
		return Envelope{}, err
	}

	return envelope, nil
}

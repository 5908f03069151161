package v1

import (
	"time"

	"github.com/cashpilot/backend/internal/models"
	internal_uuid "github.com/cashpilot/backend/internal/uuid"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionEditable represents all user configurable parameters of an
// expense
type TransactionEditable struct {
	EnvelopeID    internal_uuid.UUID   `json:"envelopeId" binding:"required"`       // ID of the envelope the expense is journaled against
	Amount        decimal.Decimal      `json:"amount" example:"14.37"`              // Amount of the expense, must be positive
	Description   string               `json:"description" example:"Lunch"`         // Free text description
	PaymentMethod models.PaymentMethod `json:"paymentMethod" example:"CASH"`        // CASH, DEBIT_CARD or CREDIT_CARD
	ReceiptURL    string               `json:"receiptUrl" example:""`               // URL of an uploaded receipt
	Date          time.Time            `json:"date" example:"2026-04-02T12:00:00Z"` // Date of the expense, defaults to now
}

func (t TransactionEditable) model() models.Transaction {
	return models.Transaction{
		EnvelopeID:    t.EnvelopeID.UUID,
		Amount:        t.Amount,
		Description:   t.Description,
		PaymentMethod: t.PaymentMethod,
		ReceiptURL:    t.ReceiptURL,
		Date:          t.Date,
	}
}

type TransactionData struct {
	ID            uuid.UUID              `json:"id"`
	UserID        uuid.UUID              `json:"userId"`
	CategoryID    uuid.UUID              `json:"categoryId"`
	EnvelopeID    uuid.UUID              `json:"envelopeId"`
	Type          models.TransactionType `json:"type" example:"EXPENSE"`
	Amount        decimal.Decimal        `json:"amount" example:"14.37"`
	Description   string                 `json:"description" example:"Lunch"`
	PaymentMethod models.PaymentMethod   `json:"paymentMethod" example:"CASH"`
	ReceiptURL    string                 `json:"receiptUrl"`
	Date          time.Time              `json:"date"`
}

func newTransaction(model models.Transaction) TransactionData {
	return TransactionData{
		ID:            model.ID,
		UserID:        model.UserID,
		CategoryID:    model.CategoryID,
		EnvelopeID:    model.EnvelopeID,
		Type:          model.Type,
		Amount:        model.Amount,
		Description:   model.Description,
		PaymentMethod: model.PaymentMethod,
		ReceiptURL:    model.ReceiptURL,
		Date:          model.Date,
	}
}

type TransactionCreateResponse struct {
	Data  *TransactionData `json:"data"`  // The journaled expense
	Alert *Alert           `json:"alert"` // The overspending alert raised by this expense, if any
	Error *string          `json:"error"` // The error, if any occurred
}

type TransactionListResponse struct {
	Data       []TransactionData `json:"data"`       // List of expenses, newest first
	Error      *string           `json:"error"`      // The error, if any occurred
	Pagination *Pagination       `json:"pagination"` // Pagination information
}

type TransactionDeleteResponse struct {
	Data  *AllocationEnvelope `json:"data"`  // The envelope after the release, null when it was already removed
	Error *string             `json:"error"` // The error, if any occurred
}

// TransactionQueryFilter contains the supported query parameters
type TransactionQueryFilter struct {
	EnvelopeID string `form:"envelope"` // By the ID of the envelope
	Offset     uint   `form:"offset"`   // The offset of the first expense returned, defaults to 0
	Limit      int    `form:"limit"`    // Maximum number of expenses to return, defaults to 50
}

package v1

import (
	"fmt"
	"net/http"

	"github.com/cashpilot/backend/internal/httputil"
	"github.com/cashpilot/backend/internal/models"
	internal_uuid "github.com/cashpilot/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegisterTransactionRoutes registers the routes for expenses with the
// RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetTransactions)
		r.POST("", CreateTransaction)
	}

	{
		r.OPTIONS("/:id", httputil.OptionsGetDelete)
		r.GET("/:id", GetTransaction)
		r.DELETE("/:id", DeleteTransaction)
	}
}

// @Summary		Record expense
// @Description	Journals an expense against an envelope and adds its amount to the envelope's spent counter. When the counter ends up above the budget, the raised alert is part of the response.
// @Tags			Transactions
// @Produce		json
// @Success		201		{object}	TransactionCreateResponse
// @Failure		400		{object}	TransactionCreateResponse
// @Failure		404		{object}	TransactionCreateResponse
// @Param			request	body		TransactionEditable	true	"Expense"
// @Router			/v1/transactions [post]
func CreateTransaction(c *gin.Context) {
	actor := requestActor(c)

	var editable TransactionEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionCreateResponse{Error: &e})
		return
	}

	transaction := editable.model()
	transaction.UserID = actor.UserID
	transaction.AccountID = actor.AccountID

	transaction, alert, err := models.RecordExpense(models.DB, transaction)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionCreateResponse{Error: &e})
		return
	}

	data := newTransaction(transaction)
	response := TransactionCreateResponse{Data: &data}
	if alert != nil {
		a := newAlert(*alert)
		response.Alert = &a
	}

	c.JSON(http.StatusCreated, response)
}

// @Summary		List expenses
// @Description	Returns the expenses of the account, newest first. Can be filtered by envelope.
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	TransactionListResponse
// @Failure		400			{object}	TransactionListResponse
// @Failure		500			{object}	TransactionListResponse
// @Param			envelope	query		string	false	"Filter by envelope ID"
// @Param			offset		query		uint	false	"The offset of the first expense returned, defaults to 0"
// @Param			limit		query		int		false	"Maximum number of expenses to return, defaults to 50"
// @Router			/v1/transactions [get]
func GetTransactions(c *gin.Context) {
	actor := requestActor(c)

	var filter TransactionQueryFilter
	if err := httputil.BindQuery(c, &filter); err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &e})
		return
	}

	query := models.DB.
		Model(&models.Transaction{}).
		Where("account_id = ?", actor.AccountID)

	if filter.EnvelopeID != "" {
		envelopeID, err := uuid.Parse(filter.EnvelopeID)
		if err != nil {
			e := httputil.ErrInvalidQuery.Error()
			c.JSON(http.StatusBadRequest, TransactionListResponse{Error: &e})
			return
		}

		query = query.Where("envelope_id = ?", envelopeID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &e})
		return
	}

	// Default to 50 expenses, -1 returns all
	limit := 50
	if filter.Limit != 0 {
		limit = filter.Limit
	}

	var transactions []models.Transaction
	err := query.
		Order("date DESC").
		Offset(int(filter.Offset)).
		Limit(limit).
		Find(&transactions).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &e})
		return
	}

	data := make([]TransactionData, 0, len(transactions))
	for _, transaction := range transactions {
		data = append(data, newTransaction(transaction))
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Offset: filter.Offset,
			Limit:  limit,
			Total:  total,
		},
	})
}

// @Summary		Get expense
// @Description	Returns a single expense by its ID
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionCreateResponse
// @Failure		400	{object}	TransactionCreateResponse
// @Failure		404	{object}	TransactionCreateResponse
// @Param			id	path		URIID	true	"ID of the expense"
// @Router			/v1/transactions/{id} [get]
func GetTransaction(c *gin.Context) {
	actor := requestActor(c)

	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionCreateResponse{Error: &e})
		return
	}

	transaction, err := accountTransaction(actor, uri.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionCreateResponse{Error: &e})
		return
	}

	data := newTransaction(transaction)
	c.JSON(http.StatusOK, TransactionCreateResponse{Data: &data})
}

// @Summary		Delete expense
// @Description	Releases the expense's amount from its envelope and deletes the journal entry. The envelope's spent counter is floored at zero.
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionDeleteResponse
// @Failure		400	{object}	TransactionDeleteResponse
// @Failure		404	{object}	TransactionDeleteResponse
// @Param			id	path		URIID	true	"ID of the expense"
// @Router			/v1/transactions/{id} [delete]
func DeleteTransaction(c *gin.Context) {
	actor := requestActor(c)

	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionDeleteResponse{Error: &e})
		return
	}

	if _, err := accountTransaction(actor, uri.ID); err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionDeleteResponse{Error: &e})
		return
	}

	envelope, err := models.DeleteExpense(models.DB, uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionDeleteResponse{Error: &e})
		return
	}

	response := TransactionDeleteResponse{}
	if envelope.ID != uuid.Nil {
		var category models.Category
		if err := models.DB.First(&category, envelope.CategoryID).Error; err != nil {
			e := err.Error()
			c.JSON(status(err), TransactionDeleteResponse{Error: &e})
			return
		}

		response.Data = &AllocationEnvelope{
			ID:           envelope.ID,
			CategoryID:   envelope.CategoryID,
			CategoryName: category.Name,
			Budget:       envelope.Budget,
			Spent:        envelope.Spent,
		}
	}

	c.JSON(http.StatusOK, response)
}

// accountTransaction loads a transaction and verifies it belongs to the
// actor's account.
func accountTransaction(actor actor, id internal_uuid.UUID) (models.Transaction, error) {
	var transaction models.Transaction
	if err := models.DB.First(&transaction, id.UUID).Error; err != nil {
		return models.Transaction{}, err
	}

	// A transaction of another account is reported as missing
	if transaction.AccountID != actor.AccountID {
		return models.Transaction{}, fmt.Errorf("%w transaction matching your query", models.ErrResourceNotFound)
	}

	return transaction, nil
}

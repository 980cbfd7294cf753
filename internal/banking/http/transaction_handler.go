package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	bankingDomain "github.com/allisson/bankvault/internal/banking/domain"
	"github.com/allisson/bankvault/internal/banking/http/dto"
	"github.com/allisson/bankvault/internal/banking/seed"
	bankingUseCase "github.com/allisson/bankvault/internal/banking/usecase"
	"github.com/allisson/bankvault/internal/httputil"
	customValidation "github.com/allisson/bankvault/internal/validation"
)

// TransactionHandler handles HTTP requests for the cached transaction list.
type TransactionHandler struct {
	transactionUseCase bankingUseCase.TransactionUseCase
	seed               seed.Data
	logger             *slog.Logger
}

// NewTransactionHandler creates a new transaction handler.
func NewTransactionHandler(
	transactionUseCase bankingUseCase.TransactionUseCase,
	seedData seed.Data,
	logger *slog.Logger,
) *TransactionHandler {
	return &TransactionHandler{
		transactionUseCase: transactionUseCase,
		seed:               seedData,
		logger:             logger,
	}
}

// ListHandler returns a page of cached transactions, or of the seed transactions when
// none are cached.
// GET /v1/transactions?offset=0&limit=50
func (h *TransactionHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	source := bankingDomain.SourceCache
	transactions, err := h.transactionUseCase.List(c.Request.Context())
	switch {
	case errors.Is(err, bankingDomain.ErrTransactionsNotFound):
		transactions = h.seed.Transactions
		source = bankingDomain.SourceSeed
	case err != nil:
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	page := httputil.Paginate(transactions, offset, limit)
	c.JSON(http.StatusOK, dto.MapTransactionsToListResponse(page, len(transactions), source))
}

// ReplaceHandler stores the request body as the cached transaction list.
// PUT /v1/transactions
func (h *TransactionHandler) ReplaceHandler(c *gin.Context) {
	var req dto.ReplaceTransactionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	transactions := req.ToDomain()
	if err := h.transactionUseCase.Store(c.Request.Context(), transactions); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapTransactionsToListResponse(transactions, len(transactions), bankingDomain.SourceCache)
	c.JSON(http.StatusOK, response)
}

// DeleteAllHandler removes the cached transaction list.
// DELETE /v1/transactions
func (h *TransactionHandler) DeleteAllHandler(c *gin.Context) {
	if err := h.transactionUseCase.Clear(c.Request.Context()); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateHandler appends a transaction to the cached list.
// POST /v1/transactions
func (h *TransactionHandler) CreateHandler(c *gin.Context) {
	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	added, err := h.transactionUseCase.Add(c.Request.Context(), req.ToDomain())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapTransactionToResponse(added))
}

// UpdateHandler applies a partial update to the first transaction with the given id.
// PATCH /v1/transactions/:id
func (h *TransactionHandler) UpdateHandler(c *gin.Context) {
	var req dto.TransactionUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	if err := h.transactionUseCase.Update(c.Request.Context(), c.Param("id"), req.ToDomain()); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteHandler removes the first transaction with the given id.
// DELETE /v1/transactions/:id
func (h *TransactionHandler) DeleteHandler(c *gin.Context) {
	if err := h.transactionUseCase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.Status(http.StatusNoContent)
}

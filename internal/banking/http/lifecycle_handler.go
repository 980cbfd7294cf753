package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/bankvault/internal/banking/http/dto"
	"github.com/allisson/bankvault/internal/banking/seed"
	bankingUseCase "github.com/allisson/bankvault/internal/banking/usecase"
	"github.com/allisson/bankvault/internal/httputil"
)

// LifecycleHandler handles HTTP requests that seed, inspect and reset the cache.
type LifecycleHandler struct {
	lifecycleUseCase bankingUseCase.LifecycleUseCase
	seed             seed.Data
	logger           *slog.Logger
}

// NewLifecycleHandler creates a new lifecycle handler.
func NewLifecycleHandler(
	lifecycleUseCase bankingUseCase.LifecycleUseCase,
	seedData seed.Data,
	logger *slog.Logger,
) *LifecycleHandler {
	return &LifecycleHandler{
		lifecycleUseCase: lifecycleUseCase,
		seed:             seedData,
		logger:           logger,
	}
}

// BootstrapHandler seeds the profile and the transaction list where no valid record
// is cached.
// POST /v1/lifecycle/bootstrap
func (h *LifecycleHandler) BootstrapHandler(c *gin.Context) {
	ctx := c.Request.Context()

	profileSeeded, err := h.lifecycleUseCase.InitializeWithDefaults(ctx, h.seed.Profile)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	transactionsSeeded, err := h.lifecycleUseCase.InitializeWithDefaultTransactions(ctx, h.seed.Transactions)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.BootstrapResponse{
		ProfileSeeded:      profileSeeded,
		TransactionsSeeded: transactionsSeeded,
	})
}

// SecurityResetHandler deletes both containers and both device keys.
// POST /v1/lifecycle/security-reset
func (h *LifecycleHandler) SecurityResetHandler(c *gin.Context) {
	if err := h.lifecycleUseCase.SecurityReset(c.Request.Context()); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.Status(http.StatusNoContent)
}

// StatusHandler reports the key storage type, key readiness and which records are cached.
// GET /v1/lifecycle/status
func (h *LifecycleHandler) StatusHandler(c *gin.Context) {
	status, err := h.lifecycleUseCase.Status(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapStatusToResponse(status))
}

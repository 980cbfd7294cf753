// Package http provides HTTP handlers for setting and verifying the device PIN.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/bankvault/internal/auth/http/dto"
	authUseCase "github.com/allisson/bankvault/internal/auth/usecase"
	"github.com/allisson/bankvault/internal/httputil"
	customValidation "github.com/allisson/bankvault/internal/validation"
)

// PinHandler handles PIN requests. The PIN itself is never logged.
type PinHandler struct {
	pinUseCase authUseCase.PinUseCase
	logger     *slog.Logger
}

// NewPinHandler creates a new PIN handler.
func NewPinHandler(pinUseCase authUseCase.PinUseCase, logger *slog.Logger) *PinHandler {
	return &PinHandler{
		pinUseCase: pinUseCase,
		logger:     logger,
	}
}

// SetHandler sets or replaces the PIN and clears any lockout.
// POST /v1/pin
func (h *PinHandler) SetHandler(c *gin.Context) {
	req, ok := h.bindPin(c)
	if !ok {
		return
	}

	if err := h.pinUseCase.SetPin(c.Request.Context(), req.Pin); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.Status(http.StatusNoContent)
}

// VerifyHandler checks a PIN. Repeated failures lock verification (423).
// POST /v1/pin/verify
func (h *PinHandler) VerifyHandler(c *gin.Context) {
	req, ok := h.bindPin(c)
	if !ok {
		return
	}

	if err := h.pinUseCase.VerifyPin(c.Request.Context(), req.Pin); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.VerifyPinResponse{Verified: true})
}

// StatusHandler reports whether a PIN is configured.
// GET /v1/pin
func (h *PinHandler) StatusHandler(c *gin.Context) {
	has, err := h.pinUseCase.HasPin(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.PinStatusResponse{PinSet: has})
}

// DeleteHandler removes the PIN and its lockout state.
// DELETE /v1/pin
func (h *PinHandler) DeleteHandler(c *gin.Context) {
	if err := h.pinUseCase.ClearPin(c.Request.Context()); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PinHandler) bindPin(c *gin.Context) (*dto.PinRequest, bool) {
	var req dto.PinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return nil, false
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return nil, false
	}
	return &req, true
}

// Package http provides HTTP handlers for the cached banking profile, the cached
// transaction list and the cache lifecycle. Reads of an empty cache answer with the
// bundled seed data and mark the response with source "seed".
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
	cryptoService "github.com/allisson/bankvault/internal/crypto/service"
	"github.com/allisson/bankvault/internal/httputil"
	customValidation "github.com/allisson/bankvault/internal/validation"
)

// ProfileHandler handles HTTP requests for the cached banking profile.
type ProfileHandler struct {
	profileUseCase bankingUseCase.ProfileUseCase
	seed           seed.Data
	logger         *slog.Logger
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(
	profileUseCase bankingUseCase.ProfileUseCase,
	seedData seed.Data,
	logger *slog.Logger,
) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
		seed:           seedData,
		logger:         logger,
	}
}

// GetHandler returns the cached profile, or the seed profile when none is cached.
// GET /v1/profile
func (h *ProfileHandler) GetHandler(c *gin.Context) {
	profile, err := h.profileUseCase.Get(c.Request.Context())
	if errors.Is(err, bankingDomain.ErrProfileNotFound) {
		c.JSON(http.StatusOK, dto.MapProfileToResponse(h.seed.Profile, bankingDomain.SourceSeed))
		return
	}
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapProfileToResponse(profile, bankingDomain.SourceCache))
}

// ReplaceHandler stores the request body as the cached profile.
// PUT /v1/profile
func (h *ProfileHandler) ReplaceHandler(c *gin.Context) {
	req, ok := h.bindProfile(c)
	if !ok {
		return
	}

	profile := req.ToDomain()
	if err := h.profileUseCase.Store(c.Request.Context(), profile); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapProfileToResponse(profile, bankingDomain.SourceCache))
}

// UpdateHandler merges the request body onto the cached profile.
// PATCH /v1/profile
func (h *ProfileHandler) UpdateHandler(c *gin.Context) {
	req, ok := h.bindProfile(c)
	if !ok {
		return
	}

	merged, err := h.profileUseCase.Update(c.Request.Context(), req.ToDomain())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapProfileToResponse(merged, bankingDomain.SourceCache))
}

// DeleteHandler removes the cached profile.
// DELETE /v1/profile
func (h *ProfileHandler) DeleteHandler(c *gin.Context) {
	if err := h.profileUseCase.Clear(c.Request.Context()); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.Status(http.StatusNoContent)
}

// MaskedAccountNumberHandler returns the cached account number masked for display,
// falling back to the seed account number.
// GET /v1/profile/masked-account-number
func (h *ProfileHandler) MaskedAccountNumberHandler(c *gin.Context) {
	masked, err := h.profileUseCase.MaskedAccountNumber(c.Request.Context())
	if errors.Is(err, bankingDomain.ErrProfileNotFound) {
		var seedNumber string
		if h.seed.Profile.AccountNumber != nil {
			seedNumber = *h.seed.Profile.AccountNumber
		}
		c.JSON(http.StatusOK, dto.MaskedAccountNumberResponse{
			MaskedAccountNumber: cryptoService.FormatAccountNumber(seedNumber),
			Source:              bankingDomain.SourceSeed,
		})
		return
	}
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MaskedAccountNumberResponse{
		MaskedAccountNumber: masked,
		Source:              bankingDomain.SourceCache,
	})
}

func (h *ProfileHandler) bindProfile(c *gin.Context) (*dto.ProfileRequest, bool) {
	var req dto.ProfileRequest
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

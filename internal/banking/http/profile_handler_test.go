package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bankingDomain "github.com/allisson/bankvault/internal/banking/domain"
	"github.com/allisson/bankvault/internal/banking/http/dto"
	"github.com/allisson/bankvault/internal/banking/usecase/mocks"
	"github.com/allisson/bankvault/internal/httputil"
)

func setupProfileHandler(t *testing.T) (*ProfileHandler, *mocks.MockProfileUseCase) {
	t.Helper()
	useCase := &mocks.MockProfileUseCase{}
	t.Cleanup(func() { useCase.AssertExpectations(t) })
	return NewProfileHandler(useCase, testSeed(t), testLogger()), useCase
}

func TestProfileHandler_GetHandler(t *testing.T) {
	t.Run("Success_Cached", func(t *testing.T) {
		handler, useCase := setupProfileHandler(t)
		profile := bankingDomain.Profile{UserName: strPtr("Alex"), AccountBalance: floatPtr(5.5)}
		useCase.On("Get", mock.Anything).Return(profile, nil).Once()

		c, w := createTestContext(http.MethodGet, "/v1/profile", nil)
		handler.GetHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"userName":"Alex","accountBalance":5.5,"source":"cache"}`, w.Body.String())
	})

	t.Run("Success_SeedFallback", func(t *testing.T) {
		handler, useCase := setupProfileHandler(t)
		useCase.On("Get", mock.Anything).Return(bankingDomain.Profile{}, bankingDomain.ErrProfileNotFound).Once()

		c, w := createTestContext(http.MethodGet, "/v1/profile", nil)
		handler.GetHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var response dto.ProfileResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, bankingDomain.SourceSeed, response.Source)
		assert.Equal(t, "Seed User", *response.UserName)
	})

	t.Run("Error_StorageFailure", func(t *testing.T) {
		handler, useCase := setupProfileHandler(t)
		useCase.On("Get", mock.Anything).Return(bankingDomain.Profile{}, errors.New("disk failure")).Once()

		c, w := createTestContext(http.MethodGet, "/v1/profile", nil)
		handler.GetHandler(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestProfileHandler_ReplaceHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, useCase := setupProfileHandler(t)
		expected := bankingDomain.Profile{UserName: strPtr("Alex"), AccountNumber: strPtr("98765")}
		useCase.On("Store", mock.Anything, expected).Return(nil).Once()

		c, w := createTestContext(http.MethodPut, "/v1/profile", dto.ProfileRequest{
			UserName:      strPtr("Alex"),
			AccountNumber: strPtr("98765"),
		})
		handler.ReplaceHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"userName":"Alex","accountNumber":"98765","source":"cache"}`, w.Body.String())
	})

	t.Run("Error_InvalidJSON", func(t *testing.T) {
		handler, _ := setupProfileHandler(t)

		c, w := createTestContext(http.MethodPut, "/v1/profile", nil)
		handler.ReplaceHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_InvalidAccountNumber", func(t *testing.T) {
		handler, _ := setupProfileHandler(t)

		c, w := createTestContext(http.MethodPut, "/v1/profile", dto.ProfileRequest{
			AccountNumber: strPtr(" 1234"),
		})
		handler.ReplaceHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		var response httputil.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "validation_error", response.Error)
	})
}

func TestProfileHandler_UpdateHandler(t *testing.T) {
	handler, useCase := setupProfileHandler(t)
	partial := bankingDomain.Profile{AccountBalance: floatPtr(42)}
	merged := bankingDomain.Profile{UserName: strPtr("Alex"), AccountBalance: floatPtr(42)}
	useCase.On("Update", mock.Anything, partial).Return(merged, nil).Once()

	c, w := createTestContext(http.MethodPatch, "/v1/profile", dto.ProfileRequest{AccountBalance: floatPtr(42)})
	handler.UpdateHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userName":"Alex","accountBalance":42,"source":"cache"}`, w.Body.String())
}

func TestProfileHandler_DeleteHandler(t *testing.T) {
	handler, useCase := setupProfileHandler(t)
	useCase.On("Clear", mock.Anything).Return(nil).Once()

	c, w := createTestContext(http.MethodDelete, "/v1/profile", nil)
	handler.DeleteHandler(c)

	assert.Equal(t, http.StatusNoContent, c.Writer.Status())
	assert.Empty(t, w.Body.String())
}

func TestProfileHandler_MaskedAccountNumberHandler(t *testing.T) {
	t.Run("Success_Cached", func(t *testing.T) {
		handler, useCase := setupProfileHandler(t)
		useCase.On("MaskedAccountNumber", mock.Anything).Return("98****3210", nil).Once()

		c, w := createTestContext(http.MethodGet, "/v1/profile/masked-account-number", nil)
		handler.MaskedAccountNumberHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"maskedAccountNumber":"98****3210","source":"cache"}`, w.Body.String())
	})

	t.Run("Success_SeedFallback", func(t *testing.T) {
		handler, useCase := setupProfileHandler(t)
		useCase.On("MaskedAccountNumber", mock.Anything).Return("", bankingDomain.ErrProfileNotFound).Once()

		c, w := createTestContext(http.MethodGet, "/v1/profile/masked-account-number", nil)
		handler.MaskedAccountNumberHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"maskedAccountNumber":"11**********4444","source":"seed"}`, w.Body.String())
	})
}

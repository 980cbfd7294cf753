// Package dto provides data transfer objects for the PIN endpoints.
package dto

import (
	validation "github.com/jellydator/validation"
)

// PinRequest carries a PIN to set or verify. Format rules are enforced by the use case.
type PinRequest struct {
	Pin string `json:"pin"`
}

func (r *PinRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Pin, validation.Required),
	)
}

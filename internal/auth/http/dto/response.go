package dto

// PinStatusResponse reports whether a PIN has been configured.
type PinStatusResponse struct {
	PinSet bool `json:"pin_set"`
}

// VerifyPinResponse is returned on a successful verification.
type VerifyPinResponse struct {
	Verified bool `json:"verified"`
}

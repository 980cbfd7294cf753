// Package domain defines the device PIN and the failed-attempt state used to lock it.
package domain

const (
	// PinHashKey is the key store entry holding the Argon2id hash of the PIN.
	PinHashKey = "BANKING_PIN_HASH"

	// PinAttemptsKey is the key store entry holding the failed-attempt state.
	PinAttemptsKey = "BANKING_PIN_ATTEMPTS"

	MinPinLength = 4
	MaxPinLength = 6
)

package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
)

// HMACSHA256 implements MAC with HMAC-SHA256.
type HMACSHA256 struct{}

// NewHMACSHA256 creates a new HMAC-SHA256 MAC.
func NewHMACSHA256() *HMACSHA256 {
	return &HMACSHA256{}
}

// Sum returns the 32-byte HMAC-SHA256 of data under key.
func (m *HMACSHA256) Sum(key, data []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(data)
	return h.Sum(nil)
}

// ConstantTimeCompare reports whether a and b are equal. The running time depends only
// on the lengths of the inputs, never on their contents.
func ConstantTimeCompare(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

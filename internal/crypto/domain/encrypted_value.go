package domain

// EncryptedValue is the encrypt-then-MAC output for a single plaintext string.
//
// EncryptedData is the base64 (standard encoding) AES-256-CBC ciphertext, IV is the
// hex-encoded 16-byte IV and HMAC is the hex-encoded HMAC-SHA256 computed over the
// string EncryptedData || IV with the integrity key.
type EncryptedValue struct {
	EncryptedData string `json:"encryptedData"`
	IV            string `json:"iv"`
	HMAC          string `json:"hmac"`
}

// IsZero reports whether no field of the value is set.
func (v EncryptedValue) IsZero() bool {
	return v.EncryptedData == "" && v.IV == "" && v.HMAC == ""
}

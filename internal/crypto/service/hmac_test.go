package service

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHMACSHA256_Sum(t *testing.T) {
	// RFC 4231 test case 2.
	mac := NewHMACSHA256()
	sum := mac.Sum([]byte("Jefe"), []byte("what do ya want for nothing?"))

	assert.Equal(t, "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843", hex.EncodeToString(sum))
}

func TestConstantTimeCompare(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{name: "equal", a: "abc", b: "abc", want: true},
		{name: "both empty", a: "", b: "", want: true},
		{name: "different content", a: "abc", b: "abd", want: false},
		{name: "different length", a: "abc", b: "abcd", want: false},
		{name: "empty and non-empty", a: "", b: "a", want: false},
		{name: "case differs", a: "ABC", b: "abc", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConstantTimeCompare(tt.a, tt.b))
		})
	}
}

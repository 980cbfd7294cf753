package service

import "strings"

// FormatAccountNumber masks an account number for display: the first two characters,
// one '*' per character beyond six, then the last four. Values of four characters or
// fewer are returned unchanged. A five-character value has overlapping prefix and
// suffix, so its second character appears twice.
func FormatAccountNumber(accountNumber string) string {
	runes := []rune(accountNumber)
	if len(runes) <= 4 {
		return accountNumber
	}
	hidden := max(0, len(runes)-6)
	return string(runes[:2]) + strings.Repeat("*", hidden) + string(runes[len(runes)-4:])
}

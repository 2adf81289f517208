package forms

import "strings"

// MaskEmail hides the middle of the local part of an address:
// "johndoe@example.com" becomes "j*****e@example.com". Local parts of two
// runes or fewer, and strings without '@', are returned unchanged.
func MaskEmail(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok {
		return email
	}
	runes := []rune(local)
	if len(runes) <= 2 {
		return email
	}
	var b strings.Builder
	b.Grow(len(email))
	b.WriteRune(runes[0])
	b.WriteString(strings.Repeat("*", len(runes)-2))
	b.WriteRune(runes[len(runes)-1])
	b.WriteByte('@')
	b.WriteString(domain)
	return b.String()
}

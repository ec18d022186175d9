package validators

import "strings"

// NormalizePhone reduz o telefone aos dígitos (prefixo internacional
// incluso), formato que o deep-link do WhatsApp espera
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func IsPhoneValid(phone string) bool {
	digits := NormalizePhone(phone)
	return len(digits) >= 8 && len(digits) <= 15
}

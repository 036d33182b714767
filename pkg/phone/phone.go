package phone

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion região assumida quando o número não traz código de país.
const DefaultRegion = "BR"

// Normalize valida e normaliza um telefone para o formato E.164 sem o "+"
// (somente dígitos), que é o formato persistido e usado como chave única.
func Normalize(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("telefone vazio")
	}
	// Números persistidos chegam como dígitos puros com código de país.
	if !strings.HasPrefix(s, "+") && allDigits(s) && len(s) > 10 {
		s = "+" + s
	}
	num, err := phonenumbers.Parse(s, DefaultRegion)
	if err != nil {
		return "", fmt.Errorf("telefone inválido: %w", err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("telefone inválido")
	}
	return strings.TrimPrefix(phonenumbers.Format(num, phonenumbers.E164), "+"), nil
}

// Valid informa se o telefone é aceitável sem devolver a forma normalizada.
func Valid(raw string) bool {
	_, err := Normalize(raw)
	return err == nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

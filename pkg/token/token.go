package token

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const digits = "0123456789"

// Service gera e valida o formato de tokens de recuperação de senha.
// O contrato é o formato (comprimento fixo, somente dígitos), não a fonte de entropia.
type Service struct {
	length int
}

// NewService constrói o serviço com o comprimento configurado (mínimo 4).
func NewService(length int) *Service {
	if length < 4 {
		length = 4
	}
	return &Service{length: length}
}

// Length devolve o comprimento configurado do token.
func (s *Service) Length() int {
	return s.length
}

// Generate produz um token numérico de comprimento fixo.
func (s *Service) Generate() (string, error) {
	buf := make([]byte, s.length)
	max := big.NewInt(int64(len(digits)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("gerar token: %w", err)
		}
		buf[i] = digits[n.Int64()]
	}
	return string(buf), nil
}

// ValidFormat verifica se o valor tem exatamente o comprimento configurado e só
// contém dígitos. É uma checagem de formato, independente de o token existir ou
// ainda estar ativo.
func (s *Service) ValidFormat(token string) bool {
	if len(token) != s.length {
		return false
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

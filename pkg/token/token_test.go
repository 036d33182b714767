package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caramelo-app/caramelo-api-sub001/pkg/token"
)

func TestGenerate_ComprimentoEFormato(t *testing.T) {
	svc := token.NewService(5)

	for i := 0; i < 50; i++ {
		tok, err := svc.Generate()
		require.NoError(t, err)
		assert.Len(t, tok, 5)
		assert.True(t, svc.ValidFormat(tok), "todo token gerado deve passar na checagem de formato")
	}
}

func TestNewService_ComprimentoMinimo(t *testing.T) {
	svc := token.NewService(0)
	assert.Equal(t, 4, svc.Length())
}

func TestValidFormat(t *testing.T) {
	svc := token.NewService(5)

	cases := []struct {
		name  string
		token string
		want  bool
	}{
		{"token válido", "12345", true},
		{"curto demais", "1234", false},
		{"longo demais", "123456", false},
		{"com letra", "12a45", false},
		{"vazio", "", false},
		{"com espaço", "12 45", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, svc.ValidFormat(tc.token))
		})
	}
}

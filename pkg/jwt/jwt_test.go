package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caramelo-app/caramelo-api-sub001/pkg/jwt"
)

const testSecret = "segredo-de-teste-para-unit-tests"

func TestGenerateParse_RoundTrip(t *testing.T) {
	tok, err := jwt.Generate(testSecret, "user-1", "client", "company-1", "caramelo-test", 60)
	require.NoError(t, err)

	claims, err := jwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "client", claims.Role)
	assert.Equal(t, "company-1", claims.CompanyID)
	assert.Equal(t, "caramelo-test", claims.Issuer)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := jwt.Generate(testSecret, "user-1", "consumer", "", "caramelo-test", -1)
	require.NoError(t, err)

	_, err = jwt.Parse(testSecret, tok)
	assert.Error(t, err, "token vencido deve ser rejeitado")
}

func TestParse_SecretIncorreto(t *testing.T) {
	tok, err := jwt.Generate(testSecret, "user-1", "consumer", "", "caramelo-test", 60)
	require.NoError(t, err)

	_, err = jwt.Parse("outro-segredo", tok)
	assert.Error(t, err, "assinatura de outro segredo deve ser rejeitada")
}

func TestParse_TokenAdulterado(t *testing.T) {
	tok, err := jwt.Generate(testSecret, "user-1", "consumer", "", "caramelo-test", 60)
	require.NoError(t, err)

	_, err = jwt.Parse(testSecret, tok+"x")
	assert.Error(t, err)
}

func TestGenerate_SecretVazio(t *testing.T) {
	_, err := jwt.Generate("", "user-1", "consumer", "", "caramelo-test", 60)
	assert.Error(t, err)
}

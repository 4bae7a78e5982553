package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scala-gestao/frota-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testName   = "Carlos Silva"
	testIssuer = "frota-api-test"
)

func TestGenerateParse_RoundTrip(t *testing.T) {
	token, err := jwt.Generate(testSecret, testUserID, testName, "admin", testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, name, role, err := jwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testName, name)
	assert.Equal(t, "admin", role)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.Generate(testSecret, testUserID, testName, "visitante", testIssuer, 60)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse("otro-secret", token)
	assert.Error(t, err, "un token firmado con otro secret debe rechazarse")
}

func TestParse_TokenExpirado(t *testing.T) {
	// Expiración negativa: el token nace vencido
	token, err := jwt.Generate(testSecret, testUserID, testName, "admin", testIssuer, -1)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse(testSecret, token)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", testUserID, testName, "admin", testIssuer, 60)
	assert.Error(t, err)
}

func TestParse_Basura(t *testing.T) {
	_, _, _, err := jwt.Parse(testSecret, "no-es-un-jwt")
	assert.Error(t, err)
}

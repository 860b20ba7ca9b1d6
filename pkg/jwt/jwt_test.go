package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/pkg/jwt"
)

const secret = "test-secret-key-for-unit-tests"

func TestGenerateParse_RoundTrip(t *testing.T) {
	token, err := jwt.Generate(secret, "sess-123", "catalogo-api", time.Hour)
	require.NoError(t, err)

	sid, err := jwt.Parse(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "sess-123", sid)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.Generate(secret, "sess-123", "catalogo-api", time.Hour)
	require.NoError(t, err)

	_, err = jwt.Parse("otro-secreto", token)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	token, err := jwt.Generate(secret, "sess-123", "catalogo-api", -time.Minute)
	require.NoError(t, err)

	_, err = jwt.Parse(secret, token)
	assert.Error(t, err)
}

func TestParse_TokenManipulado(t *testing.T) {
	token, err := jwt.Generate(secret, "sess-123", "catalogo-api", time.Hour)
	require.NoError(t, err)

	_, err = jwt.Parse(secret, token+"x")
	assert.Error(t, err)

	_, err = jwt.Parse(secret, "no-es-un-jwt")
	assert.Error(t, err)
}

func TestGenerate_SinSecreto(t *testing.T) {
	_, err := jwt.Generate("", "sess-123", "catalogo-api", time.Hour)
	assert.Error(t, err)

	_, err = jwt.Generate(secret, "", "catalogo-api", time.Hour)
	assert.Error(t, err)
}

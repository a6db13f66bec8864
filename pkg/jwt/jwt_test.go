package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/parser-config-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "ops-bot", "org-1", pkgjwt.RoleEditor, "parser-config-api", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	sub, org, role, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "ops-bot", sub)
	assert.Equal(t, "org-1", org)
	assert.Equal(t, pkgjwt.RoleEditor, role)
}

func TestParse_Expirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "ops-bot", "org-1", pkgjwt.RoleAdmin, "x", -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "ops-bot", "org-1", pkgjwt.RoleAdmin, "x", 60)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secret", tok)
	assert.Error(t, err)
}

func TestSecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", "a", "b", "admin", "x", 1)
	assert.Error(t, err)
	_, _, _, err = pkgjwt.Parse("", "abc")
	assert.Error(t, err)
}

func TestValidRole(t *testing.T) {
	assert.True(t, pkgjwt.ValidRole("admin"))
	assert.True(t, pkgjwt.ValidRole("viewer"))
	assert.False(t, pkgjwt.ValidRole("root"))
}

package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Escenario completo: registro 201 con userId numérico, login correcto 200 con
// el mismo userId, login con password incorrecto 401 (nunca 500).
func TestRegisterYLogin_Escenario(t *testing.T) {
	env := buildTestApp(t)

	resp := doJSON(t, env.app, http.MethodPost, "/register", map[string]any{
		"nombre": "Ana", "email": "a@x.com", "password": "secret",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	userID, ok := body["userId"].(float64)
	require.True(t, ok, "la respuesta debe incluir userId numérico")
	require.Greater(t, userID, float64(0))

	resp = doJSON(t, env.app, http.MethodPost, "/login", map[string]any{
		"email": "a@x.com", "password": "secret",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, userID, body["userId"])
	assert.Equal(t, "Ana", body["nombre"])

	resp = doJSON(t, env.app, http.MethodPost, "/login", map[string]any{
		"email": "a@x.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// El registro con un email ya usado responde 409 y no crea fila duplicada.
func TestRegister_EmailDuplicado_Conflict(t *testing.T) {
	env := buildTestApp(t)

	resp := doJSON(t, env.app, http.MethodPost, "/register", map[string]any{
		"nombre": "Ana", "email": "a@x.com", "password": "secret",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, env.app, http.MethodPost, "/register", map[string]any{
		"nombre": "Otra", "email": "a@x.com", "password": "otro",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	assert.Len(t, env.users.users, 1)
}

// Un registro sin campos obligatorios enumera los faltantes en el mensaje.
func TestRegister_CamposFaltantes(t *testing.T) {
	env := buildTestApp(t)

	resp := doJSON(t, env.app, http.MethodPost, "/register", map[string]any{
		"nombre": "Ana",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Contains(t, body["message"], "email")
	assert.Contains(t, body["message"], "password")
	assert.NotContains(t, body["message"], "nombre")
}

func TestLogin_EmailInexistente_Unauthorized(t *testing.T) {
	env := buildTestApp(t)

	resp := doJSON(t, env.app, http.MethodPost, "/login", map[string]any{
		"email": "nadie@x.com", "password": "secret",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

// El registro nunca devuelve el password ni su hash.
func TestRegister_NoExponePassword(t *testing.T) {
	env := buildTestApp(t)

	resp := doJSON(t, env.app, http.MethodPost, "/register", map[string]any{
		"nombre": "Ana", "email": "a@x.com", "password": "secret",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	usuario, ok := body["usuario"].(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, usuario, "password")
}

package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/cmartinr/reservasalas/internal/server/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthRequired_MissingHeader(t *testing.T) {
	s, _ := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/reservas",
		map[string]string{"fecha": "2024-01-15", "hora": "10:00", "sala": "Sala A"}, nil)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Acceso denegado", decodeBody(t, w)["error"])
}

func TestAuthRequired_InvalidToken(t *testing.T) {
	s, _ := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/reservas",
		map[string]string{"fecha": "2024-01-15", "hora": "10:00", "sala": "Sala A"},
		map[string]string{"Authorization": "Bearer invalid-token-here"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Token inválido", decodeBody(t, w)["error"])
}

// Expired tokens get the same rejection as forged ones.
func TestAuthRequired_ExpiredToken(t *testing.T) {
	s, _ := newTestServer(t)

	expired, err := auth.GenerateToken("u1", []byte(testSecret), -1*time.Minute)
	require.NoError(t, err)

	w := doJSON(t, s, http.MethodPost, "/api/reservas",
		map[string]string{"fecha": "2024-01-15", "hora": "10:00", "sala": "Sala A"},
		map[string]string{"Authorization": "Bearer " + expired})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Token inválido", decodeBody(t, w)["error"])
}

func TestAuthRequired_WrongSecret(t *testing.T) {
	s, _ := newTestServer(t)

	forged, err := auth.GenerateToken("u1", []byte("another-secret"), time.Hour)
	require.NoError(t, err)

	w := doJSON(t, s, http.MethodPost, "/api/reservas",
		map[string]string{"fecha": "2024-01-15", "hora": "10:00", "sala": "Sala A"},
		map[string]string{"Authorization": forged})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Token inválido", decodeBody(t, w)["error"])
}

// The scheme prefix is optional: a bare token must work too.
func TestAuthRequired_BareTokenAccepted(t *testing.T) {
	s, _ := newTestServer(t)
	token := registerAndLogin(t, s, "bare@test.com", "password123")

	w := doJSON(t, s, http.MethodPost, "/api/reservas",
		map[string]string{"fecha": "2024-01-15", "hora": "10:00", "sala": "Sala A"},
		map[string]string{"Authorization": token})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Reserva creada", decodeBody(t, w)["msg"])
}

func TestAuthRequired_BearerTokenAccepted(t *testing.T) {
	s, _ := newTestServer(t)
	token := registerAndLogin(t, s, "bearer@test.com", "password123")

	w := doJSON(t, s, http.MethodPost, "/api/reservas",
		map[string]string{"fecha": "2024-01-15", "hora": "10:00", "sala": "Sala A"},
		map[string]string{"Authorization": "Bearer " + token})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Reserva creada", decodeBody(t, w)["msg"])
}

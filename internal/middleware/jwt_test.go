package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jockyhq/booking-api/internal/utils"
)

func runJWT(t *testing.T, secret, header string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	require.NoError(t, JWTAuth(secret)(next)(c))
	return rec, c
}

func TestJWTAuthRoundtrip(t *testing.T) {
	tok, err := utils.NewAuthToken("test-secret", 42, "dj@example.com", "artist", 7)
	require.NoError(t, err)

	rec, c := runJWT(t, "test-secret", "Bearer "+tok.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
	// Numeric JSON claims decode as float64.
	assert.Equal(t, float64(42), c.Get("user_id"))
	assert.Equal(t, "dj@example.com", c.Get("email"))
	assert.Equal(t, "artist", c.Get("role"))
}

func TestJWTAuthWrongSecret(t *testing.T) {
	tok, err := utils.NewAuthToken("other-secret", 42, "dj@example.com", "artist", 7)
	require.NoError(t, err)

	rec, _ := runJWT(t, "test-secret", "Bearer "+tok.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid token")
}

func TestJWTAuthMissingHeader(t *testing.T) {
	rec, _ := runJWT(t, "test-secret", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing bearer token")
}

func TestRequireRole(t *testing.T) {
	e := echo.New()
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	mw := RequireRole("venue")

	req := httptest.NewRequest(http.MethodPost, "/api/events", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("role", "venue")
	require.NoError(t, mw(next)(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.Set("role", "artist")
	require.NoError(t, mw(next)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

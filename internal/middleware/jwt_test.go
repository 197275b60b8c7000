package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilnabucco/restaurant-reservation/internal/utils"
)

const testSecret = "test-secret"

func doRequest(t *testing.T, mw []echo.MiddlewareFunc, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	h := func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"role": c.Get(CtxRole)})
	}
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, h(c))
	return rec
}

func TestJWTAuthMissingToken(t *testing.T) {
	rec := doRequest(t, []echo.MiddlewareFunc{JWTAuth(testSecret)}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthBadToken(t *testing.T) {
	rec := doRequest(t, []echo.MiddlewareFunc{JWTAuth(testSecret)}, "Bearer nonsense")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthWrongSecret(t *testing.T) {
	tok, err := utils.NewAccessToken("another-secret", 1, "a@b.fr", "admin", 15)
	require.NoError(t, err)
	rec := doRequest(t, []echo.MiddlewareFunc{JWTAuth(testSecret)}, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthValidTokenInjectsPrincipal(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 7, "chef@example.com", "admin", 15)
	require.NoError(t, err)
	rec := doRequest(t, []echo.MiddlewareFunc{JWTAuth(testSecret)}, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"role":"admin"`)
}

func TestRequireRoleForbidsOtherRoles(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 7, "chef@example.com", "admin", 15)
	require.NoError(t, err)

	chain := []echo.MiddlewareFunc{JWTAuth(testSecret), RequireRole("superadmin")}
	rec := doRequest(t, chain, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoleAllowsListedRole(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 7, "chef@example.com", "superadmin", 15)
	require.NoError(t, err)

	chain := []echo.MiddlewareFunc{JWTAuth(testSecret), RequireRole("admin", "superadmin")}
	rec := doRequest(t, chain, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleWithoutAuthContext(t *testing.T) {
	rec := doRequest(t, []echo.MiddlewareFunc{RequireRole("admin")}, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

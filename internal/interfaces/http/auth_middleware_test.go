package http_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	apphttp "github.com/jhoicas/backoffice-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/backoffice-api/pkg/jwt"
)

// buildProtectedApp construye una app Fiber mínima con:
//   - AuthMiddleware para resolver la identidad del caller desde el JWT
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildProtectedApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":       true,
				"role":     apphttp.GetRole(c),
				"username": apphttp.GetUsername(c),
			})
		},
	)
	return app
}

// Caso 1: caller con ROLE_ADMIN en ruta de admin → 200 y locals cargados.
func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	app := buildProtectedApp(entity.RoleAdmin)
	resp := doRequest(t, app, http.MethodGet, "/protected", "", tokenForRole(t, entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin debe poder acceder a ruta restringida a admin")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, entity.RoleAdmin, body["role"])
	assert.Equal(t, "alice", body["username"])
}

// Caso 2: rol distinto al requerido → 403 con el mensaje fijo.
func TestRequireRole_NoAdminBloqueado(t *testing.T) {
	app := buildProtectedApp(entity.RoleAdmin)
	resp := doRequest(t, app, http.MethodGet, "/protected", "", tokenForRole(t, entity.RoleUser))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Access forbidden", body["message"],
		"el 403 debe llevar el mensaje fijo de la política de acceso")
}

// Caso 3: sin header Authorization → 401 (rechazo antes del chequeo de rol).
func TestAuthMiddleware_SinToken(t *testing.T) {
	app := buildProtectedApp(entity.RoleAdmin)
	resp := doRequest(t, app, http.MethodGet, "/protected", "", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 4: header malformado → 401.
func TestAuthMiddleware_HeaderMalformado(t *testing.T) {
	app := buildProtectedApp(entity.RoleAdmin)
	resp := doRequest(t, app, http.MethodGet, "/protected", "", "Basic abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: token con firma de otro secret → 401.
func TestAuthMiddleware_FirmaInvalida(t *testing.T) {
	tok, err := pkgjwt.Generate("otro-secret", 1, "alice", entity.RoleAdmin, testIssuer, testExpMin)
	require.NoError(t, err)

	app := buildProtectedApp(entity.RoleAdmin)
	resp := doRequest(t, app, http.MethodGet, "/protected", "", "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 6: token expirado → 401.
func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, 1, "alice", entity.RoleAdmin, testIssuer, -5)
	require.NoError(t, err)

	app := buildProtectedApp(entity.RoleAdmin)
	resp := doRequest(t, app, http.MethodGet, "/protected", "", "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

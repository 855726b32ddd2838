package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wms-sync-agent/internal/domain"
	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
	apphttp "github.com/jhoicas/wms-sync-agent/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fixedSession devuelve siempre la misma sesión (o error).
type fixedSession struct {
	sess *entity.Session
	err  error
}

func (f fixedSession) Session(context.Context) (*entity.Session, error) { return f.sess, f.err }

func sessionFor(role string) fixedSession {
	return fixedSession{sess: &entity.Session{UserID: 7, Name: "Prueba", Email: "prueba@wms.co", Role: role}}
}

// buildTestApp aplicación mínima con AuthMiddleware + RequireRole y un handler dummy.
func buildTestApp(src apphttp.SessionSource, allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(src),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"ok":      true,
				"user_id": apphttp.GetUserID(c),
				"role":    apphttp.GetRole(c),
				"offline": apphttp.IsOffline(c),
			})
		},
	)
	return app
}

func doRequest(t *testing.T, app *fiber.App) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil), -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	resp := doRequest(t, buildTestApp(sessionFor(entity.RoleAdmin), entity.RoleAdmin))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, entity.RoleAdmin, body["role"])
	assert.Equal(t, float64(7), body["user_id"])
}

func TestRequireRole_SupervisorAccedeRutaMultiRol(t *testing.T) {
	resp := doRequest(t, buildTestApp(sessionFor(entity.RoleSupervisor), entity.RoleAdmin, entity.RoleSupervisor))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_OperadorBloqueadoEnRutaAdmin(t *testing.T) {
	resp := doRequest(t, buildTestApp(sessionFor(entity.RoleOperator), entity.RoleAdmin))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestRequireRole_SesionSinRol_Retorna401(t *testing.T) {
	resp := doRequest(t, buildTestApp(sessionFor(""), entity.RoleAdmin))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE")
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinSesion_Retorna401(t *testing.T) {
	resp := doRequest(t, buildTestApp(fixedSession{err: domain.ErrUnauthorized}, entity.RoleAdmin))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_SESSION")
}

func TestAuthMiddleware_SesionExpirada_Retorna401(t *testing.T) {
	resp := doRequest(t, buildTestApp(fixedSession{err: domain.ErrSessionExpired}, entity.RoleAdmin))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "SESSION_EXPIRED")
}

func TestAuthMiddleware_SesionSinConexion(t *testing.T) {
	src := sessionFor(entity.RoleOperator)
	src.sess.Offline = true
	resp := doRequest(t, buildTestApp(src, entity.RoleOperator))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["offline"])
}

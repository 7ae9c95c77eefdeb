package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corsairpublic-create/sample-buddy-log/internal/application/inventory"
	"github.com/corsairpublic-create/sample-buddy-log/internal/domain/entity"
	"github.com/corsairpublic-create/sample-buddy-log/internal/infrastructure/auth"
	"github.com/corsairpublic-create/sample-buddy-log/internal/infrastructure/pdf"
	"github.com/corsairpublic-create/sample-buddy-log/internal/infrastructure/system"
	apphttp "github.com/corsairpublic-create/sample-buddy-log/internal/interfaces/http"
	"github.com/corsairpublic-create/sample-buddy-log/pkg/config"
	"github.com/corsairpublic-create/sample-buddy-log/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testJWTSecret = "test-secret-key-for-unit-tests"

// memSnapshots guarda el snapshot en memoria, sin disco.
type memSnapshots struct {
	state *entity.AppState
}

func (m *memSnapshots) Load() (*entity.AppState, error)        { return m.state, nil }
func (m *memSnapshots) Save(state *entity.AppState) error      { m.state = state; return nil }
func (m *memSnapshots) Export(*entity.AppState, string) error  { return nil }
func (m *memSnapshots) Import(string) (*entity.AppState, error) {
	return nil, nil
}

// buildTestApp arma la aplicación completa con dependencias reales salvo la
// persistencia.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store, err := inventory.New(&memSnapshots{}, auth.New(), system.Clock{}, system.UUIDGenerator{}, logger.Nop(), entity.PrinterSettings{DefaultWidth: 4, DefaultHeight: 2})
	require.NoError(t, err)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Store:    store,
		Workflow: inventory.NewWorkflow(store),
		PDF:      pdf.NewGenerator(),
		JWT:      config.JWTConfig{Secret: testJWTSecret, Expiration: 60, Issuer: "test"},
	})
	return app
}

// doJSON lanza una petición con cuerpo JSON y token opcional.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// login abre sesión y devuelve el token.
func login(t *testing.T, app *fiber.App, operator string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{"operator": operator})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Token    string `json:"token"`
		Operator string `json:"operator"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.Token)
	assert.Equal(t, operator, out.Operator)
	return out.Token
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_EmiteTokenYAbreSesion(t *testing.T) {
	app := buildTestApp(t)
	token := login(t, app, "mario")

	resp := doJSON(t, app, http.MethodGet, "/api/state", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var state entity.AppState
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&state))
	assert.Equal(t, "mario", state.CurrentOperator)
}

func TestLogin_SinOperador_Retorna400(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{"operator": ""})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRutasProtegidas_SinToken_Retorna401(t *testing.T) {
	app := buildTestApp(t)
	for _, path := range []string{"/api/state", "/api/logs", "/api/scan/status"} {
		resp := doJSON(t, app, http.MethodGet, path, "", nil)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}
}

func TestRutasProtegidas_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/state", "token.invalido.aqui", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Ciclo completo por HTTP: scaffale, cassetta, campione.
func TestScan_CicloCompleto(t *testing.T) {
	app := buildTestApp(t)
	token := login(t, app, "mario")

	scan := func(code string) map[string]interface{} {
		resp := doJSON(t, app, http.MethodPost, "/api/scan", token, fiber.Map{"code": code})
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode, code)
		var out map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		return out
	}

	out := scan("SCAFFALE-01")
	assert.Contains(t, out["message"], "Nuovo scaffale creato")

	out = scan("CASSETTA-01")
	assert.Contains(t, out["message"], "Nuova cassetta creata")

	out = scan("2501234-001")
	assert.Contains(t, out["message"], "Campione archiviato")

	wf := out["workflow"].(map[string]interface{})
	assert.Equal(t, "shelf", wf["step"], "dopo il campione il ciclo riparte")
}

func TestScan_CassettaSenzaScaffale_Retorna409(t *testing.T) {
	app := buildTestApp(t)
	token := login(t, app, "mario")

	resp := doJSON(t, app, http.MethodPost, "/api/scan", token, fiber.Map{"code": "CASSETTA-01"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestCreateShelf_Duplicado_Retorna409(t *testing.T) {
	app := buildTestApp(t)
	token := login(t, app, "mario")

	resp := doJSON(t, app, http.MethodPost, "/api/shelves", token, fiber.Map{"code": "SC-01"})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/shelves", token, fiber.Map{"code": "SC-01"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRenameShelf_Inexistente_Retorna404(t *testing.T) {
	app := buildTestApp(t)
	token := login(t, app, "mario")

	resp := doJSON(t, app, http.MethodPut, "/api/shelves/no-existe/rename", token, fiber.Map{"newCode": "SC-99"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestBulkDelete_PasswordErrata_Retorna403(t *testing.T) {
	app := buildTestApp(t)
	token := login(t, app, "mario")

	resp := doJSON(t, app, http.MethodPost, "/api/shelves", token, fiber.Map{"code": "SC-01"})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var shelfID string
	{
		resp := doJSON(t, app, http.MethodGet, "/api/state", token, nil)
		defer resp.Body.Close()
		var state entity.AppState
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&state))
		require.Len(t, state.Shelves, 1)
		shelfID = state.Shelves[0].ID
	}

	resp = doJSON(t, app, http.MethodPost, "/api/bulk/delete", token, fiber.Map{
		"shelves":  []string{shelfID},
		"password": "sbagliata",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestBulkDelete_PasswordPredefinita_Elimina(t *testing.T) {
	app := buildTestApp(t)
	token := login(t, app, "mario")

	resp := doJSON(t, app, http.MethodPost, "/api/shelves", token, fiber.Map{"code": "SC-01"})
	resp.Body.Close()

	var shelfID string
	{
		resp := doJSON(t, app, http.MethodGet, "/api/state", token, nil)
		var state entity.AppState
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&state))
		resp.Body.Close()
		shelfID = state.Shelves[0].ID
	}

	resp = doJSON(t, app, http.MethodPost, "/api/bulk/delete", token, fiber.Map{
		"shelves":  []string{shelfID},
		"password": inventory.DefaultDeletePassword,
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSettingsPrinter_DimensioniNonValide_Retorna400(t *testing.T) {
	app := buildTestApp(t)
	token := login(t, app, "mario")

	resp := doJSON(t, app, http.MethodPut, "/api/settings/printer", token, fiber.Map{
		"defaultWidth":  0,
		"defaultHeight": 2,
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPrintLabels_DevuelvePDF(t *testing.T) {
	app := buildTestApp(t)
	token := login(t, app, "mario")

	resp := doJSON(t, app, http.MethodPost, "/api/print/labels", token, fiber.Map{
		"items": []fiber.Map{{"code": "SC-01", "kind": "shelf"}},
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}

func TestHealth_Publico(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/health", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

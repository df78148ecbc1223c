package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-crm-api/internal/application/auth"
	"github.com/jhoicas/pos-crm-api/internal/application/dto"
	"github.com/jhoicas/pos-crm-api/internal/application/usecase"
	"github.com/jhoicas/pos-crm-api/internal/domain/repository"
	"github.com/jhoicas/pos-crm-api/internal/infrastructure/acquirer"
	"github.com/jhoicas/pos-crm-api/internal/infrastructure/archive"
	"github.com/jhoicas/pos-crm-api/internal/infrastructure/cache"
	"github.com/jhoicas/pos-crm-api/internal/infrastructure/memory"
	"github.com/jhoicas/pos-crm-api/internal/infrastructure/pdf"
	"github.com/jhoicas/pos-crm-api/internal/infrastructure/storage"
	apphttp "github.com/jhoicas/pos-crm-api/internal/interfaces/http"
	"github.com/jhoicas/pos-crm-api/pkg/logger"
	"github.com/jhoicas/pos-crm-api/pkg/metrics"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const superPassword = "secreto-123"

type apiEnv struct {
	app   *fiber.App
	repos repository.Repositories
	token string
}

// newAPI monta la API completa sobre el store en memoria y crea un superuser.
func newAPI(t *testing.T) *apiEnv {
	t.Helper()
	st := memory.NewStore()
	repos := st.Repositories()
	log := logger.Nop()
	m := metrics.New("apitest")
	files, err := storage.NewLocal(t.TempDir(), "/media")
	require.NoError(t, err)
	status := usecase.NewPOSStatusService(log, m)
	c := cache.Noop{}

	authUC := auth.NewAuthUseCase(repos.Principals, files, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}, log)
	_, err = authUC.CreatePrincipal(context.Background(), "", dto.CreatePrincipalRequest{
		Username: "root", Password: superPassword, Name: "Root", IsStaff: true, IsSuperuser: true,
	})
	require.NoError(t, err)

	app := fiber.New(fiber.Config{Immutable: true})
	app.Use(apphttp.Metrics(m))
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      authUC,
		PrincipalUC: usecase.NewPrincipalUseCase(repos.Principals, files, log, m),
		Catalog: apphttp.CatalogUseCases{
			Countries: usecase.NewCountryUseCase(repos.Countries, c, log, m),
			Companies: usecase.NewPOSCompanyUseCase(repos.Companies, repos.Models, c, log, m),
			Models:    usecase.NewPosModelUseCase(repos.Models, repos.Companies, c, log),
			POS:       usecase.NewPOSUseCase(repos.POS, repos.Models, repos.Companies, status, log, m),
			Services:  usecase.NewVirtualServiceUseCase(repos.Services, log, m),
		},
		CRM: apphttp.CRMUseCases{
			Goals:     usecase.NewGoalUseCase(repos.Goals, log),
			Costumers: usecase.NewCostumerUseCase(repos, st, files, log, m),
			Contracts: usecase.NewContractUseCase(repos, st, status, files, log, m),
			Ledger:    usecase.NewLedgerUseCase(repos, log),
		},
		ExportUC:  usecase.NewExportUseCase(repos, files, pdf.NewMarotoPDFGenerator("test"), acquirer.NewExporter(), archive.NewZip(), log),
		JWTSecret: testJWTSecret,
		Log:       log,
	})

	e := &apiEnv{app: app, repos: repos}
	e.token = e.login(t, "root", superPassword)
	return e
}

func (e *apiEnv) login(t *testing.T, username, password string) string {
	t.Helper()
	var out dto.TokenResponse
	resp := e.call(t, http.MethodPost, "/api/admins/token", "", dto.TokenRequest{Username: username, Password: password}, &out)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, out.Token)
	return out.Token
}

// call envía body como JSON y decodifica la respuesta en out (si no es nil).
func (e *apiEnv) call(t *testing.T, method, path, token string, body, out interface{}) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	if out != nil {
		defer resp.Body.Close()
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func (e *apiEnv) do(t *testing.T, method, path string, body, out interface{}) *http.Response {
	t.Helper()
	return e.call(t, method, path, e.token, body, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Principales
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_Token_CredencialesErroneasRetorna400(t *testing.T) {
	e := newAPI(t)
	var errBody dto.ErrorResponse
	resp := e.call(t, http.MethodPost, "/api/admins/token", "", dto.TokenRequest{Username: "root", Password: "mala"}, &errBody)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "AUTH_FAILED", errBody.Code)
}

func TestAPI_Admins_StaffNoPuedeListar(t *testing.T) {
	e := newAPI(t)
	var created dto.PrincipalResponse
	resp := e.do(t, http.MethodPost, "/api/admins/create", dto.CreatePrincipalRequest{
		Username: "lucia", Password: "clave-123", Name: "Lucía", IsStaff: true,
	}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotNil(t, created.CreatedBy, "el creador queda registrado")

	staff := e.login(t, "lucia", "clave-123")
	var errBody dto.ErrorResponse
	resp = e.call(t, http.MethodGet, "/api/admins/list", staff, nil, &errBody)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", errBody.Code)

	var list []dto.PrincipalResponse
	resp = e.do(t, http.MethodGet, "/api/admins/list", nil, &list)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, list, 2)
}

func TestAPI_Admins_UsernameDuplicadoRetorna400(t *testing.T) {
	e := newAPI(t)
	var errBody dto.ErrorResponse
	resp := e.do(t, http.MethodPost, "/api/admins/create", dto.CreatePrincipalRequest{Username: "root", Password: "clave-123"}, &errBody)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "DUPLICATE", errBody.Code)
}

func TestAPI_Admins_SetFlagRequiereValue(t *testing.T) {
	e := newAPI(t)
	var created dto.PrincipalResponse
	e.do(t, http.MethodPost, "/api/admins/create", dto.CreatePrincipalRequest{Username: "pablo", Password: "clave-123"}, &created)

	var errBody dto.ErrorResponse
	resp := e.do(t, http.MethodPut, "/api/admins/"+created.ID+"/active", map[string]interface{}{}, &errBody)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "value", errBody.Field)

	var flag dto.FlagResponse
	resp = e.do(t, http.MethodPut, "/api/admins/"+created.ID+"/active", map[string]bool{"value": false}, &flag)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, flag.Value)

	// inactivo: el token se rechaza con 403
	resp = e.call(t, http.MethodPost, "/api/admins/token", "", dto.TokenRequest{Username: "pablo", Password: "clave-123"}, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAPI_Admins_DosPromoteVuelvenAlEstadoOriginal(t *testing.T) {
	e := newAPI(t)
	var created dto.PrincipalResponse
	e.do(t, http.MethodPost, "/api/admins/create", dto.CreatePrincipalRequest{Username: "marta", Password: "clave-123"}, &created)
	require.False(t, created.IsStaff)

	var profile dto.PrincipalResponse
	resp := e.do(t, http.MethodPost, "/api/admins/promote/"+created.ID, nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	e.do(t, http.MethodGet, "/api/admins/profile/"+created.ID, nil, &profile)
	assert.True(t, profile.IsStaff, "un toggle invierte el flag")

	e.do(t, http.MethodPost, "/api/admins/promote/"+created.ID, nil, nil)
	e.do(t, http.MethodGet, "/api/admins/profile/"+created.ID, nil, &profile)
	assert.False(t, profile.IsStaff, "dos toggles vuelven al original")
}

func TestAPI_Admins_IDDeRutaSobreviveAPeticionesSiguientes(t *testing.T) {
	e := newAPI(t)
	var created dto.PrincipalResponse
	resp := e.do(t, http.MethodPost, "/api/admins/create", dto.CreatePrincipalRequest{Username: "ines", Password: "clave-123"}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = e.do(t, http.MethodPost, "/api/admins/deactive/"+created.ID, nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Empty(t, body, "el toggle responde sin cuerpo")

	// otra petición reutiliza el buffer de la anterior
	e.do(t, http.MethodGet, "/api/crm/countries", nil, nil)

	var profile dto.PrincipalResponse
	resp = e.do(t, http.MethodGet, "/api/admins/profile/"+created.ID, nil, &profile)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, created.ID, profile.ID)
	assert.False(t, profile.IsActive)

	var list []dto.PrincipalResponse
	e.do(t, http.MethodGet, "/api/admins/list", nil, &list)
	ids := make([]string, 0, len(list))
	for _, p := range list {
		ids = append(ids, p.ID)
	}
	assert.Contains(t, ids, created.ID)

	resp = e.do(t, http.MethodDelete, "/api/admins/"+created.ID, nil, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp = e.do(t, http.MethodGet, "/api/admins/profile/"+created.ID, nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_TokenEmitido_RespetaDesactivacionYBorrado(t *testing.T) {
	e := newAPI(t)
	var boss dto.PrincipalResponse
	resp := e.do(t, http.MethodPost, "/api/admins/create", dto.CreatePrincipalRequest{
		Username: "boss", Password: "clave-123", IsStaff: true, IsSuperuser: true,
	}, &boss)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	bossToken := e.login(t, "boss", "clave-123")

	resp = e.call(t, http.MethodGet, "/api/admins/list", bossToken, nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = e.do(t, http.MethodPost, "/api/admins/deactive/"+boss.ID, nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// el token sigue vigente pero la cuenta ya no
	resp = e.call(t, http.MethodGet, "/api/crm/countries", bossToken, nil, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp = e.call(t, http.MethodGet, "/api/admins/list", bossToken, nil, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp = e.call(t, http.MethodPost, "/api/admins/create", bossToken, dto.CreatePrincipalRequest{Username: "intruso", Password: "clave-123"}, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var list []dto.PrincipalResponse
	e.do(t, http.MethodGet, "/api/admins/list", nil, &list)
	for _, p := range list {
		assert.NotEqual(t, "intruso", p.Username, "la request rechazada no crea nada")
	}

	resp = e.do(t, http.MethodDelete, "/api/admins/"+boss.ID, nil, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp = e.call(t, http.MethodGet, "/api/crm/countries", bossToken, nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "principal borrado")
}

func TestAPI_TokenEmitido_SuperuserDegradadoPierdeAdmins(t *testing.T) {
	ctx := context.Background()
	e := newAPI(t)
	var jefa dto.PrincipalResponse
	resp := e.do(t, http.MethodPost, "/api/admins/create", dto.CreatePrincipalRequest{
		Username: "jefa", Password: "clave-123", IsStaff: true, IsSuperuser: true,
	}, &jefa)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	token := e.login(t, "jefa", "clave-123")

	resp = e.call(t, http.MethodGet, "/api/admins/list", token, nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// degradada fuera de la API (p. ej. desde crmctl)
	p, err := e.repos.Principals.GetByID(ctx, jefa.ID)
	require.NoError(t, err)
	p.IsSuperuser = false
	require.NoError(t, e.repos.Principals.Update(ctx, p))

	resp = e.call(t, http.MethodGet, "/api/admins/list", token, nil, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "el rol del token ya no vale")
	resp = e.call(t, http.MethodPost, "/api/admins/promote/"+jefa.ID, token, nil, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp = e.call(t, http.MethodGet, "/api/crm/countries", token, nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "sigue activa como staff")
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_SinTokenRetorna401(t *testing.T) {
	e := newAPI(t)
	resp := e.call(t, http.MethodGet, "/api/crm/countries", "", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAPI_Paises_ToggleYSet(t *testing.T) {
	e := newAPI(t)
	var country dto.CountryResponse
	resp := e.do(t, http.MethodPost, "/api/crm/countries", dto.CountryRequest{Name: "United Kingdom", Code: "44"}, &country)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	assert.True(t, country.IsCovered, "un país nuevo nace cubierto")
	resp = e.do(t, http.MethodPost, "/api/crm/countries/"+country.ID+"/coverage", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Empty(t, body, "el toggle responde sin cuerpo")

	var countries []dto.CountryResponse
	e.do(t, http.MethodGet, "/api/crm/countries", nil, &countries)
	require.Len(t, countries, 1)
	assert.False(t, countries[0].IsCovered)

	var flag dto.FlagResponse
	for i := 0; i < 2; i++ {
		e.do(t, http.MethodPut, "/api/crm/countries/"+country.ID+"/coverage", map[string]bool{"value": true}, &flag)
		assert.True(t, flag.Value, "set es idempotente")
	}

	var used dto.UsedResponse
	e.do(t, http.MethodGet, "/api/crm/is-used/country/"+country.ID, nil, &used)
	assert.False(t, used.Used)

	resp = e.do(t, http.MethodDelete, "/api/crm/countries/"+country.ID, nil, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp = e.do(t, http.MethodDelete, "/api/crm/countries/"+country.ID, nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_Companies_PatchConservaCampos(t *testing.T) {
	e := newAPI(t)
	var company dto.POSCompanyResponse
	e.do(t, http.MethodPost, "/api/crm/companies", dto.POSCompanyRequest{Name: "Ingenico", SerialNumberLength: 8}, &company)

	var updated dto.POSCompanyResponse
	resp := e.do(t, http.MethodPatch, "/api/crm/companies/"+company.ID, map[string]string{"name": "Ingenico Group"}, &updated)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Ingenico Group", updated.Name)
	assert.Equal(t, 8, updated.SerialNumberLength)
}

func TestAPI_POS_ValidacionDeSerial(t *testing.T) {
	e := newAPI(t)
	modelID := seedModel(t, e)

	var errBody dto.ErrorResponse
	resp := e.do(t, http.MethodPost, "/api/crm/poses", dto.POSRequest{SerialNumber: "123", Type: "D", ModelID: modelID}, &errBody)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errBody.Code)
	assert.Equal(t, "serial_number", errBody.Field)

	var pos dto.POSResponse
	resp = e.do(t, http.MethodPost, "/api/crm/poses", dto.POSRequest{SerialNumber: "12345678", Type: "D", ModelID: modelID}, &pos)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var list []dto.POSResponse
	e.do(t, http.MethodGet, "/api/crm/poses?status=available&model_id="+modelID, nil, &list)
	require.Len(t, list, 1)
	assert.Equal(t, pos.ID, list[0].ID)
}

func TestAPI_Goals_NoExisteRetorna404(t *testing.T) {
	e := newAPI(t)
	var errBody dto.ErrorResponse
	resp := e.do(t, http.MethodGet, "/api/crm/goals/no-existe", nil, &errBody)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", errBody.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Contratos y exportaciones
// ──────────────────────────────────────────────────────────────────────────────

func seedModel(t *testing.T, e *apiEnv) string {
	t.Helper()
	var company dto.POSCompanyResponse
	e.do(t, http.MethodPost, "/api/crm/companies", dto.POSCompanyRequest{Name: "Verifone", SerialNumberLength: 8}, &company)
	var model dto.PosModelResponse
	resp := e.do(t, http.MethodPost, "/api/crm/posmodels", dto.PosModelRequest{Name: "V200c", CompanyID: company.ID}, &model)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return model.ID
}

func seedContract(t *testing.T, e *apiEnv) string {
	t.Helper()
	var costumer dto.CostumerResponse
	resp := e.do(t, http.MethodPost, "/api/crm/customers", dto.CostumerRequest{
		TradingName:       "Café Central",
		LegalName:         "Central Foods Ltd",
		BusinessType:      "Restaurants, Pubs and Fast Food",
		LegalEntity:       "Private Limited Company",
		RegisteredAddress: "1 High Street",
		DirectorName:      "Ana Pérez",
		BusinessBankName:  "Central Foods Ltd",
	}, &costumer)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	now := time.Now()
	var contract dto.ContractResponse
	resp = e.do(t, http.MethodPost, "/api/crm/contracts", dto.ContractRequest{
		CostumerID:      costumer.ID,
		FaceToFaceSales: 80,
		Acquirer:        "EP",
		MID:             "MID-001",
		LiveDate:        dto.NewDate(now.AddDate(0, 0, -1)),
		EndDate:         dto.NewDate(now.AddDate(0, 1, 0)),
	}, &contract)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return contract.ID
}

func TestAPI_Contrato_SolucionesMarcanPOSEnUso(t *testing.T) {
	e := newAPI(t)
	modelID := seedModel(t, e)
	var pos dto.POSResponse
	e.do(t, http.MethodPost, "/api/crm/poses", dto.POSRequest{SerialNumber: "87654321", Type: "D", ModelID: modelID}, &pos)
	contractID := seedContract(t, e)

	var sol dto.SolutionsResponse
	resp := e.do(t, http.MethodPost, "/api/crm/contract/"+contractID+"/solutions", dto.SolutionsRequest{
		POSes: []dto.SolutionPOS{{ID: pos.ID}},
	}, &sol)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, sol.POSes, 1)

	var list []dto.POSResponse
	e.do(t, http.MethodGet, "/api/crm/poses?status=unavailable", nil, &list)
	require.Len(t, list, 1)
	assert.Equal(t, contractID, list[0].ContractID)

	var used dto.UsedResponse
	e.do(t, http.MethodGet, "/api/crm/is-used/pos/"+pos.ID, nil, &used)
	assert.True(t, used.Used)

	var links []dto.ContractPOSResponse
	e.do(t, http.MethodGet, "/api/crm/contracts/"+contractID+"/pos", nil, &links)
	assert.Len(t, links, 1)

	var one dto.POSResponse
	resp = e.do(t, http.MethodGet, "/api/crm/poses/"+pos.ID, nil, &one)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "87654321", one.SerialNumber)
	assert.Equal(t, contractID, one.ContractID)
}

func TestAPI_POS_GetInexistenteRetorna404(t *testing.T) {
	e := newAPI(t)
	var errBody dto.ErrorResponse
	resp := e.do(t, http.MethodGet, "/api/crm/poses/no-existe", nil, &errBody)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", errBody.Code)
}

func TestAPI_Contrato_LibroBorraSoloDelPropietario(t *testing.T) {
	e := newAPI(t)
	contractID := seedContract(t, e)

	resp := e.do(t, http.MethodDelete, "/api/crm/contracts/"+contractID+"/payment/no-existe", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var revenue dto.RevenueResponse
	resp = e.do(t, http.MethodGet, "/api/crm/contracts/"+contractID+"/revenue", nil, &revenue)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAPI_Exportaciones(t *testing.T) {
	e := newAPI(t)
	contractID := seedContract(t, e)

	resp := e.do(t, http.MethodGet, "/api/crm/contracts/"+contractID+"/summary.pdf", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	body, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))

	resp = e.do(t, http.MethodGet, "/api/crm/contracts/"+contractID+"/acquirer.xml", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(apphttp.HeaderContentDigest), "sha-256=")

	resp = e.do(t, http.MethodGet, "/api/crm/contracts/no-existe/summary.pdf", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

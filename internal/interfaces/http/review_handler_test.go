package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/simpro-reconcile/internal/application/dto"
	"github.com/jhoicas/simpro-reconcile/internal/application/reconcile"
	apphttp "github.com/jhoicas/simpro-reconcile/internal/interfaces/http"
	"github.com/jhoicas/simpro-reconcile/pkg/logger"
	pkgjwt "github.com/jhoicas/simpro-reconcile/pkg/jwt"
	"github.com/jhoicas/simpro-reconcile/pkg/simpro"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type memReader struct {
	customers, contracts []simpro.Row
}

func (r memReader) ReadCustomers(context.Context) ([]simpro.Row, error) { return r.customers, nil }
func (r memReader) ReadContracts(context.Context) ([]simpro.Row, error) { return r.contracts, nil }

func buildReviewApp(t *testing.T, secret string) *fiber.App {
	t.Helper()
	return buildReviewAppWithLog(t, secret, nil)
}

func buildReviewAppWithLog(t *testing.T, secret string, log *logger.Logger) *fiber.App {
	t.Helper()
	reader := memReader{
		customers: []simpro.Row{
			{simpro.ColCustomerID: "C1", simpro.ColCustomer: "Acme Corp"},
			{simpro.ColCustomerID: "C2", simpro.ColCustomer: "Globex"},
		},
		contracts: []simpro.Row{
			{simpro.ColCustomer: "Acme Corporation", simpro.ColContractName: "Gold", simpro.ColValue: "$300,000", simpro.ColStatus: "Active"},
			{simpro.ColCustomer: "Umbrella", simpro.ColContractName: "Lost", simpro.ColValue: "$5", simpro.ColStatus: "Active"},
		},
	}
	res, err := reconcile.NewReconcileUseCase(reader, logger.Nop()).Run(context.Background())
	require.NoError(t, err)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Query:       reconcile.NewQueryUseCase(res),
		ServiceName: "simpro-reconcile",
		GeneratedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		JWTSecret:   secret,
		Log:         log,
	})
	return app
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

// ──────────────────────────────────────────────────────────────────────────────
// Rutas
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_Health(t *testing.T) {
	resp := doRequest(t, buildReviewApp(t, ""), "/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]any
	decode(t, resp, &body)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "2025-01-02T03:04:05Z", body["generated_at"])
}

func TestRouter_Summary(t *testing.T) {
	resp := doRequest(t, buildReviewApp(t, ""), "/api/summary", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]any
	decode(t, resp, &body)
	assert.EqualValues(t, 2, body["total_customers"])
	assert.EqualValues(t, 1, body["matched_contracts"])
	assert.EqualValues(t, 1, body["unmatched_contracts"])
}

func TestRouter_ListCustomersPorNivel(t *testing.T) {
	app := buildReviewApp(t, "")

	resp := doRequest(t, app, "/api/customers?tier=guardian", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var list dto.CustomerListResponse
	decode(t, resp, &list)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "C1", list.Items[0].SimproCustomerID)

	resp = doRequest(t, app, "/api/customers?tier=PLATINUM", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, "/api/customers?with_contracts=quizas", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, "/api/customers?limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestRouter_GetCustomer(t *testing.T) {
	app := buildReviewApp(t, "")

	resp := doRequest(t, app, "/api/customers/C1", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var detail dto.CustomerDetailResponse
	decode(t, resp, &detail)
	assert.Equal(t, "GUARDIAN", detail.ServiceTier)
	require.Len(t, detail.Contracts, 1)
	assert.Equal(t, "Gold", detail.Contracts[0].ContractName)

	resp = doRequest(t, app, "/api/customers/NOPE", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var apiErr dto.ErrorResponse
	decode(t, resp, &apiErr)
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
}

func TestRouter_ListContractsSinVincular(t *testing.T) {
	resp := doRequest(t, buildReviewApp(t, ""), "/api/contracts?matched=false", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var list dto.ContractListResponse
	decode(t, resp, &list)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Lost", list.Items[0].ContractName)
	assert.Nil(t, list.Items[0].MatchedCustomerID)
}

func TestRouter_ConSecretExigeToken(t *testing.T) {
	app := buildReviewApp(t, testJWTSecret)

	resp := doRequest(t, app, "/api/summary", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, "/api/summary", tokenForRole(t, pkgjwt.RoleReviewer))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, "/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode, "health queda público")
	resp.Body.Close()
}

func TestRouter_GetCustomerRegistraRevisor(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Output: &buf})
	app := buildReviewAppWithLog(t, testJWTSecret, log)

	resp := doRequest(t, app, "/api/customers/C1", tokenForRole(t, pkgjwt.RoleReviewer))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "detalle de cliente consultado", entry["message"])
	assert.Equal(t, testSubject, entry["revisor"])
	assert.Equal(t, pkgjwt.RoleReviewer, entry["rol"])
	assert.Equal(t, "C1", entry["cliente"])
}

package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spiffler33/taxhawk/internal/cache"
	"github.com/spiffler33/taxhawk/internal/model"
)

func priyaRequestBody() createReportRequest {
	return createReportRequest{
		Profile: model.SalaryProfile{
			FinancialYear:   model.FY2024_25,
			CurrentRegime:   model.RegimeNew,
			GrossSalary:     1_500_000,
			BasicSalary:     600_000,
			HRAReceived:     300_000,
			ProfessionalTax: 2_400,
			City:            "mumbai",
			MonthlyRent:     25_000,
			Deduction80C:    72_000,
		},
		Options: model.Options{},
	}
}

func TestHandleCreateReport(t *testing.T) {
	srv := New(zerolog.Nop(), nil)

	body, err := json.Marshal(priyaRequestBody())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/reports/", bytes.NewReader(body))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var report model.Report
	require.NoError(t, json.NewDecoder(w.Body).Decode(&report))
	assert.Equal(t, model.RegimeOld, report.RecommendedRegime)
	assert.Equal(t, 16_120, report.TotalSavings)
	assert.Len(t, report.Checks, 7)
}

func TestHandleCreateReportInvalidBody(t *testing.T) {
	srv := New(zerolog.Nop(), nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/reports/", bytes.NewReader([]byte("not json")))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleGetReportRoundtrip(t *testing.T) {
	store, err := cache.Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	defer store.Close()

	srv := New(zerolog.Nop(), store)

	body, err := json.Marshal(priyaRequestBody())
	require.NoError(t, err)

	createReq := httptest.NewRequest(http.MethodPost, "/v1/reports/", bytes.NewReader(body))
	createW := httptest.NewRecorder()
	srv.Router().ServeHTTP(createW, createReq)
	require.Equal(t, http.StatusOK, createW.Code)

	var created model.Report
	require.NoError(t, json.NewDecoder(createW.Body).Decode(&created))

	reqBody := priyaRequestBody()
	key, err := cache.Key(reqBody.Profile, reqBody.Holdings, reqBody.Options)
	require.NoError(t, err)

	getReq := httptest.NewRequest(http.MethodGet, "/v1/reports/"+key, nil)
	getW := httptest.NewRecorder()
	srv.Router().ServeHTTP(getW, getReq)

	assert.Equal(t, http.StatusOK, getW.Code)
}

func TestHandleGetReportMissingStore(t *testing.T) {
	srv := New(zerolog.Nop(), nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/does-not-exist", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotImplemented, w.Code)
}

func TestHandleHealthz(t *testing.T) {
	srv := New(zerolog.Nop(), nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

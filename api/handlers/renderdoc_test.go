package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/satlantas/laka-report-api/api/handlers"
	"github.com/satlantas/laka-report-api/databases/mocks"
	"github.com/satlantas/laka-report-api/models"
)

func renderRequest(t *testing.T, body string) *http.Request {
	t.Helper()
	req, err := http.NewRequest("POST", "/api/v1/report/report-1/render", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	return mux.SetURLVars(req, map[string]string{"report_id": "report-1"})
}

func TestRenderDoc_RenderDocumentHandlerSendsOfficerDetails(t *testing.T) {
	var payload map[string]interface{}
	docService := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := json.NewDecoder(r.Body).Decode(&payload)
		assert.NoError(t, err)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("PK\x03\x04docx-bytes"))
	}))
	defer docService.Close()

	rDB := &mocks.ReportDatabase{}
	rDB.On("FindOne", mock.Anything, mock.Anything).Return(&models.AccidentReport{
		ID:                 "report-1",
		NomorLaporanPolisi: "LP/B/0123/III/2024/SPKT/POLRES TASIKMALAYA/POLDA JABAR",
		WaktuKejadian:      "2024-03-15T08:30",
	}, nil)

	rd := handlers.RenderDoc{RDB: rDB, RenderURL: docService.URL}

	body := `{"spktOfficer": "EDI SUHENDAR", "reportingOfficer": "WISNU ANTONI"}`
	rr := httptest.NewRecorder()
	http.HandlerFunc(rd.RenderDocumentHandler).ServeHTTP(rr, renderRequest(t, body))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `attachment; filename="Laporan_0123_2024-03-15.docx"`, rr.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(rr.Body.Bytes(), []byte("PK")))

	assert.Equal(t, "report-1", payload["id"])
	assert.Equal(t, "WISNU ANTONI", payload["namaPetugas"])
	assert.Equal(t, "BRIPKA", payload["pangkatPetugas"])
	assert.Equal(t, "86031618", payload["nrpPetugas"])
	assert.Equal(t, "EDI SUHENDAR", payload["namaPetugasSpkt"])
	assert.Equal(t, "AIPDA", payload["pangkatPetugasSpkt"])
	assert.Equal(t, "80071313", payload["nrpPetugasSpkt"])
	assert.Equal(t, "KA SPKT I", payload["reguPetugasSpkt"])
}

func TestRenderDoc_RenderDocumentHandlerUnknownOfficer(t *testing.T) {
	rDB := &mocks.ReportDatabase{}

	rd := handlers.RenderDoc{RDB: rDB, RenderURL: "http://localhost:0"}

	body := `{"spktOfficer": "EDI SUHENDAR", "reportingOfficer": "TIDAK ADA"}`
	rr := httptest.NewRecorder()
	http.HandlerFunc(rd.RenderDocumentHandler).ServeHTTP(rr, renderRequest(t, body))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	rDB.AssertNotCalled(t, "FindOne", mock.Anything, mock.Anything)
}

func TestRenderDoc_RenderDocumentHandlerServiceDown(t *testing.T) {
	docService := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer docService.Close()

	rDB := &mocks.ReportDatabase{}
	rDB.On("FindOne", mock.Anything, mock.Anything).Return(&models.AccidentReport{ID: "report-1"}, nil)

	rd := handlers.RenderDoc{RDB: rDB, RenderURL: docService.URL}

	body := `{"spktOfficer": "EDI SUHENDAR", "reportingOfficer": "WISNU ANTONI"}`
	rr := httptest.NewRecorder()
	http.HandlerFunc(rd.RenderDocumentHandler).ServeHTTP(rr, renderRequest(t, body))

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

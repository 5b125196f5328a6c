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

func TestParty_AddPartyHandlerUpdatesCasualtyCounters(t *testing.T) {
	body := `{"peran": "Pengemudi", "namaLengkap": "Asep Sunandar", "tingkatLuka": "MD"}`
	req, err := http.NewRequest("POST", "/api/v1/report/report-1/parties", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"report_id": "report-1"})

	rDB := &mocks.ReportDatabase{}
	rDB.On("FindOne", mock.Anything, mock.Anything).Return(&models.AccidentReport{ID: "report-1"}, nil)
	rDB.On("ReplaceOne", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	u := handlers.Report{RDB: rDB}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.AddPartyHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var got models.AccidentReport
	err = json.Unmarshal(rr.Body.Bytes(), &got)
	assert.NoError(t, err)
	assert.Len(t, got.PihakTerlibat, 1)
	assert.NotEmpty(t, got.PihakTerlibat[0].ID)
	assert.Equal(t, 1, got.KorbanMeninggalDunia)
	assert.Equal(t, 0, got.KorbanLukaRingan)
}

func TestParty_AddPartyHandlerRejectsUnknownEntityReference(t *testing.T) {
	body := `{"peran": "Pengemudi", "namaLengkap": "Asep Sunandar", "involvedEntityId": "missing"}`
	req, err := http.NewRequest("POST", "/api/v1/report/report-1/parties", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"report_id": "report-1"})

	rDB := &mocks.ReportDatabase{}
	rDB.On("FindOne", mock.Anything, mock.Anything).Return(&models.AccidentReport{ID: "report-1"}, nil)

	u := handlers.Report{RDB: rDB}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.AddPartyHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	rDB.AssertNotCalled(t, "ReplaceOne", mock.Anything, mock.Anything, mock.Anything)
}

func TestParty_DeletePartyHandlerRecountsCasualties(t *testing.T) {
	req, err := http.NewRequest("DELETE", "/api/v1/report/report-1/parties/party-1", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"report_id": "report-1", "party_id": "party-1"})

	stored := models.AccidentReport{
		ID: "report-1",
		PihakTerlibat: []models.InvolvedParty{
			{ID: "party-1", TingkatLuka: models.InjuryMinor},
			{ID: "party-2", TingkatLuka: models.InjuryMinor},
		},
		KorbanLukaRingan: 2,
	}

	rDB := &mocks.ReportDatabase{}
	rDB.On("FindOne", mock.Anything, mock.Anything).Return(&stored, nil)
	rDB.On("ReplaceOne", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	u := handlers.Report{RDB: rDB}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.DeletePartyHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got models.AccidentReport
	err = json.Unmarshal(rr.Body.Bytes(), &got)
	assert.NoError(t, err)
	assert.Len(t, got.PihakTerlibat, 1)
	assert.Equal(t, 1, got.KorbanLukaRingan)
}

func TestParty_AddPartyHandlerRequiresNameAndRole(t *testing.T) {
	body := `{"peran": "Pengemudi"}`
	req, err := http.NewRequest("POST", "/api/v1/report/report-1/parties", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"report_id": "report-1"})

	rDB := &mocks.ReportDatabase{}

	u := handlers.Report{RDB: rDB}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.AddPartyHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	rDB.AssertNotCalled(t, "FindOne", mock.Anything, mock.Anything)
}

func TestWitness_AddWitnessHandlerRequiresAgeOrBirthdate(t *testing.T) {
	body := `{"namaLengkap": "Dedi Mulyadi", "keteranganSaksi": "Melihat kejadian dari warung."}`
	req, err := http.NewRequest("POST", "/api/v1/report/report-1/witnesses", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"report_id": "report-1"})

	rDB := &mocks.ReportDatabase{}

	u := handlers.Report{RDB: rDB}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.AddWitnessHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestWitness_AddWitnessHandlerAssignsID(t *testing.T) {
	body := `{"namaLengkap": "Dedi Mulyadi", "umurString": "40 Th", "keteranganSaksi": "Melihat kejadian dari warung."}`
	req, err := http.NewRequest("POST", "/api/v1/report/report-1/witnesses", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"report_id": "report-1"})

	rDB := &mocks.ReportDatabase{}
	rDB.On("FindOne", mock.Anything, mock.Anything).Return(&models.AccidentReport{ID: "report-1"}, nil)
	rDB.On("ReplaceOne", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	u := handlers.Report{RDB: rDB}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.AddWitnessHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var got models.AccidentReport
	err = json.Unmarshal(rr.Body.Bytes(), &got)
	assert.NoError(t, err)
	assert.Len(t, got.SaksiSaksi, 1)
	assert.NotEmpty(t, got.SaksiSaksi[0].ID)
	assert.Equal(t, "Dedi Mulyadi", got.SaksiSaksi[0].NamaLengkap)
}

func TestPelapor_UpdatePelaporHandler(t *testing.T) {
	body := `{"namaLengkap": "Ujang Suparman", "nomorIdentitas": "3206019876543210", "alamat": "Kp. Cikalang, Tasikmalaya"}`
	req, err := http.NewRequest("PUT", "/api/v1/report/report-1/pelapor", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"report_id": "report-1"})

	rDB := &mocks.ReportDatabase{}
	rDB.On("FindOne", mock.Anything, mock.Anything).Return(&models.AccidentReport{ID: "report-1"}, nil)
	rDB.On("ReplaceOne", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	u := handlers.Report{RDB: rDB}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.UpdatePelaporHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got models.AccidentReport
	err = json.Unmarshal(rr.Body.Bytes(), &got)
	assert.NoError(t, err)
	assert.Equal(t, "Ujang Suparman", got.Pelapor.NamaLengkap)
}

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

func TestEntity_AddEntityHandlerRejectsUnknownType(t *testing.T) {
	body := `{"type": "Kereta Api"}`
	req, err := http.NewRequest("POST", "/api/v1/report/report-1/entities", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"report_id": "report-1"})

	rDB := &mocks.ReportDatabase{}

	u := handlers.Report{RDB: rDB}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.AddEntityHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	rDB.AssertNotCalled(t, "ReplaceOne", mock.Anything, mock.Anything, mock.Anything)
}

func TestEntity_AddEntityHandlerAssignsID(t *testing.T) {
	body := `{"type": "Kendaraan", "jenisKendaraan": "Sepeda Motor Honda Beat", "nomorPolisi": "Z 1234 AB"}`
	req, err := http.NewRequest("POST", "/api/v1/report/report-1/entities", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"report_id": "report-1"})

	rDB := &mocks.ReportDatabase{}
	rDB.On("FindOne", mock.Anything, mock.Anything).Return(&models.AccidentReport{ID: "report-1"}, nil)
	rDB.On("ReplaceOne", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	u := handlers.Report{RDB: rDB}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.AddEntityHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var got models.AccidentReport
	err = json.Unmarshal(rr.Body.Bytes(), &got)
	assert.NoError(t, err)
	assert.Len(t, got.InvolvedEntities, 1)
	assert.NotEmpty(t, got.InvolvedEntities[0].ID)
	assert.Equal(t, models.EntityVehicle, got.InvolvedEntities[0].Type)
}

func TestEntity_DeleteEntityHandlerClearsPartyReferences(t *testing.T) {
	req, err := http.NewRequest("DELETE", "/api/v1/report/report-1/entities/entity-1", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"report_id": "report-1", "entity_id": "entity-1"})

	stored := models.AccidentReport{
		ID: "report-1",
		InvolvedEntities: []models.InvolvedEntity{
			{ID: "entity-1", Type: models.EntityVehicle, JenisKendaraan: "Sepeda Motor Honda Beat"},
			{ID: "entity-2", Type: models.EntityPedestrian},
		},
		PihakTerlibat: []models.InvolvedParty{
			{ID: "party-1", Peran: "Pengemudi", InvolvedEntityID: "entity-1"},
			{ID: "party-2", Peran: "Penumpang", InvolvedEntityID: "entity-2"},
		},
	}

	rDB := &mocks.ReportDatabase{}
	rDB.On("FindOne", mock.Anything, mock.Anything).Return(&stored, nil)
	rDB.On("ReplaceOne", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	u := handlers.Report{RDB: rDB}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.DeleteEntityHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got models.AccidentReport
	err = json.Unmarshal(rr.Body.Bytes(), &got)
	assert.NoError(t, err)
	assert.Len(t, got.InvolvedEntities, 1)
	assert.Equal(t, "entity-2", got.InvolvedEntities[0].ID)

	// the orphaned party stays but loses its vehicle reference
	assert.Len(t, got.PihakTerlibat, 2)
	assert.Empty(t, got.PihakTerlibat[0].InvolvedEntityID)
	assert.Equal(t, "entity-2", got.PihakTerlibat[1].InvolvedEntityID)
}

func TestEntity_DeleteEntityHandlerNotFound(t *testing.T) {
	req, err := http.NewRequest("DELETE", "/api/v1/report/report-1/entities/missing", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"report_id": "report-1", "entity_id": "missing"})

	rDB := &mocks.ReportDatabase{}
	rDB.On("FindOne", mock.Anything, mock.Anything).Return(&models.AccidentReport{ID: "report-1"}, nil)

	u := handlers.Report{RDB: rDB}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.DeleteEntityHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	rDB.AssertNotCalled(t, "ReplaceOne", mock.Anything, mock.Anything, mock.Anything)
}

package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/satlantas/laka-report-api/api/handlers"
	"github.com/satlantas/laka-report-api/models"
)

func TestOfficer_OfficerRostersHandler(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/officers", nil)
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.OfficerRostersHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got map[string][]models.Officer
	err = json.Unmarshal(rr.Body.Bytes(), &got)
	assert.NoError(t, err)
	assert.Equal(t, models.SpktOfficers, got["spkt"])
	assert.Equal(t, models.ReportingOfficers, got["reporting"])
}

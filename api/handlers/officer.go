package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/satlantas/laka-report-api/config"
	"github.com/satlantas/laka-report-api/models"
)

// OfficerRostersHandler returns the SPKT and reporting officer rosters
// used to fill the signature blocks of a report
func OfficerRostersHandler(w http.ResponseWriter, r *http.Request) {
	rosters := map[string][]models.Officer{
		"spkt":      models.SpktOfficers,
		"reporting": models.ReportingOfficers,
	}
	b, err := json.Marshal(rosters)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

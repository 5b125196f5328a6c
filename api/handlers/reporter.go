package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/satlantas/laka-report-api/config"
	"github.com/satlantas/laka-report-api/models"
)

// UpdatePelaporHandler replaces the reporting person of a report
func (re Report) UpdatePelaporHandler(w http.ResponseWriter, r *http.Request) {
	reportID := mux.Vars(r)["report_id"]

	var pelapor models.Pelapor
	if err := json.NewDecoder(r.Body).Decode(&pelapor); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if strings.TrimSpace(pelapor.NamaLengkap) == "" {
		config.ErrorStatus("invalid pelapor", http.StatusBadRequest, w, fmt.Errorf("namaLengkap is required"))
		return
	}
	if strings.TrimSpace(pelapor.NomorIdentitas) == "" {
		config.ErrorStatus("invalid pelapor", http.StatusBadRequest, w, fmt.Errorf("nomorIdentitas is required"))
		return
	}

	report, err := re.mutateReport(context.Background(), reportID, func(rep *models.AccidentReport) error {
		rep.Pelapor = pelapor
		return nil
	})
	if err != nil {
		config.ErrorStatus("failed to update pelapor", http.StatusNotFound, w, err)
		return
	}

	BroadcastReportUpdate("report_updated", *report)
	writeReportJSON(w, http.StatusOK, report)
}

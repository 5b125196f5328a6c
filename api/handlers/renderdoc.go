package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/satlantas/laka-report-api/api"
	"github.com/satlantas/laka-report-api/config"
	"github.com/satlantas/laka-report-api/databases"
	"github.com/satlantas/laka-report-api/models"
)

// RenderDoc proxies the external DOCX rendering service
type RenderDoc struct {
	RDB       databases.ReportDatabase
	RenderURL string
	Client    *http.Client
}

// RenderDocumentHandler resolves the selected signatories, posts the
// report together with their details to the document service and
// streams the generated DOCX back to the caller
func (rd RenderDoc) RenderDocumentHandler(w http.ResponseWriter, r *http.Request) {
	reportID := mux.Vars(r)["report_id"]

	var selection struct {
		SpktOfficer      string `json:"spktOfficer"`
		ReportingOfficer string `json:"reportingOfficer"`
	}
	if err := json.NewDecoder(r.Body).Decode(&selection); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	spkt := models.FindOfficer(models.SpktOfficers, selection.SpktOfficer)
	reporting := models.FindOfficer(models.ReportingOfficers, selection.ReportingOfficer)
	if spkt == nil || reporting == nil {
		config.ErrorStatus("detail petugas tidak ditemukan", http.StatusBadRequest, w,
			fmt.Errorf("unknown officer selection %q / %q", selection.ReportingOfficer, selection.SpktOfficer))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	report, err := rd.RDB.FindOne(ctx, bson.M{"_id": reportID})
	if err != nil {
		config.ErrorStatus("failed to get report by ID", http.StatusNotFound, w, err)
		return
	}

	body, err := renderPayload(report, reporting, spkt)
	if err != nil {
		config.ErrorStatus("failed to marshal report", http.StatusInternalServerError, w, err)
		return
	}

	req, err := http.NewRequestWithContext(r.Context(), http.MethodPost, rd.RenderURL, bytes.NewReader(body))
	if err != nil {
		config.ErrorStatus("failed to build render request", http.StatusInternalServerError, w, err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	client := rd.Client
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		config.ErrorStatus("render service unavailable", http.StatusBadGateway, w, err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		config.ErrorStatus("render service unavailable", http.StatusBadGateway, w,
			fmt.Errorf("render service returned status %d", resp.StatusCode))
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.docx"`, "Laporan_"+exportStem(report)))
	w.WriteHeader(http.StatusOK)
	_, _ = io.Copy(w, resp.Body)
}

// renderPayload flattens the report document and overlays the officer
// fields the document template fills into the signature block.
func renderPayload(report *models.AccidentReport, reporting, spkt *models.Officer) ([]byte, error) {
	raw, err := json.Marshal(report)
	if err != nil {
		return nil, err
	}
	payload := map[string]interface{}{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}

	payload["namaPetugas"] = reporting.Nama
	payload["pangkatPetugas"] = reporting.Pangkat
	payload["nrpPetugas"] = reporting.NRP

	payload["namaPetugasSpkt"] = spkt.Nama
	payload["pangkatPetugasSpkt"] = spkt.Pangkat
	payload["nrpPetugasSpkt"] = spkt.NRP
	payload["reguPetugasSpkt"] = spkt.Regu

	return json.Marshal(payload)
}

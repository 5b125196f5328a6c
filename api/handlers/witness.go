package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/satlantas/laka-report-api/config"
	"github.com/satlantas/laka-report-api/models"
)

// AddWitnessHandler appends a witness to a report
func (re Report) AddWitnessHandler(w http.ResponseWriter, r *http.Request) {
	reportID := mux.Vars(r)["report_id"]

	var witness models.Witness
	if err := json.NewDecoder(r.Body).Decode(&witness); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if err := validateWitness(witness); err != nil {
		config.ErrorStatus("invalid witness", http.StatusBadRequest, w, err)
		return
	}
	witness.ID = uuid.New().String()

	report, err := re.mutateReport(context.Background(), reportID, func(rep *models.AccidentReport) error {
		rep.SaksiSaksi = append(rep.SaksiSaksi, witness)
		return nil
	})
	if err != nil {
		config.ErrorStatus("failed to add witness", http.StatusNotFound, w, err)
		return
	}

	BroadcastReportUpdate("report_updated", *report)
	writeReportJSON(w, http.StatusCreated, report)
}

// UpdateWitnessHandler replaces the fields of one witness
func (re Report) UpdateWitnessHandler(w http.ResponseWriter, r *http.Request) {
	reportID := mux.Vars(r)["report_id"]
	witnessID := mux.Vars(r)["witness_id"]

	var witness models.Witness
	if err := json.NewDecoder(r.Body).Decode(&witness); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if err := validateWitness(witness); err != nil {
		config.ErrorStatus("invalid witness", http.StatusBadRequest, w, err)
		return
	}

	report, err := re.mutateReport(context.Background(), reportID, func(rep *models.AccidentReport) error {
		for i := range rep.SaksiSaksi {
			if rep.SaksiSaksi[i].ID == witnessID {
				witness.ID = witnessID
				rep.SaksiSaksi[i] = witness
				return nil
			}
		}
		return fmt.Errorf("no witness with id %s", witnessID)
	})
	if err != nil {
		config.ErrorStatus("failed to update witness", http.StatusNotFound, w, err)
		return
	}

	BroadcastReportUpdate("report_updated", *report)
	writeReportJSON(w, http.StatusOK, report)
}

func validateWitness(witness models.Witness) error {
	if strings.TrimSpace(witness.NamaLengkap) == "" {
		return fmt.Errorf("namaLengkap is required")
	}
	if strings.TrimSpace(witness.KeteranganSaksi) == "" {
		return fmt.Errorf("keteranganSaksi is required")
	}
	if strings.TrimSpace(witness.UmurString) == "" && strings.TrimSpace(witness.TanggalLahir) == "" {
		return fmt.Errorf("umurString or tanggalLahir is required")
	}
	return nil
}

// DeleteWitnessHandler removes a witness from a report
func (re Report) DeleteWitnessHandler(w http.ResponseWriter, r *http.Request) {
	reportID := mux.Vars(r)["report_id"]
	witnessID := mux.Vars(r)["witness_id"]

	report, err := re.mutateReport(context.Background(), reportID, func(rep *models.AccidentReport) error {
		for i := range rep.SaksiSaksi {
			if rep.SaksiSaksi[i].ID == witnessID {
				rep.SaksiSaksi = append(rep.SaksiSaksi[:i], rep.SaksiSaksi[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("no witness with id %s", witnessID)
	})
	if err != nil {
		config.ErrorStatus("failed to delete witness", http.StatusNotFound, w, err)
		return
	}

	BroadcastReportUpdate("report_updated", *report)
	writeReportJSON(w, http.StatusOK, report)
}

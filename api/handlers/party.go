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

// AddPartyHandler appends an involved person to a report. The casualty
// counters follow from the injury levels, so they update on the way out.
func (re Report) AddPartyHandler(w http.ResponseWriter, r *http.Request) {
	reportID := mux.Vars(r)["report_id"]

	var party models.InvolvedParty
	if err := json.NewDecoder(r.Body).Decode(&party); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if err := validateParty(party); err != nil {
		config.ErrorStatus("invalid party", http.StatusBadRequest, w, err)
		return
	}
	party.ID = uuid.New().String()

	report, err := re.mutateReport(context.Background(), reportID, func(rep *models.AccidentReport) error {
		if party.InvolvedEntityID != "" && rep.FindEntity(party.InvolvedEntityID) == nil {
			return fmt.Errorf("no entity with id %s", party.InvolvedEntityID)
		}
		rep.PihakTerlibat = append(rep.PihakTerlibat, party)
		return nil
	})
	if err != nil {
		config.ErrorStatus("failed to add party", http.StatusNotFound, w, err)
		return
	}

	BroadcastReportUpdate("report_updated", *report)
	writeReportJSON(w, http.StatusCreated, report)
}

// UpdatePartyHandler replaces the fields of one involved person
func (re Report) UpdatePartyHandler(w http.ResponseWriter, r *http.Request) {
	reportID := mux.Vars(r)["report_id"]
	partyID := mux.Vars(r)["party_id"]

	var party models.InvolvedParty
	if err := json.NewDecoder(r.Body).Decode(&party); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if err := validateParty(party); err != nil {
		config.ErrorStatus("invalid party", http.StatusBadRequest, w, err)
		return
	}

	report, err := re.mutateReport(context.Background(), reportID, func(rep *models.AccidentReport) error {
		if party.InvolvedEntityID != "" && rep.FindEntity(party.InvolvedEntityID) == nil {
			return fmt.Errorf("no entity with id %s", party.InvolvedEntityID)
		}
		for i := range rep.PihakTerlibat {
			if rep.PihakTerlibat[i].ID == partyID {
				party.ID = partyID
				rep.PihakTerlibat[i] = party
				return nil
			}
		}
		return fmt.Errorf("no party with id %s", partyID)
	})
	if err != nil {
		config.ErrorStatus("failed to update party", http.StatusNotFound, w, err)
		return
	}

	BroadcastReportUpdate("report_updated", *report)
	writeReportJSON(w, http.StatusOK, report)
}

func validateParty(party models.InvolvedParty) error {
	if strings.TrimSpace(party.NamaLengkap) == "" {
		return fmt.Errorf("namaLengkap is required")
	}
	if strings.TrimSpace(party.Peran) == "" {
		return fmt.Errorf("peran is required")
	}
	return nil
}

// DeletePartyHandler removes an involved person from a report
func (re Report) DeletePartyHandler(w http.ResponseWriter, r *http.Request) {
	reportID := mux.Vars(r)["report_id"]
	partyID := mux.Vars(r)["party_id"]

	report, err := re.mutateReport(context.Background(), reportID, func(rep *models.AccidentReport) error {
		for i := range rep.PihakTerlibat {
			if rep.PihakTerlibat[i].ID == partyID {
				rep.PihakTerlibat = append(rep.PihakTerlibat[:i], rep.PihakTerlibat[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("no party with id %s", partyID)
	})
	if err != nil {
		config.ErrorStatus("failed to delete party", http.StatusNotFound, w, err)
		return
	}

	BroadcastReportUpdate("report_updated", *report)
	writeReportJSON(w, http.StatusOK, report)
}
